package policy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	uploadCompany string
	uploadName    string
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a policy document",
	Long: `Uploads a policy document (PDF) for an insurance company. The document
becomes available for questions and comparison once the server has indexed it.
Requires an admin session.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		if uploadCompany == "" {
			return fmt.Errorf("--company is required")
		}
		policyName := uploadName
		if policyName == "" {
			policyName = filepath.Base(args[0])
		}

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open policy file: %w", err)
		}
		defer file.Close()

		session, err := restoredSession(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 2*time.Minute)
		defer cancel()

		result := session.UploadPolicy(ctx, filepath.Base(args[0]), file, policyName, uploadCompany)
		if !result.Success {
			return fmt.Errorf("%s", result.Message)
		}

		pterm.Success.Println(result.Message)
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadCompany, "company", "", "Insurance company the policy belongs to")
	uploadCmd.Flags().StringVar(&uploadName, "name", "", "Policy name (defaults to the file name)")
}
