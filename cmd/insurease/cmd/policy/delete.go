package policy

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var deleteCompany string

var deleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete a policy document",
	Long:  `Deletes one policy document from an insurance company. Requires an admin session.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		if deleteCompany == "" {
			return fmt.Errorf("--company is required")
		}

		session, err := restoredSession(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 30*time.Second)
		defer cancel()

		result := session.DeletePolicy(ctx, deleteCompany, args[0])
		if !result.Success {
			return fmt.Errorf("%s", result.Message)
		}

		pterm.Success.Println(result.Message)
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVar(&deleteCompany, "company", "", "Insurance company the policy belongs to")
}
