package company

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/SilasBach/insurease/cmd/insurease/internal/config"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an insurance company",
	Long: `Deletes an insurance company and every policy document uploaded for it.
Requires an admin session.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cobraCmd.Context())

		if !deleteYes {
			if cfg.NonInteractive {
				return fmt.Errorf("refusing to delete without --yes in non-interactive mode")
			}
			confirmed, err := pterm.DefaultInteractiveConfirm.Show(
				fmt.Sprintf("Delete company %s and all its policies?", args[0]))
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted")
				return nil
			}
		}

		session, err := restoredSession(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 30*time.Second)
		defer cancel()

		result := session.DeleteCompany(ctx, args[0])
		if !result.Success {
			return fmt.Errorf("%s", result.Message)
		}

		pterm.Success.Println(result.Message)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the confirmation prompt")
}
