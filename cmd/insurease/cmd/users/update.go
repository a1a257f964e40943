package users

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/SilasBach/insurease/pkg/sdk"
)

var updateInput sdk.UserUpdate

var updateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Update a user account",
	Long: `Updates the given fields of a user account; unset flags leave the
corresponding fields unchanged. Regular users can update their own account,
admins can update anyone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		if updateInput == (sdk.UserUpdate{}) {
			return fmt.Errorf("nothing to update; pass at least one field flag")
		}

		session, err := restoredSession(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		profile, err := session.UpdateUser(ctx, args[0], updateInput)
		if err != nil {
			return err
		}

		pterm.Success.Printf("Updated user %s (%s)\n", profile.ID, profile.Email)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateInput.Email, "email", "", "New email address")
	updateCmd.Flags().StringVar(&updateInput.FullName, "full-name", "", "New full name")
	updateCmd.Flags().StringVar(&updateInput.Role, "role", "", "New role (user or admin, admin only)")
	updateCmd.Flags().StringVar(&updateInput.BureauAffiliation, "bureau", "", "New bureau affiliation")
	updateCmd.Flags().StringVar(&updateInput.AccountStatus, "status", "", "New account status (admin only)")
	updateCmd.Flags().StringVar(&updateInput.Password, "password", "", "New password")
}
