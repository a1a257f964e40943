package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SilasBach/insurease/cmd/insurease/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from InsurEase",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.ClientProvider.NewSession()
		if err != nil {
			return err
		}

		// Logout clears the stored credential even when the server call
		// fails, so this never blocks on a dead server.
		session.Restore(cmd.Context())
		session.Logout(cmd.Context())

		fmt.Println("Logged out successfully")
		return nil
	},
}
