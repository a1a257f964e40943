package company

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an insurance company",
	Long:  `Registers a new insurance company so policy documents can be uploaded for it. Requires an admin session.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		session, err := restoredSession(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		result := session.AddCompany(ctx, args[0])
		if !result.Success {
			return fmt.Errorf("%s", result.Message)
		}

		pterm.Success.Println(result.Message)
		return nil
	},
}
