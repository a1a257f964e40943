package users

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <user-id>",
	Short: "Show one user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		session, err := restoredSession(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		profile, err := session.FetchUserData(ctx, args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID:\t%s\n", profile.ID)
		fmt.Fprintf(w, "Email:\t%s\n", profile.Email)
		fmt.Fprintf(w, "Full name:\t%s\n", profile.FullName)
		fmt.Fprintf(w, "Role:\t%s\n", profile.Role)
		if profile.BureauAffiliation != "" {
			fmt.Fprintf(w, "Bureau:\t%s\n", profile.BureauAffiliation)
		}
		fmt.Fprintf(w, "Status:\t%s\n", profile.AccountStatus)
		if profile.LastLogin != "" {
			fmt.Fprintf(w, "Last login:\t%s\n", profile.LastLogin)
		}
		w.Flush()

		return nil
	},
}
