package users

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all user accounts",
	Long:  `Lists all user accounts. Requires an admin session.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		session, err := restoredSession(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		profiles, err := session.FetchUsers(ctx)
		if err != nil {
			return err
		}

		sort.Slice(profiles, func(i, j int) bool { return profiles[i].Email < profiles[j].Email })

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tFULL_NAME\tROLE\tBUREAU\tSTATUS")
		for _, profile := range profiles {
			bureau := profile.BureauAffiliation
			if bureau == "" {
				bureau = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				profile.ID, profile.Email, profile.FullName, profile.Role, bureau, profile.AccountStatus)
		}
		w.Flush()

		return nil
	},
}
