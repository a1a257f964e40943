package auth

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/SilasBach/insurease/cmd/insurease/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	Long:  `Validates the stored session against the server and prints the current identity and visible policy catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.ClientProvider.Session(cmd.Context())
		if err != nil {
			return err
		}
		identity := session.Identity()

		pterm.DefaultSection.Println("Authentication Status")
		pterm.Info.Printf("Logged in to %s\n", cfg.ServerURL)
		pterm.Info.Printf("User ID: %s\n", identity.UserID)
		pterm.Info.Printf("Role: %s\n", identity.Role)

		if len(identity.Policies) == 0 {
			pterm.Info.Println("No policy documents visible to this session")
			return nil
		}

		pterm.DefaultSection.Println("Policy Catalog")
		companies := make([]string, 0, len(identity.Policies))
		for company := range identity.Policies {
			companies = append(companies, company)
		}
		sort.Strings(companies)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "COMPANY\tPOLICIES")
		for _, company := range companies {
			policies := append([]string(nil), identity.Policies[company]...)
			sort.Strings(policies)
			fmt.Fprintf(w, "%s\t%s\n", company, strings.Join(policies, ", "))
		}
		w.Flush()

		return nil
	},
}
