package auth

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/SilasBach/insurease/cmd/insurease/internal/config"
	"github.com/SilasBach/insurease/pkg/sdk"
)

var (
	registerEmail    string
	registerPassword string
	registerFullName string
	registerBureau   string
	registerListOnly bool
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new InsurEase account",
	Long: `Registers a new account and logs in with it on success.

The bureau affiliation must be one of the known insurance bureaus; run with
--list-bureaus to print them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if registerListOnly {
			printBureaus()
			return nil
		}

		cfg := config.MustFromContext(cmd.Context())

		if registerEmail == "" || registerFullName == "" || registerBureau == "" {
			return fmt.Errorf("--email, --full-name and --bureau are required")
		}
		if _, ok := sdk.BureauAffiliations[registerBureau]; !ok {
			return fmt.Errorf("unknown bureau %q; run `insurease auth register --list-bureaus`", registerBureau)
		}
		password, err := resolvePassword(registerPassword, cfg.NonInteractive)
		if err != nil {
			return err
		}

		session, err := cfg.ClientProvider.NewSession()
		if err != nil {
			return err
		}

		identity, err := session.Register(cmd.Context(), sdk.RegistrationInput{
			Email:             registerEmail,
			Password:          password,
			FullName:          registerFullName,
			BureauAffiliation: registerBureau,
		})
		if err != nil {
			return err
		}

		pterm.Success.Printf("Registered and logged in as %s (%s)\n", registerEmail, identity.Role)
		return nil
	},
}

func printBureaus() {
	keys := make([]string, 0, len(sdk.BureauAffiliations))
	for key := range sdk.BureauAffiliations {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tBUREAU")
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%s\n", key, sdk.BureauAffiliations[key])
	}
	w.Flush()
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email address")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerFullName, "full-name", "", "Full name")
	registerCmd.Flags().StringVar(&registerBureau, "bureau", "", "Insurance bureau affiliation key")
	registerCmd.Flags().BoolVar(&registerListOnly, "list-bureaus", false, "Print the known bureau affiliations and exit")
}
