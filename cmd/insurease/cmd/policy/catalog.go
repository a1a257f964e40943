package policy

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/SilasBach/insurease/cmd/insurease/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the policy catalog",
	Long:  `Lists every policy document per insurance company.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cobraCmd.Context())

		if _, err := cfg.ClientProvider.Session(cobraCmd.Context()); err != nil {
			return err
		}
		sdkClient, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		catalog, err := sdkClient.FetchPolicyCatalog(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch policy catalog: %w", err)
		}

		companies := make([]string, 0, len(catalog))
		for company := range catalog {
			companies = append(companies, company)
		}
		sort.Strings(companies)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "COMPANY\tPOLICY")
		for _, company := range companies {
			policies := append([]string(nil), catalog[company]...)
			sort.Strings(policies)
			if len(policies) == 0 {
				fmt.Fprintf(w, "%s\t-\n", company)
				continue
			}
			for _, policyName := range policies {
				fmt.Fprintf(w, "%s\t%s\n", company, policyName)
			}
		}
		w.Flush()

		return nil
	},
}
