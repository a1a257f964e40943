package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SilasBach/insurease/cmd/insurease/cmd/auth"
	"github.com/SilasBach/insurease/cmd/insurease/cmd/company"
	"github.com/SilasBach/insurease/cmd/insurease/cmd/policy"
	"github.com/SilasBach/insurease/cmd/insurease/cmd/qa"
	"github.com/SilasBach/insurease/cmd/insurease/cmd/users"
	"github.com/SilasBach/insurease/cmd/insurease/internal/client"
	"github.com/SilasBach/insurease/cmd/insurease/internal/config"
)

var (
	serverURL      string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "insurease",
	Short: "InsurEase CLI - insurance policy assistant client",
	Long: `insurease is the command-line interface for InsurEase, an insurance policy
management and Q&A service. Use it to ask questions about policy documents,
compare policies, and administer users, companies and policy files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if os.Getenv("INSUREASE_NON_INTERACTIVE") == "1" {
			nonInteractive = true
		}

		cfg := &config.GlobalConfig{
			ServerURL:      serverURL,
			NonInteractive: nonInteractive,
			ClientProvider: client.NewProvider(serverURL),
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultServerURL() string {
	if env := os.Getenv("INSUREASE_SERVER"); env != "" {
		return env
	}
	return "http://localhost:8000"
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServerURL(), "InsurEase API server URL (also set via INSUREASE_SERVER)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via INSUREASE_NON_INTERACTIVE=1)")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(qa.AskCmd)
	rootCmd.AddCommand(qa.CompareCmd)
	rootCmd.AddCommand(users.UsersCmd)
	rootCmd.AddCommand(policy.PolicyCmd)
	rootCmd.AddCommand(company.CompanyCmd)
}
