package qa

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SilasBach/insurease/cmd/insurease/internal/config"
	"github.com/SilasBach/insurease/pkg/sdk"
)

var (
	askCompany string
	askPolicy  string
	askHTML    bool
)

// AskCmd sends a question about one policy document to the model service.
var AskCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question about a policy document",
	Long: `Asks the model service a question about a single policy document.
The target document is selected with --company and --policy; the company and
filename must match an entry in the policy catalog (see insurease auth status).

The answer is printed as markdown. Pass --html to render it to HTML instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if askCompany == "" || askPolicy == "" {
			return fmt.Errorf("--company and --policy are required")
		}

		session, err := cfg.ClientProvider.Session(cmd.Context())
		if err != nil {
			return err
		}
		if err := checkCatalogEntry(session.Identity(), askCompany, askPolicy); err != nil {
			return err
		}

		sdkClient, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		question := sdk.FormatPolicyQuestion(askCompany, askPolicy, strings.Join(args, " "))
		answer, err := sdkClient.AskQuestion(ctx, question)
		if err != nil {
			return err
		}

		return printAnswer(answer, askHTML)
	},
}

// checkCatalogEntry verifies the company/policy pair exists in the session's
// catalog before spending a model call on it.
func checkCatalogEntry(identity *sdk.Identity, company, policy string) error {
	policies, ok := identity.Policies[company]
	if !ok {
		return fmt.Errorf("unknown company %q; run `insurease auth status` to list the catalog", company)
	}
	for _, candidate := range policies {
		if candidate == policy {
			return nil
		}
	}
	return fmt.Errorf("company %q has no policy %q; run `insurease auth status` to list the catalog", company, policy)
}

func printAnswer(answer string, asHTML bool) error {
	if asHTML {
		html, err := sdk.RenderAnswer(answer)
		if err != nil {
			return err
		}
		fmt.Print(html)
		return nil
	}
	fmt.Println(answer)
	return nil
}

func init() {
	AskCmd.Flags().StringVar(&askCompany, "company", "", "Insurance company the policy belongs to")
	AskCmd.Flags().StringVar(&askPolicy, "policy", "", "Policy document filename")
	AskCmd.Flags().BoolVar(&askHTML, "html", false, "Render the markdown answer to HTML")
}
