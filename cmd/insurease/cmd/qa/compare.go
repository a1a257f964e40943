package qa

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SilasBach/insurease/cmd/insurease/internal/config"
)

var (
	compareFirst  string
	compareSecond string
	compareHTML   bool
)

// CompareCmd asks the model service to compare two policy documents.
var CompareCmd = &cobra.Command{
	Use:   "compare <query>",
	Short: "Compare two policy documents",
	Long: `Asks the model service to compare two policy documents with respect to a
query. Each policy is referenced as "<company>/<filename>", for example:

  insurease compare --first "TRYG/car.pdf" --second "Alka/car.pdf" "deductibles for young drivers"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if compareFirst == "" || compareSecond == "" {
			return fmt.Errorf("--first and --second are required")
		}

		if _, err := cfg.ClientProvider.Session(cmd.Context()); err != nil {
			return err
		}
		sdkClient, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		answer, err := sdkClient.ComparePolicies(ctx, compareFirst, compareSecond, strings.Join(args, " "))
		if err != nil {
			return err
		}

		return printAnswer(answer, compareHTML)
	},
}

func init() {
	CompareCmd.Flags().StringVar(&compareFirst, "first", "", "First policy as company/filename")
	CompareCmd.Flags().StringVar(&compareSecond, "second", "", "Second policy as company/filename")
	CompareCmd.Flags().BoolVar(&compareHTML, "html", false, "Render the markdown answer to HTML")
}
