package company

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/SilasBach/insurease/cmd/insurease/internal/config"
	"github.com/SilasBach/insurease/pkg/sdk"
)

// CompanyCmd is the parent command for insurance company operations
var CompanyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage insurance companies",
	Long:  `Commands for adding and removing insurance companies.`,
}

func init() {
	CompanyCmd.AddCommand(addCmd)
	CompanyCmd.AddCommand(deleteCmd)
}

func restoredSession(ctx context.Context) (*sdk.Session, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.ClientProvider.Session(ctx)
}
