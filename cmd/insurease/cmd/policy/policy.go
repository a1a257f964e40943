package policy

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/SilasBach/insurease/cmd/insurease/internal/config"
	"github.com/SilasBach/insurease/pkg/sdk"
)

// PolicyCmd is the parent command for policy document operations
var PolicyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Manage policy documents",
	Long:  `Commands for uploading, deleting and listing policy documents.`,
}

func init() {
	PolicyCmd.AddCommand(uploadCmd)
	PolicyCmd.AddCommand(deleteCmd)
	PolicyCmd.AddCommand(catalogCmd)
}

func restoredSession(ctx context.Context) (*sdk.Session, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.ClientProvider.Session(ctx)
}
