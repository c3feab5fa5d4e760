// Package cli implements the ledgerctl admin commands.
package cli

import (
	"github.com/spf13/cobra"

	"checklist-ledger/internal/catalog"
	"checklist-ledger/pkg/log"
)

const defaultResourceDir = "public/resources"

// NewRootCmd builds the ledgerctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Admin tools for the checklist ledger",
		Long:          "Inspect catalog resources and precompute the resource count summary.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("dir", "d", defaultResourceDir, "Resource directory holding games/ and series/")
	root.PersistentFlags().StringP("format", "f", "text", "Output format: json or text")

	root.AddCommand(newCountCmd(), newOutlineCmd(), newPercentCmd())
	return root
}

func openCatalog(cmd *cobra.Command) (catalog.Service, error) {
	dir, _ := cmd.Flags().GetString("dir")
	return catalog.New(catalog.NewDirSource(dir), 0, log.NewNop())
}
