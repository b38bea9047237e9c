package cli

import (
	"github.com/spf13/cobra"

	"github.com/belfry/go-anvil/internal/config"
)

// NewRootCmd builds the anvil command tree. cfg usually comes from
// config.Load; tests pass their own.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	app := &App{cfg: cfg}

	root := &cobra.Command{
		Use:          "anvil",
		Short:        "Interact with the Anvil e-signature API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.connect(cmd)
		},
	}

	root.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "log API requests to stderr")

	root.AddCommand(
		newCurrentUserCmd(app),
		newCastCmd(app),
		newGQLQueryCmd(app),
		newGeneratePDFCmd(app),
		newFillPDFCmd(app),
		newDownloadDocumentsCmd(app),
		newCreateEtchPacketCmd(app),
	)
	return root
}
