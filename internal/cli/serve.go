package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-tokensale/internal/server"
	"github.com/goliatone/go-tokensale/pkg/renderers/vanilla"
)

func newServeCmd(a *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configuration form over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Server
			if cmd.Flags().Changed("addr") {
				cfg.Address = addr
			}

			renderer, err := vanilla.New()
			if err != nil {
				return err
			}

			srv, err := server.New(cfg, renderer,
				server.WithLogger(a.logger),
				server.WithAssets(vanilla.AssetsFS()),
				server.WithPage(a.page()),
				server.WithToast(a.toast()),
				server.WithValidator(a.validator()),
			)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.address")
	return cmd
}
