package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jub0bs/isolation/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		listen     string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demonstration server",
		Long: "Runs a small HTTP server whose routes are guarded by the resource-isolation " +
			"middleware.\nExempt paths are read from the YAML config file, which is " +
			"hot-reloaded on change.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd)

			cfg, err := server.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				cfg.Listen = listen
			}
			srv, err := server.New(configPath, cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if configPath != "" {
				reloader, err := server.NewReloader(srv, configPath, logger)
				if err != nil {
					logger.Warn("hot-reload disabled", "err", err)
				} else {
					go reloader.Run(ctx)
				}
			}
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	cmd.Flags().StringVar(&listen, "listen", server.DefaultListen, "Listen address (overrides the config file)")
	return cmd
}
