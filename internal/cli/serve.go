package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/periodic/pkg/observability"
	"github.com/matzehuels/periodic/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP server until
// the process is interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, imagesDir string
	var noCache, noMetrics bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive periodic table over HTTP",
		Example: `  periodic serve
  periodic serve --addr :9000 --images ./images`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := c.cfg

			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("images") {
				cfg.Server.ImagesDir = imagesDir
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer func() {
				if err := runner.Close(); err != nil {
					logger.Warn("close cache", "error", err)
				}
			}()

			opts := []server.Option{
				server.WithAddr(cfg.Server.Addr),
				server.WithLogger(logger),
				server.WithImagesDir(cfg.Server.ImagesDir),
				server.WithShutdownTimeout(cfg.Server.ShutdownTimeout.Std()),
				server.WithDefaults(cfg.Render.Style, cfg.Render.Theme, cfg.Render.CellSize),
			}
			if !noMetrics {
				m := observability.NewMetrics()
				observability.Register(m)
				defer observability.Reset()
				opts = append(opts, server.WithMetrics(m))
			}

			srv := server.New(runner, opts...)
			logger.Info("serving periodic table",
				"addr", srv.Addr(),
				"cache", cfg.Cache.Backend,
				"images", cfg.Server.ImagesDir,
				"metrics", !noMetrics)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&imagesDir, "images", "", "directory of element illustrations")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "disable the /metrics endpoint")
	return cmd
}
