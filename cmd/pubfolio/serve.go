package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/pubfolio"
	"github.com/eringen/pubfolio/views"
)

var (
	flagAddr  string
	flagWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site",
	Long: `The serve command validates the content directories and starts the web
server. With --watch the post listing is kept in memory and refreshed when
files in the posts directory change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(flagLogLevel, flagLogFormat)
		if err != nil {
			return err
		}

		cfg := appConfig
		if cmd.Flags().Changed("addr") {
			cfg.Addr = flagAddr
		}
		if cmd.Flags().Changed("watch") {
			cfg.Watch = flagWatch
		}
		if cfg.file != "" {
			logger.Info("using config file", zap.String("path", cfg.file))
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app := pubfolio.New(cfg.SiteConfig, views.ViewFuncs{},
			pubfolio.WithLogger(logger),
			pubfolio.WithStaticDir(cfg.StaticDir),
		)
		defer app.Close()
		return app.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address, overrides the config")
	serveCmd.Flags().BoolVar(&flagWatch, "watch", false, "refresh the post listing when files change")
	rootCmd.AddCommand(serveCmd)
}

