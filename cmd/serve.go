package cmd

import (
	"context"

	"github.com/brogergvhs/hqnews/internal/config"
	"github.com/brogergvhs/hqnews/internal/ui"
	"github.com/brogergvhs/hqnews/internal/util"
	"github.com/brogergvhs/hqnews/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var flagListen string

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI. Uses the defaults from the selected config, overwritten by CLI flags",
		RunE:  runServe,
	}

	serveCmd.Flags().StringVar(&flagListen, "listen", "", "listen address (default \":8501\")")
	addSourceFlags(serveCmd)

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	opts := sourceOptions()
	opts.Listen = flagListen

	cfg, usedPath, err := config.LoadMerged(opts)
	if err != nil {
		return err
	}
	printConfigSource(usedPath)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	a.log.Debugf("source=%s label=%s ai_provider=%s", cfg.SourceURL, cfg.SourceLabel, cfg.AIProvider)

	ctx, stop := util.ShutdownContext(context.Background())
	defer stop()

	srv := web.NewServer(a.service, a.log, &ui.Stats{}, web.Options{
		DefaultAPIKey: envAPIKey(cfg.AIProvider),
	})

	return srv.Run(ctx, cfg.Listen)
}
