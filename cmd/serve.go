package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/neozi12/portfolio/internal/analytics"
	"github.com/neozi12/portfolio/internal/catalog"
	"github.com/neozi12/portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger()
		gin.SetMode(cfg.Mode)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		catalogs := catalog.NewStore(cat, logger)
		if cfg.WatchCatalog {
			if err := catalogs.Watch(ctx, cfg.CatalogPath, 0); err != nil {
				return fmt.Errorf("watching catalog: %w", err)
			}
		}

		store, err := analytics.Open(ctx, cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		srv, err := server.New(server.Options{
			Config:    cfg,
			Catalogs:  catalogs,
			Analytics: store,
			Logger:    logger,
		})
		if err != nil {
			return err
		}

		logger.Info("privacy: visitor tracking enabled with hashed IP addresses",
			"retention_days", cfg.RetentionDays, "admin", "/admin/login")
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
