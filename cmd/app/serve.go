package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
	"github.com/wichananm65/luxuria-backend/internal/config"
	"github.com/wichananm65/luxuria-backend/internal/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg := config.Load()

	s := openStore(ctx, cfg)
	defer closeStore(s)

	app := server.New(cfg, s)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.Warnf("shutdown: %v", err)
		}
	}()

	log.Infof("starting server on %s", cfg.Addr)
	return app.Listen(cfg.Addr)
}
