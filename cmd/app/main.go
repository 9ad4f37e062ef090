package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/wichananm65/luxuria-backend/internal/config"
	"github.com/wichananm65/luxuria-backend/internal/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "luxuria",
		Short: "Luxuria catalog and checkout API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// a missing .env file is fine; the environment may be set directly
			_ = godotenv.Load()
			log.SetLevel(logLevel(config.Load().LogLevel))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore connects to the configured store. It never fails: without a
// reachable database the service runs on the sample catalog.
func openStore(ctx context.Context, cfg config.Config) store.Store {
	s, err := store.Open(ctx, store.Options{
		Driver:         cfg.StoreDriver,
		URL:            cfg.DatabaseURL,
		Name:           cfg.DatabaseName,
		Table:          cfg.DocumentsTable,
		ConnectTimeout: cfg.ConnectTimeout,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotConfigured) {
			log.Info("DATABASE_URL is not set, serving the sample catalog")
		} else {
			log.Warnf("document store unavailable, serving the sample catalog: %v", err)
		}
		return &store.Unavailable{Reason: err}
	}
	if insp, ok := s.(store.Inspector); ok {
		log.Infof("connected to document store %q", insp.Name())
	}
	return s
}

func closeStore(s store.Store) {
	c, ok := s.(store.Closer)
	if !ok {
		return
	}
	if err := c.Close(context.Background()); err != nil {
		log.Warnf("closing store: %v", err)
	}
}

func logLevel(name string) log.Level {
	switch name {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
