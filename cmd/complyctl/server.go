package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tripleswitch/complianceos/pkg/app"
	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/config"
	"github.com/tripleswitch/complianceos/pkg/db"
	"github.com/tripleswitch/complianceos/pkg/logging"
	"github.com/tripleswitch/complianceos/pkg/notify"
)

const shutdownTimeout = 10 * time.Second

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the ComplianceOS application server",
	Long: `Run the ComplianceOS application server.

State is kept in memory unless COMPLY_DATABASE_URL is set. With a database,
migrations run on startup; use --no-migrate to skip them. Role grants are
seeded from COMPLY_POLICY_FILE, or the built-in policy, on every start.

Changes to log_level in the config file apply without a restart.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServer(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().IntP("port", "p", 0, "server listen port (overrides COMPLY_PORT)")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address (overrides COMPLY_BIND_ADDRESS)")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}

func runServer(cmd *cobra.Command) error {
	cfg, err := config.Reload()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	if host, _ := cmd.Flags().GetString("bind-address"); host != "" {
		cfg.BindAddress = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, level, err := logging.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := app.Options{Config: cfg, Logger: logger}

	audit.SetEnabled(cfg.IsAuditEnabled())
	if cfg.AuditDatabaseURL != "" {
		auditStore, err := audit.NewStore(cfg.AuditDatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to open audit store: %w", err)
		}
		defer func() { _ = auditStore.Close() }()
		audit.SetStore(auditStore)
		opts.AuditLog = auditStore
	}

	if cfg.DatabaseURL != "" {
		if noMigrate, _ := cmd.Flags().GetBool("no-migrate"); !noMigrate {
			logger.Info("running database migrations")
			if _, err := db.MigrateUp(cfg.DatabaseURL); err != nil {
				return err
			}
		}
		database, err := db.Connect(db.Config{URL: cfg.DatabaseURL, Debug: cfg.LogLevel == "debug"})
		if err != nil {
			return err
		}
		stores := app.GormStores(database)
		opts.Stores = &stores
	}

	if cfg.RedisURL != "" {
		redis, err := notify.DialRedis(cfg.RedisURL, cfg.NotificationTTL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() { _ = redis.Close() }()
		opts.Notifier = redis
	}

	srv, err := app.New(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		err := config.Watch(ctx, cfg.ConfigFilePath(), func(next *config.ComplianceConfig) {
			if err := logging.SetLevel(level, next.LogLevel); err != nil {
				logger.Warn("ignoring log level", zap.String("level", next.LogLevel), zap.Error(err))
				return
			}
			logger.Info("configuration reloaded", zap.String("log_level", next.LogLevel))
		}, func(err error) {
			logger.Warn("configuration reload failed", zap.Error(err))
		})
		if err != nil {
			logger.Warn("not watching configuration", zap.Error(err))
		}
	}()

	errs := make(chan error, 1)
	go func() { errs <- srv.Start() }()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func defaultPortInt() int {
	if port := os.Getenv("COMPLY_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8080
}
