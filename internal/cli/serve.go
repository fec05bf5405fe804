package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aevon-lab/chronicle/internal/access"
	"github.com/aevon-lab/chronicle/internal/core/config"
	"github.com/aevon-lab/chronicle/internal/core/storage/postgres"
	"github.com/aevon-lab/chronicle/internal/events"
	"github.com/aevon-lab/chronicle/internal/migrations"
	"github.com/aevon-lab/chronicle/internal/server"
	"github.com/aevon-lab/chronicle/internal/sharing"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "serve",
		Short:         "Run the HTTP API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), rootOpts)
		},
	}
}

func runServe(ctx context.Context, opts *RootOptions) error {
	// 1. Load Configuration
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	slog.Info("Loaded config", "path", opts.ConfigPath, "addr", cfg.Server.Addr(), "mode", cfg.Server.Mode)

	// 2. Initialize Storage (PostgreSQL)
	db, err := postgres.NewAdapter(
		cfg.Database.DSN,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// 2.1. Run Database Migrations
	if err := migrations.RunMigrations(db.DB(), cfg.Database.AutoMigrate); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	if err := db.ValidateSchema(ctx); err != nil {
		return fmt.Errorf("database schema is not ready: %w", err)
	}

	changelogStore := postgres.NewChangelogAdapter(db.DB())
	permissionStore := postgres.NewPermissionsAdapter(db.DB(), changelogStore)
	eventStore := postgres.NewEventsAdapter(db.DB(), permissionStore, changelogStore)

	// 3. Initialize Permission Gate (optionally backed by Redis)
	var roleCache access.RoleCache
	if cfg.Cache.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			slog.Warn("[Cache] Redis unreachable, role cache disabled", "addr", cfg.Cache.RedisAddr, "error", err)
		} else {
			roleCache = access.NewRedisRoleCache(client, cfg.Cache.RoleTTL)
			slog.Info("[Cache] Role cache enabled", "addr", cfg.Cache.RedisAddr, "ttl", cfg.Cache.RoleTTL)
		}
	}
	gate := access.NewGate(permissionStore, roleCache)

	// 4. Initialize Services
	eventsSvc := events.NewService(eventStore, changelogStore, gate, cfg.Events, cfg.Recurrence)
	sharingSvc := sharing.NewService(permissionStore, gate, cfg.Sharing.MaxGrants)

	// 5. Start HTTP Server
	srv := server.New(cfg, db)
	eventsSvc.RegisterRoutes(srv.API())
	sharingSvc.RegisterRoutes(srv.API())

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	slog.Info("Shutdown complete")
	return nil
}
