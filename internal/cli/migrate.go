package cli

import (
	"fmt"

	"github.com/aevon-lab/chronicle/internal/core/config"
	"github.com/aevon-lab/chronicle/internal/core/storage/postgres"
	"github.com/aevon-lab/chronicle/internal/migrations"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "migrate",
		Short:         "Apply pending database migrations and exit",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rootOpts.ConfigPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := postgres.NewAdapter(cfg.Database.DSN, 1, 1, cfg.Database.ConnMaxLifetime)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer db.Close()

			if err := migrations.RunMigrations(db.DB(), true); err != nil {
				return err
			}

			version, dirty, err := migrations.Status(db.DB())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", version, dirty)
			return nil
		},
	}
}
