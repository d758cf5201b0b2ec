package cli

import (
	"fmt"
	"log/slog"

	"github.com/rohits-web03/filehub/internal/repositories"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := repositories.ConnectDatabase(cfg.DB, cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if err := repositories.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			slog.Info("Database migrated", "driver", cfg.DB.Driver)
			return nil
		},
	}
}
