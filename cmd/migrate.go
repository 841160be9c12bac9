package cmd

import (
	"fmt"

	"yatri-auth/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(*cobra.Command, []string) error {
			config, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return migrateUp(config.Database.URL(), logger)
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every migration (drops all tables)",
		RunE: func(*cobra.Command, []string) error {
			config, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			m, err := database.NewMigrator(config.Database.URL())
			if err != nil {
				return err
			}
			defer m.Close()

			if err := m.Down(); err != nil {
				return err
			}
			logger.Info("Migrations rolled back")
			return nil
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			m, err := database.NewMigrator(config.Database.URL())
			if err != nil {
				return err
			}
			defer m.Close()

			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			cmd.Printf("version=%d dirty=%t\n", version, dirty)
			return nil
		},
	})

	return migrateCmd
}

func migrateUp(databaseURL string, logger *zap.Logger) error {
	m, err := database.NewMigrator(databaseURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		return err
	}

	version, _, err := m.Version()
	if err != nil {
		return err
	}
	logger.Info("Database schema up to date", zap.Uint("version", version))
	return nil
}
