package cmd

import (
	"context"
	"fmt"
	"os"

	"yatri-auth/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "yatri-auth",
	Short:         "Email/password and one-time-passcode authentication service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".env", "path to .env config file")
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap loads config and builds the logger shared by every subcommand.
func bootstrap() (*utils.Config, *zap.Logger, error) {
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v. Using production logger.\n", err)
		logger, _ = zap.NewProduction()
	}

	return config, logger, nil
}
