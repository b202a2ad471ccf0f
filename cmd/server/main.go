// Command sendnow runs the Sendnow landing backend and its chart tools.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jengzang/sendnow-backend-go/internal/config"
	"github.com/jengzang/sendnow-backend-go/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Set up by PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sendnow",
	Short: "Sendnow landing backend",
	Long: `Serves the Sendnow marketing site API: the contact and newsletter forms,
the static content, and server-rendered analytics dashboards.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		var level zap.AtomicLevel
		logger, level, err = logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		if verbose {
			level.SetLevel(zapcore.DebugLevel)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "sendnow.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, renderCmd, journalCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
