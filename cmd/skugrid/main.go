package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tansell/skugrid/internal/app"
	"github.com/tansell/skugrid/internal/logging"
)

var version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath string
		prefsPath  string
		envFile    string
		columns    int
		logFile    string
		verbose    bool
	)

	root := &cobra.Command{
		Use:           "skugrid",
		Short:         "Browse pipe-delimited SKU catalog exports in the terminal",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Deployment overrides (SKUGRID_BASE and friends) usually
			// arrive through a .env file next to the export.
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("load env file: %w", err)
				}
			} else {
				_ = godotenv.Load()
			}

			level := logging.LevelError
			if verbose {
				level = logging.LevelDebug
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return app.Run(ctx, app.Options{
				ConfigPath: configPath,
				PrefsPath:  prefsPath,
				Columns:    columns,
				LogLevel:   level,
				LogFile:    logFile,
			})
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "override config path (default ~/.config/skugrid/config.toml)")
	root.Flags().StringVar(&prefsPath, "prefs", "", "override prefs path (default ~/.config/skugrid/prefs.toml)")
	root.Flags().StringVar(&envFile, "env", "", "load environment overrides from this file")
	root.Flags().IntVar(&columns, "columns", 0, "grid column count (overrides config)")
	root.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "skugrid: %v\n", err)
		return 1
	}
	return 0
}
