package main

import (
	"fmt"

	"github.com/spano-fitness/spano/internal/fitness/app"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	LogLevel string
	Port     int
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error), overrides LOG_LEVEL")
	rootCmd.PersistentFlags().IntVarP(&rootFlags.Port, "port", "p", 0, "HTTP port, overrides PORT")

	rootCmd.AddCommand(serveCmd, migrateCmd, versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "spano",
	Short: "Spano is a small fitness tracker with meal logging and a nutrition assistant",
	Example: `spano                 # same as spano serve
  spano serve --port 9000
  spano migrate --log-level debug`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	RunE:         serve,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database, seed default accounts and serve HTTP",
	RunE:  serve,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return app.Migrate(cfg, app.NewLogger(cfg))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion)
	},
}

func serve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	application, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return application.Run()
}

func loadConfig() (app.Config, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return app.Config{}, err
	}
	if rootFlags.LogLevel != "" {
		cfg.LogLevel = rootFlags.LogLevel
	}
	if rootFlags.Port != 0 {
		cfg.Port = rootFlags.Port
	}
	return cfg, nil
}
