// Package main is the entry point for skymanual, the Skylanders Manual world
// generator.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/skymanual/internal/config"
	"github.com/samdwyer/skymanual/internal/generate"
	"github.com/samdwyer/skymanual/internal/logger"
	"github.com/samdwyer/skymanual/internal/storage"
	"github.com/samdwyer/skymanual/internal/telemetry"
	"github.com/samdwyer/skymanual/internal/worlds"
)

var (
	// configFile is set by the --config flag.
	configFile string
	// logLevel is set by the --log-level flag and overrides the environment.
	logLevel string
)

// app is the state shared by every command, built in PersistentPreRunE.
var app struct {
	cfg      config.Config
	logger   *slog.Logger
	shutdown func(context.Context) error
}

func main() {
	// Not fatal: variables may be set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skymanual",
	Short: "Generate Skylanders Manual randomizer worlds",
	Long: `skymanual prepares Skylanders Swap Force and Skylanders Giants worlds for a
Manual randomizer: it validates player options, builds the region graph, filters
characters, pads the item pool with traps and filler, and stores the result.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "process config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, the logger and telemetry.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if configFile != "" {
		if err := config.ApplyFile(&cfg, configFile); err != nil {
			return err
		}
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	app.cfg = cfg

	app.logger, err = logger.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	app.shutdown, err = telemetry.Setup(cmd.Context(), telemetry.Config{
		Endpoint: cfg.OTelEndpoint,
		Headers:  cfg.OTelHeaders,
	})
	if err != nil {
		// Continue without tracing.
		app.logger.Warn("telemetry setup failed", "error", err)
		app.shutdown = nil
	}
	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	if app.shutdown == nil {
		return nil
	}
	if err := app.shutdown(cmd.Context()); err != nil {
		app.logger.Error("telemetry shutdown failed", "error", err)
	}
	return nil
}

// newGenerator loads every world.
func newGenerator() (*generate.Generator, error) {
	defs, err := worlds.All()
	if err != nil {
		return nil, fmt.Errorf("load worlds: %w", err)
	}
	return generate.New(app.logger, defs...), nil
}

// openStore opens the configured result store.
func openStore(ctx context.Context) (storage.Store, error) {
	return storage.Open(ctx, app.cfg.Storage(), app.logger)
}
