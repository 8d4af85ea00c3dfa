// Package cmd implements the haiku command line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/haikus/internal/adapters/bbolt"
	"github.com/corey/haikus/internal/app"
	"github.com/corey/haikus/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:     "haiku",
	Short:   "haiku — find 5-7-5 poems hiding in plain text",
	Long:    "Scans text for accidental haikus, scores them with configurable evaluators, and remembers the ones you rate.",
	Version: "0.3.0",
}

// loadService builds the scanning service from configuration.
func loadService() (*app.Service, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.NewService(cfg)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

// openStore opens the ratings database, creating its directory first.
func openStore(cfg *config.Config) (*bbolt.Store, error) {
	path, err := cfg.Store.DBPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return bbolt.NewStore(path)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default $HAIKU_CONFIG, then ./haikus.yaml)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(ratingsCmd)
	rootCmd.AddCommand(wordsCmd)
}
