// Package main implements the oneiro CLI, a terminal journal for dream
// logging, sleep tracking, and lucid-dreaming practice.
package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/oneirolab/oneiro/internal/config"
	"github.com/oneirolab/oneiro/internal/db/sqlite"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	dataDir string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:     "oneiro",
	Short:   "Dream journal and lucid-dreaming trainer",
	Long:    `oneiro keeps a dream journal and daily sleep log, tracks lucid-dreaming technique practice, and derives statistics from the accumulated records.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default: ~/.oneiro)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(dreamCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(rcCmd)
	rootCmd.AddCommand(exportCmd)
}

// openStore prepares the data directory and opens the journal database.
func openStore() (*sqlite.Store, error) {
	dbPath := config.DBPath()
	if dataDir != "" {
		dbPath = filepath.Join(dataDir, "oneiro.db")
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, err
		}
	} else if err := config.EnsureDataDir(); err != nil {
		return nil, err
	}
	return sqlite.NewStore(sqlite.StoreConfig{Path: dbPath, MaxConns: 1, WALMode: true})
}

// loadSettings reads settings.json, falling back to defaults on error.
func loadSettings() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load settings, using defaults")
		return config.Default()
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
