// Package cli implements the command-line interface for gocube-solver.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/gocube_solver/internal/config"
	"github.com/SeamusWaldron/gocube_solver/internal/logging"
	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configDir string
	dbPath    string
	verbosity int

	// settings is resolved from config file, defaults and flags before
	// any command runs.
	settings *config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube-solver",
	Short: "Layer-by-layer Rubik's Cube solver",
	Long: `gocube-solver - A CLI tool for scrambling and solving a simulated Rubik's Cube.

Solves run a cross on the white face, then the first two layers, then orient
and permute the last layer from pattern tables. Every step can be printed,
stepped through interactively, and saved to a local history database.`,
	Version:      version,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = loadSettings
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "Config directory (default: ~/.gocube_solver)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: <config>/solves.db)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")
}

// loadSettings reads the config directory and lets set flags override it.
func loadSettings(*cobra.Command, []string) error {
	dir := configDir
	if dir == "" {
		var err error
		if dir, err = storage.DefaultDir(); err != nil {
			return err
		}
	}

	v, err := config.Load(dir)
	if err != nil {
		return err
	}
	if err := bindFlags(v); err != nil {
		return err
	}

	if settings, err = config.FromViper(v); err != nil {
		return err
	}
	logging.Setup(settings.Verbosity, nil)
	logger := logging.GetLogger("cli")
	logger.Debug().Str("config", dir).Str("db", settings.DBPath).Msg("Settings loaded")
	return nil
}

func bindFlags(v *viper.Viper) error {
	bindings := map[string]string{
		config.KeyDBPath:    "db",
		config.KeyVerbosity: "verbose",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// openDB opens the history database named by the settings.
func openDB() (*storage.DB, error) {
	db, err := storage.Open(settings.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
