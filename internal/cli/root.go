// Package cli implements the command-line interface for snapgrid.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmelgaard/snapgrid/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "snapgrid",
	Short: "Snapgrid Jigsaw Puzzle",
	Long: `Snapgrid - a sliding jigsaw puzzle for the terminal.

Drag scattered tiles into a 3x3 or 4x4 grid; tiles snap into place when
dropped close enough to their cell. Completed puzzles are recorded so you
can review your history and per-grid statistics.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.snapgrid/snapgrid.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getDBPath returns the database path from flag or default.
func getDBPath() string {
	return dbPath
}

// openDB opens (and migrates) the completions database.
func openDB() (*storage.DB, error) {
	path := getDBPath()
	var db *storage.DB
	var err error

	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
