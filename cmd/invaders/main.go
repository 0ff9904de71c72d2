// invaders is a terminal Space Invaders clone.
//
// Usage:
//
//	invaders                 - Play a game (same as play)
//	invaders play            - Play a game
//	invaders menu            - Pick a mode interactively
//	invaders scores          - Show high scores
//	invaders config          - Print the effective game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Set log file path (default: ~/.arcade/invaders.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - defend the bottom of your terminal",
	Long: `Invaders is a terminal Space Invaders clone.

A formation of enemies marches side to side and steps down every time it
touches a wall. Shoot them all before one of them reaches the ground.

Available commands:
  play     - Play a game directly
  menu     - Interactive mode picker
  scores   - View high scores
  config   - Print the effective game config

Examples:
  invaders play
  invaders play --endless --difficulty hard
  invaders menu
  invaders scores --endless`,
	Args:         cobra.NoArgs,
	RunE:         runPlay,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/invaders.log", "Path to log file (empty to disable)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Running without a subcommand plays the classic game
	addGameFlags(rootCmd)
	rootCmd.Flags().BoolVar(&flagEndless, "endless", false, "Spawn a new wave whenever the formation is cleared")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// openLogger opens the log file. The terminal belongs to the game while it
// runs, so logs never go to stderr. The returned closer is never nil.
func openLogger() (*log.Logger, io.Closer) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil)
	}

	path := expandHome(flagLogPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f
}

// openStore opens the scores database. A failure is reported and the game
// runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
