// flappy is a terminal Flappy Bird with recorded, replayable sessions.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy serve             - Start SSH server for remote play
//	flappy traces            - List recorded sessions
//	flappy replay <id>       - Re-simulate a recorded session
//	flappy config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/flappy.db)
//	--log-file <path>   - Write logs to a file (default: no logging)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through pipes in your terminal",
	Long: `Flappy is a terminal rendition of the classic one-button game.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  traces   - List recorded sessions
  replay   - Re-simulate a recorded session
  config   - Print the effective game config

Examples:
  flappy play
  flappy play --record --seed 42
  flappy serve --ssh :2222
  flappy traces --browse
  flappy replay 3`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/flappy.db", "Path to trace database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tracesCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger builds the file logger from the global flags. The terminal
// belongs to the game, so nothing is logged to stdout or stderr.
func openLogger() (*log.Logger, func() error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, closeFn, err := logging.New(flagLogFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return logging.Discard(), func() error { return nil }
	}
	return logger, closeFn
}
