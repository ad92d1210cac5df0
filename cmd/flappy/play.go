package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagConfig  string
	flagSprites string
	flagMute    bool
	flagRecord  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Enter          - Start / play again
  Space/Up/W/K   - Flap
  Left click     - Flap
  Ctrl+S         - Save screenshot
  ?              - Toggle help
  Q/Ctrl+C       - Quit

With --record the session is stored in the trace database on quit and
can be re-simulated later with 'flappy replay'.

Examples:
  flappy play
  flappy play --mute
  flappy play --record --seed 42
  flappy play --config ./my-flappy.yaml --sprites ./my-sprites.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite sheet YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the session to the trace database")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := openLogger()
	defer closeLog()

	game, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	opts := tui.Options{
		Game:       game,
		Runtime:    runtime,
		SpritePath: flagSprites,
		Record:     flagRecord,
		Logger:     logger,
	}

	if !flagMute && game.Audio.Enabled {
		opts.Bank = audio.NewSpeakerBank(logger)
	}

	if flagRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open trace database: %v\n", err)
			// Continue without recording - game still works
		} else {
			opts.Store = store
			defer store.Close()
		}
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
