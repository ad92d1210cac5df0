package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/storage"
	"github.com/vovakirdan/flappy-arcade/internal/trace"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded session",
	Long: `Feed a recorded trace through a fresh session and report the outcome.

The score is recomputed from the recorded inputs and timing. A trace
that no longer matches the simulation (for example after a rules
change) is reported as diverged and the command exits with status 1.

Traces store inputs and timing only, never a score, and are never loaded
back into a live game: every 'flappy play' starts fresh.

Examples:
  flappy replay 3
  flappy replay 3 --db ./flappy.db`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid trace id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trace database: %v\n", err)
		os.Exit(1)
	}
	tr, err := store.LoadTrace(id)
	store.Close()
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no trace with id %d\n", id)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trace: %v\n", err)
		os.Exit(1)
	}

	res, err := trace.Replay(tr)
	if errors.Is(err, trace.ErrDiverged) {
		fmt.Fprintf(os.Stderr, "Trace %d diverged after %d of %d events: %v\n", id, res.Events, len(tr.Events), err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying trace: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Trace %d (seed %d, %d fps)\n", id, tr.Seed, tr.FPS)
	fmt.Println()
	fmt.Printf("  Events:  %d (%d flaps)\n", res.Events, tr.Count(trace.KindFlap))
	fmt.Printf("  Length:  %s\n", res.Elapsed.Truncate(time.Millisecond))
	fmt.Printf("  Games:   %d\n", res.Games)
	fmt.Printf("  Points:  %d\n", res.Points)
	fmt.Printf("  Score:   %d\n", res.Final.Score)
	fmt.Printf("  State:   %s\n", res.Final.State)
}
