package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
)

var tracesCmd = &cobra.Command{
	Use:   "traces",
	Short: "List recorded sessions",
	Long: `Display the most recent recorded sessions.

With --browse an interactive table is shown where traces can be
replayed (enter) or deleted (d).

Examples:
  flappy traces
  flappy traces --limit 50
  flappy traces --browse`,
	Args: cobra.NoArgs,
	Run:  runTraces,
}

func init() {
	tracesCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of traces to list")
	tracesCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive trace browser")
}

func runTraces(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trace database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunTraces(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running trace browser: %v\n", err)
			os.Exit(1)
		}
		return
	}

	traces, err := store.ListTraces(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving traces: %v\n", err)
		os.Exit(1)
	}

	if len(traces) == 0 {
		fmt.Println("No traces recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play --record' to record one.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Recorded", "Seed", "Length", "Inputs")
	for _, row := range tui.TraceRows(traces) {
		t.Row(row...)
	}
	fmt.Println(t)
}
