package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game configuration as YAML.

Without --config the embedded defaults are printed, which makes a good
starting point for a custom file.

Examples:
  flappy config > my-flappy.yaml
  flappy config --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagShowConfig string

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom game config YAML to validate and print")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagShowConfig == "" {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := config.LoadFlappy(flagShowConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
