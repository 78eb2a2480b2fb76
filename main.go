// frameloop runs a small interactive demo of the engine: arrow keys move the
// player, buttons reset it and toggle the debug overlay, and shapes change
// color while they overlap.
//
// Usage:
//
//	frameloop [--config <path>] [--debug] [--max-delta <seconds>]
//
// Build for the browser with GOOS=js GOARCH=wasm; the canvas is placed into
// the page element named by canvas.id in the config.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/frameloop/config"
	"github.com/OpticalFlyer/frameloop/engine"
)

var (
	flagConfig   string
	flagDebug    bool
	flagMaxDelta float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frameloop",
	Short: "Run the frameloop demo scene",
	Long: `frameloop opens a window (or fills the page canvas when built for the
browser) and runs the demo scene.

Config search order:
  --config path, ~/.frameloop/config.yaml, ./configs/frameloop.yaml, built-in defaults`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("debug") {
			cfg.Render.Debug = flagDebug
		}
		if cmd.Flags().Changed("max-delta") {
			cfg.Loop.MaxDelta = flagMaxDelta
		}

		e, err := engine.NewFromConfig(cfg)
		if err != nil {
			return err
		}
		buildDemo(e)
		return e.Run(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay (toggle with F1)")
	rootCmd.Flags().Float64Var(&flagMaxDelta, "max-delta", 0, "Cap on per-frame delta time in seconds (0 = unbounded)")
}
