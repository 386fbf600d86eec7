// gsnake is a terminal snake game steered by hand gestures.
//
// Usage:
//
//	gsnake                          - Play with the keyboard
//	gsnake --source exec:"tracker"  - Play with gestures from a tracking sidecar
//	gsnake --headless --ticks 50    - Run without a UI, logging to stderr
//	gsnake --list-sources           - List landmark frame sources
//	gsnake --print-config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.gsnake/config.yaml)
//	--fps <rate>     - Tick rate override
//	--seed <value>   - RNG seed for reproducible food placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import sensing to register the frame sources
	_ "github.com/vovakirdan/gesture-snake/internal/sensing"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gsnake",
	Short: "Gesture Snake - steer a snake with your thumb",
	Long: `Gesture Snake is a terminal snake game. The snake follows the direction
your thumb points to, as seen by a hand tracker that streams landmarks as
newline-delimited JSON. The keyboard always works too.

Controls:
  Arrows/WASD  - Steer, move in menus
  Enter        - Select
  Esc/B        - Back to menu
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  gsnake
  gsnake --source stdin < hands.ndjson
  gsnake --source file:./hands.ndjson --skin neon
  gsnake --source "exec:python3 tracker.py --camera 0"
  gsnake --headless --source file:./hands.ndjson --ticks 100
  gsnake --print-config --defaults > ~/.gsnake/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, then time based)")
}
