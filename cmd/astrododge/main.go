// astrododge is a terminal arcade game: steer a craft around the arena and
// survive as long as you can while asteroids and pursuers close in.
//
// Usage:
//
//	astrododge                 - Play (same as "astrododge play")
//	astrododge play            - Play a round
//	astrododge config show     - Print the default game config
//	astrododge config check    - Validate a game config file
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write logs here (default: ~/.astrododge/astrododge.log)
//	--debug            - Log spawns and other per-tick events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astrododge/internal/core"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "astrododge",
	Short: "Astro Dodge - survive the asteroid field in your terminal",
	Long: `Astro Dodge is a terminal arcade game. Steer your craft (@) around the
arena, dodge the asteroids streaming in from the edges and outrun the
pursuers homing in on you. Your score is the number of seconds survived.

Available commands:
  play     - Play a round (default)
  config   - Show or validate game configuration

Examples:
  astrododge
  astrododge play --difficulty hard
  astrododge --seed 42 --debug
  astrododge config show > dodge.yaml
  astrododge config check dodge.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.astrododge/astrododge.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
