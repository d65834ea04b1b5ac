package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/astrododge/internal/config"
	"github.com/vovakirdan/astrododge/internal/core"
	"github.com/vovakirdan/astrododge/internal/games/dodge"
	"github.com/vovakirdan/astrododge/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHold       time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of Astro Dodge.

Controls:
  Arrows/WASD  - Steer (hold to accelerate)
  P/Esc        - Pause
  R/Click      - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer, slower asteroids and a later first pursuer
  normal - The default config
  hard   - More, faster asteroids and an earlier first pursuer
  fixed  - No progression, the asteroid count stays at its base value

Examples:
  astrododge play
  astrododge play --difficulty easy
  astrododge play --config ./my-dodge.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags. The root command shares them so a
// bare "astrododge" behaves like "astrododge play".
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultFirstHold, "How long a fresh key press counts as held (set above your key-repeat delay)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	// The TUI has not taken the terminal yet, so config warnings go to stderr.
	startupLog := log.NewWithOptions(os.Stderr, log.Options{Prefix: "astrododge"})
	gameCfg, err := config.LoadDodge(flagConfig, startupLog)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config.ApplyPreset(&gameCfg, preset)

	logger, closeLog, err := openLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	defaults := core.DefaultConfig()
	width, height := defaults.ScreenW, defaults.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting",
		"difficulty", preset,
		"config", flagConfig,
		"fps", cfg.TickRate,
		"seed", cfg.Seed,
		"hold", flagHold,
	)

	game := dodge.New(gameCfg, logger)
	opts := tui.Options{FirstHold: flagHold, Logger: logger}
	if err := tui.Run(game, cfg, opts); err != nil {
		logger.Error("game aborted", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
