package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play the game",
	Long: `Start playing. The variant defaults to "flappy".

Variants:
  flappy          - Scroll speed grows every few points
  flappy_classic  - Constant scroll speed

Controls:
  Space/Up/W - Flap (also starts the run)
  R          - Replay (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Speed grows every 10 points
  normal - Speed grows every 5 points
  hard   - Speed grows every 3 points
  fixed  - Speed never grows

Examples:
  flappy play
  flappy play flappy_classic
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "flappy"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'flappy list' to see available variants", gameID)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	lib, err := assets.Load()
	if err != nil {
		logger.Error("Cannot load sprites", "err", err)
		return err
	}
	logger.Debug("Loaded sprite sheet", "sprites", lib.Names())

	game, err := registry.Create(gameID, lib)
	if err != nil {
		logger.Error("Cannot create game", "game", gameID, "err", err)
		return err
	}

	width, height := 80, 24 // Defaults
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

	logger.Info("Starting game", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate, "difficulty", flagDifficulty)

	player := audio.Open(flagMute, logger)
	if err := tui.Run(game, player, cfg, logger); err != nil {
		logger.Error("Game stopped", "err", err)
		return err
	}
	return nil
}
