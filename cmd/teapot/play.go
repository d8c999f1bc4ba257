package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jfuerth/carnivorous-teapot/internal/audio"
	"github.com/jfuerth/carnivorous-teapot/internal/config"
	"github.com/jfuerth/carnivorous-teapot/internal/core"
	"github.com/jfuerth/carnivorous-teapot/internal/games/teapot"
	"github.com/jfuerth/carnivorous-teapot/internal/platform/tui"
	"github.com/jfuerth/carnivorous-teapot/internal/registry"
	"github.com/jfuerth/carnivorous-teapot/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD  - Move the teapot
  F            - Throw a knife
  Space/Enter  - Start a run / leave the game-over screen
  Q/Ctrl+C     - Quit

Examples:
  teapot play
  teapot play --config ./my-tuning.yaml
  teapot play --seed 42 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "teapot"})

	width, height := 96, 28
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game runs fine without persistence; the keeper tolerates a
		// nil store.
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	game, err := buildGame(logger, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, cfg)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// buildGame creates a fully wired game instance: tuning config, score
// persistence, and audio.
func buildGame(logger *log.Logger, store *storage.Store) (registry.Game, error) {
	created, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	g, ok := created.(*teapot.Game)
	if !ok {
		return created, nil
	}

	gameCfg, cfgErr := config.LoadTeapot(flagConfig)
	if cfgErr != nil {
		return nil, cfgErr
	}
	g.SetConfig(gameCfg)
	g.SetLogger(logger)
	g.SetScoreStore(storage.NewHighScoreKeeper(store, gameID, logger))

	if !flagMute {
		player := audio.NewPlayer(logger)
		// Init failure already logged; the player degrades to silence.
		//nolint:errcheck
		player.Init()
		g.SetCueSink(player)
	}

	return g, nil
}
