// arena-duel is a two-player split-keyboard fighting demo.
//
// Usage:
//
//	arena-duel [--debug] [--log-level LEVEL]
//
// Player 1 moves with the arrow keys (Up jumps); Player 2 uses A, D and W.
package main

import (
	"fmt"
	"os"

	"github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/fonts"
	"github.com/automoto/arena-duel/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagDebug    bool
	flagLogLevel string
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(logger *log.Logger) (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.TimerFontSize, config.UI.NameFontSize); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	return &Game{
		scene: scenes.NewArenaScene(logger),
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "arena-duel",
	Short: "Two-player local fighting demo",
	Long: `Two fighters, one keyboard, three minutes.

Controls:
  Player 1  Left/Right arrows to move, Up arrow to jump
  Player 2  A/D to move, W to jump

Examples:
  arena-duel
  arena-duel --debug --log-level debug`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Outline collision rectangles")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runGame(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena-duel",
		Level:           level,
	})
	config.Debug.ShowHitboxes = flagDebug

	game, err := NewGame(logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Arena Duel")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	logger.Info("starting", "debug", flagDebug)
	return ebiten.RunGame(game)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
