package main

import (
	"os"

	"github.com/automoto/flagrun/config"
	"github.com/automoto/flagrun/fonts"
	"github.com/automoto/flagrun/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Game struct {
	cfg   *config.Config
	scene scenes.Scene
}

func NewGame(cfg *config.Config, logger *log.Logger) *Game {
	return &Game{
		cfg:   cfg,
		scene: scenes.NewPlatformerScene(cfg, logger),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flagrun",
	})

	cfg := config.C
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	if err := fonts.LoadFontWithSize(fonts.Title, goregular.TTF, cfg.LevelComplete.FontSize); err != nil {
		logger.Fatal("load font", "err", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TickRate)

	logger.Info("starting",
		"width", cfg.Width,
		"height", cfg.Height,
		"tps", cfg.TickRate,
	)

	if err := ebiten.RunGame(NewGame(cfg, logger)); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}
