package scenes

import (
	"sync"

	"github.com/automoto/flagrun/config"
	"github.com/automoto/flagrun/controls"
	"github.com/automoto/flagrun/render"
	"github.com/automoto/flagrun/sim"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scene is a single screen driven by the ebiten game loop.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type PlatformerScene struct {
	cfg    *config.Config
	logger *log.Logger

	world    *sim.World
	input    sim.InputSource
	snapshot sim.Snapshot

	overlay      *gween.Tween
	overlayAlpha float32
	debug        bool

	once sync.Once
	err  error
}

// NewPlatformerScene creates the scene. The level itself is built on the first Update.
func NewPlatformerScene(cfg *config.Config, logger *log.Logger) *PlatformerScene {
	return &PlatformerScene{cfg: cfg, logger: logger}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		ps.debug = !ps.debug
	}

	in := ps.input.Poll()
	if in.Quit {
		ps.logger.Info("quit requested", "tick", ps.world.Tick())
		return ebiten.Termination
	}

	ps.Render(ps.world.Step(in))
	ps.updateOverlay()
	return nil
}

// Render keeps the latest snapshot for the next Draw call.
func (ps *PlatformerScene) Render(snap sim.Snapshot) {
	ps.snapshot = snap
}

func (ps *PlatformerScene) updateOverlay() {
	if !ps.snapshot.LevelCompleted {
		return
	}
	if ps.overlay == nil {
		ps.overlay = gween.New(0, 1, ps.cfg.LevelComplete.FadeSeconds, ease.OutQuad)
	}
	ps.overlayAlpha, _ = ps.overlay.Update(1 / float32(ebiten.TPS()))
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.world == nil {
		screen.Fill(ps.cfg.Background)
		return
	}

	render.DrawLevel(screen, ps.snapshot, ps.cfg.Background)
	render.DrawGoal(screen, ps.snapshot)
	render.DrawCharacter(screen, ps.snapshot)

	if ps.debug {
		render.DrawDebug(screen, ps.snapshot, ps.cfg.Flag.DebugColor)
	}

	render.DrawLevelComplete(screen, ps.cfg.LevelComplete, ps.overlayAlpha)
}

func (ps *PlatformerScene) configure() {
	world, err := sim.NewWorld(ps.cfg, ps.logger)
	if err != nil {
		ps.err = err
		return
	}

	ps.world = world
	ps.input = controls.NewPoller()
	ps.snapshot = world.Snapshot()
}
