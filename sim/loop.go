package sim

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// GameLoop drives a World at a fixed tick rate without a window. Each tick polls input,
// steps the world and hands the snapshot to the renderer. A Quit input or Stop ends it.
type GameLoop struct {
	world    *World
	input    InputSource
	renderer Renderer
	tickRate int
	logger   *log.Logger

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(world *World, tickRate int, input InputSource, renderer Renderer) *GameLoop {
	return &GameLoop{
		world:    world,
		input:    input,
		renderer: renderer,
		tickRate: tickRate,
		logger:   world.logger,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the input source asks to quit or Stop is called.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.logger.Info("game loop started", "tps", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.stopped("stop")
			return
		default:
		}

		if !g.tick() {
			g.stopped("quit")
			return
		}

		select {
		case <-g.stopChan:
			g.stopped("stop")
			return
		case <-ticker.C:
		}
	}
}

// Stop ends Run from another goroutine. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

func (g *GameLoop) tick() bool {
	in := g.input.Poll()
	if in.Quit {
		return false
	}

	g.renderer.Render(g.world.Step(in))
	return true
}

func (g *GameLoop) stopped(reason string) {
	g.logger.Info("game loop stopped", "reason", reason, "ticks", g.world.Tick())
}
