package sim

import (
	"fmt"
	"sort"

	"github.com/automoto/flagrun/components"
	"github.com/automoto/flagrun/config"
	"github.com/automoto/flagrun/shared/gamemath"
	"github.com/automoto/flagrun/systems"
	"github.com/automoto/flagrun/systems/factory"
	"github.com/automoto/flagrun/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// World owns all simulation state for one playthrough and advances it one tick at a time.
type World struct {
	cfg    *config.Config
	arena  gamemath.Arena
	world  donburi.World
	logger *log.Logger

	character *donburi.Entry
	pipeline  []systems.System

	tick  int
	input Input
}

// NewWorld validates cfg and builds the level it describes.
// A nil logger falls back to the package default.
func NewWorld(cfg *config.Config, logger *log.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	w := &World{
		cfg: cfg,
		arena: gamemath.Arena{
			Width:        float64(cfg.Width),
			Height:       float64(cfg.Height),
			Gravity:      cfg.Gravity,
			GroundMargin: cfg.GroundMargin,
		},
		world:  donburi.NewWorld(),
		logger: logger,
	}

	w.character = factory.CreateLevel(w.world, cfg)

	// Order matters: kinematics, resolution, goal latch, then cosmetics.
	w.pipeline = []systems.System{
		w.updateKinematics,
		systems.WithLevelCompleteCheck(w.updateCollisions),
		w.updateGoal,
		w.updateWave,
	}

	logger.Debug("level built",
		"platforms", len(cfg.Platforms),
		"width", cfg.Width,
		"height", cfg.Height,
	)

	return w, nil
}

// Step runs one fixed tick and returns the resulting snapshot.
func (w *World) Step(in Input) Snapshot {
	w.tick++
	w.input = in

	for _, system := range w.pipeline {
		system(w.world)
	}

	return w.Snapshot()
}

func (w *World) updateKinematics(dw donburi.World) {
	systems.UpdateKinematics(dw, w.input.Controls, w.arena)
}

func (w *World) updateCollisions(dw donburi.World) {
	systems.UpdateCollisions(dw, w.arena)
}

func (w *World) updateGoal(dw donburi.World) {
	if systems.UpdateGoal(dw, w.tick) {
		box := components.Body.Get(w.character).Box
		w.logger.Info("level completed", "tick", w.tick, "x", box.X, "y", box.Y)
	}
}

func (w *World) updateWave(dw donburi.World) {
	systems.UpdateWave(dw, w.cfg.Flag.PhaseStep)
}

// Tick returns the number of steps taken so far.
func (w *World) Tick() int {
	return w.tick
}

// LevelCompleted reports whether the completion latch is set.
func (w *World) LevelCompleted() bool {
	return systems.IsLevelComplete(w.world)
}

// Character returns a copy of the character's current physical state.
func (w *World) Character() gamemath.Character {
	return gamemath.Character{
		Box:    components.Body.Get(w.character).Box,
		Motion: *components.Motion.Get(w.character),
	}
}

// Phase returns the flag's current wave phase.
func (w *World) Phase() float64 {
	if entry, ok := tags.Goal.First(w.world); ok {
		return components.Goal.Get(entry).Phase
	}
	return 0
}

// Snapshot copies out the current render state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Character: Sprite{
			Box:   components.Body.Get(w.character).Box,
			Color: components.Appearance.Get(w.character).Color,
		},
		LevelCompleted: w.LevelCompleted(),
	}

	type ordered struct {
		order  int
		sprite Sprite
	}
	var platforms []ordered
	tags.Platform.Each(w.world, func(e *donburi.Entry) {
		platforms = append(platforms, ordered{
			order: components.Platform.Get(e).Order,
			sprite: Sprite{
				Box:   components.Body.Get(e).Box,
				Color: components.Appearance.Get(e).Color,
			},
		})
	})
	sort.Slice(platforms, func(i, j int) bool { return platforms[i].order < platforms[j].order })

	s.Platforms = make([]Sprite, len(platforms))
	for i, p := range platforms {
		s.Platforms[i] = p.sprite
	}

	if entry, ok := tags.Goal.First(w.world); ok {
		s.Goal = buildFlag(w.cfg.Flag, components.Body.Get(entry).Box, components.Goal.Get(entry).Phase)
	}

	return s
}

// buildFlag lays out the pole and triangle inside the goal box. The triangle spans half
// the pole height and its tip rides the wave.
func buildFlag(cfg config.FlagConfig, box gamemath.Box, phase float64) Flag {
	offset := gamemath.WaveOffset(cfg.WaveAmplitude, phase)
	triangleHeight := cfg.PoleHeight / 2
	left := box.X + cfg.PoleWidth

	return Flag{
		Box:        box,
		Pole:       gamemath.NewBox(box.X, box.Y, cfg.PoleWidth, cfg.PoleHeight),
		WaveOffset: offset,
		Triangle: [3]Point{
			{X: left, Y: box.Y},
			{X: left + cfg.PoleHeight, Y: box.Y + triangleHeight + offset},
			{X: left, Y: box.Y + triangleHeight},
		},
		PoleColor: cfg.PoleColor,
		FlagColor: cfg.FlagColor,
	}
}
