package config

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidConfig is returned by Validate for configurations the simulation cannot run.
var ErrInvalidConfig = errors.New("invalid config")

// CharacterConfig contains all character-related configuration values
type CharacterConfig struct {
	// Spawn position (top-left corner)
	StartX float64
	StartY float64

	// Dimensions
	Width  float64
	Height float64

	// Movement
	Speed     float64 // Horizontal units per tick while a direction is held
	JumpPower float64 // Vertical velocity applied on jump (negative = upward)

	Color color.RGBA
}

// PlatformSpec describes a single static platform in the level layout
type PlatformSpec struct {
	X, Y          float64
	Width, Height float64
}

// FlagConfig contains goal marker configuration
type FlagConfig struct {
	// Anchor is where the pole meets the ground
	AnchorX float64
	AnchorY float64

	// Collision surface size
	Width  float64
	Height float64

	PoleWidth  float64
	PoleHeight float64

	// Wave animation
	PhaseStep     float64 // Phase increment per tick
	WaveAmplitude float64 // Peak displacement of the flag tip

	PoleColor  color.RGBA
	FlagColor  color.RGBA
	DebugColor color.RGBA
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	Message      string
	TextColor    color.RGBA
	FadeSeconds  float32 // Duration of the overlay fade-in
	FontSize     float64
	OverlayColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int
	Height int

	// Physics
	Gravity      float64 // Downward velocity added every tick
	GroundMargin float64 // Distance of the ground line above the bottom screen edge

	TickRate int // Simulation ticks per second

	// Broad phase cell size for the collision space
	CellSize int

	Background    color.RGBA
	PlatformColor color.RGBA

	Character     CharacterConfig
	Platforms     []PlatformSpec
	Flag          FlagConfig
	LevelComplete LevelCompleteConfig
}

// GroundLine returns the y coordinate the character's bottom edge can never pass.
func (c *Config) GroundLine() float64 {
	return float64(c.Height) - c.GroundMargin
}

// Validate checks that the configuration describes a playable level.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, c.TickRate)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	if c.GroundMargin < 0 || c.GroundMargin > float64(c.Height) {
		return fmt.Errorf("%w: ground margin %v", ErrInvalidConfig, c.GroundMargin)
	}
	ch := c.Character
	if ch.Width <= 0 || ch.Height <= 0 {
		return fmt.Errorf("%w: character size %vx%v", ErrInvalidConfig, ch.Width, ch.Height)
	}
	if ch.Width > float64(c.Width) {
		return fmt.Errorf("%w: character wider than screen", ErrInvalidConfig)
	}
	for i, p := range c.Platforms {
		if p.Width < 0 || p.Height < 0 {
			return fmt.Errorf("%w: platform %d has size %vx%v", ErrInvalidConfig, i, p.Width, p.Height)
		}
	}
	if c.Flag.Width < 0 || c.Flag.Height < 0 {
		return fmt.Errorf("%w: flag size %vx%v", ErrInvalidConfig, c.Flag.Width, c.Flag.Height)
	}
	return nil
}

// Global configuration instance
var C *Config

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	SkyBlue      = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	FieldGreen   = color.RGBA{R: 34, G: 177, B: 76, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	ClearOverlay = color.RGBA{R: 255, G: 255, B: 255, A: 60}
)

func init() {
	C = Default()
}

// Default returns a fresh copy of the built-in level and physics settings.
func Default() *Config {
	const (
		width  = 1280
		height = 720
	)

	return &Config{
		Title:  "2D Platformer",
		Width:  width,
		Height: height,

		Gravity:      1,
		GroundMargin: 50,
		TickRate:     60,
		CellSize:     32,

		Background:    SkyBlue,
		PlatformColor: FieldGreen,

		Character: CharacterConfig{
			StartX:    100,
			StartY:    height - 100,
			Width:     50,
			Height:    50,
			Speed:     5,
			JumpPower: -15,
			Color:     Red,
		},

		Platforms: []PlatformSpec{
			{X: 0, Y: height - 50, Width: width, Height: 50}, // Ground
			{X: 100, Y: height - 150, Width: 200, Height: 20},
			{X: 300, Y: height - 250, Width: 200, Height: 20},
			{X: 500, Y: height - 350, Width: 200, Height: 20},
		},

		Flag: FlagConfig{
			AnchorX:       width - 100,
			AnchorY:       height - 50,
			Width:         100,
			Height:        100,
			PoleWidth:     10,
			PoleHeight:    80,
			PhaseStep:     0.1,
			WaveAmplitude: 6,
			PoleColor:     Black,
			FlagColor:     Red,
			DebugColor:    Cyan,
		},

		LevelComplete: LevelCompleteConfig{
			Message:      "Level Completed!",
			TextColor:    Black,
			FadeSeconds:  0.5,
			FontSize:     42,
			OverlayColor: ClearOverlay,
		},
	}
}
