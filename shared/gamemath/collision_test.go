package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingOnPlatform(t *testing.T) {
	arena := testArena()
	platform := NewBox(100, 500, 200, 20)
	c := testCharacter(150, 0)

	ticks := 0
	for !c.Grounded {
		before := c.Box.Bottom()
		c = step(c, Controls{}, []Box{platform}, arena)
		ticks++
		require.Less(t, ticks, 100, "never landed")
		if !c.Grounded {
			require.Less(t, c.Box.Bottom(), platform.Top())
			require.Greater(t, c.Box.Bottom(), before)
		}
	}

	// Bottom sits at 50 + n(n+1)/2 after n ticks of free fall; tick 30 is the first to cross 500.
	assert.Equal(t, 30, ticks)
	assert.Equal(t, platform.Top(), c.Box.Bottom())
	assert.Equal(t, 0.0, c.Velocity)

	for i := 0; i < 30; i++ {
		c = step(c, Controls{}, []Box{platform}, arena)
		assert.True(t, c.Grounded)
		assert.Equal(t, 0.0, c.Velocity)
		assert.Equal(t, platform.Top(), c.Box.Bottom())
	}
}

func TestJumpFromPlatform(t *testing.T) {
	arena := testArena()
	platform := NewBox(100, 500, 200, 20)
	c := testCharacter(150, 0)
	c.Box.SetBottom(platform.Top())
	c.Grounded = true

	c = step(c, Controls{Jump: true}, []Box{platform}, arena)

	assert.False(t, c.Grounded)
	assert.Equal(t, -14.0, c.Velocity)
	assert.Equal(t, 486.0, c.Box.Bottom())
}

func TestJumpFromGroundLine(t *testing.T) {
	arena := testArena()
	ground := NewBox(0, arena.GroundLine(), arena.Width, arena.GroundMargin)
	c := testCharacter(100, 0)

	for i := 0; i < 60; i++ {
		c = step(c, Controls{}, []Box{ground}, arena)
	}
	require.True(t, c.Grounded)
	require.Equal(t, arena.GroundLine(), c.Box.Bottom())

	c = step(c, Controls{Jump: true}, []Box{ground}, arena)
	assert.False(t, c.Grounded)
	assert.Less(t, c.Box.Bottom(), arena.GroundLine())
}

func TestResolveIdempotent(t *testing.T) {
	arena := testArena()
	platform := NewBox(100, 500, 200, 20)
	c := testCharacter(150, 0)
	c.Box.SetBottom(platform.Top())
	c.Grounded = true

	once := Resolve(c, []Box{platform}, arena.GroundLine())
	twice := Resolve(once, []Box{platform}, arena.GroundLine())

	assert.Equal(t, c.Box, once.Box)
	assert.Equal(t, once, twice)
}

func TestResolveCeilingHit(t *testing.T) {
	c := testCharacter(0, 100)
	c.Velocity = -10
	ceiling := NewBox(0, 60, 50, 50)

	c = Resolve(c, []Box{ceiling}, 670)

	assert.Equal(t, ceiling.Bottom(), c.Box.Top())
	assert.Equal(t, 0.0, c.Velocity)
	assert.False(t, c.Grounded)
}

func TestResolveFirstPlatformWins(t *testing.T) {
	high := NewBox(0, 35, 50, 10)
	low := NewBox(0, 40, 50, 10)

	falling := testCharacter(0, 0)
	falling.Velocity = 20

	got := Resolve(falling, []Box{low, high}, 670)
	assert.Equal(t, 40.0, got.Box.Bottom())
	assert.True(t, got.Grounded)

	got = Resolve(falling, []Box{high, low}, 670)
	assert.Equal(t, 35.0, got.Box.Bottom())

	rising := testCharacter(0, 100)
	rising.Velocity = -12
	near := NewBox(0, 60, 50, 45)
	far := NewBox(0, 60, 50, 50)

	got = Resolve(rising, []Box{near, far}, 670)
	assert.Equal(t, 105.0, got.Box.Top())
	got = Resolve(rising, []Box{far, near}, 670)
	assert.Equal(t, 110.0, got.Box.Top())
}

func TestResolveLeavesLateralOverlap(t *testing.T) {
	c := testCharacter(90, 480)
	wall := NewBox(100, 400, 20, 200)

	got := Resolve(c, []Box{wall}, 670)

	assert.Equal(t, c.Box, got.Box)
	assert.False(t, got.Grounded)
}

func TestResolveDeepPenetrationNotSnapped(t *testing.T) {
	// The bottom edge went further past the top than one tick of velocity allows.
	c := testCharacter(150, 480)
	c.Velocity = 2
	platform := NewBox(100, 500, 200, 20)

	got := Resolve(c, []Box{platform}, 670)

	assert.Equal(t, c.Box, got.Box)
	assert.Equal(t, 2.0, got.Velocity)
}

func TestResolveResetsStaleGrounded(t *testing.T) {
	c := testCharacter(900, 100)
	c.Grounded = true

	got := Resolve(c, nil, 670)

	assert.False(t, got.Grounded)
}

func TestCheckCompletion(t *testing.T) {
	goal := NewBox(1180, 590, 100, 100)

	assert.True(t, CheckCompletion(testCharacter(1150, 620), goal))
	assert.False(t, CheckCompletion(testCharacter(1130, 620), goal))
}
