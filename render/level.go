package render

import (
	"image"
	"image/color"

	"github.com/automoto/flagrun/shared/gamemath"
	"github.com/automoto/flagrun/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is a 1x1 white texture for untextured triangles.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawLevel clears the sky and draws every platform.
func DrawLevel(screen *ebiten.Image, snap sim.Snapshot, background color.RGBA) {
	screen.Fill(background)

	for _, p := range snap.Platforms {
		fillBox(screen, p.Box, p.Color)
	}
}

// DrawCharacter draws the character's box.
func DrawCharacter(screen *ebiten.Image, snap sim.Snapshot) {
	fillBox(screen, snap.Character.Box, snap.Character.Color)
}

// DrawGoal draws the flag pole and its waving triangle.
func DrawGoal(screen *ebiten.Image, snap sim.Snapshot) {
	flag := snap.Goal
	fillBox(screen, flag.Pole, flag.PoleColor)

	var path vector.Path
	path.MoveTo(float32(flag.Triangle[0].X), float32(flag.Triangle[0].Y))
	path.LineTo(float32(flag.Triangle[1].X), float32(flag.Triangle[1].Y))
	path.LineTo(float32(flag.Triangle[2].X), float32(flag.Triangle[2].Y))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := normalize(flag.FlagColor)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

// DrawDebug outlines every collision box.
func DrawDebug(screen *ebiten.Image, snap sim.Snapshot, c color.RGBA) {
	for _, p := range snap.Platforms {
		strokeBox(screen, p.Box, c)
	}
	strokeBox(screen, snap.Goal.Box, c)
	strokeBox(screen, snap.Character.Box, c)
}

func fillBox(screen *ebiten.Image, b gamemath.Box, c color.RGBA) {
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

func strokeBox(screen *ebiten.Image, b gamemath.Box, c color.RGBA) {
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

func normalize(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}
