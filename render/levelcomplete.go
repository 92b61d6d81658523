package render

import (
	"image/color"

	"github.com/automoto/flagrun/config"
	"github.com/automoto/flagrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DrawLevelComplete renders the completion overlay. alpha fades it in from 0 to 1.
func DrawLevelComplete(screen *ebiten.Image, cfg config.LevelCompleteConfig, alpha float32) {
	if alpha <= 0 {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		fade(cfg.OverlayColor, alpha),
		false,
	)

	face := fonts.Title.Get()
	x, y := centerText(cfg.Message, face, width, height)
	text.Draw(screen, cfg.Message, face, x, y, fade(cfg.TextColor, alpha))
}

// centerText returns the dot position that centres s on the screen.
func centerText(s string, face font.Face, screenWidth, screenHeight int) (int, int) {
	bounds := text.BoundString(face, s)
	x := (screenWidth - bounds.Dx()) / 2
	y := (screenHeight-bounds.Dy())/2 - bounds.Min.Y
	return x, y
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha > 1 {
		alpha = 1
	}
	// color.RGBA is premultiplied, so every channel scales together.
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
