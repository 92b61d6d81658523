package gamemath

import "fmt"

// Box is an axis-aligned rectangle in screen space (origin top-left, y grows downward).
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox returns a box with the given top-left corner and size.
// A negative width or height is a programming error and panics.
func NewBox(x, y, w, h float64) Box {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("gamemath: negative box size %vx%v", w, h))
	}
	return Box{X: x, Y: y, W: w, H: h}
}

func (b Box) Left() float64   { return b.X }
func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Top() float64    { return b.Y }
func (b Box) Bottom() float64 { return b.Y + b.H }

// SetBottom moves the box vertically so its bottom edge lies on y.
func (b *Box) SetBottom(y float64) {
	b.Y = y - b.H
}

// SetTop moves the box vertically so its top edge lies on y.
func (b *Box) SetTop(y float64) {
	b.Y = y
}

// Overlaps reports whether the two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Inflate grows the box by d on every side.
func (b Box) Inflate(d float64) Box {
	return Box{X: b.X - d, Y: b.Y - d, W: b.W + 2*d, H: b.H + 2*d}
}
