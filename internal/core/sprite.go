package core

import "math"

// Sprite is a drawable image reduced to what the core needs: an opacity
// mask plus the glyph and color the platform uses to display it.
type Sprite struct {
	Name  string
	Mask  *Mask
	Glyph rune
	Color Color
}

// Width returns the sprite width in canvas units.
func (s *Sprite) Width() int {
	return s.Mask.Width()
}

// Height returns the sprite height in canvas units.
func (s *Sprite) Height() int {
	return s.Mask.Height()
}

// Opaque reports whether the sprite pixel at (x, y) is visible.
func (s *Sprite) Opaque(x, y int) bool {
	return s.Mask.At(x, y)
}

// FlipV returns a vertically mirrored copy of the sprite.
func (s *Sprite) FlipV() *Sprite {
	return &Sprite{
		Name:  s.Name,
		Mask:  s.Mask.FlipV(),
		Glyph: s.Glyph,
		Color: s.Color,
	}
}

// BoundsAt returns the sprite's rectangle when drawn at canvas position (x, y).
func (s *Sprite) BoundsAt(x, y float64) Rect {
	return NewRect(Pixel(x), Pixel(y), s.Width(), s.Height())
}

// Pixel snaps a canvas coordinate to the pixel grid.
func Pixel(v float64) int {
	return int(math.Floor(v))
}
