package core

// SpriteLoader resolves sprites by name. Loading failures are fatal to
// the caller; there is no placeholder sprite.
type SpriteLoader interface {
	LoadSprite(name string) (*Sprite, error)
}

// Presenter is the drawing surface games render into. Coordinates are
// canvas units; the platform maps them to whatever it displays on.
type Presenter interface {
	// Clear blanks the whole canvas.
	Clear()

	// Draw places a sprite with its top-left corner at (x, y).
	// Only opaque mask pixels are drawn.
	Draw(s *Sprite, x, y float64)

	// DrawText writes a line of text starting at (x, y).
	DrawText(x, y float64, text string)

	// DrawTextCentered writes a line of text centered horizontally at y.
	DrawTextCentered(y float64, text string)
}
