package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GroundStrip tiles ground segments edge to edge and recycles the leading
// segment once it leaves the canvas.
type GroundStrip struct {
	segments []*Ground
	width    float64
	y        float64
	sprite   *core.Sprite
}

// NewGroundStrip lays out cfg.Segments tiles starting at x = 0.
func NewGroundStrip(sprite *core.Sprite, cfg config.FlappyGround, y float64) *GroundStrip {
	gs := &GroundStrip{
		segments: make([]*Ground, 0, cfg.Segments),
		width:    float64(cfg.Width),
		y:        y,
		sprite:   sprite,
	}
	for i := 0; i < cfg.Segments; i++ {
		gs.segments = append(gs.segments, &Ground{X: gs.width * float64(i), Y: y, sprite: sprite})
	}
	return gs
}

// Update moves every segment left by speed.
func (gs *GroundStrip) Update(speed float64) {
	for _, g := range gs.segments {
		g.Update(speed)
	}
}

// Recycle moves an off-screen leading segment behind the trailing one.
// The new position comes from the tile width so tiling stays seamless
// whatever the scroll speed. Returns true if a segment was recycled.
func (gs *GroundStrip) Recycle() bool {
	if len(gs.segments) < 2 || !gs.segments[0].OffScreen() {
		return false
	}
	last := gs.segments[len(gs.segments)-1]
	gs.segments = append(gs.segments[:0], gs.segments[1:]...)
	gs.segments = append(gs.segments, &Ground{X: last.X + gs.width, Y: gs.y, sprite: gs.sprite})
	return true
}

// Segments returns the tiles, leftmost first.
func (gs *GroundStrip) Segments() []*Ground {
	return gs.segments
}

// Len returns the number of tiles.
func (gs *GroundStrip) Len() int {
	return len(gs.segments)
}

// Bodies returns every tile as a collision body.
func (gs *GroundStrip) Bodies() []Body {
	bodies := make([]Body, len(gs.segments))
	for i, g := range gs.segments {
		bodies[i] = g
	}
	return bodies
}
