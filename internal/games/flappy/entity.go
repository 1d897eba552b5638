package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Body is the capability shared by everything on the canvas: it moves once
// per tick and exposes the sprite and bounds used for drawing and collisions.
type Body interface {
	// Update advances the body by one tick at the given scroll speed.
	Update(scroll float64)
	// Sprite returns the current sprite; its mask is the collision shape.
	Sprite() *core.Sprite
	// Bounds returns the sprite rectangle at the current pixel position.
	Bounds() core.Rect
	// Pos returns the top-left corner in canvas units.
	Pos() (x, y float64)
}

// Bird is the player. X never changes during a run.
type Bird struct {
	X, Y   float64
	Vel    float64 // Vertical velocity, positive is down
	Frame  int     // Index into frames, cycled every tick
	frames []*core.Sprite
	phys   config.FlappyPhysics
}

// NewBird creates a bird at rest at (x, y).
func NewBird(x, y float64, frames []*core.Sprite, phys config.FlappyPhysics) *Bird {
	return &Bird{
		X:      x,
		Y:      y,
		frames: frames,
		phys:   phys,
	}
}

// Animate advances the sprite frame without any physics.
func (b *Bird) Animate() {
	b.Frame = (b.Frame + 1) % len(b.frames)
}

// Update applies gravity and clamps the bird below the top of the canvas.
// The scroll speed does not affect the bird.
func (b *Bird) Update(float64) {
	b.Animate()
	b.Vel += b.phys.Gravity
	b.Y += b.Vel
	if b.Y < 0 {
		b.Y = 0
	}
}

// Bump replaces the current velocity with the upward jump velocity.
func (b *Bird) Bump() {
	b.Vel = -b.phys.JumpSpeed
}

func (b *Bird) Sprite() *core.Sprite { return b.frames[b.Frame] }
func (b *Bird) Bounds() core.Rect    { return b.Sprite().BoundsAt(b.X, b.Y) }
func (b *Bird) Pos() (x, y float64)  { return b.X, b.Y }

// Pipe is one half of a pipe pair.
type Pipe struct {
	X, Y     float64
	Height   int  // Visible height inside the play area
	Inverted bool // Top pipe, hanging from the ceiling
	Scored   bool // Set once the bird has passed the pair
	sprite   *core.Sprite
}

// Update scrolls the pipe left.
func (p *Pipe) Update(scroll float64) {
	p.X -= scroll
}

func (p *Pipe) Sprite() *core.Sprite { return p.sprite }
func (p *Pipe) Bounds() core.Rect    { return p.sprite.BoundsAt(p.X, p.Y) }
func (p *Pipe) Pos() (x, y float64)  { return p.X, p.Y }

// PipePair is the unit pipes are created, recycled and scored in.
type PipePair struct {
	ID     int
	Bottom *Pipe
	Top    *Pipe
}

// Update scrolls both pipes.
func (pp *PipePair) Update(scroll float64) {
	pp.Bottom.Update(scroll)
	pp.Top.Update(scroll)
}

// OffScreen reports whether the pair has fully left the canvas on the left.
func (pp *PipePair) OffScreen() bool {
	return pp.Bottom.Bounds().Right() < 0
}

// Scored reports whether the pair has already been counted.
func (pp *PipePair) Scored() bool {
	return pp.Bottom.Scored
}

// MarkScored flags both pipes of the pair.
func (pp *PipePair) MarkScored() {
	pp.Bottom.Scored = true
	pp.Top.Scored = true
}

// Ground is one terrain tile.
type Ground struct {
	X, Y   float64
	sprite *core.Sprite
}

// Update scrolls the tile left.
func (g *Ground) Update(scroll float64) {
	g.X -= scroll
}

func (g *Ground) Sprite() *core.Sprite { return g.sprite }
func (g *Ground) Bounds() core.Rect    { return g.sprite.BoundsAt(g.X, g.Y) }
func (g *Ground) Pos() (x, y float64)  { return g.X, g.Y }

// OffScreen reports whether the tile has fully left the canvas on the left.
func (g *Ground) OffScreen() bool {
	return g.Bounds().Right() < 0
}
