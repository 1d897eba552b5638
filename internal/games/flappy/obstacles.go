package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Generator produces pipe pairs with a random bottom height and a fixed gap.
type Generator struct {
	rng        *rand.Rand
	cfg        config.FlappyPipes
	playHeight int
	sprite     *core.Sprite // Bottom pipe
	flipped    *core.Sprite // Top pipe
	nextID     int
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand, cfg config.FlappyPipes, playHeight int, sprite *core.Sprite) *Generator {
	return &Generator{
		rng:        rng,
		cfg:        cfg,
		playHeight: playHeight,
		sprite:     sprite,
		flipped:    sprite.FlipV(),
	}
}

// Generate creates a pair at spawnX. The bottom height is uniform in
// [MinBottom, MaxBottom]; the top pipe takes what is left above the gap.
func (g *Generator) Generate(spawnX float64) *PipePair {
	bottomH := g.cfg.MinBottom + g.rng.Intn(g.cfg.MaxBottom-g.cfg.MinBottom+1)
	topH := g.playHeight - bottomH - g.cfg.Gap

	g.nextID++
	return &PipePair{
		ID: g.nextID,
		Bottom: &Pipe{
			X:      spawnX,
			Y:      float64(g.playHeight - bottomH),
			Height: bottomH,
			sprite: g.sprite,
		},
		Top: &Pipe{
			X:        spawnX,
			Y:        -float64(g.sprite.Height() - topH),
			Height:   topH,
			Inverted: true,
			sprite:   g.flipped,
		},
	}
}

// PipeManager keeps a fixed window of pipe pairs, replacing the oldest
// pair once it scrolls off the canvas.
type PipeManager struct {
	pairs []*PipePair
	gen   *Generator
	cfg   config.FlappyPipes
}

// NewPipeManager creates the initial pairs at FirstX, FirstX+Spacing, ...
func NewPipeManager(gen *Generator, cfg config.FlappyPipes) *PipeManager {
	pm := &PipeManager{
		pairs: make([]*PipePair, 0, cfg.InitialPairs),
		gen:   gen,
		cfg:   cfg,
	}
	for i := 0; i < cfg.InitialPairs; i++ {
		x := cfg.FirstX + cfg.Spacing*i
		pm.pairs = append(pm.pairs, gen.Generate(float64(x)))
	}
	return pm
}

// Update moves every pair left by speed.
func (pm *PipeManager) Update(speed float64) {
	for _, pp := range pm.pairs {
		pp.Update(speed)
	}
}

// Recycle drops the oldest pair if it is off-screen and spawns a new one
// at RespawnX. Returns true if a pair was replaced.
func (pm *PipeManager) Recycle() bool {
	if len(pm.pairs) == 0 || !pm.pairs[0].OffScreen() {
		return false
	}
	pm.pairs = append(pm.pairs[:0], pm.pairs[1:]...)
	pm.pairs = append(pm.pairs, pm.gen.Generate(float64(pm.cfg.RespawnX)))
	return true
}

// MarkPassed scores every unscored pair whose right edge is strictly left
// of birdLeft and returns how many were newly passed.
func (pm *PipeManager) MarkPassed(birdLeft int) int {
	passed := 0
	for _, pp := range pm.pairs {
		if !pp.Scored() && pp.Bottom.Bounds().Right() < birdLeft {
			pp.MarkScored()
			passed++
		}
	}
	return passed
}

// Pairs returns the current pairs, oldest first.
func (pm *PipeManager) Pairs() []*PipePair {
	return pm.pairs
}

// Len returns the number of individual pipes (always even).
func (pm *PipeManager) Len() int {
	return 2 * len(pm.pairs)
}

// Bodies returns every pipe as a collision body.
func (pm *PipeManager) Bodies() []Body {
	bodies := make([]Body, 0, pm.Len())
	for _, pp := range pm.pairs {
		bodies = append(bodies, pp.Bottom, pp.Top)
	}
	return bodies
}
