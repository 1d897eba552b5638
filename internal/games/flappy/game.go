// Package flappy implements a Flappy Bird-style game.
// The player flaps a bird through gaps between scrolling pipe pairs; touching
// a pipe or the ground ends the run.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Phase is a step of the run lifecycle.
type Phase int

const (
	PhaseStart    Phase = iota // Bird idles, waiting for the first flap
	PhasePlaying               // Full simulation
	PhaseDying                 // Frozen hold after a fatal collision
	PhaseGameOver              // Final score shown, waiting for restart
	PhaseQuit                  // Terminal; nothing steps or draws
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseGameOver:
		return "game_over"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Ensure Game implements registry.Game
var _ registry.Game = (*Game)(nil)

// Game implements the Flappy Bird game logic.
type Game struct {
	id, title  string
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	rng        *rand.Rand

	birdFrames   []*core.Sprite
	pipeSprite   *core.Sprite
	groundSprite *core.Sprite

	phase     Phase
	holdTicks int // Length of the Dying hold at the runtime tick rate
	hold      int // Remaining Dying ticks

	// Per-run state, rebuilt by newRun
	score     int
	speed     float64
	bird      *Bird
	pipes     *PipeManager
	ground    *GroundStrip
	tickCount int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied on top of the loaded config.
// The empty preset keeps the config's own difficulty section.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a game from cfg, loading its sprites through loader.
// Reset must be called before the first Step.
func New(id, title string, cfg config.FlappyConfig, loader core.SpriteLoader) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		id:         id,
		title:      title,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}

	for _, name := range cfg.Bird.Sprites {
		s, err := loader.LoadSprite(name)
		if err != nil {
			return nil, fmt.Errorf("flappy: bird frame: %w", err)
		}
		g.birdFrames = append(g.birdFrames, s)
	}

	pipe, err := loader.LoadSprite(cfg.Pipes.Sprite)
	if err != nil {
		return nil, fmt.Errorf("flappy: pipe: %w", err)
	}
	g.pipeSprite = fitSprite(pipe, cfg.Pipes.Width, cfg.Pipes.Height)

	ground, err := loader.LoadSprite(cfg.Ground.Sprite)
	if err != nil {
		return nil, fmt.Errorf("flappy: ground: %w", err)
	}
	g.groundSprite = fitSprite(ground, cfg.Ground.Width, cfg.Ground.Height)

	return g, nil
}

// fitSprite rescales s when its size differs from the configured one so
// that drawing, collisions and tiling agree on the same dimensions.
func fitSprite(s *core.Sprite, w, h int) *core.Sprite {
	if s.Width() == w && s.Height() == h {
		return s
	}
	scaled := *s
	scaled.Mask = s.Mask.Scale(w, h)
	return &scaled
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset seeds the RNG and starts a fresh run in the Start phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.holdTicks = g.cfg.Timing.HitPauseTicks
	if runtime.TickRate > 0 && g.cfg.Timing.TickRate > 0 {
		g.holdTicks = g.cfg.Timing.HitPauseTicks * runtime.TickRate / g.cfg.Timing.TickRate
	}

	g.newRun()
}

// newRun rebuilds every per-run entity. The RNG keeps its position so a
// replay sees different pipes than the run before it.
func (g *Game) newRun() {
	g.phase = PhaseStart
	g.hold = 0
	g.score = 0
	g.speed = g.cfg.Physics.BaseSpeed
	g.tickCount = 0

	g.bird = NewBird(g.cfg.Bird.SpawnX, g.cfg.Bird.SpawnY, g.birdFrames, g.cfg.Physics)
	g.ground = NewGroundStrip(g.groundSprite, g.cfg.Ground, float64(g.cfg.GroundY()))

	gen := NewGenerator(g.rng, g.cfg.Pipes, g.cfg.PlayHeight(), g.pipeSprite)
	g.pipes = NewPipeManager(gen, g.cfg.Pipes)
}

// Step advances the game by one tick.
// Per Playing tick the order is: input, motion, recycle, collision, score.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseQuit {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionQuit) {
		g.phase = PhaseQuit
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	var sounds []core.Sound

	switch g.phase {
	case PhaseStart:
		if in.Has(core.ActionJump) {
			g.bird.Bump()
			sounds = append(sounds, core.SoundWing)
			g.phase = PhasePlaying
		}
		g.bird.Animate()
		g.ground.Update(g.speed)
		g.ground.Recycle()

	case PhasePlaying:
		sounds = g.stepPlaying(in, sounds)

	case PhaseDying:
		g.hold--
		if g.hold <= 0 {
			g.phase = PhaseGameOver
		}

	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.newRun()
		}
	}

	return core.StepResult{State: g.State(), Sounds: sounds}
}

func (g *Game) stepPlaying(in core.InputFrame, sounds []core.Sound) []core.Sound {
	if in.Has(core.ActionJump) {
		g.bird.Bump()
		sounds = append(sounds, core.SoundWing)
	}

	g.bird.Update(g.speed)
	g.ground.Update(g.speed)
	g.pipes.Update(g.speed)

	g.ground.Recycle()
	g.pipes.Recycle()

	if Collides(g.bird, g.ground.Bodies()) || Collides(g.bird, g.pipes.Bodies()) {
		sounds = append(sounds, core.SoundHit)
		g.hold = g.holdTicks
		g.phase = PhaseDying
		if g.hold <= 0 {
			g.phase = PhaseGameOver
		}
		return sounds
	}

	passed := g.pipes.MarkPassed(g.bird.Bounds().X)
	for i := 0; i < passed; i++ {
		g.score++
		sounds = append(sounds, core.SoundPoint)
		if g.difficulty.Escalates(g.score) {
			g.speed = g.difficulty.SpeedAt(g.cfg.Physics.BaseSpeed, g.score)
		}
	}
	return sounds
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Bird returns the current run's bird.
func (g *Game) Bird() *Bird {
	return g.bird
}

// Pipes returns the current run's pipe window.
func (g *Game) Pipes() *PipeManager {
	return g.pipes
}

// Ground returns the current run's ground strip.
func (g *Game) Ground() *GroundStrip {
	return g.ground
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Speed:    g.speed,
		Phase:    g.phase.String(),
		GameOver: g.phase == PhaseDying || g.phase == PhaseGameOver,
		Quit:     g.phase == PhaseQuit,
	}
}

func factory(id, title string, ramp bool) registry.Factory {
	return func(loader core.SpriteLoader) (registry.Game, error) {
		cfg, err := config.LoadFlappy(configPath)
		if err != nil {
			return nil, err
		}
		config.ApplyFlappyPreset(&cfg, difficultyPreset)
		if !ramp {
			cfg.Difficulty.Enabled = false
		}
		g, err := New(id, title, cfg, loader)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// Register the game variants with the registry
func init() {
	registry.Register("flappy", "Flappy Bird", factory("flappy", "Flappy Bird", true))
	registry.Register("flappy_classic", "Flappy Bird Classic", factory("flappy_classic", "Flappy Bird Classic", false))
}
