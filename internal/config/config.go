// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all tunables of the Flappy Bird simulation.
type FlappyConfig struct {
	Canvas     FlappyCanvas     `yaml:"canvas"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Bird       FlappyBird       `yaml:"bird"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Ground     FlappyGround     `yaml:"ground"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timing     FlappyTiming     `yaml:"timing"`
}

// FlappyCanvas defines the logical play area in canvas units.
type FlappyCanvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FlappyPhysics defines motion parameters.
type FlappyPhysics struct {
	Gravity   float64 `yaml:"gravity"`    // Added to the bird's velocity each tick
	JumpSpeed float64 `yaml:"jump_speed"` // Bump sets velocity to -JumpSpeed
	BaseSpeed float64 `yaml:"base_speed"` // Initial scroll speed per tick
}

// FlappyBird defines the bird's spawn point and sprites.
type FlappyBird struct {
	SpawnX  float64  `yaml:"spawn_x"`
	SpawnY  float64  `yaml:"spawn_y"`
	Sprites []string `yaml:"sprites"` // Animation frames, cycled every tick
}

// FlappyPipes defines pipe geometry and placement.
type FlappyPipes struct {
	Sprite       string `yaml:"sprite"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Gap          int    `yaml:"gap"`
	MinBottom    int    `yaml:"min_bottom"` // Inclusive range of the random bottom height
	MaxBottom    int    `yaml:"max_bottom"`
	InitialPairs int    `yaml:"initial_pairs"`
	FirstX       int    `yaml:"first_x"`   // Spawn x of the first pair at run start
	Spacing      int    `yaml:"spacing"`   // Distance between initial pairs
	RespawnX     int    `yaml:"respawn_x"` // Spawn x of a pair replacing a recycled one
}

// FlappyGround defines the ground tiles.
type FlappyGround struct {
	Sprite   string `yaml:"sprite"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Segments int    `yaml:"segments"`
}

// FlappyTiming defines tick-based timings.
type FlappyTiming struct {
	TickRate      int `yaml:"tick_rate"`       // Simulation ticks per second
	HitPauseTicks int `yaml:"hit_pause_ticks"` // Hold after a fatal collision
}

// DifficultyConfig defines the stepped speed ramp.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines when difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`  // "score" or "none"
	Every int    `yaml:"every"` // Escalate whenever the score is a multiple of this
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedStep float64 `yaml:"speed_step"` // Added to scroll speed at each escalation
}

// GroundY returns the canvas y of the ground's top edge.
func (c FlappyConfig) GroundY() int {
	return c.Canvas.Height - c.Ground.Height
}

// PlayHeight is the height pipe pairs are laid out against. It is the full
// canvas, so bottom pipes extend behind the ground.
func (c FlappyConfig) PlayHeight() int {
	return c.Canvas.Height
}

// Validate reports configuration values the simulation cannot honor.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas must have a positive size, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative")
	check(c.Physics.BaseSpeed > 0, "physics.base_speed must be positive")
	check(len(c.Bird.Sprites) > 0, "bird.sprites must list at least one frame")
	check(c.Pipes.Width > 0 && c.Pipes.Height > 0, "pipes must have a positive size")
	check(c.Pipes.Gap > 0, "pipes.gap must be positive")
	check(c.Pipes.MinBottom > 0 && c.Pipes.MinBottom <= c.Pipes.MaxBottom,
		"pipes.min_bottom must be in (0, max_bottom], got %d..%d", c.Pipes.MinBottom, c.Pipes.MaxBottom)
	check(c.Pipes.MaxBottom+c.Pipes.Gap < c.PlayHeight(),
		"pipes.max_bottom + gap must leave room for the top pipe, got %d + %d >= %d",
		c.Pipes.MaxBottom, c.Pipes.Gap, c.PlayHeight())
	check(c.PlayHeight()-c.Pipes.MinBottom-c.Pipes.Gap <= c.Pipes.Height,
		"pipes.height is too short for the tallest top pipe")
	check(c.Pipes.InitialPairs > 0, "pipes.initial_pairs must be positive")
	check(c.Ground.Width > 0 && c.Ground.Height > 0, "ground must have a positive size")
	check(c.Ground.Segments >= 2, "ground.segments must be at least 2")
	check(c.Timing.TickRate > 0, "timing.tick_rate must be positive")
	check(c.Timing.HitPauseTicks >= 0, "timing.hit_pause_ticks must not be negative")
	if c.Difficulty.Enabled && c.Difficulty.Progression.Type == "score" {
		check(c.Difficulty.Progression.Every > 0, "difficulty.progression.every must be positive")
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid flappy config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "keep config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// EscalationEveryForPreset returns the escalation interval for a preset.
func EscalationEveryForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 10
	case DifficultyHard:
		return 3
	default:
		return 5
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
