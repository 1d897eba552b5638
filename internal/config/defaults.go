package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: FlappyCanvas{
			Width:  400,
			Height: 600,
		},
		Physics: FlappyPhysics{
			Gravity:   2.5,
			JumpSpeed: 20,
			BaseSpeed: 15,
		},
		Bird: FlappyBird{
			SpawnX:  66,
			SpawnY:  300,
			Sprites: []string{"bird-upflap", "bird-midflap", "bird-downflap"},
		},
		Pipes: FlappyPipes{
			Sprite:       "pipe",
			Width:        80,
			Height:       500,
			Gap:          150,
			MinBottom:    100,
			MaxBottom:    300,
			InitialPairs: 2,
			FirstX:       800,
			Spacing:      400,
			RespawnX:     800,
		},
		Ground: FlappyGround{
			Sprite:   "base",
			Width:    800,
			Height:   100,
			Segments: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				Every: 5,
			},
			Scaling: ScalingConfig{
				SpeedStep: 1.3,
			},
		},
		Timing: FlappyTiming{
			TickRate:      15,
			HitPauseTicks: 15,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy", "flappy_classic":
		return defaultFlappyYAML
	default:
		return nil
	}
}
