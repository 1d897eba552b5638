package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg FlappyConfig
	if err := yaml.Unmarshal(GetDefaultYAML("flappy"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig():\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("physics:\n  base_speed: 9\npipes:\n  gap: 180\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}

	if cfg.Physics.BaseSpeed != 9 {
		t.Errorf("BaseSpeed = %v, expected 9", cfg.Physics.BaseSpeed)
	}
	if cfg.Pipes.Gap != 180 {
		t.Errorf("Gap = %d, expected 180", cfg.Pipes.Gap)
	}
	// Untouched keys keep defaults
	if cfg.Physics.Gravity != 2.5 || cfg.Canvas.Height != 600 {
		t.Errorf("missing keys should keep defaults, got gravity=%v height=%d", cfg.Physics.Gravity, cfg.Canvas.Height)
	}
}

func TestLoadFlappyErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"malformed yaml", "physics: [1, 2\n", "failed to parse"},
		{"gap too large", "pipes:\n  gap: 500\n", "max_bottom + gap"},
		{"single ground tile", "ground:\n  segments: 1\n", "ground.segments"},
		{"bottom range inverted", "pipes:\n  min_bottom: 300\n  max_bottom: 100\n", "min_bottom"},
		{"no room for top pipe", "pipes:\n  min_bottom: 380\n  max_bottom: 460\n", "max_bottom + gap"},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "cfg"+string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFlappy(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}
}

func TestValidatePipeLayout(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		wantErr  bool
	}{
		{"defaults", 100, 300, false},
		{"high bottoms", 380, 400, false},
		{"top pipe would vanish", 380, 450, true},
		{"zero bottom", 0, 100, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			cfg.Pipes.MinBottom = tc.min
			cfg.Pipes.MaxBottom = tc.max
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil {
				return
			}
			// Every accepted layout leaves a top pipe that hangs from the ceiling.
			for bottom := tc.min; bottom <= tc.max; bottom++ {
				top := cfg.PlayHeight() - bottom - cfg.Pipes.Gap
				if top <= 0 || top > cfg.Pipes.Height {
					t.Fatalf("bottom %d leaves top pipe height %d", bottom, top)
				}
			}
		})
	}
}

func TestApplyFlappyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		every   int
	}{
		{"", true, 5},
		{DifficultyEasy, true, 10},
		{DifficultyNormal, true, 5},
		{DifficultyHard, true, 3},
		{DifficultyFixed, false, 5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			ApplyFlappyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.Progression.Every != tc.every {
				t.Errorf("Every = %d, expected %d", cfg.Difficulty.Progression.Every, tc.every)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, ok := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(ok); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", ok, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestMarshalRoundTripsDefaults(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "speed_step: 1.3") {
		t.Errorf("marshalled YAML should carry the speed step:\n%s", data)
	}
}
