package config

// DifficultyManager decides when and by how much the scroll speed grows.
// The ramp is stepped: every Progression.Every points adds one SpeedStep.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type == "score" && d.cfg.Progression.Every > 0
}

// Escalates reports whether reaching this score raises the speed.
func (d *DifficultyManager) Escalates(score int) bool {
	if !d.IsEnabled() || score <= 0 {
		return false
	}
	return score%d.cfg.Progression.Every == 0
}

// SpeedAt returns the scroll speed a run has after reaching score points
// one at a time from the base speed.
func (d *DifficultyManager) SpeedAt(baseSpeed float64, score int) float64 {
	if !d.IsEnabled() || score <= 0 {
		return baseSpeed
	}
	return baseSpeed + float64(score/d.cfg.Progression.Every)*d.cfg.Scaling.SpeedStep
}
