package config

// DifficultyManager derives score-dependent game parameters.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// ObstacleCap returns the maximum number of live obstacles at the given score:
// min(floor(score/step)+base, max). With progression disabled the cap stays at base.
func (d *DifficultyManager) ObstacleCap(score int) int {
	base := d.cfg.Scaling.BaseObstacles
	maxCap := d.cfg.Scaling.MaxObstacles
	if maxCap < base {
		maxCap = base
	}
	if !d.IsEnabled() || score < 0 {
		return base
	}

	step := d.cfg.Progression.Step
	if step <= 0 {
		step = 1 // Prevent division by zero
	}
	return min(score/step+base, maxCap)
}

// MaxObstacles returns the saturation value of the cap, which is also the
// capacity the obstacle pool must be built with.
func (d *DifficultyManager) MaxObstacles() int {
	return max(d.cfg.Scaling.MaxObstacles, d.cfg.Scaling.BaseObstacles)
}

// Speed scales a drawn base speed by the preset's multiplier.
func (d *DifficultyManager) Speed(base float64) float64 {
	m := d.cfg.Scaling.SpeedMultiplier
	if m <= 0 {
		m = 1.0
	}
	return base * m
}
