package config

import "math"

// DifficultyManager decides when the formation ramps up and by how much.
// Ramps are driven by elapsed session time, not by score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.IntervalMs > 0
}

// Due reports whether enough time has accumulated since the last ramp.
func (d *DifficultyManager) Due(sinceLastMs float64) bool {
	return d.IsEnabled() && sinceLastMs >= d.cfg.IntervalMs
}

// NextStep returns the formation step after one ramp.
func (d *DifficultyManager) NextStep(step float64) float64 {
	if d.cfg.StepMultiplier < 1 {
		return step
	}
	return step * d.cfg.StepMultiplier
}

// NextShootInterval returns the enemy shoot interval after one ramp.
// The result never drops below the configured floor and never exceeds
// the current interval.
func (d *DifficultyManager) NextShootInterval(interval float64) float64 {
	next := math.Max(interval*d.cfg.ShootIntervalMultiplier, d.cfg.MinShootIntervalMs)
	return math.Min(next, interval)
}
