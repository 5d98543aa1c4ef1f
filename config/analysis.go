package config

import (
	"fmt"
	"time"
)

// AnalysisConfig carries the pipeline defaults applied to every request
// that does not override them.
type AnalysisConfig struct {
	// Year anchors the synthetic hourly profiles.
	Year            int     `json:"year"`
	IntervalMinutes int     `json:"interval_minutes"`
	BufferKWh       float64 `json:"buffer_kwh"`
	PreferHT        bool    `json:"prefer_ht"`
}

// SetDefaults applies sane defaults.
func (c *AnalysisConfig) SetDefaults() {
	if c.Year == 0 {
		c.Year = time.Now().UTC().Year()
	}
	if c.IntervalMinutes == 0 {
		c.IntervalMinutes = 60
	}
	if c.BufferKWh == 0 {
		c.BufferKWh = 50
	}
}

// Validate checks mandatory fields.
func (c AnalysisConfig) Validate() error {
	if c.Year < 1900 || c.Year > 2200 {
		return fmt.Errorf("year %d out of range", c.Year)
	}
	if c.IntervalMinutes <= 0 {
		return fmt.Errorf("interval_minutes must be positive")
	}
	if c.BufferKWh < 0 {
		return fmt.Errorf("buffer_kwh must not be negative")
	}
	return nil
}
