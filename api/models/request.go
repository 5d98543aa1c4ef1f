package models

import "github.com/gridfit/gridfit/core/model"

// AnalysisRequest is the POST /api/v1/analyses body: the manual energy
// data plus optional pipeline overrides.
type AnalysisRequest struct {
	model.ManualEnergyData
	Year            int     `json:"year,omitempty"`
	PreferHT        bool    `json:"prefer_ht,omitempty"`
	IntervalMinutes int     `json:"interval_minutes,omitempty"`
	BufferKWh       float64 `json:"buffer_kwh,omitempty"`
}
