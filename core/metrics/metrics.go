package metrics

import (
	"time"
)

// AnalysisRecord summarises one completed sizing analysis for
// observability purposes.
type AnalysisRecord struct {
	ReportID            string
	BuildingType        string
	GridConnection      string
	HeatDemandKWh       float64
	RequiredPowerKW     float64
	SelectedModel       string
	Units               int
	AnnualSavingsEUR    float64
	CO2ReductionKg      float64
	PeakPowerKW         float64
	ExceedanceCount     int
	ExceedancePercent   float64
	Duration            time.Duration
	Time                time.Time
}

// Sink records analysis outcomes. Implementations live in infra/metrics.
type Sink interface {
	RecordAnalysis(rec AnalysisRecord) error
}

// ExceedanceEvent captures a single grid capacity exceedance episode.
type ExceedanceEvent struct {
	ReportID         string
	Start            time.Time
	End              time.Time
	PeakExceedanceKW float64
}

// ExceedanceRecorder is implemented by sinks able to record individual
// exceedance episodes.
type ExceedanceRecorder interface {
	RecordExceedance(ev ExceedanceEvent) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordAnalysis(AnalysisRecord) error    { return nil }
func (NopSink) RecordExceedance(ExceedanceEvent) error { return nil }

var _ Sink = NopSink{}
var _ ExceedanceRecorder = NopSink{}
