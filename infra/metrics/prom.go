package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/gridfit/gridfit/core/metrics"
)

// PromSink records analysis outcomes in Prometheus metrics.
type PromSink struct {
	analyses    *prometheus.CounterVec
	exceedances prometheus.Counter
	duration    prometheus.Histogram
	savings     prometheus.Gauge
	peakPower   prometheus.Gauge
}

// NewPromSink registers analysis metrics on the default Prometheus registerer.
// The Prometheus server should be started separately with StartPromServer.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	analyses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gridfit_analyses_total",
		Help: "Total number of completed sizing analyses",
	}, []string{"building_type", "grid_connection"})
	exceedances := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gridfit_exceedance_events_total",
		Help: "Total number of grid capacity exceedance episodes reported",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridfit_analysis_duration_seconds",
		Help:    "Time to run the full analysis pipeline",
		Buckets: prometheus.DefBuckets,
	})
	savings := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gridfit_last_annual_savings_eur",
		Help: "Annual savings of the most recent analysis",
	})
	peakPower := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gridfit_last_peak_power_kw",
		Help: "Combined peak power of the most recent analysis",
	})

	if err := reg.Register(analyses); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			analyses = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(exceedances); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			exceedances = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(savings); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			savings = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(peakPower); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			peakPower = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		analyses:    analyses,
		exceedances: exceedances,
		duration:    duration,
		savings:     savings,
		peakPower:   peakPower,
	}, nil
}

// RecordAnalysis updates counters and gauges for a completed analysis.
func (s *PromSink) RecordAnalysis(rec coremetrics.AnalysisRecord) error {
	s.analyses.WithLabelValues(rec.BuildingType, rec.GridConnection).Inc()
	s.duration.Observe(rec.Duration.Seconds())
	s.savings.Set(rec.AnnualSavingsEUR)
	s.peakPower.Set(rec.PeakPowerKW)
	return nil
}

// RecordExceedance counts one exceedance episode.
func (s *PromSink) RecordExceedance(coremetrics.ExceedanceEvent) error {
	s.exceedances.Inc()
	return nil
}
