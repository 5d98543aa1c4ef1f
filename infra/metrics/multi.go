package metrics

import coremetrics "github.com/gridfit/gridfit/core/metrics"

// MultiSink fanouts analysis records to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordAnalysis forwards the record to all sinks, returning the first error encountered.
func (m *MultiSink) RecordAnalysis(rec coremetrics.AnalysisRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordAnalysis(rec); err != nil {
			return err
		}
	}
	return nil
}

// RecordExceedance forwards exceedance episodes when supported by the sink.
func (m *MultiSink) RecordExceedance(ev coremetrics.ExceedanceEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.ExceedanceRecorder); ok {
			if err := rec.RecordExceedance(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
