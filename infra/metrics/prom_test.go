package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/gridfit/gridfit/core/metrics"
)

func TestPromSinkRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	err = sink.RecordAnalysis(coremetrics.AnalysisRecord{
		ReportID:         "r1",
		BuildingType:     "flats",
		GridConnection:   "3x80a",
		AnnualSavingsEUR: 1200,
		PeakPowerKW:      42,
		Duration:         50 * time.Millisecond,
	})
	require.NoError(t, err)

	er, ok := sink.(coremetrics.ExceedanceRecorder)
	require.True(t, ok)
	require.NoError(t, er.RecordExceedance(coremetrics.ExceedanceEvent{ReportID: "r1"}))
}

func TestPromSinkReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	// Registering on the same registry again must reuse the collectors.
	_, err = NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
}
