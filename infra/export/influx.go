// Package export pushes analysis results to external stores.
package export

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/gridfit/gridfit/core/analysis"
	"github.com/gridfit/gridfit/infra/logger"
)

// InfluxExporter writes the combined hourly load series of a report to an
// InfluxDB instance using the official client.
type InfluxExporter struct {
	client      influxdb2.Client
	writeAPI    api.WriteAPIBlocking
	measurement string
	log         logger.Logger
}

// NewInfluxExporter creates an exporter for the given InfluxDB endpoint.
func NewInfluxExporter(url, token, org, bucket, measurement string) *InfluxExporter {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxExporter{
		client:      client,
		writeAPI:    client.WriteAPIBlocking(org, bucket),
		measurement: measurement,
		log:         logger.New("influx-exporter"),
	}
}

// NewInfluxExporterWithFallback pings the InfluxDB instance and returns nil
// when the health check fails, so callers can skip export.
func NewInfluxExporterWithFallback(url, token, org, bucket, measurement string) *InfluxExporter {
	exp := NewInfluxExporter(url, token, org, bucket, measurement)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := exp.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			exp.log.Errorf("influx health check error: %v", err)
		} else {
			exp.log.Errorf("influx health status: %s", health.Status)
		}
		exp.client.Close()
		return nil
	}
	return exp
}

// ExportReport writes one point per combined-load hour plus a summary point.
func (e *InfluxExporter) ExportReport(ctx context.Context, rep *analysis.Report) error {
	for _, p := range rep.Combined {
		pt := write.NewPointWithMeasurement(e.measurement).
			AddTag("report_id", rep.ID).
			AddTag("building_type", rep.Building.ID).
			AddTag("grid_connection", rep.Connection.ID).
			AddTag("exceedance", strconv.FormatBool(p.Exceedance)).
			AddField("building_kw", round3(p.BuildingKW)).
			AddField("heat_pump_kw", round3(p.HeatPumpKW)).
			AddField("combined_kw", round3(p.CombinedKW)).
			AddField("exceedance_kw", round3(p.ExceedanceKW)).
			SetTime(p.Timestamp)
		if err := e.writeAPI.WritePoint(ctx, pt); err != nil {
			return err
		}
	}

	sum := write.NewPointWithMeasurement(e.measurement + "_summary").
		AddTag("report_id", rep.ID).
		AddTag("building_type", rep.Building.ID).
		AddTag("grid_connection", rep.Connection.ID).
		AddField("heat_demand_kwh", round3(rep.HeatDemand.TotalHeatDemandKWh)).
		AddField("required_power_kw", round3(rep.HeatDemand.RequiredPowerKW)).
		SetTime(rep.GeneratedAt)
	if rep.Peak != nil {
		sum.AddField("peak_power_kw", round3(rep.Peak.PeakPowerKW)).
			AddField("exceedance_hours", rep.Peak.ExceedanceCount)
	}
	if rep.Savings != nil {
		sum.AddField("annual_savings_eur", round3(rep.Savings.AnnualSavingsEUR)).
			AddField("co2_reduction_kg", round3(rep.Savings.CO2ReductionKg))
	}
	return e.writeAPI.WritePoint(ctx, sum)
}

// Close releases the underlying client.
func (e *InfluxExporter) Close() {
	e.client.Close()
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
