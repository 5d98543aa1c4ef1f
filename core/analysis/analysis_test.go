package analysis

import (
	"strings"
	"testing"

	"github.com/gridfit/gridfit/core/market"
	"github.com/gridfit/gridfit/core/metrics"
	"github.com/gridfit/gridfit/core/model"
)

type captureSink struct {
	records []metrics.AnalysisRecord
	events  []metrics.ExceedanceEvent
}

func (s *captureSink) RecordAnalysis(rec metrics.AnalysisRecord) error {
	s.records = append(s.records, rec)
	return nil
}

func (s *captureSink) RecordExceedance(ev metrics.ExceedanceEvent) error {
	s.events = append(s.events, ev)
	return nil
}

func testData() model.ManualEnergyData {
	return model.ManualEnergyData{
		BuildingTypeID:         "apartment_building",
		NumberOfUnits:          60,
		GridConnectionID:       "3x80A",
		BivalentPointID:        "0",
		GasConsumptionM3:       50000,
		ElectricityOfftakeKWh:  150000,
		ElectricityFeedInKWh:   20000,
		OccupancyWeekdayStart:  7,
		OccupancyWeekdayEnd:    22,
		OccupancyWeekendStart:  8,
		OccupancyWeekendEnd:    23,
		GasPricePerM3:          1.50,
		ElectricityPricePerKWh: 0.28,
		FeedInTariffPerKWh:     0.09,
		FeedInPenaltyPerKWh:    0.02,
	}
}

func testInput() Input {
	return Input{
		Data:         testData(),
		Year:         2023,
		Temperatures: market.Constant{Temperature: 2, Price: market.PricePoint{ElectricityCtPerKWh: 25, GasEURPerM3: 1.40}},
		Prices:       market.Constant{Temperature: 2, Price: market.PricePoint{ElectricityCtPerKWh: 25, GasEURPerM3: 1.40}},
	}
}

func TestRunFullReport(t *testing.T) {
	sink := &captureSink{}
	a := New(nil, sink)

	rep, err := a.Run(testInput())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.ID == "" {
		t.Fatal("report has no id")
	}
	if rep.Selected == nil || rep.Selected.Units <= 0 {
		t.Fatalf("selection missing: %+v", rep.Selected)
	}
	if rep.Savings == nil || rep.Peak == nil || rep.Temperature == nil {
		t.Fatal("grid impact stages missing from report")
	}
	if rep.Saldering == nil || rep.Dynamic == nil || rep.Steering == nil {
		t.Fatal("scenario stages missing from report")
	}
	if rep.Hybrid == nil || rep.SelfConsumption == nil {
		t.Fatal("fallback stages missing from report")
	}
	if len(rep.Combined) != 8760 {
		t.Fatalf("combined series length %d", len(rep.Combined))
	}
	if rep.Connection.MaxPowerKW != 55.4 {
		t.Fatalf("connection %+v", rep.Connection)
	}
	if rep.Duration <= 0 {
		t.Fatal("duration not measured")
	}

	if len(sink.records) != 1 {
		t.Fatalf("sink got %d records", len(sink.records))
	}
	rec := sink.records[0]
	if rec.ReportID != rep.ID || rec.SelectedModel != rep.Selected.Model.ID {
		t.Fatalf("record mismatch: %+v", rec)
	}
	if len(sink.events) != len(rep.Peak.Events) {
		t.Fatalf("sink got %d exceedance events, report has %d", len(sink.events), len(rep.Peak.Events))
	}
}

func TestRunSynthesizesMarketData(t *testing.T) {
	in := testInput()
	in.Temperatures = nil
	in.Prices = nil

	rep, err := New(nil, nil).Run(in)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Dynamic.CoveredHours == 0 {
		t.Fatal("synthetic prices must cover the series")
	}
}

func TestRunRejectsInvalidInput(t *testing.T) {
	in := testInput()
	in.Data.GasConsumptionM3 = 0

	_, err := New(nil, nil).Run(in)
	if err == nil || !strings.Contains(err.Error(), "gas_consumption_m3") {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestRunRejectsUnknownReferences(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.ManualEnergyData)
	}{
		{"building type", func(d *model.ManualEnergyData) { d.BuildingTypeID = "castle" }},
		{"grid connection", func(d *model.ManualEnergyData) { d.GridConnectionID = "3x999A" }},
		{"bivalent point", func(d *model.ManualEnergyData) { d.BivalentPointID = "-99" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := testInput()
			c.mutate(&in.Data)
			if _, err := New(nil, nil).Run(in); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRunHybridZeroWithoutExceedance(t *testing.T) {
	in := testInput()
	in.Data.NumberOfUnits = 1
	in.Data.GasConsumptionM3 = 1000
	in.Data.ElectricityOfftakeKWh = 3000
	in.Data.ElectricityFeedInKWh = 0

	rep, err := New(nil, nil).Run(in)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Peak.ExceedanceCount != 0 {
		t.Fatalf("small building must not exceed 3x80A, got %d hours", rep.Peak.ExceedanceCount)
	}
	if rep.Hybrid.SwitchHours != 0 || rep.Hybrid.ExtraGasM3 != 0 {
		t.Fatalf("hybrid fallback must be zero: %+v", rep.Hybrid)
	}
}
