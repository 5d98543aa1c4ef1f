package profile

import (
	"math"
	"testing"
	"time"

	"github.com/gridfit/gridfit/core/market"
	"github.com/gridfit/gridfit/core/model"
)

func sumOfftake(points []model.EnergyPoint) (offtake, feedIn, gas float64) {
	for _, p := range points {
		offtake += p.OfftakeKWh
		feedIn += p.FeedInKWh
		gas += p.GasM3
	}
	return
}

func TestGenerateBuildingConservesTotals(t *testing.T) {
	in := BuildingInput{
		Building:             model.BuildingType{Occupancy: model.OccupancyResidential},
		YearlyElectricityKWh: 150000,
		YearlyGasM3:          50000,
		YearlyFeedInKWh:      20000,
		Year:                 2023,
	}
	points := GenerateBuilding(in)
	if len(points) != 8760 {
		t.Fatalf("expected 8760 hours, got %d", len(points))
	}
	offtake, feedIn, gas := sumOfftake(points)
	if math.Abs(offtake-150000) > 1e-6 {
		t.Errorf("electricity total %v", offtake)
	}
	if math.Abs(feedIn-20000) > 1e-6 {
		t.Errorf("feed-in total %v", feedIn)
	}
	if math.Abs(gas-50000) > 1e-6 {
		t.Errorf("gas total %v", gas)
	}
}

func TestGenerateBuildingLeapYear(t *testing.T) {
	in := BuildingInput{
		Building:             model.BuildingType{Occupancy: model.OccupancyOffice},
		YearlyElectricityKWh: 100000,
		Year:                 2024,
	}
	points := GenerateBuilding(in)
	if len(points) != 8784 {
		t.Fatalf("expected 8784 hours in a leap year, got %d", len(points))
	}
	offtake, _, _ := sumOfftake(points)
	if math.Abs(offtake-100000) > 1e-6 {
		t.Fatalf("leap-year total %v", offtake)
	}
}

func TestGenerateBuildingUnknownOccupancyFallsBack(t *testing.T) {
	in := BuildingInput{
		Building:             model.BuildingType{Occupancy: "warehouse"},
		YearlyElectricityKWh: 1000,
		Year:                 2023,
	}
	offtake, _, _ := sumOfftake(GenerateBuilding(in))
	if math.Abs(offtake-1000) > 1e-6 {
		t.Fatalf("fallback profile total %v", offtake)
	}
}

func TestCOP(t *testing.T) {
	cases := []struct {
		outdoor float64
		want    float64
	}{
		{7, 4.0},
		{17, 4.0 * 1.10},
		{-3, 4.0 * 0.75},
		{-30, 2.0}, // floored
	}
	for _, c := range cases {
		if got := COP(c.outdoor, 4.0); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("COP(%v) = %v, want %v", c.outdoor, got, c.want)
		}
	}
}

func hpInput(temps market.TemperatureSource) HPInput {
	return HPInput{
		Data: model.ManualEnergyData{
			GasConsumptionM3:      50000,
			OccupancyWeekdayStart: 8,
			OccupancyWeekdayEnd:   18,
			OccupancyWeekendStart: 9,
			OccupancyWeekendEnd:   17,
		},
		Model:         model.HeatPumpModel{PowerKW: 40, SCOP: 3.8},
		BivalentPoint: model.BivalentPoint{SwitchoverC: 0, BetaFactor: 0.30, CoveragePercent: 40},
		Temperatures:  temps,
		Start:         time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC),
	}
}

func TestGenerateHPZeroAboveThresholds(t *testing.T) {
	p := GenerateHP(hpInput(market.Constant{Temperature: 20}))
	for _, pt := range p.Points {
		if pt.PowerKW != 0 || pt.HeatKW != 0 {
			t.Fatalf("unit must be off above the heating threshold, hour %v draws %v", pt.Timestamp, pt.PowerKW)
		}
	}
	if p.Summary.PeakPowerKW != 0 || p.Summary.AvgPowerKW != 0 {
		t.Fatalf("summary must be zero for an idle year: %+v", p.Summary)
	}
}

func TestGenerateHPUnknownTemperatureContributesNothing(t *testing.T) {
	empty := &market.Fixed{}
	p := GenerateHP(hpInput(empty))
	for _, pt := range p.Points {
		if pt.PowerKW != 0 {
			t.Fatal("hours without temperature data must draw nothing")
		}
	}
}

func TestGenerateHPColdYearRuns(t *testing.T) {
	p := GenerateHP(hpInput(market.Constant{Temperature: 2}))
	if p.Summary.PeakPowerKW <= 0 {
		t.Fatalf("cold year must produce draw, summary %+v", p.Summary)
	}
	if p.Summary.MinPowerKW <= 0 {
		t.Fatalf("min power only considers active hours, got %v", p.Summary.MinPowerKW)
	}
	if p.Summary.Points != 8760 {
		t.Fatalf("points %d", p.Summary.Points)
	}

	// At 2 °C every active hour uses the same derated COP.
	wantCOP := COP(2, 3.8)
	for _, pt := range p.Points {
		if pt.PowerKW > 0 && math.Abs(pt.COP-wantCOP) > 1e-9 {
			t.Fatalf("cop %v, want %v", pt.COP, wantCOP)
		}
	}
}

func TestScale(t *testing.T) {
	p := GenerateHP(hpInput(market.Constant{Temperature: 2}))
	doubled := p.Scale(2)
	if math.Abs(doubled.Summary.PeakPowerKW-2*p.Summary.PeakPowerKW) > 1e-9 {
		t.Fatalf("peak not doubled")
	}
	for i := range p.Points {
		if math.Abs(doubled.Points[i].PowerKW-2*p.Points[i].PowerKW) > 1e-9 {
			t.Fatalf("point %d not doubled", i)
		}
		if doubled.Points[i].COP != p.Points[i].COP {
			t.Fatalf("scaling must not change COP")
		}
	}
}
