package profile

import (
	"math"
	"time"

	"github.com/gridfit/gridfit/core/market"
	"github.com/gridfit/gridfit/core/model"
	"github.com/gridfit/gridfit/core/timeseries"
)

// COP reference conditions (A7/W35) and degradation below them.
const (
	copReferenceC   = 7.0
	copGainPerC     = 0.01
	copDropPerC     = 0.025
	copFloor        = 2.0
	nightSetbackEnd = 6
)

// HPInput describes one synthetic heat-pump profile run for a single unit
// of the selected model.
type HPInput struct {
	Data          model.ManualEnergyData
	Model         model.HeatPumpModel
	BivalentPoint model.BivalentPoint
	Temperatures  market.TemperatureSource
	Start, End    time.Time
}

// HPSummary aggregates a generated profile. Min and peak power only
// consider hours where the heat pump ran.
type HPSummary struct {
	Points      int       `json:"points"`
	PeakPowerKW float64   `json:"peak_power_kw"`
	AvgPowerKW  float64   `json:"avg_power_kw"`
	MinPowerKW  float64   `json:"min_power_kw"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// HPProfile is the hourly electrical-draw series for one heat-pump unit.
type HPProfile struct {
	Points  []model.HPProfilePoint `json:"points"`
	Summary HPSummary              `json:"summary"`
}

// GenerateHP synthesizes the heat pump's hourly electrical draw. The annual
// heat target (gas × energy content × boiler efficiency × coverage) is
// distributed over hours proportionally to their degree-hours, scaled by an
// occupancy factor, and converted to electricity through the
// temperature-dependent COP. Hours warmer than both the bivalent switchover
// and the heating threshold are zeroed entirely: the unit is off, not
// throttled. Hours with no known temperature contribute nothing.
func GenerateHP(in HPInput) HPProfile {
	annualHeat := in.Data.GasConsumptionM3 * model.GasEnergyContentKWhPerM3 * model.BoilerEfficiency
	hpHeat := annualHeat * in.BivalentPoint.CoverageFraction()

	hours := timeseries.Range(in.Start, in.End)

	type hourTemp struct {
		temp  float64
		known bool
		dh    float64
	}
	temps := make([]hourTemp, len(hours))
	var totalDegreeHours float64
	for i, t := range hours {
		temp, ok := in.Temperatures.TemperatureAt(t)
		if !ok {
			continue
		}
		dh := math.Max(0, model.HeatingThresholdC-temp)
		temps[i] = hourTemp{temp: temp, known: true, dh: dh}
		totalDegreeHours += dh
	}

	points := make([]model.HPProfilePoint, 0, len(hours))
	var peak, sum float64
	min := math.Inf(1)
	for i, t := range hours {
		p := model.HPProfilePoint{Timestamp: t}
		ht := temps[i]
		active := ht.known && (ht.temp <= in.BivalentPoint.SwitchoverC || ht.temp <= model.HeatingThresholdC)
		if active && totalDegreeHours > 0 {
			heat := ht.dh / totalDegreeHours * hpHeat
			heat *= occupancyFactor(t, in.Data)
			cop := COP(ht.temp, in.Model.SCOP)
			p.HeatKW = heat
			p.COP = cop
			if cop > 0 {
				p.PowerKW = heat / cop
			}
		}
		if p.PowerKW > 0 {
			peak = math.Max(peak, p.PowerKW)
			min = math.Min(min, p.PowerKW)
		}
		sum += p.PowerKW
		points = append(points, p)
	}
	if math.IsInf(min, 1) {
		min = 0
	}

	summary := HPSummary{Points: len(points), PeakPowerKW: peak, MinPowerKW: min, Start: in.Start, End: in.End}
	if len(points) > 0 {
		summary.AvgPowerKW = sum / float64(len(points))
	}
	return HPProfile{Points: points, Summary: summary}
}

// Scale returns the profile linearly rescaled to a different installed unit
// count; no recomputation is needed because draw scales with capacity.
func (p HPProfile) Scale(factor float64) HPProfile {
	points := make([]model.HPProfilePoint, len(p.Points))
	for i, pt := range p.Points {
		pt.PowerKW *= factor
		pt.HeatKW *= factor
		points[i] = pt
	}
	s := p.Summary
	s.PeakPowerKW *= factor
	s.AvgPowerKW *= factor
	s.MinPowerKW *= factor
	return HPProfile{Points: points, Summary: s}
}

// COP is the instantaneous coefficient of performance at an outdoor
// temperature: a mild gain above the 7 °C reference and a 2.5 %/°C drop
// below it, floored at 2.0.
func COP(outdoorC, scop float64) float64 {
	if outdoorC >= copReferenceC {
		return scop * (1 + (outdoorC-copReferenceC)*copGainPerC)
	}
	drop := (copReferenceC - outdoorC) * copDropPerC
	return math.Max(copFloor, scop*(1-drop))
}

// occupancyFactor modulates the hourly heat allocation around the
// configured occupancy window: full duty while occupied, night setback,
// a pre-heat boost before occupancy and a tail-off after it.
func occupancyFactor(t time.Time, data model.ManualEnergyData) float64 {
	start, end := data.OccupancyWeekdayStart, data.OccupancyWeekdayEnd
	if timeseries.IsWeekend(t) {
		start, end = data.OccupancyWeekendStart, data.OccupancyWeekendEnd
	}
	hour := t.Hour()
	switch {
	case hour >= start && hour <= end:
		return 1.0
	case hour < nightSetbackEnd:
		return 0.3
	case hour >= start-2 && hour < start:
		return 1.2
	case hour > end && hour <= end+2:
		return 0.7
	default:
		return 0.5
	}
}
