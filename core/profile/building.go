// Package profile synthesizes hourly annual series: the building's
// electricity/gas/feed-in profile from yearly totals and weight curves, and
// the heat pump's electrical draw from degree-hours and a
// temperature-dependent COP.
package profile

import (
	"github.com/gridfit/gridfit/core/model"
	"github.com/gridfit/gridfit/core/timeseries"
)

// BuildingInput are the yearly totals to spread over one calendar year.
type BuildingInput struct {
	Building             model.BuildingType
	YearlyElectricityKWh float64
	YearlyGasM3          float64
	YearlyFeedInKWh      float64
	Year                 int
}

// GenerateBuilding spreads the yearly totals over every hour of the year.
// A first pass sums the weight of every hour per series, a second pass
// allocates yearlyTotal × hourWeight / totalWeight, so each series sums to
// its yearly input exactly regardless of curve shape or leap-year length.
// The gas series is informational for profile display; downstream stages
// keep using the annual gas figure as the system of record.
func GenerateBuilding(in BuildingInput) []model.EnergyPoint {
	shape := shapeFor(in.Building.Occupancy)
	hours := timeseries.Hours(in.Year)

	var elecTotal, gasTotal, solarTotal float64
	for _, t := range hours {
		hour, month, weekend := t.Hour(), int(t.Month())-1, timeseries.IsWeekend(t)
		elecTotal += shape.weight(hour, month, weekend)
		gasTotal += gasShape.weight(hour, month, false)
		solarTotal += solarShape.weight(hour, month, false)
	}

	points := make([]model.EnergyPoint, 0, len(hours))
	for _, t := range hours {
		hour, month, weekend := t.Hour(), int(t.Month())-1, timeseries.IsWeekend(t)
		p := model.EnergyPoint{Timestamp: t}
		if elecTotal > 0 {
			p.OfftakeKWh = shape.weight(hour, month, weekend) / elecTotal * in.YearlyElectricityKWh
		}
		if gasTotal > 0 {
			p.GasM3 = gasShape.weight(hour, month, false) / gasTotal * in.YearlyGasM3
		}
		if solarTotal > 0 {
			p.FeedInKWh = solarShape.weight(hour, month, false) / solarTotal * in.YearlyFeedInKWh
		}
		points = append(points, p)
	}
	return points
}
