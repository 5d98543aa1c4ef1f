// Package peak merges the building and heat-pump series into a combined
// load, flags grid-capacity exceedances and aggregates exceedance-duration
// and temperature statistics.
package peak

import (
	"github.com/gridfit/gridfit/core/model"
	"github.com/gridfit/gridfit/core/timeseries"
)

// DefaultIntervalMinutes is the meter interval of the synthesized series.
const DefaultIntervalMinutes = 60

// Merge joins the building series with the heat-pump series on the
// (month, day, hour) calendar key and converts energy to power at the given
// interval. Hours missing from the heat-pump series contribute zero load.
// The calendar key makes this a single-year join: feeding series from
// different years aliases them onto one calendar.
func Merge(building []model.EnergyPoint, hp []model.HPProfilePoint, intervalMinutes int) []model.CombinedLoadPoint {
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultIntervalMinutes
	}
	intervalHours := float64(intervalMinutes) / 60

	hpByHour := make(map[timeseries.DayHourKey]float64, len(hp))
	for _, p := range hp {
		hpByHour[timeseries.KeyOf(p.Timestamp)] = p.PowerKW
	}

	combined := make([]model.CombinedLoadPoint, 0, len(building))
	for _, p := range building {
		buildingKW := p.OfftakeKWh / intervalHours
		hpKW := hpByHour[timeseries.KeyOf(p.Timestamp)]
		combined = append(combined, model.CombinedLoadPoint{
			Timestamp:  p.Timestamp,
			BuildingKW: buildingKW,
			HeatPumpKW: hpKW,
			CombinedKW: buildingKW + hpKW,
		})
	}
	return combined
}
