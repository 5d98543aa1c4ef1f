package model

import "time"

// EnergyPoint is one hour of a synthesized building series. Energy values
// are the totals for the hour starting at Timestamp.
type EnergyPoint struct {
	Timestamp  time.Time `json:"timestamp"`
	OfftakeKWh float64   `json:"offtake_kwh"`
	FeedInKWh  float64   `json:"feed_in_kwh"`
	GasM3      float64   `json:"gas_m3"`
}

// HPProfilePoint is one hour of a synthesized heat-pump draw series.
type HPProfilePoint struct {
	Timestamp time.Time `json:"timestamp"`
	PowerKW   float64   `json:"power_kw"`
	HeatKW    float64   `json:"heat_kw"`
	COP       float64   `json:"cop"`
}

// CombinedLoadPoint is one hour of the merged building+heat-pump series
// compared against the grid-connection capacity.
type CombinedLoadPoint struct {
	Timestamp    time.Time `json:"timestamp"`
	BuildingKW   float64   `json:"building_kw"`
	HeatPumpKW   float64   `json:"heat_pump_kw"`
	CombinedKW   float64   `json:"combined_kw"`
	Exceedance   bool      `json:"exceedance"`
	ExceedanceKW float64   `json:"exceedance_kw"`
}
