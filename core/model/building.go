package model

// OccupancyClass selects the load-shape curves used when synthesizing an
// hourly profile for a building.
type OccupancyClass string

const (
	OccupancyResidential  OccupancyClass = "residential"
	OccupancyOffice       OccupancyClass = "office"
	OccupancyHealthcare   OccupancyClass = "healthcare"
	OccupancyHealthcare24 OccupancyClass = "healthcare_24h"
	OccupancyHospitality  OccupancyClass = "hospitality"
	OccupancySchool       OccupancyClass = "school"
	OccupancySports       OccupancyClass = "sports"
)

// BuildingType describes one entry of the static building-type table.
// Entries are immutable once loaded.
type BuildingType struct {
	ID                      string         `csv:"id" json:"id"`
	Name                    string         `csv:"name" json:"name"`
	GasToKWhFactor          float64        `csv:"gas_to_kwh_factor" json:"gas_to_kwh_factor"`
	HotWaterPercent         float64        `csv:"hot_water_percent" json:"hot_water_percent"`
	DefaultDHWLitersPerUnit float64        `csv:"default_dhw_liters_per_unit" json:"default_dhw_liters_per_unit"`
	Occupancy               OccupancyClass `csv:"occupancy_profile" json:"occupancy_profile"`
}
