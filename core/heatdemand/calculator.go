// Package heatdemand converts annual gas consumption into the building's
// heat demand, its space-heating/hot-water split and the peak thermal power
// a replacement system must cover.
package heatdemand

import (
	"math"

	"github.com/gridfit/gridfit/core/model"
)

// CurrentCosts is the annual cost of the building's current gas+electricity
// supply. Electricity is charged on net consumption only; a net producer is
// floored at zero for this baseline.
type CurrentCosts struct {
	GasEUR         float64 `json:"gas_eur"`
	ElectricityEUR float64 `json:"electricity_eur"`
	TotalEUR       float64 `json:"total_eur"`
}

// Result is the derived heat demand. It is a pure function of the input and
// is recomputed in full whenever any input changes.
type Result struct {
	TotalHeatDemandKWh  float64      `json:"total_heat_demand_kwh"`
	SpaceHeatingKWh     float64      `json:"space_heating_kwh"`
	SpaceHeatingPercent float64      `json:"space_heating_percent"`
	HotWaterKWh         float64      `json:"hot_water_kwh"`
	HotWaterPercent     float64      `json:"hot_water_percent"`
	RequiredPowerKW     float64      `json:"required_power_kw"`
	Costs               CurrentCosts `json:"costs"`
}

// Calculate derives the heat demand for the given input and building type.
func Calculate(data model.ManualEnergyData, building model.BuildingType) Result {
	totalHeat := data.GasConsumptionM3 * model.GasEnergyContentKWhPerM3 * model.BoilerEfficiency

	hotWaterPct := building.HotWaterPercent
	spaceHeatingPct := 100 - hotWaterPct
	hotWater := totalHeat * hotWaterPct / 100
	spaceHeating := totalHeat - hotWater

	gasCost := data.GasConsumptionM3 * data.GasPricePerM3
	elecCost := math.Max(0, (data.ElectricityOfftakeKWh-data.ElectricityFeedInKWh)*data.ElectricityPricePerKWh)

	return Result{
		TotalHeatDemandKWh:  totalHeat,
		SpaceHeatingKWh:     spaceHeating,
		SpaceHeatingPercent: spaceHeatingPct,
		HotWaterKWh:         hotWater,
		HotWaterPercent:     hotWaterPct,
		RequiredPowerKW:     spaceHeating / model.FullLoadHours,
		Costs: CurrentCosts{
			GasEUR:         gasCost,
			ElectricityEUR: elecCost,
			TotalEUR:       gasCost + elecCost,
		},
	}
}

// DefaultDHWLiters returns the hot-water liters/day pre-fill for a building
// type and unit count. It is a form convenience, not a validation
// substitute; the user may override it.
func DefaultDHWLiters(building model.BuildingType, units int) float64 {
	return building.DefaultDHWLitersPerUnit * float64(units)
}

// DHWHeatDemandKWh converts a daily hot-water volume into annual heat
// demand using Q = m·c·ΔT with a 45 K rise (10 °C mains to 55 °C tap).
func DHWHeatDemandKWh(litersPerDay float64) float64 {
	const (
		deltaT       = 45.0    // K
		specificHeat = 4.186   // kJ/(kg·K)
		kJPerKWh     = 3600.0
	)
	daily := litersPerDay * specificHeat * deltaT / kJPerKWh
	return daily * 365
}
