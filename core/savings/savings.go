// Package savings quantifies the financial and CO₂ effect of replacing part
// of the boiler duty with a selected heat-pump configuration.
package savings

import (
	"github.com/gridfit/gridfit/core/heatdemand"
	"github.com/gridfit/gridfit/core/model"
)

// Payback is the investment payback period. Unbounded is set when annual
// savings are zero or negative and the investment never pays back; Years is
// meaningless in that case and must not leak into arithmetic.
type Payback struct {
	Years     float64 `json:"years"`
	Unbounded bool    `json:"unbounded"`
}

// Input describes the selected configuration and current tariffs.
type Input struct {
	Demand                 heatdemand.Result
	Model                  model.HeatPumpModel
	Units                  int
	TotalPriceEUR          float64
	BivalentPoint          model.BivalentPoint
	GasPricePerM3          float64
	ElectricityPricePerKWh float64
	GasConsumptionM3       float64
}

// HeatShare is the part of annual heat served by one carrier.
type HeatShare struct {
	KWh     float64 `json:"kwh"`
	Percent float64 `json:"percent"`
}

// BoilerShare additionally carries the gas volume behind the boiler's share.
type BoilerShare struct {
	GasM3   float64 `json:"gas_m3"`
	KWh     float64 `json:"kwh"`
	Percent float64 `json:"percent"`
}

// Result is the annual savings picture for one configuration.
type Result struct {
	AnnualSavingsEUR float64 `json:"annual_savings_eur"`
	// SavingsPercent is relative to the current gas cost. It is invalid
	// (and zero) when the current gas cost is zero.
	SavingsPercent      float64     `json:"savings_percent"`
	SavingsPercentValid bool        `json:"savings_percent_valid"`
	CO2ReductionKg      float64     `json:"co2_reduction_kg"`
	Payback             Payback     `json:"payback"`
	HeatByHeatPump      HeatShare   `json:"heat_by_heat_pump"`
	HeatByBoiler        BoilerShare `json:"heat_by_boiler"`
	HPElectricityKWh    float64     `json:"hp_electricity_kwh"`
	NewGasCostEUR       float64     `json:"new_gas_cost_eur"`
	NewElectricityEUR   float64     `json:"new_electricity_cost_eur"`
}

// Calculate derives the savings for a selected model and bivalent point.
// The flat SCOP is used here; temperature-dependent COP only enters the
// synthetic profile stage.
func Calculate(in Input) Result {
	coverage := in.BivalentPoint.CoverageFraction()

	heatByHP := in.Demand.SpaceHeatingKWh * coverage
	heatByBoiler := in.Demand.SpaceHeatingKWh * (1 - coverage)

	// Hot water stays on the boiler except in the all-electric variant.
	hotWaterByBoiler := in.Demand.HotWaterKWh
	if in.BivalentPoint.AllElectric {
		hotWaterByBoiler = 0
	}
	hotWaterByHP := in.Demand.HotWaterKWh - hotWaterByBoiler

	totalByHP := heatByHP + hotWaterByHP
	totalByBoiler := heatByBoiler + hotWaterByBoiler

	hpElectricity := totalByHP / in.Model.SCOP
	boilerGasM3 := totalByBoiler / (model.GasEnergyContentKWhPerM3 * model.BoilerEfficiency)

	currentGasCost := in.GasConsumptionM3 * in.GasPricePerM3
	newGasCost := boilerGasM3 * in.GasPricePerM3
	newElecCost := hpElectricity * in.ElectricityPricePerKWh
	annualSavings := currentGasCost - newGasCost - newElecCost

	res := Result{
		AnnualSavingsEUR:  annualSavings,
		HPElectricityKWh:  hpElectricity,
		NewGasCostEUR:     newGasCost,
		NewElectricityEUR: newElecCost,
		HeatByHeatPump: HeatShare{
			KWh:     totalByHP,
			Percent: totalByHP / in.Demand.TotalHeatDemandKWh * 100,
		},
		HeatByBoiler: BoilerShare{
			GasM3:   boilerGasM3,
			KWh:     totalByBoiler,
			Percent: totalByBoiler / in.Demand.TotalHeatDemandKWh * 100,
		},
	}

	if currentGasCost > 0 {
		res.SavingsPercent = annualSavings / currentGasCost * 100
		res.SavingsPercentValid = true
	}
	if annualSavings > 0 {
		res.Payback = Payback{Years: in.TotalPriceEUR / annualSavings}
	} else {
		res.Payback = Payback{Unbounded: true}
	}

	currentCO2 := in.GasConsumptionM3 * model.CO2KgPerM3Gas
	newCO2 := boilerGasM3*model.CO2KgPerM3Gas + hpElectricity*model.CO2KgPerKWhElectricity
	res.CO2ReductionKg = currentCO2 - newCO2

	return res
}
