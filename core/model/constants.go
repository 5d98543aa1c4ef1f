package model

// Physical and market constants shared across pipeline stages.
const (
	// GasEnergyContentKWhPerM3 is the energy content of natural gas
	// (Dutch Groningen-quality average).
	GasEnergyContentKWhPerM3 = 9.769

	// BoilerEfficiency is the assumed efficiency of the existing gas boiler.
	BoilerEfficiency = 0.90

	// FullLoadHours converts annual space-heating energy into required peak
	// thermal power for the Dutch climate.
	FullLoadHours = 1800.0

	// HeatingThresholdC is the outdoor temperature below which heating
	// demand exists.
	HeatingThresholdC = 15.0

	// CO2KgPerM3Gas and CO2KgPerKWhElectricity are the emission factors
	// used in the savings calculation.
	CO2KgPerM3Gas          = 1.88
	CO2KgPerKWhElectricity = 0.40
)
