package model

// GridConnection describes a standard grid-connection size. MaxPowerKW is
// derived from the three-phase current rating at 400 V.
type GridConnection struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MaxCurrentA float64 `json:"max_current_a"`
	MaxPowerKW  float64 `json:"max_power_kw"`
}

// BivalentPoint is the boiler-switchover configuration of a hybrid
// installation. BetaFactor sizes the heat-pump capacity against peak thermal
// power; CoveragePercent sizes the share of annual heat energy the heat pump
// supplies. The two are independent table entries and must not be conflated.
type BivalentPoint struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	SwitchoverC     float64 `json:"switchover_c"`
	BetaFactor      float64 `json:"beta_factor"`
	CoveragePercent float64 `json:"coverage_percent"`
	// AllElectric marks the variant where hot water is heat-pump served as
	// well, instead of staying on the boiler.
	AllElectric bool `json:"all_electric"`
}

// CoverageFraction returns CoveragePercent as a 0..1 fraction.
func (b BivalentPoint) CoverageFraction() float64 {
	return b.CoveragePercent / 100
}
