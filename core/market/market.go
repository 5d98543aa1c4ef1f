// Package market abstracts the hourly weather and spot-price inputs of the
// analysis. The pipeline stages only see the two capability interfaces, so
// a real data feed can replace the synthetic placeholder without touching
// any analysis code. Tests inject deterministic Fixed sources.
package market

import "time"

// TemperatureSource provides the outdoor temperature for an hour.
// The boolean result reports whether a value is known for that hour;
// consumers treat unknown hours as zero contribution.
type TemperatureSource interface {
	TemperatureAt(t time.Time) (float64, bool)
}

// PricePoint carries the spot electricity price and the gas day-ahead price
// for one hour.
type PricePoint struct {
	ElectricityCtPerKWh float64 `json:"electricity_ct_per_kwh"`
	GasEURPerM3         float64 `json:"gas_eur_per_m3"`
}

// SpotPriceSource provides the spot price for an hour.
type SpotPriceSource interface {
	PriceAt(t time.Time) (PricePoint, bool)
}

// Fixed serves temperatures and prices from in-memory maps keyed by the
// hour-aligned UTC timestamp. It is the deterministic source used in tests.
type Fixed struct {
	Temperatures map[time.Time]float64
	Prices       map[time.Time]PricePoint
}

func (f Fixed) TemperatureAt(t time.Time) (float64, bool) {
	v, ok := f.Temperatures[t.Truncate(time.Hour)]
	return v, ok
}

func (f Fixed) PriceAt(t time.Time) (PricePoint, bool) {
	v, ok := f.Prices[t.Truncate(time.Hour)]
	return v, ok
}

// Constant serves the same temperature and price for every hour.
type Constant struct {
	Temperature float64
	Price       PricePoint
}

func (c Constant) TemperatureAt(time.Time) (float64, bool) { return c.Temperature, true }

func (c Constant) PriceAt(time.Time) (PricePoint, bool) { return c.Price, true }
