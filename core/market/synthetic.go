package market

import (
	"math"
	"math/rand"
	"time"

	"github.com/gridfit/gridfit/core/timeseries"
)

// Synthetic is the placeholder weather/price generator used when no real
// data feed is connected: a seasonal and diurnal sinusoid plus seeded noise.
// The same seed always yields the same series. It precomputes one full year
// at construction and serves lookups from memory.
type Synthetic struct {
	temps  map[time.Time]float64
	prices map[time.Time]PricePoint
}

// NewSynthetic builds a synthetic year of hourly temperatures and prices.
func NewSynthetic(year int, seed int64) *Synthetic {
	rng := rand.New(rand.NewSource(seed))
	s := &Synthetic{
		temps:  make(map[time.Time]float64, 8784),
		prices: make(map[time.Time]PricePoint, 8784),
	}
	for _, t := range timeseries.Hours(year) {
		month := float64(int(t.Month()) - 1)
		hour := float64(t.Hour())

		seasonal := 10 + 8*math.Sin((month-3)*math.Pi/6)
		diurnal := 3 * math.Sin((hour-14)*math.Pi/12)
		temp := seasonal + diurnal + (rng.Float64()-0.5)*4
		s.temps[t] = temp

		peak := 0.0
		switch {
		case t.Hour() >= 7 && t.Hour() <= 9:
			peak = 15
		case t.Hour() >= 17 && t.Hour() <= 20:
			peak = 20
		}
		s.prices[t] = PricePoint{
			ElectricityCtPerKWh: 22 + peak + (rng.Float64()-0.5)*10,
			GasEURPerM3:         1.40 + (rng.Float64()-0.5)*0.2,
		}
	}
	return s
}

func (s *Synthetic) TemperatureAt(t time.Time) (float64, bool) {
	v, ok := s.temps[t.Truncate(time.Hour)]
	return v, ok
}

func (s *Synthetic) PriceAt(t time.Time) (PricePoint, bool) {
	v, ok := s.prices[t.Truncate(time.Hour)]
	return v, ok
}
