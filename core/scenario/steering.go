package scenario

import (
	"math"
	"sort"
	"time"

	"github.com/gridfit/gridfit/core/market"
)

const (
	// DefaultPriceCtPerKWh fills hours without spot price data.
	DefaultPriceCtPerKWh = 22.5
	// DefaultBufferKWh is the thermal buffer capacity available for
	// shifting heat pump load within a day.
	DefaultBufferKWh = 50.0
	// MaxShiftRatio caps how much of an expensive hour's load may be
	// moved away; some heat delivery always stays at its original hour.
	MaxShiftRatio = 0.7

	cheapFactor     = 0.8
	expensiveFactor = 1.2
)

// SteeringInput drives the smart-steering simulation: the heat pump's
// hourly load is shifted from expensive to earlier cheap hours within
// each day, bounded by a thermal buffer.
type SteeringInput struct {
	HPLoad    map[time.Time]float64
	Prices    market.SpotPriceSource
	BufferKWh float64
}

// SteeringAnalysis is the outcome of the day-by-day shifting simulation.
type SteeringAnalysis struct {
	BaselineCostEUR float64 `json:"baseline_cost_eur"`
	SteeredCostEUR  float64 `json:"steered_cost_eur"`
	SavingsEUR      float64 `json:"savings_eur"`
	ShiftedKWh      float64 `json:"shifted_kwh"`
	DaysSimulated   int     `json:"days_simulated"`
	// Steered is the resulting load profile after shifting.
	Steered map[time.Time]float64 `json:"-"`
}

type steerHour struct {
	ts    time.Time
	kwh   float64
	price float64
}

// Steer simulates smart steering of the heat pump load. Load moves only
// to cheap hours earlier in the same day, modelling a buffer charged in
// advance of the expensive period.
func Steer(in SteeringInput) SteeringAnalysis {
	buffer := in.BufferKWh
	if buffer <= 0 {
		buffer = DefaultBufferKWh
	}

	days := make(map[time.Time][]steerHour)
	for ts, kwh := range in.HPLoad {
		ts = ts.UTC().Truncate(time.Hour)
		price := DefaultPriceCtPerKWh
		if pp, ok := in.Prices.PriceAt(ts); ok {
			price = pp.ElectricityCtPerKWh
		}
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		days[day] = append(days[day], steerHour{ts: ts, kwh: kwh, price: price})
	}

	a := SteeringAnalysis{Steered: make(map[time.Time]float64, len(in.HPLoad))}

	dayKeys := make([]time.Time, 0, len(days))
	for d := range days {
		dayKeys = append(dayKeys, d)
	}
	sort.Slice(dayKeys, func(i, j int) bool { return dayKeys[i].Before(dayKeys[j]) })

	for _, day := range dayKeys {
		hours := days[day]
		sort.Slice(hours, func(i, j int) bool { return hours[i].ts.Before(hours[j].ts) })

		var total, weighted float64
		for _, h := range hours {
			total += h.kwh
			weighted += h.price
			a.BaselineCostEUR += h.kwh * h.price / 100.0
		}
		if len(hours) == 0 {
			continue
		}
		a.DaysSimulated++
		avg := weighted / float64(len(hours))

		steered := make([]float64, len(hours))
		for i, h := range hours {
			steered[i] = h.kwh
		}

		// Expensive hours, priciest first; cheap hours, cheapest first.
		var cheap, expensive []int
		for i, h := range hours {
			switch {
			case h.price < avg*cheapFactor:
				cheap = append(cheap, i)
			case h.price > avg*expensiveFactor:
				expensive = append(expensive, i)
			}
		}
		sort.Slice(cheap, func(i, j int) bool { return hours[cheap[i]].price < hours[cheap[j]].price })
		sort.Slice(expensive, func(i, j int) bool { return hours[expensive[i]].price > hours[expensive[j]].price })

		bufferLeft := buffer
		for _, ei := range expensive {
			if bufferLeft <= 0 {
				break
			}
			shiftable := math.Min(hours[ei].kwh*MaxShiftRatio, bufferLeft)
			if shiftable <= 0 {
				continue
			}
			for _, ci := range cheap {
				// Buffer charges ahead of use: only earlier hours qualify.
				if !hours[ci].ts.Before(hours[ei].ts) {
					continue
				}
				steered[ci] += shiftable
				steered[ei] -= shiftable
				bufferLeft -= shiftable
				break
			}
		}

		for i, h := range hours {
			a.SteeredCostEUR += steered[i] * h.price / 100.0
			a.ShiftedKWh += math.Abs(h.kwh-steered[i]) / 2.0
			a.Steered[h.ts] = steered[i]
		}
	}

	a.SavingsEUR = a.BaselineCostEUR - a.SteeredCostEUR
	return a
}
