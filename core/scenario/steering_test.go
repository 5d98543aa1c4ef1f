package scenario

import (
	"math"
	"testing"
	"time"

	"github.com/gridfit/gridfit/core/market"
)

func steerDay(prices ...float64) (map[time.Time]float64, market.Fixed) {
	load := make(map[time.Time]float64, len(prices))
	src := market.Fixed{Prices: make(map[time.Time]market.PricePoint, len(prices))}
	for i, p := range prices {
		ts := time.Date(2023, 1, 15, i, 0, 0, 0, time.UTC)
		load[ts] = 2
		src.Prices[ts] = market.PricePoint{ElectricityCtPerKWh: p}
	}
	return load, src
}

func TestSteerShiftsExpensiveToEarlierCheap(t *testing.T) {
	load, src := steerDay(10, 20, 20, 50)
	t3 := time.Date(2023, 1, 15, 3, 0, 0, 0, time.UTC)
	load[t3] = 10 // the expensive hour carries the big load

	a := Steer(SteeringInput{HPLoad: load, Prices: src})

	// Average price 25 ct: hour 0 (10 ct) is cheap, hour 3 (50 ct) is
	// expensive. 70% of the 10 kWh moves to hour 0.
	if math.Abs(a.ShiftedKWh-7) > 1e-9 {
		t.Fatalf("shifted %v, want 7", a.ShiftedKWh)
	}
	wantBaseline := (2*10 + 2*20 + 2*20 + 10*50) / 100.0
	if math.Abs(a.BaselineCostEUR-wantBaseline) > 1e-9 {
		t.Fatalf("baseline %v, want %v", a.BaselineCostEUR, wantBaseline)
	}
	wantSteered := (9*10 + 2*20 + 2*20 + 3*50) / 100.0
	if math.Abs(a.SteeredCostEUR-wantSteered) > 1e-9 {
		t.Fatalf("steered %v, want %v", a.SteeredCostEUR, wantSteered)
	}
	if math.Abs(a.SavingsEUR-(wantBaseline-wantSteered)) > 1e-9 {
		t.Fatalf("savings %v", a.SavingsEUR)
	}
	if a.DaysSimulated != 1 {
		t.Fatalf("days %d", a.DaysSimulated)
	}
	t0 := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	if a.Steered[t0] != 9 || a.Steered[t3] != 3 {
		t.Fatalf("steered profile %v / %v", a.Steered[t0], a.Steered[t3])
	}
}

func TestSteerBufferCapsShift(t *testing.T) {
	load, src := steerDay(10, 20, 20, 50)
	t3 := time.Date(2023, 1, 15, 3, 0, 0, 0, time.UTC)
	load[t3] = 10

	a := Steer(SteeringInput{HPLoad: load, Prices: src, BufferKWh: 3})
	if math.Abs(a.ShiftedKWh-3) > 1e-9 {
		t.Fatalf("shifted %v, want buffer-limited 3", a.ShiftedKWh)
	}
}

func TestSteerNeverShiftsToLaterHours(t *testing.T) {
	// The only cheap hour comes after the expensive one, so nothing moves.
	load, src := steerDay(50, 30, 30, 10)
	a := Steer(SteeringInput{HPLoad: load, Prices: src})
	if a.ShiftedKWh != 0 || a.SavingsEUR != 0 {
		t.Fatalf("shifted %v savings %v, want no movement", a.ShiftedKWh, a.SavingsEUR)
	}
}

func TestSteerUnpricedHoursUseDefault(t *testing.T) {
	load, _ := steerDay(0, 0, 0, 0)
	a := Steer(SteeringInput{HPLoad: load, Prices: market.Fixed{}})

	// Every hour falls back to the default price, so no hour qualifies as
	// cheap or expensive and the profile stays unchanged.
	if a.ShiftedKWh != 0 {
		t.Fatalf("shifted %v", a.ShiftedKWh)
	}
	wantBaseline := 8 * DefaultPriceCtPerKWh / 100.0
	if math.Abs(a.BaselineCostEUR-wantBaseline) > 1e-9 {
		t.Fatalf("baseline %v, want %v", a.BaselineCostEUR, wantBaseline)
	}
}

func TestSteerEmptyLoad(t *testing.T) {
	a := Steer(SteeringInput{Prices: market.Fixed{}})
	if a.DaysSimulated != 0 || a.BaselineCostEUR != 0 {
		t.Fatalf("empty steering %+v", a)
	}
}
