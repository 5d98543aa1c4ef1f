package scenario

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/gridfit/gridfit/core/market"
	"github.com/gridfit/gridfit/core/model"
)

// DynamicInput compares a fixed retail contract against hourly spot prices
// for the building load with and without the heat pump. HPLoad carries the
// heat pump's hourly consumption keyed by hour-truncated UTC timestamp.
type DynamicInput struct {
	Series           []model.EnergyPoint
	HPLoad           map[time.Time]float64
	Prices           market.SpotPriceSource
	FixedPricePerKWh float64
	// NetMetering selects which settlement the advantage figure uses:
	// under net metering revenue only offsets cost, it never goes negative.
	NetMetering        bool
	FeedInTariffPerKWh float64
}

// PriceStats summarises the hourly spot electricity prices seen during the
// analysis.
type PriceStats struct {
	MinCtPerKWh float64 `json:"min_ct_per_kwh"`
	MaxCtPerKWh float64 `json:"max_ct_per_kwh"`
	AvgCtPerKWh float64 `json:"avg_ct_per_kwh"`
	Hours       int     `json:"hours"`
}

// GasPriceStats summarises the day-ahead gas prices seen during the
// analysis.
type GasPriceStats struct {
	MinEURPerM3 float64 `json:"min_eur_per_m3"`
	MaxEURPerM3 float64 `json:"max_eur_per_m3"`
	AvgEURPerM3 float64 `json:"avg_eur_per_m3"`
}

// DynamicScenario is the annual settlement under one contract type. Both
// settlement variants are reported: NetEUR pays feed-in out, NetMeteredEUR
// lets revenue at most zero the bill.
type DynamicScenario struct {
	CostEUR       float64 `json:"cost_eur"`
	RevenueEUR    float64 `json:"revenue_eur"`
	NetEUR        float64 `json:"net_eur"`
	NetMeteredEUR float64 `json:"net_metered_eur"`
}

// DynamicPair holds the fixed and spot settlements for one load variant.
// AdvantageEUR is positive when the spot contract is cheaper, settled per
// the input's net-metering mode.
type DynamicPair struct {
	Fixed        DynamicScenario `json:"fixed"`
	Spot         DynamicScenario `json:"spot"`
	AdvantageEUR float64         `json:"advantage_eur"`
}

// DynamicAnalysis is the fixed-versus-spot comparison, with and without the
// heat pump load. Hours without a spot price are excluded from every
// scenario so the totals stay comparable.
type DynamicAnalysis struct {
	WithoutHP     DynamicPair   `json:"without_hp"`
	WithHP        DynamicPair   `json:"with_hp"`
	Prices        PriceStats    `json:"prices"`
	GasPrices     GasPriceStats `json:"gas_prices"`
	CoveredHours  int           `json:"covered_hours"`
	SkippedHours  int           `json:"skipped_hours"`
	TotalLoadKWh  float64       `json:"total_load_kwh"`
	TotalSolarKWh float64       `json:"total_solar_kwh"`
}

// Dynamic runs the fixed-versus-spot price comparison over the series.
func Dynamic(in DynamicInput) DynamicAnalysis {
	var a DynamicAnalysis
	var prices, gasPrices []float64

	add := func(p *DynamicPair, load, feedIn, spot float64) {
		p.Fixed.CostEUR += load * in.FixedPricePerKWh
		p.Fixed.RevenueEUR += feedIn * in.FeedInTariffPerKWh
		p.Spot.CostEUR += load * spot
		p.Spot.RevenueEUR += feedIn * spot
	}

	for _, p := range in.Series {
		ts := p.Timestamp.UTC().Truncate(time.Hour)
		pp, ok := in.Prices.PriceAt(ts)
		if !ok {
			a.SkippedHours++
			continue
		}
		a.CoveredHours++

		hp := in.HPLoad[ts]
		spot := pp.ElectricityCtPerKWh / 100.0

		a.TotalLoadKWh += p.OfftakeKWh + hp
		a.TotalSolarKWh += p.FeedInKWh
		prices = append(prices, pp.ElectricityCtPerKWh)
		gasPrices = append(gasPrices, pp.GasEURPerM3)

		add(&a.WithoutHP, p.OfftakeKWh, p.FeedInKWh, spot)
		add(&a.WithHP, p.OfftakeKWh+hp, p.FeedInKWh, spot)
	}

	settlePair(&a.WithoutHP, in.NetMetering)
	settlePair(&a.WithHP, in.NetMetering)

	if len(prices) > 0 {
		a.Prices = PriceStats{
			MinCtPerKWh: floats.Min(prices),
			MaxCtPerKWh: floats.Max(prices),
			AvgCtPerKWh: stat.Mean(prices, nil),
			Hours:       len(prices),
		}
		a.GasPrices = GasPriceStats{
			MinEURPerM3: floats.Min(gasPrices),
			MaxEURPerM3: floats.Max(gasPrices),
			AvgEURPerM3: stat.Mean(gasPrices, nil),
		}
	}
	return a
}

func settlePair(p *DynamicPair, netMetering bool) {
	settle(&p.Fixed)
	settle(&p.Spot)
	if netMetering {
		p.AdvantageEUR = p.Fixed.NetMeteredEUR - p.Spot.NetMeteredEUR
	} else {
		p.AdvantageEUR = p.Fixed.NetEUR - p.Spot.NetEUR
	}
}

func settle(s *DynamicScenario) {
	s.NetEUR = s.CostEUR - s.RevenueEUR
	s.NetMeteredEUR = s.NetEUR
	if s.NetMeteredEUR < 0 {
		// Revenue can at most zero out the bill.
		s.NetMeteredEUR = 0
	}
}
