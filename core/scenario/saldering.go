// Package scenario holds the three independent financial-scenario
// analyzers that consume the merged hourly series: saldering (Dutch net
// metering), dynamic pricing and smart steering.
package scenario

import (
	"math"

	"github.com/gridfit/gridfit/core/model"
)

// SalderingInput feeds the net-metering comparison.
type SalderingInput struct {
	Series []model.EnergyPoint
	// HPExtraKWh is the heat pump's annual electricity consumption added
	// on top of the building's offtake.
	HPExtraKWh             float64
	ElectricityPricePerKWh float64
	FeedInTariffPerKWh     float64
	FeedInPenaltyPerKWh    float64
}

// SalderingScenario is the annual feed-in settlement of one scenario.
// OffsetKWh is the volume netted kWh-for-kWh against offtake (gesaldeerd);
// only the surplus beyond it earns the feed-in tariff and pays the penalty.
type SalderingScenario struct {
	FeedInKWh  float64 `json:"feed_in_kwh"`
	OffsetKWh  float64 `json:"offset_kwh"`
	RevenueEUR float64 `json:"revenue_eur"`
	PenaltyEUR float64 `json:"penalty_eur"`
	NetEUR     float64 `json:"net_eur"`
}

// SalderingPair compares a scenario without and with the heat pump.
type SalderingPair struct {
	WithoutHP SalderingScenario `json:"without_hp"`
	WithHP    SalderingScenario `json:"with_hp"`
	ImpactEUR float64           `json:"impact_eur"`
}

// SalderingAnalysis covers all four scenarios: {with, without HP} ×
// {net metering enabled, disabled}.
type SalderingAnalysis struct {
	NetMetering   SalderingPair `json:"net_metering"`
	NoNetMetering SalderingPair `json:"no_net_metering"`
	// SelfConsumptionBenefitEUR values the solar surplus the heat pump
	// consumes directly: the full round-trip value of not exporting it.
	SelfConsumptionBenefitEUR float64 `json:"self_consumption_benefit_eur"`
	TotalSurplusKWh           float64 `json:"total_surplus_kwh"`
	TotalConsumptionKWh       float64 `json:"total_consumption_kwh"`
}

// Saldering computes the four net-metering scenarios. The heat pump's extra
// electricity is first satisfied from surplus solar generation before
// falling back to grid offtake.
func Saldering(in SalderingInput) SalderingAnalysis {
	var feedIn, offtake float64
	for _, p := range in.Series {
		feedIn += p.FeedInKWh
		offtake += p.OfftakeKWh
	}

	settle := func(feedIn, offtake float64, netMetering bool) SalderingScenario {
		s := SalderingScenario{FeedInKWh: feedIn}
		paid := feedIn
		if netMetering {
			s.OffsetKWh = math.Min(feedIn, offtake)
			paid = math.Max(0, feedIn-offtake)
		}
		s.RevenueEUR = paid * in.FeedInTariffPerKWh
		s.PenaltyEUR = paid * in.FeedInPenaltyPerKWh
		s.NetEUR = s.RevenueEUR - s.PenaltyEUR
		return s
	}

	fromSolar := math.Min(in.HPExtraKWh, feedIn)
	hpOfftake := offtake + in.HPExtraKWh - fromSolar
	hpFeedIn := feedIn - fromSolar

	withMetering := SalderingPair{
		WithoutHP: settle(feedIn, offtake, true),
		WithHP:    settle(hpFeedIn, hpOfftake, true),
	}
	withMetering.ImpactEUR = withMetering.WithHP.NetEUR - withMetering.WithoutHP.NetEUR

	withoutMetering := SalderingPair{
		WithoutHP: settle(feedIn, offtake, false),
		WithHP:    settle(hpFeedIn, hpOfftake, false),
	}
	withoutMetering.ImpactEUR = withoutMetering.WithHP.NetEUR - withoutMetering.WithoutHP.NetEUR

	return SalderingAnalysis{
		NetMetering:               withMetering,
		NoNetMetering:             withoutMetering,
		SelfConsumptionBenefitEUR: fromSolar * (in.ElectricityPricePerKWh - in.FeedInTariffPerKWh + in.FeedInPenaltyPerKWh),
		TotalSurplusKWh:           feedIn,
		TotalConsumptionKWh:       offtake,
	}
}
