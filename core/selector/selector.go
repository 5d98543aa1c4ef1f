// Package selector matches the required heat-pump capacity against the
// product catalog and ranks the feasible configurations.
package selector

import (
	"math"
	"sort"

	"github.com/gridfit/gridfit/core/model"
)

// Input describes the sizing requirements.
type Input struct {
	RequiredPowerKW float64
	BivalentPoint   model.BivalentPoint
	Coastal         bool
	// PreferHT narrows the catalog to high-temperature models when any
	// survive the site filter.
	PreferHT bool
}

// Option is one catalog model with the unit count needed to reach the
// required capacity.
type Option struct {
	Model           model.HeatPumpModel `json:"model"`
	Units           int                 `json:"units"`
	TotalCapacityKW float64             `json:"total_capacity_kw"`
	TotalPriceEUR   float64             `json:"total_price_eur"`
	Recommended     bool                `json:"recommended"`
}

// Result lists every surviving catalog option, ranked, plus up to three
// recommendations. An empty Recommendations slice is the normal "no
// suitable model" outcome, not an error.
type Result struct {
	RequiredCapacityKW float64  `json:"required_capacity_kw"`
	CoveragePercent    float64  `json:"coverage_percent"`
	Recommendations    []Option `json:"recommendations"`
	AllOptions         []Option `json:"all_options"`
}

// UnitsNeeded returns how many units of a model cover the required capacity.
func UnitsNeeded(m model.HeatPumpModel, requiredCapacityKW float64) int {
	return int(math.Ceil(requiredCapacityKW / m.PowerKW))
}

// Select sizes the installation and ranks catalog options. Coastal sites
// only admit EC-coated models and inland sites only uncoated ones; the two
// are mutually exclusive site requirements.
func Select(catalog []model.HeatPumpModel, in Input) Result {
	required := in.RequiredPowerKW * in.BivalentPoint.BetaFactor

	models := make([]model.HeatPumpModel, 0, len(catalog))
	for _, m := range catalog {
		if m.ECCoated == in.Coastal {
			models = append(models, m)
		}
	}
	if in.PreferHT {
		ht := make([]model.HeatPumpModel, 0, len(models))
		for _, m := range models {
			if m.Class == model.ClassHT {
				ht = append(ht, m)
			}
		}
		if len(ht) > 0 {
			models = ht
		}
	}

	options := make([]Option, 0, len(models))
	for _, m := range models {
		units := UnitsNeeded(m, required)
		options = append(options, Option{
			Model:           m,
			Units:           units,
			TotalCapacityKW: float64(units) * m.PowerKW,
			TotalPriceEUR:   float64(units) * m.PriceEUR,
		})
	}

	// Fewer units wins over cheaper price; price wins over efficiency.
	sort.SliceStable(options, func(i, j int) bool {
		a, b := options[i], options[j]
		if a.Units != b.Units {
			return a.Units < b.Units
		}
		if a.TotalPriceEUR != b.TotalPriceEUR {
			return a.TotalPriceEUR < b.TotalPriceEUR
		}
		return a.Model.SCOP > b.Model.SCOP
	})

	return Result{
		RequiredCapacityKW: required,
		CoveragePercent:    in.BivalentPoint.CoveragePercent,
		Recommendations:    recommend(options, required),
		AllOptions:         options,
	}
}

// recommend picks at most three options among those whose total capacity
// meets the requirement: cheapest, most efficient, and a single-unit fit,
// de-duplicated by model id.
func recommend(options []Option, requiredKW float64) []Option {
	valid := make([]Option, 0, len(options))
	for _, o := range options {
		if o.TotalCapacityKW >= requiredKW {
			valid = append(valid, o)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	best := valid[0]
	for _, o := range valid[1:] {
		if o.TotalPriceEUR < best.TotalPriceEUR {
			best = o
		}
	}
	mostEfficient := valid[0]
	for _, o := range valid[1:] {
		if o.Model.SCOP > mostEfficient.Model.SCOP {
			mostEfficient = o
		}
	}

	recs := make([]Option, 0, 3)
	add := func(o Option) {
		for _, r := range recs {
			if r.Model.ID == o.Model.ID {
				return
			}
		}
		o.Recommended = true
		recs = append(recs, o)
	}
	add(best)
	add(mostEfficient)
	for _, o := range valid {
		if o.Units == 1 {
			add(o)
			break
		}
	}
	return recs
}
