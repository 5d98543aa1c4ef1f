package peak

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/gridfit/gridfit/core/market"
	"github.com/gridfit/gridfit/core/model"
)

// TemperatureBand is one bucket of the exceedance-temperature histogram.
type TemperatureBand struct {
	MinC  float64 `json:"min_c"`
	MaxC  float64 `json:"max_c"`
	Count int     `json:"count"`
}

// TemperatureCorrelation summarizes ambient temperature across exceedance
// hours only. Count zero is the valid no-exceedance outcome; the
// temperature fields are zero in that case, not an error.
type TemperatureCorrelation struct {
	Count int               `json:"count"`
	MinC  float64           `json:"min_c"`
	MaxC  float64           `json:"max_c"`
	AvgC  float64           `json:"avg_c"`
	Bands []TemperatureBand `json:"bands"`
}

var bandEdges = [][2]float64{
	{-15, -10}, {-10, -5}, {-5, 0}, {0, 5}, {5, 10}, {10, 15}, {15, 20}, {20, 35},
}

// CorrelateTemperatures joins the flagged exceedance hours to the ambient
// temperature. Hours without a known temperature are skipped.
func CorrelateTemperatures(points []model.CombinedLoadPoint, temps market.TemperatureSource) TemperatureCorrelation {
	var values []float64
	for _, p := range points {
		if !p.Exceedance {
			continue
		}
		if t, ok := temps.TemperatureAt(p.Timestamp); ok {
			values = append(values, t)
		}
	}
	if len(values) == 0 {
		return TemperatureCorrelation{}
	}

	bands := make([]TemperatureBand, len(bandEdges))
	for i, e := range bandEdges {
		bands[i] = TemperatureBand{MinC: e[0], MaxC: e[1]}
		for _, v := range values {
			if v >= e[0] && v < e[1] {
				bands[i].Count++
			}
		}
	}

	return TemperatureCorrelation{
		Count: len(values),
		MinC:  floats.Min(values),
		MaxC:  floats.Max(values),
		AvgC:  stat.Mean(values, nil),
		Bands: bands,
	}
}
