package profile

import "github.com/gridfit/gridfit/core/model"

// loadShape is one occupancy class's weight curve set: 24 hourly factors, a
// weekend multiplier and 12 monthly factors. The absolute magnitudes are
// irrelevant; the two-pass normalization in GenerateBuilding only uses the
// relative shape.
type loadShape struct {
	hourly  [24]float64
	weekend float64
	monthly [12]float64
}

// Occupancy-class curves, simplified from Liander standard profiles.
var shapes = map[model.OccupancyClass]loadShape{
	model.OccupancyResidential: {
		hourly: [24]float64{
			0.02, 0.02, 0.02, 0.02, 0.02, 0.03,
			0.05, 0.07, 0.06, 0.04, 0.03, 0.03,
			0.04, 0.03, 0.03, 0.03, 0.04, 0.06,
			0.08, 0.09, 0.08, 0.06, 0.04, 0.03,
		},
		weekend: 1.1,
		monthly: [12]float64{1.15, 1.10, 1.05, 0.95, 0.85, 0.80, 0.75, 0.80, 0.90, 1.00, 1.10, 1.20},
	},
	model.OccupancyOffice: {
		hourly: [24]float64{
			0.01, 0.01, 0.01, 0.01, 0.01, 0.02,
			0.04, 0.08, 0.10, 0.10, 0.10, 0.08,
			0.08, 0.10, 0.10, 0.10, 0.08, 0.04,
			0.02, 0.01, 0.01, 0.01, 0.01, 0.01,
		},
		weekend: 0.2,
		monthly: [12]float64{1.10, 1.05, 1.00, 0.95, 0.90, 0.85, 0.85, 0.90, 0.95, 1.00, 1.05, 1.10},
	},
	model.OccupancyHealthcare: {
		hourly: [24]float64{
			0.03, 0.03, 0.03, 0.03, 0.03, 0.04,
			0.05, 0.06, 0.06, 0.05, 0.05, 0.04,
			0.04, 0.04, 0.04, 0.04, 0.05, 0.05,
			0.05, 0.05, 0.04, 0.04, 0.03, 0.03,
		},
		weekend: 0.9,
		monthly: [12]float64{1.05, 1.03, 1.00, 0.98, 0.95, 0.93, 0.92, 0.93, 0.96, 1.00, 1.03, 1.05},
	},
	model.OccupancyHealthcare24: {
		hourly: [24]float64{
			0.04, 0.04, 0.04, 0.04, 0.04, 0.04,
			0.04, 0.05, 0.05, 0.05, 0.04, 0.04,
			0.04, 0.04, 0.04, 0.04, 0.04, 0.04,
			0.04, 0.04, 0.04, 0.04, 0.04, 0.04,
		},
		weekend: 1.0,
		monthly: [12]float64{1.02, 1.01, 1.00, 0.99, 0.98, 0.97, 0.97, 0.98, 0.99, 1.00, 1.01, 1.02},
	},
	model.OccupancyHospitality: {
		hourly: [24]float64{
			0.02, 0.02, 0.02, 0.02, 0.02, 0.03,
			0.05, 0.08, 0.06, 0.04, 0.03, 0.04,
			0.05, 0.04, 0.04, 0.04, 0.05, 0.06,
			0.07, 0.08, 0.07, 0.05, 0.04, 0.03,
		},
		weekend: 1.3,
		monthly: [12]float64{0.90, 0.85, 0.95, 1.00, 1.10, 1.15, 1.20, 1.15, 1.05, 0.95, 0.90, 0.95},
	},
	model.OccupancySchool: {
		hourly: [24]float64{
			0.01, 0.01, 0.01, 0.01, 0.01, 0.02,
			0.04, 0.08, 0.12, 0.12, 0.10, 0.08,
			0.08, 0.10, 0.10, 0.08, 0.04, 0.02,
			0.01, 0.01, 0.01, 0.01, 0.01, 0.01,
		},
		weekend: 0.1,
		monthly: [12]float64{1.15, 1.10, 1.05, 1.00, 0.95, 0.20, 0.10, 0.20, 0.95, 1.05, 1.10, 1.15},
	},
	model.OccupancySports: {
		hourly: [24]float64{
			0.01, 0.01, 0.01, 0.01, 0.01, 0.02,
			0.03, 0.04, 0.05, 0.06, 0.06, 0.05,
			0.05, 0.05, 0.05, 0.06, 0.07, 0.08,
			0.09, 0.08, 0.06, 0.04, 0.02, 0.01,
		},
		weekend: 1.5,
		monthly: [12]float64{1.10, 1.05, 1.00, 0.95, 0.90, 0.85, 0.80, 0.85, 1.00, 1.05, 1.10, 1.15},
	},
}

// Gas heating shape, driven by heating degree days; independent of the
// building's occupancy class.
var gasShape = loadShape{
	hourly: [24]float64{
		0.03, 0.02, 0.02, 0.02, 0.02, 0.04,
		0.06, 0.07, 0.05, 0.04, 0.04, 0.04,
		0.04, 0.04, 0.04, 0.04, 0.05, 0.06,
		0.06, 0.05, 0.05, 0.04, 0.04, 0.03,
	},
	weekend: 1,
	monthly: [12]float64{0.18, 0.15, 0.12, 0.06, 0.02, 0.01, 0.00, 0.00, 0.02, 0.08, 0.14, 0.18},
}

// Solar feed-in shape: irradiance bell curve, independent of building type.
var solarShape = loadShape{
	hourly: [24]float64{
		0.00, 0.00, 0.00, 0.00, 0.00, 0.01,
		0.03, 0.07, 0.11, 0.14, 0.15, 0.15,
		0.14, 0.11, 0.07, 0.03, 0.01, 0.00,
		0.00, 0.00, 0.00, 0.00, 0.00, 0.00,
	},
	weekend: 1,
	monthly: [12]float64{0.03, 0.05, 0.08, 0.11, 0.13, 0.14, 0.14, 0.12, 0.10, 0.06, 0.03, 0.02},
}

// shapeFor returns the curve set for an occupancy class, falling back to
// the residential shape for unknown classes.
func shapeFor(class model.OccupancyClass) loadShape {
	if s, ok := shapes[class]; ok {
		return s
	}
	return shapes[model.OccupancyResidential]
}

func (s loadShape) weight(hour int, month int, weekend bool) float64 {
	w := s.hourly[hour] * s.monthly[month]
	if weekend {
		w *= s.weekend
	}
	return w
}
