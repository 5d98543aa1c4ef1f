package model

// HeatPumpClass distinguishes medium-temperature and high-temperature
// product lines.
type HeatPumpClass string

const (
	ClassMT HeatPumpClass = "MT"
	ClassHT HeatPumpClass = "HT"
)

// HeatPumpModel is one catalog entry. The catalog is loaded once at process
// start and never mutated.
type HeatPumpModel struct {
	ID             string        `csv:"id" json:"id"`
	Name           string        `csv:"name" json:"name"`
	Class          HeatPumpClass `csv:"class" json:"class"`
	PowerKW        float64       `csv:"power_kw" json:"power_kw"`
	SCOP           float64       `csv:"scop" json:"scop"`
	MaxFlowTempC   float64       `csv:"max_flow_temp_c" json:"max_flow_temp_c"`
	Refrigerant    string        `csv:"refrigerant" json:"refrigerant"`
	GWP            float64       `csv:"gwp" json:"gwp"`
	LengthMM       float64       `csv:"length_mm" json:"length_mm"`
	WidthMM        float64       `csv:"width_mm" json:"width_mm"`
	HeightMM       float64       `csv:"height_mm" json:"height_mm"`
	WeightKg       float64       `csv:"weight_kg" json:"weight_kg"`
	MaxCurrentA    float64       `csv:"max_current_a" json:"max_current_a"`
	Connection     string        `csv:"connection" json:"connection"`
	PriceEUR       float64       `csv:"price_eur" json:"price_eur"`
	ECCoated       bool          `csv:"ec_coated" json:"ec_coated"`
	PriceOnRequest bool          `csv:"price_on_request" json:"price_on_request"`
}
