package model

import (
	"errors"
	"fmt"
)

// ManualEnergyData is the user-entered description of a building and its
// annual utility figures. One instance exists per analysis session; it is
// treated as immutable once a calculation starts and fully replaces any
// earlier instance on re-edit.
type ManualEnergyData struct {
	BuildingTypeID   string `json:"building_type"`
	NumberOfUnits    int    `json:"number_of_units"`
	CoastalLocation  bool   `json:"coastal_location"`
	GridConnectionID string `json:"grid_connection"`

	ElectricityOfftakeKWh float64 `json:"electricity_offtake_kwh"`
	ElectricityFeedInKWh  float64 `json:"electricity_feed_in_kwh"`
	GasConsumptionM3      float64 `json:"gas_consumption_m3"`
	DHWLitersPerDay       float64 `json:"dhw_liters_per_day"`

	OccupancyWeekdayStart int `json:"occupancy_weekday_start"`
	OccupancyWeekdayEnd   int `json:"occupancy_weekday_end"`
	OccupancyWeekendStart int `json:"occupancy_weekend_start"`
	OccupancyWeekendEnd   int `json:"occupancy_weekend_end"`

	GasPricePerM3          float64 `json:"gas_price_per_m3"`
	ElectricityPricePerKWh float64 `json:"electricity_price_per_kwh"`
	FeedInTariffPerKWh     float64 `json:"feed_in_tariff_per_kwh"`
	FeedInPenaltyPerKWh    float64 `json:"feed_in_penalty_per_kwh"`

	NetMeteringEnabled bool   `json:"net_metering_enabled"`
	BivalentPointID    string `json:"bivalent_point"`
}

// ValidationError reports a single failed input precondition.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// Validate checks the preconditions the pipeline refuses to run without.
// All failures are reported, joined into one error.
func (d ManualEnergyData) Validate() error {
	var errs []error
	if d.BuildingTypeID == "" {
		errs = append(errs, ValidationError{Field: "building_type", Reason: "is required"})
	}
	if d.NumberOfUnits <= 0 {
		errs = append(errs, ValidationError{Field: "number_of_units", Reason: "must be positive"})
	}
	if d.GridConnectionID == "" {
		errs = append(errs, ValidationError{Field: "grid_connection", Reason: "is required"})
	}
	if d.BivalentPointID == "" {
		errs = append(errs, ValidationError{Field: "bivalent_point", Reason: "is required"})
	}
	if d.GasConsumptionM3 <= 0 {
		errs = append(errs, ValidationError{Field: "gas_consumption_m3", Reason: "must be positive"})
	}
	if d.ElectricityOfftakeKWh < 0 {
		errs = append(errs, ValidationError{Field: "electricity_offtake_kwh", Reason: "must not be negative"})
	}
	if d.ElectricityFeedInKWh < 0 {
		errs = append(errs, ValidationError{Field: "electricity_feed_in_kwh", Reason: "must not be negative"})
	}
	if d.DHWLitersPerDay < 0 {
		errs = append(errs, ValidationError{Field: "dhw_liters_per_day", Reason: "must not be negative"})
	}
	for _, h := range []struct {
		field string
		value int
	}{
		{"occupancy_weekday_start", d.OccupancyWeekdayStart},
		{"occupancy_weekday_end", d.OccupancyWeekdayEnd},
		{"occupancy_weekend_start", d.OccupancyWeekendStart},
		{"occupancy_weekend_end", d.OccupancyWeekendEnd},
	} {
		if h.value < 0 || h.value > 23 {
			errs = append(errs, ValidationError{Field: h.field, Reason: "must be an hour between 0 and 23"})
		}
	}
	if d.OccupancyWeekdayEnd < d.OccupancyWeekdayStart {
		errs = append(errs, ValidationError{Field: "occupancy_weekday_end", Reason: "must not precede occupancy_weekday_start"})
	}
	if d.OccupancyWeekendEnd < d.OccupancyWeekendStart {
		errs = append(errs, ValidationError{Field: "occupancy_weekend_end", Reason: "must not precede occupancy_weekend_start"})
	}
	for _, p := range []struct {
		field string
		value float64
	}{
		{"gas_price_per_m3", d.GasPricePerM3},
		{"electricity_price_per_kwh", d.ElectricityPricePerKWh},
		{"feed_in_tariff_per_kwh", d.FeedInTariffPerKWh},
		{"feed_in_penalty_per_kwh", d.FeedInPenaltyPerKWh},
	} {
		if p.value < 0 {
			errs = append(errs, ValidationError{Field: p.field, Reason: "must not be negative"})
		}
	}
	return errors.Join(errs...)
}
