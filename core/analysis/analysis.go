// Package analysis orchestrates the full sizing pipeline: heat demand,
// heat pump selection, savings, hourly profiles, grid impact and the
// financial scenarios. It is the single entry point used by the CLI and
// the HTTP API.
package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gridfit/gridfit/core/heatdemand"
	"github.com/gridfit/gridfit/core/logger"
	"github.com/gridfit/gridfit/core/market"
	"github.com/gridfit/gridfit/core/metrics"
	"github.com/gridfit/gridfit/core/model"
	"github.com/gridfit/gridfit/core/peak"
	"github.com/gridfit/gridfit/core/profile"
	"github.com/gridfit/gridfit/core/refdata"
	"github.com/gridfit/gridfit/core/savings"
	"github.com/gridfit/gridfit/core/scenario"
	"github.com/gridfit/gridfit/core/selector"
)

// Input is a complete analysis request.
type Input struct {
	Data model.ManualEnergyData
	// Year anchors the synthetic hourly profiles. Zero means the current
	// year in UTC.
	Year     int
	PreferHT bool
	// IntervalMinutes is the sampling interval for the grid impact
	// analysis. Zero means peak.DefaultIntervalMinutes.
	IntervalMinutes int
	BufferKWh       float64
	// Temperatures and Prices override the synthetic market data. Nil
	// falls back to a deterministic synthetic year.
	Temperatures market.TemperatureSource
	Prices       market.SpotPriceSource
}

// HybridFallback estimates the cost of letting the gas boiler cover the
// hours where the combined load exceeds the grid connection, instead of
// reinforcing the connection.
type HybridFallback struct {
	SwitchHours     int     `json:"switch_hours"`
	ExtraGasM3      float64 `json:"extra_gas_m3"`
	ReducedElecKWh  float64 `json:"reduced_elec_kwh"`
	ExtraGasCostEUR float64 `json:"extra_gas_cost_eur"`
}

// SelfConsumption values the solar feed-in the heat pump can absorb
// directly.
type SelfConsumption struct {
	AbsorbedKWh float64 `json:"absorbed_kwh"`
	BenefitEUR  float64 `json:"benefit_eur"`
}

// Report bundles every stage of one analysis run. Stages past selection
// are nil when no heat pump model fits the request; an empty selection is
// a valid outcome, not an error.
type Report struct {
	ID          string                 `json:"id"`
	GeneratedAt time.Time              `json:"generated_at"`
	Input       model.ManualEnergyData `json:"input"`
	Building    model.BuildingType     `json:"building"`
	Connection  model.GridConnection   `json:"connection"`
	Bivalent    model.BivalentPoint    `json:"bivalent_point"`
	HeatDemand  heatdemand.Result      `json:"heat_demand"`
	Selection   selector.Result        `json:"selection"`
	Selected    *selector.Option       `json:"selected,omitempty"`

	Savings         *savings.Result              `json:"savings,omitempty"`
	HPProfile       *profile.HPSummary           `json:"hp_profile,omitempty"`
	Peak            *peak.Result                 `json:"peak,omitempty"`
	Temperature     *peak.TemperatureCorrelation `json:"temperature,omitempty"`
	Saldering       *scenario.SalderingAnalysis  `json:"saldering,omitempty"`
	Dynamic         *scenario.DynamicAnalysis    `json:"dynamic,omitempty"`
	Steering        *scenario.SteeringAnalysis   `json:"steering,omitempty"`
	Hybrid          *HybridFallback              `json:"hybrid,omitempty"`
	SelfConsumption *SelfConsumption             `json:"self_consumption,omitempty"`

	// Combined is the merged hourly series behind the peak analysis,
	// kept for export backends.
	Combined []model.CombinedLoadPoint `json:"-"`

	Duration time.Duration `json:"duration_ns"`
}

// Analyzer runs analyses and reports outcomes to a metrics sink.
type Analyzer struct {
	log  logger.Logger
	sink metrics.Sink
}

// New creates an Analyzer. Nil arguments fall back to no-op
// implementations.
func New(log logger.Logger, sink metrics.Sink) *Analyzer {
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Analyzer{log: log, sink: sink}
}

// Run executes the full pipeline for one request.
func (a *Analyzer) Run(in Input) (*Report, error) {
	started := time.Now()

	if err := in.Data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if err := refdata.Load(); err != nil {
		return nil, fmt.Errorf("reference data: %w", err)
	}

	building, ok := refdata.BuildingTypeByID(in.Data.BuildingTypeID)
	if !ok {
		return nil, fmt.Errorf("unknown building type %q", in.Data.BuildingTypeID)
	}
	conn, ok := refdata.GridConnectionByID(in.Data.GridConnectionID)
	if !ok {
		return nil, fmt.Errorf("unknown grid connection %q", in.Data.GridConnectionID)
	}
	bp, ok := refdata.BivalentPointByID(in.Data.BivalentPointID)
	if !ok {
		return nil, fmt.Errorf("unknown bivalent point %q", in.Data.BivalentPointID)
	}

	year := in.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	temps := in.Temperatures
	prices := in.Prices
	if temps == nil || prices == nil {
		syn := market.NewSynthetic(year, 1)
		if temps == nil {
			temps = syn
		}
		if prices == nil {
			prices = syn
		}
	}

	rep := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: started.UTC(),
		Input:       in.Data,
		Building:    building,
		Connection:  conn,
		Bivalent:    bp,
	}

	rep.HeatDemand = heatdemand.Calculate(in.Data, building)
	a.log.Debugw("heat demand computed", map[string]any{
		"report_id":         rep.ID,
		"total_kwh":         rep.HeatDemand.TotalHeatDemandKWh,
		"required_power_kw": rep.HeatDemand.RequiredPowerKW,
	})

	rep.Selection = selector.Select(refdata.HeatPumps(), selector.Input{
		RequiredPowerKW: rep.HeatDemand.RequiredPowerKW,
		BivalentPoint:   bp,
		Coastal:         in.Data.CoastalLocation,
		PreferHT:        in.PreferHT,
	})
	if len(rep.Selection.Recommendations) == 0 {
		a.log.Warnf("no heat pump model fits %.1f kW, returning partial report %s",
			rep.Selection.RequiredCapacityKW, rep.ID)
		rep.Duration = time.Since(started)
		a.record(rep)
		return rep, nil
	}
	sel := rep.Selection.Recommendations[0]
	rep.Selected = &sel

	sav := savings.Calculate(savings.Input{
		Demand:                 rep.HeatDemand,
		Model:                  sel.Model,
		Units:                  sel.Units,
		TotalPriceEUR:          sel.TotalPriceEUR,
		BivalentPoint:          bp,
		GasPricePerM3:          in.Data.GasPricePerM3,
		ElectricityPricePerKWh: in.Data.ElectricityPricePerKWh,
		GasConsumptionM3:       in.Data.GasConsumptionM3,
	})
	rep.Savings = &sav

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 0, 0, 0, time.UTC)

	buildingSeries := profile.GenerateBuilding(profile.BuildingInput{
		Building:             building,
		YearlyElectricityKWh: in.Data.ElectricityOfftakeKWh,
		YearlyGasM3:          in.Data.GasConsumptionM3,
		YearlyFeedInKWh:      in.Data.ElectricityFeedInKWh,
		Year:                 year,
	})
	hp := profile.GenerateHP(profile.HPInput{
		Data:          in.Data,
		Model:         sel.Model,
		BivalentPoint: bp,
		Temperatures:  temps,
		Start:         start,
		End:           end,
	})
	if sel.Units > 1 {
		hp = hp.Scale(float64(sel.Units))
	}
	rep.HPProfile = &hp.Summary

	interval := in.IntervalMinutes
	if interval <= 0 {
		interval = peak.DefaultIntervalMinutes
	}
	rep.Combined = peak.Merge(buildingSeries, hp.Points, interval)
	pk := peak.Analyze(rep.Combined, conn, interval)
	rep.Peak = &pk
	corr := peak.CorrelateTemperatures(rep.Combined, temps)
	rep.Temperature = &corr

	hpLoad := make(map[time.Time]float64, len(hp.Points))
	var hpTotalKWh float64
	for _, p := range hp.Points {
		kwh := p.PowerKW * float64(interval) / 60.0
		hpLoad[p.Timestamp] = kwh
		hpTotalKWh += kwh
	}

	sal := scenario.Saldering(scenario.SalderingInput{
		Series:                 buildingSeries,
		HPExtraKWh:             hpTotalKWh,
		ElectricityPricePerKWh: in.Data.ElectricityPricePerKWh,
		FeedInTariffPerKWh:     in.Data.FeedInTariffPerKWh,
		FeedInPenaltyPerKWh:    in.Data.FeedInPenaltyPerKWh,
	})
	rep.Saldering = &sal

	dyn := scenario.Dynamic(scenario.DynamicInput{
		Series:             buildingSeries,
		HPLoad:             hpLoad,
		Prices:             prices,
		FixedPricePerKWh:   in.Data.ElectricityPricePerKWh,
		NetMetering:        in.Data.NetMeteringEnabled,
		FeedInTariffPerKWh: in.Data.FeedInTariffPerKWh,
	})
	rep.Dynamic = &dyn

	st := scenario.Steer(scenario.SteeringInput{
		HPLoad:    hpLoad,
		Prices:    prices,
		BufferKWh: in.BufferKWh,
	})
	rep.Steering = &st

	rep.Hybrid = hybridFallback(pk, in.Data.GasPricePerM3)
	rep.SelfConsumption = selfConsumption(hpTotalKWh, sal.TotalSurplusKWh, in.Data)

	rep.Duration = time.Since(started)
	a.log.Infof("analysis %s done in %s: %s x%d, %.0f EUR/yr savings, %d exceedance hours",
		rep.ID, rep.Duration.Round(time.Millisecond), sel.Model.Name, sel.Units,
		sav.AnnualSavingsEUR, pk.ExceedanceCount)
	a.record(rep)
	return rep, nil
}

func (a *Analyzer) record(rep *Report) {
	rec := metrics.AnalysisRecord{
		ReportID:        rep.ID,
		BuildingType:    rep.Building.ID,
		GridConnection:  rep.Connection.ID,
		HeatDemandKWh:   rep.HeatDemand.TotalHeatDemandKWh,
		RequiredPowerKW: rep.HeatDemand.RequiredPowerKW,
		Duration:        rep.Duration,
		Time:            rep.GeneratedAt,
	}
	if rep.Selected != nil {
		rec.SelectedModel = rep.Selected.Model.ID
		rec.Units = rep.Selected.Units
	}
	if rep.Savings != nil {
		rec.AnnualSavingsEUR = rep.Savings.AnnualSavingsEUR
		rec.CO2ReductionKg = rep.Savings.CO2ReductionKg
	}
	if rep.Peak != nil {
		rec.PeakPowerKW = rep.Peak.PeakPowerKW
		rec.ExceedanceCount = rep.Peak.ExceedanceCount
		rec.ExceedancePercent = rep.Peak.ExceedancePercent
	}
	if err := a.sink.RecordAnalysis(rec); err != nil {
		a.log.Errorf("metrics sink: %v", err)
	}
	if er, ok := a.sink.(metrics.ExceedanceRecorder); ok && rep.Peak != nil {
		for _, ev := range rep.Peak.Events {
			e := metrics.ExceedanceEvent{
				ReportID:         rep.ID,
				Start:            ev.Start,
				End:              ev.End,
				PeakExceedanceKW: ev.PeakExceedanceKW,
			}
			if err := er.RecordExceedance(e); err != nil {
				a.log.Errorf("metrics sink: %v", err)
				break
			}
		}
	}
}

// hybridFallback sizes the boiler backup needed to shave the exceedance
// hours. During a switch hour the boiler delivers roughly half the heat
// pump's average output as heat while electricity drops by about 30%.
func hybridFallback(pk peak.Result, gasPricePerM3 float64) *HybridFallback {
	if pk.ExceedanceCount == 0 {
		return &HybridFallback{}
	}
	hours := float64(pk.ExceedanceCount)
	extraGas := hours * pk.AvgPowerKW * 0.5 / model.GasEnergyContentKWhPerM3 / model.BoilerEfficiency
	return &HybridFallback{
		SwitchHours:     pk.ExceedanceCount,
		ExtraGasM3:      extraGas,
		ReducedElecKWh:  hours * pk.AvgPowerKW * 0.3,
		ExtraGasCostEUR: extraGas * gasPricePerM3,
	}
}

func selfConsumption(hpKWh, feedInKWh float64, data model.ManualEnergyData) *SelfConsumption {
	absorbed := hpKWh
	if feedInKWh < absorbed {
		absorbed = feedInKWh
	}
	return &SelfConsumption{
		AbsorbedKWh: absorbed,
		BenefitEUR:  absorbed * (data.ElectricityPricePerKWh - data.FeedInTariffPerKWh + data.FeedInPenaltyPerKWh),
	}
}
