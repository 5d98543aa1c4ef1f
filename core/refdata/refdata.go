// Package refdata holds the static reference tables: the heat-pump catalog,
// building types, grid-connection sizes and bivalent-point configurations.
// The CSV-backed tables are embedded in the binary and parsed once; all
// accessors return copies so callers cannot mutate the tables.
package refdata

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/gridfit/gridfit/core/model"
)

//go:embed data/heatpumps.csv
var heatPumpCSV []byte

//go:embed data/buildingtypes.csv
var buildingTypeCSV []byte

// gridConnections is keyed by connection code. Max power assumes a
// three-phase 400 V connection.
var gridConnections = []model.GridConnection{
	{ID: "3x25A", Name: "3x25A", MaxCurrentA: 25, MaxPowerKW: 17.3},
	{ID: "3x35A", Name: "3x35A", MaxCurrentA: 35, MaxPowerKW: 24.2},
	{ID: "3x40A", Name: "3x40A", MaxCurrentA: 40, MaxPowerKW: 27.7},
	{ID: "3x50A", Name: "3x50A", MaxCurrentA: 50, MaxPowerKW: 34.6},
	{ID: "3x63A", Name: "3x63A", MaxCurrentA: 63, MaxPowerKW: 43.6},
	{ID: "3x80A", Name: "3x80A", MaxCurrentA: 80, MaxPowerKW: 55.4},
	{ID: "3x100A", Name: "3x100A", MaxCurrentA: 100, MaxPowerKW: 69.3},
}

var bivalentPoints = []model.BivalentPoint{
	{ID: "0", Name: "Hybride 0°C", SwitchoverC: 0, BetaFactor: 0.30, CoveragePercent: 40},
	{ID: "-7", Name: "Duo -7°C", SwitchoverC: -7, BetaFactor: 0.70, CoveragePercent: 70},
	{ID: "-10", Name: "All Electric -10°C", SwitchoverC: -10, BetaFactor: 0.90, CoveragePercent: 95, AllElectric: true},
}

var (
	loadOnce      sync.Once
	loadErr       error
	heatPumps     []model.HeatPumpModel
	buildingTypes []model.BuildingType
)

// Load parses the embedded tables. It is called implicitly by every
// accessor; calling it explicitly at startup surfaces malformed table data
// as a fatal error before any analysis runs.
func Load() error {
	loadOnce.Do(func() {
		if loadErr = gocsv.UnmarshalBytes(heatPumpCSV, &heatPumps); loadErr != nil {
			loadErr = fmt.Errorf("parse heat pump catalog: %w", loadErr)
			return
		}
		if loadErr = gocsv.UnmarshalBytes(buildingTypeCSV, &buildingTypes); loadErr != nil {
			loadErr = fmt.Errorf("parse building types: %w", loadErr)
			return
		}
		loadErr = validate()
	})
	return loadErr
}

func validate() error {
	for _, hp := range heatPumps {
		if hp.ID == "" || hp.PowerKW <= 0 || hp.SCOP <= 0 {
			return fmt.Errorf("heat pump catalog entry %q: power and scop must be positive", hp.ID)
		}
		if hp.PriceEUR < 0 {
			return fmt.Errorf("heat pump catalog entry %q: negative price", hp.ID)
		}
	}
	for _, bt := range buildingTypes {
		if bt.ID == "" || bt.GasToKWhFactor <= 0 {
			return fmt.Errorf("building type %q: gas conversion factor must be positive", bt.ID)
		}
		if bt.HotWaterPercent < 0 || bt.HotWaterPercent > 100 {
			return fmt.Errorf("building type %q: hot water percent out of range", bt.ID)
		}
	}
	return nil
}

func mustLoad() {
	if err := Load(); err != nil {
		panic(err)
	}
}

// HeatPumps returns the full catalog.
func HeatPumps() []model.HeatPumpModel {
	mustLoad()
	out := make([]model.HeatPumpModel, len(heatPumps))
	copy(out, heatPumps)
	return out
}

// HeatPumpByID looks up a catalog entry.
func HeatPumpByID(id string) (model.HeatPumpModel, bool) {
	mustLoad()
	for _, hp := range heatPumps {
		if hp.ID == id {
			return hp, true
		}
	}
	return model.HeatPumpModel{}, false
}

// BuildingTypes returns all building types.
func BuildingTypes() []model.BuildingType {
	mustLoad()
	out := make([]model.BuildingType, len(buildingTypes))
	copy(out, buildingTypes)
	return out
}

// BuildingTypeByID looks up a building type.
func BuildingTypeByID(id string) (model.BuildingType, bool) {
	mustLoad()
	for _, bt := range buildingTypes {
		if bt.ID == id {
			return bt, true
		}
	}
	return model.BuildingType{}, false
}

// GridConnections returns all connection sizes.
func GridConnections() []model.GridConnection {
	out := make([]model.GridConnection, len(gridConnections))
	copy(out, gridConnections)
	return out
}

// GridConnectionByID looks up a connection size by its code, e.g. "3x40A".
func GridConnectionByID(id string) (model.GridConnection, bool) {
	for _, gc := range gridConnections {
		if gc.ID == id {
			return gc, true
		}
	}
	return model.GridConnection{}, false
}

// BivalentPoints returns the three switchover configurations.
func BivalentPoints() []model.BivalentPoint {
	out := make([]model.BivalentPoint, len(bivalentPoints))
	copy(out, bivalentPoints)
	return out
}

// BivalentPointByID looks up a bivalent point ("0", "-7", "-10").
func BivalentPointByID(id string) (model.BivalentPoint, bool) {
	for _, bp := range bivalentPoints {
		if bp.ID == id {
			return bp, true
		}
	}
	return model.BivalentPoint{}, false
}
