package refdata

import "testing"

func TestLoad(t *testing.T) {
	if err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestCatalogContents(t *testing.T) {
	if got := len(HeatPumps()); got != 12 {
		t.Errorf("heat pumps: %d, want 12", got)
	}
	if got := len(BuildingTypes()); got != 10 {
		t.Errorf("building types: %d, want 10", got)
	}
	if got := len(GridConnections()); got != 7 {
		t.Errorf("grid connections: %d, want 7", got)
	}
	if got := len(BivalentPoints()); got != 3 {
		t.Errorf("bivalent points: %d, want 3", got)
	}
}

func TestLookups(t *testing.T) {
	gc, ok := GridConnectionByID("3x80A")
	if !ok || gc.MaxPowerKW != 55.4 {
		t.Fatalf("3x80A lookup: %+v ok=%v", gc, ok)
	}
	bp, ok := BivalentPointByID("0")
	if !ok || bp.BetaFactor != 0.30 {
		t.Fatalf("bivalent point 0: %+v ok=%v", bp, ok)
	}
	if _, ok := HeatPumpByID("no-such-model"); ok {
		t.Fatal("unknown heat pump must report false")
	}
	if _, ok := BuildingTypeByID(""); ok {
		t.Fatal("empty building type id must report false")
	}
}

func TestBivalentPointsVaryIndependently(t *testing.T) {
	hybrid, _ := BivalentPointByID("0")
	allElectric, _ := BivalentPointByID("-10")

	// Beta sizes capacity, coverage sizes the annual energy split; the
	// deeper the switchover, the higher both figures.
	if allElectric.BetaFactor <= hybrid.BetaFactor {
		t.Errorf("beta: %v vs %v", allElectric.BetaFactor, hybrid.BetaFactor)
	}
	if allElectric.CoveragePercent <= hybrid.CoveragePercent {
		t.Errorf("coverage: %v vs %v", allElectric.CoveragePercent, hybrid.CoveragePercent)
	}
	if !allElectric.AllElectric || hybrid.AllElectric {
		t.Error("all-electric flag misassigned")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	a := GridConnections()
	a[0].MaxPowerKW = -1
	b := GridConnections()
	if b[0].MaxPowerKW == -1 {
		t.Fatal("mutation leaked into the shared table")
	}

	hp := HeatPumps()
	if len(hp) == 0 {
		t.Fatal("empty catalog")
	}
	hp[0].PowerKW = -1
	if HeatPumps()[0].PowerKW == -1 {
		t.Fatal("heat pump catalog mutation leaked")
	}
}
