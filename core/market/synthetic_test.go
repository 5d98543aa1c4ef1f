package market

import (
	"testing"
	"time"
)

func TestSyntheticCoversYear(t *testing.T) {
	s := NewSynthetic(2023, 1)
	first := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC)
	for _, ts := range []time.Time{first, last} {
		if _, ok := s.TemperatureAt(ts); !ok {
			t.Errorf("no temperature at %v", ts)
		}
		if _, ok := s.PriceAt(ts); !ok {
			t.Errorf("no price at %v", ts)
		}
	}
	if _, ok := s.TemperatureAt(first.AddDate(-1, 0, 0)); ok {
		t.Error("previous year must be absent")
	}
}

func TestSyntheticDeterministic(t *testing.T) {
	a := NewSynthetic(2023, 42)
	b := NewSynthetic(2023, 42)
	c := NewSynthetic(2023, 43)

	ts := time.Date(2023, time.July, 10, 18, 0, 0, 0, time.UTC)
	ta, _ := a.TemperatureAt(ts)
	tb, _ := b.TemperatureAt(ts)
	tc, _ := c.TemperatureAt(ts)
	if ta != tb {
		t.Fatalf("same seed, different temperature: %v vs %v", ta, tb)
	}
	if ta == tc {
		t.Fatalf("different seeds produced identical noise at %v", ts)
	}
}

func TestSyntheticLookupTruncatesToHour(t *testing.T) {
	s := NewSynthetic(2023, 1)
	aligned := time.Date(2023, time.May, 2, 9, 0, 0, 0, time.UTC)
	offset := aligned.Add(25 * time.Minute)

	pa, _ := s.PriceAt(aligned)
	po, ok := s.PriceAt(offset)
	if !ok || pa != po {
		t.Fatalf("mid-hour lookup must hit the hour bucket: %+v vs %+v", pa, po)
	}
}

func TestSyntheticEveningPricePeak(t *testing.T) {
	s := NewSynthetic(2023, 7)
	var night, evening float64
	for day := 1; day <= 28; day++ {
		n, _ := s.PriceAt(time.Date(2023, time.February, day, 3, 0, 0, 0, time.UTC))
		e, _ := s.PriceAt(time.Date(2023, time.February, day, 18, 0, 0, 0, time.UTC))
		night += n.ElectricityCtPerKWh
		evening += e.ElectricityCtPerKWh
	}
	if evening <= night {
		t.Fatalf("evening average %v must exceed night average %v", evening/28, night/28)
	}
}
