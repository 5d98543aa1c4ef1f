package peak

import (
	"math"
	"sort"
	"time"

	"github.com/gridfit/gridfit/core/model"
)

// Event is one contiguous run of exceedance hours.
type Event struct {
	Start            time.Time     `json:"start"`
	End              time.Time     `json:"end"`
	Duration         time.Duration `json:"duration"`
	PeakExceedanceKW float64       `json:"peak_exceedance_kw"`
}

// DurationStats summarizes event durations. All zero when no event exists.
type DurationStats struct {
	Min    time.Duration `json:"min"`
	Max    time.Duration `json:"max"`
	Median time.Duration `json:"median"`
	Total  time.Duration `json:"total"`
}

// Result aggregates the combined series against the connection capacity.
type Result struct {
	PeakPowerKW          float64       `json:"peak_power_kw"`
	AvgPowerKW           float64       `json:"avg_power_kw"`
	ConnectionCapacityKW float64       `json:"connection_capacity_kw"`
	ExceedanceCount      int           `json:"exceedance_count"`
	ExceedancePercent    float64       `json:"exceedance_percent"`
	Durations            DurationStats `json:"durations"`
	Events               []Event       `json:"events"`
}

// Analyze flags exceedances in place and aggregates peak, average and
// exceedance-duration statistics. A point exactly at the connection limit
// is not an exceedance; the comparison is strictly greater-than.
func Analyze(points []model.CombinedLoadPoint, conn model.GridConnection, intervalMinutes int) Result {
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultIntervalMinutes
	}
	capKW := conn.MaxPowerKW

	var peak, sum float64
	count := 0
	for i := range points {
		p := &points[i]
		if p.CombinedKW > capKW {
			p.Exceedance = true
			p.ExceedanceKW = p.CombinedKW - capKW
			count++
		} else {
			p.Exceedance = false
			p.ExceedanceKW = 0
		}
		peak = math.Max(peak, p.CombinedKW)
		sum += p.CombinedKW
	}

	res := Result{
		PeakPowerKW:          peak,
		ConnectionCapacityKW: capKW,
		ExceedanceCount:      count,
		Events:               Events(points, intervalMinutes),
	}
	if len(points) > 0 {
		res.AvgPowerKW = sum / float64(len(points))
		res.ExceedancePercent = float64(count) / float64(len(points)) * 100
	}
	res.Durations = durationStats(res.Events)
	return res
}

// Events scans chronologically and merges adjacent exceedance hours into
// contiguous events. A run still open at the end of the series is closed
// and counted.
func Events(points []model.CombinedLoadPoint, intervalMinutes int) []Event {
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultIntervalMinutes
	}
	interval := time.Duration(intervalMinutes) * time.Minute

	var events []Event
	var current *Event
	for _, p := range points {
		if p.Exceedance {
			if current == nil {
				current = &Event{Start: p.Timestamp, End: p.Timestamp, Duration: interval, PeakExceedanceKW: p.ExceedanceKW}
			} else {
				current.End = p.Timestamp
				current.Duration += interval
				current.PeakExceedanceKW = math.Max(current.PeakExceedanceKW, p.ExceedanceKW)
			}
		} else if current != nil {
			events = append(events, *current)
			current = nil
		}
	}
	if current != nil {
		events = append(events, *current)
	}
	return events
}

func durationStats(events []Event) DurationStats {
	if len(events) == 0 {
		return DurationStats{}
	}
	minutes := make([]float64, len(events))
	var total time.Duration
	for i, e := range events {
		minutes[i] = e.Duration.Minutes()
		total += e.Duration
	}
	sort.Float64s(minutes)
	mid := len(minutes) / 2
	median := minutes[mid]
	if len(minutes)%2 == 0 {
		median = (minutes[mid-1] + minutes[mid]) / 2
	}
	return DurationStats{
		Min:    time.Duration(minutes[0] * float64(time.Minute)),
		Max:    time.Duration(minutes[len(minutes)-1] * float64(time.Minute)),
		Median: time.Duration(median * float64(time.Minute)),
		Total:  total,
	}
}
