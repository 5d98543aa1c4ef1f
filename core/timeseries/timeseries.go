// Package timeseries provides the hour-aligned time handling shared by the
// profile generators and the peak analyzer: iteration over every hour of a
// year or date range, and the calendar join key used to align independently
// generated series.
package timeseries

import "time"

// DayHourKey identifies an hour of the calendar year without its year. It is
// the join key between a building series and a heat-pump series. Because the
// year is deliberately absent, joining series from different years aliases
// them onto one calendar; the analysis is single-year by contract.
type DayHourKey struct {
	Month time.Month
	Day   int
	Hour  int
}

// KeyOf returns the DayHourKey for t.
func KeyOf(t time.Time) DayHourKey {
	return DayHourKey{Month: t.Month(), Day: t.Day(), Hour: t.Hour()}
}

// HourOf truncates t to the start of its hour.
func HourOf(t time.Time) time.Time {
	return t.Truncate(time.Hour)
}

// Hours returns every hour of the given year in UTC, in chronological order.
// Leap years yield 8784 entries, other years 8760.
func Hours(year int) []time.Time {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	hours := make([]time.Time, 0, 8784)
	for t := start; t.Before(end); t = t.Add(time.Hour) {
		hours = append(hours, t)
	}
	return hours
}

// Range returns every hour from start to end inclusive.
func Range(start, end time.Time) []time.Time {
	var hours []time.Time
	for t := HourOf(start); !t.After(end); t = t.Add(time.Hour) {
		hours = append(hours, t)
	}
	return hours
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
