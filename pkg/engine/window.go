package engine

import (
	"time"

	"kitchenlog.xyz/kitchen-compliance-service/pkg/models"
)

type WindowSelector string

const (
	Window24h WindowSelector = "24h"
	Window7d  WindowSelector = "7d"
	Window30d WindowSelector = "30d"
	WindowAll WindowSelector = "all"
)

// FallbackOrder is the narrowest-first order used to auto-select a window
// that actually contains data.
var FallbackOrder = []WindowSelector{Window24h, Window7d, Window30d, WindowAll}

// FilterByWindow returns the readings that fall inside the requested window,
// preserving input order.
//
// The 24h window is a strict rolling window over full timestamps. The 7d and
// 30d windows cut on calendar date only, ignoring time-of-day; dayOffset
// shifts their reference date back for "go back N days" navigation. This
// asymmetry is deliberate: the daily windows align with how paper temperature
// logs are kept, per calendar day.
func FilterByWindow(logs []models.TemperatureReading, selector WindowSelector, dayOffset int, now time.Time, loc *time.Location) []models.TemperatureReading {
	if selector == WindowAll {
		return logs
	}
	if loc == nil {
		loc = time.Local
	}

	out := make([]models.TemperatureReading, 0, len(logs))
	switch selector {
	case Window24h:
		from := now.Add(-24 * time.Hour)
		for i := range logs {
			ts, _, _ := resolveTimestamp(&logs[i], i, loc)
			if !ts.Before(from) && !ts.After(now) {
				out = append(out, logs[i])
			}
		}
	case Window7d, Window30d:
		days := 7
		if selector == Window30d {
			days = 30
		}
		y, m, d := now.In(loc).Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, loc)
		cutoff := today.AddDate(0, 0, -dayOffset-days)
		for i := range logs {
			date, err := time.ParseInLocation(models.DateLayout, logs[i].ReadingDate, loc)
			if err != nil {
				// malformed date, cannot be placed on the day axis
				continue
			}
			if !date.Before(cutoff) {
				out = append(out, logs[i])
			}
		}
	default:
		return logs
	}
	return out
}

// HasData reports whether the window would contain at least one reading.
func HasData(logs []models.TemperatureReading, selector WindowSelector, dayOffset int, now time.Time, loc *time.Location) bool {
	return len(FilterByWindow(logs, selector, dayOffset, now, loc)) > 0
}

// NarrowestWindow picks the narrowest window with data, so a kitchen with
// sparse history still sees a populated view. Falls through to WindowAll.
func NarrowestWindow(logs []models.TemperatureReading, now time.Time, loc *time.Location) WindowSelector {
	for _, selector := range FallbackOrder {
		if selector == WindowAll {
			break
		}
		if HasData(logs, selector, 0, now, loc) {
			return selector
		}
	}
	return WindowAll
}
