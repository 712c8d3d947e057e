// Package engine is the temperature compliance and analytics core. Every
// function here is a pure function of its inputs plus an explicit reference
// instant, so identical calls always produce identical results and callers
// are free to cache or re-run them. Malformed input data is degraded or
// counted, never a panic or an error.
package engine

import (
	"time"

	"kitchenlog.xyz/kitchen-compliance-service/pkg/models"
)

// resolveTimestamp builds a reading's effective timestamp. When the
// time-of-day string is malformed it synthesizes one from the date at
// midnight plus the reading's position, so the reading keeps a usable,
// order-preserving place on the time axis instead of being dropped.
// The second return reports whether the timestamp had to be synthesized;
// the third reports whether the reading could be anchored to a real date
// at all. Unanchored timestamps keep readings ordered for rendering but
// must never feed elapsed-time math.
func resolveTimestamp(r *models.TemperatureReading, idx int, loc *time.Location) (time.Time, bool, bool) {
	if loc == nil {
		loc = time.Local
	}
	if ts, err := r.EffectiveTimestamp(loc); err == nil {
		return ts, false, true
	}
	if d, err := time.ParseInLocation(models.DateLayout, r.ReadingDate, loc); err == nil {
		return d.Add(time.Duration(idx) * time.Second), true, true
	}
	return time.Time{}.Add(time.Duration(idx) * time.Second), true, false
}
