package engine

import (
	"fmt"
	"time"

	"kitchenlog.xyz/kitchen-compliance-service/pkg/models"
)

type ZoneStatus string

const (
	ZoneSafe    ZoneStatus = "safe"
	ZoneWarning ZoneStatus = "warning"
	ZoneDanger  ZoneStatus = "danger"
)

// Severity tokens are opaque to this core; the presentation layer maps them
// to colors and icons.
const (
	SeverityOK       = "ok"
	SeverityCaution  = "caution"
	SeverityCritical = "critical"
)

const (
	// Universal danger band for held food, in Celsius.
	DangerBandMinC = 5.0
	DangerBandMaxC = 60.0

	// 2-hour/4-hour rule cutoffs.
	ZoneSafeHours    = 2.0
	ZoneDiscardHours = 4.0
)

type DangerZoneVerdict struct {
	Status         ZoneStatus
	Message        string
	Severity       string
	InBand         bool
	ElapsedHours   float64
	RemainingHours float64
}

// EvaluateDangerZone applies the 2-hour/4-hour rule to a single reading.
// Returns nil for categories the rule does not apply to. For a fixed reading
// the verdict over increasing now only ever moves safe -> warning -> danger.
// A now earlier than the reading (clock skew) floors elapsed time at zero.
func EvaluateDangerZone(r *models.TemperatureReading, category models.EquipmentCategory, now time.Time, loc *time.Location) *DangerZoneVerdict {
	if !category.IsFoodHandling() {
		return nil
	}

	if r.TemperatureC < DangerBandMinC || r.TemperatureC > DangerBandMaxC {
		return &DangerZoneVerdict{
			Status:   ZoneSafe,
			Message:  "outside danger zone",
			Severity: SeverityOK,
		}
	}

	// A reading with no resolvable date has no elapsed time to measure, so it
	// stays at zero rather than being measured against the zero time.
	elapsed := 0.0
	if ts, _, anchored := resolveTimestamp(r, 0, loc); anchored {
		elapsed = now.Sub(ts).Hours()
	}
	if elapsed < 0 {
		elapsed = 0
	}

	v := &DangerZoneVerdict{InBand: true, ElapsedHours: elapsed}
	switch {
	case elapsed < ZoneSafeHours:
		v.Status = ZoneSafe
		v.Severity = SeverityOK
		v.RemainingHours = ZoneSafeHours - elapsed
		v.Message = fmt.Sprintf("%.1f hours left before refrigeration is required", v.RemainingHours)
	case elapsed < ZoneDiscardHours:
		v.Status = ZoneWarning
		v.Severity = SeverityCaution
		v.RemainingHours = ZoneDiscardHours - elapsed
		v.Message = fmt.Sprintf("in danger zone for %.1f hours, food must be used immediately", elapsed)
	default:
		v.Status = ZoneDanger
		v.Severity = SeverityCritical
		v.Message = fmt.Sprintf("in danger zone for %.1f hours, food must be discarded", elapsed)
	}
	return v
}
