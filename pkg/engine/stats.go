package engine

import (
	"math"
	"time"

	"kitchenlog.xyz/kitchen-compliance-service/pkg/common"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/models"
)

type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// TrendInfo compares the average temperature of the newer half of the window
// against the older half. Average temperature is the canonical trend metric:
// unlike compliance rate it stays defined for unconfigured equipment, and it
// is what the chart shows.
type TrendInfo struct {
	Direction        TrendDirection
	PercentageChange float64
	CurrentAvgC      float64
	PreviousAvgC     float64
}

// CurrentStatus is the verdict on the most recent reading, by effective
// timestamp rather than insertion order.
type CurrentStatus struct {
	ReadingID    uint
	Status       ComplianceStatus
	TemperatureC float64
	Timestamp    time.Time
}

// StatisticsSnapshot is re-derived in full on every call; nothing here
// accumulates across calls.
type StatisticsSnapshot struct {
	Current *CurrentStatus

	// ComplianceRate is 0-100 and excludes unconfigured readings from both
	// numerator and denominator. Kept as float internally; display rounding
	// is the caller's concern.
	ComplianceRate float64
	CompliantCount int
	TotalCount     int

	// Danger zone exposure at evaluation time, food-handling categories only.
	ZoneStatus      ZoneStatus
	DangerZoneHours float64
	DangerZoneCount int

	// Trend is nil when either half of the window has no data.
	Trend *TrendInfo

	// Readings skipped for data-quality reasons: non-finite temperature, or
	// a timestamp that could not be resolved even to a date.
	SkippedReadings int
}

// resolvedReading pairs a reading with its resolved effective timestamp so
// the timestamp is parsed once per computation pass.
type resolvedReading struct {
	reading *models.TemperatureReading
	ts      time.Time
}

// ComputeStatistics derives a snapshot from an already-filtered log set.
// The input slice is treated as an immutable view for the duration of the
// call.
func ComputeStatistics(logs []models.TemperatureReading, eq *models.Equipment, now time.Time, loc *time.Location) StatisticsSnapshot {
	if loc == nil {
		loc = time.Local
	}

	snapshot := StatisticsSnapshot{ZoneStatus: ZoneSafe}

	usable := make([]resolvedReading, 0, len(logs))
	for i := range logs {
		if math.IsNaN(logs[i].TemperatureC) || math.IsInf(logs[i].TemperatureC, 0) {
			snapshot.SkippedReadings++
			continue
		}
		ts, _, anchored := resolveTimestamp(&logs[i], i, loc)
		if !anchored {
			// No usable date at all; such a reading cannot be placed in time,
			// and measuring it against the zero time would report absurd
			// danger-zone exposure.
			snapshot.SkippedReadings++
			continue
		}
		usable = append(usable, resolvedReading{reading: &logs[i], ts: ts})
	}
	if len(usable) == 0 {
		return snapshot
	}

	// Most recent reading wins current status; on a timestamp tie the later
	// entry in the input wins.
	latest := usable[0]
	for _, u := range usable[1:] {
		if !u.ts.Before(latest.ts) {
			latest = u
		}
	}
	snapshot.Current = &CurrentStatus{
		ReadingID:    latest.reading.ID,
		Status:       Classify(latest.reading.TemperatureC, eq),
		TemperatureC: latest.reading.TemperatureC,
		Timestamp:    latest.ts,
	}

	for _, u := range usable {
		switch Classify(u.reading.TemperatureC, eq) {
		case StatusInRange:
			snapshot.CompliantCount++
			snapshot.TotalCount++
		case StatusBelowMin, StatusAboveMax:
			snapshot.TotalCount++
		case StatusUnconfigured:
			// excluded from both sides of the rate
		}
	}
	if snapshot.TotalCount > 0 {
		snapshot.ComplianceRate = float64(snapshot.CompliantCount) / float64(snapshot.TotalCount) * 100
	}

	if eq != nil && eq.Category.IsFoodHandling() {
		for _, u := range usable {
			v := EvaluateDangerZone(u.reading, eq.Category, now, loc)
			if v == nil || v.Status == ZoneSafe {
				continue
			}
			snapshot.DangerZoneCount++
			snapshot.DangerZoneHours += v.ElapsedHours
			if v.Status == ZoneDanger {
				snapshot.ZoneStatus = ZoneDanger
			} else if snapshot.ZoneStatus != ZoneDanger {
				snapshot.ZoneStatus = ZoneWarning
			}
		}
	}

	snapshot.Trend = computeTrend(usable, eq)

	return snapshot
}

// computeTrend splits the window in half at the midpoint between the oldest
// and newest timestamps and compares the average temperature on each side.
// Returns nil when either side is empty or the previous average is zero, so
// sparse windows produce "no trend" instead of a division artifact.
func computeTrend(usable []resolvedReading, eq *models.Equipment) *TrendInfo {
	if len(usable) < 2 {
		return nil
	}

	minTs, maxTs := usable[0].ts, usable[0].ts
	for _, u := range usable[1:] {
		if u.ts.Before(minTs) {
			minTs = u.ts
		}
		if u.ts.After(maxTs) {
			maxTs = u.ts
		}
	}
	mid := minTs.Add(maxTs.Sub(minTs) / 2)

	var curSum, prevSum float64
	var curN, prevN int
	for _, u := range usable {
		if u.ts.After(mid) {
			curSum += u.reading.TemperatureC
			curN++
		} else {
			prevSum += u.reading.TemperatureC
			prevN++
		}
	}
	if curN == 0 || prevN == 0 {
		return nil
	}

	curAvg := curSum / float64(curN)
	prevAvg := prevSum / float64(prevN)
	if prevAvg == 0 {
		return nil
	}

	change := common.RoundTo((curAvg-prevAvg)/prevAvg*100, 1)
	trend := &TrendInfo{
		PercentageChange: change,
		CurrentAvgC:      curAvg,
		PreviousAvgC:     prevAvg,
		Direction:        TrendStable,
	}
	if math.Abs(change) < 1 {
		return trend
	}

	if eq != nil && eq.HasThresholds() && eq.ConfigurationValid() {
		// Direction is relative to the safe band: moving toward its midpoint
		// is an improvement regardless of sign.
		bandMid := (*eq.MinTempC + *eq.MaxTempC) / 2
		curDist := math.Abs(curAvg - bandMid)
		prevDist := math.Abs(prevAvg - bandMid)
		switch {
		case curDist < prevDist:
			trend.Direction = TrendImproving
		case curDist > prevDist:
			trend.Direction = TrendDeclining
		}
	}
	return trend
}
