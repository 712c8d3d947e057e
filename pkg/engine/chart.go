package engine

import (
	"math"
	"sort"
	"time"

	"kitchenlog.xyz/kitchen-compliance-service/pkg/models"
)

const maxChartTicks = 6

type ChartPoint struct {
	Timestamp    time.Time
	TemperatureC float64
	// XIndex is a sequential axis position assigned after sorting. Readings
	// are rendered evenly spaced regardless of their real spacing in time;
	// this is a rendering choice, the timestamps keep full fidelity.
	XIndex int
	// Synthesized marks points whose time-of-day string could not be parsed
	// and whose timestamp was reconstructed from the date instead.
	Synthesized bool
}

type ChartSeries struct {
	Points []ChartPoint
	// Y bounds cover both the data and the equipment's configured range,
	// padded so the safe-range lines stay visible even when nothing
	// breaches them.
	YMin float64
	YMax float64
	// Up to six evenly spaced XIndex values for label rendering.
	TickIndices []int
}

// BuildChartSeries orders a log set into a monotonic time series. Readings
// with malformed time strings get a synthesized timestamp rather than being
// dropped; only non-finite temperatures are filtered out.
func BuildChartSeries(logs []models.TemperatureReading, eq *models.Equipment, loc *time.Location) ChartSeries {
	if loc == nil {
		loc = time.Local
	}

	points := make([]ChartPoint, 0, len(logs))
	for i := range logs {
		if math.IsNaN(logs[i].TemperatureC) || math.IsInf(logs[i].TemperatureC, 0) {
			continue
		}
		ts, synthesized, _ := resolveTimestamp(&logs[i], i, loc)
		points = append(points, ChartPoint{
			Timestamp:    ts,
			TemperatureC: logs[i].TemperatureC,
			Synthesized:  synthesized,
		})
	}

	if len(points) == 0 {
		return ChartSeries{Points: points}
	}

	// Stable keeps original order on equal timestamps.
	sort.SliceStable(points, func(a, b int) bool {
		return points[a].Timestamp.Before(points[b].Timestamp)
	})
	for i := range points {
		points[i].XIndex = i
	}

	yMin, yMax := points[0].TemperatureC, points[0].TemperatureC
	for _, p := range points[1:] {
		yMin = math.Min(yMin, p.TemperatureC)
		yMax = math.Max(yMax, p.TemperatureC)
	}
	if eq != nil && eq.HasThresholds() && eq.ConfigurationValid() {
		yMin = math.Min(yMin, *eq.MinTempC)
		yMax = math.Max(yMax, *eq.MaxTempC)
	}
	pad := math.Max(1, (yMax-yMin)*0.10)

	return ChartSeries{
		Points:      points,
		YMin:        yMin - pad,
		YMax:        yMax + pad,
		TickIndices: tickIndices(len(points)),
	}
}

// tickIndices picks up to maxChartTicks evenly spaced indices in [0, n).
func tickIndices(n int) []int {
	if n == 0 {
		return nil
	}
	if n <= maxChartTicks {
		ticks := make([]int, n)
		for i := range ticks {
			ticks[i] = i
		}
		return ticks
	}

	step := float64(n-1) / float64(maxChartTicks-1)
	ticks := make([]int, 0, maxChartTicks)
	last := -1
	for i := 0; i < maxChartTicks; i++ {
		idx := int(math.Round(float64(i) * step))
		if idx != last {
			ticks = append(ticks, idx)
			last = idx
		}
	}
	return ticks
}
