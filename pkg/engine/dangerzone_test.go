package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchenlog.xyz/kitchen-compliance-service/pkg/models"
)

func readingAt(date, clock string, tempC float64) *models.TemperatureReading {
	return &models.TemperatureReading{
		ReadingDate:  date,
		ReadingTime:  clock,
		TemperatureC: tempC,
	}
}

func TestEvaluateDangerZone_NotApplicableCategories(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	r := readingAt("2026-08-28", "09:00", 25.0)

	for _, category := range []models.EquipmentCategory{
		models.CategoryRefrigeration,
		models.CategoryFreezer,
		models.CategoryGeneralStorage,
	} {
		v := EvaluateDangerZone(r, category, now, time.UTC)
		assert.Nil(t, v, "category %s should not be evaluated", category)
	}
}

func TestEvaluateDangerZone_OutsideBand(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// 2C is below the band no matter how long ago it was logged
	v := EvaluateDangerZone(readingAt("2026-08-20", "09:00", 2.0), models.CategoryFoodHotHolding, now, time.UTC)
	require.NotNil(t, v)
	assert.Equal(t, ZoneSafe, v.Status)
	assert.Equal(t, "outside danger zone", v.Message)
	assert.False(t, v.InBand)
	assert.Zero(t, v.ElapsedHours)

	v = EvaluateDangerZone(readingAt("2026-08-20", "09:00", 75.0), models.CategoryFoodCooking, now, time.UTC)
	require.NotNil(t, v)
	assert.Equal(t, ZoneSafe, v.Status)
}

func TestEvaluateDangerZone_BandIsInclusive(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// exactly 5C and 60C are inside the band
	for _, temp := range []float64{5.0, 60.0} {
		v := EvaluateDangerZone(readingAt("2026-08-28", "11:00", temp), models.CategoryFoodHotHolding, now, time.UTC)
		require.NotNil(t, v)
		assert.True(t, v.InBand, "%.0fC should be in band", temp)
	}
}

func TestEvaluateDangerZone_ThreeHoursIsWarning(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	v := EvaluateDangerZone(readingAt("2026-08-28", "09:00", 25.0), models.CategoryFoodHotHolding, now, time.UTC)
	require.NotNil(t, v)
	assert.Equal(t, ZoneWarning, v.Status)
	assert.Equal(t, SeverityCaution, v.Severity)
	assert.InDelta(t, 3.0, v.ElapsedHours, 0.001)
	assert.InDelta(t, 1.0, v.RemainingHours, 0.001)
	assert.Contains(t, v.Message, "3.0 hours")
}

func TestEvaluateDangerZone_Monotonic(t *testing.T) {
	r := readingAt("2026-08-28", "09:00", 25.0)
	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	rank := map[ZoneStatus]int{ZoneSafe: 0, ZoneWarning: 1, ZoneDanger: 2}

	prev := -1
	for minutes := 0; minutes <= 6*60; minutes += 15 {
		now := base.Add(time.Duration(minutes) * time.Minute)
		v := EvaluateDangerZone(r, models.CategoryFoodColdHold, now, time.UTC)
		require.NotNil(t, v)
		cur := rank[v.Status]
		assert.GreaterOrEqual(t, cur, prev,
			fmt.Sprintf("verdict regressed at +%dm", minutes))
		prev = cur
	}
}

func TestEvaluateDangerZone_Cutoffs(t *testing.T) {
	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	r := readingAt("2026-08-28", "09:00", 25.0)

	{
		v := EvaluateDangerZone(r, models.CategoryFoodCooking, base.Add(119*time.Minute), time.UTC)
		assert.Equal(t, ZoneSafe, v.Status)
	}
	{
		v := EvaluateDangerZone(r, models.CategoryFoodCooking, base.Add(2*time.Hour), time.UTC)
		assert.Equal(t, ZoneWarning, v.Status)
	}
	{
		v := EvaluateDangerZone(r, models.CategoryFoodCooking, base.Add(4*time.Hour), time.UTC)
		assert.Equal(t, ZoneDanger, v.Status)
		assert.Equal(t, SeverityCritical, v.Severity)
		assert.Contains(t, v.Message, "discard")
	}
}

func TestEvaluateDangerZone_UnplaceableTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// no resolvable date means no elapsed time, not hours measured from zero
	v := EvaluateDangerZone(readingAt("no date", "noonish", 25.0), models.CategoryFoodHotHolding, now, time.UTC)

	require.NotNil(t, v)
	assert.Equal(t, ZoneSafe, v.Status)
	assert.Zero(t, v.ElapsedHours)
}

func TestEvaluateDangerZone_ClockSkewFloorsAtZero(t *testing.T) {
	// reading logged "in the future" relative to now
	now := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)
	v := EvaluateDangerZone(readingAt("2026-08-28", "09:00", 25.0), models.CategoryFoodHotHolding, now, time.UTC)

	require.NotNil(t, v)
	assert.Equal(t, ZoneSafe, v.Status)
	assert.Zero(t, v.ElapsedHours)
	assert.InDelta(t, 2.0, v.RemainingHours, 0.001)
}
