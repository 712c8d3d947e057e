package kitchen

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/common"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/engine"
)

// EquipmentStatistics is a snapshot plus the window it was computed over.
// Window may differ from what the caller asked for when the auto fallback
// picked a wider one.
type EquipmentStatistics struct {
	EquipmentID string
	Window      engine.WindowSelector
	DayOffset   int
	Snapshot    engine.StatisticsSnapshot

	// ComplianceRateDisplay is the 0-100 rate rounded to an integer for
	// dashboards; Snapshot keeps the exact float.
	ComplianceRateDisplay int
}

// clone copies the snapshot including its pointer members. The cache only
// ever holds and hands out clones, so a caller mutating its result cannot
// change what other callers see.
func (s *EquipmentStatistics) clone() *EquipmentStatistics {
	out := *s
	if s.Snapshot.Current != nil {
		cur := *s.Snapshot.Current
		out.Snapshot.Current = &cur
	}
	if s.Snapshot.Trend != nil {
		tr := *s.Snapshot.Trend
		out.Snapshot.Trend = &tr
	}
	return &out
}

// IAnalyticsImpl composes the stores with the pure engine. Because the
// engine is deterministic over (inputs, now), snapshots are cached per
// (equipment, window, offset, now-to-the-minute).
type IAnalyticsImpl struct {
	kitchen *Kitchen
	cache   *gocache.Cache
}

const statsCacheTTL = time.Minute

func (k *Kitchen) GetIAnalytics() IAnalytics {
	return &IAnalyticsImpl{
		kitchen: k,
		cache:   gocache.New(statsCacheTTL, 5*time.Minute),
	}
}

func (ia *IAnalyticsImpl) EquipmentStatistics(equipmentID string, selector engine.WindowSelector, dayOffset int, now time.Time) (*EquipmentStatistics, error) {
	k := ia.kitchen

	eq, err := k.Equipment.GetEquipment(equipmentID)
	if err != nil {
		return nil, err
	}
	loc := eq.SiteLocation(k.location())

	cacheKey := fmt.Sprintf("stats:%s:%s:%d:%d", equipmentID, selector, dayOffset, now.Truncate(time.Minute).Unix())
	if cached, found := ia.cache.Get(cacheKey); found {
		return cached.(*EquipmentStatistics).clone(), nil
	}

	logs, err := k.Log.GetReadings(ReadingFilter{EquipmentID: equipmentID})
	if err != nil {
		return nil, err
	}

	if selector == "" {
		selector = engine.NarrowestWindow(logs, now, loc)
	}
	windowed := engine.FilterByWindow(logs, selector, dayOffset, now, loc)
	snapshot := engine.ComputeStatistics(windowed, eq, now, loc)

	if snapshot.SkippedReadings > 0 {
		common.GetLoggerWith(
			common.LoggerNameKitchenCore,
			zap.String(common.LoggerFieldKitchenCategory, common.LoggerCategoryKitchenQuality),
		).Warn("Readings skipped while computing statistics",
			zap.String("equipment_id", equipmentID),
			zap.Int("skipped", snapshot.SkippedReadings))
	}

	stats := &EquipmentStatistics{
		EquipmentID:           equipmentID,
		Window:                selector,
		DayOffset:             dayOffset,
		Snapshot:              snapshot,
		ComplianceRateDisplay: int(common.RoundTo(snapshot.ComplianceRate, 0)),
	}

	common.GetLoggerWith(
		common.LoggerNameKitchenCore,
		zap.String(common.LoggerFieldKitchenCategory, common.LoggerCategoryKitchenStats),
	).Info("Computed statistics for equipment",
		zap.String("equipment_id", equipmentID),
		zap.String("window", string(selector)),
		zap.Int("readings", len(windowed)))

	ia.cache.Set(cacheKey, stats.clone(), gocache.DefaultExpiration)
	return stats, nil
}

func (ia *IAnalyticsImpl) EquipmentChart(equipmentID string, selector engine.WindowSelector, dayOffset int, now time.Time) (*engine.ChartSeries, error) {
	k := ia.kitchen

	eq, err := k.Equipment.GetEquipment(equipmentID)
	if err != nil {
		return nil, err
	}
	loc := eq.SiteLocation(k.location())

	logs, err := k.Log.GetReadings(ReadingFilter{EquipmentID: equipmentID})
	if err != nil {
		return nil, err
	}

	if selector == "" {
		selector = engine.NarrowestWindow(logs, now, loc)
	}
	windowed := engine.FilterByWindow(logs, selector, dayOffset, now, loc)

	series := engine.BuildChartSeries(windowed, eq, loc)
	return &series, nil
}
