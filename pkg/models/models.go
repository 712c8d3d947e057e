package models

import (
	"fmt"
	"time"
)

type EquipmentCategory string

const (
	CategoryRefrigeration  EquipmentCategory = "refrigeration"
	CategoryFreezer        EquipmentCategory = "freezer"
	CategoryFoodCooking    EquipmentCategory = "food_cooking"
	CategoryFoodHotHolding EquipmentCategory = "food_hot_holding"
	CategoryFoodColdHold   EquipmentCategory = "food_cold_holding"
	CategoryGeneralStorage EquipmentCategory = "general_storage"
)

// IsFoodHandling reports whether readings for this category fall under the
// 2-hour/4-hour danger zone rule.
func (c EquipmentCategory) IsFoodHandling() bool {
	switch c {
	case CategoryFoodCooking, CategoryFoodHotHolding, CategoryFoodColdHold:
		return true
	}
	return false
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Equipment struct {
	ID       string            `gorm:"primaryKey"`
	Name     string            `gorm:"index"`
	Category EquipmentCategory `gorm:"type:varchar(20);check:category IN ('refrigeration','freezer','food_cooking','food_hot_holding','food_cold_holding','general_storage')"`
	Location string
	// nil means the threshold is unconfigured, which is a valid state
	MinTempC *float64
	MaxTempC *float64
	Active   bool
	// IANA zone name of the site the equipment lives at, e.g. "Australia/Sydney"
	Timezone string

	Readings []TemperatureReading `gorm:"foreignKey:EquipmentID;references:ID"`
}

// HasThresholds reports whether both temperature bounds are configured.
func (e *Equipment) HasThresholds() bool {
	return e.MinTempC != nil && e.MaxTempC != nil
}

// ConfigurationValid reports whether the configured bounds are usable.
// min > max is a data-entry problem; such equipment is treated as
// unconfigured for classification rather than rejected.
func (e *Equipment) ConfigurationValid() bool {
	if !e.HasThresholds() {
		return true
	}
	return *e.MinTempC <= *e.MaxTempC
}

// SiteLocation resolves the equipment's timezone, falling back to the given
// default when unset or unknown.
func (e *Equipment) SiteLocation(fallback *time.Location) *time.Location {
	if e.Timezone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return fallback
	}
	return loc
}

// TemperatureReading is immutable once recorded; edits are not supported.
type TemperatureReading struct {
	ID          uint   `gorm:"primaryKey"`
	EquipmentID string `gorm:"index"`
	// Wall-clock date and time-of-day as entered at the site, "2006-01-02"
	// and "15:04". Kept as entered so the original record survives even
	// when the time string is malformed.
	ReadingDate  string
	ReadingTime  string
	TemperatureC float64
	Notes        string
	LoggedBy     string
	PhotoRef     string
}

// EffectiveTimestamp combines date and time-of-day in the site's location.
// Accepts "15:04" and "15:04:05" time strings.
func (r *TemperatureReading) EffectiveTimestamp(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{DateLayout + " " + TimeLayout, DateLayout + " 15:04:05"} {
		if ts, err := time.ParseInLocation(layout, r.ReadingDate+" "+r.ReadingTime, loc); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable reading timestamp: %q %q", r.ReadingDate, r.ReadingTime)
}
