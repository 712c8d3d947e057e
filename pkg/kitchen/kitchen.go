package kitchen

import (
	"time"

	"kitchenlog.xyz/kitchen-compliance-service/pkg/db"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/engine"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/models"
)

type IEquipment interface {
	UpsertEquipment(input *models.Equipment) (*models.Equipment, error)
	GetEquipment(equipmentID string) (*models.Equipment, error)
	ListEquipment(activeOnly bool) ([]models.Equipment, error)
	MatchEquipment(nameOrLocation string) (*models.Equipment, error)
}

type ILog interface {
	RecordReading(equipmentID string, input *models.TemperatureReading) error
	RecordLegacyReading(nameOrLocation string, input *models.TemperatureReading) error
	GetReadings(filter ReadingFilter) ([]models.TemperatureReading, error)
}

type IAnalytics interface {
	EquipmentStatistics(equipmentID string, selector engine.WindowSelector, dayOffset int, now time.Time) (*EquipmentStatistics, error)
	EquipmentChart(equipmentID string, selector engine.WindowSelector, dayOffset int, now time.Time) (*engine.ChartSeries, error)
}

// Kitchen is the service facade: stores on one side, the pure analytics
// engine on the other.
type Kitchen struct {
	Db        db.DB
	Equipment IEquipment
	Log       ILog
	Analytics IAnalytics

	// Site-level fallback when equipment carries no timezone of its own.
	Location *time.Location
}

type ServiceOpts struct {
	Equipment IEquipment
	Log       ILog
	Analytics IAnalytics
}

func (k *Kitchen) WithServices(opts ServiceOpts) *Kitchen {
	if opts.Equipment != nil {
		k.Equipment = opts.Equipment
	}
	if opts.Log != nil {
		k.Log = opts.Log
	}
	if opts.Analytics != nil {
		k.Analytics = opts.Analytics
	}
	return k
}

func (k *Kitchen) location() *time.Location {
	if k.Location != nil {
		return k.Location
	}
	return time.Local
}
