package kitchen

import (
	"fmt"

	"go.uber.org/zap"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/common"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/models"
)

// ReadingFilter narrows a log fetch. Zero values mean no filtering on that
// dimension; an empty result is normal, not an error.
type ReadingFilter struct {
	EquipmentID string
	Date        string
	Category    models.EquipmentCategory
}

func (k *Kitchen) recordReading(equipmentID string, input *models.TemperatureReading) error {
	logger := common.GetLoggerWith(
		common.LoggerNameKitchenCore,
		zap.String(common.LoggerFieldKitchenCategory, common.LoggerCategoryKitchenLog),
	)

	reading := models.TemperatureReading{
		EquipmentID:  equipmentID,
		ReadingDate:  input.ReadingDate,
		ReadingTime:  input.ReadingTime,
		TemperatureC: input.TemperatureC,
		Notes:        input.Notes,
		LoggedBy:     input.LoggedBy,
		PhotoRef:     input.PhotoRef,
	}

	logger.Info("Received reading for equipment", zap.Reflect("reading", reading))

	// Malformed timestamps are stored anyway; the engine degrades them to a
	// synthesized position. Count them here so operators can spot data
	// entry problems.
	if _, err := reading.EffectiveTimestamp(k.location()); err != nil {
		common.GetLoggerWith(
			common.LoggerNameKitchenCore,
			zap.String(common.LoggerFieldKitchenCategory, common.LoggerCategoryKitchenQuality),
		).Warn("Reading has unparsable timestamp",
			zap.String("equipment_id", equipmentID),
			zap.String("reading_date", reading.ReadingDate),
			zap.String("reading_time", reading.ReadingTime))
	}

	if err := k.Db.Conn.Create(&reading).Error; err != nil {
		return err
	}

	logger.Info("Stored reading for equipment", zap.Reflect("reading", reading))
	return nil
}

// recordLegacyReading ingests a reading that references its equipment by
// name or location text instead of an ID, the one-time migration path for
// historical logs.
func (k *Kitchen) recordLegacyReading(nameOrLocation string, input *models.TemperatureReading) error {
	if k.Equipment == nil {
		return fmt.Errorf("equipment service not available")
	}
	eq, err := k.Equipment.MatchEquipment(nameOrLocation)
	if err != nil {
		return err
	}
	return k.recordReading(eq.ID, input)
}

func (k *Kitchen) getReadings(filter ReadingFilter) ([]models.TemperatureReading, error) {
	var readings []models.TemperatureReading

	q := k.Db.Conn.Model(&models.TemperatureReading{})
	if filter.EquipmentID != "" {
		q = q.Where("equipment_id = ?", filter.EquipmentID)
	}
	if filter.Date != "" {
		q = q.Where("reading_date = ?", filter.Date)
	}
	if filter.Category != "" {
		q = q.Joins("JOIN equipment ON equipment.id = temperature_readings.equipment_id").
			Where("equipment.category = ?", filter.Category)
	}

	err := q.Order("id asc").Find(&readings).Error
	return readings, err
}

type ILogImpl struct {
	kitchen *Kitchen
}

func (il *ILogImpl) RecordReading(equipmentID string, input *models.TemperatureReading) error {
	return il.kitchen.recordReading(equipmentID, input)
}

func (il *ILogImpl) RecordLegacyReading(nameOrLocation string, input *models.TemperatureReading) error {
	return il.kitchen.recordLegacyReading(nameOrLocation, input)
}

func (il *ILogImpl) GetReadings(filter ReadingFilter) ([]models.TemperatureReading, error) {
	return il.kitchen.getReadings(filter)
}

func (k *Kitchen) GetILog() ILog {
	return &ILogImpl{kitchen: k}
}
