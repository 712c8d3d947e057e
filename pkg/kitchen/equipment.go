package kitchen

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/common"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/models"
)

func (k *Kitchen) upsertEquipment(input *models.Equipment) (*models.Equipment, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameKitchenCore,
		zap.String(common.LoggerFieldKitchenCategory, common.LoggerCategoryKitchenEquip),
	)

	eq := models.Equipment{
		ID:       input.ID,
		Name:     input.Name,
		Category: input.Category,
		Location: input.Location,
		MinTempC: input.MinTempC,
		MaxTempC: input.MaxTempC,
		Active:   input.Active,
		Timezone: input.Timezone,
	}
	if eq.ID == "" {
		eq.ID = uuid.NewString()
	}

	logger.Info("Received equipment", zap.Reflect("equipment", eq))

	if !eq.ConfigurationValid() {
		// stored anyway; classification treats it as unconfigured
		logger.Warn("Equipment thresholds invalid, min above max",
			zap.String("equipment_id", eq.ID),
			zap.Float64p("min_temp_c", eq.MinTempC),
			zap.Float64p("max_temp_c", eq.MaxTempC))
	}

	err := k.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&eq).Error
	if err != nil {
		return nil, err
	}

	logger.Info("Upserted equipment", zap.Reflect("equipment", eq))
	return &eq, nil
}

func (k *Kitchen) getEquipment(equipmentID string) (*models.Equipment, error) {
	var eq models.Equipment
	err := k.Db.Conn.First(&eq, "id = ?", equipmentID).Error
	return &eq, err
}

func (k *Kitchen) listEquipment(activeOnly bool) ([]models.Equipment, error) {
	var out []models.Equipment
	q := k.Db.Conn.Order("name asc")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&out).Error
	return out, err
}

// matchEquipment resolves equipment by name or location text. This is the
// legacy join used by readings recorded before equipment IDs existed; new
// readings should carry the ID directly.
func (k *Kitchen) matchEquipment(nameOrLocation string) (*models.Equipment, error) {
	if nameOrLocation == "" {
		return nil, fmt.Errorf("empty equipment name or location")
	}
	var eq models.Equipment
	err := k.Db.Conn.
		Where("name = ? OR location = ?", nameOrLocation, nameOrLocation).
		First(&eq).Error
	if err != nil {
		return nil, fmt.Errorf("no equipment matches %q: %w", nameOrLocation, err)
	}
	return &eq, nil
}

type IEquipmentImpl struct {
	kitchen *Kitchen
}

func (ie *IEquipmentImpl) UpsertEquipment(input *models.Equipment) (*models.Equipment, error) {
	return ie.kitchen.upsertEquipment(input)
}

func (ie *IEquipmentImpl) GetEquipment(equipmentID string) (*models.Equipment, error) {
	return ie.kitchen.getEquipment(equipmentID)
}

func (ie *IEquipmentImpl) ListEquipment(activeOnly bool) ([]models.Equipment, error) {
	return ie.kitchen.listEquipment(activeOnly)
}

func (ie *IEquipmentImpl) MatchEquipment(nameOrLocation string) (*models.Equipment, error) {
	return ie.kitchen.matchEquipment(nameOrLocation)
}

func (k *Kitchen) GetIEquipment() IEquipment {
	return &IEquipmentImpl{kitchen: k}
}
