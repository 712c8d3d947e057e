package kitchen_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchenlog.xyz/kitchen-compliance-service/pkg/common"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/models"
	_ "kitchenlog.xyz/kitchen-compliance-service/pkg/testing"
)

func TestUpsertEquipment(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, kitchenObj, _, _, _ := GetMockKitchenWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	input := &models.Equipment{
		Name:     "Walk-in Fridge",
		Category: models.CategoryRefrigeration,
		Location: "back of house",
		MinTempC: floatPtr(0),
		MaxTempC: floatPtr(5),
		Active:   true,
	}

	created, err := kitchenObj.Equipment.UpsertEquipment(input)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID, "an ID is assigned when none is given")

	// Verify the equipment was inserted
	saved, err := kitchenObj.Equipment.GetEquipment(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Walk-in Fridge", saved.Name)
	assert.Equal(t, models.CategoryRefrigeration, saved.Category)

	// Update through the same path keeps the ID
	created.MaxTempC = floatPtr(4)
	updated, err := kitchenObj.Equipment.UpsertEquipment(created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	saved, err = kitchenObj.Equipment.GetEquipment(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, *saved.MaxTempC)
}

func TestUpsertEquipment_InvalidThresholdsStoredButUnconfigured(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, kitchenObj, _, _, _ := GetMockKitchenWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	created, err := kitchenObj.Equipment.UpsertEquipment(&models.Equipment{
		Name:     "Miswired Fridge " + uuid.NewString(),
		Category: models.CategoryRefrigeration,
		MinTempC: floatPtr(10),
		MaxTempC: floatPtr(2),
		Active:   true,
	})
	require.NoError(t, err, "invalid thresholds are a data-entry problem, not a rejection")
	assert.False(t, created.ConfigurationValid())
}

func TestListEquipment(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, kitchenObj, _, _, _ := GetMockKitchenWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	suffix := uuid.NewString()
	_, err := kitchenObj.Equipment.UpsertEquipment(&models.Equipment{
		Name: "Active Fridge " + suffix, Category: models.CategoryRefrigeration, Active: true,
	})
	require.NoError(t, err)
	_, err = kitchenObj.Equipment.UpsertEquipment(&models.Equipment{
		Name: "Retired Freezer " + suffix, Category: models.CategoryFreezer, Active: false,
	})
	require.NoError(t, err)

	all, err := kitchenObj.Equipment.ListEquipment(false)
	require.NoError(t, err)

	active, err := kitchenObj.Equipment.ListEquipment(true)
	require.NoError(t, err)

	assert.Greater(t, len(all), len(active))
	for _, eq := range active {
		assert.True(t, eq.Active)
	}
}

func TestMatchEquipment(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, kitchenObj, _, _, _ := GetMockKitchenWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	name := "Pass Fridge " + uuid.NewString()
	location := "pass " + uuid.NewString()
	created, err := kitchenObj.Equipment.UpsertEquipment(&models.Equipment{
		Name: name, Location: location, Category: models.CategoryRefrigeration, Active: true,
	})
	require.NoError(t, err)

	byName, err := kitchenObj.Equipment.MatchEquipment(name)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byLocation, err := kitchenObj.Equipment.MatchEquipment(location)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byLocation.ID)

	_, err = kitchenObj.Equipment.MatchEquipment("no such equipment")
	require.Error(t, err)

	_, err = kitchenObj.Equipment.MatchEquipment("")
	require.Error(t, err)
}
