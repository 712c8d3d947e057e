// The tests live in an external package because the generated mocks import
// this package for its interface types; an in-package test file would close
// an import cycle through them.
package kitchen_test

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/db"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/kitchen"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/kitchen/mocks"
)

func GetMockKitchenWithMemorySqliteDialector(t *testing.T, useMockIEquipment, useMockILog, useMockIAnalytics bool) (
	*gomock.Controller,
	*kitchen.Kitchen,
	*mocks.MockIEquipment,
	*mocks.MockILog,
	*mocks.MockIAnalytics,
) {
	ctrl := gomock.NewController(t)

	mockIEquipment := mocks.NewMockIEquipment(ctrl)
	mockILog := mocks.NewMockILog(ctrl)
	mockIAnalytics := mocks.NewMockIAnalytics(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	kitchenInstance := &kitchen.Kitchen{Db: *dbInstance}

	equipmentService := kitchenInstance.GetIEquipment()
	if useMockIEquipment {
		equipmentService = mockIEquipment
	}

	logService := kitchenInstance.GetILog()
	if useMockILog {
		logService = mockILog
	}

	analyticsService := kitchenInstance.GetIAnalytics()
	if useMockIAnalytics {
		analyticsService = mockIAnalytics
	}

	kitchenInstance.WithServices(kitchen.ServiceOpts{
		Equipment: equipmentService,
		Log:       logService,
		Analytics: analyticsService,
	})

	return ctrl, kitchenInstance, mockIEquipment, mockILog, mockIAnalytics
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func floatPtr(v float64) *float64 {
	return &v
}
