package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/kitchen"
)

type RestfulServer struct {
	Server           *gin.Engine
	Kitchen          *kitchen.Kitchen
	RateLimiterStore *kitchen.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	rs.Server.POST("/equipment", rs.UpsertEquipment)
	rs.Server.GET("/equipment", rs.ListEquipment)

	equipment := rs.Server.Group("/equipment/:equipment_id")
	{
		equipment.POST("/readings", rs.PostReading)
		equipment.GET("/readings", rs.GetReadings)
		equipment.GET("/statistics", rs.GetStatistics)
		equipment.GET("/chart", rs.GetChart)
	}
}
