package http

import (
	"net/http"
	"strconv"
	"time"

	"kitchenlog.xyz/kitchen-compliance-service/pkg/common"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/engine"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/kitchen"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type EquipmentRequest struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Location string   `json:"location"`
	MinTempC *float64 `json:"min_temp_c"`
	MaxTempC *float64 `json:"max_temp_c"`
	Active   bool     `json:"active"`
	Timezone string   `json:"timezone"`
}

var equipmentRequestSchema = z.Struct(z.Shape{
	"ID":   z.String(),
	"Name": z.String().Min(1).Required(),
	"Category": z.String().OneOf([]string{
		string(models.CategoryRefrigeration),
		string(models.CategoryFreezer),
		string(models.CategoryFoodCooking),
		string(models.CategoryFoodHotHolding),
		string(models.CategoryFoodColdHold),
		string(models.CategoryGeneralStorage),
	}).Required(),
	"Location": z.String(),
	"MinTempC": z.Ptr(z.Float64()),
	"MaxTempC": z.Ptr(z.Float64()),
	"Active":   z.Bool(),
	"Timezone": z.String(),
})

func (rs *RestfulServer) UpsertEquipment(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req EquipmentRequest
	if err := equipmentRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	eq, err := rs.Kitchen.Equipment.UpsertEquipment(&models.Equipment{
		ID:       req.ID,
		Name:     req.Name,
		Category: models.EquipmentCategory(req.Category),
		Location: req.Location,
		MinTempC: req.MinTempC,
		MaxTempC: req.MaxTempC,
		Active:   req.Active,
		Timezone: req.Timezone,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, eq)
}

func (rs *RestfulServer) ListEquipment(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	list, err := rs.Kitchen.Equipment.ListEquipment(activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

type ReadingRequest struct {
	ReadingDate  string  `json:"reading_date"`
	ReadingTime  string  `json:"reading_time"`
	TemperatureC float64 `json:"temperature_c"`
	Notes        string  `json:"notes"`
	LoggedBy     string  `json:"logged_by"`
	PhotoRef     string  `json:"photo_ref"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"ReadingDate":  z.String().Min(1).Required(),
	"ReadingTime":  z.String().Min(1).Required(),
	"TemperatureC": z.Float64().Required(),
	"Notes":        z.String(),
	"LoggedBy":     z.String(),
	"PhotoRef":     z.String(),
})

func (rs *RestfulServer) PostReading(c *gin.Context) {
	equipmentID := c.Param("equipment_id")

	if !rs.CheckClientLimiter(equipmentID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Kitchen.Log.RecordReading(equipmentID, &models.TemperatureReading{
		ReadingDate:  req.ReadingDate,
		ReadingTime:  req.ReadingTime,
		TemperatureC: req.TemperatureC,
		Notes:        req.Notes,
		LoggedBy:     req.LoggedBy,
		PhotoRef:     req.PhotoRef,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetReadings(c *gin.Context) {
	equipmentID := c.Param("equipment_id")

	if !rs.CheckClientLimiter(equipmentID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	readings, err := rs.Kitchen.Log.GetReadings(kitchenReadingFilter(c, equipmentID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, readings)
}

func kitchenReadingFilter(c *gin.Context, equipmentID string) kitchen.ReadingFilter {
	return kitchen.ReadingFilter{
		EquipmentID: equipmentID,
		Date:        c.Query("date"),
		Category:    models.EquipmentCategory(c.Query("category")),
	}
}

var validWindowSelectors = common.Reducer(
	append([]engine.WindowSelector{""}, engine.FallbackOrder...),
	func(m map[engine.WindowSelector]bool, s engine.WindowSelector) map[engine.WindowSelector]bool {
		m[s] = true
		return m
	},
	map[engine.WindowSelector]bool{},
)

// windowParams pulls the window selector and day offset out of the query
// string; an empty selector means auto fallback to the narrowest window with
// data.
func windowParams(c *gin.Context) (engine.WindowSelector, int, bool) {
	selector := engine.WindowSelector(c.Query("window"))
	if !validWindowSelectors[selector] {
		return "", 0, false
	}

	dayOffset := 0
	if raw := c.Query("day_offset"); raw != "" {
		var err error
		if dayOffset, err = strconv.Atoi(raw); err != nil || dayOffset < 0 {
			return "", 0, false
		}
	}
	return selector, dayOffset, true
}

func (rs *RestfulServer) GetStatistics(c *gin.Context) {
	equipmentID := c.Param("equipment_id")

	if !rs.CheckClientLimiter(equipmentID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	selector, dayOffset, ok := windowParams(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window or day_offset"})
		return
	}

	stats, err := rs.Kitchen.Analytics.EquipmentStatistics(equipmentID, selector, dayOffset, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

type ChartPointResponse struct {
	Timestamp    time.Time `json:"timestamp"`
	TemperatureC float64   `json:"temperature_c"`
	XIndex       int       `json:"x_index"`
	Synthesized  bool      `json:"synthesized,omitempty"`
}

type ChartResponse struct {
	Points      []ChartPointResponse `json:"points"`
	YMin        float64              `json:"y_min"`
	YMax        float64              `json:"y_max"`
	TickIndices []int                `json:"tick_indices"`
}

func (rs *RestfulServer) GetChart(c *gin.Context) {
	equipmentID := c.Param("equipment_id")

	if !rs.CheckClientLimiter(equipmentID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	selector, dayOffset, ok := windowParams(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window or day_offset"})
		return
	}

	series, err := rs.Kitchen.Analytics.EquipmentChart(equipmentID, selector, dayOffset, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, ChartResponse{
		Points: common.Mapper(series.Points, func(p engine.ChartPoint) ChartPointResponse {
			return ChartPointResponse{
				Timestamp:    p.Timestamp,
				TemperatureC: p.TemperatureC,
				XIndex:       p.XIndex,
				Synthesized:  p.Synthesized,
			}
		}),
		YMin:        series.YMin,
		YMax:        series.YMax,
		TickIndices: series.TickIndices,
	})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
