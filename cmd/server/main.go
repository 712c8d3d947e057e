package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/common"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/db"
	kitchenHttp "kitchenlog.xyz/kitchen-compliance-service/pkg/http"
	"kitchenlog.xyz/kitchen-compliance-service/pkg/kitchen"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	kitchenDbType := os.Getenv(common.EnvKeyKitchenDBType)
	switch kitchenDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown KITCHEN_DB_TYPE: " + kitchenDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyKitchenHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyKitchenDefaultRate), 64); err != nil {
		log.Fatal("Invalid KITCHEN_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyKitchenDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid KITCHEN_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	siteLocation := time.Local
	if tz := strings.TrimSpace(os.Getenv(common.EnvKeyKitchenTimezone)); tz != "" {
		if siteLocation, err = time.LoadLocation(tz); err != nil {
			log.Fatal("Invalid KITCHEN_TIMEZONE: " + tz)
		}
	}

	logger := common.GetLogger()

	kitchenCore := kitchen.Kitchen{
		Db:       *dbInstance,
		Location: siteLocation,
	}
	kitchenCore.WithServices(kitchen.ServiceOpts{
		Equipment: kitchenCore.GetIEquipment(),
		Log:       kitchenCore.GetILog(),
		Analytics: kitchenCore.GetIAnalytics(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &kitchenHttp.RestfulServer{
		Server:           gin.Default(),
		Kitchen:          &kitchenCore,
		RateLimiterStore: kitchen.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
