package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyKitchenDBType string = "KITCHEN_DB_TYPE"
	EnvKeyKitchenDbPath string = "KITCHEN_DB_PATH"

	EnvKeyKitchenHttpHostPort string = "KITCHEN_HTTP_HOST_PORT"

	EnvKeyKitchenDefaultRate  string = "KITCHEN_DEFAULT_RATE"
	EnvKeyKitchenDefaultBurst string = "KITCHEN_DEFAULT_BURST"

	EnvKeyKitchenTimezone string = "KITCHEN_TIMEZONE"

	LoggerNameKitchenCore   string = "kitchen_core"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldKitchenCategory   string = "category"
	LoggerCategoryKitchenEquip   string = "equipment"
	LoggerCategoryKitchenLog     string = "log"
	LoggerCategoryKitchenStats   string = "statistics"
	LoggerCategoryKitchenQuality string = "data_quality"
)
