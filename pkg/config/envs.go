package config

// EnvPrefix is passed to envconfig; individual fields carry fully
// qualified names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv       = "ORDERCHAT_APP_ENV"
	EnvAppPort      = "ORDERCHAT_APP_PORT"
	EnvOpenAIAPIKey = "ORDERCHAT_OPENAI_API_KEY"
	EnvRedisURL     = "ORDERCHAT_REDIS_URL"
)
