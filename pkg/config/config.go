package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	CORS    CORSConfig
	OpenAI  OpenAIConfig
	Redis   RedisConfig
	Session SessionConfig
	Chat    ChatConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ORDERCHAT_APP_ENV" required:"true"`
	Port         string `envconfig:"ORDERCHAT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"ORDERCHAT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ORDERCHAT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ORDERCHAT_CORS_ALLOWED_ORIGINS" default:"*"`
}

type OpenAIConfig struct {
	APIKey      string `envconfig:"ORDERCHAT_OPENAI_API_KEY" required:"true"`
	ChatModel   string `envconfig:"ORDERCHAT_OPENAI_CHAT_MODEL" default:"gpt-4o"`
	VisionModel string `envconfig:"ORDERCHAT_OPENAI_VISION_MODEL" default:"gpt-4o-mini"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ORDERCHAT_REDIS_URL"`
	Address      string        `envconfig:"ORDERCHAT_REDIS_ADDR"`
	Password     string        `envconfig:"ORDERCHAT_REDIS_PASSWORD"`
	DB           int           `envconfig:"ORDERCHAT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ORDERCHAT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ORDERCHAT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ORDERCHAT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ORDERCHAT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ORDERCHAT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint is configured. Session snapshots
// are skipped entirely when it is not.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type SessionConfig struct {
	SnapshotTTL time.Duration `envconfig:"ORDERCHAT_SESSION_SNAPSHOT_TTL" default:"24h"`
}

type ChatConfig struct {
	MaxTokens       int           `envconfig:"ORDERCHAT_CHAT_MAX_TOKENS" default:"500"`
	VisionMaxTokens int           `envconfig:"ORDERCHAT_CHAT_VISION_MAX_TOKENS" default:"2000"`
	GatewayTimeout  time.Duration `envconfig:"ORDERCHAT_CHAT_GATEWAY_TIMEOUT" default:"30s"`
}
