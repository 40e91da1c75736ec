package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`

	Mongo    MongoConfig
	Redis    RedisConfig
	WhatsApp WhatsAppConfig
	OTP      OTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=vks_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// WhatsAppConfig points at the external bot that delivers login codes to
// the administrator's phone.
type WhatsAppConfig struct {
	BotURL  string        `env:"WHATSAPP_BOT_URL, default=http://localhost:3000"`
	Timeout time.Duration `env:"WHATSAPP_TIMEOUT, default=10s"`
}

// OTPConfig controls the login challenge lifecycle. Store selects the
// challenge backend: "memory" (default, challenges die with the process) or
// "redis" (pending challenges survive a restart).
type OTPConfig struct {
	TTL   time.Duration `env:"OTP_TTL,             default=60s"`
	Store string        `env:"OTP_CHALLENGE_STORE, default=memory"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
