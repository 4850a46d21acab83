package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type AppConfig struct {
	Name            string
	Env             string
	Port            string
	LogJSON         bool
	LogDebug        bool
	RateLimitMax    int
	RateLimitWindow time.Duration
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = newAppConfig()
	})
	return appConfig
}

func newAppConfig() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
		log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
	}
	return &AppConfig{
		Name:            envString("APP_NAME", "profile-analyzer"),
		Env:             env,
		Port:            envString("APP_PORT", ":8000"),
		LogJSON:         envBool("LOG_JSON", env == "production"),
		LogDebug:        envBool("LOG_DEBUG", false),
		RateLimitMax:    envInt("RATE_LIMIT_MAX", 50),
		RateLimitWindow: envDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
