package config

import (
	"sync"
	"time"
)

type GeminiConfig struct {
	APIKey     string
	Model      string
	MaxRetries int
	Timeout    time.Duration
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = newGeminiConfig()
	})
	return geminiConfig
}

func newGeminiConfig() *GeminiConfig {
	return &GeminiConfig{
		APIKey:     envString("GEMINI_API_KEY", ""),
		Model:      envString("GEMINI_MODEL", "gemini-2.5-flash"),
		MaxRetries: envInt("GEMINI_MAX_RETRIES", 3),
		Timeout:    envDuration("GEMINI_TIMEOUT", 90*time.Second),
	}
}

// Enabled reports whether the Gemini transcription fallback can be used.
func (c *GeminiConfig) Enabled() bool {
	return c.APIKey != ""
}
