package config

import (
	"strings"
	"sync"
)

type CORSConfig struct {
	AllowOrigins     []string
	AllowCredentials bool
}

var (
	corsConfig *CORSConfig
	corsOnce   sync.Once
)

var defaultAllowOrigins = []string{
	"https://www.prephires.com",
	"https://prephires.com",
	"https://*.hostinger.com",
}

func LoadCORSConfig() *CORSConfig {
	corsOnce.Do(func() {
		corsConfig = newCORSConfig()
	})
	return corsConfig
}

func newCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowOrigins:     envList("CORS_ALLOW_ORIGINS", defaultAllowOrigins),
		AllowCredentials: envBool("CORS_ALLOW_CREDENTIALS", true),
	}
}

// AllowsOrigin reports whether origin matches an allowed entry. A "*" inside an
// entry matches one or more characters, so "https://*.example.com" covers every
// sub-domain but not the apex.
func (c *CORSConfig) AllowsOrigin(origin string) bool {
	origin = strings.ToLower(strings.TrimSpace(origin))
	if origin == "" {
		return false
	}
	for _, allowed := range c.AllowOrigins {
		allowed = strings.ToLower(allowed)
		if allowed == "*" || allowed == origin {
			return true
		}
		prefix, suffix, found := strings.Cut(allowed, "*")
		if !found {
			continue
		}
		if len(origin) > len(prefix)+len(suffix) &&
			strings.HasPrefix(origin, prefix) &&
			strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	return false
}
