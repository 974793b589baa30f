package config

import "time"

// DefaultSessionTTL is the session time-to-live applied when none is configured.
const DefaultSessionTTL = 24 * time.Hour

// AppConfig holds the application configuration. The session TTL and the
// administrator credential pair are injected here rather than hard-coded at the
// call sites.
type AppConfig struct {
	Port           string
	StoragePath    string
	RedisURL       string
	DBURL          string
	BearerToken    string
	AdminUsername  string
	AdminPassword  string
	SessionKey     []byte
	SessionTTL     time.Duration
	AllowedOrigins []string
}

// GetBearerToken returns the shared API token, empty when the gate is disabled.
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}
