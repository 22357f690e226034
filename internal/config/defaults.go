package config

import "time"

// Default configuration values.
const (
	DefaultEndpoint       = "http://127.0.0.1:8647"
	DefaultTimeout        = 30 * time.Second
	DefaultSuppressMarker = "NOPMD"
	DefaultLogLevel       = "info"
)

// ApplyDefaults fills unset fields with default values.
func ApplyDefaults(c *Config) {
	if c == nil {
		return
	}
	if c.Engine.Endpoint == "" {
		c.Engine.Endpoint = DefaultEndpoint
	}
	if c.Engine.Timeout == 0 {
		c.Engine.Timeout = DefaultTimeout
	}
	if c.SuppressMarker == "" {
		c.SuppressMarker = DefaultSuppressMarker
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Versions == nil {
		c.Versions = make(map[string]string)
	}
}
