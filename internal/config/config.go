package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EngineConfig holds engine-wide configuration settings.
type EngineConfig struct {
	Arena       ArenaConfig       `yaml:"arena"`
	Raid        RaidConfig        `yaml:"raid"`
	WebSocket   WebSocketConfig   `yaml:"websocket"`
	Connections ConnectionsConfig `yaml:"connections"`
	Database    DatabaseConfig    `yaml:"database"`

	// CatalogPath points at the content catalog YAML. Empty means the
	// built-in pools are used.
	CatalogPath string `yaml:"catalog_path"`
}

// ArenaConfig holds run simulation settings.
type ArenaConfig struct {
	// MaxSteps is the number of waves in a standard run.
	MaxSteps int `yaml:"max_steps"`

	// SecondsPerStep is the real-time reveal pacing for a completed run.
	SecondsPerStep int `yaml:"seconds_per_step"`
}

// RaidConfig holds weekly raid settings.
type RaidConfig struct {
	// HPVariancePercent is the maximum upward variance applied to a
	// boss's base HP for the week, as a percentage.
	HPVariancePercent int `yaml:"hp_variance_percent"`
}

// DatabaseConfig holds persistence settings.
type DatabaseConfig struct {
	// Driver selects the backend: "sqlite" or "postgres".
	Driver string `yaml:"driver"`

	// Path is the database file location (sqlite only).
	Path string `yaml:"path"`

	// DSN is the connection string (postgres only).
	DSN string `yaml:"dsn"`
}

// ConnectionsConfig holds connection limit settings.
type ConnectionsConfig struct {
	// MaxPerIP is the maximum concurrent connections allowed from a single IP address.
	// 0 means unlimited (not recommended).
	MaxPerIP int `yaml:"max_per_ip"`

	// MaxTotal is the maximum total concurrent connections to the server.
	// 0 means unlimited.
	MaxTotal int `yaml:"max_total"`
}

// WebSocketConfig holds WebSocket-specific settings.
type WebSocketConfig struct {
	// AllowedOrigins is a list of origins allowed to connect via WebSocket.
	// Empty list enforces same-origin policy.
	// Use "*" to allow all origins (not recommended for production).
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxMessageSize is the maximum WebSocket message size in bytes.
	MaxMessageSize int64 `yaml:"max_message_size"`
}

// DefaultConfig returns an EngineConfig with standard defaults.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		Arena: ArenaConfig{
			MaxSteps:       25,
			SecondsPerStep: 90,
		},
		Raid: RaidConfig{
			HPVariancePercent: 20,
		},
		WebSocket: WebSocketConfig{
			AllowedOrigins: []string{}, // Same-origin only by default
			MaxMessageSize: 4096,
		},
		Connections: ConnectionsConfig{
			MaxPerIP: 8,   // Default: 8 connections per IP
			MaxTotal: 200, // Default: 200 total connections
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   "arena.db",
		},
	}
}

// LoadConfig loads engine configuration from a YAML file.
// If the file doesn't exist or can't be parsed, returns default config.
func LoadConfig(path string) (*EngineConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // Use defaults if file doesn't exist
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// IsOriginAllowed checks if the given origin is allowed based on the config.
// Returns true if:
// - AllowedOrigins contains "*" (allow all)
// - AllowedOrigins contains the exact origin
// - AllowedOrigins is empty and origin matches the request host (same-origin)
func (c *WebSocketConfig) IsOriginAllowed(origin, requestHost string) bool {
	// If no origins configured, enforce same-origin policy
	if len(c.AllowedOrigins) == 0 {
		return isSameOrigin(origin, requestHost)
	}

	for _, allowed := range c.AllowedOrigins {
		// Wildcard allows all origins
		if allowed == "*" {
			return true
		}
		// Exact match
		if allowed == origin {
			return true
		}
	}

	return false
}

// isSameOrigin checks if the origin matches the request host (same-origin policy).
func isSameOrigin(origin, requestHost string) bool {
	if origin == "" {
		return true // No origin header means same-origin (e.g., non-browser client)
	}

	// Extract host from origin URL (e.g., "http://localhost:3000" -> "localhost:3000")
	originHost := origin
	if idx := strings.Index(origin, "://"); idx != -1 {
		originHost = origin[idx+3:]
	}
	// Remove trailing slash if present
	originHost = strings.TrimSuffix(originHost, "/")

	return originHost == requestHost
}
