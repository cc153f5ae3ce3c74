// Package config loads the handful of environment-driven settings this
// server needs, following the teacher's os.Getenv-plus-default pattern
// (database.InitRedis's REDIS_ADDR handling) trimmed to what's required
// once persistence and auth are out of scope.
package config

import "os"

// Config is the process's full runtime configuration.
type Config struct {
	// Port is the HTTP listen port, e.g. ":5000".
	Port string
	// AllowedOrigin is the single permitted CORS / WebSocket origin.
	// Empty (or "*") accepts any origin, useful for local development.
	AllowedOrigin string
}

const defaultPort = "5000"

// Load reads Config from the environment: PORT (default 5000) and
// ALLOWED_ORIGIN (default "", meaning any origin).
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	return Config{
		Port:          ":" + port,
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
	}
}
