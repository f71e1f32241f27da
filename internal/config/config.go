// Package config loads process configuration from the environment (spec §6),
// following original_source/core/src/config.rs's shape: an optional .env
// file loaded first, then plain env var reads with the same defaults and
// variable names (HOST, PORT, DB_URL, NATS_URL).
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultHost    = "[::1]"
	defaultPort    = "50051"
	defaultNATSURL = "nats://localhost:4222"
	defaultLogLvl  = "info"
)

// Config holds everything main needs to bootstrap the daemon.
type Config struct {
	Host string
	Port string

	// DBURL is the opaque ClickHouse DSN for the trade sink (spec §6).
	DBURL string

	// NATSURL is the message bus endpoint for the event publisher.
	NATSURL string

	// LogLevel is an ambient addition (SPEC_FULL §4.9) not present in the
	// distilled spec's env var list.
	LogLevel string
}

// Addr is the RPC bind address, "host:port".
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Load reads an optional .env file (ignored if absent) and then the process
// environment. DB_URL is required: there is no degraded startup mode for a
// matching engine with no place to persist trades.
func Load() (Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return Config{}, fmt.Errorf("config: DB_URL is required")
	}

	return Config{
		Host:     getenvDefault("HOST", defaultHost),
		Port:     getenvDefault("PORT", defaultPort),
		DBURL:    dbURL,
		NATSURL:  getenvDefault("NATS_URL", defaultNATSURL),
		LogLevel: getenvDefault("LOG_LEVEL", defaultLogLvl),
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
