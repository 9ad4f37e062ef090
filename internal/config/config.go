package config

import (
	"os"
	"strings"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr           string
	DatabaseURL    string
	DatabaseName   string
	StoreDriver    string
	DocumentsTable string
	LogLevel       string
	ConnectTimeout time.Duration
}

// Load reads configuration from environment variables. LUXURIA_ADDR wins
// over PORT; the default listen address is :8000.
func Load() Config {
	addr := os.Getenv("LUXURIA_ADDR")
	if addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8000"
		}
		addr = ":" + port
	}

	timeout := 5 * time.Second
	if v := os.Getenv("STORE_CONNECT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}

	return Config{
		Addr:           addr,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseName:   os.Getenv("DATABASE_NAME"),
		StoreDriver:    strings.ToLower(os.Getenv("STORE_DRIVER")),
		DocumentsTable: getenv("DOCUMENTS_TABLE", "documents"),
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		ConnectTimeout: timeout,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
