package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/nicholasjackson/env"
	"io/fs"
	"strings"
	"time"
)

// Environment variables
var (
	port = env.Int("PORT", false,
		8000, "Port the HTTP server listens on")
	bindAddress = env.String("BIND_ADDRESS", false,
		"", "Bind address for the server, overrides PORT when set")
	logLevel = env.String("LOG_LEVEL", false,
		"info", "Log output level for the server [trace, debug, info, warn, error]")
	databaseURL = env.String("DATABASE_URL", false,
		"", "Connection string of the document store")
	databaseName = env.String("DATABASE_NAME", false,
		"", "Database name in the document store")
	storeTimeout = env.Duration("STORE_TIMEOUT", false,
		5*time.Second, "Timeout for store server selection and operations")
	corsOrigins = env.String("CORS_ALLOWED_ORIGINS", false,
		"*", "Comma separated list of allowed CORS origins")
)

type Config struct {
	BindAddress        string
	LogLevel           string
	DatabaseURL        string
	DatabaseName       string
	StoreTimeout       time.Duration
	CORSAllowedOrigins []string
}

// Load reads the configuration from the environment. Values from a .env
// file in the working directory are loaded first when the file exists;
// variables already set in the environment take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to read .env file: %w", err)
	}

	if err := env.Parse(); err != nil {
		return nil, err
	}

	addr := *bindAddress
	if addr == "" {
		addr = fmt.Sprintf(":%d", *port)
	}

	return &Config{
		BindAddress:        addr,
		LogLevel:           *logLevel,
		DatabaseURL:        strings.TrimSpace(*databaseURL),
		DatabaseName:       strings.TrimSpace(*databaseName),
		StoreTimeout:       *storeTimeout,
		CORSAllowedOrigins: splitCSV(*corsOrigins),
	}, nil
}

func (c *Config) DatabaseURLSet() bool {
	return c.DatabaseURL != ""
}

func (c *Config) DatabaseNameSet() bool {
	return c.DatabaseName != ""
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
