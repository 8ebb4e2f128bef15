package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port              string
	DatabaseURL       string
	AllowOrigins      string
	LogLevel          string
	DBLogLevel        string
	DBConnectTimeout  time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
	DBMaxOpenConns    int
	DBConnMaxLifetime time.Duration
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func seconds(key string, def int) time.Duration {
	return time.Duration(atoi(key, def)) * time.Second
}

func Load() *Config {
	return &Config{
		Port:              getenv("PORT", "5000"),
		DatabaseURL:       getenv("DATABASE_URL", ""),
		AllowOrigins:      getenv("ALLOW_ORIGINS", "*"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		DBLogLevel:        getenv("DB_LOG_LEVEL", "warn"),
		DBConnectTimeout:  seconds("DB_CONNECT_TIMEOUT_SECONDS", 15),
		RequestTimeout:    seconds("REQUEST_TIMEOUT_SECONDS", 30),
		ShutdownTimeout:   seconds("SHUTDOWN_TIMEOUT_SECONDS", 10),
		DBMaxOpenConns:    atoi("DB_MAX_OPEN_CONNS", 10),
		DBConnMaxLifetime: time.Duration(atoi("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL missing")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return errors.New("PORT must be numeric")
	}
	return nil
}

// Origins splits AllowOrigins on commas.
func (c *Config) Origins() []string {
	var out []string
	for _, p := range strings.Split(c.AllowOrigins, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
