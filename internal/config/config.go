package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yukikurage/project-tracker/internal/constants"
)

type Config struct {
	Port            string
	GinMode         string
	LogLevel        string
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	SQLitePath      string
	StoreDelay      time.Duration
	SettingsFile    string
	PersistSnapshot bool
	CORSOrigins     string
}

func Load() *Config {
	driver := strings.ToLower(getEnv("DB_DRIVER", "sqlite"))

	return &Config{
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DBDriver:        driver,
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", defaultDBPort(driver)),
		DBUser:          getEnv("DB_USER", "trackeruser"),
		DBPassword:      getEnv("DB_PASSWORD", "trackerpassword"),
		DBName:          getEnv("DB_NAME", "project_tracker"),
		SQLitePath:      getEnv("SQLITE_PATH", "project_tracker.db"),
		StoreDelay:      time.Duration(getEnvInt("STORE_DELAY_MS", constants.DefaultStoreDelayMS)) * time.Millisecond,
		SettingsFile:    getEnv("SETTINGS_FILE", "config/settings.yaml"),
		PersistSnapshot: getEnv("PERSIST_SNAPSHOT", "false") == "true",
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:3000"),
	}
}

// SlogLevel converts LogLevel to a slog.Level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// defaultDBPort is the standard port of the given driver's server
func defaultDBPort(driver string) string {
	if driver == "postgres" {
		return "5432"
	}
	return "3306"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}
