package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "STORE_DELAY_MS", "PERSIST_SNAPSHOT", "LOG_LEVEL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, time.Second, cfg.StoreDelay)
	assert.False(t, cfg.PersistSnapshot)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, "http://localhost:3000", cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("STORE_DELAY_MS", "0")
	t.Setenv("PERSIST_SNAPSHOT", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, time.Duration(0), cfg.StoreDelay)
	assert.True(t, cfg.PersistSnapshot)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	t.Setenv("STORE_DELAY_MS", "soon")
	assert.Equal(t, time.Second, Load().StoreDelay)
}

func TestLoad_DBPortFollowsDriver(t *testing.T) {
	t.Setenv("DB_PORT", "")

	t.Setenv("DB_DRIVER", "postgres")
	assert.Equal(t, "5432", Load().DBPort)

	t.Setenv("DB_DRIVER", "mysql")
	assert.Equal(t, "3306", Load().DBPort)

	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PORT", "6543")
	assert.Equal(t, "6543", Load().DBPort)
}
