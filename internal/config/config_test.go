package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenDuration)
	assert.Equal(t, 12, cfg.Security.BCryptCost)
	assert.Equal(t, 3, cfg.Detection.HistoryLookback)
	assert.Contains(t, cfg.Detection.RecurringKeywords, "netflix")
	assert.Contains(t, cfg.Detection.RecurringKeywords, "rent")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_MAX_CONNECTIONS", "50")
	t.Setenv("DETECTION_RECURRING_KEYWORDS", "Miete, Strom ,internet")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Database.MaxConnections)
	assert.Equal(t, []string{"miete", "strom", "internet"}, cfg.Detection.RecurringKeywords)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNECTIONS", "not-a-number")
	t.Setenv("SERVER_READ_TIMEOUT", "garbage")
	t.Setenv("DETECTION_RECURRING_KEYWORDS", " , ,")

	cfg := Load()

	assert.Equal(t, 25, cfg.Database.MaxConnections)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Contains(t, cfg.Detection.RecurringKeywords, "netflix")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "app",
		Password: "secret",
		Name:     "expenses",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "dbname=expenses")
	assert.Contains(t, dsn, "sslmode=require")
}
