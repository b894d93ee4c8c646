package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_TYPE", "LOCAL")
	t.Setenv("LOCAL_DB_HOST", "127.0.0.1")
	t.Setenv("LOCAL_DB_USER", "mediconnect")
	t.Setenv("LOCAL_DB_PASSWORD", "pw")
	t.Setenv("LOCAL_DB_NAME", "mediconnect")
	t.Setenv("LOCAL_DB_PORT", "3306")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := LoadConfig()
	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 24, cfg.SessionTTLHours)
	assert.Equal(t, "admin@example.com", cfg.DefaultAdminEmail)
	assert.Equal(t, "adminpass", cfg.DefaultAdminPassword)
}

func TestGetDSN(t *testing.T) {
	setRequiredEnv(t)

	cfg := LoadConfig()
	assert.Contains(t, cfg.GetDSN(), "mediconnect:pw@tcp(127.0.0.1:3306)/mediconnect")
	assert.Contains(t, cfg.GetDSN(), "parseTime=True")
}

func TestGetRedisAddr(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOCAL_REDIS_HOST", "redis.internal")
	t.Setenv("LOCAL_REDIS_PORT", "6380")

	cfg := LoadConfig()
	assert.Equal(t, "redis.internal:6380", cfg.GetRedisAddr())
}

func TestSessionTTLOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_TTL_HOURS", "2")

	cfg := LoadConfig()
	assert.Equal(t, 2, cfg.SessionTTLHours)
}
