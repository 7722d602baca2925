package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_STRING", "value")

	assert.Equal(t, "value", GetEnv("TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnv("TEST_STRING_MISSING", "default"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "8080")
	t.Setenv("TEST_INT_BAD", "not-a-number")

	assert.Equal(t, 8080, GetEnvAsInt("TEST_INT", 0))
	assert.Equal(t, 42, GetEnvAsInt("TEST_INT_MISSING", 42))
	assert.Equal(t, 42, GetEnvAsInt("TEST_INT_BAD", 42))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_BOOL_BAD", "not-a-bool")

	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.True(t, GetEnvAsBool("TEST_BOOL_MISSING", true))
	assert.False(t, GetEnvAsBool("TEST_BOOL_BAD", false))
}

func TestInitConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	configs := InitConfig("")

	assert.Equal(t, "linetrack", configs.App.Name)
	assert.Equal(t, 8080, configs.Server.Port)
	assert.Equal(t, 30, configs.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", configs.Database.Host)
	assert.Equal(t, 5432, configs.Database.Port)
	assert.Equal(t, "linetrack", configs.Database.Database)
	assert.Equal(t, 6379, configs.Redis.Port)
	assert.Equal(t, "info", configs.Logger.Level)
	// No API key means the HTTP surface runs open.
	assert.Empty(t, configs.Auth.APIKey)
}

func TestInitConfigOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("NATS_URL", "nats://broker:4222")
	t.Setenv("API_KEY", "s3cret")

	configs := InitConfig("")

	assert.Equal(t, 9090, configs.Server.Port)
	assert.Equal(t, "db.internal", configs.Database.Host)
	assert.Equal(t, "nats://broker:4222", configs.NATS.URL)
	assert.Equal(t, "s3cret", configs.Auth.APIKey)
}
