package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "8080")

	LoadConfig()

	assert.Equal(t, "localhost", GetConfig("DB_HOST"))
	assert.Equal(t, "5432", GetConfig("DB_PORT"))
	assert.Equal(t, "test-secret", GetConfig("JWT_SECRET"))
	assert.Equal(t, "8080", GetConfig("APP_PORT"))
}

func TestGetConfigUnknownKey(t *testing.T) {
	assert.Equal(t, "", GetConfig("NOT_A_KEY"))
}
