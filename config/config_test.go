// file: config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 3306, cfg.DBPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 30, cfg.AuthRateLimitRequests)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 3307, cfg.DBPort)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg := Load()
	assert.Equal(t, 3306, cfg.DBPort)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBUser:     "hunt",
		DBPassword: "pw",
		DBHost:     "db.internal",
		DBPort:     3306,
		DBName:     "qrhunt",
	}
	assert.Equal(t,
		"hunt:pw@tcp(db.internal:3306)/qrhunt?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DSN())
}
