package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rapidbill/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "Delhi", cfg.Billing.DefaultState)
	assert.Equal(t, 0, cfg.Billing.RoundUpTo)
	assert.True(t, cfg.Billing.GSTEnabled)
	assert.Equal(t, "INV", cfg.Billing.InvoicePrefix)
	assert.Equal(t, 8, cfg.Billing.SearchLimit)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RAPIDBILL_BILLING_DEFAULT_STATE", "Karnataka")
	t.Setenv("RAPIDBILL_BILLING_ROUND_UP_TO", "10")
	t.Setenv("RAPIDBILL_BILLING_GST_ENABLED", "false")
	t.Setenv("RAPIDBILL_DB_NAME", "rapidbill_test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Karnataka", cfg.Billing.DefaultState)
	assert.Equal(t, 10, cfg.Billing.RoundUpTo)
	assert.False(t, cfg.Billing.GSTEnabled)
	assert.Equal(t, "rapidbill_test", cfg.DB.Name)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "9999")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Port)
}

func TestLoad_CORSOriginsSplit(t *testing.T) {
	t.Setenv("RAPIDBILL_CORS_ALLOWED_ORIGINS", "https://app.example.com, http://localhost:5173")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestDBConfig_DSN(t *testing.T) {
	d := config.DBConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", Name: "rapidbill", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/rapidbill?sslmode=disable", d.DSN())
}
