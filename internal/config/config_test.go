package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/barberlink")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.ReportTimeout)
	assert.Equal(t, "USD", cfg.DefaultCurrency)
}

func TestLoadRequiredVars(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost/barberlink")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.Error(t, err)
}

func TestGetDuration(t *testing.T) {
	t.Setenv("REPORT_TIMEOUT", "2s")
	assert.Equal(t, 2*time.Second, getDuration("REPORT_TIMEOUT", 5*time.Second))

	// Bare integers are read as seconds.
	t.Setenv("REPORT_TIMEOUT", "3")
	assert.Equal(t, 3*time.Second, getDuration("REPORT_TIMEOUT", 5*time.Second))

	t.Setenv("REPORT_TIMEOUT", "bogus")
	assert.Equal(t, 5*time.Second, getDuration("REPORT_TIMEOUT", 5*time.Second))
}
