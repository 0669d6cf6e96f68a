package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/qc?sslmode=disable")
	t.Setenv("ADMIN_TELEGRAM_ID", "1001")
	for _, key := range []string{
		"SUPERVISOR_TELEGRAM_ID", "LOG_LEVEL", "ENVIRONMENT", "MEASUREMENT_SOURCE", "LAB_API_URL",
		"LAB_API_TIMEOUT", "CRON_SPEC_PENDING_REMINDER", "PENDING_REVIEW_GRACE", "HTTP_ADDR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(1001), cfg.AdminTelegramID)
	assert.Zero(t, cfg.SupervisorTelegramID)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, SourceDatabase, cfg.MeasurementSource)
	assert.Equal(t, 10*time.Second, cfg.LabAPITimeout)
	assert.Equal(t, "0 9 * * 1-5", cfg.CronSpecPendingReminder)
	assert.Equal(t, 24*time.Hour, cfg.PendingReviewGrace)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestLoadAPISource(t *testing.T) {
	setRequired(t)
	t.Setenv("MEASUREMENT_SOURCE", "API")
	t.Setenv("LAB_API_URL", "https://lab.example.org/api/")
	t.Setenv("LAB_API_TIMEOUT", "3s")
	t.Setenv("SUPERVISOR_TELEGRAM_ID", "2002")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourceAPI, cfg.MeasurementSource)
	assert.Equal(t, "https://lab.example.org/api", cfg.LabAPIURL)
	assert.Equal(t, 3*time.Second, cfg.LabAPITimeout)
	assert.Equal(t, int64(2002), cfg.SupervisorTelegramID)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"missing token", "TELEGRAM_TOKEN", "", "TELEGRAM_TOKEN is not set"},
		{"missing database", "DATABASE_URL", "", "DATABASE_URL is not set"},
		{"bad admin id", "ADMIN_TELEGRAM_ID", "abc", "invalid ADMIN_TELEGRAM_ID"},
		{"bad supervisor id", "SUPERVISOR_TELEGRAM_ID", "x", "invalid SUPERVISOR_TELEGRAM_ID"},
		{"unknown source", "MEASUREMENT_SOURCE", "ftp", "invalid MEASUREMENT_SOURCE"},
		{"api without url", "MEASUREMENT_SOURCE", "api", "LAB_API_URL is not set"},
		{"bad timeout", "LAB_API_TIMEOUT", "soon", "invalid LAB_API_TIMEOUT"},
		{"negative grace", "PENDING_REVIEW_GRACE", "-1h", "invalid PENDING_REVIEW_GRACE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
