package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Measurement sources.
const (
	SourceAPI      = "api"
	SourceDatabase = "database"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	TelegramToken        string
	DatabaseURL          string
	AdminTelegramID      int64
	SupervisorTelegramID int64 // receives saved concerns; 0 disables
	LogLevel             string
	Environment          string

	MeasurementSource string // SourceAPI or SourceDatabase
	LabAPIURL         string
	LabAPITimeout     time.Duration

	CronSpecPendingReminder string
	PendingReviewGrace      time.Duration // how old a report must be before reminders start

	HTTPAddr string // metrics and health; empty disables
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load does not override variables that are already set.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	adminIDStr := os.Getenv("ADMIN_TELEGRAM_ID")
	if adminIDStr == "" {
		return nil, fmt.Errorf("ADMIN_TELEGRAM_ID is not set")
	}
	cfg.AdminTelegramID, err = strconv.ParseInt(adminIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_TELEGRAM_ID: %w", err)
	}

	if s := os.Getenv("SUPERVISOR_TELEGRAM_ID"); s != "" {
		cfg.SupervisorTelegramID, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SUPERVISOR_TELEGRAM_ID: %w", err)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.MeasurementSource = strings.ToLower(os.Getenv("MEASUREMENT_SOURCE"))
	switch cfg.MeasurementSource {
	case "":
		cfg.MeasurementSource = SourceDatabase
	case SourceAPI, SourceDatabase:
	default:
		return nil, fmt.Errorf("invalid MEASUREMENT_SOURCE %q: want %q or %q", cfg.MeasurementSource, SourceAPI, SourceDatabase)
	}

	cfg.LabAPIURL = strings.TrimRight(os.Getenv("LAB_API_URL"), "/")
	if cfg.MeasurementSource == SourceAPI && cfg.LabAPIURL == "" {
		return nil, fmt.Errorf("LAB_API_URL is not set (required when MEASUREMENT_SOURCE=%s)", SourceAPI)
	}

	cfg.LabAPITimeout, err = durationEnv("LAB_API_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.CronSpecPendingReminder = os.Getenv("CRON_SPEC_PENDING_REMINDER")
	if cfg.CronSpecPendingReminder == "" {
		cfg.CronSpecPendingReminder = "0 9 * * 1-5" // weekdays, 9 AM
	}

	cfg.PendingReviewGrace, err = durationEnv("PENDING_REVIEW_GRACE", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg.HTTPAddr = os.Getenv("HTTP_ADDR")
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":9090"
	}

	return cfg, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}
