package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Tracking.validate(); err != nil {
		return fmt.Errorf("tracking: %w", err)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (t *TrackingConfig) validate() error {
	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", t.Timezone, err)
	}
	t.Location = loc

	if t.ReminderAfter <= 0 {
		return fmt.Errorf("reminder_after must be > 0 (got %v)", t.ReminderAfter)
	}
	if t.MaxManualHours <= 0 || t.MaxManualHours > 24 {
		return fmt.Errorf("max_manual_hours must be in (0, 24] (got %v)", t.MaxManualHours)
	}
	if t.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0 (got %d)", t.DefaultLimit)
	}
	if t.MaxLimit < t.DefaultLimit {
		return fmt.Errorf("max_limit must be >= default_limit (got %d < %d)", t.MaxLimit, t.DefaultLimit)
	}
	return nil
}
