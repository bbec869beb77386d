package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded server configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}
	return c.validateCommon()
}

func (c *Config) validateCommon() error {
	if err := c.Stats.validate(); err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	if err := c.Lookup.validate(); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}
	if c.Export.MaxEntries <= 0 {
		return fmt.Errorf("export.max_entries must be > 0 (got %d)", c.Export.MaxEntries)
	}
	return nil
}

func (s StatsConfig) validate() error {
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}

	if s.WindowDays <= 0 {
		return fmt.Errorf("window_days must be > 0 (got %d)", s.WindowDays)
	}
	return nil
}

func (l *LookupConfig) validate() error {
	if l.PhotoMinConfidence < 0 || l.PhotoMinConfidence > 1 {
		return fmt.Errorf("photo_min_confidence must be in [0, 1] (got %v)", l.PhotoMinConfidence)
	}
	if l.PhotoMaxLabels <= 0 {
		return fmt.Errorf("photo_max_labels must be > 0 (got %d)", l.PhotoMaxLabels)
	}
	if l.PhotoMonthlyQuota < 0 {
		return fmt.Errorf("photo_monthly_quota must be >= 0 (got %d)", l.PhotoMonthlyQuota)
	}
	if l.LabelConcurrency <= 0 {
		return fmt.Errorf("label_concurrency must be > 0 (got %d)", l.LabelConcurrency)
	}
	if l.USDAPageSize <= 0 || l.USDAPageSize > 200 {
		return fmt.Errorf("usda_page_size must be in [1, 200] (got %d)", l.USDAPageSize)
	}
	return nil
}

// USDAConfigured reports whether the USDA FoodData Central key is present.
func (l LookupConfig) USDAConfigured() bool { return l.USDAAPIKey != "" }

// ClarifaiConfigured reports whether the image recognition key is present.
func (l LookupConfig) ClarifaiConfigured() bool { return l.ClarifaiAPIKey != "" }
