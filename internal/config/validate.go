package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn is required")
	}
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be in [0, max_conns] (got %d)", c.Database.MinConns)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.Enabled && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	if err := c.Pagination.validate(); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}

	if err := c.Analytics.validate(); err != nil {
		return fmt.Errorf("analytics: %w", err)
	}

	return nil
}

func (p *PaginationConfig) validate() error {
	if p.MaxLimit <= 0 {
		return fmt.Errorf("max_limit must be > 0 (got %d)", p.MaxLimit)
	}
	if p.DefaultLimit <= 0 || p.DefaultLimit > p.MaxLimit {
		return fmt.Errorf("default_limit must be in [1, max_limit] (got %d)", p.DefaultLimit)
	}
	return nil
}

func (a *AnalyticsConfig) validate() error {
	if a.LowUsageMaxUsers < 0 {
		return fmt.Errorf("low_usage_max_users must be >= 0 (got %d)", a.LowUsageMaxUsers)
	}
	if a.MediumCostPerUser < 0 {
		return fmt.Errorf("medium_cost_per_user must be >= 0 (got %v)", a.MediumCostPerUser)
	}
	if a.HighCostPerUser < a.MediumCostPerUser {
		return fmt.Errorf("high_cost_per_user must be >= medium_cost_per_user (got %v < %v)",
			a.HighCostPerUser, a.MediumCostPerUser)
	}
	if a.ExpensiveMaxLimit <= 0 {
		return fmt.Errorf("expensive_max_limit must be > 0 (got %d)", a.ExpensiveMaxLimit)
	}
	if a.ExpensiveDefaultLimit <= 0 || a.ExpensiveDefaultLimit > a.ExpensiveMaxLimit {
		return fmt.Errorf("expensive_default_limit must be in [1, expensive_max_limit] (got %d)", a.ExpensiveDefaultLimit)
	}
	return nil
}
