package config

import (
	"errors"
	"fmt"
)

// ErrInvalid marks configuration that cannot be used.
var ErrInvalid = errors.New("config is not correct")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFilter(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateFilter() error {
	if len(c.Filter.RegionsOrder) == 0 {
		return fmt.Errorf("%w: filter.regions_order must list at least one region", ErrInvalid)
	}
	for i, region := range c.Filter.RegionsOrder {
		if region == "" {
			return fmt.Errorf("%w: filter.regions_order[%d] is empty", ErrInvalid, i)
		}
	}
	if len(c.Filter.ToRemovePatterns) == 0 {
		return fmt.Errorf("%w: filter.to_remove_patterns must list at least one pattern", ErrInvalid)
	}
	for i, pattern := range c.Filter.ToRemovePatterns {
		if pattern == "" {
			return fmt.Errorf("%w: filter.to_remove_patterns[%d] is empty", ErrInvalid, i)
		}
	}
	if _, err := c.CompiledPatterns(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalid, c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level must be debug, info, warn or error, got %q", ErrInvalid, c.Logging.Level)
	}
	if c.Logging.ReportRetentionDays < 0 {
		return fmt.Errorf("%w: logging.report_retention_days must be >= 0", ErrInvalid)
	}
	return nil
}
