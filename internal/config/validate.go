package config

import (
	"fmt"
	"slices"

	"powertools/internal/summarize"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateMatch(); err != nil {
		return err
	}
	return c.validateSummary()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
}

func (c *Config) validateMatch() error {
	if c.Match.Cutoff < 0 || c.Match.Cutoff > 100 {
		return fmt.Errorf("match.cutoff must be between 0 and 100, got %v", c.Match.Cutoff)
	}
	if c.Match.PhoneticCutoff < 0 || c.Match.PhoneticCutoff > 100 {
		return fmt.Errorf("match.phonetic_cutoff must be between 0 and 100, got %v", c.Match.PhoneticCutoff)
	}
	return nil
}

func (c *Config) validateSummary() error {
	if !slices.Contains(summarize.Algorithms(), c.Summary.Algorithm) {
		return fmt.Errorf("summary.algorithm must be one of %v, got %q", summarize.Algorithms(), c.Summary.Algorithm)
	}
	if c.Summary.Sentences < 1 {
		return fmt.Errorf("summary.sentences must be at least 1, got %d", c.Summary.Sentences)
	}
	return nil
}
