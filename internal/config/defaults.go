package config

import "strings"

const (
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
	defaultMatchCutoff    = 90
	defaultPhoneticCutoff = 70
	defaultSummaryAlgo    = "lsa"
	defaultSummarySents   = 1
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Match: Match{
			Cutoff:         defaultMatchCutoff,
			PhoneticCutoff: defaultPhoneticCutoff,
		},
		Summary: Summary{
			Algorithm: defaultSummaryAlgo,
			Sentences: defaultSummarySents,
		},
	}
}

// normalize trims and lowercases the free-form string fields so comparisons
// downstream never care about spelling variants.
func (c *Config) normalize() {
	c.Logging.Level = normalizeToken(c.Logging.Level, defaultLogLevel)
	c.Logging.Format = normalizeToken(c.Logging.Format, defaultLogFormat)
	c.Summary.Algorithm = normalizeToken(c.Summary.Algorithm, defaultSummaryAlgo)

	keywords := c.Sanitize.ExtraKeywords[:0]
	for _, keyword := range c.Sanitize.ExtraKeywords {
		if trimmed := strings.TrimSpace(keyword); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	c.Sanitize.ExtraKeywords = keywords
}

func normalizeToken(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
