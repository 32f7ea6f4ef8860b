package config

import (
	"errors"
	"fmt"

	"subsift/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateDetector(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if c.Scan.Suffix == "" {
		return errors.New("scan.suffix must be set")
	}
	if c.Scan.MinChars < 1 {
		return fmt.Errorf("scan.min_chars must be at least 1, got %d", c.Scan.MinChars)
	}
	if c.Scan.MinConfidence < 0 || c.Scan.MinConfidence > 1 {
		return fmt.Errorf("scan.min_confidence must be between 0 and 1, got %g", c.Scan.MinConfidence)
	}
	return nil
}

func (c *Config) validateDetector() error {
	if c.Detector.Target == "" {
		return errors.New("detector.target must be set")
	}
	if !language.Known(c.Detector.Target) {
		return fmt.Errorf("detector.target %q is not a recognized language", c.Detector.Target)
	}
	if len(c.Detector.Candidates) < 2 {
		return fmt.Errorf("detector.candidates needs at least 2 languages, got %d", len(c.Detector.Candidates))
	}
	found := false
	for _, code := range c.Detector.Candidates {
		if !language.Known(code) {
			return fmt.Errorf("detector.candidates contains unrecognized language %q", code)
		}
		if code == c.Detector.Target {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("detector.candidates must include the target language %q", c.Detector.Target)
	}
	return nil
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
