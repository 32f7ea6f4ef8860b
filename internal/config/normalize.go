package config

import (
	"strings"

	"subsift/internal/language"
)

// normalize expands path fields, canonicalizes language codes, and trims
// whitespace so downstream code sees one spelling of everything.
func (c *Config) normalize() error {
	roots := make([]string, 0, len(c.Scan.Roots))
	for _, root := range c.Scan.Roots {
		trimmed := strings.TrimSpace(root)
		if trimmed == "" {
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return err
		}
		roots = append(roots, expanded)
	}
	c.Scan.Roots = roots

	c.Scan.Suffix = strings.TrimSpace(c.Scan.Suffix)

	if dir := strings.TrimSpace(c.Scan.QuarantineDir); dir != "" {
		expanded, err := expandPath(dir)
		if err != nil {
			return err
		}
		c.Scan.QuarantineDir = expanded
	} else {
		c.Scan.QuarantineDir = ""
	}

	if dir := strings.TrimSpace(c.Paths.LockDir); dir != "" {
		expanded, err := expandPath(dir)
		if err != nil {
			return err
		}
		c.Paths.LockDir = expanded
	}

	target := strings.ToLower(strings.TrimSpace(c.Detector.Target))
	if mapped := language.ToISO2(target); mapped != "" {
		target = mapped
	}
	c.Detector.Target = target
	c.Detector.Candidates = language.NormalizeList(c.Detector.Candidates)

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
