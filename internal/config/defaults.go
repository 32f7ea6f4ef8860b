package config

const (
	defaultSuffix        = ".et.srt"
	defaultMinChars      = 200
	defaultMinConfidence = 0.70
	defaultTarget        = "et"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultLockDir       = "~/.local/state/subsift"
)

// The target language plus languages known to be confused with it in
// subtitle downloads: its linguistic and geographic neighbours and the major
// languages most likely to appear by mistake.
func defaultCandidates() []string {
	return []string{"et", "en", "ru", "fi", "sv", "lv", "lt", "de", "fr", "es", "pl", "uk"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Suffix:        defaultSuffix,
			MinChars:      defaultMinChars,
			MinConfidence: defaultMinConfidence,
		},
		Detector: Detector{
			Target:     defaultTarget,
			Candidates: defaultCandidates(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Paths: Paths{
			LockDir: defaultLockDir,
		},
	}
}
