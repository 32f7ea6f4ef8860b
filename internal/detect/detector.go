package detect

// Result is a detector's best guess for a text's language.
type Result struct {
	// Language is the ISO 639-1 code of the detected language.
	Language string
	// Confidence is a monotonic certainty score in [0, 1]; higher means more
	// certain. No cross-language probability-sum guarantee is assumed.
	Confidence float64
}

// Detector classifies text over a fixed candidate language set. The second
// return value is false when the detector abstains; implementations must
// abstain rather than fail.
type Detector interface {
	Detect(text string) (Result, bool)
}
