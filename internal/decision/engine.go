package decision

import (
	"unicode/utf8"

	"subsift/internal/detect"
	"subsift/internal/subtitles"
)

// ErrorSignatureThreshold is the number of HTTP error phrases that counts as
// conclusive evidence of a captured error page.
const ErrorSignatureThreshold = 2

// Verdict is the terminal classification for one subtitle file.
type Verdict int

const (
	// VerdictKeep means the file is in the target language with sufficient confidence.
	VerdictKeep Verdict = iota
	// VerdictShort means the cleaned text was too short to judge.
	VerdictShort
	// VerdictUnknown means the detector abstained.
	VerdictUnknown
	// VerdictWrongLanguage means the file is confidently not in the target language,
	// or the target was detected below the confidence threshold.
	VerdictWrongLanguage
	// VerdictHTTPError means the file is a captured HTTP error page, not a subtitle.
	VerdictHTTPError
)

func (v Verdict) String() string {
	switch v {
	case VerdictKeep:
		return "keep"
	case VerdictShort:
		return "short"
	case VerdictUnknown:
		return "unknown"
	case VerdictWrongLanguage:
		return "wrong-language"
	case VerdictHTTPError:
		return "http-error"
	default:
		return "invalid"
	}
}

// Outcome carries a verdict plus the evidence behind it.
type Outcome struct {
	Verdict         Verdict
	ErrorSignatures int
	CleanedChars    int
	Language        string
	Confidence      float64
}

// Engine evaluates one subtitle file at a time against a target language.
type Engine struct {
	detector      detect.Detector
	target        string
	minChars      int
	minConfidence float64
}

// NewEngine constructs a decision engine. The target is an ISO 639-1 code;
// minChars gates how much cleaned text detection needs; minConfidence is the
// inclusive threshold a target-language detection must meet to be kept.
func NewEngine(detector detect.Detector, target string, minChars int, minConfidence float64) *Engine {
	return &Engine{
		detector:      detector,
		target:        target,
		minChars:      minChars,
		minConfidence: minConfidence,
	}
}

// Evaluate produces exactly one verdict for the given raw subtitle text.
// The HTTP error check runs first on unnormalized text and bypasses
// normalization and detection entirely when it triggers.
func (e *Engine) Evaluate(raw string) Outcome {
	if n := subtitles.CountErrorSignatures(raw); n >= ErrorSignatureThreshold {
		return Outcome{Verdict: VerdictHTTPError, ErrorSignatures: n}
	}

	cleaned := subtitles.Normalize(raw)
	chars := utf8.RuneCountInString(cleaned)
	if chars < e.minChars {
		return Outcome{Verdict: VerdictShort, CleanedChars: chars}
	}

	result, ok := e.detector.Detect(cleaned)
	if !ok {
		return Outcome{Verdict: VerdictUnknown, CleanedChars: chars}
	}

	out := Outcome{
		CleanedChars: chars,
		Language:     result.Language,
		Confidence:   result.Confidence,
	}
	// Strict comparison: exactly at the threshold passes, one unit below fails.
	if result.Language == e.target && result.Confidence >= e.minConfidence {
		out.Verdict = VerdictKeep
	} else {
		out.Verdict = VerdictWrongLanguage
	}
	return out
}
