package detect

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Lingua wraps the lingua statistical language detector, restricted to a
// curated candidate set so closely related languages do not leak in and
// dilute confidence scores.
type Lingua struct {
	detector lingua.LanguageDetector
}

// NewLingua builds a detector over the given ISO 639-1 candidate codes.
// Lingua needs at least two languages to discriminate between.
func NewLingua(candidates []string) (*Lingua, error) {
	if len(candidates) < 2 {
		return nil, fmt.Errorf("language detector needs at least 2 candidate languages, got %d", len(candidates))
	}
	langs := make([]lingua.Language, 0, len(candidates))
	for _, code := range candidates {
		lang, ok := linguaLanguage(code)
		if !ok {
			return nil, fmt.Errorf("candidate language %q is not supported by the detector", code)
		}
		langs = append(langs, lang)
	}
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		Build()
	return &Lingua{detector: detector}, nil
}

// Detect returns the most likely language and its confidence, or abstains
// when lingua cannot settle on any candidate.
func (l *Lingua) Detect(text string) (Result, bool) {
	lang, ok := l.detector.DetectLanguageOf(text)
	if !ok {
		return Result{}, false
	}
	confidence := l.detector.ComputeLanguageConfidence(text, lang)
	return Result{
		Language:   strings.ToLower(lang.IsoCode639_1().String()),
		Confidence: confidence,
	}, true
}

func linguaLanguage(code string) (lingua.Language, bool) {
	for _, lang := range lingua.AllLanguages() {
		if strings.EqualFold(lang.IsoCode639_1().String(), code) {
			return lang, true
		}
	}
	return lingua.Unknown, false
}
