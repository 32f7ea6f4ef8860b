package subtitles

import (
	"regexp"
	"strings"
)

var (
	indexRe     = regexp.MustCompile(`^\s*\d+\s*$`)
	timestampRe = regexp.MustCompile(`^\s*\d{2}:\d{2}:\d{2}[,.]\d{3}\s*-->\s*\d{2}:\d{2}:\d{2}[,.]\d{3}.*$`)
	tagRe       = regexp.MustCompile(`<[^>]+>`)
	bracketRe   = regexp.MustCompile(`[\[\](){}]`)
)

// Normalize reduces raw SRT text to a single whitespace-normalized line of
// dialog suitable for language detection. Cue indices, timestamp ranges, and
// blank lines are dropped; markup tags, bracket characters, and the literal
// \N forced line break are stripped from what remains. Normalize is
// idempotent: already-clean text passes through unchanged.
func Normalize(raw string) string {
	kept := make([]string, 0, 64)
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if indexRe.MatchString(line) {
			continue
		}
		if timestampRe.MatchString(line) {
			continue
		}
		line = tagRe.ReplaceAllString(line, " ")
		line = bracketRe.ReplaceAllString(line, " ")
		line = strings.ReplaceAll(line, `\N`, " ")
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	// Joining then re-splitting on fields collapses every whitespace run,
	// including runs introduced by tag stripping above.
	return strings.Join(strings.Fields(strings.Join(kept, " ")), " ")
}
