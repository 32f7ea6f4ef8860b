package subtitles

import "regexp"

// Phrases that show up in captured HTTP error pages saved as subtitle files
// by failed automated downloads. Matched against raw text so error bodies
// embedded as literal HTML are caught before any markup stripping.
var errorSignatureRe = regexp.MustCompile(`(?i)503\s+Service\s+Unavailable|400\s+Bad\s+Request|500\s+Internal\s+Server\s+Error|429\s+Too\s+Many\s+Requests`)

// CountErrorSignatures returns the number of non-overlapping HTTP error
// phrases in raw. The decision rule (two or more is conclusive) belongs to
// the decision engine; this reports the evidence only.
func CountErrorSignatures(raw string) int {
	return len(errorSignatureRe.FindAllStringIndex(raw, -1))
}
