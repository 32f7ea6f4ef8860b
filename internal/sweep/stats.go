package sweep

import "strconv"

// Stats holds the process-lifetime counters rendered at run end. Each file
// contributes to Matched plus at most one outcome counter; ActionsTaken
// counts successful mutations only.
type Stats struct {
	Matched       int
	Analyzed      int
	SkippedShort  int
	Unknown       int
	HTTPErrors    int
	WrongLanguage int
	ActionsTaken  int
}

// Rows returns the summary in its fixed order. targetDisplay is the
// human-readable name of the target language (e.g. "Estonian").
func (s Stats) Rows(targetDisplay string) [][2]string {
	return [][2]string{
		{"matched files", strconv.Itoa(s.Matched)},
		{"analysed (>= min chars)", strconv.Itoa(s.Analyzed)},
		{"skipped short", strconv.Itoa(s.SkippedShort)},
		{"unknown/unreadable", strconv.Itoa(s.Unknown)},
		{"HTTP errors (>= 2)", strconv.Itoa(s.HTTPErrors)},
		{"not " + targetDisplay, strconv.Itoa(s.WrongLanguage)},
		{"actions taken", strconv.Itoa(s.ActionsTaken)},
	}
}
