package language

import "strings"

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "ger" vs "deu")
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "estonian")
}

// Languages the detector can be restricted to. The set covers the target
// language's neighbourhood plus major languages that show up in mislabeled
// subtitle downloads.
var languages = []entry{
	{"et", "est", "", "Estonian", []string{"estonian"}},
	{"en", "eng", "", "English", []string{"english"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"fi", "fin", "", "Finnish", []string{"finnish"}},
	{"sv", "swe", "", "Swedish", []string{"swedish"}},
	{"lv", "lav", "", "Latvian", []string{"latvian"}},
	{"lt", "lit", "", "Lithuanian", []string{"lithuanian"}},
	{"de", "deu", "ger", "German", []string{"german"}},
	{"fr", "fra", "fre", "French", []string{"french"}},
	{"es", "spa", "", "Spanish", []string{"spanish"}},
	{"pl", "pol", "", "Polish", []string{"polish"}},
	{"uk", "ukr", "", "Ukrainian", []string{"ukrainian"}},
	{"it", "ita", "", "Italian", []string{"italian"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}},
	{"nl", "nld", "dut", "Dutch", []string{"dutch"}},
	{"da", "dan", "", "Danish", []string{"danish"}},
	{"cs", "ces", "cze", "Czech", []string{"czech"}},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// ToISO2 converts any recognized language code or word to ISO 639-1 (2-letter).
// Returns empty string for unrecognized input.
func ToISO2(code string) string {
	if e := lookup(code); e != nil {
		return e.code2
	}
	return ""
}

// Known reports whether the code or word refers to a language the tool knows.
func Known(code string) bool {
	return lookup(code) != nil
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeList deduplicates and normalizes a list of language codes or words
// to ISO 639-1. Unrecognized entries pass through lowercased so validation can
// reject them with the original spelling intact.
func NormalizeList(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		trimmed := strings.ToLower(strings.TrimSpace(code))
		if trimmed == "" {
			continue
		}
		if mapped := ToISO2(trimmed); mapped != "" {
			trimmed = mapped
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}
