package language

import (
	"reflect"
	"testing"
)

func TestToISO2(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// 2-letter codes pass through
		{"et", "et"},
		{"ET", "et"},
		{"ru", "ru"},
		// 3-letter codes convert
		{"est", "et"},
		{"eng", "en"},
		{"rus", "ru"},
		{"lav", "lv"},
		{"lit", "lt"},
		{"deu", "de"},
		{"ger", "de"},
		{"fra", "fr"},
		{"fre", "fr"},
		{"ukr", "uk"},
		// Word forms
		{"estonian", "et"},
		{"Finnish", "fi"},
		{" swedish ", "sv"},
		// Unknown
		{"xx", ""},
		{"klingon", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := ToISO2(tc.input); got != tc.expected {
			t.Errorf("ToISO2(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known("et") || !Known("estonian") || !Known("est") {
		t.Fatal("expected Estonian spellings to be known")
	}
	if Known("tlh") || Known("") {
		t.Fatal("expected unknown codes to be rejected")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"et", "Estonian"},
		{"est", "Estonian"},
		{"uk", "Ukrainian"},
		{"", "Unknown"},
		{"  ", "Unknown"},
		{"zz", "ZZ"},
	}
	for _, tc := range tests {
		if got := DisplayName(tc.input); got != tc.expected {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestNormalizeList(t *testing.T) {
	got := NormalizeList([]string{"ET", "est", " english ", "rus", "", "ru", "Finnish"})
	want := []string{"et", "en", "ru", "fi"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeList = %v, want %v", got, want)
	}
	if NormalizeList(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}
