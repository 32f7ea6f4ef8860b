package subtitles

import (
	"strings"
	"testing"
)

func TestCountErrorSignatures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"none", "Tere tulemast, head vaatamist", 0},
		{"single", "oops: 503 Service Unavailable", 1},
		{"two distinct", "503 Service Unavailable ... 500 Internal Server Error", 2},
		{"repeated", strings.Repeat("429 Too Many Requests\n", 3), 3},
		{"case insensitive", "503 SERVICE UNAVAILABLE and 400 bad request", 2},
		{"html body", "<html><h1>503 Service\n Unavailable</h1></html>", 1},
		{"empty", "", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountErrorSignatures(tc.raw); got != tc.want {
				t.Fatalf("CountErrorSignatures = %d, want %d", got, tc.want)
			}
		})
	}
}
