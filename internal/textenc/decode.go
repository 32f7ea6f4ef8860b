package textenc

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Bytes Windows-1252 leaves undefined. A strict decode rejects content that
// uses them so the file falls through to Latin-1.
var cp1252Holes = [...]byte{0x81, 0x8D, 0x8F, 0x90, 0x9D}

// Decode converts raw subtitle bytes to text using an ordered fallback chain:
// UTF-8 strict, UTF-8 with BOM, Windows-1252 strict, ISO-8859-1, and finally
// lossy UTF-8 with replacement runes. The order is an observable contract: it
// decides which bytes become which characters. The returned name identifies
// the encoding that succeeded.
func Decode(raw []byte) (string, string) {
	if utf8.Valid(raw) {
		if bytes.HasPrefix(raw, utf8BOM) {
			text, err := unicode.UTF8BOM.NewDecoder().String(string(raw))
			if err == nil {
				return text, "utf-8-sig"
			}
		}
		return string(raw), "utf-8"
	}

	if cp1252Strict(raw) {
		text, err := charmap.Windows1252.NewDecoder().String(string(raw))
		if err == nil {
			return text, "windows-1252"
		}
	}

	if text, err := charmap.ISO8859_1.NewDecoder().String(string(raw)); err == nil {
		return text, "iso-8859-1"
	}

	// Last resort: keep what is readable, replace the rest.
	text, _ := unicode.UTF8.NewDecoder().String(string(raw))
	return text, "utf-8-lossy"
}

func cp1252Strict(raw []byte) bool {
	for _, hole := range cp1252Holes {
		if bytes.IndexByte(raw, hole) >= 0 {
			return false
		}
	}
	return true
}
