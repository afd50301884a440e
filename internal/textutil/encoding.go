package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// NormalizeFileName converts a raw directory entry name to NFC UTF-8. Names
// that are not valid UTF-8 are decoded as Windows-1252 first.
func NormalizeFileName(raw string) string {
	name := raw
	if !utf8.ValidString(name) {
		decoded, err := charmap.Windows1252.NewDecoder().String(name)
		if err == nil {
			name = decoded
		} else {
			name = strings.ToValidUTF8(name, "\uFFFD")
		}
	}
	return norm.NFC.String(name)
}
