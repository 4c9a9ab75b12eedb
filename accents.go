package searchkey

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = newTransformerPool(func() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
})

// RemoveAccents strips nonspacing marks (accents, harakat) and recomposes the rest.
// Case, spaces, digits and tatweel are kept. Blank input is returned unchanged.
//
// Example: "Crème Brûlée" -> "Creme Brulee"
func RemoveAccents(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	return stripMarks.String(s)
}

// OneSpace replaces every run of white space with a single ASCII space.
// Leading and trailing runs are collapsed but not removed.
func OneSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// RemoveHiddenChars drops runes that are not allowed in XML 1.0 documents:
// C0 controls other than tab, newline and carriage return, surrogates, U+FFFE and U+FFFF.
func RemoveHiddenChars(s string) string {
	return strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, s)
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= unicode.MaxRune:
		return true
	}
	return false
}
