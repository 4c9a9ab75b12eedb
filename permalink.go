package searchkey

import (
	"strings"
	"unicode"
)

// permaLinkIDLength is the number of id runes appended by PermaLinkWithID.
const permaLinkIDLength = 10

var permaLinkWords = strings.NewReplacer(
	"&", " And ",
	"#", " Sharp ",
	"+", " Plus ",
	"%", " Percent ",
	"$", " Dollar ",
)

// PermaLink converts s into a readable URL path segment.
//
// Symbols that carry meaning in titles are spelled out, accents are removed,
// other punctuation and symbols (except '.') separate words, each word starts
// with an upper case letter and words are joined with '-'.
//
// Example: "project using C++" -> "Project-Using-C-Plus-Plus"
func PermaLink(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}

	s = permaLinkWords.Replace(strings.TrimSpace(s))
	s = RemoveAccents(s)

	var b strings.Builder
	b.Grow(len(s))
	newWord := true
	for _, r := range s {
		if r != '.' && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
			r = ' '
		}
		switch {
		case unicode.IsDigit(r):
		case !unicode.IsLetter(r):
			newWord = true
		case newWord:
			r = unicode.ToUpper(r)
			newWord = false
		}
		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(b.String()), "-"), nil
}

// PermaLinkWithID is PermaLink with the first ten runes of id appended,
// so titles that collide still produce distinct links.
//
// Example: ("crème brûlée", "F13D1B0F57244688") -> "Creme-Brulee-F13D1B0F57"
func PermaLinkWithID(s, id string) (string, error) {
	slug, err := PermaLink(s)
	if err != nil {
		return "", err
	}
	id = TruncateEnd(id, permaLinkIDLength)
	switch {
	case slug == "":
		return id, nil
	case id == "":
		return slug, nil
	}
	return slug + "-" + id, nil
}
