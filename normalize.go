package searchkey

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key is text prepared for search and indexing.
//
// A Key can only be produced by Normalize, NormalizePhrase or NormalizePtr.
// The zero value is the empty key. Keys are comparable with ==; a compact key and
// a phrase key are never equal unless both are empty.
type Key struct {
	value  string
	phrase bool // words separated by single spaces
}

// String returns the normalized text.
func (k Key) String() string {
	return k.value
}

// IsEmpty reports whether the key holds no text.
func (k Key) IsEmpty() bool {
	return k.value == ""
}

// transformerPool hands out x/text transformer chains.
// Chains keep internal buffers and must not be shared between goroutines.
type transformerPool struct {
	pool sync.Pool
}

func newTransformerPool(build func() transform.Transformer) *transformerPool {
	return &transformerPool{pool: sync.Pool{New: func() any { return build() }}}
}

// String runs s through a pooled chain.
func (p *transformerPool) String(s string) string {
	t := p.pool.Get().(transform.Transformer)
	out, _, err := transform.String(t, s)
	t.Reset()
	p.pool.Put(t)
	if err != nil {
		return s
	}
	return out
}

// lowerDecompose is steps 4 and 5 of the pipeline: invariant lowercase, then NFD.
var lowerDecompose = newTransformerPool(func() transform.Transformer {
	return transform.Chain(cases.Lower(language.Und), norm.NFD)
})

// Normalize converts s into a compact search key.
//
// Pipeline (the order is part of the contract):
//  1. blank input returns the empty key
//  2. trim
//  3. collapse white space runs to a single space
//  4. lowercase with language-independent rules
//  5. canonical decomposition (NFD)
//  6. keep lowercase letters, other letters and decimal digits only
//  7. decimal digits of any script become ASCII digits
//
// Spaces do not survive step 6, so "This ١٢٨" becomes "this128".
// Use NormalizePhrase to keep word boundaries.
func Normalize(s string) Key {
	return normalize(s, false)
}

// NormalizePhrase is Normalize with word boundaries kept as single spaces.
//
// Example: "  Crème   brûlée " -> "creme brulee"
func NormalizePhrase(s string) Key {
	return normalize(s, true)
}

// NormalizePtr normalizes *s into a compact key. A nil pointer yields the empty key.
func NormalizePtr(s *string) Key {
	if s == nil {
		return Key{}
	}
	return Normalize(*s)
}

func normalize(s string, keepSpaces bool) Key {
	if strings.TrimSpace(s) == "" {
		return Key{}
	}

	// 1-3
	s = strings.Join(strings.Fields(strings.ToValidUTF8(s, "")), " ")

	// 4-5
	s = lowerDecompose.String(s)

	// 6-7
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case r == ' ':
			if keepSpaces && b.Len() > 0 {
				pendingSpace = true
			}
			continue
		case unicode.Is(unicode.Nd, r):
			d, _ := DigitValue(r)
			r = rune('0' + d)
		case unicode.Is(unicode.Ll, r), unicode.Is(unicode.Lo, r):
		default:
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return Key{}
	}
	return Key{value: b.String(), phrase: keepSpaces}
}
