package searchkey

import (
	"fmt"
	"strings"
)

// Normalizer turns text into the form that is stored or compared.
//
// IMPORTANT: Use the SAME normalizer on both write and search.
// Mixing normalizers breaks lookups.
type Normalizer func(string) string

// Modes accepted by GetNormalizer and profiles.
const (
	ModeSearch   = "search"
	ModeSearchAr = "search_ar"
	ModePhrase   = "phrase"
	ModePhraseAr = "phrase_ar"
	ModeAccents  = "accents"
	ModeNone     = "none"
)

// NormalizeSearch produces the compact search key.
//
// Example: " Crème Brûlée " -> "cremebrulee"
var NormalizeSearch Normalizer = func(s string) string {
	return Normalize(s).String()
}

// NormalizeSearchArabic produces the compact search key with Arabic folding.
//
// Example: "أحمد" -> "احمد"
var NormalizeSearchArabic Normalizer = func(s string) string {
	return FoldArabic(Normalize(s))
}

// NormalizePhraseSearch produces the search key with single spaces between words.
//
// Example: " Crème   Brûlée " -> "creme brulee"
var NormalizePhraseSearch Normalizer = func(s string) string {
	return NormalizePhrase(s).String()
}

// NormalizePhraseArabic produces the word-preserving key with Arabic folding.
var NormalizePhraseArabic Normalizer = func(s string) string {
	return FoldArabic(NormalizePhrase(s))
}

// NormalizeAccents strips accents and collapses white space but keeps case and punctuation.
var NormalizeAccents Normalizer = func(s string) string {
	return strings.TrimSpace(OneSpace(RemoveAccents(s)))
}

// NormalizeDigits keeps decimal digits of any script, converted to ASCII.
//
// Example: "(٥٥٥) 123-4567" -> "5551234567"
var NormalizeDigits Normalizer = func(s string) string {
	var digits strings.Builder
	digits.Grow(len(s))
	for _, r := range s {
		if d, ok := DigitValue(r); ok {
			digits.WriteByte(byte('0' + d))
		}
	}
	return digits.String()
}

// NormalizeTrim trims leading and trailing white space only.
var NormalizeTrim Normalizer = func(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeNone is an identity normalizer that returns the input unchanged.
var NormalizeNone Normalizer = func(s string) string {
	return s
}

// Chain applies normalizers left to right. Nil entries are skipped.
func Chain(ns ...Normalizer) Normalizer {
	return func(s string) string {
		for _, n := range ns {
			if n != nil {
				s = n(s)
			}
		}
		return s
	}
}

// GetNormalizer returns the normalizer registered for mode.
// An empty mode selects ModeSearch.
func GetNormalizer(mode string) (Normalizer, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeSearch:
		return NormalizeSearch, nil
	case ModeSearchAr:
		return NormalizeSearchArabic, nil
	case ModePhrase:
		return NormalizePhraseSearch, nil
	case ModePhraseAr:
		return NormalizePhraseArabic, nil
	case ModeAccents:
		return NormalizeAccents, nil
	case ModeNone:
		return NormalizeNone, nil
	}
	return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidProfile, mode)
}
