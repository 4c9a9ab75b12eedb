package searchkey

import (
	"strings"
	"unicode"
)

// DigitValue returns the numeric value of a decimal digit in any script.
//
// Unicode encodes every decimal digit set as a contiguous run of ten code points
// ordered 0 to 9, so the value is the offset inside the run. The runs are read from
// the Nd category table rather than from a per-script list.
func DigitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.Is(unicode.Nd, r) {
		return 0, false
	}
	for _, rg := range unicode.Nd.R16 {
		if v, ok := offsetInRange(r, rune(rg.Lo), rune(rg.Hi), rune(rg.Stride)); ok {
			return v, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if v, ok := offsetInRange(r, rune(rg.Lo), rune(rg.Hi), rune(rg.Stride)); ok {
			return v, true
		}
	}
	return 0, false
}

func offsetInRange(r, lo, hi, stride rune) (int, bool) {
	if r < lo || r > hi {
		return 0, false
	}
	off := r - lo
	if stride > 1 {
		if off%stride != 0 {
			return 0, false
		}
		off /= stride
	}
	return int(off % 10), true
}

// ToInvariantDigits replaces every decimal digit with its ASCII equivalent.
// All other runes are left untouched. Blank input is returned unchanged.
//
// Example: "This is numeral ١,٢٨" -> "This is numeral 1,28"
func ToInvariantDigits(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := DigitValue(r); ok {
			b.WriteByte(byte('0' + d))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
