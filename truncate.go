package searchkey

// TruncateEnd keeps the first n runes of s.
func TruncateEnd(s string, n int) string {
	return TruncateEndWithSuffix(s, n, "")
}

// TruncateEndWithSuffix shortens s to at most n runes, ending with suffix when it was cut.
// The suffix counts toward n. If n leaves no room for any of s, the suffix itself is cut to n.
//
// Example: TruncateEndWithSuffix("searchkey", 6, "...") -> "sea..."
func TruncateEndWithSuffix(s string, n int, suffix string) string {
	if s == "" || n <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	sfx := []rune(suffix)
	if len(sfx) >= n {
		return string(sfx[:n])
	}
	return string(rs[:n-len(sfx)]) + suffix
}

// TruncateStart keeps the last n runes of s.
func TruncateStart(s string, n int) string {
	if s == "" || n <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[len(rs)-n:])
}
