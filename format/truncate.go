package format

import "unicode/utf8"

// Longest entity EscapeHTML can emit is "&amp;"; the bound is generous
// so hand-written entities like "&#128512;" survive too.
const maxEntityRunes = 12

// Truncate shortens text to at most max runes, appending the marker when
// anything was cut. The cut lands on a safe boundary: never between a
// backslash and the character it escapes, never inside an &...; entity.
func Truncate(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	markerLen := utf8.RuneCountInString(Marker)
	if max <= markerLen {
		return safeCut(text, max)
	}
	return safeCut(text, max-markerLen) + Marker
}

// safeCut returns at most n leading runes of s, backing off as needed so
// the result never ends in a stranded escape backslash or a partial
// entity.
func safeCut(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	runes = runes[:n]

	for {
		trimmed := false

		// An odd run of trailing backslashes means the last one escapes
		// the rune the cut removed.
		if trailingBackslashes(runes)%2 == 1 {
			runes = runes[:len(runes)-1]
			trimmed = true
		}

		if i := partialEntityStart(runes); i >= 0 {
			runes = runes[:i]
			trimmed = true
		}

		if !trimmed || len(runes) == 0 {
			return string(runes)
		}
	}
}

func trailingBackslashes(runes []rune) int {
	count := 0
	for i := len(runes) - 1; i >= 0 && runes[i] == '\\'; i-- {
		count++
	}
	return count
}

// partialEntityStart reports the index of the '&' opening an unterminated
// trailing entity, or -1 when the tail is not inside one.
func partialEntityStart(runes []rune) int {
	for i, back := len(runes)-1, 0; i >= 0 && back < maxEntityRunes; i, back = i-1, back+1 {
		switch r := runes[i]; {
		case r == '&':
			return i
		case r == ';':
			return -1
		case r == '#' || isEntityBodyRune(r):
			// keep scanning backward
		default:
			return -1
		}
	}
	return -1
}

func isEntityBodyRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	default:
		return false
	}
}
