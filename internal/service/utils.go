package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sanitizeUTF8 removes invalid UTF-8 sequences from string
// This prevents PostgreSQL encoding errors when saving text
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	// Remove invalid UTF-8 sequences
	var result strings.Builder
	result.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8 sequence, skip this byte
			s = s[1:]
			continue
		}
		result.WriteRune(r)
		s = s[size:]
	}

	return result.String()
}

// truncateWords cuts s after maxWords words, keeping the original spacing of
// the kept part. Text within the limit is returned unchanged.
func truncateWords(s string, maxWords int) string {
	if maxWords <= 0 {
		return s
	}

	words := 0
	inWord := false
	cut := len(s)
	for i, r := range s {
		if unicode.IsSpace(r) {
			if inWord && words == maxWords {
				cut = i
			}
			inWord = false
			continue
		}
		if !inWord {
			if words == maxWords {
				return s[:cut] + "…"
			}
			inWord = true
			words++
		}
	}
	return s
}
