// Package textutil holds the text-buffer rules shared by every input path.
package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxChars is the input limit, counted in runes.
const MaxChars = 5000

// Clamp cuts s to at most n runes. n <= 0 leaves s unchanged.
func Clamp(s string, n int) string {
	if n <= 0 {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Prepare NFC-normalises text coming from outside the keyboard (files,
// dictation) and clamps it to n runes.
func Prepare(s string, n int) string {
	return Clamp(norm.NFC.String(s), n)
}

// Len is the rune count shown by the character counter.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
