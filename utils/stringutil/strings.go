// Package stringutil provides string manipulation utilities
package stringutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UpperFirst uppercases the first rune of s and leaves the rest untouched.
// The uppercase form may be longer than one rune.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	if r == utf8.RuneError && size == 1 {
		return s
	}
	// Casers carry state and must not be shared between goroutines
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

// Lower lowercases s using Unicode rules, including the Greek final sigma
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// HasLower reports whether any rune in s is lowercase
func HasLower(s string) bool {
	return strings.IndexFunc(s, isLower) >= 0
}

// HasInternalCaps reports whether any rune after the first is uppercase, e.g. iPhone or DuBois
func HasInternalCaps(s string) bool {
	return strings.IndexFunc(tail(s), isUpper) >= 0
}

// HasInternalRune reports whether r occurs anywhere after the first rune of s
func HasInternalRune(s string, r rune) bool {
	return strings.ContainsRune(tail(s), r)
}

func tail(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[size:]
}

func isLower(r rune) bool {
	return unicode.In(r, unicode.Lower, unicode.Other_Lowercase)
}

func isUpper(r rune) bool {
	return unicode.In(r, unicode.Upper, unicode.Other_Uppercase)
}
