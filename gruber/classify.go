package gruber

import (
	"strings"

	"titlecase/utils/stringutil"
)

// Kind is the outcome of classifying a single word
type Kind int

// Kinds in the order they are checked. The first match wins.
const (
	DigitalResource Kind = iota
	SmallWord
	Acronym
	BracketedPhrase
	SlashCompound
	InternalCaps
	PlainWord
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case DigitalResource:
		return "DigitalResource"
	case SmallWord:
		return "SmallWord"
	case Acronym:
		return "Acronym"
	case BracketedPhrase:
		return "BracketedPhrase"
	case SlashCompound:
		return "SlashCompound"
	case InternalCaps:
		return "InternalCaps"
	case PlainWord:
		return "PlainWord"
	default:
		return "Unknown"
	}
}

// Classify decides how a word will be rewritten
func Classify(word string) Kind {
	switch {
	case IsDigitalResource(word):
		return DigitalResource
	case IsSmallWord(word):
		return SmallWord
	case isAcronym(word):
		return Acronym
	case strings.HasPrefix(word, "("):
		return BracketedPhrase
	case stringutil.HasInternalRune(word, '/'):
		return SlashCompound
	case stringutil.HasInternalCaps(word):
		return InternalCaps
	default:
		return PlainWord
	}
}

// Word rewrites a single word according to its classification.
// Bracketed phrases and slash compounds are title-cased recursively.
func Word(word string) string {
	switch Classify(word) {
	case DigitalResource, Acronym, InternalCaps:
		return word
	case SmallWord:
		return stringutil.Lower(word)
	case BracketedPhrase:
		return "(" + caseWords(word[1:])
	case SlashCompound:
		parts := strings.Split(word, "/")
		for i, part := range parts {
			parts[i] = caseWords(part)
		}
		return strings.Join(parts, "/")
	default:
		return stringutil.UpperFirst(word)
	}
}

// isAcronym matches all-caps words wrapped in balanced parens, e.g. (BBC) or ((ABC))
func isAcronym(word string) bool {
	if !patterns().acronym.MatchString(word) {
		return false
	}
	return strings.Count(word, "(") == strings.Count(word, ")")
}
