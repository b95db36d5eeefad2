package gruber

import (
	"slices"
	"strings"

	"titlecase/utils/stringutil"
)

// smallWords are lowercased unless they open or close a phrase.
// Entries are regular expressions over a lowercased token.
var smallWords = []string{
	"a",
	"an",
	"and",
	"as",
	"at",
	"but",
	"by",
	"en",
	"for",
	"if",
	"in",
	"of",
	"on",
	"or",
	"the",
	"to",
	"v[.]?",
	"via",
	"vs[.]?",
}

// SmallWords returns the ordered small-word patterns
func SmallWords() []string {
	return slices.Clone(smallWords)
}

func smallWordsPattern() string {
	return strings.Join(smallWords, "|")
}

// IsSmallWord reports whether the whole word, ignoring case, is a small word
func IsSmallWord(word string) bool {
	return patterns().smallWord.MatchString(stringutil.Lower(word))
}
