package gruber

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/dlclark/regexp2"
)

// asciiPunct mirrors the POSIX [[:punct:]] class
const asciiPunct = `!-/:-@\[-\x60{-~`

// tables holds every compiled matcher. It is immutable once built.
type tables struct {
	words           *regexp.Regexp // (_*)(word)(_*) runs
	smallWord       *regexp.Regexp // a whole lowercased token
	digitalResource *regexp.Regexp
	acronym         *regexp.Regexp
	smallAtStart    *regexp2.Regexp
	smallAtEnd      *regexp2.Regexp
}

// patterns returns the process-wide tables, compiling them on first use.
// A malformed built-in pattern panics.
var patterns = sync.OnceValue(compileTables)

func compileTables() *tables {
	small := smallWordsPattern()
	return &tables{
		words: regexp.MustCompile(
			`(_*)([\p{L}\p{Nl}\p{M}\p{Nd}\p{Pc}'’.:/@\[\]()&]+)(_*)`,
		),
		smallWord: regexp.MustCompile(`\A(?:` + small + `)\z`),
		digitalResource: regexp.MustCompile(
			`\A(?:[/\\][A-Za-z]+[-_A-Za-z/\\]+|[-_A-Za-z]+[@.:][-_A-Za-z@.:/]+)`,
		),
		acronym: regexp.MustCompile(`\A\(+[A-Z0-9]+\)+\z`),
		smallAtStart: regexp2.MustCompile(fmt.Sprintf(`
			(   \A [%[1]s]*             # start of title...
			|   [:.;?!]\x20+            # or of subsentence...
			|   \x20['"“‘(\[]\x20*      # or of inserted subphrase...
			)
			( %[2]s ) \b                # ...followed by small word
			`, asciiPunct, small), regexp2.IgnorePatternWhitespace),
		smallAtEnd: regexp2.MustCompile(fmt.Sprintf(`
			\b ( %[2]s )                # small word...
			(   [%[1]s]* \z             # ...at the end of the title...
			|   ['"’”)\]] \x20          # ...or of an inserted subphrase
			)
			`, asciiPunct, small), regexp2.IgnorePatternWhitespace),
	}
}
