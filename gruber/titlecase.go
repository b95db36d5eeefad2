// Package gruber title-cases English text in the style John Gruber uses for
// post titles on Daring Fireball (https://daringfireball.net/2008/05/title_case).
//
// Small words like "an", "of" or "in" are lowercased unless they open or
// close the title or a quoted subphrase. Words with internal capitals such as
// iPhone or AT&T are left alone, as are file paths, URLs, domains and email
// addresses. Slash compounds are title-cased term by term.
//
//	gruber.TitleCase("a sample title to capitalize: an example")
//	// "A Sample Title to Capitalize: An Example"
//
// Every function in this package is pure and safe for concurrent use.
package gruber

import (
	"strings"

	"titlecase/utils/stringutil"
)

// TitleCase returns input in title case. Surrounding whitespace is trimmed.
// Input without a single lowercase letter is treated as yelling and
// lowercased before being title-cased.
func TitleCase(input string) string {
	return caseWords(normalizeYelling(strings.TrimSpace(input)))
}

// caseWords rewrites every word and then fixes small words at phrase boundaries
func caseWords(text string) string {
	return fixSmallWordAtEnd(fixSmallWordAtStart(rewrite(text)))
}

func normalizeYelling(text string) string {
	if stringutil.HasLower(text) {
		return text
	}
	return stringutil.Lower(text)
}
