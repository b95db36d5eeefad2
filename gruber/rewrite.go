package gruber

import "strings"

// rewrite replaces every word in text with its rewritten form. Underscores
// around a word and everything between words are copied unchanged.
func rewrite(text string) string {
	matches := patterns().words.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, m := range matches {
		sb.WriteString(text[last:m[0]])
		sb.WriteString(text[m[2]:m[3]])
		sb.WriteString(Word(text[m[4]:m[5]]))
		sb.WriteString(text[m[6]:m[7]])
		last = m[1]
	}
	sb.WriteString(text[last:])
	return sb.String()
}
