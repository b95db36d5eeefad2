package gruber

import (
	"github.com/dlclark/regexp2"
	"go.uber.org/zap"

	"titlecase/constants/zapkey"
	"titlecase/utils/stringutil"
)

// fixSmallWordAtStart capitalizes small words that open the title, a
// subsentence, or a quoted or bracketed subphrase
func fixSmallWordAtStart(text string) string {
	return replaceSmallWords("start", patterns().smallAtStart, text, func(m regexp2.Match) string {
		return m.GroupByNumber(1).String() + stringutil.UpperFirst(m.GroupByNumber(2).String())
	})
}

// fixSmallWordAtEnd capitalizes small words that close the title or a
// quoted or bracketed subphrase
func fixSmallWordAtEnd(text string) string {
	return replaceSmallWords("end", patterns().smallAtEnd, text, func(m regexp2.Match) string {
		return stringutil.UpperFirst(m.GroupByNumber(1).String()) + m.GroupByNumber(2).String()
	})
}

func replaceSmallWords(pass string, re *regexp2.Regexp, text string, fix regexp2.MatchEvaluator) string {
	result, err := re.ReplaceFunc(text, fix, -1, -1)
	if err != nil {
		// Only a match timeout can fail, leave the text as it was
		logger.With(zap.Error(err)).Warn("Failed to fix small words",
			zap.String(zapkey.Pass, pass),
			zap.String(zapkey.Input, text),
		)
		return text
	}
	return result
}
