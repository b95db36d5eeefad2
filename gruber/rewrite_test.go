package gruber

import (
	"testing"

	"github.com/matryer/is"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"separators only", " -- ", " -- "},
		{"words", "the quick fox", "the Quick Fox"},
		{"underscores kept", "_quick_ __fox", "_Quick_ __Fox"},
		{"hyphens split words", "man-in-the-middle", "Man-in-the-Middle"},
		{"non-breaking hyphen", "la‑la", "La‑La"},
		{"punctuation kept", "wait, what?!", "Wait, What?!"},
		{"curly apostrophe is a word char", "it’s", "It’s"},
		{"ampersand is a word char", "q&a", "Q&a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(rewrite(tt.in), tt.want)
		})
	}
}
