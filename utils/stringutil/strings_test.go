package stringutil

import (
	"testing"

	"github.com/matryer/is"
)

func TestUpperFirst(t *testing.T) {
	is := is.New(t)
	for _, tt := range []struct {
		in, want string
	}{
		{"", ""},
		{"word", "Word"},
		{"Word", "Word"},
		{"éclair", "Éclair"},
		{"μ", "Μ"},
		{"'quoted", "'quoted"},
		{"2lmc", "2lmc"},
		{"iPhone", "IPhone"},
	} {
		is.Equal(UpperFirst(tt.in), tt.want) // UpperFirst
	}
}

func TestLower(t *testing.T) {
	is := is.New(t)
	is.Equal(Lower("IF IT’S ALL CAPS"), "if it’s all caps")
	is.Equal(Lower("ÉCLAIR"), "éclair")
	is.Equal(Lower(""), "")
}

func TestHasLower(t *testing.T) {
	is := is.New(t)
	is.True(HasLower("ABc"))
	is.True(HasLower("μ"))
	is.True(!HasLower("ABC 123"))
	is.True(!HasLower(""))
	is.True(!HasLower("!?"))
}

func TestHasInternalCaps(t *testing.T) {
	is := is.New(t)
	for _, w := range []string{"iPhone", "DuBois", "AT&T", "AT&T's", "Q&A", "SEC's", "TheStreet"} {
		is.True(HasInternalCaps(w)) // expected internal caps
	}
	for _, w := range []string{"", "I", "Apple", "word", "(nice)", "Élan"} {
		is.True(!HasInternalCaps(w)) // unexpected internal caps
	}
}

func TestHasInternalRune(t *testing.T) {
	is := is.New(t)
	is.True(HasInternalRune("could/should", '/'))
	is.True(HasInternalRune("a/", '/'))
	is.True(!HasInternalRune("/boot", '/'))
	is.True(!HasInternalRune("/", '/'))
	is.True(!HasInternalRune("", '/'))
}
