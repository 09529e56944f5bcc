package parser

import "fmt"

// Token is one element of the input stream: either a raw text token to
// be classified, or a pre-typed structured value supplied by an
// embedding caller. Typed tokens are never switch-shaped and bypass
// their kind's text grammar (a number skips numeric parsing, a mapping
// skips hash parsing, a sequence skips array collection).
type Token struct {
	text  string
	value any
	typed bool
}

// Text wraps a raw command-line token.
func Text(s string) Token {
	return Token{text: s}
}

// Typed wraps an already-typed value. Supported values are bool, int64,
// float64, []string and map[string]string.
func Typed(v any) Token {
	return Token{value: v, typed: true}
}

// Texts wraps a raw argv slice.
func Texts(argv []string) []Token {
	out := make([]Token, len(argv))
	for i, a := range argv {
		out[i] = Text(a)
	}
	return out
}

func (t Token) String() string {
	if t.typed {
		return fmt.Sprint(t.value)
	}
	return t.text
}
