package expr

import "strings"

// Keyword literals. Keywords match case-insensitively; their token
// literal is always the lowercase form.
const (
	kwAnd = "and"
	kwOr  = "or"
	kwNot = "not"
)

// Lex splits an expression string into tokens. Spaces separate tokens
// and are otherwise insignificant, parentheses are always
// single-character tokens, and any other character accumulates into the
// current identifier. Identifiers keep their original case.
func Lex(input string) []Token {
	var tokens []Token
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		tokens = append(tokens, classify(buf.String()))
		buf.Reset()
	}

	for i := 0; i < len(input); i++ {
		switch ch := input[i]; ch {
		case ' ':
			flush()
		case '(':
			flush()
			tokens = append(tokens, Token{Type: LPAREN, Literal: "("})
		case ')':
			flush()
			tokens = append(tokens, Token{Type: RPAREN, Literal: ")"})
		default:
			buf.WriteByte(ch)
		}
	}
	flush()

	return tokens
}

// classify resolves a flushed buffer to a keyword or identifier token.
func classify(word string) Token {
	switch strings.ToLower(word) {
	case kwAnd:
		return Token{Type: AND, Literal: kwAnd}
	case kwOr:
		return Token{Type: OR, Literal: kwOr}
	case kwNot:
		return Token{Type: NOT, Literal: kwNot}
	}
	return Token{Type: IDENT, Literal: word}
}
