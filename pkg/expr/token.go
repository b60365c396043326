// Package expr compiles boolean guard expressions over symbol names.
// An expression like "a and not (b or c)" is lexed, parsed into an AST,
// and evaluated repeatedly against sets of active symbols.
package expr

// TokenType identifies the type of token.
type TokenType int

// TokenType constants for expression token types.
const (
	IDENT  TokenType = iota // Symbol name
	AND                     // and
	OR                      // or
	NOT                     // not
	LPAREN                  // (
	RPAREN                  // )
)

func (t TokenType) String() string {
	switch t {
	case IDENT:
		return "IDENT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token. Tokens carry no position
// information; expression errors are reported without locations.
type Token struct {
	Type    TokenType
	Literal string
}
