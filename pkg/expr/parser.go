package expr

import "fmt"

// Recursive descent over the token stream with two precedence tiers:
//
//	expr    := term ("or" expr)?
//	term    := factor ("and" factor)*
//	factor  := "not" primary | primary
//	primary := IDENT | "(" expr ")"
//
// "or" late-binds: its right operand is the entire remainder of the
// expression, so "a or b and c" parses as a or (b and c). "and"
// early-binds one factor at a time and left-associates, so
// "a and b or c" parses as (a and b) or c.

// parser tracks the current position in the token stream.
type parser struct {
	tokens []Token
	pos    int
}

// Compile lexes and parses an expression string.
func Compile(input string) (Node, error) {
	return Parse(Lex(input))
}

// Parse builds an AST from a token stream. It returns a *SyntaxError
// on empty input, any token sequence outside the grammar, or trailing
// tokens after a complete expression.
func Parse(tokens []Token) (Node, error) {
	if len(tokens) == 0 {
		return nil, &SyntaxError{Message: "empty expression"}
	}

	p := &parser{tokens: tokens}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, &SyntaxError{
			Message: fmt.Sprintf("unexpected token %q after expression", p.tokens[p.pos].Literal),
		}
	}

	return node, nil
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	if p.match(OR) {
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &Or{Left: left, Right: right}, nil
	}

	return left, nil
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.match(AND) {
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) parseFactor() (Node, error) {
	if p.match(NOT) {
		// "not" binds tightly to a single primary; a bare keyword or
		// another "not" after it is a syntax error.
		inner, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &Not{Expr: inner}, nil
	}

	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, &SyntaxError{Message: "unexpected end of expression"}
	}

	switch tok.Type {
	case IDENT:
		return &Ident{Name: tok.Literal}, nil

	case LPAREN:
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.match(RPAREN) {
			return nil, &SyntaxError{Message: "missing closing parenthesis"}
		}
		return node, nil

	default:
		return nil, &SyntaxError{Message: fmt.Sprintf("unexpected token %q", tok.Literal)}
	}
}

// next consumes and returns the current token.
func (p *parser) next() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

// match consumes the current token if it has the given type.
func (p *parser) match(t TokenType) bool {
	if p.pos < len(p.tokens) && p.tokens[p.pos].Type == t {
		p.pos++
		return true
	}
	return false
}
