package expr

// SyntaxError reports a malformed boolean expression: empty input, a
// dangling operator, an unmatched parenthesis, trailing tokens, or
// truncated input. The first error aborts compilation.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Message == "" {
		return "expression syntax error"
	}
	return "expression syntax error: " + e.Message
}
