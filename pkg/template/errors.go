package template

import "errors"

// SyntaxError reports malformed directive structure: a missing #endif,
// an unrecognized directive keyword, #elif or #else without an open
// #if at that level, or a directive with no expression where one is
// required. The first error aborts compilation; no partial template is
// returned.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Message == "" {
		return "directive syntax error"
	}
	return "directive syntax error: " + e.Message
}

// ErrNilTemplate is returned by Render when called with a nil template.
var ErrNilTemplate = errors.New("render requires a compiled template")
