package template

import (
	"slices"
	"strings"

	"github.com/ericvoid/ppdpy/pkg/expr"
)

// lineReader provides forward-only access to the input lines.
type lineReader struct {
	lines []string
	pos   int
}

func (r *lineReader) next() (string, bool) {
	if r.pos >= len(r.lines) {
		return "", false
	}
	line := r.lines[r.pos]
	r.pos++
	return line, true
}

// parse consumes all lines and returns the top-level blocks.
func (c *Compiler) parse(r *lineReader) ([]Block, error) {
	blocks, _, err := c.parseUntil(r, nil)
	return blocks, err
}

// parseUntil consumes lines until it sees one of the stop directives at
// this nesting level, returning the parsed blocks and the stripped
// directive line that stopped it. Directives belonging to deeper
// nesting are consumed by recursive calls and never seen here. With no
// stop directives, end of input is normal termination; otherwise it
// means an unclosed conditional.
func (c *Compiler) parseUntil(r *lineReader, stop []string) ([]Block, string, error) {
	var blocks []Block
	var text strings.Builder

	flush := func() {
		if text.Len() == 0 {
			return
		}
		blocks = append(blocks, &TextBlock{Text: text.String()})
		text.Reset()
	}

	for {
		raw, ok := r.next()
		if !ok {
			if len(stop) > 0 {
				return nil, "", &SyntaxError{Message: "missing " + c.prefix + kwEndif + " before end of input"}
			}
			flush()
			return blocks, "", nil
		}

		line := strings.TrimRight(raw, "\r\n")
		stripped := strings.TrimSpace(line)

		if !strings.HasPrefix(stripped, c.prefix) {
			text.WriteString(line)
			text.WriteString(linebreak)
			continue
		}

		directive, err := c.fetchDirective(stripped)
		if err != nil {
			return nil, "", err
		}

		if slices.Contains(stop, directive) {
			flush()
			return blocks, stripped, nil
		}

		if directive != c.dirIf {
			return nil, "", &SyntaxError{Message: "unexpected directive " + directive}
		}

		flush()
		cond, err := c.parseConditional(stripped, r)
		if err != nil {
			return nil, "", err
		}
		blocks = append(blocks, cond)
	}
}

// parseConditional parses the body of an #if construct, starting from
// its opening directive line. Each #if/#elif contributes one entry; a
// trailing #else contributes an entry guarded by True and may only be
// followed by #endif.
func (c *Compiler) parseConditional(line string, r *lineReader) (*ConditionalBlock, error) {
	cond := &ConditionalBlock{}

	for {
		exprText, err := c.fetchExpression(line)
		if err != nil {
			return nil, err
		}
		guard, err := expr.Compile(exprText)
		if err != nil {
			// Guard errors surface as expression syntax errors, not
			// directive errors.
			return nil, err
		}

		body, stopLine, err := c.parseUntil(r, []string{c.dirElif, c.dirElse, c.dirEndif})
		if err != nil {
			return nil, err
		}
		cond.Entries = append(cond.Entries, Entry{Guard: guard, Blocks: body})

		directive, err := c.fetchDirective(stopLine)
		if err != nil {
			return nil, err
		}

		switch directive {
		case c.dirEndif:
			return cond, nil

		case c.dirElse:
			// Only #endif may close an else body; an #elif inside it is
			// rejected by the recursive call.
			body, _, err := c.parseUntil(r, []string{c.dirEndif})
			if err != nil {
				return nil, err
			}
			cond.Entries = append(cond.Entries, Entry{Guard: &expr.True{}, Blocks: body})
			return cond, nil

		default: // c.dirElif
			line = stopLine
		}
	}
}

// fetchDirective extracts the directive keyword: the lowercase first
// whitespace-delimited word of a stripped directive line.
func (c *Compiler) fetchDirective(stripped string) (string, error) {
	word, _, _ := strings.Cut(strings.ToLower(stripped), " ")
	if word == strings.ToLower(c.prefix) {
		return "", &SyntaxError{Message: "missing directive keyword after " + c.prefix}
	}
	return word, nil
}

// fetchExpression extracts the guard expression text after the
// directive keyword.
func (c *Compiler) fetchExpression(stripped string) (string, error) {
	_, rest, ok := strings.Cut(stripped, " ")
	if !ok {
		return "", &SyntaxError{Message: "missing expression in " + stripped}
	}
	return rest, nil
}
