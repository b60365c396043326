package template

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultPrefix is the directive prefix used when none is configured.
const DefaultPrefix = "#"

const linebreak = "\n"

// Directive keyword suffixes. The full directive keywords are built by
// concatenating the prefix with these.
const (
	kwIf    = "if"
	kwElif  = "elif"
	kwElse  = "else"
	kwEndif = "endif"
)

// Compiler compiles line sequences into templates. The directive prefix
// is per-compiler configuration, so compilers with different prefixes
// can run concurrently without interfering.
type Compiler struct {
	prefix string

	// Directive keywords derived from the prefix, lowercased for the
	// case-insensitive keyword match.
	dirIf    string
	dirElif  string
	dirElse  string
	dirEndif string
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithPrefix sets the directive prefix. The prefix is validated when
// the compiler is constructed.
func WithPrefix(prefix string) Option {
	return func(c *Compiler) {
		c.prefix = prefix
	}
}

// NewCompiler creates a Compiler. Without options the directive prefix
// is "#", recognizing #if, #elif, #else, and #endif.
func NewCompiler(opts ...Option) (*Compiler, error) {
	c := &Compiler{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(c)
	}

	if err := ValidatePrefix(c.prefix); err != nil {
		return nil, err
	}

	lower := strings.ToLower(c.prefix)
	c.dirIf = lower + kwIf
	c.dirElif = lower + kwElif
	c.dirElse = lower + kwElse
	c.dirEndif = lower + kwEndif

	return c, nil
}

// ValidatePrefix checks that a directive prefix is non-empty and made
// of ASCII letters, digits, and punctuation only.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("directive prefix must not be empty")
	}
	for i := 0; i < len(prefix); i++ {
		// Printable ASCII excluding space covers letters, digits, and
		// punctuation.
		if ch := prefix[i]; ch <= ' ' || ch >= 0x7f {
			return fmt.Errorf("directive prefix %q contains invalid character %q", prefix, ch)
		}
	}
	return nil
}

// Prefix returns the configured directive prefix.
func (c *Compiler) Prefix() string {
	return c.prefix
}

// Compile compiles a sequence of lines into a template. Lines are
// consumed in a single forward pass; trailing CR/LF is stripped from
// each line.
func (c *Compiler) Compile(lines []string) (*Template, error) {
	blocks, err := c.parse(&lineReader{lines: lines})
	if err != nil {
		return nil, err
	}
	return &Template{blocks: blocks}, nil
}

// CompileString compiles a whole document, splitting it on newlines.
func (c *Compiler) CompileString(text string) (*Template, error) {
	return c.Compile(strings.Split(text, linebreak))
}

// CompileFile compiles the document at path.
func (c *Compiler) CompileFile(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return c.Compile(lines)
}
