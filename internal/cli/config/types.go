// Package config provides configuration management for the ppdpy CLI.
// Configuration is merged from a project file (ppdpy.yaml), environment
// variables, and command-line flags.
package config

import (
	"fmt"
	"sort"

	"github.com/ericvoid/ppdpy/pkg/expr"
)

// Config holds all CLI configuration options.
type Config struct {
	// Prefix is the directive prefix recognized by the compiler.
	Prefix string `koanf:"prefix"`

	// Symbols are always active, regardless of profile.
	Symbols []string `koanf:"symbols"`

	// Profiles are named symbol sets selectable with --profile.
	Profiles map[string][]string `koanf:"profiles"`

	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultPrefix = "#"
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// SymbolSetFor resolves the active symbol set: the base symbols plus
// the named profile's symbols plus any extra definitions (typically
// from -D flags). An empty profile name selects no profile.
func (c *Config) SymbolSetFor(profile string, defines []string) (expr.SymbolSet, error) {
	set := expr.NewSymbolSet(c.Symbols...)

	if profile != "" {
		names, ok := c.Profiles[profile]
		if !ok {
			return nil, fmt.Errorf("unknown profile %q (have: %v)", profile, c.ProfileNames())
		}
		set.Add(names...)
	}

	set.Add(defines...)
	return set, nil
}

// ProfileNames returns the configured profile names, sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
