package expr

// SymbolSet is the set of symbol names considered active during a
// render. An Ident node evaluates to true iff its name is a member.
type SymbolSet map[string]struct{}

// NewSymbolSet builds a symbol set from the given names.
func NewSymbolSet(names ...string) SymbolSet {
	s := make(SymbolSet, len(names))
	s.Add(names...)
	return s
}

// SymbolSetFromKeys builds a symbol set from the keys of a map; the
// values are ignored.
func SymbolSetFromKeys[V any](m map[string]V) SymbolSet {
	s := make(SymbolSet, len(m))
	for name := range m {
		s[name] = struct{}{}
	}
	return s
}

// Add inserts the given names into the set.
func (s SymbolSet) Add(names ...string) {
	for _, name := range names {
		s[name] = struct{}{}
	}
}

// Has reports whether name is a member of the set.
func (s SymbolSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the member names in unspecified order.
func (s SymbolSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// Evaluate reports whether node holds against the active symbol set.
// The tree is never mutated; the same node may be evaluated against
// many symbol sets concurrently.
func Evaluate(node Node, symbols SymbolSet) bool {
	switch n := node.(type) {
	case *Ident:
		return symbols.Has(n.Name)
	case *Not:
		return !Evaluate(n.Expr, symbols)
	case *And:
		return Evaluate(n.Left, symbols) && Evaluate(n.Right, symbols)
	case *Or:
		return Evaluate(n.Left, symbols) || Evaluate(n.Right, symbols)
	case *True:
		return true
	default:
		return false
	}
}
