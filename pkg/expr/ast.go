package expr

// Node is the interface for all expression AST nodes. The variant set
// is closed: Ident, Not, And, Or, and True.
type Node interface {
	// Equal reports structural equality with another node.
	Equal(Node) bool
	String() string
	node() // marker method to restrict implementation
}

// Ident evaluates to true iff its name is in the active symbol set.
type Ident struct {
	Name string
}

// Not negates its inner expression.
type Not struct {
	Expr Node
}

// And is the conjunction of two expressions.
type And struct {
	Left  Node
	Right Node
}

// Or is the disjunction of two expressions.
type Or struct {
	Left  Node
	Right Node
}

// True is unconditionally true. The template compiler uses it as the
// guard of an else branch.
type True struct{}

func (*Ident) node() {}
func (*Not) node()   {}
func (*And) node()   {}
func (*Or) node()    {}
func (*True) node()  {}

func (n *Ident) Equal(other Node) bool {
	o, ok := other.(*Ident)
	return ok && n.Name == o.Name
}

func (n *Not) Equal(other Node) bool {
	o, ok := other.(*Not)
	return ok && n.Expr.Equal(o.Expr)
}

func (n *And) Equal(other Node) bool {
	o, ok := other.(*And)
	return ok && n.Left.Equal(o.Left) && n.Right.Equal(o.Right)
}

func (n *Or) Equal(other Node) bool {
	o, ok := other.(*Or)
	return ok && n.Left.Equal(o.Left) && n.Right.Equal(o.Right)
}

func (n *True) Equal(other Node) bool {
	_, ok := other.(*True)
	return ok
}

func (n *Ident) String() string { return n.Name }
func (n *Not) String() string   { return "not " + n.Expr.String() }
func (n *And) String() string   { return "(" + n.Left.String() + " and " + n.Right.String() + ")" }
func (n *Or) String() string    { return "(" + n.Left.String() + " or " + n.Right.String() + ")" }
func (n *True) String() string  { return "true" }
