package jsast

// NameRef references a [Name].
type NameRef struct {
	Meta

	Name *Name
}

// Number literal kept in its source spelling.
type Number struct {
	Meta

	Value string
}

// String literal holding an unquoted value.
type String struct {
	Meta

	Value string
}

// Bool literal.
type Bool struct {
	Meta

	Value bool
}

// Null literal.
type Null struct {
	Meta
}

// Binary operation, assignments included.
//
//	a + b  // Binary{Op: "+", Left: a, Right: b}
//	a = b  // Binary{Op: "=", Left: a, Right: b}
type Binary struct {
	Meta

	Op    string
	Left  Expression
	Right Expression
}

// Unary operation. Postfix is set for a++ and a--.
type Unary struct {
	Meta

	Op      string
	X       Expression
	Postfix bool
}

// Call expression.
type Call struct {
	Meta

	Fn   Expression
	Args []Expression
}

// Member access: X.Sel
type Member struct {
	Meta

	X   Expression
	Sel string
}

// Index access: X[Index]
type Index struct {
	Meta

	X     Expression
	Index Expression
}

// Conditional is a ternary expression.
type Conditional struct {
	Meta

	Cond Expression
	Then Expression
	Else Expression
}

// ArrayLit is an array literal.
type ArrayLit struct {
	Meta

	Elems []Expression
}

// Assign creates an assignment expression.
func Assign(dst, src Expression) *Binary {
	return &Binary{Op: "=", Left: dst, Right: src}
}

func (*NameRef) isNode()           {}
func (*NameRef) isExpression()     {}
func (*Number) isNode()            {}
func (*Number) isExpression()      {}
func (*String) isNode()            {}
func (*String) isExpression()      {}
func (*Bool) isNode()              {}
func (*Bool) isExpression()        {}
func (*Null) isNode()              {}
func (*Null) isExpression()        {}
func (*Binary) isNode()            {}
func (*Binary) isExpression()      {}
func (*Unary) isNode()             {}
func (*Unary) isExpression()       {}
func (*Call) isNode()              {}
func (*Call) isExpression()        {}
func (*Member) isNode()            {}
func (*Member) isExpression()      {}
func (*Index) isNode()             {}
func (*Index) isExpression()       {}
func (*Conditional) isNode()       {}
func (*Conditional) isExpression() {}
func (*ArrayLit) isNode()          {}
func (*ArrayLit) isExpression()    {}
