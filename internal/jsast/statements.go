package jsast

// ExprStatement is an expression evaluated for its side effects.
type ExprStatement struct {
	Meta

	Expr Expression
}

// Return statement. Expr is nil for a bare return.
type Return struct {
	Meta

	Expr Expression
}

// If statement. Else is nil when there is no else branch, it may be another *If.
type If struct {
	Meta

	Cond Expression
	Then Statement
	Else Statement
}

// While loop.
type While struct {
	Meta

	Cond Expression
	Body Statement
}

// Break statement.
type Break struct {
	Meta
}

// Continue statement.
type Continue struct {
	Meta
}

// Throw statement.
type Throw struct {
	Meta

	Expr Expression
}

// Empty statement. The lowering pass emits it in place of constructs it could not translate.
type Empty struct {
	Meta
}

// AsStatement wraps an expression into a statement sharing the expression source.
func AsStatement(e Expression) *ExprStatement {
	return &ExprStatement{
		Meta: Meta{Source: e.Metadata().Source, Synthetic: e.Metadata().Synthetic},
		Expr: e,
	}
}

func (*ExprStatement) isNode()      {}
func (*ExprStatement) isStatement() {}
func (*Return) isNode()             {}
func (*Return) isStatement()        {}
func (*If) isNode()                 {}
func (*If) isStatement()            {}
func (*While) isNode()              {}
func (*While) isStatement()         {}
func (*Break) isNode()              {}
func (*Break) isStatement()         {}
func (*Continue) isNode()           {}
func (*Continue) isStatement()      {}
func (*Throw) isNode()              {}
func (*Throw) isStatement()         {}
func (*Empty) isNode()              {}
func (*Empty) isStatement()         {}
