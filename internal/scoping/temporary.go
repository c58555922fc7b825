package scoping

import (
	"github.com/sirkon/jslower/internal/jsast"
)

// TemporaryVariable is a handle of a declared temporary. It pairs the name
// with the expression the temporary stands for.
type TemporaryVariable struct {
	name   *jsast.Name
	init   jsast.Expression
	source any
}

// Name returns the allocated name.
func (v *TemporaryVariable) Name() *jsast.Name {
	return v.name
}

// InitExpression returns the expression the temporary holds, nil if it is to be initialized later.
func (v *TemporaryVariable) InitExpression() jsast.Expression {
	return v.init
}

// Reference creates a synthetic reference to the temporary.
func (v *TemporaryVariable) Reference() *jsast.NameRef {
	return jsast.MarkSynthetic(v.name.Ref(), v.source)
}

// Assignment creates `tmp = init` expression. Panics if there is no init expression.
func (v *TemporaryVariable) Assignment() *jsast.Binary {
	if v.init == nil {
		panic("scoping: temporary " + v.name.Ident + " has no init expression")
	}

	return jsast.MarkSynthetic(jsast.Assign(v.Reference(), v.init), v.source)
}

// AssignmentStatement wraps [TemporaryVariable.Assignment] into a statement.
func (v *TemporaryVariable) AssignmentStatement() *jsast.ExprStatement {
	return jsast.AsStatement(v.Assignment())
}
