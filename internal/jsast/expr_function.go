package jsast

// Function is a function expression (lambda). It owns a scope of its own
// where parameters and body locals are declared.
//
//	function (a, b) { return a + b; } // Params: [a b], Body: {return a + b;}
type Function struct {
	Meta

	Name   *Name // optional
	Params []*Param
	Body   *Block
	Scope  *Scope
}

// Param is a single function parameter.
type Param struct {
	Meta

	Name *Name
}

func (*Function) isNode()       {}
func (*Function) isExpression() {}
func (*Param) isNode()          {}
