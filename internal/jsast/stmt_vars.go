package jsast

// Vars is a declaration group: a single `var` statement declaring one or more variables.
//
//	var a = 1, tmp$0, tmp$1; // Vars{Var{a, 1}, Var{tmp$0}, Var{tmp$1}}
type Vars struct {
	Meta

	vars []*Var
}

// Var is a single declaration of a [Vars] group. Init may be nil.
type Var struct {
	Meta

	Name *Name
	Init Expression
}

// NewVars creates a declaration group with the given entries.
func NewVars(vars ...*Var) *Vars {
	return &Vars{vars: vars}
}

// Add appends a declaration to the group.
func (v *Vars) Add(x *Var) {
	v.vars = append(v.vars, x)
}

// TakeAll moves all declarations of other into v keeping their order. Other is left empty.
func (v *Vars) TakeAll(other *Vars) {
	if other == v {
		return
	}

	v.vars = append(v.vars, other.vars...)
	other.vars = nil
}

// Vars returns declarations of the group. The slice must not be modified.
func (v *Vars) Vars() []*Var {
	return v.vars
}

// Len returns the number of declarations.
func (v *Vars) Len() int {
	return len(v.vars)
}

// IsEmpty checks if the group declares nothing.
func (v *Vars) IsEmpty() bool {
	return len(v.vars) == 0
}

func (*Vars) isNode()      {}
func (*Vars) isStatement() {}
func (*Var) isNode()       {}
