package jsast

// Name is an identifier allocated by a [Scope].
type Name struct {
	Ident string

	// Temporary is set for names created with [Scope.DeclareTemporary].
	Temporary bool

	scope *Scope
}

// Scope returns the scope the name was declared in.
func (n *Name) Scope() *Scope {
	return n.scope
}

// Ref creates a new reference to the name.
func (n *Name) Ref() *NameRef {
	return &NameRef{Name: n}
}

func (n *Name) String() string {
	return n.Ident
}
