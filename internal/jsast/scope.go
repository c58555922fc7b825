package jsast

import (
	"strconv"
)

// DefaultTempPrefix is used to spell temporaries unless a scope tree is given another one.
const DefaultTempPrefix = "tmp$"

// Scope is a namespace of identifiers. Scopes form a tree and all scopes of
// the tree allocate temporaries from the same counter.
type Scope struct {
	parent      *Scope
	description string
	names       map[string]*Name
	temps       *tempCounter
}

type tempCounter struct {
	prefix string
	next   int
}

// NewRootScope creates the topmost scope of a tree. An empty prefix stands for [DefaultTempPrefix].
func NewRootScope(description, tempPrefix string) *Scope {
	if tempPrefix == "" {
		tempPrefix = DefaultTempPrefix
	}

	return &Scope{
		description: description,
		names:       map[string]*Name{},
		temps:       &tempCounter{prefix: tempPrefix},
	}
}

// Child creates a nested scope.
func (s *Scope) Child(description string) *Scope {
	return &Scope{
		parent:      s,
		description: description,
		names:       map[string]*Name{},
		temps:       s.temps,
	}
}

// Parent returns the enclosing scope or nil for a root one.
func (s *Scope) Parent() *Scope {
	return s.parent
}

func (s *Scope) Description() string {
	return s.description
}

// DeclareName returns a name with the given identifier declared in this very
// scope, creating it if needed. Names of outer scopes are shadowed.
func (s *Scope) DeclareName(ident string) *Name {
	if n, ok := s.names[ident]; ok {
		return n
	}

	return s.add(ident, false)
}

// FindName looks the identifier up through the scope chain.
func (s *Scope) FindName(ident string) *Name {
	for cur := s; cur != nil; cur = cur.parent {
		if n, ok := cur.names[ident]; ok {
			return n
		}
	}

	return nil
}

// HasOwnName checks if the identifier is declared in this scope itself.
func (s *Scope) HasOwnName(ident string) bool {
	_, ok := s.names[ident]
	return ok
}

// DeclareFreshName declares a name which is not visible anywhere in the chain.
// The suggested identifier is kept when possible, otherwise it gets _1, _2, … suffix.
func (s *Scope) DeclareFreshName(suggested string) *Name {
	ident := suggested
	for i := 1; s.FindName(ident) != nil; i++ {
		ident = suggested + "_" + strconv.Itoa(i)
	}

	return s.add(ident, false)
}

// DeclareTemporary allocates a new temporary name. It never fails.
func (s *Scope) DeclareTemporary() *Name {
	for {
		ident := s.temps.prefix + strconv.Itoa(s.temps.next)
		s.temps.next++
		if s.FindName(ident) == nil {
			return s.add(ident, true)
		}
	}
}

func (s *Scope) add(ident string, temporary bool) *Name {
	n := &Name{
		Ident:     ident,
		Temporary: temporary,
		scope:     s,
	}
	s.names[ident] = n

	return n
}
