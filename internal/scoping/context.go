package scoping

import (
	"fmt"

	"github.com/sirkon/jslower/internal/jsast"
)

// Context binds a scope to the block temporaries are declared in.
type Context struct {
	scope   *jsast.Scope
	block   *jsast.Block
	pending pending
	drained bool
}

// RootContext creates the top level context for a scope and its enclosing block.
func RootContext(scope *jsast.Scope, block *jsast.Block) *Context {
	return NewContext(scope, block)
}

// NewContext creates a context for the given scope targeting the given block.
func NewContext(scope *jsast.Scope, block *jsast.Block) *Context {
	return &Context{
		scope:   scope,
		block:   block,
		pending: noDeclarations{},
	}
}

// InnerBlock creates a context sharing the scope of c while targeting another block.
func (c *Context) InnerBlock(block *jsast.Block) *Context {
	return NewContext(c.scope, block)
}

// Scope returns the namespace temporaries are allocated from.
func (c *Context) Scope() *jsast.Scope {
	return c.scope
}

// Block returns the block the context appends into.
func (c *Context) Block() *jsast.Block {
	return c.block
}

// State returns the current declarations state.
func (c *Context) State() State {
	return c.pending.state()
}

// HasPendingDeclarations checks if the context owns a declaration group.
func (c *Context) HasPendingDeclarations() bool {
	return c.State() == StateHasGroup
}

// Pending returns the declaration group owned by the context, nil if there is none.
func (c *Context) Pending() *jsast.Vars {
	if g, ok := c.pending.(hasGroup); ok {
		return g.vars
	}

	return nil
}

// Drained reports whether the declarations of the context were moved into another one.
// A drained context must not be used for declarations anymore.
func (c *Context) Drained() bool {
	return c.drained
}

// AddStatement appends a statement to the block.
func (c *Context) AddStatement(s jsast.Statement) {
	c.block.Append(s)
}

// DeclareTemporary allocates a temporary and declares it in the pending group
// of the context, creating the group on first use. The declaration is tagged
// with the source of init if it is given, with source otherwise.
func (c *Context) DeclareTemporary(init jsast.Expression, source any) *TemporaryVariable {
	if c.drained {
		panic("scoping: declaration through a drained context")
	}

	var vars *jsast.Vars
	switch p := c.pending.(type) {
	case noDeclarations:
		vars = jsast.MarkSynthetic(jsast.NewVars(), source)
		c.block.Append(vars)
		c.pending = hasGroup{vars: vars}
	case hasGroup:
		vars = p.vars
	default:
		panic(fmt.Sprintf("scoping: unexpected pending state %T", p))
	}

	name := c.scope.DeclareTemporary()
	varSource := source
	if init != nil {
		varSource = jsast.SourceOf(init)
	}
	vars.Add(jsast.MarkSynthetic(&jsast.Var{Name: name}, varSource))

	return &TemporaryVariable{
		name:   name,
		init:   init,
		source: varSource,
	}
}

// DefineTemporary declares a temporary initialized with init, puts its assignment
// into the block and returns a reference to it.
func (c *Context) DefineTemporary(init jsast.Expression, source any) jsast.Expression {
	tmp := c.DeclareTemporary(init, source)
	c.AddStatement(tmp.AssignmentStatement())

	return tmp.Reference()
}

// MoveVarsFrom takes over pending declarations of donor.
//
//   - Nothing happens when donor has no declarations.
//   - If c has no declarations yet, donor's group becomes c's one. It is moved
//     to the end of c's block unless it already resides there.
//   - Otherwise donor's declarations are appended to c's group and donor's
//     group is removed from donor's block.
//
// Donor ends up with no declarations and cannot declare temporaries anymore.
func (c *Context) MoveVarsFrom(donor *Context) {
	if donor == c {
		panic("scoping: context cannot take declarations from itself")
	}

	d, ok := donor.pending.(hasGroup)
	if !ok {
		return
	}
	if c.drained {
		panic("scoping: moving declarations into a drained context")
	}

	switch r := c.pending.(type) {
	case noDeclarations:
		if !c.block.Contains(d.vars) {
			donor.block.Remove(d.vars)
			c.block.Append(d.vars)
		}
		c.pending = d
	case hasGroup:
		r.vars.TakeAll(d.vars)
		if !donor.block.Remove(d.vars) {
			// The donor block was spliced into ours already.
			c.block.Remove(d.vars)
		}
	default:
		panic(fmt.Sprintf("scoping: unexpected pending state %T", r))
	}

	donor.pending = noDeclarations{}
	donor.drained = true
}
