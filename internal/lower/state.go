package lower

import (
	"go/ast"

	"github.com/sirkon/jslower/internal/jsast"
)

// env maps Go identifiers of a lexical block to JS names.
type env struct {
	parent *env
	names  map[string]*jsast.Name
}

func newEnv(parent *env) *env {
	return &env{parent: parent, names: map[string]*jsast.Name{}}
}

func (e *env) lookup(ident string) *jsast.Name {
	for cur := e; cur != nil; cur = cur.parent {
		if n, ok := cur.names[ident]; ok {
			return n
		}
	}

	return nil
}

func (e *env) own(ident string) *jsast.Name {
	return e.names[ident]
}

func (e *env) bind(ident string, name *jsast.Name) {
	e.names[ident] = name
}

type flowKind int

const (
	flowLoop flowKind = iota + 1
	flowSwitch
)

// flow is a stack of constructs break and continue may refer to.
type flow struct {
	parent *flow
	kind   flowKind

	// post is the post statement of a three-clause loop. It must run before continue.
	post ast.Stmt
	// env is where names of post are resolved.
	env *env
}

// funcState is the lowering state of a Go lexical block within a JS function.
type funcState struct {
	scope   *jsast.Scope
	env     *env
	results []*jsast.Name
	flow    *flow
}

// nest opens a Go lexical block.
func (st *funcState) nest() *funcState {
	cp := *st
	cp.env = newEnv(st.env)
	return &cp
}

func (st *funcState) withFlow(kind flowKind, post ast.Stmt) *funcState {
	cp := *st
	cp.flow = &flow{parent: st.flow, kind: kind, post: post, env: st.env}
	return &cp
}

// define binds a Go identifier of the current block to a name fresh in the JS function scope.
func (st *funcState) define(ident string) *jsast.Name {
	name := st.scope.DeclareFreshName(ident)
	st.env.bind(ident, name)
	return name
}

func (st *funcState) nearestLoop() *flow {
	for f := st.flow; f != nil; f = f.parent {
		if f.kind == flowLoop {
			return f
		}
	}

	return nil
}
