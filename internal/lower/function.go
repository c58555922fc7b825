package lower

import (
	"go/ast"

	"github.com/sirkon/jslower/internal/jsast"
	"github.com/sirkon/jslower/internal/scoping"
)

// function lowers a function declaration or literal. The function gets a scope
// of its own nested into the enclosing one, and its body is lowered through a
// root context of that scope.
func (l *Lowerer) function(outer *funcState, ft *ast.FuncType, body *ast.BlockStmt, desc string, node ast.Node) *jsast.Function {
	scope := outer.scope.Child(desc)
	st := &funcState{
		scope: scope,
		env:   newEnv(outer.env),
	}

	fn := &jsast.Function{
		Meta:  meta(node),
		Body:  jsast.NewBlock(),
		Scope: scope,
	}
	fn.Body.Source = src(body)

	for _, field := range fieldList(ft.Params) {
		if len(field.Names) == 0 {
			fn.Params = append(fn.Params, &jsast.Param{Meta: meta(field), Name: scope.DeclareFreshName("p")})
			continue
		}
		for _, id := range field.Names {
			fn.Params = append(fn.Params, &jsast.Param{Meta: meta(id), Name: st.define(id.Name)})
		}
	}

	ctx := scoping.RootContext(scope, fn.Body)

	// Named results are plain locals initialized with zero values.
	var results *jsast.Vars
	for _, field := range fieldList(ft.Results) {
		for _, id := range field.Names {
			name := st.define(id.Name)
			st.results = append(st.results, name)
			if results == nil {
				results = jsast.NewVars()
				results.Source = src(ft.Results)
				ctx.AddStatement(results)
			}
			results.Add(&jsast.Var{Meta: meta(id), Name: name, Init: zeroValue(field.Type)})
		}
	}

	l.stmts(ctx, st, body.List)

	return fn
}

func fieldList(fl *ast.FieldList) []*ast.Field {
	if fl == nil {
		return nil
	}
	return fl.List
}

// zeroValue returns the JS rendering of a zero value of the Go type.
func zeroValue(typ ast.Expr) jsast.Expression {
	var res jsast.Expression
	switch t := typ.(type) {
	case *ast.Ident:
		switch t.Name {
		case "int", "int8", "int16", "int32", "int64",
			"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
			"float32", "float64", "byte", "rune":
			res = &jsast.Number{Value: "0"}
		case "string":
			res = &jsast.String{}
		case "bool":
			res = &jsast.Bool{}
		}
	case *ast.ArrayType:
		if t.Len == nil {
			res = &jsast.Null{}
		} else {
			res = &jsast.ArrayLit{}
		}
	}
	if res == nil {
		res = &jsast.Null{}
	}

	return jsast.MarkSynthetic(res, src(typ))
}
