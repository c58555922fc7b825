package lower

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"github.com/sirkon/jslower/internal/config"
	"github.com/sirkon/jslower/internal/jsast"
	"github.com/sirkon/jslower/internal/rules"
)

func (l *Lowerer) exprs(st *funcState, list []ast.Expr) []jsast.Expression {
	if len(list) == 0 {
		return nil
	}

	res := make([]jsast.Expression, len(list))
	for i, e := range list {
		res[i] = l.expr(st, e)
	}

	return res
}

func (l *Lowerer) expr(st *funcState, e ast.Expr) jsast.Expression {
	switch x := e.(type) {
	case *ast.Ident:
		return l.ident(st, x)
	case *ast.BasicLit:
		return l.basicLit(x)
	case *ast.ParenExpr:
		return l.expr(st, x.X)
	case *ast.BinaryExpr:
		return l.binary(st, x)
	case *ast.UnaryExpr:
		return l.unary(st, x)
	case *ast.CallExpr:
		return l.call(st, x)
	case *ast.SelectorExpr:
		if id, ok := x.X.(*ast.Ident); ok && l.isPackage(st, id.Name) {
			return l.unsupportedExpr(x, "reference to "+id.Name+"."+x.Sel.Name)
		}
		return &jsast.Member{Meta: meta(x), X: l.expr(st, x.X), Sel: x.Sel.Name}
	case *ast.IndexExpr:
		return &jsast.Index{Meta: meta(x), X: l.expr(st, x.X), Index: l.expr(st, x.Index)}
	case *ast.SliceExpr:
		return l.slice(st, x)
	case *ast.FuncLit:
		return l.function(st, x.Type, x.Body, "func literal", x)
	case *ast.CompositeLit:
		return l.compositeLit(st, x)
	case *ast.StarExpr:
		return l.unsupportedExpr(x, "pointer dereference")
	case *ast.TypeAssertExpr:
		return l.unsupportedExpr(x, "type assertion")
	case *ast.IndexListExpr:
		return l.unsupportedExpr(x, "generic instantiation")
	default:
		return l.unsupportedExpr(e, "expression")
	}
}

// unsupportedExpr reports the expression and renders it as undefined.
func (l *Lowerer) unsupportedExpr(e ast.Expr, what string) jsast.Expression {
	l.rep.Reportf(rules.UnsupportedExpression(), e.Pos(), "%s is not lowered", what)
	return jsast.MarkSynthetic(l.global.DeclareName("undefined").Ref(), src(e))
}

func (l *Lowerer) ident(st *funcState, id *ast.Ident) jsast.Expression {
	if name := st.env.lookup(id.Name); name != nil {
		return &jsast.NameRef{Meta: meta(id), Name: name}
	}

	switch id.Name {
	case "nil":
		return &jsast.Null{Meta: meta(id)}
	case "true", "false":
		return &jsast.Bool{Meta: meta(id), Value: id.Name == "true"}
	case "iota":
		return l.unsupportedExpr(id, "iota")
	}

	// Package level names of other files.
	return &jsast.NameRef{Meta: meta(id), Name: l.global.DeclareName(id.Name)}
}

func (l *Lowerer) basicLit(x *ast.BasicLit) jsast.Expression {
	switch x.Kind {
	case token.INT:
		v := strings.ReplaceAll(x.Value, "_", "")
		if len(v) > 1 && v[0] == '0' && v[1] >= '0' && v[1] <= '9' {
			// Legacy octal form is not allowed in strict JS.
			v = "0o" + v[1:]
		}
		return &jsast.Number{Meta: meta(x), Value: v}
	case token.FLOAT:
		return &jsast.Number{Meta: meta(x), Value: strings.ReplaceAll(x.Value, "_", "")}
	case token.CHAR:
		r, _, _, err := strconv.UnquoteChar(x.Value[1:len(x.Value)-1], '\'')
		if err != nil {
			return l.unsupportedExpr(x, "character literal "+x.Value)
		}
		return &jsast.Number{Meta: meta(x), Value: strconv.Itoa(int(r))}
	case token.STRING:
		v, err := strconv.Unquote(x.Value)
		if err != nil {
			return l.unsupportedExpr(x, "string literal")
		}
		return &jsast.String{Meta: meta(x), Value: v}
	default:
		return l.unsupportedExpr(x, x.Kind.String()+" literal")
	}
}

func (l *Lowerer) binary(st *funcState, x *ast.BinaryExpr) jsast.Expression {
	left := l.expr(st, x.X)
	right := l.expr(st, x.Y)

	op := x.Op.String()
	switch x.Op {
	case token.EQL:
		op = "==="
	case token.NEQ:
		op = "!=="
	case token.AND_NOT:
		op = "&"
		right = &jsast.Unary{Meta: meta(x.Y), Op: "~", X: right}
	case token.QUO:
		if l.isInteger(x) {
			return l.truncated(x, &jsast.Binary{Meta: meta(x), Op: op, Left: left, Right: right})
		}
	}

	return &jsast.Binary{Meta: meta(x), Op: op, Left: left, Right: right}
}

// isInteger checks if the expression is known to be of an integer type.
func (l *Lowerer) isInteger(e ast.Expr) bool {
	if l.info == nil {
		return false
	}

	var typ types.Type
	if tv, ok := l.info.Types[e]; ok {
		typ = tv.Type
	} else if id, ok := ast.Unparen(e).(*ast.Ident); ok {
		if obj := l.info.ObjectOf(id); obj != nil {
			typ = obj.Type()
		}
	}
	if typ == nil {
		return false
	}

	basic, ok := typ.Underlying().(*types.Basic)
	return ok && basic.Info()&types.IsInteger != 0
}

// truncated drops the fractional part of a quotient: Go integer division truncates toward zero.
func (l *Lowerer) truncated(n ast.Node, quotient jsast.Expression) jsast.Expression {
	return jsast.MarkSynthetic(&jsast.Call{
		Fn:   jsast.MarkSynthetic(&jsast.Member{X: l.target("Math", n), Sel: "trunc"}, src(n)),
		Args: []jsast.Expression{quotient},
	}, src(n))
}

func (l *Lowerer) unary(st *funcState, x *ast.UnaryExpr) jsast.Expression {
	switch x.Op {
	case token.ARROW:
		return l.unsupportedExpr(x, "channel receive")
	case token.AND:
		if _, ok := ast.Unparen(x.X).(*ast.CompositeLit); ok {
			return l.expr(st, x.X)
		}
		return l.unsupportedExpr(x, "address taking")
	case token.XOR:
		return &jsast.Unary{Meta: meta(x), Op: "~", X: l.expr(st, x.X)}
	default:
		return &jsast.Unary{Meta: meta(x), Op: x.Op.String(), X: l.expr(st, x.X)}
	}
}

func (l *Lowerer) slice(st *funcState, x *ast.SliceExpr) jsast.Expression {
	if x.Slice3 {
		return l.unsupportedExpr(x, "full slice expression")
	}

	var args []jsast.Expression
	switch {
	case x.Low != nil:
		args = append(args, l.expr(st, x.Low))
	case x.High != nil:
		args = append(args, jsast.MarkSynthetic(&jsast.Number{Value: "0"}, src(x)))
	}
	if x.High != nil {
		args = append(args, l.expr(st, x.High))
	}

	return &jsast.Call{
		Meta: meta(x),
		Fn:   jsast.MarkSynthetic(&jsast.Member{X: l.expr(st, x.X), Sel: "slice"}, src(x)),
		Args: args,
	}
}

func (l *Lowerer) compositeLit(st *funcState, x *ast.CompositeLit) jsast.Expression {
	if _, ok := x.Type.(*ast.ArrayType); !ok {
		return l.unsupportedExpr(x, "composite literal")
	}

	arr := &jsast.ArrayLit{Meta: meta(x)}
	for _, elt := range x.Elts {
		if _, ok := elt.(*ast.KeyValueExpr); ok {
			return l.unsupportedExpr(x, "indexed array literal")
		}
		arr.Elems = append(arr.Elems, l.expr(st, elt))
	}

	return arr
}

var numericTypes = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,
	"float32": true, "float64": true, "byte": true, "rune": true,
}

func (l *Lowerer) call(st *funcState, x *ast.CallExpr) jsast.Expression {
	// Numeric conversions are no-ops for JS numbers.
	if id, ok := ast.Unparen(x.Fun).(*ast.Ident); ok && len(x.Args) == 1 && numericTypes[id.Name] && !l.isDeclared(st, id.Name) {
		return l.expr(st, x.Args[0])
	}

	callee, ok := l.callee(st, x)
	if !ok {
		if sel, isSel := ast.Unparen(x.Fun).(*ast.SelectorExpr); isSel {
			if id, isID := sel.X.(*ast.Ident); isID && l.isPackage(st, id.Name) {
				return l.unsupportedExpr(x, "call of "+id.Name+"."+sel.Sel.Name)
			}
		}
		if x.Ellipsis.IsValid() {
			return l.unsupportedExpr(x, "variadic call")
		}
		return &jsast.Call{Meta: meta(x), Fn: l.expr(st, x.Fun), Args: l.exprs(st, x.Args)}
	}

	switch callee.Kind {
	case config.CalleeKindCall:
		return &jsast.Call{Meta: meta(x), Fn: l.target(callee.Target, x.Fun), Args: l.exprs(st, x.Args)}
	case config.CalleeKindLength:
		if len(x.Args) != 1 {
			return l.unsupportedExpr(x, "length call with wrong arguments")
		}
		return &jsast.Member{Meta: meta(x), X: l.expr(st, x.Args[0]), Sel: "length"}
	case config.CalleeKindConcat:
		if len(x.Args) == 0 {
			return l.unsupportedExpr(x, "concat call without arguments")
		}
		var arg jsast.Expression
		if x.Ellipsis.IsValid() {
			if len(x.Args) != 2 {
				return l.unsupportedExpr(x, "variadic concat call")
			}
			arg = l.expr(st, x.Args[1])
		} else {
			arg = &jsast.ArrayLit{Meta: meta(x), Elems: l.exprs(st, x.Args[1:])}
		}
		return &jsast.Call{
			Meta: meta(x),
			Fn:   jsast.MarkSynthetic(&jsast.Member{X: l.expr(st, x.Args[0]), Sel: "concat"}, src(x.Fun)),
			Args: []jsast.Expression{arg},
		}
	default:
		return l.unsupportedExpr(x, callee.Kind.String()+" call in expression")
	}
}

// callee looks up a dedicated rendering of the called function.
func (l *Lowerer) callee(st *funcState, call *ast.CallExpr) (config.Callee, bool) {
	var ref config.Reference
	switch f := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		if l.isDeclared(st, f.Name) {
			return config.Callee{}, false
		}
		ref = config.Reference{Package: builtinPackage, Name: f.Name}
	case *ast.SelectorExpr:
		pkg, ok := f.X.(*ast.Ident)
		if !ok || !l.isPackage(st, pkg.Name) {
			return config.Callee{}, false
		}
		ref = config.Reference{Package: l.imports[pkg.Name], Name: f.Sel.Name}
	default:
		return config.Callee{}, false
	}

	return l.callees.lookup(ref)
}

// thrown builds the value thrown in place of an execution abandoning call.
func (l *Lowerer) thrown(st *funcState, call *ast.CallExpr, callee config.Callee) jsast.Expression {
	if callee.Target == "" {
		if len(call.Args) == 0 {
			return jsast.MarkSynthetic(l.global.DeclareName("undefined").Ref(), src(call))
		}
		return l.expr(st, call.Args[0])
	}

	return &jsast.Call{Meta: meta(call), Fn: l.target(callee.Target, call.Fun), Args: l.exprs(st, call.Args)}
}

// target renders a dotted JS path like console.log.
func (l *Lowerer) target(path string, fun ast.Node) jsast.Expression {
	parts := strings.Split(path, ".")

	var res jsast.Expression = jsast.MarkSynthetic(l.global.DeclareName(parts[0]).Ref(), src(fun))
	for _, sel := range parts[1:] {
		res = jsast.MarkSynthetic(&jsast.Member{X: res, Sel: sel}, src(fun))
	}

	return res
}

// isDeclared checks if the identifier is a local or package level name of the file.
func (l *Lowerer) isDeclared(st *funcState, ident string) bool {
	return st.env.lookup(ident) != nil
}

func (l *Lowerer) isPackage(st *funcState, ident string) bool {
	if l.isDeclared(st, ident) {
		return false
	}
	_, ok := l.imports[ident]
	return ok
}
