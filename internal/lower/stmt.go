package lower

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/jslower/internal/config"
	"github.com/sirkon/jslower/internal/jsast"
	"github.com/sirkon/jslower/internal/rules"
	"github.com/sirkon/jslower/internal/scoping"
)

func (l *Lowerer) stmts(ctx *scoping.Context, st *funcState, list []ast.Stmt) {
	for _, s := range list {
		l.stmt(ctx, st, s)
	}
}

func (l *Lowerer) stmt(ctx *scoping.Context, st *funcState, s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ExprStmt:
		l.exprStmt(ctx, st, s)
	case *ast.AssignStmt:
		l.assign(ctx, st, s)
	case *ast.DeclStmt:
		if d, ok := s.Decl.(*ast.GenDecl); ok {
			l.genDecl(ctx, st, d)
			return
		}
		l.unsupported(ctx, rules.UnsupportedDeclaration(), s, "declaration")
	case *ast.IncDecStmt:
		x := &jsast.Unary{Meta: meta(s), Op: s.Tok.String(), X: l.expr(st, s.X), Postfix: true}
		ctx.AddStatement(jsast.AsStatement(x))
	case *ast.ReturnStmt:
		l.returnStmt(ctx, st, s)
	case *ast.BlockStmt:
		l.nestedBlock(ctx, st, s)
	case *ast.IfStmt:
		l.ifStmt(ctx, st, s)
	case *ast.ForStmt:
		l.forStmt(ctx, st, s)
	case *ast.SwitchStmt:
		l.switchStmt(ctx, st, s)
	case *ast.BranchStmt:
		l.branch(ctx, st, s)
	case *ast.EmptyStmt:
	case *ast.RangeStmt:
		l.unsupported(ctx, rules.UnsupportedLoop(), s, "range loop")
	case *ast.GoStmt:
		l.unsupported(ctx, rules.UnsupportedStatement(), s, "go statement")
	case *ast.DeferStmt:
		l.unsupported(ctx, rules.UnsupportedStatement(), s, "defer statement")
	case *ast.SelectStmt:
		l.unsupported(ctx, rules.UnsupportedStatement(), s, "select statement")
	case *ast.SendStmt:
		l.unsupported(ctx, rules.UnsupportedStatement(), s, "channel send")
	case *ast.LabeledStmt:
		l.unsupported(ctx, rules.UnsupportedStatement(), s, "labeled statement")
	case *ast.TypeSwitchStmt:
		l.unsupported(ctx, rules.UnsupportedStatement(), s, "type switch")
	default:
		l.unsupported(ctx, rules.UnsupportedStatement(), s, "statement")
	}
}

// unsupported reports the construct and leaves an empty statement in its place.
func (l *Lowerer) unsupported(ctx *scoping.Context, rule rules.Rule, n ast.Node, what string) {
	l.rep.Reportf(rule, n.Pos(), "%s is not lowered", what)
	ctx.AddStatement(&jsast.Empty{Meta: meta(n)})
}

func (l *Lowerer) exprStmt(ctx *scoping.Context, st *funcState, s *ast.ExprStmt) {
	if call, ok := ast.Unparen(s.X).(*ast.CallExpr); ok {
		if callee, ok := l.callee(st, call); ok && callee.Kind == config.CalleeKindThrow {
			ctx.AddStatement(&jsast.Throw{Meta: meta(s), Expr: l.thrown(st, call, callee)})
			return
		}
	}

	x := l.expr(st, s.X)
	stmt := jsast.AsStatement(x)
	stmt.Source = src(s)
	ctx.AddStatement(stmt)
}

func (l *Lowerer) returnStmt(ctx *scoping.Context, st *funcState, s *ast.ReturnStmt) {
	ret := &jsast.Return{Meta: meta(s)}

	switch len(s.Results) {
	case 0:
		switch len(st.results) {
		case 0:
		case 1:
			ret.Expr = jsast.MarkSynthetic(st.results[0].Ref(), src(s))
		default:
			arr := jsast.MarkSynthetic(&jsast.ArrayLit{}, src(s))
			for _, r := range st.results {
				arr.Elems = append(arr.Elems, jsast.MarkSynthetic(r.Ref(), src(s)))
			}
			ret.Expr = arr
		}
	case 1:
		ret.Expr = l.expr(st, s.Results[0])
	default:
		ret.Expr = &jsast.ArrayLit{Meta: meta(s), Elems: l.exprs(st, s.Results)}
	}

	ctx.AddStatement(ret)
}

func (l *Lowerer) branch(ctx *scoping.Context, st *funcState, s *ast.BranchStmt) {
	if s.Label != nil {
		l.unsupported(ctx, rules.UnsupportedStatement(), s, "labeled "+s.Tok.String())
		return
	}

	switch s.Tok {
	case token.BREAK:
		if st.flow != nil && st.flow.kind == flowSwitch {
			l.unsupported(ctx, rules.UnsupportedStatement(), s, "break out of switch")
			return
		}
		ctx.AddStatement(&jsast.Break{Meta: meta(s)})
	case token.CONTINUE:
		if loop := st.nearestLoop(); loop != nil && loop.post != nil {
			postSt := *st
			postSt.env = loop.env
			l.stmt(ctx, &postSt, loop.post)
		}
		ctx.AddStatement(&jsast.Continue{Meta: meta(s)})
	default:
		l.unsupported(ctx, rules.UnsupportedStatement(), s, s.Tok.String())
	}
}

// genDecl lowers variable and constant declarations.
func (l *Lowerer) genDecl(ctx *scoping.Context, st *funcState, d *ast.GenDecl) {
	switch d.Tok {
	case token.IMPORT, token.TYPE:
		// Types have no runtime rendering.
		return
	case token.VAR, token.CONST:
	default:
		l.rep.Reportf(rules.UnsupportedDeclaration(), d.Pos(), "%s declaration is not lowered", d.Tok)
		return
	}

	for _, spec := range d.Specs {
		vs := spec.(*ast.ValueSpec)
		if d.Tok == token.CONST && len(vs.Values) == 0 {
			l.rep.Reportf(rules.UnsupportedDeclaration(), vs.Pos(), "implicitly repeated constant is not lowered")
			continue
		}
		if len(vs.Values) > 0 && len(vs.Values) != len(vs.Names) {
			l.unsupported(ctx, rules.MultiValueAssignment(), vs, "multi-value declaration")
			continue
		}

		values := l.exprs(st, vs.Values)
		vars := jsast.NewVars()
		vars.Source = src(vs)
		for i, id := range vs.Names {
			var init jsast.Expression
			if values != nil {
				init = values[i]
			} else if vs.Type != nil {
				init = zeroValue(vs.Type)
			} else {
				init = jsast.MarkSynthetic(&jsast.Null{}, src(vs))
			}

			if id.Name == "_" {
				ctx.AddStatement(jsast.AsStatement(init))
				continue
			}
			vars.Add(&jsast.Var{Meta: meta(id), Name: l.declare(st, id.Name), Init: init})
		}
		if !vars.IsEmpty() {
			ctx.AddStatement(vars)
		}
	}
}

// declare binds a new Go variable. Package level variables keep their names.
func (l *Lowerer) declare(st *funcState, ident string) *jsast.Name {
	if st.scope == l.global {
		if name := st.env.own(ident); name != nil {
			return name
		}
		name := l.global.DeclareName(ident)
		st.env.bind(ident, name)
		return name
	}

	return st.define(ident)
}
