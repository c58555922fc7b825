package lower

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/jslower/internal/jsast"
	"github.com/sirkon/jslower/internal/rules"
	"github.com/sirkon/jslower/internal/scoping"
)

func (l *Lowerer) assign(ctx *scoping.Context, st *funcState, s *ast.AssignStmt) {
	if len(s.Lhs) != len(s.Rhs) {
		l.unsupported(ctx, rules.MultiValueAssignment(), s, "assignment from a multi-value expression")
		return
	}

	switch s.Tok {
	case token.DEFINE:
		l.define(ctx, st, s)
	case token.ASSIGN:
		if len(s.Lhs) == 1 {
			l.singleAssign(ctx, st, s, s.Lhs[0], l.expr(st, s.Rhs[0]))
			return
		}
		l.parallelAssign(ctx, st, s, false)
	case token.QUO_ASSIGN:
		if l.isInteger(s.Lhs[0]) {
			// x /= y → x = Math.trunc(x / y)
			q := &jsast.Binary{Meta: meta(s), Op: "/", Left: l.expr(st, s.Lhs[0]), Right: l.expr(st, s.Rhs[0])}
			l.singleAssign(ctx, st, s, s.Lhs[0], l.truncated(s, q))
			return
		}
		l.opAssign(ctx, st, s, s.Tok.String(), l.expr(st, s.Rhs[0]))
	case token.AND_NOT_ASSIGN:
		// x &^= y → x &= ~y
		y := &jsast.Unary{Meta: meta(s.Rhs[0]), Op: "~", X: l.expr(st, s.Rhs[0])}
		l.opAssign(ctx, st, s, "&=", y)
	default:
		l.opAssign(ctx, st, s, s.Tok.String(), l.expr(st, s.Rhs[0]))
	}
}

func (l *Lowerer) opAssign(ctx *scoping.Context, st *funcState, s *ast.AssignStmt, op string, y jsast.Expression) {
	x := &jsast.Binary{Meta: meta(s), Op: op, Left: l.expr(st, s.Lhs[0]), Right: y}
	ctx.AddStatement(jsast.AsStatement(x))
}

func (l *Lowerer) singleAssign(ctx *scoping.Context, st *funcState, s *ast.AssignStmt, lhs ast.Expr, value jsast.Expression) {
	if isBlank(lhs) {
		stmt := jsast.AsStatement(value)
		stmt.Source = src(s)
		ctx.AddStatement(stmt)
		return
	}

	x := &jsast.Binary{Meta: meta(s), Op: "=", Left: l.expr(st, lhs), Right: value}
	ctx.AddStatement(jsast.AsStatement(x))
}

// define lowers a short variable declaration. Right hand sides are resolved
// before new names are bound, so `x := x + 1` refers to the outer x.
func (l *Lowerer) define(ctx *scoping.Context, st *funcState, s *ast.AssignStmt) {
	fresh := true
	for _, lhs := range s.Lhs {
		id := lhs.(*ast.Ident)
		if id.Name != "_" && st.env.own(id.Name) != nil {
			fresh = false
		}
	}

	if !fresh && len(s.Lhs) > 1 {
		// Some of the names are reassigned and may be referenced by the other right hand sides.
		l.parallelAssign(ctx, st, s, true)
		return
	}

	values := l.exprs(st, s.Rhs)
	if !fresh {
		l.singleAssign(ctx, st, s, s.Lhs[0], values[0])
		return
	}

	vars := jsast.NewVars()
	vars.Source = src(s)
	for i, lhs := range s.Lhs {
		id := lhs.(*ast.Ident)
		if id.Name == "_" {
			stmt := jsast.AsStatement(values[i])
			ctx.AddStatement(stmt)
			continue
		}
		vars.Add(&jsast.Var{Meta: meta(id), Name: st.define(id.Name), Init: values[i]})
	}
	if !vars.IsEmpty() {
		ctx.AddStatement(vars)
	}
}

// parallelAssign evaluates every right hand side into a temporary before
// anything is assigned, so `a, b = b, a` swaps values.
//
// For short variable declarations names new to the block are declared with
// the temporary as the initializer.
func (l *Lowerer) parallelAssign(ctx *scoping.Context, st *funcState, s *ast.AssignStmt, defining bool) {
	tmps := make([]*scoping.TemporaryVariable, len(s.Rhs))
	for i, rhs := range s.Rhs {
		tmps[i] = ctx.DeclareTemporary(l.expr(st, rhs), src(s))
		ctx.AddStatement(tmps[i].AssignmentStatement())
	}

	for i, lhs := range s.Lhs {
		if isBlank(lhs) {
			continue
		}

		if defining {
			id := lhs.(*ast.Ident)
			if st.env.own(id.Name) == nil {
				vars := jsast.NewVars(&jsast.Var{Meta: meta(id), Name: st.define(id.Name), Init: tmps[i].Reference()})
				vars.Source = src(s)
				ctx.AddStatement(vars)
				continue
			}
		}

		x := &jsast.Binary{Meta: meta(lhs), Op: "=", Left: l.expr(st, lhs), Right: tmps[i].Reference()}
		ctx.AddStatement(jsast.AsStatement(x))
	}
}

func isBlank(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name == "_"
}
