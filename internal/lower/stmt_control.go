package lower

import (
	"go/ast"

	"github.com/sirkon/jslower/internal/jsast"
	"github.com/sirkon/jslower/internal/scoping"
)

// region lowers a Go region through a context of its own and then either
// keeps it as a nested block or dissolves it into the enclosing block.
type region struct {
	ctx *scoping.Context
	st  *funcState
}

func (l *Lowerer) openRegion(ctx *scoping.Context, st *funcState, node ast.Node) *region {
	blk := jsast.NewBlock()
	blk.Source = src(node)
	return &region{
		ctx: ctx.InnerBlock(blk),
		st:  st.nest(),
	}
}

// dissolve moves the region temporaries into the enclosing context and splices
// the region statements after them.
func (r *region) dissolve(into *scoping.Context) {
	into.MoveVarsFrom(r.ctx)
	into.Block().Splice(r.ctx.Block())
}

// body lowers statements into a block of their own. Temporaries declared
// there stay within the block.
func (l *Lowerer) body(ctx *scoping.Context, st *funcState, b *ast.BlockStmt) *jsast.Block {
	r := l.openRegion(ctx, st, b)
	l.stmts(r.ctx, r.st, b.List)
	return r.ctx.Block()
}

func (l *Lowerer) nestedBlock(ctx *scoping.Context, st *funcState, b *ast.BlockStmt) {
	r := l.openRegion(ctx, st, b)
	l.stmts(r.ctx, r.st, b.List)

	if l.cfg.FlattenBlocks {
		r.dissolve(ctx)
		return
	}
	ctx.AddStatement(r.ctx.Block())
}

func (l *Lowerer) ifStmt(ctx *scoping.Context, st *funcState, s *ast.IfStmt) {
	if s.Init == nil {
		ctx.AddStatement(l.ifNode(ctx, st, s))
		return
	}

	// The init statement opens a region covering the whole if statement.
	r := l.openRegion(ctx, st, s)
	l.stmt(r.ctx, r.st, s.Init)
	r.ctx.AddStatement(l.ifNode(r.ctx, r.st, s))
	r.dissolve(ctx)
}

func (l *Lowerer) ifNode(ctx *scoping.Context, st *funcState, s *ast.IfStmt) *jsast.If {
	res := &jsast.If{
		Meta: meta(s),
		Cond: l.expr(st, s.Cond),
		Then: l.body(ctx, st, s.Body),
	}

	switch e := s.Else.(type) {
	case nil:
	case *ast.BlockStmt:
		res.Else = l.body(ctx, st, e)
	case *ast.IfStmt:
		if e.Init == nil {
			res.Else = l.ifNode(ctx, st, e)
			break
		}
		// else if with an init statement needs a block to live in.
		blk := jsast.NewBlock()
		blk.Source = src(e)
		l.ifStmt(ctx.InnerBlock(blk), st, e)
		res.Else = blk
	}

	return res
}

func (l *Lowerer) forStmt(ctx *scoping.Context, st *funcState, s *ast.ForStmt) {
	r := l.openRegion(ctx, st, s)
	if s.Init != nil {
		l.stmt(r.ctx, r.st, s.Init)
	}

	var cond jsast.Expression
	if s.Cond != nil {
		cond = l.expr(r.st, s.Cond)
	} else {
		cond = jsast.MarkSynthetic(&jsast.Bool{Value: true}, src(s))
	}

	loopSt := r.st.withFlow(flowLoop, s.Post)
	body := l.openRegion(r.ctx, loopSt, s.Body)
	l.stmts(body.ctx, body.st, s.Body.List)
	if s.Post != nil {
		l.stmt(body.ctx, loopSt, s.Post)
	}

	r.ctx.AddStatement(&jsast.While{Meta: meta(s), Cond: cond, Body: body.ctx.Block()})
	r.dissolve(ctx)
}

// switchStmt lowers a switch into an if-else chain. A tag which is not a plain
// name is evaluated once into a temporary.
func (l *Lowerer) switchStmt(ctx *scoping.Context, st *funcState, s *ast.SwitchStmt) {
	r := l.openRegion(ctx, st, s)
	if s.Init != nil {
		l.stmt(r.ctx, r.st, s.Init)
	}

	var tag func() jsast.Expression
	if s.Tag != nil {
		switch x := l.expr(r.st, s.Tag).(type) {
		case *jsast.NameRef:
			tag = func() jsast.Expression {
				return &jsast.NameRef{Meta: x.Meta, Name: x.Name}
			}
		default:
			tmp := r.ctx.DeclareTemporary(x, src(s))
			r.ctx.AddStatement(tmp.AssignmentStatement())
			tag = func() jsast.Expression {
				return tmp.Reference()
			}
		}
	}

	caseSt := r.st.withFlow(flowSwitch, nil)
	var (
		chain []*jsast.If
		deflt *jsast.Block
	)
	for _, c := range s.Body.List {
		cc := c.(*ast.CaseClause)
		blk := l.caseBody(r.ctx, caseSt, cc)
		if cc.List == nil {
			deflt = blk
			continue
		}

		chain = append(chain, &jsast.If{
			Meta: meta(cc),
			Cond: l.caseCond(caseSt, cc, tag),
			Then: blk,
		})
	}

	switch {
	case len(chain) > 0:
		for i := 1; i < len(chain); i++ {
			chain[i-1].Else = chain[i]
		}
		if deflt != nil {
			chain[len(chain)-1].Else = deflt
		}
		r.ctx.AddStatement(chain[0])
	case deflt != nil:
		r.ctx.AddStatement(deflt)
	}

	r.dissolve(ctx)
}

func (l *Lowerer) caseBody(ctx *scoping.Context, st *funcState, cc *ast.CaseClause) *jsast.Block {
	blk := jsast.NewBlock()
	blk.Source = src(cc)

	inner := st.nest()
	l.stmts(ctx.InnerBlock(blk), inner, cc.Body)

	return blk
}

// caseCond builds `tag === a || tag === b` for tagged switches and `a || b` otherwise.
func (l *Lowerer) caseCond(st *funcState, cc *ast.CaseClause, tag func() jsast.Expression) jsast.Expression {
	var cond jsast.Expression
	for _, e := range cc.List {
		x := l.expr(st, e)
		if tag != nil {
			x = &jsast.Binary{Meta: meta(e), Op: "===", Left: tag(), Right: x}
		}

		if cond == nil {
			cond = x
			continue
		}
		cond = &jsast.Binary{Meta: meta(cc), Op: "||", Left: cond, Right: x}
	}

	return cond
}
