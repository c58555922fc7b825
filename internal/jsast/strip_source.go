package jsast

// StripSource returns a deep copy of the tree with all Source tags cleared.
// This is useful for equality testing (ignoring source positions).
// Names are shared between the original and the copy.
func StripSource[T Node](n T) T {
	if isNilNode(n) {
		return n
	}
	return stripNode(n).(T)
}

func stripNode(n Node) Node {
	if isNilNode(n) {
		return n
	}

	switch x := n.(type) {
	case *Block:
		cp := &Block{Meta: stripMeta(x.Meta)}
		for s := range x.All() {
			cp.Append(stripNode(s).(Statement))
		}
		return cp
	case *Vars:
		cp := &Vars{Meta: stripMeta(x.Meta)}
		for _, v := range x.vars {
			cp.Add(stripNode(v).(*Var))
		}
		return cp
	case *Var:
		return &Var{Meta: stripMeta(x.Meta), Name: x.Name, Init: stripExpr(x.Init)}
	case *ExprStatement:
		return &ExprStatement{Meta: stripMeta(x.Meta), Expr: stripExpr(x.Expr)}
	case *Return:
		return &Return{Meta: stripMeta(x.Meta), Expr: stripExpr(x.Expr)}
	case *If:
		return &If{
			Meta: stripMeta(x.Meta),
			Cond: stripExpr(x.Cond),
			Then: stripStmt(x.Then),
			Else: stripStmt(x.Else),
		}
	case *While:
		return &While{Meta: stripMeta(x.Meta), Cond: stripExpr(x.Cond), Body: stripStmt(x.Body)}
	case *Break:
		return &Break{Meta: stripMeta(x.Meta)}
	case *Continue:
		return &Continue{Meta: stripMeta(x.Meta)}
	case *Throw:
		return &Throw{Meta: stripMeta(x.Meta), Expr: stripExpr(x.Expr)}
	case *Empty:
		return &Empty{Meta: stripMeta(x.Meta)}
	case *NameRef:
		return &NameRef{Meta: stripMeta(x.Meta), Name: x.Name}
	case *Number:
		return &Number{Meta: stripMeta(x.Meta), Value: x.Value}
	case *String:
		return &String{Meta: stripMeta(x.Meta), Value: x.Value}
	case *Bool:
		return &Bool{Meta: stripMeta(x.Meta), Value: x.Value}
	case *Null:
		return &Null{Meta: stripMeta(x.Meta)}
	case *Binary:
		return &Binary{Meta: stripMeta(x.Meta), Op: x.Op, Left: stripExpr(x.Left), Right: stripExpr(x.Right)}
	case *Unary:
		return &Unary{Meta: stripMeta(x.Meta), Op: x.Op, X: stripExpr(x.X), Postfix: x.Postfix}
	case *Call:
		return &Call{Meta: stripMeta(x.Meta), Fn: stripExpr(x.Fn), Args: stripExprs(x.Args)}
	case *Member:
		return &Member{Meta: stripMeta(x.Meta), X: stripExpr(x.X), Sel: x.Sel}
	case *Index:
		return &Index{Meta: stripMeta(x.Meta), X: stripExpr(x.X), Index: stripExpr(x.Index)}
	case *Conditional:
		return &Conditional{
			Meta: stripMeta(x.Meta),
			Cond: stripExpr(x.Cond),
			Then: stripExpr(x.Then),
			Else: stripExpr(x.Else),
		}
	case *ArrayLit:
		return &ArrayLit{Meta: stripMeta(x.Meta), Elems: stripExprs(x.Elems)}
	case *Function:
		cp := &Function{Meta: stripMeta(x.Meta), Name: x.Name, Scope: x.Scope}
		for _, p := range x.Params {
			cp.Params = append(cp.Params, &Param{Meta: stripMeta(p.Meta), Name: p.Name})
		}
		if x.Body != nil {
			cp.Body = stripNode(x.Body).(*Block)
		}
		return cp
	case *Param:
		return &Param{Meta: stripMeta(x.Meta), Name: x.Name}
	default:
		return n
	}
}

func stripMeta(m Meta) Meta {
	return Meta{Synthetic: m.Synthetic}
}

func stripExpr(e Expression) Expression {
	if e == nil {
		return nil
	}
	return stripNode(e).(Expression)
}

func stripStmt(s Statement) Statement {
	if isNilNode(s) {
		return nil
	}
	return stripNode(s).(Statement)
}

func stripExprs(list []Expression) []Expression {
	if list == nil {
		return nil
	}

	res := make([]Expression, len(list))
	for i, e := range list {
		res[i] = stripExpr(e)
	}
	return res
}
