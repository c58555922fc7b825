package jsast

// Walk traverses the tree in depth-first order. Children are not visited when fn returns false.
// Function parameters are visited before the function body.
func Walk(n Node, fn func(Node) bool) {
	if isNilNode(n) || !fn(n) {
		return
	}

	switch x := n.(type) {
	case *Block:
		for s := range x.All() {
			Walk(s, fn)
		}
	case *Vars:
		for _, v := range x.vars {
			Walk(v, fn)
		}
	case *Var:
		walkOpt(x.Init, fn)
	case *ExprStatement:
		Walk(x.Expr, fn)
	case *Return:
		walkOpt(x.Expr, fn)
	case *If:
		Walk(x.Cond, fn)
		walkOpt(x.Then, fn)
		walkOpt(x.Else, fn)
	case *While:
		Walk(x.Cond, fn)
		walkOpt(x.Body, fn)
	case *Throw:
		Walk(x.Expr, fn)
	case *Binary:
		Walk(x.Left, fn)
		Walk(x.Right, fn)
	case *Unary:
		Walk(x.X, fn)
	case *Call:
		Walk(x.Fn, fn)
		for _, a := range x.Args {
			Walk(a, fn)
		}
	case *Member:
		Walk(x.X, fn)
	case *Index:
		Walk(x.X, fn)
		Walk(x.Index, fn)
	case *Conditional:
		Walk(x.Cond, fn)
		Walk(x.Then, fn)
		Walk(x.Else, fn)
	case *ArrayLit:
		for _, e := range x.Elems {
			Walk(e, fn)
		}
	case *Function:
		for _, p := range x.Params {
			Walk(p, fn)
		}
		if x.Body != nil {
			Walk(x.Body, fn)
		}
	}
}

func walkOpt(n Node, fn func(Node) bool) {
	if isNilNode(n) {
		return
	}
	Walk(n, fn)
}

// isNilNode catches both nil interfaces and typed nil pointers.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}

	switch x := n.(type) {
	case *Block:
		return x == nil
	case *Function:
		return x == nil
	}

	return false
}
