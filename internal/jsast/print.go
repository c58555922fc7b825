package jsast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer renders JS source.
type Printer struct {
	// Indent is a single indentation level, two spaces when empty.
	Indent string
}

// Fprint writes the node as JS source. A top level *Block is rendered
// without braces as it stands for a program body.
func (p *Printer) Fprint(w io.Writer, n Node) error {
	var b strings.Builder
	pr := &printer{b: &b, indent: p.Indent}
	if pr.indent == "" {
		pr.indent = "  "
	}

	switch x := n.(type) {
	case *Block:
		for s := range x.All() {
			pr.stmt(s, 0)
		}
	case Statement:
		pr.stmt(x, 0)
	case Expression:
		pr.expr(x, 0)
	default:
		return fmt.Errorf("unsupported top level node %T", n)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write rendered source: %w", err)
	}

	return nil
}

// Print renders the node with default settings.
func Print(n Node) string {
	var b strings.Builder
	_ = (&Printer{}).Fprint(&b, n)
	return b.String()
}

type printer struct {
	b      *strings.Builder
	indent string
}

func (p *printer) ind(level int) string {
	return strings.Repeat(p.indent, level)
}

func (p *printer) stmt(s Statement, level int) {
	ind := p.ind(level)
	switch x := s.(type) {
	case *Block:
		p.b.WriteString(ind)
		p.block(x, level)
		p.b.WriteByte('\n')
	case *Vars:
		if x.IsEmpty() {
			return
		}
		p.b.WriteString(ind)
		p.vars(x, level)
		p.b.WriteString(";\n")
	case *ExprStatement:
		p.b.WriteString(ind)
		p.expr(x.Expr, level)
		p.b.WriteString(";\n")
	case *Return:
		p.b.WriteString(ind)
		if x.Expr == nil {
			p.b.WriteString("return;\n")
			return
		}
		p.b.WriteString("return ")
		p.expr(x.Expr, level)
		p.b.WriteString(";\n")
	case *If:
		p.b.WriteString(ind)
		p.ifChain(x, level)
		p.b.WriteByte('\n')
	case *While:
		fmt.Fprintf(p.b, "%swhile (", ind)
		p.expr(x.Cond, level)
		p.b.WriteString(") ")
		p.body(x.Body, level)
		p.b.WriteByte('\n')
	case *Break:
		fmt.Fprintf(p.b, "%sbreak;\n", ind)
	case *Continue:
		fmt.Fprintf(p.b, "%scontinue;\n", ind)
	case *Throw:
		fmt.Fprintf(p.b, "%sthrow ", ind)
		p.expr(x.Expr, level)
		p.b.WriteString(";\n")
	case *Empty:
		fmt.Fprintf(p.b, "%s;\n", ind)
	default:
		fmt.Fprintf(p.b, "%s/* unknown statement %T */\n", ind, s)
	}
}

func (p *printer) vars(x *Vars, level int) {
	p.b.WriteString("var ")
	for i, v := range x.vars {
		if i > 0 {
			p.b.WriteString(", ")
		}
		p.b.WriteString(v.Name.Ident)
		if v.Init != nil {
			p.b.WriteString(" = ")
			p.operand(v.Init, precAssign, level)
		}
	}
}

// block renders braces with statements, the caller is responsible for the leading indentation.
func (p *printer) block(x *Block, level int) {
	if x.IsEmpty() {
		p.b.WriteString("{\n" + p.ind(level) + "}")
		return
	}

	p.b.WriteString("{\n")
	for s := range x.All() {
		p.stmt(s, level+1)
	}
	p.b.WriteString(p.ind(level) + "}")
}

func (p *printer) body(s Statement, level int) {
	if b, ok := s.(*Block); ok {
		p.block(b, level)
		return
	}

	if s == nil {
		p.block(NewBlock(), level)
		return
	}
	p.block(NewBlock(s), level)
}

func (p *printer) ifChain(x *If, level int) {
	p.b.WriteString("if (")
	p.expr(x.Cond, level)
	p.b.WriteString(") ")
	p.body(x.Then, level)

	switch e := x.Else.(type) {
	case nil:
	case *If:
		p.b.WriteString(" else ")
		p.ifChain(e, level)
	default:
		p.b.WriteString(" else ")
		p.body(e, level)
	}
}

// Operator precedence levels.
const (
	precComma = iota + 1
	precAssign
	precConditional
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precPrefix
	precPostfix
	precCall
	precPrimary
)

var binaryPrec = map[string]int{
	",":          precComma,
	"||":         precOr,
	"&&":         precAnd,
	"|":          precBitOr,
	"^":          precBitXor,
	"&":          precBitAnd,
	"==":         precEquality,
	"!=":         precEquality,
	"===":        precEquality,
	"!==":        precEquality,
	"<":          precRelational,
	">":          precRelational,
	"<=":         precRelational,
	">=":         precRelational,
	"instanceof": precRelational,
	"in":         precRelational,
	"<<":         precShift,
	">>":         precShift,
	">>>":        precShift,
	"+":          precAdditive,
	"-":          precAdditive,
	"*":          precMultiplicative,
	"/":          precMultiplicative,
	"%":          precMultiplicative,
}

func isAssignOp(op string) bool {
	_, ok := binaryPrec[op]
	return !ok && strings.HasSuffix(op, "=")
}

func precedence(e Expression) int {
	switch x := e.(type) {
	case *Binary:
		if isAssignOp(x.Op) {
			return precAssign
		}
		if p, ok := binaryPrec[x.Op]; ok {
			return p
		}
		return precAssign
	case *Conditional:
		return precConditional
	case *Unary:
		if x.Postfix {
			return precPostfix
		}
		return precPrefix
	case *Call, *Member, *Index:
		return precCall
	default:
		return precPrimary
	}
}

// operand renders e wrapping it into parentheses when it binds weaker than min.
func (p *printer) operand(e Expression, min int, level int) {
	if precedence(e) < min {
		p.b.WriteByte('(')
		p.expr(e, level)
		p.b.WriteByte(')')
		return
	}
	p.expr(e, level)
}

func (p *printer) expr(e Expression, level int) {
	switch x := e.(type) {
	case *NameRef:
		p.b.WriteString(x.Name.Ident)
	case *Number:
		p.b.WriteString(x.Value)
	case *String:
		p.b.WriteString(quote(x.Value))
	case *Bool:
		p.b.WriteString(strconv.FormatBool(x.Value))
	case *Null:
		p.b.WriteString("null")
	case *Binary:
		prec := precedence(x)
		if prec == precAssign {
			p.operand(x.Left, prec+1, level)
			fmt.Fprintf(p.b, " %s ", x.Op)
			p.operand(x.Right, prec, level)
			return
		}
		p.operand(x.Left, prec, level)
		if x.Op == "," {
			p.b.WriteString(", ")
		} else {
			fmt.Fprintf(p.b, " %s ", x.Op)
		}
		p.operand(x.Right, prec+1, level)
	case *Unary:
		if x.Postfix {
			p.operand(x.X, precPostfix, level)
			p.b.WriteString(x.Op)
			return
		}
		p.b.WriteString(x.Op)
		if x.Op == "typeof" || x.Op == "void" || x.Op == "delete" || gluesWith(x.Op, x.X) {
			p.b.WriteByte(' ')
		}
		p.operand(x.X, precPrefix, level)
	case *Call:
		if _, ok := x.Fn.(*Function); ok {
			p.b.WriteByte('(')
			p.expr(x.Fn, level)
			p.b.WriteByte(')')
		} else {
			p.operand(x.Fn, precCall, level)
		}
		p.b.WriteByte('(')
		p.list(x.Args, level)
		p.b.WriteByte(')')
	case *Member:
		p.operand(x.X, precCall, level)
		p.b.WriteByte('.')
		p.b.WriteString(x.Sel)
	case *Index:
		p.operand(x.X, precCall, level)
		p.b.WriteByte('[')
		p.expr(x.Index, level)
		p.b.WriteByte(']')
	case *Conditional:
		p.operand(x.Cond, precConditional+1, level)
		p.b.WriteString(" ? ")
		p.operand(x.Then, precAssign, level)
		p.b.WriteString(" : ")
		p.operand(x.Else, precAssign, level)
	case *ArrayLit:
		p.b.WriteByte('[')
		p.list(x.Elems, level)
		p.b.WriteByte(']')
	case *Function:
		p.b.WriteString("function ")
		if x.Name != nil {
			p.b.WriteString(x.Name.Ident)
		}
		p.b.WriteByte('(')
		for i, prm := range x.Params {
			if i > 0 {
				p.b.WriteString(", ")
			}
			p.b.WriteString(prm.Name.Ident)
		}
		p.b.WriteString(") ")
		if x.Body == nil {
			p.block(NewBlock(), level)
			return
		}
		p.block(x.Body, level)
	default:
		fmt.Fprintf(p.b, "/* unknown expression %T */", e)
	}
}

// gluesWith checks if a prefix operator followed by the operand would read as
// another token: `- -x` must not turn into `--x`.
func gluesWith(op string, operand Expression) bool {
	if op != "-" && op != "+" {
		return false
	}

	in, ok := operand.(*Unary)
	return ok && !in.Postfix && strings.HasPrefix(in.Op, op)
}

func (p *printer) list(items []Expression, level int) {
	for i, e := range items {
		if i > 0 {
			p.b.WriteString(", ")
		}
		p.operand(e, precAssign, level)
	}
}
