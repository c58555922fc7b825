package jsast

import (
	"go/token"
)

// Node is the base interface implemented by all JS node types.
type Node interface {
	Metadata() *Meta
	isNode()
}

// Statement marks nodes that may be placed into a [Block].
type Statement interface {
	Node
	isStatement()
}

// Expression marks nodes that compute a value.
type Expression interface {
	Node
	isExpression()
}

// Meta holds metadata shared by all nodes.
type Meta struct {
	// Synthetic is set for nodes generated by the compiler rather than
	// written by the user. Diagnostics are not attributed to them.
	Synthetic bool

	// Source is an opaque tag pointing back into the lowered program.
	// The lowering pass stores a [Span] here.
	Source any
}

// Metadata returns the node metadata.
func (m *Meta) Metadata() *Meta {
	return m
}

// Span is a source tag covering [Start, End] of the lowered Go node.
type Span struct {
	Start token.Pos
	End   token.Pos
}

// SpanOf returns the span of anything that can tell its boundaries.
func SpanOf(n interface {
	Pos() token.Pos
	End() token.Pos
}) Span {
	return Span{Start: n.Pos(), End: n.End()}
}

// SourceOf returns the source tag of a node, nil for a nil node.
func SourceOf(n Node) any {
	if n == nil {
		return nil
	}
	return n.Metadata().Source
}

// MarkSynthetic flags the node as compiler generated and tags it with the given source.
func MarkSynthetic[T Node](n T, source any) T {
	m := n.Metadata()
	m.Synthetic = true
	m.Source = source
	return n
}
