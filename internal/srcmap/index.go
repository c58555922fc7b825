package srcmap

import (
	"go/token"

	"github.com/sirkon/jslower/internal/jsast"
)

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{root: newLevel()}
}

// Build indexes every node of the tree tagged with a valid [jsast.Span].
func Build(root jsast.Node) *Index {
	idx := NewIndex()
	jsast.Walk(root, func(n jsast.Node) bool {
		if span, ok := jsast.SourceOf(n).(jsast.Span); ok && span.Start.IsValid() {
			idx.Add(n, span)
		}
		return true
	})

	return idx
}

// Index maps source positions to JS nodes.
type Index struct {
	root *level
	size int
}

// Add registers a node with its span. It returns false when the span
// partially overlaps an already registered one, the node is not indexed then.
func (idx *Index) Add(node jsast.Node, span jsast.Span) bool {
	s := &spanNode{start: span.Start, end: span.End, node: node}
	if !attachInto(idx.root, s) {
		return false
	}

	idx.size++
	return true
}

// Len returns the number of indexed nodes.
func (idx *Index) Len() int {
	return idx.size
}

// GetByPos returns the most specific (innermost) node covering pos.
func (idx *Index) GetByPos(pos token.Pos) jsast.Node {
	key := &spanNode{start: pos, end: pos}
	res := idx.root.tree.Search(key)
	if res == nil {
		return nil
	}

	return descendSearch(res, pos)
}
