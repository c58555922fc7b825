package srcmap

import (
	"go/token"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/jslower/internal/jsast"
)

// spanNode stores a [start,end] span for a JS node and, if needed,
// a nested level for child spans fully contained in this span.
type spanNode struct {
	start token.Pos
	end   token.Pos

	node     jsast.Node
	children *level
}

// level is a set of pairwise disjoint spans. The tree serves lookups, items
// keeps every span of the level so the tree can be rebuilt.
type level struct {
	tree  *rbtree.Tree[*spanNode]
	items []*spanNode
}

func newLevel() *level {
	return &level{tree: rbtree.New[*spanNode]()}
}

func (lv *level) reset(items []*spanNode) {
	lv.tree = rbtree.New[*spanNode]()
	lv.items = lv.items[:0]
	for _, it := range items {
		lv.tree.InsertReturn(it)
		lv.items = append(lv.items, it)
	}
}

// Cmp defines ordering for the RB-tree as "disjoint by position".
// - return -1 if this span is strictly before other (ends before other's start)
// - return  1 if this span is strictly after  other (starts after other's end)
// - return  0 if spans overlap in any way (including containment).
func (n *spanNode) Cmp(other *spanNode) int {
	if n.end < other.start {
		return -1
	}
	if n.start > other.end {
		return 1
	}
	return 0
}

func contains(a, b *spanNode) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts span s into the level:
//   - If the level has no overlapping node, s is inserted as a sibling.
//   - If an overlapping node r contains s (equal spans included), s is attached into r's children.
//     Equal spans thus nest in insertion order and the latest one is the innermost.
//   - If s contains r, every sibling covered by s moves into s's children and
//     s takes their place.
//
// Partially overlapping spans are rejected.
func attachInto(lv *level, s *spanNode) bool {
	r := lv.tree.InsertReturn(s)
	if r == s {
		lv.items = append(lv.items, s)
		return true
	}

	if contains(r, s) {
		if r.children == nil {
			r.children = newLevel()
		}
		return attachInto(r.children, s)
	}

	if !contains(s, r) {
		return false
	}

	var covered, rest []*spanNode
	for _, it := range lv.items {
		switch {
		case contains(s, it):
			covered = append(covered, it)
		case it.Cmp(s) == 0:
			return false
		default:
			rest = append(rest, it)
		}
	}

	if s.children == nil {
		s.children = newLevel()
	}
	for _, it := range covered {
		if !attachInto(s.children, it) {
			return false
		}
	}
	lv.reset(append(rest, s))

	return true
}

func descendSearch(n *spanNode, pos token.Pos) jsast.Node {
	if n == nil {
		return nil
	}
	if n.children == nil {
		return n.node
	}

	key := &spanNode{start: pos, end: pos}
	child := n.children.tree.Search(key)
	if child == nil {
		return n.node
	}
	if v := descendSearch(child, pos); v != nil {
		return v
	}
	return n.node
}
