package srcmap

import (
	"go/token"
	"testing"

	"github.com/sirkon/jslower/internal/jsast"
)

func TestIndexDepthPattern(t *testing.T) {
	idx := NewIndex()
	scope := jsast.NewRootScope("root", "")

	ref := func(name string) *jsast.NameRef {
		return scope.DeclareName(name).Ref()
	}
	add := func(name string, start, end token.Pos) {
		t.Helper()
		if !idx.Add(ref(name), jsast.Span{Start: start, End: end}) {
			t.Fatalf("span of %s must be accepted", name)
		}
	}

	if idx.GetByPos(0) != nil {
		t.Fatal("nothing was expected at pos 0 right now")
	}

	add("ground", 0, 200)
	add("mid1", 10, 90)
	add("mid11", 20, 30)
	add("mid12", 40, 80)
	add("mid13", 85, 88)
	add("mid2", 110, 190)
	add("mid21", 120, 130)

	type test struct {
		name  string
		pos   token.Pos
		isnil bool
	}
	testingFunc := func(tt test) func(t *testing.T) {
		return func(t *testing.T) {
			node := idx.GetByPos(tt.pos)
			if node == nil && !tt.isnil {
				t.Fatalf("node %q was not found at position %d", tt.name, tt.pos)
			}
			if node != nil && tt.isnil {
				t.Fatalf("no node was expected at position %d, got %q", tt.pos, node.(*jsast.NameRef).Name)
			}
			if node != nil {
				x := node.(*jsast.NameRef)
				if x.Name.Ident != tt.name {
					t.Fatalf("node %q was expected, got %q at position %d", tt.name, x.Name, tt.pos)
				}
			}
		}
	}

	tests := []test{
		{name: "ground", pos: 0},
		{name: "ground", pos: 5},
		{name: "ground", pos: 200},
		{name: "mid1", pos: 90},
		{name: "mid11", pos: 25},
		{name: "mid12", pos: 41},
		{name: "mid12", pos: 79},
		{name: "mid13", pos: 86},
		{name: "ground", pos: 100},
		{name: "mid2", pos: 115},
		{name: "mid21", pos: 125},
		{name: "on-the-left", pos: -1, isnil: true},
		{name: "on-the-right", pos: 201, isnil: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, testingFunc(tt))
	}

	add("underground", -10, 300)
	tests = []test{
		{name: "underground", pos: -5},
		{name: "underground", pos: 250},
		{name: "ground", pos: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, testingFunc(tt))
	}

	if idx.Add(ref("partial"), jsast.Span{Start: 250, End: 400}) {
		t.Fatal("partially overlapping span must be rejected")
	}
	if idx.Len() != 8 {
		t.Fatalf("8 nodes were expected to be indexed, got %d", idx.Len())
	}
}

func TestBuildPrefersDeeperNodesOnEqualSpans(t *testing.T) {
	scope := jsast.NewRootScope("root", "")
	x := scope.DeclareName("x")

	expr := &jsast.Unary{Op: "++", X: x.Ref(), Postfix: true, Meta: jsast.Meta{Source: jsast.Span{Start: 10, End: 13}}}
	expr.X.Metadata().Source = jsast.Span{Start: 10, End: 11}
	stmt := jsast.AsStatement(expr)
	blk := jsast.NewBlock(stmt, &jsast.Empty{})

	idx := Build(blk)
	if idx.Len() != 3 {
		t.Fatalf("3 tagged nodes were expected, got %d", idx.Len())
	}
	if got := idx.GetByPos(12); got != expr {
		t.Fatalf("the expression was expected at 12, got %T", got)
	}
	if got := idx.GetByPos(10); got != expr.X {
		t.Fatalf("the name reference was expected at 10, got %T", got)
	}
	if idx.GetByPos(20) != nil {
		t.Fatal("nothing was expected at 20")
	}
}

func TestIndexParentAddedAfterChildren(t *testing.T) {
	idx := NewIndex()
	scope := jsast.NewRootScope("root", "")

	nodes := map[string]jsast.Node{}
	add := func(name string, start, end token.Pos) {
		t.Helper()
		nodes[name] = scope.DeclareName(name).Ref()
		if !idx.Add(nodes[name], jsast.Span{Start: start, End: end}) {
			t.Fatalf("span of %s must be accepted", name)
		}
	}

	add("left", 10, 20)
	add("middle", 30, 40)
	add("right", 50, 60)
	add("outside", 100, 110)
	add("parent", 5, 65)

	tests := []struct {
		name string
		pos  token.Pos
	}{
		{name: "left", pos: 15},
		{name: "middle", pos: 35},
		{name: "right", pos: 55},
		{name: "parent", pos: 25},
		{name: "parent", pos: 5},
		{name: "outside", pos: 105},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.GetByPos(tt.pos); got != nodes[tt.name] {
				t.Fatalf("node %q was expected at position %d, got %v", tt.name, tt.pos, got)
			}
		})
	}

	if idx.Add(scope.DeclareName("partial").Ref(), jsast.Span{Start: 0, End: 55}) {
		t.Fatal("span partially overlapping a covered sibling must be rejected")
	}
	if got := idx.GetByPos(55); got != nodes["right"] {
		t.Fatalf("rejected span must not change the index, got %v at 55", got)
	}
	if idx.Len() != 5 {
		t.Fatalf("5 nodes were expected to be indexed, got %d", idx.Len())
	}
}
