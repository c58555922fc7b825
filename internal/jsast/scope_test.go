package jsast

import (
	"testing"
)

func TestScopeTemporariesAreUnique(t *testing.T) {
	root := NewRootScope("root", "")
	inner := root.Child("inner")
	other := root.Child("other")

	seen := map[string]bool{}
	for _, s := range []*Scope{root, inner, other, inner, root, other} {
		n := s.DeclareTemporary()
		if !n.Temporary {
			t.Fatalf("name %s must be marked temporary", n)
		}
		if seen[n.Ident] {
			t.Fatalf("temporary %s was allocated twice", n)
		}
		seen[n.Ident] = true
	}

	if !seen["tmp$0"] || !seen["tmp$5"] {
		t.Fatalf("unexpected temporaries spelling: %v", seen)
	}
}

func TestScopeTemporariesSkipDeclaredNames(t *testing.T) {
	root := NewRootScope("root", "t")
	root.DeclareName("t0")
	inner := root.Child("inner")
	inner.DeclareName("t1")

	if n := inner.DeclareTemporary(); n.Ident != "t2" {
		t.Fatalf("t2 was expected, got %s", n)
	}
}

func TestScopeDeclareFreshName(t *testing.T) {
	root := NewRootScope("root", "")
	x := root.DeclareName("x")
	inner := root.Child("inner")

	tests := []struct {
		name      string
		suggested string
		want      string
	}{
		{
			name:      "free",
			suggested: "y",
			want:      "y",
		},
		{
			name:      "visible in parent",
			suggested: "x",
			want:      "x_1",
		},
		{
			name:      "both taken",
			suggested: "x",
			want:      "x_2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := inner.DeclareFreshName(tt.suggested)
			if n.Ident != tt.want {
				t.Fatalf("name %q was expected, got %q", tt.want, n.Ident)
			}
			if n.Scope() != inner {
				t.Fatal("fresh name must belong to the scope it was declared in")
			}
		})
	}

	if got := inner.FindName("x"); got != x {
		t.Fatal("x must be resolved to the root scope name")
	}
	if inner.HasOwnName("x") {
		t.Fatal("x is not an own name of the inner scope")
	}
	if root.DeclareName("x") != x {
		t.Fatal("redeclaration must return the same name")
	}
}
