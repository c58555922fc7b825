package jsast

import (
	"testing"
)

func TestBlockInsertRemove(t *testing.T) {
	a := &Empty{}
	b := &Break{}
	c := &Continue{}
	d := &Return{}

	blk := NewBlock(a, c)
	if !blk.InsertBefore(b, c) {
		t.Fatal("c must be found")
	}
	blk.Append(d)

	checkOrder(t, blk, a, b, c, d)
	if i := blk.IndexOf(c); i != 2 {
		t.Fatalf("c is expected at 2, got %d", i)
	}

	if !blk.Remove(b) {
		t.Fatal("b must be removed")
	}
	if blk.Remove(b) {
		t.Fatal("b must not be removed twice")
	}
	if blk.Contains(b) {
		t.Fatal("b must not be in the block anymore")
	}
	checkOrder(t, blk, a, c, d)

	blk.InsertAt(1, b)
	checkOrder(t, blk, a, b, c, d)
	blk.Remove(d)
	blk.InsertAt(100, d)
	checkOrder(t, blk, a, b, c, d)

	if blk.InsertAfter(&Empty{}, &Empty{}) {
		t.Fatal("insertion after foreign statement must fail")
	}
}

func TestBlockRejectsDuplicates(t *testing.T) {
	a := &Empty{}
	blk := NewBlock(a)

	defer func() {
		if recover() == nil {
			t.Fatal("panic was expected")
		}
		checkOrder(t, blk, a)
	}()

	blk.Append(a)
}

func TestBlockSplice(t *testing.T) {
	a, b, c := &Empty{}, &Break{}, &Continue{}
	dst := NewBlock(a)
	src := NewBlock(b, c)

	dst.Splice(src)
	checkOrder(t, dst, a, b, c)
	if !src.IsEmpty() {
		t.Fatal("source block must be drained")
	}
}

func checkOrder(t *testing.T, blk *Block, want ...Statement) {
	t.Helper()

	got := blk.Statements()
	if len(got) != len(want) {
		t.Fatalf("%d statements were expected, got %d", len(want), len(got))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("statement %d mismatch: got %T, want %T", i, got[i], want[i])
		}
	}
}
