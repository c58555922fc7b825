package jsast

import (
	"container/list"
	"iter"
)

// Block is an ordered sequence of statements. The block owns its statements:
// a statement belongs to at most one block at a time and is addressed by identity.
//
// Blocks must not be copied after first use.
type Block struct {
	Meta

	stmts list.List
	elems map[Statement]*list.Element
}

// NewBlock creates a block holding the given statements.
func NewBlock(stmts ...Statement) *Block {
	b := &Block{}
	b.Append(stmts...)
	return b
}

// Len returns the number of statements in the block.
func (b *Block) Len() int {
	return b.stmts.Len()
}

// IsEmpty checks if there are no statements in the block.
func (b *Block) IsEmpty() bool {
	return b.stmts.Len() == 0
}

// All iterates over block statements in order.
func (b *Block) All() iter.Seq[Statement] {
	return func(yield func(Statement) bool) {
		for e := b.stmts.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(Statement)) {
				return
			}
		}
	}
}

// Statements returns a snapshot of block statements.
func (b *Block) Statements() []Statement {
	res := make([]Statement, 0, b.stmts.Len())
	for s := range b.All() {
		res = append(res, s)
	}

	return res
}

// Contains checks if the statement resides in this block.
func (b *Block) Contains(s Statement) bool {
	_, ok := b.elems[s]
	return ok
}

// IndexOf returns the position of the statement or -1 if it is not here.
func (b *Block) IndexOf(s Statement) int {
	if !b.Contains(s) {
		return -1
	}

	var i int
	for cur := range b.All() {
		if cur == s {
			return i
		}
		i++
	}

	return -1
}

// Append puts statements at the end of the block.
func (b *Block) Append(stmts ...Statement) {
	for _, s := range stmts {
		b.track(s, b.stmts.PushBack(s))
	}
}

// InsertBefore puts s right before mark. It returns false when mark is not in the block.
func (b *Block) InsertBefore(s, mark Statement) bool {
	e, ok := b.elems[mark]
	if !ok {
		return false
	}

	b.track(s, b.stmts.InsertBefore(s, e))
	return true
}

// InsertAfter puts s right after mark. It returns false when mark is not in the block.
func (b *Block) InsertAfter(s, mark Statement) bool {
	e, ok := b.elems[mark]
	if !ok {
		return false
	}

	b.track(s, b.stmts.InsertAfter(s, e))
	return true
}

// InsertAt puts s at the given position. Positions past the end append.
func (b *Block) InsertAt(i int, s Statement) {
	if i <= 0 {
		b.track(s, b.stmts.PushFront(s))
		return
	}

	e := b.stmts.Front()
	for ; e != nil && i > 0; i-- {
		e = e.Next()
	}
	if e == nil {
		b.track(s, b.stmts.PushBack(s))
		return
	}

	b.track(s, b.stmts.InsertBefore(s, e))
}

// Remove takes the statement out of the block. It returns false if it was not there.
func (b *Block) Remove(s Statement) bool {
	e, ok := b.elems[s]
	if !ok {
		return false
	}

	b.stmts.Remove(e)
	delete(b.elems, s)
	return true
}

// Splice moves all statements of other to the end of b, leaving other empty.
func (b *Block) Splice(other *Block) {
	if other == b {
		return
	}

	for _, s := range other.Statements() {
		other.Remove(s)
		b.Append(s)
	}
}

func (b *Block) track(s Statement, e *list.Element) {
	if b.elems == nil {
		b.elems = map[Statement]*list.Element{}
	}
	if _, ok := b.elems[s]; ok {
		b.stmts.Remove(e)
		panic("jsast: statement is already in the block")
	}

	b.elems[s] = e
}

func (*Block) isNode()      {}
func (*Block) isStatement() {}
