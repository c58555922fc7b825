// Package jsast defines the JavaScript syntax tree the lowering pass emits.
//
// Every node embeds [Meta], which records whether the node was synthesized by
// the compiler and an opaque source tag used for diagnostics. Statements are
// owned by a [Block]: a block keeps its statements in order and supports
// insertion and removal by identity, so other components may hold a statement
// as a plain handle without owning it.
//
// Names are produced by a [Scope]. A scope tree shares one counter for
// temporaries, so names returned by [Scope.DeclareTemporary] never repeat
// within the tree.
package jsast
