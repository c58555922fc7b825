// Package scoping tracks temporaries introduced while lowering into a JS block.
//
// A [Context] binds a name scope to the block being built. The first
// temporary declared through a context inserts a synthetic `var` group into
// the block; subsequent ones are appended to that group. When the lowering
// decides two blocks collapse into one, [Context.MoveVarsFrom] hands the
// pending group of the absorbed context over to the surviving one.
//
// Contexts are not safe for concurrent use. They follow the depth-first walk
// of a single lowering pass.
//
// Contract violations panic rather than return errors, as all call sites belong
// to the lowering pass itself:
//
//   - declaring a temporary through a context whose group was moved out;
//   - moving declarations into such a context;
//   - moving declarations of a context into itself.
package scoping
