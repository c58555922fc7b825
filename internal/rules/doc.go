// Package rules defines the canonical JSL-series codes reported by the lowering.
//
// Each code names a class of Go constructs the lowering cannot express in
// the emitted JS. Codes are stable: never renumber existing ones, new codes
// take the next free slot of their range.
//
//	000–009  Statements
//	010–019  Expressions
//	020–029  Declarations
//	030–049  Assignments and loops
//
// Example:
//
//	rules.JSL040UnsupportedLoop.String()      → "JSL040: UnsupportedLoop"
//	rules.JSL040UnsupportedLoop.Description() → "Only three-clause, conditional and infinite for loops are lowered."
package rules
