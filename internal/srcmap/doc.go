// Package srcmap maps positions of the lowered Go source back to the emitted JS nodes.
//
// Spans are kept in an RB-tree ordered "disjoint by position": overlapping
// spans compare equal, and the tree hands the overlapping entry back on
// insertion so nested spans can be organized into child trees. The lookup
// then descends to the innermost node covering a position.
package srcmap
