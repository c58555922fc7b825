// Package lower translates Go function bodies into the JS syntax tree.
//
// Go and JS disagree on scoping: Go blocks open lexical scopes while JS `var`
// declarations belong to the whole function. Every Go local therefore gets a
// name that is fresh within its JS function scope, and nested Go regions
// (blocks, if/for/switch initializers) may be spliced into the enclosing JS
// block. Each region is lowered through its own [scoping.Context]; when the
// region is spliced its temporaries are moved into the surviving context.
//
// Constructs without a JS counterpart are reported and replaced with an empty
// statement, so lowering always produces a tree.
package lower
