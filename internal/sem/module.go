// Package sem defines the semantic AST the converter produces for the
// downstream analysis pipeline. Statements and expressions are tagged
// unions: a Kind discriminant, line/column provenance and a kind-specific
// Data payload.
package sem

import (
	"pyfront/internal/source"
)

// Module is the top-level semantic unit for one source file.
type Module struct {
	// Body is the converted top-level statement sequence, overloads
	// already coalesced.
	Body []*Stmt
	// Imports collects every import statement encountered anywhere in
	// the file, in traversal order. The statements are shared with the
	// blocks that contain them.
	Imports []*Stmt
	// IsStub marks an interface-only (.pyi) source.
	IsStub bool
	// IgnoredLines holds the line numbers where diagnostics are
	// suppressed by the source.
	IgnoredLines map[int]bool
	// Path is stamped by the caller after a successful run.
	Path string
}

// Block is an ordered statement sequence with one representative
// position for diagnostics.
type Block struct {
	Body []*Stmt
	Pos  source.Pos
}

// Var is a symbol placeholder allocated during conversion, e.g. the
// variable bound to a decorated function's eventual value.
type Var struct {
	Name string
	// IsReady is false until a later phase binds the value.
	IsReady bool
	Pos     source.Pos
}
