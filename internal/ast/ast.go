// Package ast defines the raw, position-annotated syntax tree produced by
// the upstream Python parser. The converter consumes these nodes read-only;
// it never mutates them. Node shapes mirror what the external parser emits,
// one struct per grammar production, discriminated by Go type.
package ast

import (
	"pyfront/internal/source"
)

// Node is any raw tree node. Every node carries line/column provenance.
type Node interface {
	Pos() source.Pos
}

// Expr is a raw expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a raw statement node.
type Stmt interface {
	Node
	stmtNode()
}

// NodePos is embedded by every concrete node to carry provenance.
type NodePos struct {
	Position source.Pos
}

func (n NodePos) Pos() source.Pos { return n.Position }

// At is a convenience constructor for NodePos.
func At(line, col int) NodePos {
	return NodePos{Position: source.Pos{Line: line, Col: col}}
}

// Module is the top-level unit handed to the converter.
type Module struct {
	NodePos
	Body []Stmt
	// TypeIgnores lists the lines carrying "type: ignore" comments.
	TypeIgnores []int
}

// Alias is one name binding in an import form.
type Alias struct {
	Name   string
	AsName string // empty when no explicit alias was written
}

// WithItem is one context-expression/optional-target pair of a with block.
type WithItem struct {
	ContextExpr  Expr
	OptionalVars Expr // nil when no "as" target
}

// ExceptHandler is one except clause of a try statement.
type ExceptHandler struct {
	NodePos
	Type Expr   // nil for a bare except
	Name string // empty when no "as" name
	Body []Stmt
}

// Comprehension is one "for target in iter [if cond]*" clause.
type Comprehension struct {
	Target  Expr
	Iter    Expr
	Ifs     []Expr
	IsAsync bool
}

// Keyword is one keyword argument of a call. An empty Name marks a
// double-star (**kwargs) argument.
type Keyword struct {
	Name  string
	Value Expr
}

// Arg is a single declared parameter.
type Arg struct {
	NodePos
	Name        string
	Annotation  Expr   // nil when unannotated
	TypeComment string // per-parameter trailing type comment, empty when absent
}

// Arguments is the raw parameter list of a function or lambda: required
// and defaulted positionals share Args with Defaults as a suffix, matching
// the upstream parser's layout.
type Arguments struct {
	Args       []*Arg
	Defaults   []Expr // defaults for the trailing len(Defaults) entries of Args
	Vararg     *Arg   // *args, nil when absent
	KwOnly     []*Arg
	KwDefaults []Expr // parallel to KwOnly; nil entries mean "no default"
	Kwarg      *Arg   // **kwargs, nil when absent
}

// FuncType is the parsed form of a whole-signature type comment,
// "(T1, T2) -> R".
type FuncType struct {
	NodePos
	ArgTypes []Expr
	Returns  Expr
}
