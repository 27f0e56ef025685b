package sem

import (
	"pyfront/internal/types"
)

// Argument is one bound parameter of a function or lambda.
type Argument struct {
	Var *Var
	// TypeAnnotation is the resolved declared type; nil when unset.
	TypeAnnotation types.Type
	// Initializer is the default expression; nil when the parameter has
	// no default.
	Initializer *Expr
	Kind        types.ArgKind
}
