// Package types defines the type-expression AST produced by the
// type-expression evaluator. Nothing here is resolved: names are unbound
// references and fallbacks are explicit placeholders that later analysis
// phases are contractually required to replace.
package types

import (
	"strings"

	"pyfront/internal/source"
)

// Type is the tagged union over all type-expression values.
type Type interface {
	typeValue()
	Pos() source.Pos
}

// TypePos is embedded by every concrete type to carry provenance.
type TypePos struct {
	Position source.Pos
}

func (t TypePos) Pos() source.Pos { return t.Position }

// AnyKind records why a value degraded to the fully-dynamic type.
type AnyKind uint8

const (
	// AnyUnannotated: no type was declared.
	AnyUnannotated AnyKind = iota
	// AnyFromError: a malformed annotation or type comment degraded here.
	AnyFromError
	// AnySpecialForm: an implicit dynamic type inserted by the converter,
	// such as the receiver parameter of a class-body type comment.
	AnySpecialForm
)

func (k AnyKind) String() string {
	switch k {
	case AnyUnannotated:
		return "unannotated"
	case AnyFromError:
		return "from-error"
	case AnySpecialForm:
		return "special-form"
	}
	return "unknown"
}

// AnyType is the fully-dynamic type.
type AnyType struct {
	TypePos
	Kind AnyKind
}

// UnboundType is a not-yet-resolved name reference, optionally with
// generic arguments attached from a subscript.
type UnboundType struct {
	TypePos
	Name string
	Args []Type
	// EmptyTupleIndex is set for Name[()] so downstream consumers can
	// special-case the zero-argument generic application.
	EmptyTupleIndex bool
	// Optional marks a type that should be wrapped in an Optional
	// because its parameter defaults to None.
	Optional bool
}

// TupleType is an implicit tuple of types, e.g. "(int, str)".
type TupleType struct {
	TypePos
	Items    []Type
	Implicit bool
	// Fallback is an UnresolvedType placeholder until semantic analysis
	// patches in the real tuple class reference.
	Fallback Type
}

// TypeList is a bracketed list of types, the variadic-argument shorthand.
// Only legal directly inside a callable's argument position.
type TypeList struct {
	TypePos
	Items []Type
}

// EllipsisType is the "..." marker.
type EllipsisType struct {
	TypePos
}

// CallableArgument wraps one argument-constructor literal such as
// Arg(int, 'x') inside a bracketed type list.
type CallableArgument struct {
	TypePos
	Typ         Type
	Name        string
	HasName     bool
	Constructor string
}

// Definition is a back reference from a callable type to the function
// statement it was derived from, filled in after construction.
type Definition interface {
	FuncName() string
}

// CallableType is a whole-function signature: parallel argument type,
// kind and (possibly anonymized) name lists plus the return type.
type CallableType struct {
	TypePos
	ArgTypes []Type
	ArgKinds []ArgKind
	// ArgNames holds declared names; an empty string marks an elided
	// (anonymized) parameter.
	ArgNames []string
	Ret      Type
	// Fallback is an UnresolvedType placeholder until semantic analysis
	// patches in the real function class reference.
	Fallback Type
	// Definition is filled in by the converter once the owning function
	// statement exists.
	Definition Definition
}

// UnresolvedType is an explicit placeholder for a class reference that
// cannot be computed at conversion time. Downstream phases must replace
// it; it never survives analysis.
type UnresolvedType struct {
	TypePos
	Reason string
}

func (*AnyType) typeValue()          {}
func (*UnboundType) typeValue()      {}
func (*TupleType) typeValue()        {}
func (*TypeList) typeValue()         {}
func (*EllipsisType) typeValue()     {}
func (*CallableArgument) typeValue() {}
func (*CallableType) typeValue()     {}
func (*UnresolvedType) typeValue()   {}

// NewUnresolved returns the standard placeholder fallback.
func NewUnresolved(reason string) *UnresolvedType {
	return &UnresolvedType{Reason: reason}
}

// String renders a compact, stable description, used by tests and the
// typeexpr CLI command.
func String(t Type) string {
	switch v := t.(type) {
	case nil:
		return "<nil>"
	case *AnyType:
		return "Any(" + v.Kind.String() + ")"
	case *UnboundType:
		var sb strings.Builder
		sb.WriteString(v.Name)
		if len(v.Args) > 0 || v.EmptyTupleIndex {
			sb.WriteString("[")
			for i, a := range v.Args {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(String(a))
			}
			sb.WriteString("]")
		}
		if v.Optional {
			sb.WriteString("?")
		}
		return sb.String()
	case *TupleType:
		items := make([]string, len(v.Items))
		for i, it := range v.Items {
			items[i] = String(it)
		}
		return "tuple(" + strings.Join(items, ", ") + ")"
	case *TypeList:
		items := make([]string, len(v.Items))
		for i, it := range v.Items {
			items[i] = String(it)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case *EllipsisType:
		return "..."
	case *CallableArgument:
		s := v.Constructor + "(" + String(v.Typ)
		if v.HasName {
			s += ", '" + v.Name + "'"
		}
		return s + ")"
	case *CallableType:
		args := make([]string, len(v.ArgTypes))
		for i, a := range v.ArgTypes {
			args[i] = String(a)
		}
		return "def (" + strings.Join(args, ", ") + ") -> " + String(v.Ret)
	case *UnresolvedType:
		return "<unresolved: " + v.Reason + ">"
	}
	return "<unknown>"
}
