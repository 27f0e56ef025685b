package ast

// OpKind enumerates binary arithmetic/bitwise operators.
type OpKind uint8

const (
	OpAdd OpKind = iota
	OpSub
	OpMult
	OpMatMult
	OpDiv
	OpMod
	OpPow
	OpLShift
	OpRShift
	OpBitOr
	OpBitXor
	OpBitAnd
	OpFloorDiv
)

// Symbol returns the surface operator symbol. The converter stores
// operators as these symbolic strings, never as raw kinds.
func (k OpKind) Symbol() string {
	switch k {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMult:
		return "*"
	case OpMatMult:
		return "@"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "**"
	case OpLShift:
		return "<<"
	case OpRShift:
		return ">>"
	case OpBitOr:
		return "|"
	case OpBitXor:
		return "^"
	case OpBitAnd:
		return "&"
	case OpFloorDiv:
		return "//"
	}
	return "?"
}

// UnaryOpKind enumerates unary operators.
type UnaryOpKind uint8

const (
	UnaryInvert UnaryOpKind = iota
	UnaryNot
	UnaryPlus
	UnaryMinus
)

func (k UnaryOpKind) Symbol() string {
	switch k {
	case UnaryInvert:
		return "~"
	case UnaryNot:
		return "not"
	case UnaryPlus:
		return "+"
	case UnaryMinus:
		return "-"
	}
	return "?"
}

// BoolOpKind enumerates boolean chain operators.
type BoolOpKind uint8

const (
	BoolAnd BoolOpKind = iota
	BoolOr
)

func (k BoolOpKind) Symbol() string {
	if k == BoolAnd {
		return "and"
	}
	return "or"
}

// CmpOpKind enumerates comparison operators.
type CmpOpKind uint8

const (
	CmpGt CmpOpKind = iota
	CmpLt
	CmpEq
	CmpGtE
	CmpLtE
	CmpNotEq
	CmpIs
	CmpIsNot
	CmpIn
	CmpNotIn
)

func (k CmpOpKind) Symbol() string {
	switch k {
	case CmpGt:
		return ">"
	case CmpLt:
		return "<"
	case CmpEq:
		return "=="
	case CmpGtE:
		return ">="
	case CmpLtE:
		return "<="
	case CmpNotEq:
		return "!="
	case CmpIs:
		return "is"
	case CmpIsNot:
		return "is not"
	case CmpIn:
		return "in"
	case CmpNotIn:
		return "not in"
	}
	return "?"
}

// Ctx marks whether an expression appears in load or store position.
// Only list/tuple literals care: a list in store context is converted
// as a tuple target.
type Ctx uint8

const (
	Load Ctx = iota
	Store
	Del
)
