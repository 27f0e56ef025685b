package sem

import (
	"pyfront/internal/source"
	"pyfront/internal/types"
)

// ExprKind enumerates semantic expression kinds.
type ExprKind uint8

const (
	ExprName ExprKind = iota
	ExprInt
	ExprFloat
	ExprComplex
	ExprStr
	ExprBytes
	ExprEllipsis
	ExprTuple
	ExprList
	ExprSet
	ExprDict
	ExprListComp
	ExprSetComp
	ExprDictComp
	ExprGenerator
	ExprConditional
	ExprOp
	ExprUnary
	ExprComparison
	ExprLambda
	ExprCall
	ExprMember
	ExprSuper
	ExprIndex
	ExprSlice
	ExprStar
	ExprAwait
	ExprYield
	ExprYieldFrom
	ExprTemp
)

func (k ExprKind) String() string {
	switch k {
	case ExprName:
		return "Name"
	case ExprInt:
		return "Int"
	case ExprFloat:
		return "Float"
	case ExprComplex:
		return "Complex"
	case ExprStr:
		return "Str"
	case ExprBytes:
		return "Bytes"
	case ExprEllipsis:
		return "Ellipsis"
	case ExprTuple:
		return "Tuple"
	case ExprList:
		return "List"
	case ExprSet:
		return "Set"
	case ExprDict:
		return "Dict"
	case ExprListComp:
		return "ListComp"
	case ExprSetComp:
		return "SetComp"
	case ExprDictComp:
		return "DictComp"
	case ExprGenerator:
		return "Generator"
	case ExprConditional:
		return "Conditional"
	case ExprOp:
		return "Op"
	case ExprUnary:
		return "Unary"
	case ExprComparison:
		return "Comparison"
	case ExprLambda:
		return "Lambda"
	case ExprCall:
		return "Call"
	case ExprMember:
		return "Member"
	case ExprSuper:
		return "Super"
	case ExprIndex:
		return "Index"
	case ExprSlice:
		return "Slice"
	case ExprStar:
		return "Star"
	case ExprAwait:
		return "Await"
	case ExprYield:
		return "Yield"
	case ExprYieldFrom:
		return "YieldFrom"
	case ExprTemp:
		return "Temp"
	default:
		return "Unknown"
	}
}

// Expr is one semantic expression.
type Expr struct {
	Kind ExprKind
	Pos  source.Pos
	Data ExprData
}

// ExprData is the interface for expression-specific payloads.
type ExprData interface {
	exprData()
}

type NameData struct {
	Name string
}

type IntData struct {
	Value int64
	// Text preserves the spelling for values outside int64 range.
	Text string
}

type FloatData struct {
	Value float64
}

type ComplexData struct {
	Value complex128
}

type StrData struct {
	Value string
}

type BytesData struct {
	Value string
}

type EllipsisData struct{}

type TupleData struct {
	Items []*Expr
}

type ListData struct {
	Items []*Expr
}

type SetData struct {
	Items []*Expr
}

// DictData pairs Keys and Values positionally.
type DictData struct {
	Keys   []*Expr
	Values []*Expr
}

// ComprehensionClause is one "for target in iter [if cond]*" clause.
type ComprehensionClause struct {
	Target  *Expr
	Iter    *Expr
	Ifs     []*Expr
	IsAsync bool
}

// GeneratorData is the common shape of generator expressions; list and
// set comprehensions wrap one via ListCompData/SetCompData.
type GeneratorData struct {
	Elt     *Expr
	Clauses []ComprehensionClause
}

type ListCompData struct {
	// Gen is always an ExprGenerator.
	Gen *Expr
}

type SetCompData struct {
	Gen *Expr
}

type DictCompData struct {
	Key     *Expr
	Value   *Expr
	Clauses []ComprehensionClause
}

type ConditionalData struct {
	Cond *Expr
	Then *Expr
	Else *Expr
}

// OpData is a binary operator application. Boolean chains arrive here
// already right-folded into nested binary nodes.
type OpData struct {
	Op    string
	Left  *Expr
	Right *Expr
}

type UnaryData struct {
	Op      string
	Operand *Expr
}

// ComparisonData is a comparison chain;
// len(Operators) == len(Operands)-1 always holds.
type ComparisonData struct {
	Operators []string
	Operands  []*Expr
}

type LambdaData struct {
	Args []*Argument
	// Body is a one-statement block holding the return of the lambda
	// expression.
	Body *Block
}

// CallData flattens call arguments into three parallel arrays: values,
// kind tags and optional keyword names (empty for non-keyword slots).
type CallData struct {
	Callee *Expr
	Args   []*Expr
	Kinds  []types.ArgKind
	Names  []string
}

type MemberData struct {
	Value *Expr
	Name  string
}

// SuperData tags attribute access on a super() call.
type SuperData struct {
	Name string
	Call *Expr
}

type IndexData struct {
	Base  *Expr
	Index *Expr
}

type SliceData struct {
	Lower *Expr
	Upper *Expr
	Step  *Expr
}

type StarData struct {
	Value *Expr
}

type AwaitData struct {
	Value *Expr
}

type YieldData struct {
	Value *Expr // nil for a bare yield
}

type YieldFromData struct {
	Value *Expr
}

// TempData is a synthetic placeholder expression carrying only a type,
// e.g. the missing right-hand side of "x: int".
type TempData struct {
	Type  types.Type
	NoRHS bool
}

func (NameData) exprData()        {}
func (IntData) exprData()         {}
func (FloatData) exprData()       {}
func (ComplexData) exprData()     {}
func (StrData) exprData()         {}
func (BytesData) exprData()       {}
func (EllipsisData) exprData()    {}
func (TupleData) exprData()       {}
func (ListData) exprData()        {}
func (SetData) exprData()         {}
func (DictData) exprData()        {}
func (GeneratorData) exprData()   {}
func (ListCompData) exprData()    {}
func (SetCompData) exprData()     {}
func (DictCompData) exprData()    {}
func (ConditionalData) exprData() {}
func (OpData) exprData()          {}
func (UnaryData) exprData()       {}
func (ComparisonData) exprData()  {}
func (LambdaData) exprData()      {}
func (CallData) exprData()        {}
func (MemberData) exprData()      {}
func (SuperData) exprData()       {}
func (IndexData) exprData()       {}
func (SliceData) exprData()       {}
func (StarData) exprData()        {}
func (AwaitData) exprData()       {}
func (YieldData) exprData()       {}
func (YieldFromData) exprData()   {}
func (TempData) exprData()        {}
