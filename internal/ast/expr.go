package ast

// NameExpr is an identifier reference.
type NameExpr struct {
	NodePos
	ID  string
	Ctx Ctx
}

// NameConstExpr is one of the named singletons: None, True, False.
type NameConstExpr struct {
	NodePos
	Value string
}

type IntLit struct {
	NodePos
	Value int64
	// Text preserves the literal spelling for values outside int64 range.
	Text string
}

type FloatLit struct {
	NodePos
	Value float64
}

type ComplexLit struct {
	NodePos
	Value complex128
}

type StrLit struct {
	NodePos
	Value string
}

type BytesLit struct {
	NodePos
	Value string
}

type EllipsisLit struct {
	NodePos
}

type TupleExpr struct {
	NodePos
	Elts []Expr
	Ctx  Ctx
}

type ListExpr struct {
	NodePos
	Elts []Expr
	Ctx  Ctx
}

type SetExpr struct {
	NodePos
	Elts []Expr
}

// DictExpr pairs Keys and Values positionally.
type DictExpr struct {
	NodePos
	Keys   []Expr
	Values []Expr
}

type BoolOpExpr struct {
	NodePos
	Op     BoolOpKind
	Values []Expr // two or more operands
}

type BinOpExpr struct {
	NodePos
	Left  Expr
	Op    OpKind
	Right Expr
}

type UnaryOpExpr struct {
	NodePos
	Op      UnaryOpKind
	Operand Expr
}

type LambdaExpr struct {
	NodePos
	Args *Arguments
	Body Expr
}

type IfExpr struct {
	NodePos
	Test   Expr
	Body   Expr
	OrElse Expr
}

type ListCompExpr struct {
	NodePos
	Elt        Expr
	Generators []Comprehension
}

type SetCompExpr struct {
	NodePos
	Elt        Expr
	Generators []Comprehension
}

type DictCompExpr struct {
	NodePos
	Key        Expr
	Value      Expr
	Generators []Comprehension
}

type GeneratorExpr struct {
	NodePos
	Elt        Expr
	Generators []Comprehension
}

type AwaitExpr struct {
	NodePos
	Value Expr
}

type YieldExpr struct {
	NodePos
	Value Expr // nil for a bare yield
}

type YieldFromExpr struct {
	NodePos
	Value Expr
}

type CompareExpr struct {
	NodePos
	Left        Expr
	Ops         []CmpOpKind
	Comparators []Expr
}

type CallExpr struct {
	NodePos
	Func     Expr
	Args     []Expr // positional arguments; Starred nodes mark *args
	Keywords []Keyword
}

type AttributeExpr struct {
	NodePos
	Value Expr
	Attr  string
	Ctx   Ctx
}

type SubscriptExpr struct {
	NodePos
	Value Expr
	Slice Slice
	Ctx   Ctx
}

type StarredExpr struct {
	NodePos
	Value Expr
	Ctx   Ctx
}

// JoinedStr is a formatted string literal; Values interleaves plain
// string parts and FormattedValue parts.
type JoinedStr struct {
	NodePos
	Values []Expr
}

// FormattedValue is one interpolated piece of a JoinedStr. Conversion
// flags and format specs are not represented; the converter discards
// them by design of the downstream desugaring.
type FormattedValue struct {
	NodePos
	Value Expr
}

// Slice is the subscript operand: a plain index, a range, or an
// extended (tuple of dims) slice.
type Slice interface {
	Node
	sliceNode()
}

// IndexSlice wraps an ordinary subscript expression.
type IndexSlice struct {
	NodePos
	Value Expr
}

type RangeSlice struct {
	NodePos
	Lower Expr
	Upper Expr
	Step  Expr
}

type ExtSlice struct {
	NodePos
	Dims []Slice
}

func (*NameExpr) exprNode()       {}
func (*NameConstExpr) exprNode()  {}
func (*IntLit) exprNode()         {}
func (*FloatLit) exprNode()       {}
func (*ComplexLit) exprNode()     {}
func (*StrLit) exprNode()         {}
func (*BytesLit) exprNode()       {}
func (*EllipsisLit) exprNode()    {}
func (*TupleExpr) exprNode()      {}
func (*ListExpr) exprNode()       {}
func (*SetExpr) exprNode()        {}
func (*DictExpr) exprNode()       {}
func (*BoolOpExpr) exprNode()     {}
func (*BinOpExpr) exprNode()      {}
func (*UnaryOpExpr) exprNode()    {}
func (*LambdaExpr) exprNode()     {}
func (*IfExpr) exprNode()         {}
func (*ListCompExpr) exprNode()   {}
func (*SetCompExpr) exprNode()    {}
func (*DictCompExpr) exprNode()   {}
func (*GeneratorExpr) exprNode()  {}
func (*AwaitExpr) exprNode()      {}
func (*YieldExpr) exprNode()      {}
func (*YieldFromExpr) exprNode()  {}
func (*CompareExpr) exprNode()    {}
func (*CallExpr) exprNode()       {}
func (*AttributeExpr) exprNode()  {}
func (*SubscriptExpr) exprNode()  {}
func (*StarredExpr) exprNode()    {}
func (*JoinedStr) exprNode()      {}
func (*FormattedValue) exprNode() {}

func (*IndexSlice) sliceNode() {}
func (*RangeSlice) sliceNode() {}
func (*ExtSlice) sliceNode()   {}
