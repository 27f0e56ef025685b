package sem

import (
	"pyfront/internal/source"
	"pyfront/internal/types"
)

// StmtKind enumerates semantic statement kinds.
type StmtKind uint8

const (
	StmtExpr StmtKind = iota
	StmtAssign
	StmtAugAssign
	StmtReturn
	StmtDel
	StmtRaise
	StmtAssert
	StmtPass
	StmtBreak
	StmtContinue
	StmtGlobal
	StmtNonlocal
	StmtWhile
	StmtFor
	StmtIf
	StmtWith
	StmtTry
	StmtImport
	StmtImportFrom
	StmtImportAll
	StmtClass
	StmtFunc
	StmtDecorator
	StmtOverload
)

func (k StmtKind) String() string {
	switch k {
	case StmtExpr:
		return "Expr"
	case StmtAssign:
		return "Assign"
	case StmtAugAssign:
		return "AugAssign"
	case StmtReturn:
		return "Return"
	case StmtDel:
		return "Del"
	case StmtRaise:
		return "Raise"
	case StmtAssert:
		return "Assert"
	case StmtPass:
		return "Pass"
	case StmtBreak:
		return "Break"
	case StmtContinue:
		return "Continue"
	case StmtGlobal:
		return "Global"
	case StmtNonlocal:
		return "Nonlocal"
	case StmtWhile:
		return "While"
	case StmtFor:
		return "For"
	case StmtIf:
		return "If"
	case StmtWith:
		return "With"
	case StmtTry:
		return "Try"
	case StmtImport:
		return "Import"
	case StmtImportFrom:
		return "ImportFrom"
	case StmtImportAll:
		return "ImportAll"
	case StmtClass:
		return "Class"
	case StmtFunc:
		return "Func"
	case StmtDecorator:
		return "Decorator"
	case StmtOverload:
		return "Overload"
	default:
		return "Unknown"
	}
}

// Stmt is one semantic statement.
type Stmt struct {
	Kind StmtKind
	Pos  source.Pos
	Data StmtData
}

// StmtData is the interface for statement-specific payloads.
type StmtData interface {
	stmtData()
}

type ExprStmtData struct {
	Value *Expr
}

type AssignData struct {
	Targets []*Expr
	Value   *Expr
	// Type is the declared type from an annotation or a trailing type
	// comment; nil when untyped.
	Type types.Type
	// NewSyntax distinguishes "x: T = v" from comment-typed assignments.
	NewSyntax bool
}

type AugAssignData struct {
	Op     string
	Target *Expr
	Value  *Expr
}

type ReturnData struct {
	Value *Expr // nil for a bare return
}

type DelData struct {
	// Target is a single expression; multiple delete targets arrive
	// wrapped in one tuple expression.
	Target *Expr
}

type RaiseData struct {
	Exc   *Expr // nil for a bare raise
	Cause *Expr // nil without "from"
}

type AssertData struct {
	Cond *Expr
	Msg  *Expr // nil when no message
}

type PassData struct{}

type BreakData struct{}

type ContinueData struct{}

type GlobalData struct {
	Names []string
}

type NonlocalData struct {
	Names []string
}

type WhileData struct {
	Cond *Expr
	Body *Block
	Else *Block // nil when absent
}

type ForData struct {
	Target *Expr
	Iter   *Expr
	Body   *Block
	Else   *Block // nil when absent
	// ElemType is the declared element type from a trailing type
	// comment; nil when untyped.
	ElemType types.Type
	IsAsync  bool
}

// IfData keeps the elif chain flattened: Conds and Bodies are parallel,
// Else belongs to the final branch.
type IfData struct {
	Conds  []*Expr
	Bodies []*Block
	Else   *Block // nil when absent
}

type WithData struct {
	// Exprs and Targets are parallel per with-item; a nil target means
	// the item has no "as" binding.
	Exprs      []*Expr
	Targets    []*Expr
	Body       *Block
	TargetType types.Type
	IsAsync    bool
}

type TryData struct {
	Body *Block
	// Vars, Types and Handlers are parallel per except clause; a nil
	// var means no "as" name, a nil type means a bare except.
	Vars     []*Expr
	Types    []*Expr
	Handlers []*Block
	Else     *Block // nil when absent
	Final    *Block // nil when absent
}

// ImportName is one module binding: the canonical name after
// translation plus the local alias (empty when none).
type ImportName struct {
	Name string
	As   string
}

type ImportData struct {
	Names []ImportName
}

type ImportFromData struct {
	Module string
	Level  int
	Names  []ImportName
}

type ImportAllData struct {
	Module string
	Level  int
}

// ClassData is the payload of a class definition. Stored by pointer so
// decorator lists and metaclass info can be patched during conversion.
type ClassData struct {
	Name       string
	Bases      []*Expr
	Keywords   []ClassKeyword
	Metaclass  *Expr // nil unless a metaclass= keyword was present
	Decorators []*Expr
	Body       *Block
}

type ClassKeyword struct {
	Name  string
	Value *Expr
}

// FuncData is the payload of a function definition. Stored by pointer:
// the callable type's Definition back reference and the overload
// coalescer both alias it.
type FuncData struct {
	Name string
	Args []*Argument
	Body *Block
	// Type is the derived callable signature; nil for untyped functions.
	Type *types.CallableType
	// UnanalyzedType preserves the signature before any in-place edits
	// later phases perform.
	UnanalyzedType *types.CallableType
	IsCoroutine    bool
	IsDecorated    bool
}

// FuncName implements types.Definition.
func (f *FuncData) FuncName() string { return f.Name }

// DecoratorData wraps a decorated function together with its decorator
// expressions and the placeholder variable for the decorated value.
type DecoratorData struct {
	Func       *Stmt // always a StmtFunc
	Decorators []*Expr
	Var        *Var
}

// OverloadData is a run of two or more consecutive same-named
// function-or-decorator statements.
type OverloadData struct {
	Parts []*Stmt
}

func (ExprStmtData) stmtData()   {}
func (AssignData) stmtData()     {}
func (AugAssignData) stmtData()  {}
func (ReturnData) stmtData()     {}
func (DelData) stmtData()        {}
func (RaiseData) stmtData()      {}
func (AssertData) stmtData()     {}
func (PassData) stmtData()       {}
func (BreakData) stmtData()      {}
func (ContinueData) stmtData()   {}
func (GlobalData) stmtData()     {}
func (NonlocalData) stmtData()   {}
func (WhileData) stmtData()      {}
func (ForData) stmtData()        {}
func (IfData) stmtData()         {}
func (WithData) stmtData()       {}
func (TryData) stmtData()        {}
func (ImportData) stmtData()     {}
func (ImportFromData) stmtData() {}
func (ImportAllData) stmtData()  {}
func (*ClassData) stmtData()     {}
func (*FuncData) stmtData()      {}
func (*DecoratorData) stmtData() {}
func (OverloadData) stmtData()   {}

// FuncStmtName returns the defined name when s is a bare function or a
// decorator-wrapped function statement.
func FuncStmtName(s *Stmt) (string, bool) {
	switch d := s.Data.(type) {
	case *FuncData:
		return d.Name, true
	case *DecoratorData:
		if fd, ok := d.Func.Data.(*FuncData); ok {
			return fd.Name, true
		}
	}
	return "", false
}
