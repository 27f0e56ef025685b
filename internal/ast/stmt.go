package ast

// FunctionDef covers both def and async def; the parser sets IsAsync
// instead of emitting a distinct node shape.
type FunctionDef struct {
	NodePos
	Name        string
	Args        *Arguments
	Body        []Stmt
	Decorators  []Expr
	Returns     Expr   // inline return annotation, nil when absent
	TypeComment string // whole-signature type comment, empty when absent
	IsAsync     bool
}

type ClassDef struct {
	NodePos
	Name       string
	Bases      []Expr
	Keywords   []Keyword
	Body       []Stmt
	Decorators []Expr
}

type ReturnStmt struct {
	NodePos
	Value Expr // nil for a bare return
}

type DeleteStmt struct {
	NodePos
	Targets []Expr
}

type AssignStmt struct {
	NodePos
	Targets     []Expr
	Value       Expr
	TypeComment string
}

// AnnAssignStmt is the new-syntax annotated assignment "x: T = v".
type AnnAssignStmt struct {
	NodePos
	Target     Expr
	Annotation Expr
	Value      Expr // nil for a bare declaration "x: T"
}

type AugAssignStmt struct {
	NodePos
	Target Expr
	Op     OpKind
	Value  Expr
}

type ForStmt struct {
	NodePos
	Target      Expr
	Iter        Expr
	Body        []Stmt
	OrElse      []Stmt
	TypeComment string
	IsAsync     bool
}

type WhileStmt struct {
	NodePos
	Test   Expr
	Body   []Stmt
	OrElse []Stmt
}

type IfStmt struct {
	NodePos
	Test   Expr
	Body   []Stmt
	OrElse []Stmt
}

type WithStmt struct {
	NodePos
	Items       []WithItem
	Body        []Stmt
	TypeComment string
	IsAsync     bool
}

type RaiseStmt struct {
	NodePos
	Exc   Expr // nil for a bare raise
	Cause Expr // nil without "from"
}

type TryStmt struct {
	NodePos
	Body     []Stmt
	Handlers []*ExceptHandler
	OrElse   []Stmt
	Final    []Stmt
}

type AssertStmt struct {
	NodePos
	Test Expr
	Msg  Expr // nil when no message
}

type ImportStmt struct {
	NodePos
	Names []Alias
}

// ImportFromStmt covers "from mod import a, b" and "from mod import *"
// (the latter carries a single "*" alias).
type ImportFromStmt struct {
	NodePos
	Module string // empty for a purely relative import
	Names  []Alias
	Level  int // number of leading dots
}

type GlobalStmt struct {
	NodePos
	Names []string
}

type NonlocalStmt struct {
	NodePos
	Names []string
}

type ExprStmt struct {
	NodePos
	Value Expr
}

type PassStmt struct {
	NodePos
}

type BreakStmt struct {
	NodePos
}

type ContinueStmt struct {
	NodePos
}

func (*FunctionDef) stmtNode()    {}
func (*ClassDef) stmtNode()       {}
func (*ReturnStmt) stmtNode()     {}
func (*DeleteStmt) stmtNode()     {}
func (*AssignStmt) stmtNode()     {}
func (*AnnAssignStmt) stmtNode()  {}
func (*AugAssignStmt) stmtNode()  {}
func (*ForStmt) stmtNode()        {}
func (*WhileStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WithStmt) stmtNode()       {}
func (*RaiseStmt) stmtNode()      {}
func (*TryStmt) stmtNode()        {}
func (*AssertStmt) stmtNode()     {}
func (*ImportStmt) stmtNode()     {}
func (*ImportFromStmt) stmtNode() {}
func (*GlobalStmt) stmtNode()     {}
func (*NonlocalStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()       {}
func (*PassStmt) stmtNode()       {}
func (*BreakStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()   {}
