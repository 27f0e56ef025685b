package convert

import (
	"fmt"
	"strings"

	"pyfront/internal/ast"
	"pyfront/internal/diag"
	"pyfront/internal/parser"
	"pyfront/internal/source"
	"pyfront/internal/types"
)

const (
	msgInvalidType       = "invalid type comment or annotation"
	msgTypeCommentSyntax = "syntax error in type comment"
	msgDuplicateSig      = "Function has duplicate type signatures"
)

// typeFromComment parses a textual type comment and evaluates it.
// Returns nil on a lexical or grammatical failure, after reporting it;
// contexts that must not stay typeless substitute a dynamic type.
func (c *converter) typeFromComment(text string, pos source.Pos) types.Type {
	expr, err := parser.ParseTypeComment(strings.TrimSpace(text))
	if err != nil {
		c.fail(diag.TypeCommentSyntaxError, pos, msgTypeCommentSyntax)
		return nil
	}
	return c.typeExpr(expr, pos)
}

// TypeFromCommentText is the standalone entry for evaluating one type
// expression fragment, used by tooling that checks comments in
// isolation. It reports through rep and degrades like the in-tree path.
func TypeFromCommentText(text string, pos source.Pos, rep diag.Reporter) types.Type {
	if rep == nil {
		rep = diag.NopReporter{}
	}
	c := &converter{rep: rep}
	t := c.typeFromComment(text, pos)
	if t == nil {
		return errAny(pos)
	}
	return t
}

// typeExpr evaluates a restricted literal expression sub-tree as a type.
func (c *converter) typeExpr(e ast.Expr, pos source.Pos) types.Type {
	tc := &typeConverter{c: c}
	t := tc.visit(e)
	if t == nil {
		return errAny(pos)
	}
	return t
}

// typeConverter walks a restricted expression tree, keeping an explicit
// ancestor stack so context-sensitive forms (constructor-call literals,
// bracketed type lists) can check their immediate syntactic parent.
type typeConverter struct {
	c     *converter
	stack []ast.Expr
}

func (tc *typeConverter) visit(e ast.Expr) types.Type {
	if e == nil {
		return nil
	}
	tc.stack = append(tc.stack, e)
	t := tc.dispatch(e)
	tc.stack = tc.stack[:len(tc.stack)-1]
	return t
}

// parent is the node above the one currently dispatched.
func (tc *typeConverter) parent() ast.Expr {
	if len(tc.stack) < 2 {
		return nil
	}
	return tc.stack[len(tc.stack)-2]
}

func (tc *typeConverter) visitList(exprs []ast.Expr) []types.Type {
	out := make([]types.Type, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, tc.visit(e))
	}
	return out
}

func (tc *typeConverter) invalidType(e ast.Expr) types.Type {
	tc.c.fail(diag.InvalidTypeExpression, e.Pos(), msgInvalidType)
	return errAny(e.Pos())
}

func (tc *typeConverter) dispatch(e ast.Expr) types.Type {
	switch n := e.(type) {
	case *ast.NameExpr:
		return &types.UnboundType{TypePos: typePosAt(n.Pos()), Name: n.ID}

	case *ast.NameConstExpr:
		return &types.UnboundType{TypePos: typePosAt(n.Pos()), Name: n.Value}

	case *ast.StrLit:
		// A quoted forward reference: the string content is itself a
		// type expression, parsed recursively.
		t := tc.c.typeFromComment(n.Value, n.Pos())
		if t == nil {
			return errAny(n.Pos())
		}
		return t

	case *ast.SubscriptExpr:
		return tc.subscriptType(n)

	case *ast.TupleExpr:
		return &types.TupleType{
			TypePos:  typePosAt(n.Pos()),
			Items:    tc.visitList(n.Elts),
			Implicit: true,
			Fallback: types.NewUnresolved("tuple fallback"),
		}

	case *ast.AttributeExpr:
		base := tc.visit(n.Value)
		if ub, ok := base.(*types.UnboundType); ok && len(ub.Args) == 0 {
			return &types.UnboundType{TypePos: typePosAt(n.Pos()), Name: ub.Name + "." + n.Attr}
		}
		return tc.invalidType(n)

	case *ast.EllipsisLit:
		return &types.EllipsisType{TypePos: typePosAt(n.Pos())}

	case *ast.ListExpr:
		return &types.TypeList{TypePos: typePosAt(n.Pos()), Items: tc.visitList(n.Elts)}

	case *ast.CallExpr:
		return tc.callType(n)

	default:
		return tc.invalidType(e)
	}
}

// subscriptType attaches generic arguments to an unbound name:
// Name[T] gives one argument, Name[T1, T2] several, and Name[()] zero
// arguments with the empty-tuple marker set.
func (tc *typeConverter) subscriptType(n *ast.SubscriptExpr) types.Type {
	idx, ok := n.Slice.(*ast.IndexSlice)
	if !ok {
		tc.c.fail(diag.TypeCommentSyntaxError, n.Pos(), msgTypeCommentSyntax)
		return errAny(n.Pos())
	}

	emptyTuple := false
	var params []types.Type
	if tup, ok := idx.Value.(*ast.TupleExpr); ok {
		params = tc.visitList(tup.Elts)
		emptyTuple = len(tup.Elts) == 0
	} else {
		params = []types.Type{tc.visit(idx.Value)}
	}

	base := tc.visit(n.Value)
	if ub, ok := base.(*types.UnboundType); ok && len(ub.Args) == 0 {
		return &types.UnboundType{
			TypePos:         typePosAt(n.Pos()),
			Name:            ub.Name,
			Args:            params,
			EmptyTupleIndex: emptyTuple,
		}
	}
	return tc.invalidType(n)
}

// callType interprets an argument-constructor literal such as
// Arg(int, 'x'). It is legal only as a direct element of a bracketed
// type list.
func (tc *typeConverter) callType(n *ast.CallExpr) types.Type {
	constructor := stringifyName(n.Func)

	if _, ok := tc.parent().(*ast.ListExpr); !ok {
		tc.c.fail(diag.InvalidTypeExpression, n.Pos(), msgInvalidType)
		if constructor != "" {
			tc.c.note(diag.Suggestion, n.Pos(),
				"Suggestion: use "+constructor+"[...] instead of "+constructor+"(...)")
		}
		return errAny(n.Pos())
	}
	if constructor == "" {
		tc.c.fail(diag.ArgConstructorMisuse, n.Pos(), "Expected arg constructor name")
	}

	name := ""
	hasName := false
	var typ types.Type = specialAny(n.Pos())
	typSet := false

	for i, arg := range n.Args {
		switch i {
		case 0:
			typ = tc.visit(arg)
			typSet = true
		case 1:
			name, hasName = tc.extractArgumentName(arg)
		default:
			tc.c.fail(diag.ArgConstructorMisuse, n.Func.Pos(),
				"Too many arguments for argument constructor")
		}
	}
	for _, k := range n.Keywords {
		switch k.Name {
		case "name":
			if hasName {
				tc.c.fail(diag.ArgConstructorMisuse, n.Func.Pos(),
					`"`+constructor+`" gets multiple values for keyword argument "name"`)
			}
			name, hasName = tc.extractArgumentName(k.Value)
		case "type":
			if typSet {
				tc.c.fail(diag.ArgConstructorMisuse, n.Func.Pos(),
					`"`+constructor+`" gets multiple values for keyword argument "type"`)
			}
			typ = tc.visit(k.Value)
			typSet = true
		default:
			tc.c.fail(diag.ArgConstructorMisuse, k.Value.Pos(),
				`Unexpected argument "`+k.Name+`" for argument constructor`)
		}
	}
	return &types.CallableArgument{
		TypePos:     typePosAt(n.Pos()),
		Typ:         typ,
		Name:        name,
		HasName:     hasName,
		Constructor: constructor,
	}
}

// extractArgumentName accepts a quoted string or the None literal
// (meaning "no name"); anything else is a misuse.
func (tc *typeConverter) extractArgumentName(e ast.Expr) (string, bool) {
	switch n := e.(type) {
	case *ast.StrLit:
		return strings.TrimSpace(n.Value), true
	case *ast.NameConstExpr:
		if n.Value == "None" {
			return "", false
		}
	}
	tc.c.fail(diag.ArgConstructorMisuse, e.Pos(),
		"Expected string literal for argument name, got "+rawNodeName(e))
	return "", false
}

// stringifyName renders a name or dotted-attribute chain; empty when
// the expression is neither.
func stringifyName(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.NameExpr:
		return n.ID
	case *ast.AttributeExpr:
		if base := stringifyName(n.Value); base != "" {
			return base + "." + n.Attr
		}
	}
	return ""
}

// rawNodeName is the raw node's shape name for diagnostics.
func rawNodeName(e ast.Expr) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", e), "*ast.")
}

func typePosAt(pos source.Pos) types.TypePos {
	return types.TypePos{Position: pos}
}

func errAny(pos source.Pos) *types.AnyType {
	return &types.AnyType{TypePos: typePosAt(pos), Kind: types.AnyFromError}
}

func unannotatedAny(pos source.Pos) *types.AnyType {
	return &types.AnyType{TypePos: typePosAt(pos), Kind: types.AnyUnannotated}
}

func specialAny(pos source.Pos) *types.AnyType {
	return &types.AnyType{TypePos: typePosAt(pos), Kind: types.AnySpecialForm}
}
