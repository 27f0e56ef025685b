package parser

import (
	"errors"
	"testing"

	"pyfront/internal/ast"
)

func TestParseName(t *testing.T) {
	e, err := ParseTypeComment("int")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	name, ok := e.(*ast.NameExpr)
	if !ok {
		t.Fatalf("expected NameExpr, got %T", e)
	}
	if name.ID != "int" {
		t.Fatalf("expected 'int', got %q", name.ID)
	}
}

func TestParseSubscript(t *testing.T) {
	e, err := ParseTypeComment("List[int]")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	sub, ok := e.(*ast.SubscriptExpr)
	if !ok {
		t.Fatalf("expected SubscriptExpr, got %T", e)
	}
	if base, ok := sub.Value.(*ast.NameExpr); !ok || base.ID != "List" {
		t.Fatalf("unexpected subscript base %#v", sub.Value)
	}
	idx, ok := sub.Slice.(*ast.IndexSlice)
	if !ok {
		t.Fatalf("expected IndexSlice, got %T", sub.Slice)
	}
	if inner, ok := idx.Value.(*ast.NameExpr); !ok || inner.ID != "int" {
		t.Fatalf("unexpected index %#v", idx.Value)
	}
}

func TestParseSubscriptTuple(t *testing.T) {
	e, err := ParseTypeComment("Dict[str, int]")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	sub := e.(*ast.SubscriptExpr)
	idx, ok := sub.Slice.(*ast.IndexSlice)
	if !ok {
		t.Fatalf("expected IndexSlice, got %T", sub.Slice)
	}
	tup, ok := idx.Value.(*ast.TupleExpr)
	if !ok {
		t.Fatalf("expected tuple index, got %T", idx.Value)
	}
	if len(tup.Elts) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(tup.Elts))
	}
}

func TestParseEmptyTupleSubscript(t *testing.T) {
	e, err := ParseTypeComment("Tuple[()]")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	sub := e.(*ast.SubscriptExpr)
	idx := sub.Slice.(*ast.IndexSlice)
	tup, ok := idx.Value.(*ast.TupleExpr)
	if !ok || len(tup.Elts) != 0 {
		t.Fatalf("expected empty tuple index, got %#v", idx.Value)
	}
}

func TestParseDottedName(t *testing.T) {
	e, err := ParseTypeComment("collections.abc.Sequence")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	attr, ok := e.(*ast.AttributeExpr)
	if !ok || attr.Attr != "Sequence" {
		t.Fatalf("unexpected node %#v", e)
	}
}

func TestParseEllipsis(t *testing.T) {
	e, err := ParseTypeComment("...")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, ok := e.(*ast.EllipsisLit); !ok {
		t.Fatalf("expected EllipsisLit, got %T", e)
	}
}

func TestParseStringForwardRef(t *testing.T) {
	e, err := ParseTypeComment("'Node'")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	s, ok := e.(*ast.StrLit)
	if !ok || s.Value != "Node" {
		t.Fatalf("unexpected node %#v", e)
	}
}

func TestParseCallWithKeyword(t *testing.T) {
	e, err := ParseTypeComment("Arg(int, name='x')")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	call, ok := e.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected CallExpr, got %T", e)
	}
	if len(call.Args) != 1 || len(call.Keywords) != 1 {
		t.Fatalf("expected 1 positional + 1 keyword, got %d/%d", len(call.Args), len(call.Keywords))
	}
	if call.Keywords[0].Name != "name" {
		t.Fatalf("unexpected keyword %q", call.Keywords[0].Name)
	}
}

func TestParseFuncType(t *testing.T) {
	ft, err := ParseFuncType("(int, str) -> bool")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(ft.ArgTypes) != 2 {
		t.Fatalf("expected 2 argument types, got %d", len(ft.ArgTypes))
	}
	if ret, ok := ft.Returns.(*ast.NameExpr); !ok || ret.ID != "bool" {
		t.Fatalf("unexpected return %#v", ft.Returns)
	}
}

func TestParseFuncTypeEllipsis(t *testing.T) {
	ft, err := ParseFuncType("(...) -> None")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(ft.ArgTypes) != 1 {
		t.Fatalf("expected 1 argument type, got %d", len(ft.ArgTypes))
	}
	if _, ok := ft.ArgTypes[0].(*ast.EllipsisLit); !ok {
		t.Fatalf("expected ellipsis argument, got %T", ft.ArgTypes[0])
	}
}

func TestParseFuncTypeStarArgs(t *testing.T) {
	ft, err := ParseFuncType("(int, *str, **bool) -> None")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(ft.ArgTypes) != 3 {
		t.Fatalf("expected 3 argument types, got %d", len(ft.ArgTypes))
	}
	if _, ok := ft.ArgTypes[1].(*ast.StarredExpr); !ok {
		t.Fatalf("expected starred second argument, got %T", ft.ArgTypes[1])
	}
}

func TestParseErrorsCarryOffset(t *testing.T) {
	_, err := ParseTypeComment("List[")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if serr.Offset < 0 {
		t.Fatalf("expected a usable offset, got %d", serr.Offset)
	}
}

func TestParseFuncTypeMissingParens(t *testing.T) {
	_, err := ParseFuncType("int, str -> bool")
	if err == nil {
		t.Fatal("expected a syntax error for unparenthesized arguments")
	}
	var serr *SyntaxError
	if !errors.As(err, &serr) || serr.Offset != 0 {
		t.Fatalf("expected offset 0, got %v", err)
	}
}

func TestHexLiteralWithExponentLetters(t *testing.T) {
	e, err := ParseTypeComment("Literal[0x1e2]")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	sub, ok := e.(*ast.SubscriptExpr)
	if !ok {
		t.Fatalf("expected subscript, got %T", e)
	}
	idx, ok := sub.Slice.(*ast.IndexSlice)
	if !ok {
		t.Fatalf("expected index slice, got %T", sub.Slice)
	}
	lit, ok := idx.Value.(*ast.IntLit)
	if !ok {
		t.Fatalf("expected int literal, got %T", idx.Value)
	}
	if lit.Value != 0x1e2 {
		t.Fatalf("value %d, want %d", lit.Value, 0x1e2)
	}
}

func TestFloatExponentStillScans(t *testing.T) {
	e, err := ParseTypeComment("Literal[1e2]")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	sub := e.(*ast.SubscriptExpr)
	lit, ok := sub.Slice.(*ast.IndexSlice).Value.(*ast.FloatLit)
	if !ok {
		t.Fatalf("expected float literal, got %T", sub.Slice.(*ast.IndexSlice).Value)
	}
	if lit.Value != 100 {
		t.Fatalf("value %v, want 100", lit.Value)
	}
}
