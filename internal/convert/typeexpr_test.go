package convert

import (
	"testing"

	"pyfront/internal/diag"
	"pyfront/internal/source"
	"pyfront/internal/types"
)

func evalFragment(t *testing.T, text string) (types.Type, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(64)
	typ := TypeFromCommentText(text, source.Pos{Line: 1, Col: 0}, diag.BagReporter{Bag: bag})
	return typ, bag
}

func TestEvalGenericApplication(t *testing.T) {
	typ, bag := evalFragment(t, "List[int]")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	ub, ok := typ.(*types.UnboundType)
	if !ok || ub.Name != "List" {
		t.Fatalf("got %s", types.String(typ))
	}
	if len(ub.Args) != 1 {
		t.Fatalf("argument count %d", len(ub.Args))
	}
	if inner, ok := ub.Args[0].(*types.UnboundType); !ok || inner.Name != "int" {
		t.Fatalf("argument %s", types.String(ub.Args[0]))
	}
}

func TestEvalEmptyTupleIndex(t *testing.T) {
	typ, bag := evalFragment(t, "Tuple[()]")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	ub, ok := typ.(*types.UnboundType)
	if !ok || ub.Name != "Tuple" {
		t.Fatalf("got %s", types.String(typ))
	}
	if len(ub.Args) != 0 || !ub.EmptyTupleIndex {
		t.Fatalf("args=%d marker=%v", len(ub.Args), ub.EmptyTupleIndex)
	}
}

func TestEvalEllipsis(t *testing.T) {
	typ, bag := evalFragment(t, "...")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if _, ok := typ.(*types.EllipsisType); !ok {
		t.Fatalf("got %s", types.String(typ))
	}
}

func TestEvalDottedName(t *testing.T) {
	typ, _ := evalFragment(t, "collections.abc.Sequence")
	ub, ok := typ.(*types.UnboundType)
	if !ok || ub.Name != "collections.abc.Sequence" {
		t.Fatalf("got %s", types.String(typ))
	}
}

func TestEvalForwardReferenceString(t *testing.T) {
	typ, bag := evalFragment(t, "'List[Node]'")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	ub, ok := typ.(*types.UnboundType)
	if !ok || ub.Name != "List" || len(ub.Args) != 1 {
		t.Fatalf("got %s", types.String(typ))
	}
}

func TestEvalImplicitTuple(t *testing.T) {
	typ, _ := evalFragment(t, "(int, str)")
	tt, ok := typ.(*types.TupleType)
	if !ok || !tt.Implicit || len(tt.Items) != 2 {
		t.Fatalf("got %s", types.String(typ))
	}
	if _, ok := tt.Fallback.(*types.UnresolvedType); !ok {
		t.Fatal("tuple fallback must stay an explicit placeholder")
	}
}

func TestEvalArgConstructor(t *testing.T) {
	typ, bag := evalFragment(t, "[Arg(int, 'x')]")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	list, ok := typ.(*types.TypeList)
	if !ok || len(list.Items) != 1 {
		t.Fatalf("got %s", types.String(typ))
	}
	arg, ok := list.Items[0].(*types.CallableArgument)
	if !ok {
		t.Fatalf("element %s", types.String(list.Items[0]))
	}
	if arg.Constructor != "Arg" || !arg.HasName || arg.Name != "x" {
		t.Fatalf("constructor %+v", arg)
	}
	if inner, ok := arg.Typ.(*types.UnboundType); !ok || inner.Name != "int" {
		t.Fatalf("inner type %s", types.String(arg.Typ))
	}
}

func TestEvalArgConstructorKeywords(t *testing.T) {
	typ, bag := evalFragment(t, "[Arg(type=int, name='x')]")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	arg := typ.(*types.TypeList).Items[0].(*types.CallableArgument)
	if !arg.HasName || arg.Name != "x" {
		t.Fatalf("constructor %+v", arg)
	}
}

func TestEvalArgConstructorTooManyPositionals(t *testing.T) {
	_, bag := evalFragment(t, "[Arg(int, 'x', 'y')]")
	if n := countCode(bag, diag.ArgConstructorMisuse); n != 1 {
		t.Fatalf("expected one misuse diagnostic, got %d", n)
	}
}

func TestEvalArgConstructorConflictingType(t *testing.T) {
	_, bag := evalFragment(t, "[Arg(int, type=str)]")
	if n := countCode(bag, diag.ArgConstructorMisuse); n != 1 {
		t.Fatalf("expected one misuse diagnostic, got %d", n)
	}
}

func TestEvalArgConstructorUnknownKeyword(t *testing.T) {
	_, bag := evalFragment(t, "[Arg(int, kind='pos')]")
	if n := countCode(bag, diag.ArgConstructorMisuse); n != 1 {
		t.Fatalf("expected one misuse diagnostic, got %d", n)
	}
}

func TestEvalCallOutsideListSuggestsSubscript(t *testing.T) {
	typ, bag := evalFragment(t, "List(int)")
	if n := countCode(bag, diag.InvalidTypeExpression); n != 1 {
		t.Fatalf("expected one invalid-type diagnostic, got %d", n)
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.Suggestion && d.Message == "Suggestion: use List[...] instead of List(...)" {
			found = true
		}
	}
	if !found {
		t.Fatal("missing subscript suggestion note")
	}
	if any, ok := typ.(*types.AnyType); !ok || any.Kind != types.AnyFromError {
		t.Fatalf("got %s, want error-flavored dynamic", types.String(typ))
	}
}

func TestEvalDottedAttrOnParameterizedBase(t *testing.T) {
	_, bag := evalFragment(t, "List[int].Thing")
	if n := countCode(bag, diag.InvalidTypeExpression); n != 1 {
		t.Fatalf("expected one invalid-type diagnostic, got %d", n)
	}
}

func TestEvalSyntaxErrorDegrades(t *testing.T) {
	typ, bag := evalFragment(t, "List[")
	if n := countCode(bag, diag.TypeCommentSyntaxError); n != 1 {
		t.Fatalf("expected one syntax diagnostic, got %d", n)
	}
	if any, ok := typ.(*types.AnyType); !ok || any.Kind != types.AnyFromError {
		t.Fatalf("got %s", types.String(typ))
	}
}
