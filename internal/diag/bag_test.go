package diag

import (
	"testing"

	"pyfront/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 3; i++ {
		ok := bag.Add(Diagnostic{
			Severity: SevError,
			Code:     InvalidTypeExpression,
			Message:  "invalid type comment or annotation",
			Pos:      source.Pos{Line: i + 1, Col: 0},
		})
		if i < 2 && !ok {
			t.Fatalf("diagnostic %d unexpectedly dropped", i)
		}
		if i == 2 && ok {
			t.Fatal("diagnostic beyond the limit was accepted")
		}
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(10)
	bag.Add(Diagnostic{Severity: SevNote, Code: Suggestion, Message: "Suggestion: wrap argument types in parentheses"})
	if bag.HasErrors() {
		t.Fatal("notes alone must not fail the run")
	}
	bag.Add(Diagnostic{Severity: SevError, Code: DuplicateTypeSignature, Message: "Function has duplicate type signatures"})
	if !bag.HasErrors() {
		t.Fatal("expected HasErrors after a blocking diagnostic")
	}
	msgs := bag.ErrorMessages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 error message, got %d", len(msgs))
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(Diagnostic{Severity: SevError, Code: NamingViolation, Message: "dup", Pos: source.Pos{Line: 5, Col: 2}})
	bag.Add(Diagnostic{Severity: SevError, Code: NamingViolation, Message: "dup", Pos: source.Pos{Line: 5, Col: 2}})
	bag.Add(Diagnostic{Severity: SevError, Code: SyntaxError, Message: "first", Pos: source.Pos{Line: 1, Col: 0}})

	bag.Sort()
	bag.Dedup()

	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics after dedup, got %d", bag.Len())
	}
	if bag.Items()[0].Message != "first" {
		t.Fatalf("expected position order, got %q first", bag.Items()[0].Message)
	}
}

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportError(BagReporter{Bag: bag}, InvalidTypeExpression, source.Pos{Line: 3, Col: 4}, "invalid type comment or annotation").
		WithNote(source.Pos{Line: 3, Col: 4}, "Suggestion: use List[...] instead of List(...)")
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("expected a single emit, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(d.Notes))
	}
}
