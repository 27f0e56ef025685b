package sem

import (
	"testing"

	"pyfront/internal/source"
	"pyfront/internal/types"
)

func TestCheckArgNamesDuplicates(t *testing.T) {
	var got []string
	fail := func(msg string, _ source.Pos) { got = append(got, msg) }

	names := []string{"a", "b", "a"}
	positions := []source.Pos{{Line: 1}, {Line: 1}, {Line: 1}}
	CheckArgNames(names, positions, fail, "function definition")

	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %d: %v", len(got), got)
	}
	if got[0] != "Duplicate argument 'a' in function definition" {
		t.Fatalf("unexpected message %q", got[0])
	}
}

func TestCheckArgNamesNFKC(t *testing.T) {
	var got []string
	fail := func(msg string, _ source.Pos) { got = append(got, msg) }

	// U+00B5 MICRO SIGN normalizes to U+03BC GREEK SMALL LETTER MU, so
	// the two spellings collide as identifiers.
	names := []string{"µ", "μ"}
	positions := []source.Pos{{Line: 1}, {Line: 1}}
	CheckArgNames(names, positions, fail, "function definition")

	if len(got) != 1 {
		t.Fatalf("expected NFKC-normalized duplicate, got %v", got)
	}
}

func TestCheckArgKindsOrdering(t *testing.T) {
	tests := []struct {
		name    string
		kinds   []types.ArgKind
		wantMsg string
	}{
		{
			name:  "canonical order is accepted",
			kinds: []types.ArgKind{types.ArgPos, types.ArgOpt, types.ArgStar, types.ArgNamed, types.ArgNamedOpt, types.ArgStar2},
		},
		{
			name:    "required after default",
			kinds:   []types.ArgKind{types.ArgOpt, types.ArgPos},
			wantMsg: "Required positional args may not appear after default, named or var args",
		},
		{
			name:    "default after star",
			kinds:   []types.ArgKind{types.ArgStar, types.ArgOpt},
			wantMsg: "Positional default args may not appear after named or var args",
		},
		{
			name:    "two kwargs",
			kinds:   []types.ArgKind{types.ArgStar2, types.ArgStar2},
			wantMsg: "You may only have one **kwargs argument",
		},
		{
			name:    "named after kwargs",
			kinds:   []types.ArgKind{types.ArgStar2, types.ArgNamed},
			wantMsg: "A **kwargs argument must be the last argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			positions := make([]source.Pos, len(tt.kinds))
			CheckArgKinds(tt.kinds, positions, func(msg string, _ source.Pos) { got = append(got, msg) })
			if tt.wantMsg == "" {
				if len(got) != 0 {
					t.Fatalf("expected no violations, got %v", got)
				}
				return
			}
			if len(got) != 1 || got[0] != tt.wantMsg {
				t.Fatalf("expected %q, got %v", tt.wantMsg, got)
			}
		})
	}
}

func TestNameElision(t *testing.T) {
	if !ArgumentElideName("__x") {
		t.Error("double-underscore-prefixed names should be elided")
	}
	if ArgumentElideName("x") {
		t.Error("plain names should not be elided")
	}
	if ArgumentElideName("__foo__") {
		t.Error("dunder names should keep their name")
	}
	if !SpecialFunctionElideNames("__getitem__") {
		t.Error("__getitem__ parameters should be elided wholesale")
	}
	if SpecialFunctionElideNames("__init__") {
		t.Error("__init__ keeps its parameter names")
	}
}
