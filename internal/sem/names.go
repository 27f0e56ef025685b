package sem

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"pyfront/internal/source"
	"pyfront/internal/types"
)

// FailFunc receives one naming-rule violation with the position of the
// offending parameter. Violations never stop the remaining checks.
type FailFunc func(msg string, pos source.Pos)

// CheckArgNames flags duplicate parameter names. Names are NFKC
// normalized before comparison, mirroring how the language normalizes
// identifiers, so visually identical spellings collide.
func CheckArgNames(names []string, positions []source.Pos, fail FailFunc, description string) {
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		key := norm.NFKC.String(name)
		if seen[key] {
			fail("Duplicate argument '"+name+"' in "+description, positions[i])
		}
		seen[key] = true
	}
}

// CheckArgKinds enforces the declared parameter ordering: required
// positionals, defaulted positionals, *args, keyword-only, **kwargs.
// Reports the first misordering and stops.
func CheckArgKinds(kinds []types.ArgKind, positions []source.Pos, fail FailFunc) {
	seenStar := false
	seenStar2 := false
	seenNamed := false
	seenOpt := false
	for i, kind := range kinds {
		pos := positions[i]
		switch kind {
		case types.ArgPos:
			if seenStar || seenStar2 || seenNamed || seenOpt {
				fail("Required positional args may not appear after default, named or var args", pos)
				return
			}
		case types.ArgOpt:
			if seenStar || seenStar2 || seenNamed {
				fail("Positional default args may not appear after named or var args", pos)
				return
			}
			seenOpt = true
		case types.ArgStar:
			if seenStar || seenStar2 {
				fail("Var args may not appear after named or var args", pos)
				return
			}
			seenStar = true
		case types.ArgNamed, types.ArgNamedOpt:
			seenNamed = true
			if seenStar2 {
				fail("A **kwargs argument must be the last argument", pos)
				return
			}
		case types.ArgStar2:
			if seenStar2 {
				fail("You may only have one **kwargs argument", pos)
				return
			}
			seenStar2 = true
		}
	}
}

// Elision of placeholder parameter names: certain families of dunder
// methods take positional-only arguments whose declared names carry no
// meaning for callers, and double-underscore-prefixed parameter names
// are positional-only by convention. Both are anonymized so downstream
// messages do not surface them.

var magicMethodsPosArgsOnly = map[string]bool{
	"__abs__": true, "__add__": true, "__and__": true, "__call__": true,
	"__cmp__": true, "__complex__": true, "__contains__": true,
	"__del__": true, "__delattr__": true, "__delitem__": true,
	"__divmod__": true, "__div__": true, "__enter__": true, "__exit__": true,
	"__eq__": true, "__floordiv__": true, "__float__": true, "__ge__": true,
	"__getattr__": true, "__getattribute__": true, "__getitem__": true,
	"__gt__": true, "__hex__": true, "__iadd__": true, "__iand__": true,
	"__idiv__": true, "__ifloordiv__": true, "__ilshift__": true,
	"__imod__": true, "__imul__": true, "__int__": true, "__invert__": true,
	"__ior__": true, "__ipow__": true, "__irshift__": true, "__isub__": true,
	"__iter__": true, "__ixor__": true, "__le__": true, "__len__": true,
	"__lshift__": true, "__lt__": true, "__mod__": true, "__mul__": true,
	"__ne__": true, "__neg__": true, "__next__": true, "__oct__": true,
	"__or__": true, "__pos__": true, "__pow__": true, "__radd__": true,
	"__rand__": true, "__rdiv__": true, "__repr__": true, "__reversed__": true,
	"__rfloordiv__": true, "__rlshift__": true, "__rmod__": true,
	"__rmul__": true, "__ror__": true, "__rpow__": true, "__rrshift__": true,
	"__rshift__": true, "__rsub__": true, "__rxor__": true, "__setattr__": true,
	"__setitem__": true, "__str__": true, "__sub__": true, "__xor__": true,
}

// SpecialFunctionElideNames reports whether every parameter name of the
// named function should be anonymized.
func SpecialFunctionElideNames(funcName string) bool {
	return magicMethodsPosArgsOnly[funcName]
}

// ArgumentElideName reports whether one parameter name is a meaningless
// placeholder that should be anonymized. Dunder names keep their name;
// only the mangled double-underscore prefix form is elided.
func ArgumentElideName(name string) bool {
	return strings.HasPrefix(name, "__") && !strings.HasSuffix(name, "__")
}
