package convert

import (
	"pyfront/internal/ast"
	"pyfront/internal/diag"
	"pyfront/internal/sem"
	"pyfront/internal/source"
	"pyfront/internal/types"
)

// transformArgs binds the four raw parameter groups into one ordered,
// kind-tagged sequence: required positionals, defaulted positionals,
// *args, keyword-only (required or defaulted), **kwargs. Naming and
// ordering violations are reported per parameter and never stop the
// binding of the remaining ones.
func (c *converter) transformArgs(raw *ast.Arguments, pos source.Pos, noTypeCheck bool) []*sem.Argument {
	var args []*sem.Argument
	var names []string
	var positions []source.Pos

	add := func(a *ast.Arg, def ast.Expr, kind types.ArgKind) {
		args = append(args, c.makeArgument(a, def, kind, noTypeCheck))
		names = append(names, a.Name)
		positions = append(positions, a.Pos())
	}

	// A well-formed tree never carries more defaults than positional
	// parameters, but a hand-built dump can. Recover by pairing the
	// trailing defaults and dropping the excess.
	numRequired := len(raw.Args) - len(raw.Defaults)
	defaults := raw.Defaults
	if numRequired < 0 {
		c.fail(diag.RawTreeError, pos, "more defaults than positional parameters")
		numRequired = 0
		defaults = raw.Defaults[len(raw.Defaults)-len(raw.Args):]
	}
	for _, a := range raw.Args[:numRequired] {
		add(a, nil, types.ArgPos)
	}
	for i, a := range raw.Args[numRequired:] {
		add(a, defaults[i], types.ArgOpt)
	}
	if raw.Vararg != nil {
		add(raw.Vararg, nil, types.ArgStar)
	}
	for i, a := range raw.KwOnly {
		var def ast.Expr
		if i < len(raw.KwDefaults) {
			def = raw.KwDefaults[i]
		}
		kind := types.ArgNamed
		if def != nil {
			kind = types.ArgNamedOpt
		}
		add(a, def, kind)
	}
	if raw.Kwarg != nil {
		add(raw.Kwarg, nil, types.ArgStar2)
	}

	fail := func(msg string, p source.Pos) {
		c.fail(diag.NamingViolation, p, msg)
	}
	sem.CheckArgNames(names, positions, fail, "function definition")

	kinds := make([]types.ArgKind, len(args))
	for i, a := range args {
		kinds[i] = a.Kind
	}
	sem.CheckArgKinds(kinds, positions, fail)

	return args
}

// makeArgument resolves one parameter's declared type. An inline
// annotation and a per-parameter type comment are mutually exclusive;
// when both are present the annotation wins and a blocking diagnostic
// is recorded. No-type-check mode leaves every parameter untyped.
func (c *converter) makeArgument(a *ast.Arg, def ast.Expr, kind types.ArgKind, noTypeCheck bool) *sem.Argument {
	var typ types.Type
	if !noTypeCheck {
		if a.Annotation != nil && a.TypeComment != "" {
			c.fail(diag.DuplicateTypeSignature, a.Pos(), "Function has duplicate type signatures")
		}
		if a.Annotation != nil {
			typ = c.typeExpr(a.Annotation, a.Pos())
		} else if a.TypeComment != "" {
			typ = c.typeFromComment(a.TypeComment, a.Pos())
		}
	}
	return &sem.Argument{
		Var:            &sem.Var{Name: a.Name, Pos: a.Pos()},
		TypeAnnotation: typ,
		Initializer:    c.exprOpt(def),
		Kind:           kind,
	}
}

// setTypeOptional marks an unbound declared type nullable when the
// parameter's default is the None literal. Globally suppressed by the
// no-implicit-optional option.
func (c *converter) setTypeOptional(typ types.Type, init *sem.Expr) {
	if c.opts.NoImplicitOptional {
		return
	}
	optional := false
	if init != nil && init.Kind == sem.ExprName {
		optional = init.Data.(sem.NameData).Name == "None"
	}
	if ub, ok := typ.(*types.UnboundType); ok {
		ub.Optional = optional
	}
}
