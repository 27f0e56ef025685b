package convert

import (
	"pyfront/internal/ast"
	"pyfront/internal/diag"
	"pyfront/internal/parser"
	"pyfront/internal/sem"
	"pyfront/internal/source"
	"pyfront/internal/types"
)

// funcDef converts a def or async def, decorated or not. The heavy
// lifting is the signature: reconciling inline annotations with a
// whole-signature type comment, degrading locally on every failure.
func (c *converter) funcDef(n *ast.FunctionDef) *sem.Stmt {
	noTypeCheck := false
	for _, d := range n.Decorators {
		if isNoTypeCheckDecorator(d) {
			noTypeCheck = true
			break
		}
	}

	args := c.transformArgs(n.Args, n.Pos(), noTypeCheck)

	argKinds := make([]types.ArgKind, len(args))
	argNames := make([]string, len(args))
	for i, a := range args {
		argKinds[i] = a.Kind
		name := a.Var.Name
		if sem.ArgumentElideName(name) {
			name = ""
		}
		argNames[i] = name
	}
	if sem.SpecialFunctionElideNames(n.Name) {
		for i := range argNames {
			argNames[i] = ""
		}
	}

	var argTypes []types.Type
	var retType types.Type
	switch {
	case noTypeCheck:
		argTypes = make([]types.Type, len(args))
	case n.TypeComment != "":
		argTypes, retType = c.signatureFromComment(n, args)
	default:
		argTypes = make([]types.Type, len(args))
		for i, a := range args {
			argTypes[i] = a.TypeAnnotation
		}
		if n.Returns != nil {
			retType = c.typeExpr(n.Returns, n.Returns.Pos())
		}
	}

	for i, a := range args {
		if i < len(argTypes) {
			c.setTypeOptional(argTypes[i], a.Initializer)
		}
	}

	var funcType *types.CallableType
	if anyTypePresent(argTypes) || retType != nil {
		arityPos := source.Pos{Line: n.Pos().Line, Col: 0}
		switch {
		case len(argTypes) != 1 && containsEllipsisType(argTypes):
			c.fail(diag.SignatureArityMismatch, arityPos,
				"Ellipses cannot accompany other argument types in function type signature.")
		case len(argTypes) > len(argKinds):
			c.fail(diag.SignatureArityMismatch, arityPos, "Type signature has too many arguments")
		case len(argTypes) < len(argKinds):
			c.fail(diag.SignatureArityMismatch, arityPos, "Type signature has too few arguments")
		default:
			filled := make([]types.Type, len(argTypes))
			for i, t := range argTypes {
				if t == nil {
					t = unannotatedAny(n.Pos())
				}
				filled[i] = t
			}
			ret := retType
			if ret == nil {
				ret = unannotatedAny(n.Pos())
			}
			funcType = &types.CallableType{
				TypePos:  typePosAt(n.Pos()),
				ArgTypes: filled,
				ArgKinds: argKinds,
				ArgNames: argNames,
				Ret:      ret,
				Fallback: types.NewUnresolved("function fallback"),
			}
		}
	}

	fd := &sem.FuncData{
		Name:        n.Name,
		Args:        args,
		Body:        c.requiredBlock(n.Body, n.Pos()),
		Type:        funcType,
		IsCoroutine: n.IsAsync,
	}
	if funcType != nil {
		funcType.Definition = fd
		// Later phases edit the signature in place; keep the original.
		fd.UnanalyzedType = copyCallable(funcType)
	}
	fs := &sem.Stmt{Kind: sem.StmtFunc, Pos: n.Pos(), Data: fd}

	if len(n.Decorators) == 0 {
		return fs
	}

	v := &sem.Var{Name: n.Name, IsReady: false, Pos: n.Decorators[0].Pos()}
	fd.IsDecorated = true
	// The raw node starts at the first decorator; shift the function's
	// reported line down to the def itself.
	fs.Pos = source.Pos{Line: n.Pos().Line + len(n.Decorators), Col: n.Pos().Col}
	if fd.Body != nil {
		fd.Body.Pos = fs.Pos
	}
	return &sem.Stmt{Kind: sem.StmtDecorator, Pos: n.Pos(), Data: &sem.DecoratorData{
		Func:       fs,
		Decorators: c.exprList(n.Decorators),
		Var:        v,
	}}
}

// signatureFromComment derives the full argument-type list and return
// type from a whole-signature type comment. The single-ellipsis form
// reuses each parameter's own annotation; any other form supplies
// every argument type positionally and conflicts with any inline
// annotation. A structurally unparsable comment collapses the whole
// signature to error-flavored dynamic types.
func (c *converter) signatureFromComment(n *ast.FunctionDef, args []*sem.Argument) ([]types.Type, types.Type) {
	ft, err := parser.ParseFuncType(n.TypeComment)
	if err != nil {
		c.fail(diag.TypeCommentSyntaxError, n.Pos(), msgTypeCommentSyntax)
		if n.TypeComment != "" && n.TypeComment[0] != '(' {
			c.note(diag.Suggestion, n.Pos(), "Suggestion: wrap argument types in parentheses")
		}
		argTypes := make([]types.Type, len(args))
		for i := range argTypes {
			argTypes[i] = errAny(n.Pos())
		}
		return argTypes, errAny(n.Pos())
	}

	var argTypes []types.Type
	var retType types.Type
	var inlineRet types.Type
	if n.Returns != nil {
		inlineRet = c.typeExpr(n.Returns, n.Returns.Pos())
	}

	if len(ft.ArgTypes) == 1 && isEllipsisExpr(ft.ArgTypes[0]) {
		if n.Returns != nil {
			c.fail(diag.DuplicateTypeSignature, n.Pos(), msgDuplicateSig)
		}
		argTypes = make([]types.Type, len(args))
		for i, a := range args {
			if a.TypeAnnotation != nil {
				argTypes[i] = a.TypeAnnotation
			} else {
				argTypes[i] = unannotatedAny(n.Pos())
			}
		}
		retType, _ = reconcileTypes(inlineRet, c.typeExpr(ft.Returns, n.Pos()))
	} else {
		dup := n.Returns != nil
		for _, a := range args {
			if a.TypeAnnotation != nil {
				dup = true
				break
			}
		}
		if dup {
			c.fail(diag.DuplicateTypeSignature, n.Pos(), msgDuplicateSig)
		}
		argTypes = make([]types.Type, 0, len(ft.ArgTypes))
		for _, ae := range ft.ArgTypes {
			argTypes = append(argTypes, c.typeExpr(ae, n.Pos()))
		}

		// A class-body comment may omit the receiver; insert an
		// implicit dynamic type for it.
		if c.inClass() && len(argTypes) < len(args) {
			argTypes = append([]types.Type{specialAny(n.Pos())}, argTypes...)
		}
		for i, a := range args {
			if i >= len(argTypes) {
				break
			}
			argTypes[i], _ = reconcileTypes(a.TypeAnnotation, argTypes[i])
		}
		retType, _ = reconcileTypes(inlineRet, c.typeExpr(ft.Returns, n.Pos()))
	}
	return argTypes, retType
}

// reconcileTypes resolves a conflict between an inline annotation and a
// type-comment declaration: the annotation wins when both are present.
// The returned flag marks the conflict; callers report it once per
// signature, not per slot.
func reconcileTypes(inline, comment types.Type) (types.Type, bool) {
	if inline != nil && comment != nil {
		return inline, true
	}
	if inline != nil {
		return inline, false
	}
	return comment, false
}

func isNoTypeCheckDecorator(e ast.Expr) bool {
	switch d := e.(type) {
	case *ast.NameExpr:
		return d.ID == "no_type_check"
	case *ast.AttributeExpr:
		if base, ok := d.Value.(*ast.NameExpr); ok {
			return base.ID == "typing" && d.Attr == "no_type_check"
		}
	}
	return false
}

func isEllipsisExpr(e ast.Expr) bool {
	_, ok := e.(*ast.EllipsisLit)
	return ok
}

func anyTypePresent(ts []types.Type) bool {
	for _, t := range ts {
		if t != nil {
			return true
		}
	}
	return false
}

func containsEllipsisType(ts []types.Type) bool {
	for _, t := range ts {
		if _, ok := t.(*types.EllipsisType); ok {
			return true
		}
	}
	return false
}

func copyCallable(t *types.CallableType) *types.CallableType {
	cp := *t
	cp.ArgTypes = append([]types.Type(nil), t.ArgTypes...)
	cp.ArgKinds = append([]types.ArgKind(nil), t.ArgKinds...)
	cp.ArgNames = append([]string(nil), t.ArgNames...)
	return &cp
}
