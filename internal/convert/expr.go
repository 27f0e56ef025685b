package convert

import (
	"pyfront/internal/ast"
	"pyfront/internal/diag"
	"pyfront/internal/sem"
	"pyfront/internal/source"
	"pyfront/internal/types"
)

func (c *converter) exprList(exprs []ast.Expr) []*sem.Expr {
	out := make([]*sem.Expr, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, c.expr(e))
	}
	return out
}

// exprOpt tolerates a nil slot, e.g. the cause of a bare raise.
func (c *converter) exprOpt(e ast.Expr) *sem.Expr {
	if e == nil {
		return nil
	}
	return c.expr(e)
}

// expr converts exactly one raw expression to one semantic expression,
// recursively and position-tagged.
func (c *converter) expr(e ast.Expr) *sem.Expr {
	switch n := e.(type) {
	case *ast.NameExpr:
		return &sem.Expr{Kind: sem.ExprName, Pos: n.Pos(), Data: sem.NameData{Name: n.ID}}

	case *ast.NameConstExpr:
		return &sem.Expr{Kind: sem.ExprName, Pos: n.Pos(), Data: sem.NameData{Name: n.Value}}

	case *ast.IntLit:
		return &sem.Expr{Kind: sem.ExprInt, Pos: n.Pos(), Data: sem.IntData{Value: n.Value, Text: n.Text}}

	case *ast.FloatLit:
		return &sem.Expr{Kind: sem.ExprFloat, Pos: n.Pos(), Data: sem.FloatData{Value: n.Value}}

	case *ast.ComplexLit:
		return &sem.Expr{Kind: sem.ExprComplex, Pos: n.Pos(), Data: sem.ComplexData{Value: n.Value}}

	case *ast.StrLit:
		return &sem.Expr{Kind: sem.ExprStr, Pos: n.Pos(), Data: sem.StrData{Value: n.Value}}

	case *ast.BytesLit:
		return &sem.Expr{Kind: sem.ExprBytes, Pos: n.Pos(), Data: sem.BytesData{Value: n.Value}}

	case *ast.EllipsisLit:
		return &sem.Expr{Kind: sem.ExprEllipsis, Pos: n.Pos(), Data: sem.EllipsisData{}}

	case *ast.TupleExpr:
		return &sem.Expr{Kind: sem.ExprTuple, Pos: n.Pos(), Data: sem.TupleData{Items: c.exprList(n.Elts)}}

	case *ast.ListExpr:
		// A list in assignment-target position is the same construct
		// as a tuple target; downstream sees one shape.
		if n.Ctx == ast.Store {
			return &sem.Expr{Kind: sem.ExprTuple, Pos: n.Pos(), Data: sem.TupleData{Items: c.exprList(n.Elts)}}
		}
		return &sem.Expr{Kind: sem.ExprList, Pos: n.Pos(), Data: sem.ListData{Items: c.exprList(n.Elts)}}

	case *ast.SetExpr:
		return &sem.Expr{Kind: sem.ExprSet, Pos: n.Pos(), Data: sem.SetData{Items: c.exprList(n.Elts)}}

	case *ast.DictExpr:
		// A nil key marks a **-unpacked entry.
		keys := make([]*sem.Expr, 0, len(n.Keys))
		for _, k := range n.Keys {
			keys = append(keys, c.exprOpt(k))
		}
		return &sem.Expr{Kind: sem.ExprDict, Pos: n.Pos(), Data: sem.DictData{
			Keys:   keys,
			Values: c.exprList(n.Values),
		}}

	case *ast.BoolOpExpr:
		return c.boolOp(n)

	case *ast.BinOpExpr:
		return &sem.Expr{Kind: sem.ExprOp, Pos: n.Pos(), Data: sem.OpData{
			Op:    n.Op.Symbol(),
			Left:  c.expr(n.Left),
			Right: c.expr(n.Right),
		}}

	case *ast.UnaryOpExpr:
		return &sem.Expr{Kind: sem.ExprUnary, Pos: n.Pos(), Data: sem.UnaryData{
			Op:      n.Op.Symbol(),
			Operand: c.expr(n.Operand),
		}}

	case *ast.CompareExpr:
		ops := make([]string, 0, len(n.Ops))
		for _, op := range n.Ops {
			ops = append(ops, op.Symbol())
		}
		operands := make([]*sem.Expr, 0, len(n.Comparators)+1)
		operands = append(operands, c.expr(n.Left))
		for _, cmp := range n.Comparators {
			operands = append(operands, c.expr(cmp))
		}
		return &sem.Expr{Kind: sem.ExprComparison, Pos: n.Pos(), Data: sem.ComparisonData{
			Operators: ops,
			Operands:  operands,
		}}

	case *ast.LambdaExpr:
		return c.lambda(n)

	case *ast.IfExpr:
		return &sem.Expr{Kind: sem.ExprConditional, Pos: n.Pos(), Data: sem.ConditionalData{
			Cond: c.expr(n.Test),
			Then: c.expr(n.Body),
			Else: c.expr(n.OrElse),
		}}

	case *ast.ListCompExpr:
		gen := c.generator(n.Elt, n.Generators, n.Pos())
		return &sem.Expr{Kind: sem.ExprListComp, Pos: n.Pos(), Data: sem.ListCompData{Gen: gen}}

	case *ast.SetCompExpr:
		gen := c.generator(n.Elt, n.Generators, n.Pos())
		return &sem.Expr{Kind: sem.ExprSetComp, Pos: n.Pos(), Data: sem.SetCompData{Gen: gen}}

	case *ast.DictCompExpr:
		return &sem.Expr{Kind: sem.ExprDictComp, Pos: n.Pos(), Data: sem.DictCompData{
			Key:     c.expr(n.Key),
			Value:   c.expr(n.Value),
			Clauses: c.clauses(n.Generators),
		}}

	case *ast.GeneratorExpr:
		return c.generator(n.Elt, n.Generators, n.Pos())

	case *ast.AwaitExpr:
		return &sem.Expr{Kind: sem.ExprAwait, Pos: n.Pos(), Data: sem.AwaitData{Value: c.expr(n.Value)}}

	case *ast.YieldExpr:
		return &sem.Expr{Kind: sem.ExprYield, Pos: n.Pos(), Data: sem.YieldData{Value: c.exprOpt(n.Value)}}

	case *ast.YieldFromExpr:
		return &sem.Expr{Kind: sem.ExprYieldFrom, Pos: n.Pos(), Data: sem.YieldFromData{Value: c.expr(n.Value)}}

	case *ast.CallExpr:
		return c.call(n)

	case *ast.AttributeExpr:
		return c.attribute(n)

	case *ast.SubscriptExpr:
		return &sem.Expr{Kind: sem.ExprIndex, Pos: n.Pos(), Data: sem.IndexData{
			Base:  c.expr(n.Value),
			Index: c.slice(n.Slice, n.Pos()),
		}}

	case *ast.StarredExpr:
		return &sem.Expr{Kind: sem.ExprStar, Pos: n.Pos(), Data: sem.StarData{Value: c.expr(n.Value)}}

	case *ast.JoinedStr:
		return c.joinedStr(n)

	case *ast.FormattedValue:
		return c.formattedValue(n)

	default:
		c.fail(diag.RawTreeError, e.Pos(), "unsupported expression node in raw tree")
		return &sem.Expr{Kind: sem.ExprTemp, Pos: e.Pos(), Data: sem.TempData{
			Type: &types.AnyType{TypePos: types.TypePos{Position: e.Pos()}, Kind: types.AnyFromError},
		}}
	}
}

// boolOp right-folds an n-ary and/or chain into nested binary nodes:
// (a and b and c) becomes (a and (b and c)).
func (c *converter) boolOp(n *ast.BoolOpExpr) *sem.Expr {
	op := n.Op.Symbol()
	values := c.exprList(n.Values)

	var group func(vals []*sem.Expr) *sem.Expr
	group = func(vals []*sem.Expr) *sem.Expr {
		if len(vals) == 1 {
			return vals[0]
		}
		return &sem.Expr{Kind: sem.ExprOp, Pos: vals[0].Pos, Data: sem.OpData{
			Op:    op,
			Left:  vals[0],
			Right: group(vals[1:]),
		}}
	}
	if len(values) == 0 {
		c.fail(diag.RawTreeError, n.Pos(), "boolean chain with no operands in raw tree")
		return &sem.Expr{Kind: sem.ExprName, Pos: n.Pos(), Data: sem.NameData{Name: "None"}}
	}
	folded := group(values)
	folded.Pos = n.Pos()
	return folded
}

// lambda binds the parameter list like a function and wraps the body
// expression in a one-statement return block.
func (c *converter) lambda(n *ast.LambdaExpr) *sem.Expr {
	args := c.transformArgs(n.Args, n.Pos(), false)
	ret := &sem.Stmt{Kind: sem.StmtReturn, Pos: n.Pos(), Data: sem.ReturnData{Value: c.expr(n.Body)}}
	body := &sem.Block{Body: []*sem.Stmt{ret}, Pos: n.Pos()}
	return &sem.Expr{Kind: sem.ExprLambda, Pos: n.Pos(), Data: sem.LambdaData{
		Args: args,
		Body: body,
	}}
}

func (c *converter) clauses(gens []ast.Comprehension) []sem.ComprehensionClause {
	out := make([]sem.ComprehensionClause, 0, len(gens))
	for _, g := range gens {
		out = append(out, sem.ComprehensionClause{
			Target:  c.expr(g.Target),
			Iter:    c.expr(g.Iter),
			Ifs:     c.exprList(g.Ifs),
			IsAsync: g.IsAsync,
		})
	}
	return out
}

func (c *converter) generator(elt ast.Expr, gens []ast.Comprehension, pos source.Pos) *sem.Expr {
	return &sem.Expr{Kind: sem.ExprGenerator, Pos: pos, Data: sem.GeneratorData{
		Elt:     c.expr(elt),
		Clauses: c.clauses(gens),
	}}
}

// call flattens positional, starred, keyword and double-starred
// arguments into three parallel arrays of values, kind tags and
// optional names. Starred values are unwrapped; their kind tag carries
// the variadic marker instead.
func (c *converter) call(n *ast.CallExpr) *sem.Expr {
	total := len(n.Args) + len(n.Keywords)
	args := make([]*sem.Expr, 0, total)
	kinds := make([]types.ArgKind, 0, total)
	names := make([]string, 0, total)

	for _, a := range n.Args {
		if star, ok := a.(*ast.StarredExpr); ok {
			args = append(args, c.expr(star.Value))
			kinds = append(kinds, types.ArgStar)
		} else {
			args = append(args, c.expr(a))
			kinds = append(kinds, types.ArgPos)
		}
		names = append(names, "")
	}
	for _, k := range n.Keywords {
		args = append(args, c.expr(k.Value))
		if k.Name == "" {
			kinds = append(kinds, types.ArgStar2)
		} else {
			kinds = append(kinds, types.ArgNamed)
		}
		names = append(names, k.Name)
	}
	return &sem.Expr{Kind: sem.ExprCall, Pos: n.Pos(), Data: sem.CallData{
		Callee: c.expr(n.Func),
		Args:   args,
		Kinds:  kinds,
		Names:  names,
	}}
}

// attribute converts member access, tagging the super-call shape:
// super().m and super(C, self).m with at most one explicit argument
// become super expressions rather than plain member access.
func (c *converter) attribute(n *ast.AttributeExpr) *sem.Expr {
	value := c.expr(n.Value)
	if value.Kind == sem.ExprCall {
		call := value.Data.(sem.CallData)
		if call.Callee.Kind == sem.ExprName && len(call.Args) <= 1 {
			if name := call.Callee.Data.(sem.NameData); name.Name == "super" {
				return &sem.Expr{Kind: sem.ExprSuper, Pos: n.Pos(), Data: sem.SuperData{
					Name: n.Attr,
					Call: value,
				}}
			}
		}
	}
	return &sem.Expr{Kind: sem.ExprMember, Pos: n.Pos(), Data: sem.MemberData{
		Value: value,
		Name:  n.Attr,
	}}
}

// slice converts the subscript index. A plain index passes its value
// through; a range becomes a slice expression; an extended slice
// becomes a tuple of its converted dimensions.
func (c *converter) slice(s ast.Slice, pos source.Pos) *sem.Expr {
	switch sl := s.(type) {
	case *ast.IndexSlice:
		return c.expr(sl.Value)
	case *ast.RangeSlice:
		return &sem.Expr{Kind: sem.ExprSlice, Pos: pos, Data: sem.SliceData{
			Lower: c.exprOpt(sl.Lower),
			Upper: c.exprOpt(sl.Upper),
			Step:  c.exprOpt(sl.Step),
		}}
	case *ast.ExtSlice:
		items := make([]*sem.Expr, 0, len(sl.Dims))
		for _, d := range sl.Dims {
			items = append(items, c.slice(d, pos))
		}
		return &sem.Expr{Kind: sem.ExprTuple, Pos: pos, Data: sem.TupleData{Items: items}}
	default:
		c.fail(diag.RawTreeError, pos, "unsupported subscript node in raw tree")
		return &sem.Expr{Kind: sem.ExprTemp, Pos: pos, Data: sem.TempData{
			Type: &types.AnyType{TypePos: types.TypePos{Position: pos}, Kind: types.AnyFromError},
		}}
	}
}

// joinedStr desugars an interpolated string literal into
// ''.join([...]) over its parts; interpolated parts have already been
// rewritten as '{}'.format(value) calls. Conversion flags and format
// specifiers are discarded.
func (c *converter) joinedStr(n *ast.JoinedStr) *sem.Expr {
	empty := &sem.Expr{Kind: sem.ExprStr, Pos: n.Pos(), Data: sem.StrData{Value: ""}}
	parts := &sem.Expr{Kind: sem.ExprList, Pos: n.Pos(), Data: sem.ListData{
		Items: c.exprList(n.Values),
	}}
	join := &sem.Expr{Kind: sem.ExprMember, Pos: n.Pos(), Data: sem.MemberData{
		Value: empty,
		Name:  "join",
	}}
	return &sem.Expr{Kind: sem.ExprCall, Pos: n.Pos(), Data: sem.CallData{
		Callee: join,
		Args:   []*sem.Expr{parts},
		Kinds:  []types.ArgKind{types.ArgPos},
		Names:  []string{""},
	}}
}

// formattedValue desugars one interpolated piece into '{}'.format(v).
func (c *converter) formattedValue(n *ast.FormattedValue) *sem.Expr {
	format := &sem.Expr{Kind: sem.ExprStr, Pos: n.Pos(), Data: sem.StrData{Value: "{}"}}
	method := &sem.Expr{Kind: sem.ExprMember, Pos: n.Pos(), Data: sem.MemberData{
		Value: format,
		Name:  "format",
	}}
	return &sem.Expr{Kind: sem.ExprCall, Pos: n.Pos(), Data: sem.CallData{
		Callee: method,
		Args:   []*sem.Expr{c.expr(n.Value)},
		Kinds:  []types.ArgKind{types.ArgPos},
		Names:  []string{""},
	}}
}
