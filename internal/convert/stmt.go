package convert

import (
	"pyfront/internal/ast"
	"pyfront/internal/diag"
	"pyfront/internal/sem"
	"pyfront/internal/source"
	"pyfront/internal/types"
)

// stmtList converts a raw statement sequence without coalescing;
// callers that build blocks run the coalescer afterwards.
func (c *converter) stmtList(stmts []ast.Stmt) []*sem.Stmt {
	out := make([]*sem.Stmt, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, c.stmt(s))
	}
	return out
}

// block converts a statement sequence into a coalesced Block; empty
// input yields nil, matching optional surface blocks such as a missing
// else clause.
func (c *converter) block(stmts []ast.Stmt, pos source.Pos) *sem.Block {
	if len(stmts) == 0 {
		return nil
	}
	return &sem.Block{
		Body: c.coalesceOverloads(c.stmtList(stmts)),
		Pos:  pos,
	}
}

// requiredBlock is block for grammar positions that mandate a body.
// An empty body is a malformed raw tree; it is reported and recovered
// as an empty block.
func (c *converter) requiredBlock(stmts []ast.Stmt, pos source.Pos) *sem.Block {
	if len(stmts) == 0 {
		c.fail(diag.RawTreeError, pos, "missing required block body")
		return &sem.Block{Pos: pos}
	}
	return c.block(stmts, pos)
}

// stmt converts exactly one raw statement to one semantic statement.
func (c *converter) stmt(s ast.Stmt) *sem.Stmt {
	switch n := s.(type) {
	case *ast.FunctionDef:
		return c.funcDef(n)

	case *ast.ClassDef:
		return c.classDef(n)

	case *ast.ReturnStmt:
		return &sem.Stmt{Kind: sem.StmtReturn, Pos: n.Pos(), Data: sem.ReturnData{
			Value: c.exprOpt(n.Value),
		}}

	case *ast.DeleteStmt:
		return c.deleteStmt(n)

	case *ast.AssignStmt:
		var typ types.Type
		if n.TypeComment != "" {
			typ = c.typeFromComment(n.TypeComment, n.Pos())
		}
		return &sem.Stmt{Kind: sem.StmtAssign, Pos: n.Pos(), Data: sem.AssignData{
			Targets: c.exprList(n.Targets),
			Value:   c.expr(n.Value),
			Type:    typ,
		}}

	case *ast.AnnAssignStmt:
		return c.annAssign(n)

	case *ast.AugAssignStmt:
		return &sem.Stmt{Kind: sem.StmtAugAssign, Pos: n.Pos(), Data: sem.AugAssignData{
			Op:     n.Op.Symbol(),
			Target: c.expr(n.Target),
			Value:  c.expr(n.Value),
		}}

	case *ast.ForStmt:
		var elemType types.Type
		if n.TypeComment != "" {
			elemType = c.typeFromComment(n.TypeComment, n.Pos())
		}
		return &sem.Stmt{Kind: sem.StmtFor, Pos: n.Pos(), Data: sem.ForData{
			Target:   c.expr(n.Target),
			Iter:     c.expr(n.Iter),
			Body:     c.requiredBlock(n.Body, n.Pos()),
			Else:     c.block(n.OrElse, n.Pos()),
			ElemType: elemType,
			IsAsync:  n.IsAsync,
		}}

	case *ast.WhileStmt:
		return &sem.Stmt{Kind: sem.StmtWhile, Pos: n.Pos(), Data: sem.WhileData{
			Cond: c.expr(n.Test),
			Body: c.requiredBlock(n.Body, n.Pos()),
			Else: c.block(n.OrElse, n.Pos()),
		}}

	case *ast.IfStmt:
		return c.ifStmt(n)

	case *ast.WithStmt:
		return c.withStmt(n)

	case *ast.RaiseStmt:
		return &sem.Stmt{Kind: sem.StmtRaise, Pos: n.Pos(), Data: sem.RaiseData{
			Exc:   c.exprOpt(n.Exc),
			Cause: c.exprOpt(n.Cause),
		}}

	case *ast.TryStmt:
		return c.tryStmt(n)

	case *ast.AssertStmt:
		return &sem.Stmt{Kind: sem.StmtAssert, Pos: n.Pos(), Data: sem.AssertData{
			Cond: c.expr(n.Test),
			Msg:  c.exprOpt(n.Msg),
		}}

	case *ast.ImportStmt:
		return c.importStmt(n)

	case *ast.ImportFromStmt:
		return c.importFromStmt(n)

	case *ast.GlobalStmt:
		return &sem.Stmt{Kind: sem.StmtGlobal, Pos: n.Pos(), Data: sem.GlobalData{Names: n.Names}}

	case *ast.NonlocalStmt:
		return &sem.Stmt{Kind: sem.StmtNonlocal, Pos: n.Pos(), Data: sem.NonlocalData{Names: n.Names}}

	case *ast.ExprStmt:
		return &sem.Stmt{Kind: sem.StmtExpr, Pos: n.Pos(), Data: sem.ExprStmtData{Value: c.expr(n.Value)}}

	case *ast.PassStmt:
		return &sem.Stmt{Kind: sem.StmtPass, Pos: n.Pos(), Data: sem.PassData{}}

	case *ast.BreakStmt:
		return &sem.Stmt{Kind: sem.StmtBreak, Pos: n.Pos(), Data: sem.BreakData{}}

	case *ast.ContinueStmt:
		return &sem.Stmt{Kind: sem.StmtContinue, Pos: n.Pos(), Data: sem.ContinueData{}}

	default:
		c.fail(diag.RawTreeError, s.Pos(), "unsupported statement node in raw tree")
		return &sem.Stmt{Kind: sem.StmtPass, Pos: s.Pos(), Data: sem.PassData{}}
	}
}

func (c *converter) classDef(n *ast.ClassDef) *sem.Stmt {
	c.nesting++
	body := c.requiredBlock(n.Body, n.Pos())
	c.nesting--

	data := &sem.ClassData{
		Name:       n.Name,
		Bases:      c.exprList(n.Bases),
		Decorators: c.exprList(n.Decorators),
		Body:       body,
	}
	for _, kw := range n.Keywords {
		val := c.expr(kw.Value)
		data.Keywords = append(data.Keywords, sem.ClassKeyword{Name: kw.Name, Value: val})
		if kw.Name == "metaclass" {
			data.Metaclass = val
		}
	}
	return &sem.Stmt{Kind: sem.StmtClass, Pos: n.Pos(), Data: data}
}

// deleteStmt keeps a single target expression; multiple targets are
// wrapped in one tuple so downstream sees a uniform shape.
func (c *converter) deleteStmt(n *ast.DeleteStmt) *sem.Stmt {
	var target *sem.Expr
	if len(n.Targets) == 1 {
		target = c.expr(n.Targets[0])
	} else {
		target = &sem.Expr{Kind: sem.ExprTuple, Pos: n.Pos(), Data: sem.TupleData{
			Items: c.exprList(n.Targets),
		}}
	}
	return &sem.Stmt{Kind: sem.StmtDel, Pos: n.Pos(), Data: sem.DelData{Target: target}}
}

// annAssign converts "x: T = v". A bare declaration gets a synthetic
// placeholder value carrying a special-form dynamic type.
func (c *converter) annAssign(n *ast.AnnAssignStmt) *sem.Stmt {
	var value *sem.Expr
	if n.Value != nil {
		value = c.expr(n.Value)
	} else {
		value = &sem.Expr{Kind: sem.ExprTemp, Pos: n.Pos(), Data: sem.TempData{
			Type:  &types.AnyType{TypePos: types.TypePos{Position: n.Pos()}, Kind: types.AnySpecialForm},
			NoRHS: true,
		}}
	}
	typ := c.typeExpr(n.Annotation, n.Annotation.Pos())
	return &sem.Stmt{Kind: sem.StmtAssign, Pos: n.Pos(), Data: sem.AssignData{
		Targets:   []*sem.Expr{c.expr(n.Target)},
		Value:     value,
		Type:      typ,
		NewSyntax: true,
	}}
}

// ifStmt flattens a raw elif chain, which arrives as a nested if
// statement alone in the else slot, into parallel condition and body
// lists with one trailing else block.
func (c *converter) ifStmt(n *ast.IfStmt) *sem.Stmt {
	var conds []*sem.Expr
	var bodies []*sem.Block
	var elseBlock *sem.Block

	cur := n
	for {
		conds = append(conds, c.expr(cur.Test))
		bodies = append(bodies, c.requiredBlock(cur.Body, cur.Pos()))
		if len(cur.OrElse) == 1 {
			if next, ok := cur.OrElse[0].(*ast.IfStmt); ok {
				cur = next
				continue
			}
		}
		elseBlock = c.block(cur.OrElse, cur.Pos())
		break
	}
	return &sem.Stmt{Kind: sem.StmtIf, Pos: n.Pos(), Data: sem.IfData{
		Conds:  conds,
		Bodies: bodies,
		Else:   elseBlock,
	}}
}

func (c *converter) withStmt(n *ast.WithStmt) *sem.Stmt {
	var targetType types.Type
	if n.TypeComment != "" {
		targetType = c.typeFromComment(n.TypeComment, n.Pos())
	}
	exprs := make([]*sem.Expr, 0, len(n.Items))
	targets := make([]*sem.Expr, 0, len(n.Items))
	for _, item := range n.Items {
		exprs = append(exprs, c.expr(item.ContextExpr))
		targets = append(targets, c.exprOpt(item.OptionalVars))
	}
	return &sem.Stmt{Kind: sem.StmtWith, Pos: n.Pos(), Data: sem.WithData{
		Exprs:      exprs,
		Targets:    targets,
		Body:       c.requiredBlock(n.Body, n.Pos()),
		TargetType: targetType,
		IsAsync:    n.IsAsync,
	}}
}

func (c *converter) tryStmt(n *ast.TryStmt) *sem.Stmt {
	data := sem.TryData{
		Body:  c.requiredBlock(n.Body, n.Pos()),
		Else:  c.block(n.OrElse, n.Pos()),
		Final: c.block(n.Final, n.Pos()),
	}
	for _, h := range n.Handlers {
		var v *sem.Expr
		if h.Name != "" {
			v = &sem.Expr{Kind: sem.ExprName, Pos: h.Pos(), Data: sem.NameData{Name: h.Name}}
		}
		data.Vars = append(data.Vars, v)
		data.Types = append(data.Types, c.exprOpt(h.Type))
		data.Handlers = append(data.Handlers, c.requiredBlock(h.Body, h.Pos()))
	}
	return &sem.Stmt{Kind: sem.StmtTry, Pos: n.Pos(), Data: data}
}

// translateModuleID rewrites a module name through the caller-supplied
// alias table, with the classic builtins and custom-typing rewrites.
func (c *converter) translateModuleID(id string) string {
	if c.opts.CustomTypingModule != "" && id == c.opts.CustomTypingModule {
		return "typing"
	}
	if id == "__builtin__" {
		return "builtins"
	}
	if mapped, ok := c.opts.ModuleAliases[id]; ok {
		return mapped
	}
	return id
}

func (c *converter) importStmt(n *ast.ImportStmt) *sem.Stmt {
	names := make([]sem.ImportName, 0, len(n.Names))
	for _, a := range n.Names {
		name := c.translateModuleID(a.Name)
		as := a.AsName
		if as == "" && name != a.Name {
			// A translated module keeps resolving under its written
			// name via an implicit self alias.
			as = a.Name
		}
		names = append(names, sem.ImportName{Name: name, As: as})
	}
	s := &sem.Stmt{Kind: sem.StmtImport, Pos: n.Pos(), Data: sem.ImportData{Names: names}}
	c.imports = append(c.imports, s)
	return s
}

func (c *converter) importFromStmt(n *ast.ImportFromStmt) *sem.Stmt {
	var s *sem.Stmt
	if len(n.Names) == 1 && n.Names[0].Name == "*" {
		s = &sem.Stmt{Kind: sem.StmtImportAll, Pos: n.Pos(), Data: sem.ImportAllData{
			Module: n.Module,
			Level:  n.Level,
		}}
	} else {
		names := make([]sem.ImportName, 0, len(n.Names))
		for _, a := range n.Names {
			names = append(names, sem.ImportName{Name: a.Name, As: a.AsName})
		}
		s = &sem.Stmt{Kind: sem.StmtImportFrom, Pos: n.Pos(), Data: sem.ImportFromData{
			Module: c.translateModuleID(n.Module),
			Level:  n.Level,
			Names:  names,
		}}
	}
	c.imports = append(c.imports, s)
	return s
}
