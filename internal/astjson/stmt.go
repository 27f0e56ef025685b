package astjson

import (
	"fmt"

	"pyfront/internal/ast"
)

func decodeStmt(o object) (ast.Stmt, error) {
	pos, err := nodePos(o)
	if err != nil {
		return nil, err
	}
	typ := nodeType(o)
	switch typ {
	case "FunctionDef", "AsyncFunctionDef":
		args, err := decodeArguments(objField(o, "args"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		body, err := decodeStmtList(o, "body")
		if err != nil {
			return nil, wrap(typ, err)
		}
		decorators, err := decodeExprList(o, "decorator_list")
		if err != nil {
			return nil, wrap(typ, err)
		}
		returns, err := decodeExprOpt(o, "returns")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.FunctionDef{
			NodePos:     pos,
			Name:        strField(o, "name"),
			Args:        args,
			Body:        body,
			Decorators:  decorators,
			Returns:     returns,
			TypeComment: strField(o, "type_comment"),
			IsAsync:     typ == "AsyncFunctionDef",
		}, nil

	case "ClassDef":
		body, err := decodeStmtList(o, "body")
		if err != nil {
			return nil, wrap(typ, err)
		}
		bases, err := decodeExprList(o, "bases")
		if err != nil {
			return nil, wrap(typ, err)
		}
		decorators, err := decodeExprList(o, "decorator_list")
		if err != nil {
			return nil, wrap(typ, err)
		}
		keywords, err := decodeKeywords(o)
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.ClassDef{
			NodePos:    pos,
			Name:       strField(o, "name"),
			Bases:      bases,
			Keywords:   keywords,
			Body:       body,
			Decorators: decorators,
		}, nil

	case "Return":
		value, err := decodeExprOpt(o, "value")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.ReturnStmt{NodePos: pos, Value: value}, nil

	case "Delete":
		targets, err := decodeExprList(o, "targets")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.DeleteStmt{NodePos: pos, Targets: targets}, nil

	case "Assign":
		targets, err := decodeExprList(o, "targets")
		if err != nil {
			return nil, wrap(typ, err)
		}
		value, err := decodeExpr(objField(o, "value"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.AssignStmt{
			NodePos:     pos,
			Targets:     targets,
			Value:       value,
			TypeComment: strField(o, "type_comment"),
		}, nil

	case "AnnAssign":
		target, err := decodeExpr(objField(o, "target"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		annotation, err := decodeExpr(objField(o, "annotation"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		value, err := decodeExprOpt(o, "value")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.AnnAssignStmt{NodePos: pos, Target: target, Annotation: annotation, Value: value}, nil

	case "AugAssign":
		target, err := decodeExpr(objField(o, "target"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		value, err := decodeExpr(objField(o, "value"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		op, err := decodeOp(objField(o, "op"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.AugAssignStmt{NodePos: pos, Target: target, Op: op, Value: value}, nil

	case "For", "AsyncFor":
		target, err := decodeExpr(objField(o, "target"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		iter, err := decodeExpr(objField(o, "iter"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		body, err := decodeStmtList(o, "body")
		if err != nil {
			return nil, wrap(typ, err)
		}
		orElse, err := decodeStmtList(o, "orelse")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.ForStmt{
			NodePos:     pos,
			Target:      target,
			Iter:        iter,
			Body:        body,
			OrElse:      orElse,
			TypeComment: strField(o, "type_comment"),
			IsAsync:     typ == "AsyncFor",
		}, nil

	case "While":
		test, err := decodeExpr(objField(o, "test"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		body, err := decodeStmtList(o, "body")
		if err != nil {
			return nil, wrap(typ, err)
		}
		orElse, err := decodeStmtList(o, "orelse")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.WhileStmt{NodePos: pos, Test: test, Body: body, OrElse: orElse}, nil

	case "If":
		test, err := decodeExpr(objField(o, "test"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		body, err := decodeStmtList(o, "body")
		if err != nil {
			return nil, wrap(typ, err)
		}
		orElse, err := decodeStmtList(o, "orelse")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.IfStmt{NodePos: pos, Test: test, Body: body, OrElse: orElse}, nil

	case "With", "AsyncWith":
		body, err := decodeStmtList(o, "body")
		if err != nil {
			return nil, wrap(typ, err)
		}
		var items []ast.WithItem
		for _, raw := range listField(o, "items") {
			io, ok := raw.(object)
			if !ok {
				return nil, fmt.Errorf("astjson: malformed with item")
			}
			ctx, err := decodeExpr(objField(io, "context_expr"))
			if err != nil {
				return nil, wrap(typ, err)
			}
			vars, err := decodeExprOpt(io, "optional_vars")
			if err != nil {
				return nil, wrap(typ, err)
			}
			items = append(items, ast.WithItem{ContextExpr: ctx, OptionalVars: vars})
		}
		return &ast.WithStmt{
			NodePos:     pos,
			Items:       items,
			Body:        body,
			TypeComment: strField(o, "type_comment"),
			IsAsync:     typ == "AsyncWith",
		}, nil

	case "Raise":
		exc, err := decodeExprOpt(o, "exc")
		if err != nil {
			return nil, wrap(typ, err)
		}
		cause, err := decodeExprOpt(o, "cause")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.RaiseStmt{NodePos: pos, Exc: exc, Cause: cause}, nil

	case "Try":
		body, err := decodeStmtList(o, "body")
		if err != nil {
			return nil, wrap(typ, err)
		}
		orElse, err := decodeStmtList(o, "orelse")
		if err != nil {
			return nil, wrap(typ, err)
		}
		final, err := decodeStmtList(o, "finalbody")
		if err != nil {
			return nil, wrap(typ, err)
		}
		var handlers []*ast.ExceptHandler
		for _, raw := range listField(o, "handlers") {
			ho, ok := raw.(object)
			if !ok {
				return nil, fmt.Errorf("astjson: malformed except handler")
			}
			hpos, err := nodePos(ho)
			if err != nil {
				return nil, wrap(typ, err)
			}
			htype, err := decodeExprOpt(ho, "type")
			if err != nil {
				return nil, wrap(typ, err)
			}
			hbody, err := decodeStmtList(ho, "body")
			if err != nil {
				return nil, wrap(typ, err)
			}
			handlers = append(handlers, &ast.ExceptHandler{
				NodePos: hpos,
				Type:    htype,
				Name:    strField(ho, "name"),
				Body:    hbody,
			})
		}
		return &ast.TryStmt{NodePos: pos, Body: body, Handlers: handlers, OrElse: orElse, Final: final}, nil

	case "Assert":
		test, err := decodeExpr(objField(o, "test"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		msg, err := decodeExprOpt(o, "msg")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.AssertStmt{NodePos: pos, Test: test, Msg: msg}, nil

	case "Import":
		return &ast.ImportStmt{NodePos: pos, Names: decodeAliases(o)}, nil

	case "ImportFrom":
		level, err := intField(o, "level")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.ImportFromStmt{
			NodePos: pos,
			Module:  strField(o, "module"),
			Names:   decodeAliases(o),
			Level:   level,
		}, nil

	case "Global":
		return &ast.GlobalStmt{NodePos: pos, Names: decodeNames(o)}, nil

	case "Nonlocal":
		return &ast.NonlocalStmt{NodePos: pos, Names: decodeNames(o)}, nil

	case "Expr":
		value, err := decodeExpr(objField(o, "value"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.ExprStmt{NodePos: pos, Value: value}, nil

	case "Pass":
		return &ast.PassStmt{NodePos: pos}, nil

	case "Break":
		return &ast.BreakStmt{NodePos: pos}, nil

	case "Continue":
		return &ast.ContinueStmt{NodePos: pos}, nil

	default:
		return nil, fmt.Errorf("astjson: unknown statement node %q", typ)
	}
}

func wrap(typ string, err error) error {
	return fmt.Errorf("decode %s: %w", typ, err)
}

func decodeAliases(o object) []ast.Alias {
	var out []ast.Alias
	for _, raw := range listField(o, "names") {
		ao, ok := raw.(object)
		if !ok {
			continue
		}
		out = append(out, ast.Alias{Name: strField(ao, "name"), AsName: strField(ao, "asname")})
	}
	return out
}

func decodeNames(o object) []string {
	raw := listField(o, "names")
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func decodeKeywords(o object) ([]ast.Keyword, error) {
	var out []ast.Keyword
	for _, raw := range listField(o, "keywords") {
		ko, ok := raw.(object)
		if !ok {
			return nil, fmt.Errorf("astjson: malformed keyword")
		}
		value, err := decodeExpr(objField(ko, "value"))
		if err != nil {
			return nil, err
		}
		out = append(out, ast.Keyword{Name: strField(ko, "arg"), Value: value})
	}
	return out, nil
}

func decodeArguments(o object) (*ast.Arguments, error) {
	args := &ast.Arguments{}
	var err error
	if args.Args, err = decodeArgList(o, "args"); err != nil {
		return nil, err
	}
	if args.Defaults, err = decodeExprList(o, "defaults"); err != nil {
		return nil, err
	}
	if args.KwOnly, err = decodeArgList(o, "kwonlyargs"); err != nil {
		return nil, err
	}
	if args.KwDefaults, err = decodeExprListNilable(o, "kw_defaults"); err != nil {
		return nil, err
	}
	if v := objField(o, "vararg"); v != nil {
		if args.Vararg, err = decodeArg(v); err != nil {
			return nil, err
		}
	}
	if v := objField(o, "kwarg"); v != nil {
		if args.Kwarg, err = decodeArg(v); err != nil {
			return nil, err
		}
	}
	return args, nil
}

func decodeArgList(o object, key string) ([]*ast.Arg, error) {
	var out []*ast.Arg
	for _, raw := range listField(o, key) {
		ao, ok := raw.(object)
		if !ok {
			return nil, fmt.Errorf("astjson: malformed entry in %s", key)
		}
		a, err := decodeArg(ao)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func decodeArg(o object) (*ast.Arg, error) {
	pos, err := nodePos(o)
	if err != nil {
		return nil, err
	}
	annotation, err := decodeExprOpt(o, "annotation")
	if err != nil {
		return nil, err
	}
	return &ast.Arg{
		NodePos:     pos,
		Name:        strField(o, "arg"),
		Annotation:  annotation,
		TypeComment: strField(o, "type_comment"),
	}, nil
}
