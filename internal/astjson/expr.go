package astjson

import (
	"fmt"
	"strconv"

	"pyfront/internal/ast"
)

func decodeExpr(o object) (ast.Expr, error) {
	if o == nil {
		return nil, fmt.Errorf("astjson: missing expression node")
	}
	pos, err := nodePos(o)
	if err != nil {
		return nil, err
	}
	typ := nodeType(o)
	switch typ {
	case "Name":
		return &ast.NameExpr{NodePos: pos, ID: strField(o, "id"), Ctx: ctxField(o)}, nil

	case "NameConstant":
		return &ast.NameConstExpr{NodePos: pos, Value: nameConstValue(o["value"])}, nil

	case "Num":
		return decodeNum(o, pos)

	case "Str":
		return &ast.StrLit{NodePos: pos, Value: strField(o, "s")}, nil

	case "Bytes":
		return &ast.BytesLit{NodePos: pos, Value: strField(o, "s")}, nil

	case "Ellipsis":
		return &ast.EllipsisLit{NodePos: pos}, nil

	case "Tuple":
		elts, err := decodeExprList(o, "elts")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.TupleExpr{NodePos: pos, Elts: elts, Ctx: ctxField(o)}, nil

	case "List":
		elts, err := decodeExprList(o, "elts")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.ListExpr{NodePos: pos, Elts: elts, Ctx: ctxField(o)}, nil

	case "Set":
		elts, err := decodeExprList(o, "elts")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.SetExpr{NodePos: pos, Elts: elts}, nil

	case "Dict":
		// Keys may hold nulls: a null key marks a **-unpacked entry.
		keys, err := decodeExprListNilable(o, "keys")
		if err != nil {
			return nil, wrap(typ, err)
		}
		values, err := decodeExprList(o, "values")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.DictExpr{NodePos: pos, Keys: keys, Values: values}, nil

	case "BoolOp":
		values, err := decodeExprList(o, "values")
		if err != nil {
			return nil, wrap(typ, err)
		}
		op := ast.BoolAnd
		if nodeType(objField(o, "op")) == "Or" {
			op = ast.BoolOr
		}
		return &ast.BoolOpExpr{NodePos: pos, Op: op, Values: values}, nil

	case "BinOp":
		left, err := decodeExpr(objField(o, "left"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		right, err := decodeExpr(objField(o, "right"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		op, err := decodeOp(objField(o, "op"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.BinOpExpr{NodePos: pos, Left: left, Op: op, Right: right}, nil

	case "UnaryOp":
		operand, err := decodeExpr(objField(o, "operand"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		op, err := decodeUnaryOp(objField(o, "op"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.UnaryOpExpr{NodePos: pos, Op: op, Operand: operand}, nil

	case "Compare":
		left, err := decodeExpr(objField(o, "left"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		comparators, err := decodeExprList(o, "comparators")
		if err != nil {
			return nil, wrap(typ, err)
		}
		var ops []ast.CmpOpKind
		for _, raw := range listField(o, "ops") {
			oo, ok := raw.(object)
			if !ok {
				return nil, fmt.Errorf("astjson: malformed comparison operator")
			}
			op, err := decodeCmpOp(oo)
			if err != nil {
				return nil, wrap(typ, err)
			}
			ops = append(ops, op)
		}
		return &ast.CompareExpr{NodePos: pos, Left: left, Ops: ops, Comparators: comparators}, nil

	case "Lambda":
		args, err := decodeArguments(objField(o, "args"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		body, err := decodeExpr(objField(o, "body"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.LambdaExpr{NodePos: pos, Args: args, Body: body}, nil

	case "IfExp":
		test, err := decodeExpr(objField(o, "test"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		body, err := decodeExpr(objField(o, "body"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		orElse, err := decodeExpr(objField(o, "orelse"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.IfExpr{NodePos: pos, Test: test, Body: body, OrElse: orElse}, nil

	case "ListComp":
		elt, gens, err := decodeComprehension(o)
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.ListCompExpr{NodePos: pos, Elt: elt, Generators: gens}, nil

	case "SetComp":
		elt, gens, err := decodeComprehension(o)
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.SetCompExpr{NodePos: pos, Elt: elt, Generators: gens}, nil

	case "GeneratorExp":
		elt, gens, err := decodeComprehension(o)
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.GeneratorExpr{NodePos: pos, Elt: elt, Generators: gens}, nil

	case "DictComp":
		key, err := decodeExpr(objField(o, "key"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		value, err := decodeExpr(objField(o, "value"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		gens, err := decodeGenerators(o)
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.DictCompExpr{NodePos: pos, Key: key, Value: value, Generators: gens}, nil

	case "Await":
		value, err := decodeExpr(objField(o, "value"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.AwaitExpr{NodePos: pos, Value: value}, nil

	case "Yield":
		value, err := decodeExprOpt(o, "value")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.YieldExpr{NodePos: pos, Value: value}, nil

	case "YieldFrom":
		value, err := decodeExpr(objField(o, "value"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.YieldFromExpr{NodePos: pos, Value: value}, nil

	case "Call":
		fn, err := decodeExpr(objField(o, "func"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		args, err := decodeExprList(o, "args")
		if err != nil {
			return nil, wrap(typ, err)
		}
		keywords, err := decodeKeywords(o)
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.CallExpr{NodePos: pos, Func: fn, Args: args, Keywords: keywords}, nil

	case "Attribute":
		value, err := decodeExpr(objField(o, "value"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.AttributeExpr{NodePos: pos, Value: value, Attr: strField(o, "attr"), Ctx: ctxField(o)}, nil

	case "Subscript":
		value, err := decodeExpr(objField(o, "value"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		slice, err := decodeSlice(objField(o, "slice"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.SubscriptExpr{NodePos: pos, Value: value, Slice: slice, Ctx: ctxField(o)}, nil

	case "Starred":
		value, err := decodeExpr(objField(o, "value"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.StarredExpr{NodePos: pos, Value: value, Ctx: ctxField(o)}, nil

	case "JoinedStr":
		values, err := decodeExprList(o, "values")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.JoinedStr{NodePos: pos, Values: values}, nil

	case "FormattedValue":
		value, err := decodeExpr(objField(o, "value"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.FormattedValue{NodePos: pos, Value: value}, nil

	default:
		return nil, fmt.Errorf("astjson: unknown expression node %q", typ)
	}
}

// decodeNum splits the dump's single numeric shape by its kind tag.
// Integers outside float64's exact range arrive with their spelling in
// "text".
func decodeNum(o object, pos ast.NodePos) (ast.Expr, error) {
	switch strField(o, "kind") {
	case "float":
		v, _ := o["n"].(float64)
		return &ast.FloatLit{NodePos: pos, Value: v}, nil
	case "complex":
		real, _ := o["real"].(float64)
		imag, _ := o["imag"].(float64)
		return &ast.ComplexLit{NodePos: pos, Value: complex(real, imag)}, nil
	default:
		text := strField(o, "text")
		if text != "" {
			v, err := strconv.ParseInt(text, 0, 64)
			if err != nil {
				// Bigger than int64: keep the spelling only.
				return &ast.IntLit{NodePos: pos, Text: text}, nil
			}
			return &ast.IntLit{NodePos: pos, Value: v, Text: text}, nil
		}
		v, _ := o["n"].(float64)
		return &ast.IntLit{NodePos: pos, Value: int64(v), Text: strconv.FormatInt(int64(v), 10)}, nil
	}
}

func nameConstValue(v any) string {
	switch c := v.(type) {
	case bool:
		if c {
			return "True"
		}
		return "False"
	case string:
		return c
	default:
		return "None"
	}
}

func decodeComprehension(o object) (ast.Expr, []ast.Comprehension, error) {
	elt, err := decodeExpr(objField(o, "elt"))
	if err != nil {
		return nil, nil, err
	}
	gens, err := decodeGenerators(o)
	if err != nil {
		return nil, nil, err
	}
	return elt, gens, nil
}

func decodeGenerators(o object) ([]ast.Comprehension, error) {
	var out []ast.Comprehension
	for _, raw := range listField(o, "generators") {
		go_, ok := raw.(object)
		if !ok {
			return nil, fmt.Errorf("astjson: malformed comprehension clause")
		}
		target, err := decodeExpr(objField(go_, "target"))
		if err != nil {
			return nil, err
		}
		iter, err := decodeExpr(objField(go_, "iter"))
		if err != nil {
			return nil, err
		}
		ifs, err := decodeExprList(go_, "ifs")
		if err != nil {
			return nil, err
		}
		isAsync, err := intField(go_, "is_async")
		if err != nil {
			return nil, err
		}
		out = append(out, ast.Comprehension{Target: target, Iter: iter, Ifs: ifs, IsAsync: isAsync != 0})
	}
	return out, nil
}

func decodeSlice(o object) (ast.Slice, error) {
	if o == nil {
		return nil, fmt.Errorf("astjson: missing subscript slice")
	}
	pos, err := nodePos(o)
	if err != nil {
		return nil, err
	}
	switch typ := nodeType(o); typ {
	case "Index":
		value, err := decodeExpr(objField(o, "value"))
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.IndexSlice{NodePos: pos, Value: value}, nil
	case "Slice":
		lower, err := decodeExprOpt(o, "lower")
		if err != nil {
			return nil, wrap(typ, err)
		}
		upper, err := decodeExprOpt(o, "upper")
		if err != nil {
			return nil, wrap(typ, err)
		}
		step, err := decodeExprOpt(o, "step")
		if err != nil {
			return nil, wrap(typ, err)
		}
		return &ast.RangeSlice{NodePos: pos, Lower: lower, Upper: upper, Step: step}, nil
	case "ExtSlice":
		var dims []ast.Slice
		for _, raw := range listField(o, "dims") {
			do, ok := raw.(object)
			if !ok {
				return nil, fmt.Errorf("astjson: malformed slice dimension")
			}
			d, err := decodeSlice(do)
			if err != nil {
				return nil, err
			}
			dims = append(dims, d)
		}
		return &ast.ExtSlice{NodePos: pos, Dims: dims}, nil
	default:
		return nil, fmt.Errorf("astjson: unknown slice node %q", typ)
	}
}

func decodeOp(o object) (ast.OpKind, error) {
	switch t := nodeType(o); t {
	case "Add":
		return ast.OpAdd, nil
	case "Sub":
		return ast.OpSub, nil
	case "Mult":
		return ast.OpMult, nil
	case "MatMult":
		return ast.OpMatMult, nil
	case "Div":
		return ast.OpDiv, nil
	case "Mod":
		return ast.OpMod, nil
	case "Pow":
		return ast.OpPow, nil
	case "LShift":
		return ast.OpLShift, nil
	case "RShift":
		return ast.OpRShift, nil
	case "BitOr":
		return ast.OpBitOr, nil
	case "BitXor":
		return ast.OpBitXor, nil
	case "BitAnd":
		return ast.OpBitAnd, nil
	case "FloorDiv":
		return ast.OpFloorDiv, nil
	default:
		return 0, fmt.Errorf("astjson: unknown operator %q", t)
	}
}

func decodeUnaryOp(o object) (ast.UnaryOpKind, error) {
	switch t := nodeType(o); t {
	case "Invert":
		return ast.UnaryInvert, nil
	case "Not":
		return ast.UnaryNot, nil
	case "UAdd":
		return ast.UnaryPlus, nil
	case "USub":
		return ast.UnaryMinus, nil
	default:
		return 0, fmt.Errorf("astjson: unknown unary operator %q", t)
	}
}

func decodeCmpOp(o object) (ast.CmpOpKind, error) {
	switch t := nodeType(o); t {
	case "Gt":
		return ast.CmpGt, nil
	case "Lt":
		return ast.CmpLt, nil
	case "Eq":
		return ast.CmpEq, nil
	case "GtE":
		return ast.CmpGtE, nil
	case "LtE":
		return ast.CmpLtE, nil
	case "NotEq":
		return ast.CmpNotEq, nil
	case "Is":
		return ast.CmpIs, nil
	case "IsNot":
		return ast.CmpIsNot, nil
	case "In":
		return ast.CmpIn, nil
	case "NotIn":
		return ast.CmpNotIn, nil
	default:
		return 0, fmt.Errorf("astjson: unknown comparison operator %q", t)
	}
}
