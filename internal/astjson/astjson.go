// Package astjson decodes the external parser's JSON tree dump into the
// raw AST. Each JSON object carries a "_type" discriminator plus
// "lineno"/"col_offset" provenance; field names follow the dump format
// of the upstream parser.
package astjson

import (
	"encoding/json"
	"fmt"

	"fortio.org/safecast"

	"pyfront/internal/ast"
	"pyfront/internal/source"
)

type object = map[string]any

// DecodeModule decodes one whole-module dump.
func DecodeModule(data []byte) (*ast.Module, error) {
	var root object
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("astjson: %w", err)
	}
	if typ := nodeType(root); typ != "Module" {
		return nil, fmt.Errorf("astjson: top-level node is %q, want Module", typ)
	}
	body, err := decodeStmtList(root, "body")
	if err != nil {
		return nil, err
	}
	mod := &ast.Module{Body: body}
	for _, raw := range listField(root, "type_ignores") {
		o, ok := raw.(object)
		if !ok {
			return nil, fmt.Errorf("astjson: malformed type_ignores entry")
		}
		line, err := intField(o, "lineno")
		if err != nil {
			return nil, err
		}
		mod.TypeIgnores = append(mod.TypeIgnores, line)
	}
	return mod, nil
}

func nodeType(o object) string {
	s, _ := o["_type"].(string)
	return s
}

func listField(o object, key string) []any {
	l, _ := o[key].([]any)
	return l
}

func strField(o object, key string) string {
	s, _ := o[key].(string)
	return s
}

func objField(o object, key string) object {
	v, _ := o[key].(object)
	return v
}

func intField(o object, key string) (int, error) {
	switch v := o[key].(type) {
	case float64:
		n, err := safecast.Convert[int](v)
		if err != nil {
			return 0, fmt.Errorf("astjson: %s out of range: %w", key, err)
		}
		return n, nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("astjson: %s is %T, want number", key, v)
	}
}

func nodePos(o object) (ast.NodePos, error) {
	line, err := intField(o, "lineno")
	if err != nil {
		return ast.NodePos{}, err
	}
	col, err := intField(o, "col_offset")
	if err != nil {
		return ast.NodePos{}, err
	}
	return ast.NodePos{Position: source.Pos{Line: line, Col: col}}, nil
}

func ctxField(o object) ast.Ctx {
	switch nodeType(objField(o, "ctx")) {
	case "Store":
		return ast.Store
	case "Del":
		return ast.Del
	default:
		return ast.Load
	}
}

func decodeStmtList(o object, key string) ([]ast.Stmt, error) {
	raw := listField(o, key)
	out := make([]ast.Stmt, 0, len(raw))
	for _, item := range raw {
		node, ok := item.(object)
		if !ok {
			return nil, fmt.Errorf("astjson: malformed entry in %s", key)
		}
		s, err := decodeStmt(node)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func decodeExprList(o object, key string) ([]ast.Expr, error) {
	raw := listField(o, key)
	out := make([]ast.Expr, 0, len(raw))
	for _, item := range raw {
		node, ok := item.(object)
		if !ok {
			return nil, fmt.Errorf("astjson: malformed entry in %s", key)
		}
		e, err := decodeExpr(node)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// decodeExprListNilable keeps nil entries, e.g. kw_defaults where a
// null marks a keyword-only parameter without a default.
func decodeExprListNilable(o object, key string) ([]ast.Expr, error) {
	raw := listField(o, key)
	out := make([]ast.Expr, 0, len(raw))
	for _, item := range raw {
		if item == nil {
			out = append(out, nil)
			continue
		}
		node, ok := item.(object)
		if !ok {
			return nil, fmt.Errorf("astjson: malformed entry in %s", key)
		}
		e, err := decodeExpr(node)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func decodeExprOpt(o object, key string) (ast.Expr, error) {
	node := objField(o, key)
	if node == nil {
		return nil, nil
	}
	return decodeExpr(node)
}
