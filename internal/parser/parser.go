// Package parser parses the textual type-expression sublanguage: the
// fragments that appear in trailing type comments. It covers the
// restricted expression grammar type expressions use (names, dotted
// attributes, subscripts, tuples, lists, strings, calls, ellipsis) plus
// the whole-signature form "(T1, T2) -> R". It is not a general parser
// for the surface language; full modules come from the upstream parser.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"pyfront/internal/ast"
)

// SyntaxError is a lexical or grammatical failure inside a fragment.
// Offset is the 0-based byte offset of the failure within the fragment.
type SyntaxError struct {
	Msg    string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (at offset %d)", e.Msg, e.Offset)
}

type parser struct {
	lex *lexer
	tok token
	err error
}

func newParser(src string) (*parser, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(kind tokKind, what string) error {
	if p.tok.Kind != kind {
		return &SyntaxError{Msg: "expected " + what, Offset: p.tok.Col}
	}
	return p.advance()
}

func (p *parser) at(col int) ast.NodePos {
	return ast.At(1, col)
}

// ParseTypeComment parses one standalone type expression, e.g.
// "List[int]" or "'Node'". The whole fragment must be consumed.
func ParseTypeComment(src string) (ast.Expr, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != tokEOF {
		return nil, &SyntaxError{Msg: "extra text after type expression", Offset: p.tok.Col}
	}
	return e, nil
}

// ParseFuncType parses a whole-signature type comment of the form
// "(T1, *T2, **T3) -> R".
func ParseFuncType(src string) (*ast.FuncType, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	start := p.tok.Col
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	var argTypes []ast.Expr
	for p.tok.Kind != tokRParen {
		arg, err := p.parseFuncTypeArg()
		if err != nil {
			return nil, err
		}
		argTypes = append(argTypes, arg)
		if p.tok.Kind == tokComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	if err := p.expect(tokArrow, "'->'"); err != nil {
		return nil, err
	}
	ret, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != tokEOF {
		return nil, &SyntaxError{Msg: "extra text after return type", Offset: p.tok.Col}
	}
	return &ast.FuncType{NodePos: p.at(start), ArgTypes: argTypes, Returns: ret}, nil
}

// parseFuncTypeArg handles the optional * / ** prefixes legal only in
// the argument list of a whole-signature comment.
func (p *parser) parseFuncTypeArg() (ast.Expr, error) {
	switch p.tok.Kind {
	case tokStar, tokStarStar:
		col := p.tok.Col
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.StarredExpr{NodePos: p.at(col), Value: inner, Ctx: ast.Load}, nil
	}
	return p.parseExpr()
}

// parseExpr parses an atom followed by any number of trailers.
func (p *parser) parseExpr() (ast.Expr, error) {
	e, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.Kind {
		case tokDot:
			col := p.tok.Col
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.tok.Kind != tokIdent {
				return nil, &SyntaxError{Msg: "expected attribute name after '.'", Offset: p.tok.Col}
			}
			attr := p.tok.Text
			if err := p.advance(); err != nil {
				return nil, err
			}
			e = &ast.AttributeExpr{NodePos: p.at(col), Value: e, Attr: attr, Ctx: ast.Load}
		case tokLBracket:
			col := p.tok.Col
			sl, err := p.parseSubscript()
			if err != nil {
				return nil, err
			}
			e = &ast.SubscriptExpr{NodePos: p.at(col), Value: e, Slice: sl, Ctx: ast.Load}
		case tokLParen:
			col := p.tok.Col
			args, keywords, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			e = &ast.CallExpr{NodePos: p.at(col), Func: e, Args: args, Keywords: keywords}
		default:
			return e, nil
		}
	}
}

func (p *parser) parseAtom() (ast.Expr, error) {
	col := p.tok.Col
	switch p.tok.Kind {
	case tokIdent:
		name := p.tok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch name {
		case "None", "True", "False":
			return &ast.NameConstExpr{NodePos: p.at(col), Value: name}, nil
		}
		return &ast.NameExpr{NodePos: p.at(col), ID: name, Ctx: ast.Load}, nil
	case tokInt:
		text := p.tok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, perr := strconv.ParseInt(normalizeIntText(text), 0, 64)
		lit := &ast.IntLit{NodePos: p.at(col), Value: v}
		if perr != nil {
			lit.Text = text
		}
		return lit, nil
	case tokFloat:
		text := p.tok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, perr := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
		if perr != nil {
			return nil, &SyntaxError{Msg: "invalid number literal", Offset: col}
		}
		return &ast.FloatLit{NodePos: p.at(col), Value: v}, nil
	case tokImag:
		text := strings.TrimRight(p.tok.Text, "jJ")
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, perr := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
		if perr != nil {
			return nil, &SyntaxError{Msg: "invalid number literal", Offset: col}
		}
		return &ast.ComplexLit{NodePos: p.at(col), Value: complex(0, v)}, nil
	case tokStr:
		text := p.tok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StrLit{NodePos: p.at(col), Value: text}, nil
	case tokEllipsis:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.EllipsisLit{NodePos: p.at(col)}, nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind == tokRParen {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.TupleExpr{NodePos: p.at(col), Ctx: ast.Load}, nil
		}
		elts, sawComma, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		if len(elts) == 1 && !sawComma {
			return elts[0], nil
		}
		return &ast.TupleExpr{NodePos: p.at(col), Elts: elts, Ctx: ast.Load}, nil
	case tokLBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var elts []ast.Expr
		if p.tok.Kind != tokRBracket {
			var err error
			elts, _, err = p.parseExprList()
			if err != nil {
				return nil, err
			}
		}
		if err := p.expect(tokRBracket, "']'"); err != nil {
			return nil, err
		}
		return &ast.ListExpr{NodePos: p.at(col), Elts: elts, Ctx: ast.Load}, nil
	}
	return nil, &SyntaxError{Msg: "invalid syntax", Offset: col}
}

// parseExprList parses "expr (',' expr)* [',']" and reports whether a
// comma was seen (a parenthesized single element with a trailing comma
// is a tuple).
func (p *parser) parseExprList() ([]ast.Expr, bool, error) {
	var elts []ast.Expr
	sawComma := false
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, false, err
		}
		elts = append(elts, e)
		if p.tok.Kind != tokComma {
			return elts, sawComma, nil
		}
		sawComma = true
		if err := p.advance(); err != nil {
			return nil, false, err
		}
		if p.tok.Kind == tokRParen || p.tok.Kind == tokRBracket {
			return elts, sawComma, nil
		}
	}
}

// parseSubscript parses "[...]" after a primary. Plain expressions
// become an index (tuple-valued when comma-separated); colon items
// become range slices; mixing produces an extended slice.
func (p *parser) parseSubscript() (ast.Slice, error) {
	open := p.tok.Col
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.Kind == tokRBracket {
		return nil, &SyntaxError{Msg: "empty subscript", Offset: p.tok.Col}
	}

	var items []ast.Slice
	plainOnly := true
	forceTuple := false
	for {
		item, isRange, err := p.parseSubscriptItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if isRange {
			plainOnly = false
		}
		if p.tok.Kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind == tokRBracket {
			// Trailing comma forces a tuple index.
			forceTuple = true
			break
		}
	}
	if err := p.expect(tokRBracket, "']'"); err != nil {
		return nil, err
	}

	if len(items) == 1 && !forceTuple {
		return items[0], nil
	}
	if len(items) == 1 && plainOnly {
		idx := items[0].(*ast.IndexSlice)
		return &ast.IndexSlice{
			NodePos: ast.At(1, open),
			Value:   &ast.TupleExpr{NodePos: idx.NodePos, Elts: []ast.Expr{idx.Value}, Ctx: ast.Load},
		}, nil
	}
	if plainOnly {
		elts := make([]ast.Expr, len(items))
		for i, it := range items {
			elts[i] = it.(*ast.IndexSlice).Value
		}
		return &ast.IndexSlice{
			NodePos: ast.At(1, open),
			Value:   &ast.TupleExpr{NodePos: ast.At(1, open), Elts: elts, Ctx: ast.Load},
		}, nil
	}
	return &ast.ExtSlice{NodePos: ast.At(1, open), Dims: items}, nil
}

func (p *parser) parseSubscriptItem() (ast.Slice, bool, error) {
	col := p.tok.Col
	var lower ast.Expr
	if p.tok.Kind != tokColon {
		var err error
		lower, err = p.parseExpr()
		if err != nil {
			return nil, false, err
		}
		if p.tok.Kind != tokColon {
			return &ast.IndexSlice{NodePos: p.at(col), Value: lower}, false, nil
		}
	}
	// Range slice: [lower] ':' [upper] [':' [step]]
	if err := p.advance(); err != nil {
		return nil, false, err
	}
	var upper, step ast.Expr
	if p.tok.Kind != tokColon && p.tok.Kind != tokComma && p.tok.Kind != tokRBracket {
		var err error
		upper, err = p.parseExpr()
		if err != nil {
			return nil, false, err
		}
	}
	if p.tok.Kind == tokColon {
		if err := p.advance(); err != nil {
			return nil, false, err
		}
		if p.tok.Kind != tokComma && p.tok.Kind != tokRBracket {
			var err error
			step, err = p.parseExpr()
			if err != nil {
				return nil, false, err
			}
		}
	}
	return &ast.RangeSlice{NodePos: p.at(col), Lower: lower, Upper: upper, Step: step}, true, nil
}

func (p *parser) parseCallArgs() ([]ast.Expr, []ast.Keyword, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, nil, err
	}
	var args []ast.Expr
	var keywords []ast.Keyword
	for p.tok.Kind != tokRParen {
		switch p.tok.Kind {
		case tokStar:
			col := p.tok.Col
			if err := p.advance(); err != nil {
				return nil, nil, err
			}
			inner, err := p.parseExpr()
			if err != nil {
				return nil, nil, err
			}
			args = append(args, &ast.StarredExpr{NodePos: p.at(col), Value: inner, Ctx: ast.Load})
		case tokStarStar:
			if err := p.advance(); err != nil {
				return nil, nil, err
			}
			inner, err := p.parseExpr()
			if err != nil {
				return nil, nil, err
			}
			keywords = append(keywords, ast.Keyword{Value: inner})
		case tokIdent:
			// Lookahead for "name=value" vs a plain expression.
			save := *p.lex
			saveTok := p.tok
			name := p.tok.Text
			if err := p.advance(); err != nil {
				return nil, nil, err
			}
			if p.tok.Kind == tokEq {
				if err := p.advance(); err != nil {
					return nil, nil, err
				}
				value, err := p.parseExpr()
				if err != nil {
					return nil, nil, err
				}
				keywords = append(keywords, ast.Keyword{Name: name, Value: value})
				break
			}
			*p.lex = save
			p.tok = saveTok
			e, err := p.parseExpr()
			if err != nil {
				return nil, nil, err
			}
			args = append(args, e)
		default:
			e, err := p.parseExpr()
			if err != nil {
				return nil, nil, err
			}
			args = append(args, e)
		}
		if p.tok.Kind == tokComma {
			if err := p.advance(); err != nil {
				return nil, nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, nil, err
	}
	return args, keywords, nil
}

func normalizeIntText(text string) string {
	return strings.ReplaceAll(text, "_", "")
}
