package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokKind enumerates the tokens of the type-expression sublanguage.
type tokKind uint8

const (
	tokEOF tokKind = iota
	tokIdent
	tokInt
	tokFloat
	tokImag
	tokStr
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
	tokDot
	tokColon
	tokStar
	tokStarStar
	tokArrow
	tokEq
	tokEllipsis
)

type token struct {
	Kind tokKind
	Text string
	// Col is the 0-based byte offset of the token in the fragment.
	Col int
}

// lexer scans a standalone type-expression fragment. The surrounding
// file position is supplied by the caller; the lexer only tracks byte
// offsets within the fragment.
type lexer struct {
	src []byte
	off int
}

func newLexer(src string) *lexer {
	return &lexer{src: []byte(src)}
}

func (l *lexer) errorf(off int, msg string) error {
	return &SyntaxError{Msg: msg, Offset: off}
}

func (l *lexer) next() (token, error) {
	for l.off < len(l.src) {
		c := l.src[l.off]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			l.off++
			continue
		}
		break
	}
	start := l.off
	if l.off >= len(l.src) {
		return token{Kind: tokEOF, Col: start}, nil
	}

	c := l.src[l.off]
	switch {
	case c == '(':
		l.off++
		return token{Kind: tokLParen, Text: "(", Col: start}, nil
	case c == ')':
		l.off++
		return token{Kind: tokRParen, Text: ")", Col: start}, nil
	case c == '[':
		l.off++
		return token{Kind: tokLBracket, Text: "[", Col: start}, nil
	case c == ']':
		l.off++
		return token{Kind: tokRBracket, Text: "]", Col: start}, nil
	case c == ',':
		l.off++
		return token{Kind: tokComma, Text: ",", Col: start}, nil
	case c == ':':
		l.off++
		return token{Kind: tokColon, Text: ":", Col: start}, nil
	case c == '=':
		l.off++
		return token{Kind: tokEq, Text: "=", Col: start}, nil
	case c == '*':
		l.off++
		if l.off < len(l.src) && l.src[l.off] == '*' {
			l.off++
			return token{Kind: tokStarStar, Text: "**", Col: start}, nil
		}
		return token{Kind: tokStar, Text: "*", Col: start}, nil
	case c == '-':
		if l.off+1 < len(l.src) && l.src[l.off+1] == '>' {
			l.off += 2
			return token{Kind: tokArrow, Text: "->", Col: start}, nil
		}
		return token{}, l.errorf(start, "invalid syntax")
	case c == '.':
		if strings.HasPrefix(string(l.src[l.off:]), "...") {
			l.off += 3
			return token{Kind: tokEllipsis, Text: "...", Col: start}, nil
		}
		l.off++
		return token{Kind: tokDot, Text: ".", Col: start}, nil
	case c == '\'' || c == '"':
		return l.scanString()
	case c >= '0' && c <= '9':
		return l.scanNumber()
	}

	r, size := utf8.DecodeRune(l.src[l.off:])
	if r == '_' || unicode.IsLetter(r) {
		return l.scanIdent()
	}
	_ = size
	return token{}, l.errorf(start, "invalid syntax")
}

func (l *lexer) scanIdent() (token, error) {
	start := l.off
	for l.off < len(l.src) {
		r, size := utf8.DecodeRune(l.src[l.off:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.off += size
	}
	return token{Kind: tokIdent, Text: string(l.src[start:l.off]), Col: start}, nil
}

func (l *lexer) scanNumber() (token, error) {
	start := l.off
	isFloat := false
	// After a radix prefix the letters a-f are digits, never an
	// exponent or a float marker.
	radixPrefix := false
	if l.src[l.off] == '0' && l.off+1 < len(l.src) {
		switch l.src[l.off+1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			radixPrefix = true
			l.off += 2
		}
	}
	for l.off < len(l.src) {
		c := l.src[l.off]
		switch {
		case c >= '0' && c <= '9' || c == '_':
			l.off++
		case radixPrefix && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
			l.off++
		case radixPrefix:
			goto done
		case c == '.':
			// A second dot ends the number (slice syntax never follows
			// a float in practice, but stay permissive).
			if isFloat {
				goto done
			}
			isFloat = true
			l.off++
		case c == 'e' || c == 'E':
			isFloat = true
			l.off++
			if l.off < len(l.src) && (l.src[l.off] == '+' || l.src[l.off] == '-') {
				l.off++
			}
		case c == 'j' || c == 'J':
			l.off++
			return token{Kind: tokImag, Text: string(l.src[start:l.off]), Col: start}, nil
		default:
			goto done
		}
	}
done:
	kind := tokInt
	if isFloat {
		kind = tokFloat
	}
	return token{Kind: kind, Text: string(l.src[start:l.off]), Col: start}, nil
}

func (l *lexer) scanString() (token, error) {
	start := l.off
	quote := l.src[l.off]
	l.off++
	var sb strings.Builder
	for l.off < len(l.src) {
		c := l.src[l.off]
		if c == quote {
			l.off++
			return token{Kind: tokStr, Text: sb.String(), Col: start}, nil
		}
		if c == '\\' && l.off+1 < len(l.src) {
			l.off++
			esc := l.src[l.off]
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\\', '\'', '"':
				sb.WriteByte(esc)
			default:
				sb.WriteByte('\\')
				sb.WriteByte(esc)
			}
			l.off++
			continue
		}
		sb.WriteByte(c)
		l.off++
	}
	return token{}, l.errorf(start, "unterminated string literal")
}
