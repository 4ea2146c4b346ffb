package stackcalc

import (
	"strconv"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	// pos is the 1-based rune column of the token in the original input.
	pos int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a decimal literal.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the characters which are binary operators.
const Operators = "+-*/^"

// next scans the token starting at byte i of the normalized text. It returns
// the token and the offset just past it, which is always greater than i when
// the error is nil.
func next(src normalized, i int) (lexToken, int, error) {
	s := src.text
	tok := lexToken{pos: src.col(i)}
	c := s[i]
	switch {
	case '0' <= c && c <= '9':
		end := scanNum(s, i)
		tok.text = s[i:end]
		tok.kind = tokenNum
		return tok, end, nil
	case c == '(':
		tok.text = "("
		tok.kind = tokenOpen
		return tok, i + 1, nil
	case c == ')':
		tok.text = ")"
		tok.kind = tokenClose
		return tok, i + 1, nil
	}
	for k := 0; k < len(Operators); k++ {
		if c == Operators[k] {
			tok.text = Operators[k : k+1]
			tok.kind = tokenOp
			return tok, i + 1, nil
		}
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return lexToken{}, i, unexpected(tok.pos, r)
}

// scanNum returns the end of the literal starting at i, which must be a digit.
// A literal is a run of digits with at most one decimal point. A second point
// ends the literal rather than invalidating it; it is then scanned on its own
// as an unexpected character.
func scanNum(s string, i int) int {
	dot := false
	for i < len(s) {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
		case c == '.' && !dot:
			dot = true
		default:
			return i
		}
		i++
	}
	return i
}
