package stackcalc

import "strconv"

// Reasons given by InvalidExpressionError, other than unexpected characters.
const (
	reasonInvalid   = "invalid expression"
	reasonNeedsOpen = "expected '('"
)

// InvalidExpressionError is the error for any malformed expression. It
// implements InputError.
type InvalidExpressionError struct {
	// Col is the 1-based rune column in the input of the token that caused
	// the error, or 0 if the error concerns the expression as a whole.
	Col int
	// Reason describes the problem, e.g. "unexpected character '@'".
	Reason string
}

func (err *InvalidExpressionError) Error() string {
	if err.Col <= 0 {
		return err.Reason
	}
	return errpos(err.Col, err.Reason)
}

func (err *InvalidExpressionError) Pos() int {
	return err.Col
}

// unexpected creates the error for a rune the scanner does not recognize.
func unexpected(col int, r rune) error {
	return &InvalidExpressionError{Col: col, Reason: "unexpected character " + quoteChar(r)}
}

// quoteChar wraps a rune in single quotes without Go escaping, so that the
// message shows exactly what the user typed.
func quoteChar(r rune) string {
	if strconv.IsPrint(r) {
		return "'" + string(r) + "'"
	}
	return strconv.QuoteRune(r)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error. Pos is 0 when
	// no single token is to blame.
	Pos() int
}

var _ InputError = (*InvalidExpressionError)(nil)
