package stackcalc

import (
	"errors"
	"io"
	"strconv"
)

// machine holds the stacks for a single evaluation. It is never shared.
type machine struct {
	nums []float64
	ops  []lexToken
}

// push adds a value to the operand stack.
func (m *machine) push(x float64) {
	m.nums = append(m.nums, x)
}

// pop removes the top operand and returns it.
func (m *machine) pop() float64 {
	r := m.nums[len(m.nums)-1]
	m.nums = m.nums[:len(m.nums)-1]
	return r
}

// top is a shortcut to get the top operand in place.
func (m *machine) top() *float64 {
	return &m.nums[len(m.nums)-1]
}

// close handles a ) by reducing everything back to the matching (, which is
// then discarded.
func (m *machine) close(tok lexToken) error {
	for len(m.ops) > 0 && m.ops[len(m.ops)-1].kind != tokenOpen {
		if err := m.reduce(); err != nil {
			return err
		}
	}
	if len(m.ops) == 0 {
		return &InvalidExpressionError{Col: tok.pos, Reason: reasonNeedsOpen}
	}
	m.ops = m.ops[:len(m.ops)-1]
	return nil
}

// Evaluate computes the value of an arithmetic expression. If the expression
// is malformed, the error is an *InvalidExpressionError. Arithmetic itself
// never fails: division by zero and the like produce infinities or NaN.
//
// Evaluate keeps no state between calls and is safe to call concurrently.
func Evaluate(expr string) (float64, error) {
	src := normalize(expr)
	m := machine{
		nums: make([]float64, 0, 8),
		ops:  make([]lexToken, 0, 8),
	}
	for i := 0; i < len(src.text); {
		tok, n, err := next(src, i)
		if err != nil {
			return 0, err
		}
		switch tok.kind {
		case tokenNum:
			m.push(num(tok.text))
		case tokenOp, tokenOpen:
			for canReduce(tok, m.ops) {
				if err := m.reduce(); err != nil {
					return 0, err
				}
			}
			m.ops = append(m.ops, tok)
		case tokenClose:
			if err := m.close(tok); err != nil {
				return 0, err
			}
		default:
			panic("stackcalc: unknown token: " + tok.String())
		}
		i = n
	}
	if len(m.nums) != 1 || len(m.ops) != 0 {
		return 0, &InvalidExpressionError{Reason: reasonInvalid}
	}
	return m.nums[0], nil
}

// num parses a literal scanned by the lexer.
func num(s string) float64 {
	r, err := strconv.ParseFloat(s, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// Too many digits for a float64. ParseFloat already gives the
		// IEEE result, which is what we want.
	default:
		panic("stackcalc: invalid number: " + s + " (" + err.Error() + ")")
	}
	return r
}

// MustEvaluate is like Evaluate but panics if the expression is malformed.
// It is meant for expressions that are constant in the program source.
func MustEvaluate(expr string) float64 {
	r, err := Evaluate(expr)
	if err != nil {
		panic("stackcalc: MustEvaluate(" + strconv.Quote(expr) + "): " + err.Error())
	}
	return r
}

// EvalReader is a shortcut to read all of src and evaluate it as a single
// expression. Errors from reading are returned as they are.
func EvalReader(src io.Reader) (float64, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return 0, err
	}
	return Evaluate(string(b))
}
