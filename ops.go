package stackcalc

import "math"

type operator struct {
	// prec is the precedence value. Lower is more binding. Negative values
	// mark sentinels which are never reduced.
	prec int8
	// apply computes the operator's result from its left and right operands.
	apply func(a, b float64) float64
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has a nil apply.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{2, add}
	case "-":
		return operator{2, sub}
	case "*":
		return operator{1, mul}
	case "/":
		return operator{1, div}
	case "^":
		// Same tier as * and /, which makes it left-associative: 2^3^2 is
		// (2^3)^2.
		return operator{1, math.Pow}
	default:
		return operator{}
	}
}

// openprec is the precedence of the ( sentinel.
var openprec = operator{prec: -1}

func add(a, b float64) float64 { return a + b }
func sub(a, b float64) float64 { return a - b }
func mul(a, b float64) float64 { return a * b }
func div(a, b float64) float64 { return a / b }

// precOf gets the operator for a token on the operator stack.
func precOf(tok lexToken) operator {
	if tok.kind == tokenOpen {
		return openprec
	}
	return binop(tok.text)
}

// canReduce reports whether the operator on top of ops must be applied before
// incoming is pushed. Operators in the same tier reduce each other, so all of
// them are left-associative.
func canReduce(incoming lexToken, ops []lexToken) bool {
	if len(ops) == 0 {
		return false
	}
	top := precOf(ops[len(ops)-1])
	if top.prec < 0 {
		return false
	}
	return precOf(incoming).prec >= top.prec
}

// reduce pops an operator and applies it to the top two operands, leaving the
// result on the operand stack.
func (m *machine) reduce() error {
	tok := m.ops[len(m.ops)-1]
	m.ops = m.ops[:len(m.ops)-1]
	op := binop(tok.text)
	if op.apply == nil {
		panic("stackcalc: reduce on non-operator " + tok.String())
	}
	if len(m.nums) < 2 {
		return &InvalidExpressionError{Col: tok.pos, Reason: reasonInvalid}
	}
	b := m.pop()
	a := m.top()
	*a = op.apply(*a, b)
	return nil
}
