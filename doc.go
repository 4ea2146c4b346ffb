// Package stackcalc evaluates arithmetic expressions on float64.
//
// Expressions use the binary operators + - * / ^, parentheses, and decimal
// literals like 12 or 1.5. Whitespace anywhere is ignored. There are no
// variables, functions, or unary operators; "-1" is an error, "0-1" is not.
//
// Evaluation is a single pass with two stacks, one of operands and one of
// pending operators, reducing as soon as precedence allows. * / and ^ bind
// equally tightly, and every operator is left-associative, so "2^3^2" is 64.
// Results follow IEEE-754 double precision, so "5/0" is +Inf rather than an
// error.
package stackcalc
