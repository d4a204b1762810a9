// Package calc implements the arithmetic core of a calculator.
//
// Expressions support decimal numbers, the four basic operators, unary
// sign, and parentheses. Evaluation never executes code: the input is
// tokenized, reordered into reverse Polish notation with the shunting-yard
// algorithm, and folded with an operand stack. Every failure is reported
// as a typed error carrying the position of the offending token.
package calc
