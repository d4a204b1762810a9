package calc

import "strconv"

// NumberError indicates a malformed numeric literal, such as a run with
// two decimal points or with no digits at all. It implements InputError.
type NumberError struct {
	// Col is the position of the start of the literal.
	Col int
	// Text is the literal as scanned.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// OverflowError indicates a numeric literal outside the range of finite
// float64 values. It implements InputError.
type OverflowError struct {
	// Col is the position of the start of the literal.
	Col int
	// Text is the literal as scanned.
	Text string
}

func (err *OverflowError) Error() string {
	return errpos(err.Col, "number "+strconv.Quote(err.Text)+" is too large")
}

func (err *OverflowError) Pos() int {
	return err.Col
}

// CharError indicates a character outside the supported token set. It
// implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the character that was not understood.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// ParenError indicates an unbalanced parenthesis. It implements
// InputError.
type ParenError struct {
	// Col is the position of the parenthesis that found no match.
	Col int
}

func (err *ParenError) Error() string {
	return errpos(err.Col, "mismatched parentheses")
}

func (err *ParenError) Pos() int {
	return err.Col
}

// ExprError indicates an operand and operator count mismatch, such as a
// binary operator with a single operand. It implements InputError.
type ExprError struct {
	// Col is the position of the token at which the mismatch surfaced.
	Col int
}

func (err *ExprError) Error() string {
	return errpos(err.Col, "invalid expression")
}

func (err *ExprError) Pos() int {
	return err.Col
}

// DivZeroError indicates a division whose right operand is exactly zero.
// It implements InputError.
type DivZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivZeroError) Pos() int {
	return err.Col
}

// NotFiniteError indicates that an intermediate or final result is NaN or
// infinite. It implements InputError.
type NotFiniteError struct {
	// Col is the position of the operator that produced the value.
	Col int
	// Op is the operator that produced the value.
	Op string
}

func (err *NotFiniteError) Error() string {
	return errpos(err.Col, "result of "+err.Op+" is not finite")
}

func (err *NotFiniteError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune position of the token that caused the
	// error, counted over the whitespace-stripped input.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OverflowError)(nil)
	_ InputError = (*CharError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*ExprError)(nil)
	_ InputError = (*DivZeroError)(nil)
	_ InputError = (*NotFiniteError)(nil)
)
