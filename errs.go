package shunt

import "strconv"

// CharError indicates a character that does not belong to any recognized
// class: not a digit or decimal point, not a bracket, and not a known
// operator. It implements InputError.
type CharError struct {
	// Col is the 1-based column of the character in the normalized input.
	Col int
	// Char is the offending character.
	Char rune
	// Rest is the unscanned input following Char.
	Rest string
}

func (err *CharError) Error() string {
	msg := "invalid character " + strconv.QuoteRune(err.Char)
	if err.Rest != "" {
		msg += " before " + strconv.Quote(err.Rest)
	}
	return errpos(err.Col, msg)
}

func (err *CharError) Pos() int {
	return err.Col
}

// NumberError indicates a numeric literal that does not parse, such as one
// with two decimal points or a bare sign with no digits following. It
// implements InputError.
type NumberError struct {
	// Col is the 1-based column of the first character of the literal.
	Col int
	// Text is the literal as collected.
	Text string
	// Err is the underlying parse error.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

func (err *NumberError) Pos() int {
	return err.Col
}

// RPNError indicates a malformed reverse Polish sequence given to Build: an
// operator reached with fewer than two operands on the stack, or operands
// left over once the sequence is exhausted. It implements InputError, with
// the position counted in tokens rather than columns.
type RPNError struct {
	// Idx is the index of the token at which the sequence proved malformed,
	// or the sequence length for errors detected at the end.
	Idx int
	// Msg describes the problem.
	Msg string
}

func (err *RPNError) Error() string {
	return errpos(err.Idx, err.Msg)
}

func (err *RPNError) Pos() int {
	return err.Idx
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error: for CharError and NumberError,
	// the number of runes up to and including the start of the offending
	// text; for RPNError, a token index.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*RPNError)(nil)
)
