package shunt

import (
	"strconv"
	"strings"
)

// TokenKind distinguishes the payload of a Token.
type TokenKind int8

const (
	// TokenNone is the kind of the zero Token. It never appears in ToRPN
	// output.
	TokenNone TokenKind = iota
	// TokenInt is an integer literal.
	TokenInt
	// TokenReal is a decimal literal.
	TokenReal
	// TokenOp is a binary operator.
	TokenOp
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenInt:
		return "Int"
	case TokenReal:
		return "Real"
	case TokenOp:
		return "Op"
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Token is one element of a reverse Polish sequence: an integer literal, a
// decimal literal, or an operator. Integer and decimal literals are distinct
// kinds; a literal is decimal exactly when it is written with a decimal
// point.
type Token struct {
	Kind TokenKind
	// Op is the operator symbol when Kind is TokenOp.
	Op byte
	// Int is the literal value when Kind is TokenInt.
	Int int64
	// Real is the literal value when Kind is TokenReal.
	Real float64
}

// Int returns an integer literal token.
func Int(n int64) Token {
	return Token{Kind: TokenInt, Int: n}
}

// Real returns a decimal literal token.
func Real(x float64) Token {
	return Token{Kind: TokenReal, Real: x}
}

// Op returns an operator token. sym is not checked against the operator
// table; ToRPN never produces an unknown operator, but Build accepts any.
func Op(sym byte) Token {
	return Token{Kind: TokenOp, Op: sym}
}

func (t Token) String() string {
	switch t.Kind {
	case TokenInt:
		return strconv.FormatInt(t.Int, 10)
	case TokenReal:
		return strconv.FormatFloat(t.Real, 'g', -1, 64)
	case TokenOp:
		return string(t.Op)
	}
	return "<none>"
}

// Tokens formats a token sequence the way reverse Polish is usually written,
// elements separated by single spaces.
func Tokens(seq []Token) string {
	var b strings.Builder
	for i, t := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// literal parses the contents of the reducer's digit buffer into a number
// token. text may carry a leading sign. A malformed literal, like "1.2.3" or
// a bare sign, is a NumberError; it is never coerced to zero.
func literal(text string, col int) (Token, error) {
	if strings.IndexByte(text, '.') >= 0 {
		x, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, &NumberError{Col: col, Text: text, Err: err}
		}
		return Real(x), nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, &NumberError{Col: col, Text: text, Err: err}
	}
	return Int(n), nil
}
