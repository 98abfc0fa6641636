package shunt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// normalize strips all whitespace from an expression. Column positions in
// errors refer to the normalized string.
func normalize(expr string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expr)
}

// reducer is the running state of the infix-to-RPN fold.
type reducer struct {
	// num collects the characters of the literal currently being assembled,
	// possibly starting with a sign.
	num []byte
	// numCol is the column of the first character in num.
	numCol int
	// ops is the stack of pending operator symbols. An open bracket on the
	// stack is a floor that precedence flushing never crosses.
	ops []byte
	// out is the reverse Polish sequence built so far.
	out []Token
	// operand indicates that the next character may legally begin an
	// operand, so that a + or - is a sign rather than a binary operator.
	// True at the start of the input, after an open bracket, and after any
	// binary operator.
	operand bool
}

// ToRPN converts an infix expression into a reverse Polish token sequence.
// Whitespace is insignificant and an empty expression yields an empty
// sequence. Any character outside the recognized classes aborts the whole
// conversion with a CharError; a literal that does not parse aborts with a
// NumberError.
func ToRPN(expr string) ([]Token, error) {
	src := normalize(expr)
	r := reducer{operand: true}
	col := 0
	for i, c := range src {
		col++
		if err := r.step(c, col, src[i+utf8.RuneLen(c):]); err != nil {
			return nil, err
		}
	}
	return r.finish()
}

// step applies the transition rule selected by c's character class. The
// rules are ordered: a digit extends the current literal; brackets group; a
// sign in operand position starts a literal; everything else must be a known
// binary operator.
func (r *reducer) step(c rune, col int, rest string) error {
	switch {
	case '0' <= c && c <= '9', c == '.':
		if len(r.num) == 0 {
			r.numCol = col
		}
		r.num = append(r.num, byte(c))
		r.operand = false
	case c == '(' && len(r.num) == 0:
		// An open bracket directly after a literal, as in "2(3)", is not
		// implicit multiplication; it falls through to the operator rule
		// below and is rejected there.
		r.ops = append(r.ops, '(')
		r.operand = true
	case c == ')':
		if err := r.flushNum(); err != nil {
			return err
		}
		for len(r.ops) > 0 {
			top := r.ops[len(r.ops)-1]
			r.ops = r.ops[:len(r.ops)-1]
			if top == '(' {
				break
			}
			r.out = append(r.out, Op(top))
		}
		// operand carries over: closing a group completes an operand.
	case (c == '+' || c == '-') && len(r.num) == 0 && r.operand:
		// Unary sign. It becomes the first character of the upcoming
		// literal rather than an operator.
		r.num = append(r.num, byte(c))
		r.numCol = col
		r.operand = false
	default:
		if c > unicode.MaxASCII {
			return &CharError{Col: col, Char: c, Rest: rest}
		}
		in, ok := opTable(byte(c))
		if !ok {
			return &CharError{Col: col, Char: c, Rest: rest}
		}
		if err := r.flushNum(); err != nil {
			return err
		}
		for len(r.ops) > 0 {
			top := r.ops[len(r.ops)-1]
			if top == '(' {
				break
			}
			ti, _ := opTable(top)
			if !ti.flushes(in) {
				break
			}
			r.out = append(r.out, Op(top))
			r.ops = r.ops[:len(r.ops)-1]
		}
		r.ops = append(r.ops, byte(c))
		r.operand = true
	}
	return nil
}

// flushNum finalizes the literal being assembled, if any, and moves it to
// the output.
func (r *reducer) flushNum() error {
	if len(r.num) == 0 {
		return nil
	}
	tok, err := literal(string(r.num), r.numCol)
	if err != nil {
		return err
	}
	r.out = append(r.out, tok)
	r.num = r.num[:0]
	return nil
}

// finish flushes the pending literal and drains the operator stack. Open
// brackets still on the stack have no matching close; they are dropped
// rather than emitted so that the output stays a pure operand/operator
// sequence.
func (r *reducer) finish() ([]Token, error) {
	if err := r.flushNum(); err != nil {
		return nil, err
	}
	for i := len(r.ops) - 1; i >= 0; i-- {
		if r.ops[i] == '(' {
			continue
		}
		r.out = append(r.out, Op(r.ops[i]))
	}
	return r.out, nil
}

// opInfo is an operator's precedence and associativity. Higher prec binds
// tighter; ^ is the only right-associative operator.
type opInfo struct {
	prec  int8
	right bool
}

// flushes reports whether a pending operator top must move to the output
// before in is pushed: top binds strictly tighter, or the two bind equally
// and in is left-associative. Equal precedence with a right-associative
// incoming operator does not flush, which is what makes 1^2^3 fold to
// 1 2 3 ^ ^.
func (top opInfo) flushes(in opInfo) bool {
	if top.prec != in.prec {
		return top.prec > in.prec
	}
	return !in.right
}

// opTable returns the precedence entry for an operator symbol. The second
// result is false for anything that is not a known binary operator.
func opTable(sym byte) (opInfo, bool) {
	switch sym {
	case ',':
		return opInfo{0, false}, true
	case '+', '-':
		return opInfo{1, false}, true
	case '*', '/':
		return opInfo{2, false}, true
	case '^':
		return opInfo{2, true}, true
	case 'd', '%':
		return opInfo{3, false}, true
	}
	return opInfo{}, false
}
