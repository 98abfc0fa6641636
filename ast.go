package shunt

import (
	"strconv"
	"strings"
)

// Node is a node in the binary syntax tree of an expression. A leaf holds a
// literal token; an internal node holds an operator token and owns both
// children. The empty expression parses to a nil *Node.
type Node struct {
	Tok   Token
	Left  *Node
	Right *Node
}

// Leaf reports whether n is a literal leaf.
func (n *Node) Leaf() bool {
	return n != nil && n.Tok.Kind != TokenOp
}

// ToAST converts an infix expression into its syntax tree. An empty
// expression, or one that is all whitespace, yields a nil tree and no error.
// All other failures are those of ToRPN.
func ToAST(expr string) (*Node, error) {
	seq, err := ToRPN(expr)
	if err != nil {
		return nil, err
	}
	return Build(seq)
}

// Build folds a reverse Polish sequence into a syntax tree. A literal pushes
// a leaf; an operator pops its right operand, then its left, and pushes the
// combined node. Sequences obtained from ToRPN on a well-formed expression
// always build, but Build guards malformed input with RPNError so that it is
// safe as a standalone entry point.
func Build(seq []Token) (*Node, error) {
	var stack []*Node
	for i, t := range seq {
		switch t.Kind {
		case TokenInt, TokenReal:
			stack = append(stack, &Node{Tok: t})
		case TokenOp:
			if len(stack) < 2 {
				return nil, &RPNError{Idx: i, Msg: "operator " + t.String() + " wants two operands, have " + strconv.Itoa(len(stack))}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, &Node{Tok: t, Left: left, Right: right})
		default:
			return nil, &RPNError{Idx: i, Msg: "invalid token kind " + t.Kind.String()}
		}
	}
	switch len(stack) {
	case 0:
		return nil, nil
	case 1:
		return stack[0], nil
	default:
		return nil, &RPNError{Idx: len(seq), Msg: strconv.Itoa(len(stack)) + " operands left over"}
	}
}

// String renders the tree as fully parenthesized infix notation. The nil
// tree renders as empty brackets.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	switch {
	case n == nil:
		b.WriteString("()")
	case n.Tok.Kind != TokenOp:
		b.WriteString(n.Tok.String())
	default:
		b.WriteByte('(')
		n.Left.fmt(b)
		b.WriteByte(' ')
		b.WriteByte(n.Tok.Op)
		b.WriteByte(' ')
		n.Right.fmt(b)
		b.WriteByte(')')
	}
}
