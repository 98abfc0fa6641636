package shunt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAST(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"leaf", "1", "1"},
		{"realleaf", "2.5", "2.5"},
		{"negleaf", "-7", "-7"},
		{"add", "1+2", "(1 + 2)"},
		{"groups", "(1+2)*(3+4)", "((1 + 2) * (3 + 4))"},
		{"rightassoc", "1^2^3", "(1 ^ (2 ^ 3))"},
		{"leftassoc", "1-2-3", "((1 - 2) - 3)"},
		{"precedence", "1+2*3", "(1 + (2 * 3))"},
		{"dice", "3d6+2", "((3 d 6) + 2)"},
		{"modchain", "2d8%4/1.5", "(((2 d 8) % 4) / 1.5)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := ToAST(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, n.String())
		})
	}
}

func TestToASTEmpty(t *testing.T) {
	for _, src := range []string{"", "   ", "()"} {
		n, err := ToAST(src)
		require.NoError(t, err)
		assert.Nil(t, n)
	}
}

func TestToASTShape(t *testing.T) {
	n, err := ToAST("(1+2)*(3+4)")
	require.NoError(t, err)
	require.False(t, n.Leaf())
	assert.Equal(t, Op('*'), n.Tok)

	left, right := n.Left, n.Right
	require.NotNil(t, left)
	require.NotNil(t, right)
	assert.Equal(t, Op('+'), left.Tok)
	assert.Equal(t, Op('+'), right.Tok)
	assert.True(t, left.Left.Leaf())
	assert.Equal(t, Int(1), left.Left.Tok)
	assert.Equal(t, Int(2), left.Right.Tok)
	assert.Equal(t, Int(3), right.Left.Tok)
	assert.Equal(t, Int(4), right.Right.Tok)
}

func TestToASTLeafKinds(t *testing.T) {
	n, err := ToAST("1d4.5")
	require.NoError(t, err)
	assert.Equal(t, TokenInt, n.Left.Tok.Kind)
	assert.Equal(t, TokenReal, n.Right.Tok.Kind)
}

func TestBuildMalformed(t *testing.T) {
	cases := []struct {
		name string
		seq  []Token
		idx  int
	}{
		{"bareop", []Token{Op('+')}, 0},
		{"oneoperand", []Token{Int(1), Op('+')}, 1},
		{"leftover", []Token{Int(1), Int(2)}, 2},
		{"zerotoken", []Token{Int(1), {}, Op('+')}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := Build(c.seq)
			assert.Nil(t, n)
			var rerr *RPNError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, c.idx, rerr.Pos())
		})
	}
}

// An incomplete expression scans fine but leaves an operator without its
// second operand, which the builder reports.
func TestToASTIncomplete(t *testing.T) {
	n, err := ToAST("1+")
	assert.Nil(t, n)
	var rerr *RPNError
	require.ErrorAs(t, err, &rerr)
}

func TestBuildEmpty(t *testing.T) {
	n, err := Build(nil)
	require.NoError(t, err)
	assert.Nil(t, n)
	assert.Equal(t, "()", n.String())
	assert.False(t, n.Leaf())
}
