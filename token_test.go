package shunt

import "testing"

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Int(0), "0"},
		{Int(-3), "-3"},
		{Real(3.4), "3.4"},
		{Real(0.5), "0.5"},
		{Op('d'), "d"},
		{Op(','), ","},
		{Token{}, "<none>"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("formatting %#v: want %q, got %q", c.tok, c.want, got)
		}
	}
}

func TestTokenKindString(t *testing.T) {
	kinds := map[TokenKind]string{
		TokenNone:    "None",
		TokenInt:     "Int",
		TokenReal:    "Real",
		TokenOp:      "Op",
		TokenKind(9): "TokenKind(9)",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("formatting kind %d: want %q, got %q", int8(k), want, got)
		}
	}
}

func TestLiteralKinds(t *testing.T) {
	tok, err := literal("12", 1)
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != TokenInt || tok.Int != 12 {
		t.Errorf("want Int 12, got %v %v", tok.Kind, tok)
	}
	tok, err = literal("12.0", 1)
	if err != nil {
		t.Fatal(err)
	}
	// A decimal point makes a decimal, even for a whole value.
	if tok.Kind != TokenReal || tok.Real != 12 {
		t.Errorf("want Real 12, got %v %v", tok.Kind, tok)
	}
}
