package calc

import (
	"strconv"
	"strings"
	"testing"
)

// rpnString renders a token sequence the way you'd write reverse Polish
// notation on paper, e.g. "2 3 4 * +".
func rpnString(toks []token) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		switch tok.kind {
		case tokenNum:
			parts[i] = strconv.FormatFloat(tok.val, 'g', -1, 64)
		case tokenOp:
			parts[i] = tok.op.String()
		default:
			parts[i] = tok.String()
		}
	}
	return strings.Join(parts, " ")
}

func TestPostfix(t *testing.T) {
	cases := []struct {
		src string
		rpn string
		err error
	}{
		{"2", "2", nil},
		// precedence
		{"2+3*4", "2 3 4 * +", nil},
		{"2*3+4", "2 3 * 4 +", nil},
		{"(2+3)*4", "2 3 + 4 *", nil},
		{"2*(3+4)", "2 3 4 + *", nil},
		// associativity
		{"10-2-3", "10 2 - 3 -", nil},
		{"1+2+3", "1 2 + 3 +", nil},
		{"8/4/2", "8 4 / 2 /", nil},
		{"2*3/4", "2 3 * 4 /", nil},
		// unary sign
		{"-5", "5 u-", nil},
		{"+5", "5 u+", nil},
		{"--5", "5 u- u-", nil},
		{"-(3+4)", "3 4 + u-", nil},
		{"3*-2", "3 2 u- *", nil},
		{"1--2", "1 2 u- -", nil},
		{"-2*3", "2 u- 3 *", nil},
		// nesting
		{"((1))", "1", nil},
		{"(1+(2*3))-4", "1 2 3 * + 4 -", nil},
		// mismatched parentheses
		{"(1+2", "", &ParenError{Col: 1}},
		{"1+2)", "", &ParenError{Col: 4}},
		{")", "", &ParenError{Col: 1}},
		{"((1)", "", &ParenError{Col: 1}},
	}

	for _, c := range cases {
		toks, err := tokenize(stripSpace(c.src))
		if err != nil {
			t.Fatalf("converting %q: tokenize failed: %v", c.src, err)
		}
		got, err := postfix(toks)
		if c.err != nil {
			if pe, _ := err.(*ParenError); pe == nil || *pe != *c.err.(*ParenError) {
				t.Errorf("converting %q: want error %v, got %v", c.src, c.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("converting %q: unexpected error %v", c.src, err)
			continue
		}
		if r := rpnString(got); r != c.rpn {
			t.Errorf("converting %q: want %q, got %q", c.src, c.rpn, r)
		}
	}
}

func TestUnaryContext(t *testing.T) {
	// "-(-1*-2)": every - is unary, * is binary.
	toks, err := tokenize("-(-1*-2)")
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{true, false, true, false, false, true, false, false}
	if len(toks) != len(want) {
		t.Fatalf("want %d tokens, got %v", len(want), toks)
	}
	for i := range toks {
		if toks[i].kind != tokenOp {
			continue
		}
		if got := unaryContext(toks, i); got != want[i] {
			t.Errorf("token %d (%v): want unary=%v, got %v", i, toks[i], want[i], got)
		}
	}
}
