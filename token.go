package calc

import "strconv"

// token is a single lexical element of an expression.
type token struct {
	kind tokenKind
	op   opKind  // operator symbol, valid when kind is tokenOp
	val  float64 // numeric value, valid when kind is tokenNum
	pos  int     // 1-based rune position in the input
}

func (t token) String() string {
	switch t.kind {
	case tokenNum:
		return strconv.FormatFloat(t.val, 'g', -1, 64) + "@" + strconv.Itoa(t.pos)
	case tokenOp:
		return t.op.String() + "@" + strconv.Itoa(t.pos)
	case tokenOpen:
		return "(@" + strconv.Itoa(t.pos)
	case tokenClose:
		return ")@" + strconv.Itoa(t.pos)
	}
	return "none@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal.
	tokenNum
	// tokenOp is a unary or binary operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

type opKind int8

const (
	opNone opKind = iota
	opAdd
	opSub
	opMul
	opDiv
	// opPos and opNeg are the unary forms of + and -. The tokenizer never
	// produces them; the converter rewrites opAdd and opSub when they
	// appear in unary position.
	opPos
	opNeg
)

func (op opKind) String() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opPos:
		return "u+"
	case opNeg:
		return "u-"
	}
	return "?"
}

// operator describes the binding behavior of an operator.
type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// binds reports whether a stacked operator takes the pending operands
// before the incoming operator in: it does when it is more binding, or
// equally binding and in is left-associative.
func (p operator) binds(in operator) bool {
	if p.prec != in.prec {
		return p.prec > in.prec
	}
	return !in.right
}

// opinfo gets the precedence and associativity for an operator kind.
func opinfo(op opKind) operator {
	switch op {
	case opAdd, opSub:
		return operator{1, false}
	case opMul, opDiv:
		return operator{5, false}
	case opPos, opNeg:
		return operator{10, true}
	}
	panic("calc: no precedence for operator " + op.String())
}

// unary gets the unary form of a binary operator kind, or opNone if the
// operator has no unary form.
func unary(op opKind) opKind {
	switch op {
	case opAdd:
		return opPos
	case opSub:
		return opNeg
	}
	return opNone
}

// opfor gets the binary operator kind for a rune, or opNone if the rune is
// not an operator.
func opfor(r rune) opKind {
	switch r {
	case '+':
		return opAdd
	case '-':
		return opSub
	case '*':
		return opMul
	case '/':
		return opDiv
	}
	return opNone
}
