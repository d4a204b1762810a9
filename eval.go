package calc

import "math"

// evalPostfix computes the value of a postfix token sequence with an
// operand stack. The sequence may be empty, e.g. for the input "()"; that
// is an operand count mismatch like any other.
func evalPostfix(toks []token) (float64, error) {
	stack := make([]float64, 0, len(toks))
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			stack = append(stack, tok.val)
			continue
		case tokenOp: // handled below
		default:
			panic("calc: " + tok.String() + " in postfix sequence")
		}
		var val float64
		switch tok.op {
		case opPos, opNeg:
			if len(stack) < 1 {
				return 0, &ExprError{Col: tok.pos}
			}
			val = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if tok.op == opNeg {
				val = -val
			}
		case opAdd, opSub, opMul, opDiv:
			if len(stack) < 2 {
				return 0, &ExprError{Col: tok.pos}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			switch tok.op {
			case opAdd:
				val = a + b
			case opSub:
				val = a - b
			case opMul:
				val = a * b
			case opDiv:
				if b == 0 {
					return 0, &DivZeroError{Col: tok.pos}
				}
				val = a / b
			}
		default:
			panic("calc: invalid operator " + tok.op.String())
		}
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return 0, &NotFiniteError{Col: tok.pos, Op: tok.op.String()}
		}
		stack = append(stack, val)
	}
	if len(stack) != 1 {
		// Too many operands for the operators present, e.g. "(1)(2)",
		// or none at all, e.g. "()".
		col := 1
		if len(toks) > 0 {
			col = toks[len(toks)-1].pos
		}
		return 0, &ExprError{Col: col}
	}
	return stack[0], nil
}

// Evaluate computes the value of an arithmetic expression. Blank input
// evaluates to 0 with no error. Any other failure is one of the error
// types in this package, all of which implement InputError.
//
// Evaluate is a pure function: it keeps no state between calls and is safe
// to call from any number of goroutines.
func Evaluate(src string) (float64, error) {
	toks, err := tokenize(stripSpace(src))
	if err != nil {
		return 0, err
	}
	if len(toks) == 0 {
		return 0, nil
	}
	rpn, err := postfix(toks)
	if err != nil {
		return 0, err
	}
	return evalPostfix(rpn)
}
