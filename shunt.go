package calc

// postfix reorders an infix token sequence into reverse Polish order using
// the shunting-yard algorithm. Parentheses never appear in the output; an
// unbalanced parenthesis fails with a ParenError. The input is not
// modified.
func postfix(infix []token) ([]token, error) {
	out := make([]token, 0, len(infix))
	var ops []token
	for i, tok := range infix {
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenOpen:
			ops = append(ops, tok)
		case tokenClose:
			for {
				if len(ops) == 0 {
					return nil, &ParenError{Col: tok.pos}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		case tokenOp:
			if unaryContext(infix, i) {
				if u := unary(tok.op); u != opNone {
					tok.op = u
				}
			}
			in := opinfo(tok.op)
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != tokenOp || !opinfo(top.op).binds(in) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			panic("calc: unknown token " + tok.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokenOpen {
			return nil, &ParenError{Col: top.pos}
		}
		out = append(out, top)
	}
	return out, nil
}

// unaryContext reports whether the operator at index i appears where a
// term is expected: at the start of the input, after another operator, or
// after an open parenthesis.
func unaryContext(infix []token, i int) bool {
	if i == 0 {
		return true
	}
	prev := infix[i-1]
	return prev.kind == tokenOp || prev.kind == tokenOpen
}
