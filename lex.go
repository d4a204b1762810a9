package calc

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// stripSpace removes every whitespace rune from an expression. Whitespace
// carries no meaning in calculator input, so "1 2" is the number 12.
func stripSpace(src string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, src)
}

// tokenize scans a whitespace-stripped expression into tokens. An empty
// input yields no tokens and no error; callers decide what that means.
// Whether + and - are unary or binary is not decided here.
func tokenize(src string) ([]token, error) {
	var toks []token
	r := []rune(src)
	pos := 1
	for i := 0; i < len(r); {
		switch c := r[i]; {
		case '0' <= c && c <= '9', c == '.':
			start := i
			for i < len(r) && ('0' <= r[i] && r[i] <= '9' || r[i] == '.') {
				i++
			}
			val, err := scanNum(string(r[start:i]), pos)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokenNum, val: val, pos: pos})
			pos += i - start
		case c == '(':
			toks = append(toks, token{kind: tokenOpen, pos: pos})
			i++
			pos++
		case c == ')':
			toks = append(toks, token{kind: tokenClose, pos: pos})
			i++
			pos++
		default:
			op := opfor(c)
			if op == opNone {
				return nil, &CharError{Col: pos, Char: c}
			}
			toks = append(toks, token{kind: tokenOp, op: op, pos: pos})
			i++
			pos++
		}
	}
	return toks, nil
}

// scanNum validates and parses a run of digits and decimal points. The run
// must contain at most one point and at least one digit.
func scanNum(text string, pos int) (float64, error) {
	var dig, dot bool
	for _, r := range text {
		if r == '.' {
			if dot {
				return 0, &NumberError{Col: pos, Text: text}
			}
			dot = true
			continue
		}
		dig = true
	}
	if !dig {
		return 0, &NumberError{Col: pos, Text: text}
	}
	// The grammar check above guarantees ParseFloat accepts the run; the
	// only remaining failure is a value outside the float64 range.
	val, _ := strconv.ParseFloat(text, 64)
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, &OverflowError{Col: pos, Text: text}
	}
	return val, nil
}
