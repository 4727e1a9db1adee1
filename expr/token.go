package expr

import (
	"fmt"

	"github.com/govalues/bignum"
)

// Kind identifies the type of a token.
type Kind int

const (
	Number Kind = iota
	Operator
	LParen
	RParen
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Operator:
		return "operator"
	case LParen:
		return "("
	case RParen:
		return ")"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single element of a formula.
type Token struct {
	Kind Kind
	Num  bignum.Int // set for Number
	Op   byte       // set for Operator
	Pos  int        // byte offset in the input
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return t.Num.String()
	case Operator:
		return string(t.Op)
	}
	return t.Kind.String()
}

func isOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '^':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Tokenize splits a formula into tokens.
// A '-' at the start of the formula, after '(' or after another operator
// is the sign of the number that follows it.
func Tokenize(s string) ([]Token, error) {
	var (
		tokens []Token
		pos    int
		width  int
	)

	width = len(s)

	// prefix reports whether the next token starts an operand.
	prefix := func() bool {
		if len(tokens) == 0 {
			return true
		}
		k := tokens[len(tokens)-1].Kind
		return k == Operator || k == LParen
	}

	for pos < width {
		c := s[pos]
		switch {
		case isSpace(c):
			pos++
		case isDigit(c), c == '-' && prefix() && pos+1 < width && isDigit(s[pos+1]):
			start := pos
			pos++
			for pos < width && isDigit(s[pos]) {
				pos++
			}
			n, err := bignum.Parse(s[start:pos])
			if err != nil {
				return nil, fmt.Errorf("position %d: %w", start, err)
			}
			tokens = append(tokens, Token{Kind: Number, Num: n, Pos: start})
		case isOperator(c):
			tokens = append(tokens, Token{Kind: Operator, Op: c, Pos: pos})
			pos++
		case c == '(':
			tokens = append(tokens, Token{Kind: LParen, Pos: pos})
			pos++
		case c == ')':
			tokens = append(tokens, Token{Kind: RParen, Pos: pos})
			pos++
		default:
			return nil, fmt.Errorf("position %d: unexpected character %q: %w", pos, c, ErrSyntax)
		}
	}
	return tokens, nil
}
