// Package expr evaluates integer formulas such as "(2+3)*4^2".
//
// Operators, from highest to lowest precedence:
//
//	^          power
//	*  /  %    product, truncated quotient, remainder
//	+  -       sum, difference
//
// All operators are left-associative, so 2^3^2 is (2^3)^2.
package expr

import (
	"errors"
	"fmt"

	"github.com/govalues/bignum"
)

// ErrSyntax is returned for formulas that cannot be evaluated because of
// their structure rather than their values.
var ErrSyntax = errors.New("syntax error")

// precedence returns the binding power of an operator.
func precedence(op byte) int {
	switch op {
	case '^':
		return 3
	case '*', '/', '%':
		return 2
	case '+', '-':
		return 1
	}
	return 0
}

// Apply calculates x op y.
func Apply(x, y bignum.Int, op byte) (bignum.Int, error) {
	switch op {
	case '+':
		return x.Add(y), nil
	case '-':
		return x.Sub(y), nil
	case '*':
		return x.Mul(y), nil
	case '/':
		return x.Quo(y)
	case '%':
		return x.Rem(y)
	case '^':
		return x.Pow(y)
	}
	return bignum.Int{}, fmt.Errorf("unknown operator %q: %w", op, ErrSyntax)
}

// evaluator holds the operand and operator stacks of a single evaluation.
type evaluator struct {
	values []bignum.Int
	ops    []byte
}

// reduce pops one operator and two operands and pushes the result.
func (e *evaluator) reduce() error {
	op := e.ops[len(e.ops)-1]
	e.ops = e.ops[:len(e.ops)-1]
	if len(e.values) < 2 {
		return fmt.Errorf("operator %q: missing operand: %w", op, ErrSyntax)
	}
	y := e.values[len(e.values)-1]
	x := e.values[len(e.values)-2]
	e.values = e.values[:len(e.values)-2]
	z, err := Apply(x, y, op)
	if err != nil {
		return err
	}
	e.values = append(e.values, z)
	return nil
}

// Eval evaluates a formula.
// Errors caused by the values, for example division by zero, are returned
// unchanged, so they can be tested with [errors.Is] against the bignum errors.
func Eval(s string) (bignum.Int, error) {
	tokens, err := Tokenize(s)
	if err != nil {
		return bignum.Int{}, err
	}
	return EvalTokens(tokens)
}

// EvalTokens evaluates a formula that has already been tokenized.
func EvalTokens(tokens []Token) (bignum.Int, error) {
	if len(tokens) == 0 {
		return bignum.Int{}, fmt.Errorf("empty expression: %w", ErrSyntax)
	}

	e := &evaluator{
		values: make([]bignum.Int, 0, len(tokens)),
		ops:    make([]byte, 0, len(tokens)),
	}

	for _, t := range tokens {
		switch t.Kind {
		case Number:
			e.values = append(e.values, t.Num)
		case LParen:
			e.ops = append(e.ops, '(')
		case RParen:
			for len(e.ops) > 0 && e.ops[len(e.ops)-1] != '(' {
				if err := e.reduce(); err != nil {
					return bignum.Int{}, err
				}
			}
			if len(e.ops) == 0 {
				return bignum.Int{}, fmt.Errorf("position %d: unmatched ')': %w", t.Pos, ErrSyntax)
			}
			e.ops = e.ops[:len(e.ops)-1]
		case Operator:
			for len(e.ops) > 0 && e.ops[len(e.ops)-1] != '(' &&
				precedence(e.ops[len(e.ops)-1]) >= precedence(t.Op) {
				if err := e.reduce(); err != nil {
					return bignum.Int{}, err
				}
			}
			e.ops = append(e.ops, t.Op)
		}
	}

	for len(e.ops) > 0 {
		if e.ops[len(e.ops)-1] == '(' {
			return bignum.Int{}, fmt.Errorf("unmatched '(': %w", ErrSyntax)
		}
		if err := e.reduce(); err != nil {
			return bignum.Int{}, err
		}
	}

	if len(e.values) != 1 {
		return bignum.Int{}, fmt.Errorf("expected exactly one result, got %d: %w", len(e.values), ErrSyntax)
	}
	return e.values[0], nil
}
