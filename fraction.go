package bignum

import (
	"fmt"
	"strings"
)

// Fraction type is a representation of a rational number num / den,
// where num and den are arbitrary-precision integers.
// The zero value is the numeric value of 0/1.
//
// A fraction is always kept in canonical form:
//
//   - the denominator is positive;
//   - the numerator carries the sign;
//   - the numerator and the denominator are coprime, and 0 is written as 0/1.
type Fraction struct {
	num Int
	den Int // zero value stands for 1
}

// gcd calculates the greatest common divisor of |x| and |y| using
// the Euclidean algorithm.
// gcd(x, 0) = |x|.
func gcd(x, y Int) Int {
	x, y = x.Abs(), y.Abs()
	for !y.IsZero() {
		_, r, err := x.QuoRem(y)
		if err != nil {
			panic(fmt.Sprintf("gcd(%v, %v) failed: %v", x, y, err)) // unexpected by design
		}
		x, y = y, r
	}
	return x
}

// NewFraction returns a fraction equal to num / den reduced to lowest terms.
//
// NewFraction returns an error wrapping [ErrDivisionByZero] if den is 0.
func NewFraction(num, den Int) (Fraction, error) {
	if den.IsZero() {
		return Fraction{}, fmt.Errorf("creating fraction [%v/%v]: %w", num, den, ErrDivisionByZero)
	}

	// Special case: zero numerator
	if num.IsZero() {
		return Fraction{}, nil
	}

	// General case
	g := gcd(num, den)
	n, err := num.Quo(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("creating fraction [%v/%v]: %w", num, den, err)
	}
	d, err := den.Quo(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("creating fraction [%v/%v]: %w", num, den, err)
	}
	if d.IsNeg() {
		n, d = n.Neg(), d.Neg()
	}
	return Fraction{num: n, den: d}, nil
}

// MustNewFraction is like [NewFraction] but panics if den is 0.
func MustNewFraction(num, den Int) Fraction {
	f, err := NewFraction(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNewFraction(%v, %v) failed: %v", num, den, err))
	}
	return f
}

// NewFractionFromInt returns a fraction equal to x / 1.
func NewFractionFromInt(x Int) Fraction {
	if x.IsZero() {
		return Fraction{}
	}
	return Fraction{num: x, den: one}
}

// ParseFraction converts a string of the form "N/D" to a fraction.
// Spaces around N and D are ignored.
// Both N and D must be valid inputs for [Parse].
//
// ParseFraction returns an error wrapping:
//   - [ErrInvalidFormat] if the string has no '/' or N or D cannot be parsed;
//   - [ErrDivisionByZero] if D is 0.
func ParseFraction(s string) (Fraction, error) {
	n, d, ok := strings.Cut(s, "/")
	if !ok {
		return Fraction{}, fmt.Errorf("parsing fraction %q: missing '/': %w", s, ErrInvalidFormat)
	}
	num, err := Parse(strings.TrimSpace(n))
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing numerator of %q: %w", s, err)
	}
	den, err := Parse(strings.TrimSpace(d))
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing denominator of %q: %w", s, err)
	}
	return NewFraction(num, den)
}

// MustParseFraction is like [ParseFraction] but panics if the string cannot
// be parsed.
func MustParseFraction(s string) Fraction {
	f, err := ParseFraction(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseFraction(%q) failed: %v", s, err))
	}
	return f
}

// Num returns the numerator of f.
func (f Fraction) Num() Int {
	return f.num
}

// Den returns the denominator of f, which is always positive.
func (f Fraction) Den() Int {
	if f.den.IsZero() {
		return one
	}
	return f.den
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a fraction in the form "-N/D".
// The sign is present only for negative fractions.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	num, den := f.Num(), f.Den()
	if num.IsNeg() != den.IsNeg() {
		return "-" + num.Mag() + "/" + den.Mag()
	}
	return num.Mag() + "/" + den.Mag()
}

// Format implements [fmt.Formatter] interface.
// The verbs %s, %v and %q are available; the latter quotes the result.
func (f Fraction) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		fmt.Fprint(state, f.String())
	case 'q':
		fmt.Fprintf(state, "%q", f.String())
	default:
		fmt.Fprintf(state, "%%!%c(bignum.Fraction=%v)", verb, f.String())
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseFraction].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (f *Fraction) UnmarshalText(text []byte) error {
	var err error
	*f, err = ParseFraction(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Fraction.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f == 0
//	+1 if f > 0
func (f Fraction) Sign() int {
	return f.num.Sign()
}

// IsZero returns true if f == 0.
func (f Fraction) IsZero() bool {
	return f.num.IsZero()
}

// IsInt returns true if the denominator of f is 1.
func (f Fraction) IsInt() bool {
	return f.Den().IsOne()
}

// Neg returns f with opposite sign.
func (f Fraction) Neg() Fraction {
	return Fraction{num: f.num.Neg(), den: f.den}
}

// Cmp compares f and g numerically and returns:
//
//	-1 if f < g
//	 0 if f == g
//	+1 if f > g
func (f Fraction) Cmp(g Fraction) int {
	return f.Num().Mul(g.Den()).Cmp(g.Num().Mul(f.Den()))
}

// Add returns the sum of f and g.
func (f Fraction) Add(g Fraction) Fraction {
	num := f.Num().Mul(g.Den()).Add(g.Num().Mul(f.Den()))
	den := f.Den().Mul(g.Den())
	return mustFraction("Add", f, g, num, den)
}

// Sub returns the difference of f and g.
func (f Fraction) Sub(g Fraction) Fraction {
	num := f.Num().Mul(g.Den()).Sub(g.Num().Mul(f.Den()))
	den := f.Den().Mul(g.Den())
	return mustFraction("Sub", f, g, num, den)
}

// Mul returns the product of f and g.
func (f Fraction) Mul(g Fraction) Fraction {
	num := f.Num().Mul(g.Num())
	den := f.Den().Mul(g.Den())
	return mustFraction("Mul", f, g, num, den)
}

// Quo returns the quotient of f and g.
//
// Quo returns an error wrapping [ErrDivisionByZero] if g is 0.
func (f Fraction) Quo(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, g, ErrDivisionByZero)
	}
	num := f.Num().Mul(g.Den())
	den := f.Den().Mul(g.Num())
	return NewFraction(num, den)
}

// mustFraction builds the result of an operation whose denominator is
// a product of non-zero denominators.
func mustFraction(op string, f, g Fraction, num, den Int) Fraction {
	h, err := NewFraction(num, den)
	if err != nil {
		panic(fmt.Sprintf("%q.%v(%q) failed: %v", f, op, g, err)) // unexpected by design
	}
	return h
}
