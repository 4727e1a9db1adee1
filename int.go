package bignum

import (
	"errors"
	"fmt"
	"strconv"
)

// Int type is a representation of an arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// Int is a struct with two fields:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Magnitude: the absolute value of the integer written as decimal digits,
//     most significant digit first, without leading zeros.
//
// Negative zero is not supported.
// Every operation returns a new value and never modifies its operands.
type Int struct {
	neg bool   // indicates whether the integer is negative
	mag string // decimal digits of the absolute value, empty for 0
}

var (
	ErrInvalidFormat    = errors.New("invalid format")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNegativeExponent = errors.New("negative exponent")
	ErrNegativeInput    = errors.New("negative input")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidBase      = errors.New("invalid base")
	ErrInvalidDigit     = errors.New("invalid digit")
)

var (
	zero = Int{}
	one  = Int{mag: "1"}
	two  = Int{mag: "2"}
)

// newInt returns an integer with the given sign and magnitude.
// The magnitude must already be canonical.
func newInt(neg bool, mag string) Int {
	if mag == "0" || mag == "" {
		return Int{}
	}
	return Int{neg: neg, mag: mag}
}

// NewInt returns an integer equal to x.
func NewInt(x int64) Int {
	if x < 0 {
		// Negating math.MinInt64 overflows, so the magnitude is
		// taken from the unsigned representation.
		return newInt(true, strconv.FormatUint(uint64(-(x+1))+1, 10))
	}
	return newInt(false, strconv.FormatInt(x, 10))
}

// Parse converts a string to an integer.
// The input string must be in the following format:
//
//	sign    ::= '-'
//	digits  ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	integer ::= [sign] digits
//
// Parse removes leading zeros and turns "-0" into "0".
//
// Parse returns an error wrapping [ErrInvalidFormat] if the string is empty
// after removing the sign, or contains anything other than decimal digits.
func Parse(s string) (Int, error) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	// Digits
	start := pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}

	if pos != width {
		return Int{}, fmt.Errorf("invalid character %q in %q: %w", s[pos], s, ErrInvalidFormat)
	}
	if pos == start {
		return Int{}, fmt.Errorf("no digits in %q: %w", s, ErrInvalidFormat)
	}

	return newInt(neg, trimZeros(s[start:])), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of an integer value.
// The returned string is formatted according to the following formal EBNF grammar:
//
//	sign    ::= '-'
//	digits  ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	integer ::= [sign] digits
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	if x.IsNeg() {
		return "-" + x.mag
	}
	return x.Mag()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -123456
//	%q:        "-123456"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int) Format(state fmt.State, verb rune) {
	digits := x.Mag()

	// Arithmetic sign
	rsign := 0
	if x.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(digits) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case x.IsNeg():
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, digits...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd', 'D':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bignum.Int="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Mag returns the magnitude of x as a string of decimal digits.
// The magnitude of 0 is "0".
func (x Int) Mag() string {
	if x.mag == "" {
		return "0"
	}
	return x.mag
}

// Prec returns number of decimal digits in the magnitude of x.
// Prec assumes that 0 has one digit.
func (x Int) Prec() int {
	return len(x.Mag())
}

// Int64 returns x as int64 and reports whether the conversion is exact.
func (x Int) Int64() (int64, bool) {
	if x.Prec() > 19 {
		return 0, false
	}
	u, err := strconv.ParseUint(x.Mag(), 10, 64)
	if err != nil {
		return 0, false
	}
	if x.IsNeg() {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u-1) - 1, true
	}
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}

// Copy returns an independent copy of x.
// Changing the sign of the copy, for example with [Int.Neg], never
// affects x.
func (x Int) Copy() Int {
	return Int{neg: x.neg, mag: x.mag}
}

// Neg returns x with opposite sign.
func (x Int) Neg() Int {
	return newInt(!x.neg, x.mag)
}

// Abs returns absolute value of x.
func (x Int) Abs() Int {
	return newInt(false, x.mag)
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.mag == "":
		return 0
	}
	return 1
}

// IsPos returns true if x > 0.
func (x Int) IsPos() bool {
	return x.mag != "" && !x.neg
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.neg
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return x.mag == ""
}

// IsOne returns true if x == -1 or x == 1.
func (x Int) IsOne() bool {
	return x.mag == "1"
}

// IsOdd returns true if x is not divisible by 2.
func (x Int) IsOdd() bool {
	return isOddMag(x.Mag())
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	// Special case: different signs
	switch {
	case y.Sign() < x.Sign():
		return 1
	case x.Sign() < y.Sign():
		return -1
	}

	// General case
	r := cmpMag(x.Mag(), y.Mag())
	if x.IsNeg() {
		return -r
	}
	return r
}

// Max returns maximum of x and y.
func (x Int) Max(y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns minimum of x and y.
func (x Int) Min(y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Add returns the sum of x and y.
func (x Int) Add(y Int) Int {
	xmag, ymag := x.Mag(), y.Mag()

	// Same signs
	if x.IsNeg() == y.IsNeg() {
		return newInt(x.IsNeg(), addMag(xmag, ymag))
	}

	// Different signs
	switch cmpMag(xmag, ymag) {
	case 1:
		return newInt(x.IsNeg(), subMag(xmag, ymag))
	case -1:
		return newInt(y.IsNeg(), subMag(ymag, xmag))
	}
	return zero
}

// Sub returns the difference of x and y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns the product of x and y.
func (x Int) Mul(y Int) Int {
	// Special case: zero factor
	if x.IsZero() || y.IsZero() {
		return zero
	}

	// General case
	neg := x.IsNeg() != y.IsNeg()
	z, ok := mulFast(x.mag, y.mag)
	if !ok {
		z = mulMag(x.mag, y.mag)
	}
	return newInt(neg, z)
}

// QuoRem returns the truncated quotient and the remainder of x and y
// such that x = q * y + r and |r| < |y|.
// The quotient is rounded towards zero, and the remainder has the sign
// of x.
//
// QuoRem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	// Special case: zero divisor
	if y.IsZero() {
		if x.IsZero() {
			return Int{}, Int{}, fmt.Errorf("computing [%v / %v]: result is undefined: %w", x, y, ErrDivisionByZero)
		}
		return Int{}, Int{}, fmt.Errorf("computing [%v / %v]: result is infinite: %w", x, y, ErrDivisionByZero)
	}

	// Special case: zero dividend
	if x.IsZero() {
		return zero, zero, nil
	}

	// General case
	qmag, rmag, ok := quoRemFast(x.mag, y.mag)
	if !ok {
		qmag, rmag = quoRemMag(x.mag, y.mag)
	}
	q = newInt(x.IsNeg() != y.IsNeg(), qmag)
	r = newInt(x.IsNeg(), rmag)
	return q, r, nil
}

// Quo returns the quotient of x and y rounded towards zero.
//
// Quo returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	if err != nil {
		return Int{}, err
	}
	return q, nil
}

// Rem returns the remainder of x and y.
// The remainder has the sign of x.
// Also see method [Int.QuoRem].
//
// Rem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	if err != nil {
		return Int{}, err
	}
	return r, nil
}

// Pow returns x raised to the power of y.
// By convention 0^0 = 1.
//
// Pow returns an error wrapping [ErrNegativeExponent] if y is negative.
func (x Int) Pow(y Int) (Int, error) {
	if y.IsNeg() {
		return Int{}, fmt.Errorf("computing [%v^%v]: %w", x, y, ErrNegativeExponent)
	}

	// Special cases
	switch {
	case y.IsZero():
		return one, nil
	case x.IsZero():
		return zero, nil
	case x.IsOne():
		if x.IsNeg() && y.IsOdd() {
			return one.Neg(), nil
		}
		return one, nil
	}

	// General case
	return powInt(x, y), nil
}

// powInt calculates x^y by repeated squaring.
// y must be positive.
func powInt(x, y Int) Int {
	if y.IsOne() {
		return x
	}
	h, _, err := y.QuoRem(two)
	if err != nil {
		panic(fmt.Sprintf("powInt(%v, %v) failed: %v", x, y, err)) // unexpected by design
	}
	z := powInt(x, h)
	z = z.Mul(z)
	if y.IsOdd() {
		z = z.Mul(x)
	}
	return z
}

// Factorial returns x! = 1 * 2 * ... * x.
// By convention 0! = 1.
//
// Factorial returns an error wrapping [ErrNegativeInput] if x is negative.
func (x Int) Factorial() (Int, error) {
	if x.IsNeg() {
		return Int{}, fmt.Errorf("computing [%v!]: %w", x, ErrNegativeInput)
	}
	z := one
	for i := two; i.Cmp(x) <= 0; i = i.Add(one) {
		z = z.Mul(i)
	}
	return z, nil
}

// Log returns the integer logarithm of x to the given base, that is
// the largest n such that base^n <= x.
//
// Log returns an error wrapping [ErrInvalidInput] if:
//   - x is zero or negative;
//   - base is less than 2.
func (x Int) Log(base Int) (Int, error) {
	switch {
	case x.Sign() <= 0:
		return Int{}, fmt.Errorf("computing [log%v(%v)]: argument must be positive: %w", base, x, ErrInvalidInput)
	case base.Cmp(two) < 0:
		return Int{}, fmt.Errorf("computing [log%v(%v)]: base must be greater than 1: %w", base, x, ErrInvalidInput)
	}

	// The loop stops one step past the answer.
	n := zero
	for p := one; p.Cmp(x) <= 0; p = p.Mul(base) {
		n = n.Add(one)
	}
	return n.Sub(one), nil
}
