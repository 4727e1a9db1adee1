package bignum

import "fmt"

const (
	MinBase = 2  // smallest base accepted by [Int.Text] and [ParseBase]
	MaxBase = 36 // largest base accepted by [Int.Text] and [ParseBase]
)

// baseDigits maps digit values to characters.
const baseDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// digitValue returns the value of a digit character in bases up to 36.
// Letters are case-insensitive.
func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	}
	return 0, false
}

// Text returns the string representation of x in the given base.
// Digits greater than 9 are written as upper-case letters 'A' to 'Z'.
// Negative values are prefixed with '-'.
//
// Text returns an error wrapping [ErrInvalidBase] if base is less than
// [MinBase] or greater than [MaxBase].
func (x Int) Text(base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("converting %v to base %v: base must be between %v and %v: %w", x, base, MinBase, MaxBase, ErrInvalidBase)
	}

	// Special case: zero
	if x.IsZero() {
		return "0", nil
	}

	// General case
	var (
		buf []byte
		mag string
		r   int
	)
	mag = x.mag
	for mag != "0" {
		mag, r = quoRemSmall(mag, base)
		buf = append(buf, baseDigits[r])
	}
	if x.IsNeg() {
		buf = append(buf, '-')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

// ParseBase converts a string written in the given base to an integer.
// The string consists of an optional '-' followed by one or more digits
// '0'-'9', 'A'-'Z' or 'a'-'z', where every digit must be less than the base.
//
// ParseBase returns an error wrapping:
//   - [ErrInvalidBase] if base is less than [MinBase] or greater than [MaxBase];
//   - [ErrInvalidFormat] if the string has no digits;
//   - [ErrInvalidDigit] if a character is not a valid digit in the base.
func ParseBase(s string, base int) (Int, error) {
	if base < MinBase || base > MaxBase {
		return Int{}, fmt.Errorf("parsing %q in base %v: base must be between %v and %v: %w", s, base, MinBase, MaxBase, ErrInvalidBase)
	}

	var (
		pos   int
		width int
		neg   bool
		mag   string
	)

	width = len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	if pos == width {
		return Int{}, fmt.Errorf("parsing %q in base %v: no digits: %w", s, base, ErrInvalidFormat)
	}

	// Digits
	mag = "0"
	for ; pos < width; pos++ {
		v, ok := digitValue(s[pos])
		if !ok || v >= base {
			return Int{}, fmt.Errorf("parsing %q in base %v: character %q: %w", s, base, s[pos], ErrInvalidDigit)
		}
		mag = fsa(mag, base, v)
	}

	return newInt(neg, mag), nil
}

// MustParseBase is like [ParseBase] but panics if the string cannot be parsed.
func MustParseBase(s string, base int) Int {
	x, err := ParseBase(s, base)
	if err != nil {
		panic(fmt.Sprintf("MustParseBase(%q, %v) failed: %v", s, base, err))
	}
	return x
}
