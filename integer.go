package bignum

import (
	"fmt"
	"strings"
)

// A magnitude is a string of decimal digits, most significant digit first,
// without leading zeros.
// The magnitude of zero is "0".
// All functions in this file accept and return magnitudes.

// trimZeros removes leading zeros from s, keeping at least one digit.
func trimZeros(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

// cmpMag compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func cmpMag(x, y string) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	return strings.Compare(x, y)
}

// addMag calculates x + y.
func addMag(x, y string) string {
	if len(x) < len(y) {
		x, y = y, x
	}
	buf := make([]byte, len(x)+1)
	carry := byte(0)
	for i := 0; i < len(x); i++ {
		s := x[len(x)-1-i] - '0' + carry
		if i < len(y) {
			s += y[len(y)-1-i] - '0'
		}
		carry = s / 10
		buf[len(buf)-1-i] = s%10 + '0'
	}
	if carry == 0 {
		return string(buf[1:])
	}
	buf[0] = carry + '0'
	return string(buf)
}

// subMag calculates x - y.
// If x < y, the result is unpredictable.
func subMag(x, y string) string {
	buf := make([]byte, len(x))
	borrow := 0
	for i := 0; i < len(x); i++ {
		d := int(x[len(x)-1-i]-'0') - borrow
		if i < len(y) {
			d -= int(y[len(y)-1-i] - '0')
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		buf[len(buf)-1-i] = byte(d) + '0'
	}
	return trimZeros(string(buf))
}

// mulMagDigit calculates x * d, where d is a single decimal digit.
func mulMagDigit(x string, d byte) string {
	if d == 0 || x == "0" {
		return "0"
	}
	buf := make([]byte, len(x)+1)
	carry := byte(0)
	for i := len(x) - 1; i >= 0; i-- {
		p := (x[i]-'0')*d + carry
		carry = p / 10
		buf[i+1] = p%10 + '0'
	}
	if carry == 0 {
		return string(buf[1:])
	}
	buf[0] = carry + '0'
	return string(buf)
}

// mulMag calculates x * y using schoolbook multiplication.
// Every digit of y contributes one partial product, shifted by its place value.
func mulMag(x, y string) string {
	if x == "0" || y == "0" {
		return "0"
	}
	z := "0"
	for i := 0; i < len(y); i++ {
		p := mulMagDigit(x, y[len(y)-1-i]-'0')
		if p == "0" {
			continue
		}
		z = addMag(z, p+strings.Repeat("0", i))
	}
	return z
}

// quoRemMag calculates q = ⌊x / y⌋, r = x - y * q using long division.
// Each quotient digit is found by repeated subtraction of y.
// If y is zero, quoRemMag panics.
func quoRemMag(x, y string) (q, r string) {
	if y == "0" {
		panic(fmt.Sprintf("quoRemMag(%v, %v) failed: %v", x, y, ErrDivisionByZero)) // unexpected by design
	}
	if cmpMag(x, y) < 0 {
		return "0", x
	}
	buf := make([]byte, 0, len(x))
	r = "0"
	for i := 0; i < len(x); i++ {
		// Bring down the next digit
		if r == "0" {
			r = x[i : i+1]
		} else {
			r += x[i : i+1]
		}
		d := byte(0)
		for cmpMag(r, y) >= 0 {
			r = subMag(r, y)
			d++
		}
		buf = append(buf, d+'0')
	}
	return trimZeros(string(buf)), r
}

// quoRemSmall calculates q = ⌊x / y⌋, r = x - y * q for a small positive y.
func quoRemSmall(x string, y int) (q string, r int) {
	buf := make([]byte, len(x))
	for i := 0; i < len(x); i++ {
		r = r*10 + int(x[i]-'0')
		buf[i] = byte(r/y) + '0'
		r %= y
	}
	return trimZeros(string(buf)), r
}

// fsa (Fused Scaling and Addition) calculates x * m + a for small
// non-negative m and a.
func fsa(x string, m, a int) string {
	buf := make([]byte, len(x), len(x)+4)
	carry := a
	for i := len(x) - 1; i >= 0; i-- {
		p := int(x[i]-'0')*m + carry
		buf[i] = byte(p%10) + '0'
		carry = p / 10
	}
	var head []byte
	for carry > 0 {
		head = append(head, byte(carry%10)+'0')
		carry /= 10
	}
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}
	return trimZeros(string(head) + string(buf))
}

// isOddMag returns true if the last digit of x is odd.
func isOddMag(x string) bool {
	return (x[len(x)-1]-'0')&1 != 0
}
