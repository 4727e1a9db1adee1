package bignum

import "fmt"

// MustQuo is like [Int.Quo] but panics if computing error.
func (x Int) MustQuo(y Int) Int {
	z, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return z
}

// MustRem is like [Int.Rem] but panics if computing error.
func (x Int) MustRem(y Int) Int {
	z, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}
	return z
}

// MustQuoRem is like [Int.QuoRem] but panics if computing error.
func (x Int) MustQuoRem(y Int) (Int, Int) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", y, err))
	}
	return q, r
}

// MustPow is like [Int.Pow] but panics if computing error.
func (x Int) MustPow(y Int) Int {
	z, err := x.Pow(y)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", y, err))
	}
	return z
}

// MustFactorial is like [Int.Factorial] but panics if computing error.
func (x Int) MustFactorial() Int {
	z, err := x.Factorial()
	if err != nil {
		panic(fmt.Sprintf("MustFactorial() failed: %v", err))
	}
	return z
}

// MustLog is like [Int.Log] but panics if computing error.
func (x Int) MustLog(base Int) Int {
	z, err := x.Log(base)
	if err != nil {
		panic(fmt.Sprintf("MustLog(%v) failed: %v", base, err))
	}
	return z
}

// MustQuo is like [Fraction.Quo] but panics if computing error.
func (f Fraction) MustQuo(g Fraction) Fraction {
	h, err := f.Quo(g)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", g, err))
	}
	return h
}
