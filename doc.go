/*
Package bignum implements immutable arbitrary-precision integers and fractions.
It is specifically designed for exact arithmetic on values of any size,
such as factorials, large powers, and rational numbers that must never be
rounded.

# Representation

[Int] is a struct with two fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Magnitude: the absolute value written as decimal digits, most significant
    digit first, without leading zeros.
    For example, the integer -120 has sign true and magnitude "120".

The zero value of [Int] is 0.
Negative zero is not supported: every operation that produces 0 produces
a non-negative 0.

[Fraction] is a pair of integers, the numerator and the denominator.
Fractions are always kept in canonical form: the denominator is positive,
the sign is carried by the numerator, and both parts are reduced by their
greatest common divisor.
For example, 2/-4 is stored as -1/2.
The zero value of [Fraction] is 0/1.

# Conversions

The package provides methods for converting integers:

  - from/to decimal string:
    [Parse], [Int.String], [Int.Format].
  - from/to strings in bases 2 to 36:
    [ParseBase], [Int.Text].
  - from/to int64:
    [NewInt], [Int.Int64].

And fractions:

  - from/to string of the form "N/D":
    [ParseFraction], [Fraction.String].
  - from integers:
    [NewFraction], [NewFractionFromInt].

# Operations

Each multiplication and division is carried out in two steps:

 1. If the operands are short enough, the operation is performed using
    256-bit fixed-width arithmetic.
    At most 77 decimal digits always fit into 256 bits, so step 1 is exact.

 2. Otherwise the operation is performed on decimal digits using schoolbook
    algorithms: multiplication accumulates one shifted partial product per
    digit, and long division finds each quotient digit by repeated subtraction.

Both steps produce identical results.
Addition, subtraction and comparison always work on decimal digits.

Division truncates towards zero:
the quotient of [Int.QuoRem] is negative if exactly one operand is negative,
and the remainder has the sign of the dividend.
For example, -7 / 2 gives quotient -3 and remainder -1.

# Errors

All methods are panic-free and pure, except for the Must* helpers.
Errors wrap one of the following sentinel values and can be tested with
[errors.Is]:

  - [ErrInvalidFormat]: a string is not a valid integer or fraction.
  - [ErrDivisionByZero]: [Int.QuoRem], [Int.Quo], [Int.Rem] and [Fraction.Quo]
    with a zero divisor, or [NewFraction] with a zero denominator.
  - [ErrNegativeExponent]: [Int.Pow] with a negative exponent.
  - [ErrNegativeInput]: [Int.Factorial] of a negative integer.
  - [ErrInvalidInput]: [Int.Log] of a non-positive integer or with a base
    less than 2.
  - [ErrInvalidBase]: [Int.Text] and [ParseBase] with a base outside [2, 36].
  - [ErrInvalidDigit]: [ParseBase] with a character that is not a digit of
    the base.

Overflow is not possible.
*/
package bignum
