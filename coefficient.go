package bignum

import (
	"github.com/holiman/uint256"
)

// fint (Fast INTeger) is a wrapper around uint256.Int.
// It is used for magnitudes short enough to never overflow 256 bits.
type fint uint256.Int

// maxFintPrec is the maximum length of a magnitude that always fits in fint.
// 10^77 - 1 < 2^256 - 1 < 10^78 - 1.
const maxFintPrec = 77

// chunkPrec is the number of decimal digits moved in one fint step.
const chunkPrec = 19

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// fitsFint returns true if a magnitude with prec digits always fits in fint.
func fitsFint(prec int) bool {
	return prec <= maxFintPrec
}

// parseFint converts a magnitude to fint.
// If the magnitude has more than maxFintPrec digits, the result is unpredictable.
func parseFint(mag string) *fint {
	z := new(uint256.Int)
	pos := len(mag) % chunkPrec
	if pos == 0 {
		pos = chunkPrec
	}
	for start := 0; start < len(mag); start, pos = pos, pos+chunkPrec {
		var chunk uint64
		for i := start; i < pos; i++ {
			chunk = chunk*10 + uint64(mag[i]-'0')
		}
		z.Mul(z, uint256.NewInt(pow10[pos-start]))
		z.Add(z, uint256.NewInt(chunk))
	}
	return (*fint)(z)
}

func (x *fint) u() *uint256.Int {
	return (*uint256.Int)(x)
}

// mag converts x back to a magnitude.
func (x *fint) mag() string {
	var (
		buf  [maxFintPrec + chunkPrec]byte
		pos  int
		q, r uint256.Int
	)
	pos = len(buf) - 1
	base := uint256.NewInt(pow10[chunkPrec])
	q.Set(x.u())
	for !q.IsZero() {
		r.Mod(&q, base)
		q.Div(&q, base)
		chunk := r.Uint64()
		for i := 0; i < chunkPrec; i++ {
			buf[pos] = byte(chunk%10) + '0'
			pos--
			chunk /= 10
		}
	}
	return trimZeros(string(buf[pos+1:]))
}

// mul calculates z = x * y.
// The caller guarantees that the product fits in 256 bits.
func (z *fint) mul(x, y *fint) {
	z.u().Mul(x.u(), y.u())
}

// quoRem calculates z = ⌊x / y⌋, r = x - y * z.
// If y is zero, z and r are set to zero.
func (z *fint) quoRem(x, y, r *fint) {
	var q, m uint256.Int
	q.Div(x.u(), y.u())
	m.Mod(x.u(), y.u())
	z.u().Set(&q)
	r.u().Set(&m)
}

// mulFast calculates x * y on fint, if both x, y and the product are short
// enough, and reports whether it succeeded.
func mulFast(x, y string) (string, bool) {
	if !fitsFint(len(x) + len(y)) {
		return "", false
	}
	z := new(fint)
	z.mul(parseFint(x), parseFint(y))
	return z.mag(), true
}

// quoRemFast calculates ⌊x / y⌋ and x mod y on fint, if x and y are short
// enough, and reports whether it succeeded.
// y must not be zero.
func quoRemFast(x, y string) (q, r string, ok bool) {
	if !fitsFint(len(x)) || !fitsFint(len(y)) {
		return "", "", false
	}
	fq, fr := new(fint), new(fint)
	fq.quoRem(parseFint(x), parseFint(y), fr)
	return fq.mag(), fr.mag(), true
}
