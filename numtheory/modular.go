package numtheory

import "math/bits"

// ModAdd returns (a + b) mod m without overflowing. m must be non-zero.
func ModAdd(a, b, m uint64) uint64 {
	a %= m
	b %= m
	if a >= m-b {
		return a - (m - b)
	}
	return a + b
}

// ModMul returns (a * b) mod m using the full 128-bit product. m must be
// non-zero.
func ModMul(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a%m, b%m)
	// hi < m because both factors were reduced.
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// ModPow returns a^e mod m by right-to-left square-and-multiply. m must be
// non-zero; ModPow(a, 0, 1) is 0.
func ModPow(a, e, m uint64) uint64 {
	r := 1 % m
	a %= m
	for e > 0 {
		if e&1 == 1 {
			r = ModMul(r, a, m)
		}
		a = ModMul(a, a, m)
		e >>= 1
	}
	return r
}
