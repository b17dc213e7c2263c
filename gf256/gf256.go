// Package gf256 implements arithmetic in GF(2^8) with the AES reduction
// polynomial x^8 + x^4 + x^3 + x + 1.
//
// Addition in the field is XOR and needs no helper.
package gf256

// reduction is x^8 folded back into the field: x^4 + x^3 + x + 1.
const reduction = 0x1b

// xtime multiplies a by x.
func xtime(a byte) byte {
	return a<<1 ^ reduction&-(a>>7)
}

// Mul returns a * b.
func Mul(a, b byte) byte {
	var r byte
	for b > 0 {
		if b&1 == 1 {
			r ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return r
}

// Pow returns a^e by square-and-multiply. Pow(a, 0) is 1 for every a.
func Pow(a, e byte) byte {
	r := byte(1)
	for e > 0 {
		if e&1 == 1 {
			r = Mul(r, a)
		}
		a = Mul(a, a)
		e >>= 1
	}
	return r
}

// Inv returns the multiplicative inverse a^254 of a. Inv(0) is 0.
func Inv(a byte) byte {
	return Pow(a, 0xfe)
}
