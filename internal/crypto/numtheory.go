package crypto

import "math/big"

var bigOne = big.NewInt(1)

// GCD returns the greatest common divisor of two non-negative integers.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// LCM returns the least common multiple of two positive integers.
func LCM(a, b *big.Int) *big.Int {
	g := GCD(a, b)
	l := new(big.Int).Quo(a, g)
	return l.Mul(l, b)
}

// ModInverse returns a^-1 mod m and true, or nil and false when gcd(a, m) != 1.
//
// It runs the extended Euclidean algorithm on magnitudes only. The Bezout
// coefficient of a alternates sign every step, so it is carried as an
// unsigned value plus a parity flag and folded into [0, m) at the end by
// subtracting it from m when negative.
func ModInverse(a, m *big.Int) (*big.Int, bool) {
	if m.Cmp(bigOne) <= 0 || a.Sign() < 0 {
		return nil, false
	}

	r0 := new(big.Int).Mod(a, m)
	r1 := new(big.Int).Set(m)
	u0 := big.NewInt(1)
	u1 := new(big.Int)
	negative := false

	q, r := new(big.Int), new(big.Int)
	for r1.Sign() != 0 {
		q.QuoRem(r0, r1, r)
		r0, r1 = r1, new(big.Int).Set(r)

		next := new(big.Int).Mul(q, u1)
		next.Add(next, u0)
		u0, u1 = u1, next

		negative = !negative
	}

	if r0.Cmp(bigOne) != 0 {
		return nil, false
	}
	if negative && u0.Sign() != 0 {
		u0.Sub(m, u0)
	}
	return u0.Mod(u0, m), true
}
