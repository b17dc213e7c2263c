package numtheory

// GCD returns the greatest common divisor of a and b. GCD(0, b) is b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// XGCD returns d = gcd(a, b) together with Bezout coefficients x and y such
// that a*x + b*y = d. a and b must be non-negative.
func XGCD(a, b int64) (d, x, y int64) {
	d0, d1 := a, b
	x0, x1 := int64(1), int64(0)
	y0, y1 := int64(0), int64(1)
	for d1 != 0 {
		q := d0 / d1
		d0, d1 = d1, d0-q*d1
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}
	return d0, x0, y0
}

// ModInverse returns a^-1 mod m in [1, m), or 0 when a has no inverse.
// a must be non-negative and m greater than one.
func ModInverse(a, m int64) int64 {
	if m <= 1 || a < 0 {
		return 0
	}
	d, x, _ := XGCD(a%m, m)
	if d != 1 {
		return 0
	}
	if x < 0 {
		x += m
	}
	return x
}

// UModInverse returns a^-1 mod m for unsigned operands, or 0 when a has no
// inverse. It never relies on wraparound: the Bezout coefficient is kept as
// a magnitude and its sign, which alternates every step, as a flag.
func UModInverse(a, m uint64) uint64 {
	if m <= 1 {
		return 0
	}
	d0, d1 := a%m, m
	u0, u1 := uint64(1), uint64(0)
	negative := false
	for d1 != 0 {
		q := d0 / d1
		d0, d1 = d1, d0-q*d1
		u0, u1 = u1, u0+q*u1
		negative = !negative
	}
	if d0 != 1 {
		return 0
	}
	if negative && u0 != 0 {
		return m - u0
	}
	return u0
}
