package numtheory

// witnesses is the Miller-Rabin base set that decides primality exactly for
// every n < 2^64. Arrays are values, so callers cannot alter it.
var witnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// Witnesses returns a copy of the fixed Miller-Rabin base set.
func Witnesses() [12]uint64 {
	return witnesses
}

// IsPrime reports whether n is prime. The answer is exact for all uint64
// values.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range witnesses {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}

	q, k := n-1, 0
	for q&1 == 0 {
		q >>= 1
		k++
	}

	for _, a := range witnesses {
		if !passes(a, q, k, n) {
			return false
		}
	}
	return true
}

// passes runs one Miller-Rabin round for base a with n-1 = 2^k * q.
func passes(a, q uint64, k int, n uint64) bool {
	x := ModPow(a, q, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := 1; i < k; i++ {
		x = ModMul(x, x, n)
		if x == n-1 {
			return true
		}
	}
	return false
}
