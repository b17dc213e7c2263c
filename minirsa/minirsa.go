// Package minirsa is textbook RSA over 64-bit integers.
//
// It has no padding and a 64-bit modulus, so it offers no security. It exists
// to exercise the numtheory package end to end and to make the RSA key
// relations easy to inspect with small numbers.
package minirsa

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/vaultsandbox/rsapss/internal/crypto"
	"github.com/vaultsandbox/rsapss/numtheory"
)

// MinModulus is the smallest modulus GenerateKey returns, so every modulus is
// exactly 64 bits long.
const MinModulus = uint64(1) << 63

// Errors shared with the rsapss package.
var (
	ErrMessageOutOfRange   = crypto.ErrMessageOutOfRange
	ErrKeyGenerationFailed = crypto.ErrKeyGenerationFailed
)

// Key is a mini RSA key pair.
type Key struct {
	E uint64
	D uint64
	N uint64
}

// GenerateKey draws two 32-bit primes whose product is at least MinModulus
// and a random public exponent coprime to λ(n) = lcm(p-1, q-1).
// A nil reader selects crypto/rand.
func GenerateKey(r io.Reader) (Key, error) {
	for attempt := 0; attempt < crypto.DefaultMaxAttempts; attempt++ {
		p, err := drawPrime(r)
		if err != nil {
			return Key{}, err
		}
		q, err := drawPrime(r)
		if err != nil {
			return Key{}, err
		}
		n := p * q
		if p == q || n < MinModulus {
			continue
		}

		lambda := (p - 1) / numtheory.GCD(p-1, q-1) * (q - 1)
		e, err := drawExponent(r, lambda)
		if err != nil {
			return Key{}, err
		}
		return Key{E: e, D: numtheory.UModInverse(e, lambda), N: n}, nil
	}
	return Key{}, &crypto.AttemptsError{Attempts: crypto.DefaultMaxAttempts, Stage: "mini prime pair"}
}

// drawPrime samples 32-bit odd integers with the top bit set until one is prime.
func drawPrime(r io.Reader) (uint64, error) {
	for i := 0; i < crypto.DefaultMaxAttempts; i++ {
		buf, err := crypto.RandomBytes(r, 4)
		if err != nil {
			return 0, err
		}
		candidate := uint64(binary.BigEndian.Uint32(buf)) | 1<<31 | 1
		if numtheory.IsPrime(candidate) {
			return candidate, nil
		}
	}
	return 0, &crypto.AttemptsError{Attempts: crypto.DefaultMaxAttempts, Stage: "mini prime"}
}

// drawExponent samples e uniformly below lambda until e > 1 and
// gcd(e, lambda) = 1.
func drawExponent(r io.Reader, lambda uint64) (uint64, error) {
	bound := new(big.Int).SetUint64(lambda)
	for i := 0; i < crypto.DefaultMaxAttempts; i++ {
		v, err := crypto.RandomBelow(r, bound)
		if err != nil {
			return 0, err
		}
		e := v.Uint64()
		if e > 1 && numtheory.GCD(e, lambda) == 1 {
			return e, nil
		}
	}
	return 0, &crypto.AttemptsError{Attempts: crypto.DefaultMaxAttempts, Stage: "mini exponent"}
}

// Cipher returns m^k mod n. Encryption and decryption are the same
// operation with k = e or k = d. m must be below n.
func Cipher(m, k, n uint64) (uint64, error) {
	if n == 0 || m >= n {
		return 0, ErrMessageOutOfRange
	}
	return numtheory.ModPow(m, k, n), nil
}

// Encrypt applies the public exponent.
func (k Key) Encrypt(m uint64) (uint64, error) {
	return Cipher(m, k.E, k.N)
}

// Decrypt applies the private exponent.
func (k Key) Decrypt(c uint64) (uint64, error) {
	return Cipher(c, k.D, k.N)
}
