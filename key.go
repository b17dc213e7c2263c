package rsapss

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/vaultsandbox/rsapss/internal/crypto"
)

// PublicKey is the verification half of a key pair. It must not be modified
// after construction.
type PublicKey struct {
	N *big.Int // modulus, exactly Bits() bits long
	E *big.Int // public exponent
}

// PrivateKey is a key pair able to sign. The primes that produced N are not
// retained.
type PrivateKey struct {
	PublicKey
	D *big.Int // private exponent, e*d ≡ 1 mod λ(n)
}

// Bits returns the modulus bit length K.
func (k *PublicKey) Bits() int {
	return k.N.BitLen()
}

// Size returns the modulus length in bytes, which is also the signature length.
func (k *PublicKey) Size() int {
	return crypto.ByteLen(k.N)
}

// Bytes returns n and e as big-endian values, each zero-padded to Size()
// bytes. An exponent wider than the modulus, possible only for toy key
// sizes, is returned at its minimal width.
func (k *PublicKey) Bytes() (n, e []byte) {
	return k.N.FillBytes(make([]byte, k.Size())), k.E.FillBytes(make([]byte, k.exponentSize()))
}

// exponentSize is the encoded width of e: Size(), or more for toy moduli.
func (k *PublicKey) exponentSize() int {
	return max(k.Size(), crypto.ByteLen(k.E))
}

// Equal reports whether k and other have the same modulus and exponent.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return k.N.Cmp(other.N) == 0 && k.E.Cmp(other.E) == 0
}

// Public returns the public half of the key.
func (k *PrivateKey) Public() *PublicKey {
	return &PublicKey{N: new(big.Int).Set(k.N), E: new(big.Int).Set(k.E)}
}

// DBytes returns d as a big-endian value zero-padded to Size() bytes.
func (k *PrivateKey) DBytes() []byte {
	return k.D.FillBytes(make([]byte, k.Size()))
}

// GenerateKey creates a key pair whose modulus has exactly bits bits.
// bits must be even and at least MinKeyBits.
//
// Relevant options: WithRandom, WithExponentMode, WithPrimeRounds,
// WithMaxAttempts, WithLogger.
func GenerateKey(bits int, opts ...Option) (*PrivateKey, error) {
	cfg := newConfig(opts)

	raw, err := crypto.GenerateKey(crypto.KeyGenConfig{
		Bits:        bits,
		Mode:        cfg.exponentMode,
		PrimeRounds: cfg.primeRounds,
		MaxAttempts: cfg.maxAttempts,
		Random:      cfg.random,
		Logger:      cfg.logger,
	})
	if err != nil {
		cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "key generation failed",
			slog.Int("bits", bits),
			slog.String("error", err.Error()))
		return nil, wrapKeyGenError(bits, err)
	}

	return &PrivateKey{
		PublicKey: PublicKey{N: raw.N, E: raw.E},
		D:         raw.D,
	}, nil
}

// NewPublicKey builds a public key from existing material. The values are
// copied. n must be odd and at least MinKeyBits long; e must exceed one.
func NewPublicKey(n, e *big.Int) (*PublicKey, error) {
	if err := crypto.ValidatePublic(n, e); err != nil {
		return nil, err
	}
	return &PublicKey{N: new(big.Int).Set(n), E: new(big.Int).Set(e)}, nil
}

// NewPrivateKey builds a private key from existing material. The values are
// copied. Besides the public checks, d must lie in (0, n) and invert e for n.
func NewPrivateKey(n, e, d *big.Int) (*PrivateKey, error) {
	if err := crypto.ValidatePrivate(n, e, d); err != nil {
		return nil, err
	}
	return &PrivateKey{
		PublicKey: PublicKey{N: new(big.Int).Set(n), E: new(big.Int).Set(e)},
		D:         new(big.Int).Set(d),
	}, nil
}
