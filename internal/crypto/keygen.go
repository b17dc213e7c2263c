package crypto

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
)

// ExponentMode selects how the public exponent is chosen.
type ExponentMode int

const (
	// ExponentFixed uses e = 65537.
	ExponentFixed ExponentMode = iota
	// ExponentRandom draws e uniformly below λ(n) until gcd(e, λ(n)) = 1.
	ExponentRandom
)

// String returns "fixed" or "random".
func (m ExponentMode) String() string {
	switch m {
	case ExponentFixed:
		return "fixed"
	case ExponentRandom:
		return "random"
	default:
		return fmt.Sprintf("ExponentMode(%d)", int(m))
	}
}

// RawKey is the (n, e, d) triple. The primes are not retained.
type RawKey struct {
	N *big.Int
	E *big.Int
	D *big.Int
}

// KeyGenConfig holds the parameters of a key generation run.
type KeyGenConfig struct {
	Bits        int
	Mode        ExponentMode
	PrimeRounds int
	MaxAttempts int
	Random      io.Reader
	Logger      *slog.Logger
}

func (c KeyGenConfig) withDefaults() KeyGenConfig {
	if c.PrimeRounds <= 0 {
		c.PrimeRounds = DefaultPrimeRounds
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	return c
}

// AttemptsError reports an exhausted iteration cap.
type AttemptsError struct {
	Attempts int
	Stage    string
}

func (e *AttemptsError) Error() string {
	return fmt.Sprintf("%s: %s search gave up after %d attempts", ErrKeyGenerationFailed, e.Stage, e.Attempts)
}

// Unwrap returns ErrKeyGenerationFailed.
func (e *AttemptsError) Unwrap() error { return ErrKeyGenerationFailed }

// GenerateKey produces a key whose modulus has exactly cfg.Bits bits.
func GenerateKey(cfg KeyGenConfig) (*RawKey, error) {
	key, _, _, err := generateKey(cfg)
	return key, err
}

// generateKey also returns the primes so tests can check e*d ≡ 1 mod λ(n).
func generateKey(cfg KeyGenConfig) (key *RawKey, p, q *big.Int, err error) {
	cfg = cfg.withDefaults()
	if cfg.Bits < MinKeyBits || cfg.Bits%2 != 0 {
		return nil, nil, nil, fmt.Errorf("%w: %d bits, need an even size of at least %d", ErrInvalidKeySize, cfg.Bits, MinKeyBits)
	}
	if cfg.Mode != ExponentFixed && cfg.Mode != ExponentRandom {
		return nil, nil, nil, fmt.Errorf("%w: unknown exponent mode %v", ErrInvalidExponent, cfg.Mode)
	}

	half := cfg.Bits / 2
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if p, err = drawPrime(cfg, half); err != nil {
			return nil, nil, nil, err
		}
		if q, err = drawPrime(cfg, half); err != nil {
			return nil, nil, nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}
		// Forcing the top bit of p and q does not force bit K-1 of n.
		n := new(big.Int).Mul(p, q)
		if n.BitLen() != cfg.Bits {
			continue
		}

		lambda := carmichael(p, q)
		e, err := chooseExponent(cfg, lambda)
		if err != nil {
			return nil, nil, nil, err
		}
		if e == nil {
			continue
		}
		d, ok := ModInverse(e, lambda)
		if !ok {
			continue
		}

		if cfg.Logger != nil {
			cfg.Logger.LogAttrs(context.Background(), slog.LevelDebug, "rsa key generated",
				slog.Int("bits", n.BitLen()),
				slog.Int("attempts", attempt),
				slog.String("exponent", cfg.Mode.String()))
		}
		return &RawKey{N: n, E: e, D: d}, p, q, nil
	}

	return nil, nil, nil, &AttemptsError{Attempts: cfg.MaxAttempts, Stage: "prime pair"}
}

// drawPrime samples odd bits-long integers with the top bit set until one
// passes the probabilistic primality test.
func drawPrime(cfg KeyGenConfig, bits int) (*big.Int, error) {
	for i := 0; i < cfg.MaxAttempts; i++ {
		candidate, err := randomOddWithTopBit(cfg.Random, bits)
		if err != nil {
			return nil, err
		}
		if candidate.ProbablyPrime(cfg.PrimeRounds) {
			return candidate, nil
		}
	}
	return nil, &AttemptsError{Attempts: cfg.MaxAttempts, Stage: "prime"}
}

// chooseExponent returns e coprime to lambda, or nil when the fixed exponent
// shares a factor with lambda and the pair has to be redrawn.
func chooseExponent(cfg KeyGenConfig, lambda *big.Int) (*big.Int, error) {
	if cfg.Mode == ExponentFixed {
		e := big.NewInt(FixedPublicExponent)
		if GCD(e, lambda).Cmp(bigOne) != 0 {
			return nil, nil
		}
		return e, nil
	}

	for i := 0; i < cfg.MaxAttempts; i++ {
		e, err := RandomBelow(cfg.Random, lambda)
		if err != nil {
			return nil, err
		}
		if e.Cmp(bigOne) > 0 && GCD(e, lambda).Cmp(bigOne) == 0 {
			return e, nil
		}
	}
	return nil, &AttemptsError{Attempts: cfg.MaxAttempts, Stage: "exponent"}
}

// carmichael returns λ(pq) = lcm(p-1, q-1).
func carmichael(p, q *big.Int) *big.Int {
	p1 := new(big.Int).Sub(p, bigOne)
	q1 := new(big.Int).Sub(q, bigOne)
	return LCM(p1, q1)
}

// KeyFromPrimes derives (n, e, d) from known primes and a public exponent.
// It is used to rebuild keys from fixed material, e.g. known-answer tests.
func KeyFromPrimes(p, q, e *big.Int) (*RawKey, error) {
	if p.Cmp(bigOne) <= 0 || q.Cmp(bigOne) <= 0 || p.Cmp(q) == 0 {
		return nil, fmt.Errorf("%w: primes must be distinct and greater than one", ErrInvalidKeySize)
	}
	lambda := carmichael(p, q)
	d, ok := ModInverse(e, lambda)
	if !ok || e.Cmp(bigOne) <= 0 {
		return nil, fmt.Errorf("%w: e is not invertible modulo λ(n)", ErrInvalidExponent)
	}
	return &RawKey{N: new(big.Int).Mul(p, q), E: new(big.Int).Set(e), D: d}, nil
}
