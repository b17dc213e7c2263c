package rsapss

import (
	"io"
	"log/slog"

	"github.com/vaultsandbox/rsapss/internal/crypto"
)

// ExponentMode selects how GenerateKey chooses the public exponent.
type ExponentMode = crypto.ExponentMode

const (
	// ExponentFixed uses e = 65537.
	ExponentFixed = crypto.ExponentFixed
	// ExponentRandom draws e below λ(n) until it is coprime to λ(n).
	ExponentRandom = crypto.ExponentRandom
)

const (
	// FixedPublicExponent is the exponent used by ExponentFixed.
	FixedPublicExponent = crypto.FixedPublicExponent
	// MinKeyBits is the smallest modulus GenerateKey accepts.
	MinKeyBits = crypto.MinKeyBits
)

const (
	defaultPrimeRounds = crypto.DefaultPrimeRounds
	defaultMaxAttempts = crypto.DefaultMaxAttempts
)

// config holds configuration for key generation, signing and verification.
type config struct {
	hash         Hash
	random       io.Reader
	exponentMode ExponentMode
	primeRounds  int
	maxAttempts  int
	logger       *slog.Logger
}

// Option configures key generation, a Signer or a Verifier.
// Options that do not apply to an operation are ignored.
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{
		hash:         SHA256,
		exponentMode: ExponentFixed,
		primeRounds:  defaultPrimeRounds,
		maxAttempts:  defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// WithHash sets the hash used for the message digest and for MGF1.
// Default: SHA-256
func WithHash(h Hash) Option {
	return func(c *config) {
		if h != nil {
			c.hash = h
		}
	}
}

// WithRandom sets the random source for primes, exponents and salts.
// A nil reader selects crypto/rand.Reader. The reader must be
// cryptographically secure outside of tests.
func WithRandom(r io.Reader) Option {
	return func(c *config) {
		c.random = r
	}
}

// WithExponentMode sets how the public exponent is chosen.
// Default: ExponentFixed
func WithExponentMode(mode ExponentMode) Option {
	return func(c *config) {
		c.exponentMode = mode
	}
}

// WithPrimeRounds sets the number of Miller-Rabin rounds per prime candidate.
// Default: 50, which bounds the error probability by 2^-100.
func WithPrimeRounds(rounds int) Option {
	return func(c *config) {
		if rounds > 0 {
			c.primeRounds = rounds
		}
	}
}

// WithMaxAttempts caps the number of draws in each key generation loop.
// Default: 10000
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithLogger sets the logger for debug output. Key material, salts and
// masks are never logged.
// Default: a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
