package crypto

const (
	// FixedPublicExponent is the public exponent used when keys are generated
	// with ExponentFixed.
	FixedPublicExponent = 65537

	// DefaultPrimeRounds is the number of Miller-Rabin rounds run per prime
	// candidate. 50 rounds bound the error probability by 2^-100.
	DefaultPrimeRounds = 50

	// DefaultMaxAttempts caps the number of (p, q) pair draws during key
	// generation before giving up with ErrKeyGenerationFailed.
	DefaultMaxAttempts = 10000

	// MinKeyBits is the smallest modulus size accepted by the key generator.
	MinKeyBits = 16

	// TrailerByte terminates every encoded message.
	TrailerByte = 0xbc

	// SeparatorByte sits between the zero padding and the salt in the data block.
	SeparatorByte = 0x01

	// PrefixZeros is the number of zero bytes that open M' = 0x00*8 || mHash || salt.
	PrefixZeros = 8

	// CounterSize is the size of the big-endian MGF1 counter in bytes.
	CounterSize = 4
)

// maxMGFCounter is the number of distinct 4-byte counter values, so a mask may
// be at most maxMGFCounter*hLen bytes long.
const maxMGFCounter = uint64(1) << 32
