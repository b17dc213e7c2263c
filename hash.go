package rsapss

import "github.com/vaultsandbox/rsapss/internal/crypto"

// Hash is a fixed-output hash function. It is chosen once per Signer or
// Verifier and used both for the message digest and inside MGF1.
//
// Custom implementations must return digests of exactly Size() bytes.
type Hash = crypto.Hash

// Built-in hash functions.
var (
	SHA224 = crypto.SHA224
	SHA256 = crypto.SHA256
	SHA384 = crypto.SHA384
	SHA512 = crypto.SHA512

	SHA3_224 = crypto.SHA3_224
	SHA3_256 = crypto.SHA3_256
	SHA3_384 = crypto.SHA3_384
	SHA3_512 = crypto.SHA3_512

	BLAKE2b_256 = crypto.BLAKE2b_256
	BLAKE2b_384 = crypto.BLAKE2b_384
	BLAKE2b_512 = crypto.BLAKE2b_512

	// SHAKE256_256 is SHAKE256 squeezed to 32 bytes.
	SHAKE256_256 = crypto.SHAKE256_256
	// K12_256 is KangarooTwelve squeezed to 32 bytes.
	K12_256 = crypto.K12_256
)

// LookupHash resolves a built-in hash by name. Matching ignores case and
// the separators '-', '_' and ' ', so "sha256" finds SHA-256.
func LookupHash(name string) (Hash, error) {
	return crypto.LookupHash(name)
}

// HashNames returns the canonical names of the built-in hashes, sorted.
func HashNames() []string {
	return crypto.HashNames()
}

// MinKeyBitsFor returns the smallest modulus size K at which h can be used:
// emLen = ceil((K-1)/8) must be at least 2*hLen + 2.
func MinKeyBitsFor(h Hash) int {
	return 8*(2*h.Size()+2) - 6
}
