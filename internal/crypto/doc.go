// Package crypto provides the primitives behind RSASSA-PSS signatures.
//
// # Components
//
// The package is organised leaves first:
//
//   - Hash: a fixed-output digest chosen once by the caller. SHA-2 comes from
//     the standard library, SHA-3 and BLAKE2b from golang.org/x/crypto, and
//     fixed-length SHAKE256 and KangarooTwelve digests from circl's XOF package.
//
//   - MGF1: expands a seed into a mask of arbitrary length by hashing
//     seed || BE32(counter).
//
//   - Transform: computes x^k mod n for fixed-width big-endian operands and
//     rejects x >= n with [ErrMessageOutOfRange].
//
//   - GenerateKey: draws two probable primes of K/2 bits whose product has
//     exactly K bits and derives e and d from Carmichael's totient.
//
//   - EncodePSS / VerifyPSS: the EMSA-PSS encoding and its ordered checks,
//     each failure mapped to a distinct sentinel error.
//
// # Randomness
//
// Every random draw goes through an io.Reader. A nil reader selects
// crypto/rand.Reader. Tests may swap the package default with
// [SetRandReaderForTesting].
//
// # Secret material
//
// The primes p and q never leave [GenerateKey]. [KeyFromPrimes] rebuilds a
// key from primes the caller already holds. Nothing in this package logs or
// retains keys, salts or masks between calls.
package crypto
