// Package numtheory provides number theory on 64-bit machine integers:
// Euclid's algorithms, modular inverses, overflow-free modular arithmetic and
// a deterministic Miller-Rabin primality test.
//
// Everything here is exact for the full uint64 range and runs in variable
// time. It backs the minirsa toy cipher and is not meant for secrets.
package numtheory
