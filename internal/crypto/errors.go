package crypto

import "errors"

var (
	// ErrMessageOutOfRange is returned when an integer input equals or
	// exceeds the modulus.
	ErrMessageOutOfRange = errors.New("message representative out of range")

	// ErrMessageTooLong is returned when a message exceeds the input length
	// bound of the selected hash function.
	ErrMessageTooLong = errors.New("message too long for hash function")

	// ErrEncodingTooShort is returned when the modulus is too small to hold
	// the digest, the salt, the separator and the trailer byte.
	ErrEncodingTooShort = errors.New("encoding too short for hash size")

	// ErrMaskTooLong is returned when a requested mask exceeds 2^32*hLen bytes.
	ErrMaskTooLong = errors.New("mask too long")

	// ErrEncodingInconsistent is returned when the trailer byte or the
	// leading bits of a decoded signature are wrong.
	ErrEncodingInconsistent = errors.New("encoding inconsistent")

	// ErrInvalidPadding is returned when the zero padding or the 0x01
	// separator of the data block is malformed.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrHashMismatch is returned when the recomputed hash differs from the
	// hash embedded in the signature.
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrKeyGenerationFailed is returned when key generation exceeds its
	// attempt cap. It indicates a broken random source.
	ErrKeyGenerationFailed = errors.New("key generation failed")

	// ErrInvalidKeySize is returned when a requested or supplied modulus size
	// is unusable.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidExponent is returned when an exponent is outside its valid range.
	ErrInvalidExponent = errors.New("invalid exponent")

	// ErrUnknownHash is returned when a hash name is not registered.
	ErrUnknownHash = errors.New("unknown hash function")

	// ErrRandomSource is returned when the random source fails or returns
	// fewer bytes than requested.
	ErrRandomSource = errors.New("random source failure")
)
