package rsapss

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vaultsandbox/rsapss/internal/crypto"
)

var errNilKey = fmt.Errorf("%w: nil key", crypto.ErrInvalidKeySize)

// Signer produces RSASSA-PSS signatures with one key and one hash. The salt
// length equals the digest length and MGF1 uses the same hash.
//
// A Signer is immutable and safe for concurrent use when its random source is.
type Signer struct {
	key    *PrivateKey
	hash   Hash
	random io.Reader
	logger *slog.Logger
}

// NewSigner returns a Signer for key. It fails with ErrEncodingTooShort when
// the modulus is too small for the selected hash.
//
// Relevant options: WithHash, WithRandom, WithLogger.
func NewSigner(key *PrivateKey, opts ...Option) (*Signer, error) {
	if key == nil {
		return nil, wrapSignError(errNilKey)
	}
	cfg := newConfig(opts)
	if err := crypto.ValidatePublic(key.N, key.E); err != nil {
		return nil, wrapSignError(err)
	}
	if err := crypto.CheckEncodingLength(cfg.hash, key.Bits()-1); err != nil {
		return nil, wrapSignError(err)
	}
	return &Signer{key: key, hash: cfg.hash, random: cfg.random, logger: cfg.logger}, nil
}

// Hash returns the hash the Signer was built with.
func (s *Signer) Hash() Hash {
	return s.hash
}

// Public returns the public key matching the Signer's key.
func (s *Signer) Public() *PublicKey {
	return s.key.Public()
}

// Sign signs message. Every call draws a fresh salt, so signing the same
// message twice yields different signatures. The result is exactly
// Size() bytes long.
func (s *Signer) Sign(message []byte) ([]byte, error) {
	sig, err := crypto.SignPSS(s.hash, s.key.N, s.key.D, message, s.random)
	if err != nil {
		s.logger.LogAttrs(context.Background(), slog.LevelDebug, "sign failed",
			slog.String("hash", s.hash.Name()),
			slog.String("stage", stageOf(err)))
		return nil, wrapSignError(err)
	}
	return sig, nil
}

// Verifier checks RSASSA-PSS signatures for one public key and one hash.
//
// A Verifier is immutable and safe for concurrent use.
type Verifier struct {
	key    *PublicKey
	hash   Hash
	logger *slog.Logger
}

// NewVerifier returns a Verifier for key. It fails with ErrEncodingTooShort
// when the modulus is too small for the selected hash.
//
// Relevant options: WithHash, WithLogger.
func NewVerifier(key *PublicKey, opts ...Option) (*Verifier, error) {
	if key == nil {
		return nil, wrapVerifyError(errNilKey)
	}
	cfg := newConfig(opts)
	if err := crypto.ValidatePublic(key.N, key.E); err != nil {
		return nil, wrapVerifyError(err)
	}
	if err := crypto.CheckEncodingLength(cfg.hash, key.Bits()-1); err != nil {
		return nil, wrapVerifyError(err)
	}
	return &Verifier{key: key, hash: cfg.hash, logger: cfg.logger}, nil
}

// Hash returns the hash the Verifier was built with.
func (v *Verifier) Hash() Hash {
	return v.hash
}

// Verify reports whether signature is a valid signature of message.
// A nil error means the signature verifies. Otherwise the error is a
// *VerificationError whose cause is one of ErrMessageOutOfRange,
// ErrMessageTooLong, ErrEncodingInconsistent, ErrInvalidPadding or
// ErrHashMismatch.
func (v *Verifier) Verify(message, signature []byte) error {
	err := crypto.VerifyPSSSignature(v.hash, v.key.N, v.key.E, message, signature)
	if err != nil {
		v.logger.LogAttrs(context.Background(), slog.LevelDebug, "signature rejected",
			slog.String("hash", v.hash.Name()),
			slog.String("stage", stageOf(err)))
		return wrapVerifyError(err)
	}
	return nil
}

// Sign signs message with key using a one-off Signer.
func Sign(key *PrivateKey, message []byte, opts ...Option) ([]byte, error) {
	s, err := NewSigner(key, opts...)
	if err != nil {
		return nil, err
	}
	return s.Sign(message)
}

// Verify checks signature against message and key using a one-off Verifier.
func Verify(key *PublicKey, message, signature []byte, opts ...Option) error {
	v, err := NewVerifier(key, opts...)
	if err != nil {
		return err
	}
	return v.Verify(message, signature)
}
