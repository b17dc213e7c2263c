package rsapss

import (
	"errors"
	"fmt"

	"github.com/vaultsandbox/rsapss/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMessageOutOfRange is returned when an integer input equals or exceeds
	// the modulus, including signatures of the wrong length.
	ErrMessageOutOfRange = crypto.ErrMessageOutOfRange

	// ErrMessageTooLong is returned when a message exceeds the formal input
	// bound of the selected hash.
	ErrMessageTooLong = crypto.ErrMessageTooLong

	// ErrEncodingTooShort is returned when the modulus cannot hold the digest,
	// salt, separator and trailer for the selected hash.
	ErrEncodingTooShort = crypto.ErrEncodingTooShort

	// ErrMaskTooLong is returned when a mask exceeds the MGF1 counter range.
	ErrMaskTooLong = crypto.ErrMaskTooLong

	// ErrEncodingInconsistent is returned when the trailer byte or the
	// leading bits of a recovered encoding are wrong.
	ErrEncodingInconsistent = crypto.ErrEncodingInconsistent

	// ErrInvalidPadding is returned when the zero region or the 0x01
	// separator of the data block is malformed.
	ErrInvalidPadding = crypto.ErrInvalidPadding

	// ErrHashMismatch is returned when a signature does not verify.
	ErrHashMismatch = crypto.ErrHashMismatch

	// ErrKeyGenerationFailed is returned when key generation hits its attempt
	// cap, which indicates a broken random source.
	ErrKeyGenerationFailed = crypto.ErrKeyGenerationFailed

	// ErrInvalidKeySize is returned when a key size is unusable.
	ErrInvalidKeySize = crypto.ErrInvalidKeySize

	// ErrInvalidExponent is returned when an exponent is out of range or does
	// not match its counterpart.
	ErrInvalidExponent = crypto.ErrInvalidExponent

	// ErrUnknownHash is returned when a hash name is not registered.
	ErrUnknownHash = crypto.ErrUnknownHash

	// ErrRandomSource is returned when the random source fails.
	ErrRandomSource = crypto.ErrRandomSource

	// ErrInvalidImportData is returned when exported key data is invalid.
	ErrInvalidImportData = errors.New("invalid import data")
)

// Error is implemented by all typed errors of this package.
type Error interface {
	error
	RSAPSSError() // marker method
}

// Verification and signing stages reported by VerificationError and SigningError.
const (
	StageSetup    = "setup"
	StageMessage  = "message"
	StageRandom   = "random"
	StageCipher   = "cipher"
	StageEncoding = "encoding"
	StageMask     = "mask"
	StagePadding  = "padding"
	StageHash     = "hash"
)

// VerificationError reports why a signature was rejected.
type VerificationError struct {
	Stage string
	Err   error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *VerificationError) Unwrap() error {
	return e.Err
}

// RSAPSSError implements the Error interface.
func (e *VerificationError) RSAPSSError() {}

// SigningError reports why a message could not be signed.
type SigningError struct {
	Stage string
	Err   error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signing failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *SigningError) Unwrap() error {
	return e.Err
}

// RSAPSSError implements the Error interface.
func (e *SigningError) RSAPSSError() {}

// KeyGenerationError reports a key generation run that gave up.
type KeyGenerationError struct {
	Bits     int
	Attempts int // zero unless an attempt cap was hit
	Err      error
}

func (e *KeyGenerationError) Error() string {
	if e.Attempts > 0 {
		return fmt.Sprintf("generating %d-bit key: gave up after %d attempts: %v", e.Bits, e.Attempts, e.Err)
	}
	return fmt.Sprintf("generating %d-bit key: %v", e.Bits, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyGenerationError) Unwrap() error {
	return e.Err
}

// RSAPSSError implements the Error interface.
func (e *KeyGenerationError) RSAPSSError() {}

// ImportError reports an exported key document that failed validation.
type ImportError struct {
	Field string
	Err   error
}

func (e *ImportError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %v", ErrInvalidImportData, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrInvalidImportData, e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *ImportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ImportError) Is(target error) bool {
	return target == ErrInvalidImportData
}

// RSAPSSError implements the Error interface.
func (e *ImportError) RSAPSSError() {}

// stageOf maps an internal sentinel to the stage that produced it.
func stageOf(err error) string {
	switch {
	case errors.Is(err, ErrEncodingTooShort), errors.Is(err, ErrInvalidKeySize), errors.Is(err, ErrInvalidExponent):
		return StageSetup
	case errors.Is(err, ErrMessageTooLong):
		return StageMessage
	case errors.Is(err, ErrRandomSource):
		return StageRandom
	case errors.Is(err, ErrMessageOutOfRange):
		return StageCipher
	case errors.Is(err, ErrEncodingInconsistent):
		return StageEncoding
	case errors.Is(err, ErrMaskTooLong):
		return StageMask
	case errors.Is(err, ErrInvalidPadding):
		return StagePadding
	case errors.Is(err, ErrHashMismatch):
		return StageHash
	}
	return "unknown"
}

// wrapVerifyError converts internal errors to a *VerificationError.
func wrapVerifyError(err error) error {
	if err == nil {
		return nil
	}
	return &VerificationError{Stage: stageOf(err), Err: err}
}

// wrapSignError converts internal errors to a *SigningError.
func wrapSignError(err error) error {
	if err == nil {
		return nil
	}
	return &SigningError{Stage: stageOf(err), Err: err}
}

// wrapKeyGenError converts internal key generation errors to a
// *KeyGenerationError, carrying the attempt count when a cap was hit.
func wrapKeyGenError(bits int, err error) error {
	if err == nil {
		return nil
	}
	kgErr := &KeyGenerationError{Bits: bits, Err: err}
	var attemptsErr *crypto.AttemptsError
	if errors.As(err, &attemptsErr) {
		kgErr.Attempts = attemptsErr.Attempts
	}
	return kgErr
}
