package rsapss

import (
	"errors"
	"math/big"
	"time"

	"github.com/vaultsandbox/rsapss/internal/crypto"
)

// ExportVersion is the current export format version.
const ExportVersion = 1

// ExportedKey is the JSON document form of a key.
// WARNING: when D is set this contains private key material - handle securely.
//
// Integers are big-endian, zero-padded to the modulus byte length and
// encoded as base64url without padding.
type ExportedKey struct {
	// Version is the export format version. MUST be 1.
	Version int `json:"version"`
	// Bits is the modulus bit length K.
	Bits int `json:"bits"`
	// Hash is the canonical name of the hash the key is used with.
	Hash string `json:"hash"`
	// N is the modulus.
	N string `json:"n"`
	// E is the public exponent.
	E string `json:"e"`
	// D is the private exponent. Only set for private keys.
	D string `json:"d,omitempty"`
	// ExportedAt is the export timestamp (ISO 8601). Informational only.
	ExportedAt time.Time `json:"exportedAt"`
}

// Export returns the public key as a document tagged with h.
func (k *PublicKey) Export(h Hash) *ExportedKey {
	return &ExportedKey{
		Version:    ExportVersion,
		Bits:       k.Bits(),
		Hash:       h.Name(),
		N:          crypto.IntToBase64URL(k.N, k.Size()),
		E:          crypto.IntToBase64URL(k.E, k.exponentSize()),
		ExportedAt: time.Now().UTC(),
	}
}

// Export returns the private key as a document tagged with h.
func (k *PrivateKey) Export(h Hash) *ExportedKey {
	exported := k.PublicKey.Export(h)
	exported.D = crypto.IntToBase64URL(k.D, k.Size())
	return exported
}

// IsPrivate reports whether the document carries a private exponent.
func (e *ExportedKey) IsPrivate() bool {
	return e.D != ""
}

// Validate checks the document in a fixed order: version, hash, modulus,
// public exponent and, when present, private exponent. It does not check
// that d inverts e; ImportPrivateKey does.
func (e *ExportedKey) Validate() error {
	_, err := e.decode()
	return err
}

type decodedKey struct {
	hash    Hash
	n, e, d *big.Int
}

func (e *ExportedKey) decode() (*decodedKey, error) {
	// Step 1: version
	if e.Version != ExportVersion {
		return nil, &ImportError{Field: "version", Err: errors.New("unsupported version")}
	}

	// Step 2: hash name
	h, err := LookupHash(e.Hash)
	if err != nil {
		return nil, &ImportError{Field: "hash", Err: err}
	}

	// Step 3: modulus, whose width fixes the width of every other integer
	if e.N == "" {
		return nil, &ImportError{Field: "n", Err: errors.New("required")}
	}
	n, size, err := crypto.IntFromBase64URL(e.N)
	if err != nil {
		return nil, &ImportError{Field: "n", Err: err}
	}
	if n.BitLen() != e.Bits {
		return nil, &ImportError{Field: "bits", Err: errors.New("does not match modulus")}
	}
	if size != crypto.ByteLen(n) {
		return nil, &ImportError{Field: "n", Err: errors.New("not minimally padded")}
	}

	// Step 4: public exponent
	pub, err := decodeFixedWidth(e.E, "e", max(size, exponentWidth(e.E)))
	if err != nil {
		return nil, err
	}
	if err := crypto.ValidatePublic(n, pub); err != nil {
		return nil, &ImportError{Field: "n", Err: err}
	}
	if err := crypto.CheckEncodingLength(h, n.BitLen()-1); err != nil {
		return nil, &ImportError{Field: "bits", Err: err}
	}

	// Step 5: private exponent, optional
	out := &decodedKey{hash: h, n: n, e: pub}
	if e.D != "" {
		if out.d, err = decodeFixedWidth(e.D, "d", size); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// exponentWidth returns the minimal byte width of an encoded exponent, or 0
// when it does not decode.
func exponentWidth(s string) int {
	v, _, err := crypto.IntFromBase64URL(s)
	if err != nil {
		return 0
	}
	return crypto.ByteLen(v)
}

func decodeFixedWidth(s, field string, size int) (*big.Int, error) {
	if s == "" {
		return nil, &ImportError{Field: field, Err: errors.New("required")}
	}
	v, width, err := crypto.IntFromBase64URL(s)
	if err != nil {
		return nil, &ImportError{Field: field, Err: err}
	}
	if width != size {
		return nil, &ImportError{Field: field, Err: errors.New("width does not match modulus")}
	}
	return v, nil
}

// ImportPublicKey rebuilds a public key and its hash from a document. A
// private document is accepted and its private exponent ignored.
func ImportPublicKey(data *ExportedKey) (*PublicKey, Hash, error) {
	dk, err := data.decode()
	if err != nil {
		return nil, nil, err
	}
	return &PublicKey{N: dk.n, E: dk.e}, dk.hash, nil
}

// ImportPrivateKey rebuilds a private key and its hash from a document.
func ImportPrivateKey(data *ExportedKey) (*PrivateKey, Hash, error) {
	dk, err := data.decode()
	if err != nil {
		return nil, nil, err
	}
	if dk.d == nil {
		return nil, nil, &ImportError{Field: "d", Err: errors.New("required for a private key")}
	}
	key, err := NewPrivateKey(dk.n, dk.e, dk.d)
	if err != nil {
		return nil, nil, &ImportError{Field: "d", Err: err}
	}
	return key, dk.hash, nil
}
