package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/cloudflare/circl/xof"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hash is a fixed-output cryptographic hash function.
type Hash interface {
	// Name returns the canonical name, e.g. "SHA-256".
	Name() string
	// Size returns the digest length hLen in bytes.
	Size() int
	// MaxInputLen returns the largest message length in bytes the function
	// formally accepts. Zero means no bound that a Go slice could reach.
	MaxInputLen() uint64
	// New returns a fresh hash.Hash.
	New() hash.Hash
}

// sha2MaxInput is 2^61-1 bytes, the 2^64-bit message limit of SHA-224/256.
const sha2MaxInput = uint64(1)<<61 - 1

type stdHash struct {
	name     string
	size     int
	maxInput uint64
	newFn    func() hash.Hash
}

func (h stdHash) Name() string        { return h.name }
func (h stdHash) Size() int           { return h.size }
func (h stdHash) MaxInputLen() uint64 { return h.maxInput }
func (h stdHash) New() hash.Hash      { return h.newFn() }

// xofHash turns an extendable-output function into a fixed-size digest by
// squeezing exactly size bytes.
type xofHash struct {
	name      string
	size      int
	blockSize int
	id        xof.ID
}

func (h xofHash) Name() string        { return h.name }
func (h xofHash) Size() int           { return h.size }
func (h xofHash) MaxInputLen() uint64 { return 0 }
func (h xofHash) New() hash.Hash {
	return &xofDigest{x: h.id.New(), size: h.size, blockSize: h.blockSize}
}

type xofDigest struct {
	x         xof.XOF
	size      int
	blockSize int
}

func (d *xofDigest) Write(p []byte) (int, error) { return d.x.Write(p) }
func (d *xofDigest) Reset()                      { d.x.Reset() }
func (d *xofDigest) Size() int                   { return d.size }
func (d *xofDigest) BlockSize() int              { return d.blockSize }

// Sum squeezes a clone so further writes continue the original state.
func (d *xofDigest) Sum(b []byte) []byte {
	out := make([]byte, d.size)
	// Read on an XOF never fails.
	_, _ = d.x.Clone().Read(out)
	return append(b, out...)
}

func blake2bNew(size int) func() hash.Hash {
	return func() hash.Hash {
		// An unkeyed BLAKE2b with a valid size never errors.
		h, _ := blake2b.New(size, nil)
		return h
	}
}

var (
	SHA224 Hash = stdHash{"SHA-224", sha256.Size224, sha2MaxInput, sha256.New224}
	SHA256 Hash = stdHash{"SHA-256", sha256.Size, sha2MaxInput, sha256.New}
	SHA384 Hash = stdHash{"SHA-384", sha512.Size384, 0, sha512.New384}
	SHA512 Hash = stdHash{"SHA-512", sha512.Size, 0, sha512.New}

	SHA3_224 Hash = stdHash{"SHA3-224", 28, 0, sha3.New224}
	SHA3_256 Hash = stdHash{"SHA3-256", 32, 0, sha3.New256}
	SHA3_384 Hash = stdHash{"SHA3-384", 48, 0, sha3.New384}
	SHA3_512 Hash = stdHash{"SHA3-512", 64, 0, sha3.New512}

	BLAKE2b_256 Hash = stdHash{"BLAKE2b-256", blake2b.Size256, 0, blake2bNew(blake2b.Size256)}
	BLAKE2b_384 Hash = stdHash{"BLAKE2b-384", blake2b.Size384, 0, blake2bNew(blake2b.Size384)}
	BLAKE2b_512 Hash = stdHash{"BLAKE2b-512", blake2b.Size, 0, blake2bNew(blake2b.Size)}

	SHAKE256_256 Hash = xofHash{"SHAKE256-256", 32, 136, xof.SHAKE256}
	K12_256      Hash = xofHash{"K12-256", 32, 168, xof.K12D10}
)

var registry = map[string]Hash{}

func init() {
	for _, h := range []Hash{
		SHA224, SHA256, SHA384, SHA512,
		SHA3_224, SHA3_256, SHA3_384, SHA3_512,
		BLAKE2b_256, BLAKE2b_384, BLAKE2b_512,
		SHAKE256_256, K12_256,
	} {
		registry[normalizeHashName(h.Name())] = h
	}
}

// normalizeHashName folds case and drops separators so "sha256", "SHA-256"
// and "sha_256" resolve to the same entry.
func normalizeHashName(name string) string {
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToUpper(name))
}

// LookupHash resolves a hash by name.
func LookupHash(name string) (Hash, error) {
	h, ok := registry[normalizeHashName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHash, name)
	}
	return h, nil
}

// HashNames returns the canonical names of all registered hashes, sorted.
func HashNames() []string {
	names := make([]string, 0, len(registry))
	for _, h := range registry {
		names = append(names, h.Name())
	}
	sort.Strings(names)
	return names
}

// Digest hashes the concatenation of parts.
func Digest(h Hash, parts ...[]byte) []byte {
	d := h.New()
	for _, p := range parts {
		d.Write(p)
	}
	return d.Sum(nil)
}
