package crypto

import (
	"encoding/hex"
	"io"
	"math/big"
	"testing"
)

// Known-answer material: two 512-bit primes, e = 65537, SHA-256 and the
// salt 0x01..0x20 signing "abc".
const (
	katP   = "dac3b4d888fd4e85f86d24e61cfafa8485a3af06b051cfd99da27f92a6e4c095d279c69e1c0144f8e5a5b4628daa7a7d600f5501e481265aec3cbb38246deb31"
	katQ   = "c5e76d5c4e038185038946de7d07e35d803933b016ea10f7459668357380ef216301bc32ee325db862aaeae411f2996ac5d42d0586f16ef15598a0e008b9772f"
	katN   = "a91e5e3705ce5a3769a0dfa2a2cd9c41aeafc2db4cab6a1c8d2d7de903a7bacd812a9ce3712af7a1de51901f1630c8fd5c1ff1fe7dd5a6f58a8580a5ef14e595dd514c1d1fa117ea7620b9a56597f64954f0ce42b84bb65873ddb7432cfc87b1a5008e981934a4a119a10584a1b7185f82d8e19298e06b9f2427a5e646eaf4ff"
	katD   = "2c6379a424847c7e75dd91453d490d5dda0d6cee258a0a607317c128135b0777601340b99bdf04bf3a3c9b40e590a97882a129e1bbc283bf87fbb1801c28167819911d87c7e435e92cc604c9df758341be6a42956910d8616c302dfb262e6c82e19980b55f354afe58a8ab255464e2ce379a79d8ec741b6086e1c55870bfb9f1"
	katSig = "368eda3458a2e54e215bc3bcb7c3bdfab8bbbfca18e77c1c1a3b28fcb462f3ce3e2f74605abeec54ddaa20d32076e64c1446c06af05a30163fe4f86ed4a36aad9617053586934edd44862be2cb8ed5d5b7522a6ff573a450b9f95acada8241aa6d7f64c24d62c61404423afa103da8fb2c34f14d9eb58754c7e511d6990a031c"
)

func katSalt() []byte {
	salt := make([]byte, 32)
	for i := range salt {
		salt[i] = byte(i + 1)
	}
	return salt
}

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex.DecodeString(%q) error = %v", s, err)
	}
	return b
}

func mustInt(t testing.TB, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		t.Fatalf("invalid hex integer %q", s)
	}
	return v
}

func katKey(t testing.TB) *RawKey {
	t.Helper()
	key, err := KeyFromPrimes(mustInt(t, katP), mustInt(t, katQ), big.NewInt(FixedPublicExponent))
	if err != nil {
		t.Fatalf("KeyFromPrimes() error = %v", err)
	}
	return key
}

// zeroReader is a broken random source that only ever yields zero bytes.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// limitedHash wraps a real hash with a small formal input bound so the
// message length limit can be reached in tests.
type limitedHash struct {
	Hash
	max uint64
}

func (h limitedHash) MaxInputLen() uint64 { return h.max }

// shortReader yields n bytes and then fails.
type shortReader struct {
	n int
}

func (r *shortReader) Read(p []byte) (int, error) {
	if r.n == 0 {
		return 0, io.ErrUnexpectedEOF
	}
	k := min(len(p), r.n)
	for i := range p[:k] {
		p[i] = 0xa5
	}
	r.n -= k
	return k, nil
}
