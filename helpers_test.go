package rsapss

import (
	"math/big"
	"testing"
)

// A fixed 1024-bit key with e = 65537, so tests do not pay for prime search.
const (
	testN = "a91e5e3705ce5a3769a0dfa2a2cd9c41aeafc2db4cab6a1c8d2d7de903a7bacd812a9ce3712af7a1de51901f1630c8fd5c1ff1fe7dd5a6f58a8580a5ef14e595dd514c1d1fa117ea7620b9a56597f64954f0ce42b84bb65873ddb7432cfc87b1a5008e981934a4a119a10584a1b7185f82d8e19298e06b9f2427a5e646eaf4ff"
	testD = "2c6379a424847c7e75dd91453d490d5dda0d6cee258a0a607317c128135b0777601340b99bdf04bf3a3c9b40e590a97882a129e1bbc283bf87fbb1801c28167819911d87c7e435e92cc604c9df758341be6a42956910d8616c302dfb262e6c82e19980b55f354afe58a8ab255464e2ce379a79d8ec741b6086e1c55870bfb9f1"
)

func hexInt(t testing.TB, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		t.Fatalf("invalid hex integer %q", s)
	}
	return v
}

func testKey(t testing.TB) *PrivateKey {
	t.Helper()
	key, err := NewPrivateKey(hexInt(t, testN), big.NewInt(FixedPublicExponent), hexInt(t, testD))
	if err != nil {
		t.Fatalf("NewPrivateKey() error = %v", err)
	}
	return key
}

// zeroReader is a broken random source that only yields zero bytes.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
