package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// randReader is the random source used when a caller passes a nil reader.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// reader resolves the random source for a single call.
func reader(r io.Reader) io.Reader {
	if r != nil {
		return r
	}
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// RandomBytes reads exactly n bytes from r.
func RandomBytes(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(reader(r), buf); err != nil {
		return nil, fmt.Errorf("%w: read %d bytes: %v", ErrRandomSource, n, err)
	}
	return buf, nil
}

// RandomBelow returns a uniformly distributed integer in [0, bound).
func RandomBelow(r io.Reader, bound *big.Int) (*big.Int, error) {
	if bound.Sign() <= 0 {
		return nil, fmt.Errorf("%w: bound must be positive", ErrRandomSource)
	}
	v, err := rand.Int(reader(r), bound)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return v, nil
}

// randomOddWithTopBit draws a bits-long integer with the top and bottom bits set.
func randomOddWithTopBit(r io.Reader, bits int) (*big.Int, error) {
	buf, err := RandomBytes(r, (bits+7)/8)
	if err != nil {
		return nil, err
	}
	// Drop excess high bits so the value fits in exactly bits bits.
	if excess := len(buf)*8 - bits; excess > 0 {
		buf[0] &= byte(0xff >> excess)
	}
	v := new(big.Int).SetBytes(buf)
	v.SetBit(v, bits-1, 1)
	v.SetBit(v, 0, 1)
	return v, nil
}
