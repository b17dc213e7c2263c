package crypto

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/safenum"
)

// Transform computes x^k mod n. It never reduces x silently: x must lie in
// [0, n), otherwise ErrMessageOutOfRange is returned.
func Transform(x, k, n *big.Int) (*big.Int, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrInvalidKeySize)
	}
	if k == nil || k.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative exponent", ErrInvalidExponent)
	}
	if x.Sign() < 0 || x.Cmp(n) >= 0 {
		return nil, ErrMessageOutOfRange
	}

	out := make([]byte, ByteLen(n))
	modulus := safenum.ModulusFromBytes(n.Bytes())
	base := new(safenum.Nat).SetBytes(x.Bytes())
	exp := new(safenum.Nat).SetBytes(k.Bytes())
	new(safenum.Nat).Exp(base, exp, modulus).FillBytes(out)

	return new(big.Int).SetBytes(out), nil
}

// TransformBytes applies Transform to a big-endian operand and returns the
// result left-padded to the byte length of n.
func TransformBytes(x []byte, k, n *big.Int) ([]byte, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrInvalidKeySize)
	}
	if len(x) > ByteLen(n) {
		return nil, ErrMessageOutOfRange
	}
	r, err := Transform(new(big.Int).SetBytes(x), k, n)
	if err != nil {
		return nil, err
	}
	return r.FillBytes(make([]byte, ByteLen(n))), nil
}

// ByteLen returns ceil(bitlen(n)/8).
func ByteLen(n *big.Int) int {
	return (n.BitLen() + 7) / 8
}
