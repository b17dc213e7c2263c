package crypto

import (
	"fmt"
	"math/big"
)

// Bits returns the modulus bit length K.
func (k *RawKey) Bits() int {
	return k.N.BitLen()
}

// Size returns the modulus byte length ceil(K/8), which is also the
// signature length.
func (k *RawKey) Size() int {
	return ByteLen(k.N)
}

// ValidatePublic checks that (n, e) can be used for verification.
func ValidatePublic(n, e *big.Int) error {
	if n == nil || n.BitLen() < MinKeyBits {
		return fmt.Errorf("%w: modulus must have at least %d bits", ErrInvalidKeySize, MinKeyBits)
	}
	if n.Bit(0) == 0 {
		return fmt.Errorf("%w: modulus must be odd", ErrInvalidKeySize)
	}
	if e == nil || e.Cmp(bigOne) <= 0 {
		return fmt.Errorf("%w: public exponent must be greater than one", ErrInvalidExponent)
	}
	return nil
}

// ValidatePrivate checks (n, e, d) structurally and that the pair
// round-trips a fixed probe value, which catches mismatched exponents
// without knowing p and q.
func ValidatePrivate(n, e, d *big.Int) error {
	if err := ValidatePublic(n, e); err != nil {
		return err
	}
	if d == nil || d.Sign() <= 0 || d.Cmp(n) >= 0 {
		return fmt.Errorf("%w: private exponent must lie in (0, n)", ErrInvalidExponent)
	}

	probe := big.NewInt(2)
	s, err := Transform(probe, d, n)
	if err != nil {
		return err
	}
	back, err := Transform(s, e, n)
	if err != nil {
		return err
	}
	if back.Cmp(probe) != 0 {
		return fmt.Errorf("%w: e and d are not inverse for n", ErrInvalidExponent)
	}
	return nil
}
