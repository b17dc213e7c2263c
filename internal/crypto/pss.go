package crypto

import (
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"
)

// EncodedLen returns emLen = ceil(emBits/8).
func EncodedLen(emBits int) int {
	return (emBits + 7) / 8
}

// CheckEncodingLength reports ErrEncodingTooShort when an emBits-bit encoded
// message cannot hold hLen digest bytes, hLen salt bytes, the 0x01 separator
// and the trailer byte, i.e. when emLen < 2*hLen + 2.
func CheckEncodingLength(h Hash, emBits int) error {
	if emLen, need := EncodedLen(emBits), 2*h.Size()+2; emBits <= 0 || emLen < need {
		return fmt.Errorf("%w: %s needs %d bytes, have %d", ErrEncodingTooShort, h.Name(), need, EncodedLen(emBits))
	}
	return nil
}

// CheckMessageLength reports ErrMessageTooLong when message exceeds the
// formal input bound of h.
func CheckMessageLength(h Hash, message []byte) error {
	if limit := h.MaxInputLen(); limit != 0 && uint64(len(message)) > limit {
		return fmt.Errorf("%w: %d bytes exceeds %s limit", ErrMessageTooLong, len(message), h.Name())
	}
	return nil
}

// EncodePSS builds the emLen-byte encoded message for message, drawing a
// fresh hLen-byte salt from r:
//
//	EM = maskedDB || H || 0xbc
//
// where H = Hash(0x00*8 || Hash(message) || salt) and
// maskedDB = (0x00...0x00 || 0x01 || salt) XOR MGF1(H).
func EncodePSS(h Hash, message []byte, emBits int, r io.Reader) ([]byte, error) {
	if err := CheckMessageLength(h, message); err != nil {
		return nil, err
	}
	if err := CheckEncodingLength(h, emBits); err != nil {
		return nil, err
	}

	mHash := Digest(h, message)
	salt, err := RandomBytes(r, h.Size())
	if err != nil {
		return nil, err
	}
	return encodeWithSalt(h, mHash, salt, emBits)
}

func encodeWithSalt(h Hash, mHash, salt []byte, emBits int) ([]byte, error) {
	hLen := h.Size()
	emLen := EncodedLen(emBits)
	dbLen := emLen - hLen - 1

	var prefix [PrefixZeros]byte
	H := Digest(h, prefix[:], mHash, salt)

	em := make([]byte, emLen)
	db := em[:dbLen]
	db[dbLen-hLen-1] = SeparatorByte
	copy(db[dbLen-hLen:], salt)

	mask, err := MGF1(h, H, dbLen)
	if err != nil {
		return nil, err
	}
	xorInto(db, mask)
	db[0] &= topMask(emLen, emBits)

	copy(em[dbLen:], H)
	em[emLen-1] = TrailerByte
	return em, nil
}

// VerifyPSS checks that em is a valid encoding of message. The checks run in
// order and each failure has its own sentinel error.
func VerifyPSS(h Hash, message, em []byte, emBits int) error {
	if err := CheckMessageLength(h, message); err != nil {
		return err
	}
	if err := CheckEncodingLength(h, emBits); err != nil {
		return err
	}

	hLen := h.Size()
	emLen := EncodedLen(emBits)
	if len(em) != emLen {
		return fmt.Errorf("%w: encoded length %d, want %d", ErrEncodingInconsistent, len(em), emLen)
	}

	if em[emLen-1] != TrailerByte {
		return fmt.Errorf("%w: trailer byte 0x%02x", ErrEncodingInconsistent, em[emLen-1])
	}
	if em[0]&^topMask(emLen, emBits) != 0 {
		return fmt.Errorf("%w: leading bits set", ErrEncodingInconsistent)
	}

	dbLen := emLen - hLen - 1
	db := make([]byte, dbLen)
	copy(db, em[:dbLen])
	H := em[dbLen : emLen-1]

	mask, err := MGF1(h, H, dbLen)
	if err != nil {
		return err
	}
	xorInto(db, mask)
	db[0] &= topMask(emLen, emBits)

	// The whole region before the separator must be zero, not just its low bits.
	sep := dbLen - hLen - 1
	var nonzero byte
	for _, b := range db[:sep] {
		nonzero |= b
	}
	if nonzero != 0 || db[sep] != SeparatorByte {
		return ErrInvalidPadding
	}
	salt := db[sep+1:]

	var prefix [PrefixZeros]byte
	expected := Digest(h, prefix[:], Digest(h, message), salt)
	if subtle.ConstantTimeCompare(H, expected) != 1 {
		return ErrHashMismatch
	}
	return nil
}

// topMask keeps the low bits of the first EM byte that lie below emBits.
func topMask(emLen, emBits int) byte {
	return byte(0xff >> (8*emLen - emBits))
}

// SignPSS encodes message for the modulus n and applies the private exponent d.
// The signature is ByteLen(n) bytes long.
func SignPSS(h Hash, n, d *big.Int, message []byte, r io.Reader) ([]byte, error) {
	emBits := n.BitLen() - 1
	em, err := EncodePSS(h, message, emBits, r)
	if err != nil {
		return nil, err
	}
	return TransformBytes(em, d, n)
}

// VerifyPSSSignature applies the public exponent e to signature and verifies
// the recovered encoding against message.
func VerifyPSSSignature(h Hash, n, e *big.Int, message, signature []byte) error {
	k := ByteLen(n)
	if len(signature) != k {
		return fmt.Errorf("%w: signature is %d bytes, want %d", ErrMessageOutOfRange, len(signature), k)
	}
	m, err := TransformBytes(signature, e, n)
	if err != nil {
		return err
	}

	emBits := n.BitLen() - 1
	emLen := EncodedLen(emBits)
	// When K ≡ 1 (mod 8) the encoding is one byte shorter than the modulus.
	for _, b := range m[:k-emLen] {
		if b != 0 {
			return fmt.Errorf("%w: leading byte set", ErrEncodingInconsistent)
		}
	}
	return VerifyPSS(h, message, m[k-emLen:], emBits)
}
