package crypto

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"
)

// ToBase64URL encodes bytes to URL-safe base64 without padding.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64, with or without padding.
func FromBase64URL(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}

// IntToBase64URL encodes x as a size-byte big-endian value in URL-safe base64.
// x must fit in size bytes.
func IntToBase64URL(x *big.Int, size int) string {
	return ToBase64URL(x.FillBytes(make([]byte, size)))
}

// IntFromBase64URL decodes a big-endian integer and returns it together with
// its encoded width in bytes.
func IntFromBase64URL(s string) (*big.Int, int, error) {
	raw, err := FromBase64URL(s)
	if err != nil {
		return nil, 0, fmt.Errorf("decode integer: %w", err)
	}
	return new(big.Int).SetBytes(raw), len(raw), nil
}
