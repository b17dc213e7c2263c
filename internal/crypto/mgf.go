package crypto

import (
	"encoding/binary"
	"fmt"
)

// MGF1 expands seed into a mask of exactly maskLen bytes:
//
//	T = Hash(seed || BE32(0)) || Hash(seed || BE32(1)) || ...
//
// truncated to maskLen. It is deterministic in seed and maskLen.
func MGF1(h Hash, seed []byte, maskLen int) ([]byte, error) {
	hLen := h.Size()
	if maskLen < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrMaskTooLong, maskLen)
	}
	if uint64(maskLen) > maxMGFCounter*uint64(hLen) {
		return nil, fmt.Errorf("%w: %d bytes exceeds 2^32*%d", ErrMaskTooLong, maskLen, hLen)
	}

	count := (maskLen + hLen - 1) / hLen
	mask := make([]byte, 0, count*hLen)

	var counter [CounterSize]byte
	d := h.New()
	for i := 0; i < count; i++ {
		binary.BigEndian.PutUint32(counter[:], uint32(i))
		d.Reset()
		d.Write(seed)
		d.Write(counter[:])
		mask = d.Sum(mask)
	}
	return mask[:maskLen], nil
}

// xorInto sets dst[i] ^= mask[i] for every byte of dst.
func xorInto(dst, mask []byte) {
	for i := range dst {
		dst[i] ^= mask[i]
	}
}
