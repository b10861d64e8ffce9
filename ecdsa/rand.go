package ecdsa

import (
	"fmt"
	"io"
	"math/big"
)

// randomScalar draws a uniform integer from [1, max) off r, by
// rejection sampling rather than taking a wide read mod max: the latter
// biases small values whenever max isn't a power of two. This is the
// same strategy gtank-dleq's randScalar uses for EC scalars — mask the
// high byte down to max's bit length, then reject draws >= max.
func randomScalar(r io.Reader, max *big.Int) (*big.Int, error) {
	if max.Sign() <= 0 {
		return nil, fmt.Errorf("ecdsa: randomScalar: max must be positive, got %s", max)
	}

	bitLen := max.BitLen()
	byteLen := (bitLen + 7) / 8
	buf := make([]byte, byteLen)
	highByteMask := byte(0xff)
	if m := bitLen % 8; m != 0 {
		highByteMask = 1<<uint(m) - 1
	}

	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("ecdsa: randomScalar: reading random bytes: %w", err)
		}
		buf[0] &= highByteMask

		v := new(big.Int).SetBytes(buf)
		if v.Sign() == 0 || v.Cmp(max) >= 0 {
			continue
		}
		return v, nil
	}
}
