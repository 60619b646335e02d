package conv

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/hupe1980/fockspace/binary"
)

// StateToUint32 converts a spin state to uint32 safely.
func StateToUint32(s binary.SpinState) (uint32, error) {
	if uint64(s) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: state %d cannot be converted to uint32 (too large)", uint64(s))
	}
	return uint32(s), nil
}

// Pow2 returns 2^n as int, failing for negative n or when the result does not fit.
func Pow2(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("integer overflow: 2^%d is not an integer (negative exponent)", n)
	}
	if n >= bits.UintSize-1 {
		return 0, fmt.Errorf("integer overflow: 2^%d cannot be represented as int", n)
	}
	return 1 << uint(n), nil
}

// MulInt multiplies two non-negative ints, failing on overflow.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d * %d (negative operand)", a, b)
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, fmt.Errorf("integer overflow: %d * %d cannot be represented as int", a, b)
	}
	return int(lo), nil
}
