package utils

import "math/bits"

// NextPowerOfTwo returns the smallest power of two greater than or equal to
// n, and 1 when n is 0.
func NextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len64(n-1)
}
