package combin

import "math/bits"

// Binomial returns the number of k-combinations of n items. It returns 0
// when k < 0 or k > n.
//
// Each step multiplies into 128 bits and divides back, so the running value
// C(n-k+i, i) is always exact. A result that does not fit in uint64 panics
// with an integer overflow rather than wrapping.
func Binomial(n, k int) uint64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)

	var c uint64 = 1
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(c, uint64(n-k+i))
		c, _ = bits.Div64(hi, lo, uint64(i))
	}
	return c
}
