package digests

import "math/bits"

// checkedMul32 returns a * b and true, or false if the product does not fit in
// 32 bits.
func checkedMul32(a, b uint32) (uint32, bool) {
	hi, lo := bits.Mul32(a, b)
	return lo, hi == 0
}

// fittingPow32 returns the largest power base^k with k <= exp that fits in 32
// bits, along with k.
//
// For base > 1 the loop runs at most 32 times regardless of exp, because
// 2^32 already overflows.
func fittingPow32(base, exp uint32) (uint32, uint32) {
	if base <= 1 {
		// 0^0 and 1^k are 1, 0^k is 0. Neither can overflow.
		if base == 0 && exp > 0 {
			return 0, exp
		}
		return 1, exp
	}

	pow := uint32(1)
	k := uint32(0)
	for k < exp {
		next, ok := checkedMul32(pow, base)
		if !ok {
			break
		}
		pow = next
		k++
	}
	return pow, k
}

// checkedAdd returns a + b and true, or false if the sum wraps.
func checkedAdd[N Number](a, b N) (N, bool) {
	sum := a + b
	return sum, sum >= a
}

// saturatingAdd returns a + b, or the largest N if the sum would wrap.
func saturatingAdd[N Number](a, b N) N {
	sum, ok := checkedAdd(a, b)
	if !ok {
		return maxNumber[N]()
	}
	return sum
}

// checkedMul returns a * b and true, or false if the product wraps.
func checkedMul[N Number](a, b N) (N, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	return product, product/a == b
}
