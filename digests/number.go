package digests

// Number is the set of block number representations the schedule works over.
//
// Everything the schedule needs (+, -, *, /, %, ordering, the zero value and
// conversion from a uint32 constant) is available on all of them. The
// overflow checks assume unsigned wrap around.
type Number interface {
	~uint | ~uint32 | ~uint64
}

// maxNumber returns the largest value representable by N
func maxNumber[N Number]() N {
	return ^N(0)
}
