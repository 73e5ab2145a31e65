package digests

import "fmt"

// Range is an inclusive range of blocks
type Range[N Number] struct {
	Begin N `json:"begin"`
	End   N `json:"end"`
}

// Len returns the number of blocks in the range
func (r Range[N]) Len() N {
	return r.End - r.Begin + 1
}

// Contains reports whether block is inside the range
func (r Range[N]) Contains(block N) bool {
	return r.Begin <= block && block <= r.End
}

func (r Range[N]) String() string {
	return fmt.Sprintf("[%d, %d]", r.Begin, r.End)
}

// NextMaxLevelDigestRange returns the block range of the top level digest that
// covers block. If no completed top level digest covers block, this is the
// range of the next one to be built. It returns false if digests are disabled.
//
// Blocks at or before zero are treated as zero + 1, so they get the first top
// level range. With interval 2 and 2 levels (max interval 4) and zero 7,
//
//	block  5 -> [8, 11]
//	block  9 -> [8, 11]
//	block 11 -> [8, 11]
//	block 12 -> [12, 15]
//
// The end of the range saturates at the largest N, so the final range of the
// number space may be shorter than MaxDigestInterval.
func NextMaxLevelDigestRange[N Number](c Config, zero, block N) (Range[N], bool) {
	if !c.IsDigestBuildEnabled() {
		return Range[N]{}, false
	}

	first := saturatingAdd(zero, 1)
	if block <= zero {
		block = first
	}

	maxInterval := N(c.MaxDigestInterval())
	maxDigestsSinceZero := (block - zero) / maxInterval
	if maxDigestsSinceZero == 0 {
		return Range[N]{Begin: first, End: saturatingAdd(zero, maxInterval)}, true
	}

	// maxDigestsSinceZero * maxInterval <= block - zero, so this can not wrap
	lastMaxDigestBlock := zero + maxDigestsSinceZero*maxInterval
	if block == lastMaxDigestBlock {
		return Range[N]{Begin: block - maxInterval + 1, End: block}, true
	}
	return Range[N]{
		Begin: lastMaxDigestBlock + 1,
		End:   saturatingAdd(lastMaxDigestBlock, maxInterval),
	}, true
}

// PrevMaxLevelDigestBlock returns the most recent block, at or before block,
// at which a top level digest was built. It returns false if there is none
// yet, if digests are disabled, or if block <= zero.
func PrevMaxLevelDigestBlock[N Number](c Config, zero, block N) (N, bool) {
	if block <= zero {
		return 0, false
	}

	next, ok := NextMaxLevelDigestRange(c, zero, block)
	if !ok {
		return 0, false
	}

	// if the covering digest ends at block then block is itself a top level
	// digest. A range truncated by saturation ends at the top of N without
	// being a digest.
	if next.End == block && next.Len() == N(c.MaxDigestInterval()) {
		return block, true
	}

	// a previous digest ending at zero is not a digest
	prevEnd := next.Begin - 1
	if prevEnd == zero {
		return 0, false
	}
	return prevEnd, true
}
