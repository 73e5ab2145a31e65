package digests

import "iter"

// Builds yields, in ascending order, every block in [from, to] at which a
// digest must be built, together with the digest level due there.
//
// Only multiples of DigestInterval past zero are visited, so the cost is
// proportional to the number of digests, not the number of blocks. Nothing is
// yielded if digests are disabled or to < from. Iteration stops at the top of
// N rather than wrapping.
func Builds[N Number](c Config, zero, from, to N) iter.Seq2[N, Level] {
	return func(yield func(N, Level) bool) {
		if !c.IsDigestBuildEnabled() || to < from || to <= zero {
			return
		}

		block, ok := firstBuildAtOrAfter(c, zero, from)
		if !ok {
			return
		}

		interval := N(c.DigestInterval)
		for block <= to {
			level, _ := DigestLevelAtBlock(c, zero, block)
			if !yield(block, level) {
				return
			}
			if block, ok = checkedAdd(block, interval); !ok {
				return
			}
		}
	}
}

// firstBuildAtOrAfter returns the first block >= from, and > zero, that is a
// digest block.
func firstBuildAtOrAfter[N Number](c Config, zero, from N) (N, bool) {
	interval := N(c.DigestInterval)
	if from <= zero {
		return checkedAdd(zero, interval)
	}

	relative := from - zero
	count := relative / interval
	if relative%interval != 0 {
		count++
	}
	offset, ok := checkedMul(count, interval)
	if !ok {
		return 0, false
	}
	return checkedAdd(zero, offset)
}
