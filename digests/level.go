package digests

// Level describes the digest that must be built at a block.
type Level struct {
	// Level is the digest level, 1 for digests over raw blocks.
	Level uint32 `json:"level"`
	// Interval is the number of blocks the digest covers.
	Interval uint32 `json:"interval"`
	// Step is the distance, in blocks, between the entries the digest
	// aggregates. It is the interval of the level below, or 1 at level 1.
	Step uint32 `json:"step"`
}

// IsDigestBuildRequiredAtBlock reports whether a digest, at any level, must be
// built at block. The zero block itself never requires one.
func IsDigestBuildRequiredAtBlock[N Number](c Config, zero, block N) bool {
	return block > zero &&
		c.IsDigestBuildEnabled() &&
		(block-zero)%N(c.DigestInterval) == 0
}

// DigestLevelAtBlock returns the digest that must be built at block, and false
// if none is due.
//
// When block is a multiple of the intervals of several levels the highest of
// them is returned. For example, with interval 8 and 4 levels
//
//	block    8 -> {1, 8, 1}
//	block   64 -> {2, 64, 8}
//	block  512 -> {3, 512, 64}
//	block 4096 -> {4, 4096, 512}
//	block 4112 -> {1, 8, 1}
//
// Levels whose interval would overflow a uint32 are never returned.
func DigestLevelAtBlock[N Number](c Config, zero, block N) (Level, bool) {
	if !IsDigestBuildRequiredAtBlock(c, zero, block) {
		return Level{}, false
	}

	relative := block - zero
	level := Level{Level: 1, Interval: c.DigestInterval, Step: 1}
	for level.Level < c.DigestLevels {
		next, ok := checkedMul32(level.Interval, c.DigestInterval)
		if !ok || relative%N(next) != 0 {
			break
		}
		level = Level{Level: level.Level + 1, Interval: next, Step: level.Interval}
	}
	return level, true
}
