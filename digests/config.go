package digests

import "fmt"

// Config is the changes trie digest configuration for a chain.
//
// The zero value, and any value with DigestInterval <= 1 or DigestLevels == 0,
// disables digests entirely. Config is an immutable value: a reconfiguration
// is a new Config, and digests already built under the old one are not
// revisited.
type Config struct {
	// DigestInterval is the number of blocks between level 1 digests. Digests
	// are not created when this is <= 1.
	DigestInterval uint32 `json:"digest_interval" yaml:"digest_interval" cbor:"1,keyasint"`
	// DigestLevels is the maximum number of digest levels. 0 means no digests
	// at all, 1 means only level 1 digests, 2 means that every
	// DigestInterval^2 blocks there is also a level 2 digest, and so on. If
	// DigestInterval^DigestLevels does not fit in a uint32 the levels that
	// would overflow are never built.
	DigestLevels   uint32 `json:"digest_levels" yaml:"digest_levels" cbor:"2,keyasint"`
}

// New creates a Config. No validation is done, degenerate values simply
// disable digests.
func New(digestInterval, digestLevels uint32) Config {
	return Config{DigestInterval: digestInterval, DigestLevels: digestLevels}
}

// IsDigestBuildEnabled reports whether the configuration creates any digests
func (c Config) IsDigestBuildEnabled() bool {
	return c.DigestInterval > 1 && c.DigestLevels > 0
}

// MaxDigestInterval returns the number of blocks covered by a single top level
// digest. It is 1 if digests are disabled.
//
// Normally this is DigestInterval^DigestLevels. If that overflows a uint32
// the exponent is reduced until the power fits, so the result is the largest
// power of DigestInterval, with exponent at most DigestLevels, that is
// representable.
func (c Config) MaxDigestInterval() uint32 {
	if !c.IsDigestBuildEnabled() {
		return 1
	}
	maxInterval, _ := fittingPow32(c.DigestInterval, c.DigestLevels)
	return maxInterval
}

// EffectiveDigestLevels returns the number of digest levels that are actually
// built. This is DigestLevels unless the top levels were dropped because their
// interval does not fit in a uint32, and it is 0 when digests are disabled.
func (c Config) EffectiveDigestLevels() uint32 {
	if !c.IsDigestBuildEnabled() {
		return 0
	}
	_, levels := fittingPow32(c.DigestInterval, c.DigestLevels)
	return levels
}

func (c Config) String() string {
	return fmt.Sprintf("digests(interval=%d, levels=%d)", c.DigestInterval, c.DigestLevels)
}
