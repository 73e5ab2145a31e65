package digests

import "iter"

// Schedule binds a Config to the zero block of a particular chain. It is the
// convenient form for an indexer which asks about many blocks of the same
// chain. Like Config it is an immutable value and safe for concurrent use.
type Schedule[N Number] struct {
	config Config
	zero   N
}

func NewSchedule[N Number](c Config, zero N) Schedule[N] {
	return Schedule[N]{config: c, zero: zero}
}

func (s Schedule[N]) Config() Config { return s.config }
func (s Schedule[N]) Zero() N        { return s.zero }

// BuildRequired see [IsDigestBuildRequiredAtBlock]
func (s Schedule[N]) BuildRequired(block N) bool {
	return IsDigestBuildRequiredAtBlock(s.config, s.zero, block)
}

// LevelAt see [DigestLevelAtBlock]
func (s Schedule[N]) LevelAt(block N) (Level, bool) {
	return DigestLevelAtBlock(s.config, s.zero, block)
}

// NextMaxLevelRange see [NextMaxLevelDigestRange]
func (s Schedule[N]) NextMaxLevelRange(block N) (Range[N], bool) {
	return NextMaxLevelDigestRange(s.config, s.zero, block)
}

// PrevMaxLevelBlock see [PrevMaxLevelDigestBlock]
func (s Schedule[N]) PrevMaxLevelBlock(block N) (N, bool) {
	return PrevMaxLevelDigestBlock(s.config, s.zero, block)
}

// Builds see [Builds]
func (s Schedule[N]) Builds(from, to N) iter.Seq2[N, Level] {
	return Builds(s.config, s.zero, from, to)
}
