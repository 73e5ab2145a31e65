package digests

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func config(interval, levels uint32) Config {
	return Config{DigestInterval: interval, DigestLevels: levels}
}

func TestNew(t *testing.T) {
	assert.Equal(t, Config{DigestInterval: 8, DigestLevels: 4}, New(8, 4))
	assert.Equal(t, Config{}, New(0, 0))
}

func TestIsDigestBuildEnabled(t *testing.T) {
	tests := []struct {
		name string
		c    Config
		want bool
	}{
		{"interval 0 is disabled", config(0, 100), false},
		{"interval 1 is disabled", config(1, 100), false},
		{"interval 2 is enabled", config(2, 100), true},
		{"levels 0 is disabled", config(100, 0), false},
		{"levels 1 is enabled", config(100, 1), true},
		{"zero value is disabled", Config{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.IsDigestBuildEnabled())
		})
	}
}

func TestMaxDigestInterval(t *testing.T) {
	tests := []struct {
		name       string
		c          Config
		want       uint32
		wantLevels uint32
	}{
		{"disabled is 1", config(0, 0), 1, 0},
		{"disabled by interval 1 is 1", config(1, 8), 1, 0},
		{"2^2", config(2, 2), 4, 2},
		{"8^4", config(8, 4), 4096, 4},
		{"2^31 fits", config(2, 31), 1 << 31, 31},
		{"2^32 clamps to 2^31", config(2, 32), 1 << 31, 31},
		{"2^40 clamps to 2^31", config(2, 40), 1 << 31, 31},
		{"16^8 clamps to 16^7", config(16, 8), 1 << 28, 7},
		{"max^1024 clamps to max", config(math.MaxUint32, 1024), math.MaxUint32, 1},
		{"huge levels do not loop forever", config(3, math.MaxUint32), 3486784401, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.MaxDigestInterval())
			assert.Equal(t, tt.wantLevels, tt.c.EffectiveDigestLevels())
		})
	}
}

func TestConfigString(t *testing.T) {
	assert.Equal(t, "digests(interval=8, levels=4)", config(8, 4).String())
}

func TestFittingPow32(t *testing.T) {
	type want struct {
		pow uint32
		k   uint32
	}
	tests := []struct {
		name string
		base uint32
		exp  uint32
		want want
	}{
		{"anything to the 0 is 1", 7, 0, want{1, 0}},
		{"0^0 is 1", 0, 0, want{1, 0}},
		{"0^3 is 0", 0, 3, want{0, 3}},
		{"1^k is 1", 1, math.MaxUint32, want{1, math.MaxUint32}},
		{"10^9 fits", 10, 9, want{1000000000, 9}},
		{"10^10 does not", 10, 10, want{1000000000, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pow, k := fittingPow32(tt.base, tt.exp)
			assert.Equal(t, tt.want, want{pow, k})
		})
	}
}

func TestCheckedArithmetic(t *testing.T) {
	_, ok := checkedMul32(1<<16, 1<<16)
	assert.False(t, ok)
	p, ok := checkedMul32(1<<16, (1<<16)-1)
	assert.True(t, ok)
	assert.Equal(t, uint32(math.MaxUint32-(1<<16)+1), p)

	_, ok = checkedAdd[uint32](math.MaxUint32, 1)
	assert.False(t, ok)
	s, ok := checkedAdd[uint64](math.MaxUint32, 1)
	assert.True(t, ok)
	assert.Equal(t, uint64(1<<32), s)

	assert.Equal(t, uint32(math.MaxUint32), saturatingAdd[uint32](math.MaxUint32-1, 10))
	assert.Equal(t, uint32(11), saturatingAdd[uint32](1, 10))

	_, ok = checkedMul[uint64](1<<32, 1<<32)
	assert.False(t, ok)
	m, ok := checkedMul[uint64](0, 1<<32)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), m)
}
