package configcodec

import (
	"testing"

	"github.com/forestrie/go-changestrie/digests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	b, err := codec.Marshal(digests.New(8, 4))
	require.NoError(t, err)
	// map(2) {1: 8, 2: 4}
	assert.Equal(t, []byte{0xa2, 0x01, 0x08, 0x02, 0x04}, b)

	c, err := codec.Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, digests.New(8, 4), c)
	assert.Equal(t, uint32(4096), c.MaxDigestInterval())
}

func TestCodecDeterministic(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	a, err := codec.Marshal(digests.New(1<<20, 3))
	require.NoError(t, err)
	b, err := codec.Marshal(digests.Config{DigestLevels: 3, DigestInterval: 1 << 20})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCodecUnmarshalInvalid(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	_, err = codec.Unmarshal([]byte{0xff})
	assert.ErrorIs(t, err, ErrCBORDecode)

	_, err = codec.Unmarshal(nil)
	assert.ErrorIs(t, err, ErrCBORDecode)
}
