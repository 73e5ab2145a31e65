// Package configcodec encodes and decodes [digests.Config] for storage and
// for exchange between nodes.
//
// Two encodings are supported. The fixed width form is the two uint32 fields,
// DigestInterval then DigestLevels, each little endian. It is byte for byte
// the SCALE encoding chains use to store the configuration in state. The CBOR
// form is deterministic and uses small integer keys, for use alongside the
// other CBOR encoded log metadata.
package configcodec

import (
	"encoding/binary"
	"fmt"

	"github.com/forestrie/go-changestrie/digests"
)

// FixedSize is the length of the fixed width encoding
const FixedSize = 8

// EncodeFixed returns the 8 byte fixed width encoding of c
func EncodeFixed(c digests.Config) []byte {
	b := make([]byte, 0, FixedSize)
	b = binary.LittleEndian.AppendUint32(b, c.DigestInterval)
	return binary.LittleEndian.AppendUint32(b, c.DigestLevels)
}

// DecodeFixed decodes the fixed width encoding. Trailing or missing bytes are
// an error.
func DecodeFixed(b []byte) (digests.Config, error) {
	if len(b) != FixedSize {
		return digests.Config{}, fmt.Errorf("%w: got %d", ErrFixedLength, len(b))
	}
	return digests.New(
		binary.LittleEndian.Uint32(b[0:4]),
		binary.LittleEndian.Uint32(b[4:8]),
	), nil
}
