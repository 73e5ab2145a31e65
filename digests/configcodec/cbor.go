package configcodec

import (
	"fmt"

	commoncbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/forestrie/go-changestrie/digests"
	"github.com/fxamacker/cbor/v2"
)

type codecOptions struct {
	encOpts cbor.EncOptions
	decOpts cbor.DecOptions
}

type Option func(*codecOptions)

// WithEncOptions replaces the default deterministic encoding options
func WithEncOptions(opts cbor.EncOptions) Option {
	return func(o *codecOptions) {
		o.encOpts = opts
	}
}

// WithDecOptions replaces the default deterministic decoding options
func WithDecOptions(opts cbor.DecOptions) Option {
	return func(o *codecOptions) {
		o.decOpts = opts
	}
}

// Codec encodes digests.Config as CBOR
type Codec struct {
	cborCodec commoncbor.CBORCodec
}

// NewCodec creates a Codec. By default encoding is deterministic, equal
// configs always produce equal bytes.
func NewCodec(opts ...Option) (Codec, error) {
	o := codecOptions{
		encOpts: commoncbor.NewDeterministicEncOpts(),
		decOpts: commoncbor.NewDeterministicDecOpts(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	codec, err := commoncbor.NewCBORCodec(o.encOpts, o.decOpts)
	if err != nil {
		return Codec{}, err
	}
	return Codec{cborCodec: codec}, nil
}

func (c *Codec) Marshal(cfg digests.Config) ([]byte, error) {
	b, err := c.cborCodec.MarshalCBOR(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCBOREncode, err)
	}
	return b, nil
}

func (c *Codec) Unmarshal(b []byte) (digests.Config, error) {
	var cfg digests.Config
	if err := c.cborCodec.UnmarshalInto(b, &cfg); err != nil {
		return digests.Config{}, fmt.Errorf("%w: %v", ErrCBORDecode, err)
	}
	return cfg, nil
}
