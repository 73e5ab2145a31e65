package configcodec

import "errors"

var (
	ErrFixedLength = errors.New("fixed width digest config must be exactly 8 bytes")
	ErrCBORDecode  = errors.New("failed to decode cbor digest config")
	ErrCBOREncode  = errors.New("failed to encode cbor digest config")
)
