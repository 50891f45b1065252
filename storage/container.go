// Package storage frames packed encodings into self-describing containers
// for persistence.
//
// A container holds one packed value list: a fixed header (magic, version,
// compression flag, payload length, checksum) followed by the packed
// payload, optionally compressed. Packing already strips word-alignment
// padding, so storage consumption scales with logical value size; the
// optional compression stage squeezes what redundancy remains.
//
// The container format, like the packed layout it carries, is an internal
// convention consumed only by this compiler's own generated storage-access
// code.
package storage

import (
	"fmt"

	"github.com/WilfredTA/fe/abi"
	"github.com/WilfredTA/fe/abi/packed"
	"github.com/WilfredTA/fe/compress"
	"github.com/WilfredTA/fe/errs"
	"github.com/WilfredTA/fe/format"
	"github.com/WilfredTA/fe/internal/hash"
	"github.com/WilfredTA/fe/internal/options"
	"github.com/WilfredTA/fe/internal/pool"
)

// Config holds the tunable settings of a container write.
type Config struct {
	compression format.CompressionType
}

// Option represents a functional option for configuring a container write.
// This is a type alias for the generic Option interface specialized for
// Config.
type Option = options.Option[*Config]

// WithCompression selects the compression codec applied to the packed
// payload. The default is no compression.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if !ct.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, ct)
		}
		c.compression = ct

		return nil
	})
}

// Encode packs a word-aligned encoding of the given type list and frames
// the result into a storage container.
func Encode(types []abi.Type, aligned []byte, opts ...Option) ([]byte, error) {
	cfg := &Config{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	payload, err := packed.Pack(types, aligned)
	if err != nil {
		return nil, err
	}
	if err := checkPayloadSize(len(payload)); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	header := Header{
		Compression: cfg.compression,
		PayloadLen:  uint32(len(payload)),
		Checksum:    hash.Checksum(payload),
	}

	frame := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(frame)
	frame.MustWrite(header.Bytes())
	frame.MustWrite(compressed)

	out := make([]byte, frame.Len())
	copy(out, frame.Bytes())

	return out, nil
}

// EncodeValue frames a single value's aligned encoding.
func EncodeValue(t abi.Type, aligned []byte, opts ...Option) ([]byte, error) {
	return Encode([]abi.Type{t}, aligned, opts...)
}

// Decode opens a storage container and restores the word-aligned encoding
// of the given type list. The header is validated, the payload checksum is
// verified after decompression, and unpacking re-validates the packed
// layout itself.
func Decode(types []abi.Type, container []byte) ([]byte, error) {
	var header Header
	if err := header.Parse(container); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(container[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	if len(payload) != int(header.PayloadLen) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header declares %d",
			errs.ErrTruncatedBuffer, len(payload), header.PayloadLen)
	}
	if sum := hash.Checksum(payload); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got 0x%016X, header declares 0x%016X",
			errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	return packed.Unpack(types, payload)
}

// DecodeValue opens a container holding a single value.
func DecodeValue(t abi.Type, container []byte) ([]byte, error) {
	return Decode([]abi.Type{t}, container)
}
