package storage

import (
	"fmt"
	"math"

	"github.com/WilfredTA/fe/endian"
	"github.com/WilfredTA/fe/errs"
	"github.com/WilfredTA/fe/format"
)

const (
	// MagicNumber marks the start of every storage container ("FePK").
	MagicNumber uint32 = 0x4665504B

	// Version is the current container layout version.
	Version uint8 = 1

	// HeaderSize is the fixed byte size of the container header.
	HeaderSize = 20

	// MaxPayloadSize is the largest packed payload a container can frame,
	// fixed by the 32-bit length field in the header.
	MaxPayloadSize = math.MaxUint32
)

// checkPayloadSize rejects payloads whose length would truncate in the
// header's 32-bit length field.
func checkPayloadSize(n int) error {
	if uint64(n) > MaxPayloadSize {
		return fmt.Errorf("%w: packed payload is %d bytes, container limit is %d",
			errs.ErrCapacityExceeded, n, MaxPayloadSize)
	}

	return nil
}

// Header is the fixed-size header at the start of a storage container.
//
// Layout (big-endian, matching the word-aligned wire format):
//
//	offset  0-3   magic number
//	offset  4     version
//	offset  5     compression type
//	offset  6-7   reserved, zero
//	offset  8-11  packed payload length before compression
//	offset 12-19  xxHash64 checksum of the packed payload before compression
type Header struct {
	Compression format.CompressionType
	PayloadLen  uint32
	Checksum    uint64
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	engine := endian.GetBigEndianEngine()

	b := make([]byte, 0, HeaderSize)
	b = engine.AppendUint32(b, MagicNumber)
	b = append(b, Version, byte(h.Compression), 0, 0)
	b = engine.AppendUint32(b, h.PayloadLen)
	b = engine.AppendUint64(b, h.Checksum)

	return b
}

// Parse parses and validates a header from the start of data.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: container header needs %d bytes, got %d",
			errs.ErrTruncatedBuffer, HeaderSize, len(data))
	}

	engine := endian.GetBigEndianEngine()
	if magic := engine.Uint32(data[0:4]); magic != MagicNumber {
		return fmt.Errorf("%w: 0x%08X", errs.ErrInvalidMagicNumber, magic)
	}
	if data[4] != Version {
		return fmt.Errorf("%w: unsupported container version %d", errs.ErrInvalidMagicNumber, data[4])
	}
	h.Compression = format.CompressionType(data[5])
	if !h.Compression.IsValid() {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompressionType, data[5])
	}
	h.PayloadLen = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint64(data[12:20])

	return nil
}
