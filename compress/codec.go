package compress

import (
	"fmt"

	"github.com/WilfredTA/fe/errs"
	"github.com/WilfredTA/fe/format"
)

// Compressor compresses one packed storage payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The input is a complete packed payload. The returned slice is owned
	// by the caller; the input slice is never modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously compressed with the matching
// algorithm. Implementations validate the compressed format and fail on
// corrupted or incompatible input.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// payload. The returned slice is owned by the caller; the input slice
	// is never modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions for implementations that share state or
// buffers between them.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
}
