package compress

// ZstdCompressor provides Zstandard compression for packed storage
// payloads. Zstd favors compression ratio over speed, which suits payloads
// that are written once and persisted.
//
// Two implementations back this type: gozstd (cgo) when cgo is available,
// and the pure-Go klauspost/compress encoder otherwise. Both produce
// standard Zstd frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
