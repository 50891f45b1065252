package compress

// NoOpCompressor bypasses compression entirely. Useful when the packed
// payload is small enough that framing overhead dominates, or when storage
// writes sit on a latency-critical path.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns a copy of the input. The copy keeps the caller-owned
// result contract of the Codec interface even though no transformation
// happens.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

// Decompress returns a copy of the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}
