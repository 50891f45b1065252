package format

type (
	// CompressionType selects the compression codec applied to a packed
	// payload inside a storage container.
	CompressionType uint8

	// RoutineKind distinguishes the two routine flavors a codec registry
	// generates per type signature.
	RoutineKind uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	RoutineEncode RoutineKind = 0x1 // RoutineEncode represents a generated encode routine.
	RoutineDecode RoutineKind = 0x2 // RoutineDecode represents a generated decode routine.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the defined compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (k RoutineKind) String() string {
	switch k {
	case RoutineEncode:
		return "Encode"
	case RoutineDecode:
		return "Decode"
	default:
		return "Unknown"
	}
}
