package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a canonical type signature. Registry routine
// identifiers and generated-code symbol suffixes derive from this value, so
// it must stay stable across builds.
func ID(signature string) uint64 {
	return xxhash.Sum64String(signature)
}

// Checksum computes the xxHash64 of a raw payload. Storage containers use
// it to detect corrupted frames.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
