// Package fe provides the ABI encoding and decoding runtime of the Fe
// compiler: a codec between typed, structured values and the canonical
// contract-ABI byte layout, plus a dense packed form for persistent
// storage.
//
// # Core Features
//
//   - Canonical head/tail wire encoding over 32-byte big-endian words
//   - Defensive decoding with per-location bounds and tail-order policies
//   - Lossless pack/unpack between word-aligned and dense storage layouts
//   - Compilation-unit codec registry with deterministic routine ordering
//   - Optional compressed storage containers (Zstd, S2, LZ4)
//
// # Basic Usage
//
// Encoding and decoding an argument list:
//
//	types := []abi.Type{abi.Address, abi.U256}
//	values := []abi.Value{addr, abi.NewUint64(42)}
//
//	data, _ := fe.Encode(types, values)
//	back, _ := fe.Decode(data, types, abi.Calldata)
//
// Persisting a value compactly:
//
//	container, _ := fe.Store(types, data, storage.WithCompression(format.CompressionZstd))
//	aligned, _ := fe.Load(types, container)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the abi and
// storage packages, simplifying the most common use cases. For
// fine-grained control (decode policies, registry management, custom
// compression codecs), use the abi, abi/packed, abi/registry, compress and
// storage packages directly.
package fe

import (
	"github.com/WilfredTA/fe/abi"
	"github.com/WilfredTA/fe/abi/packed"
	"github.com/WilfredTA/fe/storage"
)

// Encode encodes an ordered argument list into the canonical word-aligned
// ABI layout.
func Encode(types []abi.Type, values []abi.Value) ([]byte, error) {
	return abi.Encode(types, values)
}

// Decode decodes an ordered argument list from a word-aligned buffer using
// the bounds policy of the given location.
func Decode(data []byte, types []abi.Type, loc abi.Location) ([]abi.Value, error) {
	return abi.Decode(data, types, loc)
}

// Pack converts a word-aligned encoding into the dense storage form.
func Pack(types []abi.Type, aligned []byte) ([]byte, error) {
	return packed.Pack(types, aligned)
}

// Unpack restores the word-aligned encoding from its dense storage form.
func Unpack(types []abi.Type, dense []byte) ([]byte, error) {
	return packed.Unpack(types, dense)
}

// Store packs a word-aligned encoding and frames it into a storage
// container, optionally compressed.
func Store(types []abi.Type, aligned []byte, opts ...storage.Option) ([]byte, error) {
	return storage.Encode(types, aligned, opts...)
}

// Load opens a storage container and restores the word-aligned encoding.
func Load(types []abi.Type, container []byte) ([]byte, error) {
	return storage.Decode(types, container)
}
