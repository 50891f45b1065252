// Package compress provides compression codecs for packed storage
// payloads.
//
// The storage container applies compression after packing: the packer
// already strips word-alignment padding, and a general-purpose codec then
// squeezes the remaining redundancy (repeated elements, zero runs in
// sparse arrays, textual string payloads). The container header records
// which codec was used so readers pick the matching decompressor
// automatically.
//
// Supported algorithms:
//   - None: no compression, payload stored as-is
//   - Zstd: best ratio, moderate speed (gozstd under cgo, pure Go
//     klauspost/compress otherwise)
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// All codecs are stateless or internally pooled and safe for concurrent
// use. Custom codecs can be supplied by implementing the Codec interface.
package compress
