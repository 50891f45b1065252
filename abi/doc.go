// Package abi implements the contract ABI encoding and decoding runtime.
//
// The codec converts typed, structured values (fixed-width integers, bool,
// address, fixed-capacity arrays, length-bounded strings, structs and
// parameter tuples) to and from the canonical contract-ABI byte layout:
// 32-byte big-endian words arranged in a head/tail scheme where static
// values live inline in the head and dynamic content lives in a tail
// section addressed by one-word offsets.
//
// # Type Taxonomy
//
// Types form a closed tagged union constructed once by the language
// front-end and immutable afterwards:
//
//	u8 .. u256, i8 .. i256  fixed-width integers, one word when aligned
//	bool                    0 or 1 in the low-order byte
//	address                 20 bytes, right-aligned in a word
//	string<N>               byte sequence with runtime length <= N
//	[T;N]                   fixed-capacity array of N elements
//	struct / tuple          ordered members, encoded as nested regions
//
// A type is static iff every member it contains is static and has no
// runtime-determined length. Bounded strings are always dynamic; arrays,
// structs and tuples are dynamic iff any member is dynamic.
//
// # Encoding
//
// Encode lays out a head section of HeadWords(t) words per entry, writing
// static values inline and one offset word per dynamic entry. Dynamic
// content is appended to a tail in head order; offsets are relative to the
// start of the immediate containing tuple's region, and the scheme repeats
// recursively for nested regions. Output length is always a multiple of 32
// bytes and encoding is fully deterministic.
//
// # Decoding
//
// Decode mirrors Encode and treats the input as untrusted: every read is
// bounds-checked, scalar extension bytes are verified against the declared
// sign and width, and dynamic offsets are validated before being followed.
// The Location parameter selects the bounds policy: calldata requires tail
// sections to appear in monotonically non-decreasing offset order, memory
// accepts out-of-order tails. The ordering policy can be overridden
// explicitly with WithTailOrder.
//
// All failures are reported as wrapped sentinel errors from the errs
// package and can be matched with errors.Is.
package abi
