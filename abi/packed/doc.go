// Package packed converts between the word-aligned ABI encoding and the
// dense storage encoding used by generated storage-access code.
//
// The word-aligned form pads every scalar to a full 32-byte word; the
// packed form strips that padding so each element occupies only its natural
// width (an array of 100 u8 elements packs to exactly 100 bytes instead of
// 3200). Bounded strings pack as a minimal-width length prefix sized from
// the declared capacity, followed by exactly the runtime length of data.
//
// Pack then Unpack (and Unpack then Pack, when the input was already
// validly packed) is a lossless round trip for every value that satisfies
// its type's capacity invariant. Both directions validate their input: the
// padding being stripped must be genuine zero or sign filler, and a packed
// buffer must be consumed exactly, with no trailing bytes.
//
// The packed layout is an internal convention of this compiler's generated
// storage code; it is never exchanged with external callers.
package packed
