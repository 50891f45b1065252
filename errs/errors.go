// Package errs defines the sentinel errors shared by all fe ABI runtime
// packages.
//
// Every failure mode the codec can report is represented by one sentinel
// value here. Call sites wrap these with fmt.Errorf("...: %w", ...) to add
// context, and callers match them with errors.Is. No error is ever swallowed
// or silently corrected; a malformed input is a terminal condition for that
// single encode or decode call.
package errs

import "errors"

// Encode-time errors. These are detected before any output byte is emitted.
var (
	// ErrCapacityExceeded indicates a runtime length or array size exceeds
	// the declared maximum of its type (bounded string capacity, fixed
	// array length, or scalar width).
	ErrCapacityExceeded = errors.New("declared capacity exceeded")

	// ErrTypeMismatch indicates a value's shape does not match the type it
	// is being encoded as (e.g. a bool value for a u256 slot).
	ErrTypeMismatch = errors.New("value does not match type")
)

// Decode-time errors. These report structurally invalid input buffers.
var (
	// ErrOffsetOutOfBounds indicates a dynamic-type offset word points
	// outside the declared buffer extent.
	ErrOffsetOutOfBounds = errors.New("offset out of bounds")

	// ErrTruncatedBuffer indicates fewer bytes remain than the type's
	// declared layout requires.
	ErrTruncatedBuffer = errors.New("truncated buffer")

	// ErrMalformedScalar indicates a decoded integer's unused high-order
	// bytes are inconsistent with its declared sign and width.
	ErrMalformedScalar = errors.New("malformed scalar word")

	// ErrNonMonotonicTail indicates a tail offset is not increasing
	// relative to prior tail sections when the decode policy requires
	// strictly ordered tails (the calldata policy).
	ErrNonMonotonicTail = errors.New("non-monotonic tail offset")

	// ErrTrailingBytes indicates a buffer contains bytes beyond the end of
	// the declared layout.
	ErrTrailingBytes = errors.New("trailing bytes after encoded value")
)

// Type construction errors.
var (
	// ErrInvalidWidth indicates a scalar width outside the 1..32 byte range.
	ErrInvalidWidth = errors.New("invalid scalar width")

	// ErrInvalidType indicates a malformed type description (zero-length
	// array, unnamed struct field, nil element type, and similar).
	ErrInvalidType = errors.New("invalid type description")
)

// Storage container errors.
var (
	// ErrInvalidMagicNumber indicates the container does not start with the
	// expected magic bytes.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidCompressionType indicates an unknown compression flag in a
	// container header.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrChecksumMismatch indicates the payload checksum does not match the
	// header checksum.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
)
