package abi

import (
	"fmt"

	"github.com/WilfredTA/fe/errs"
	"github.com/WilfredTA/fe/internal/pool"
)

// Encode encodes an ordered argument list into the canonical word-aligned
// head/tail layout. The entire list is validated against the types before
// any output byte is produced, so a capacity or shape violation never
// leaves a partial encoding behind.
//
// The output length is always a multiple of WordSize and the function is
// pure: identical inputs produce byte-identical output.
func Encode(types []Type, values []Value) ([]byte, error) {
	if len(types) != len(values) {
		return nil, fmt.Errorf("%w: %d types for %d values", errs.ErrTypeMismatch, len(types), len(values))
	}
	for i, t := range types {
		if err := t.Check(values[i]); err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
	}

	return encodeRegion(types, values), nil
}

// EncodeValue encodes a single value as a one-entry argument list.
func EncodeValue(t Type, v Value) ([]byte, error) {
	return Encode([]Type{t}, []Value{v})
}

// encodeRegion lays out one head/tail region for an ordered entry list.
// Offsets written into the head are relative to the start of this region.
// All values must already be checked.
func encodeRegion(types []Type, values []Value) []byte {
	headSize := HeadSize(types)
	head := make([]byte, headSize)

	tail := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(tail)

	pos := 0
	for i, t := range types {
		if t.IsStatic() {
			encodeStatic(head[pos:], t, values[i])
			pos += t.HeadWords() * WordSize

			continue
		}
		putOffsetWord(head[pos:], headSize+tail.Len())
		tail.MustWrite(encodeDynamic(t, values[i]))
		pos += WordSize
	}

	out := make([]byte, 0, headSize+tail.Len())
	out = append(out, head...)
	out = append(out, tail.Bytes()...)

	return out
}

// encodeStatic writes the inline word representation of a static value into
// dst and returns nothing; the caller advances by HeadWords words.
func encodeStatic(dst []byte, t Type, v Value) {
	switch t.kind {
	case KindUint, KindInt, KindBool, KindAddress:
		writeScalarWord(dst, t, v)
	case KindArray:
		stride := t.elem.HeadWords() * WordSize
		for i, e := range v.elems {
			encodeStatic(dst[i*stride:], *t.elem, e)
		}
	case KindStruct, KindTuple:
		pos := 0
		for i, f := range t.fields {
			encodeStatic(dst[pos:], f.Type, v.elems[i])
			pos += f.Type.HeadWords() * WordSize
		}
	}
}

// encodeDynamic produces the tail content of a dynamic value: a bounded
// string becomes a length word plus zero-padded data words, and a dynamic
// array, struct or tuple becomes a nested region with its own head and
// tail.
func encodeDynamic(t Type, v Value) []byte {
	switch t.kind {
	case KindString:
		out := make([]byte, WordSize+paddedLen(len(v.bytes)))
		putOffsetWord(out, len(v.bytes))
		copy(out[WordSize:], v.bytes)

		return out
	case KindArray:
		elemTypes := make([]Type, t.length)
		for i := range elemTypes {
			elemTypes[i] = *t.elem
		}

		return encodeRegion(elemTypes, v.elems)
	case KindStruct, KindTuple:
		fieldTypes := make([]Type, len(t.fields))
		for i, f := range t.fields {
			fieldTypes[i] = f.Type
		}

		return encodeRegion(fieldTypes, v.elems)
	default:
		// Static types never reach the tail.
		return nil
	}
}
