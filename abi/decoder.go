package abi

import (
	"fmt"

	"github.com/WilfredTA/fe/errs"
	"github.com/WilfredTA/fe/internal/options"
)

// Decode decodes an ordered argument list from a word-aligned head/tail
// encoding. The buffer is treated as untrusted: every read is bounds
// checked, scalar extension bytes are validated, and dynamic offsets are
// verified before being followed.
//
// The location selects the default tail ordering policy (strict for
// calldata, any-order for memory); WithTailOrder overrides it. Decoding
// never mutates the source buffer.
func Decode(data []byte, types []Type, loc Location, opts ...DecodeOption) ([]Value, error) {
	if loc != Calldata && loc != Memory {
		return nil, fmt.Errorf("%w: location %d", errs.ErrInvalidType, loc)
	}
	cfg := &decodeConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	d := &decoder{data: data, order: cfg.resolve(loc)}

	return d.region(0, types)
}

// DecodeValue decodes a single value as a one-entry argument list.
func DecodeValue(data []byte, t Type, loc Location, opts ...DecodeOption) (Value, error) {
	vals, err := Decode(data, []Type{t}, loc, opts...)
	if err != nil {
		return Value{}, err
	}

	return vals[0], nil
}

type decoder struct {
	data  []byte
	order TailOrder
}

// region decodes one head/tail region whose head begins at regionStart.
// Offsets read from the head are relative to regionStart, mirroring the
// encoder.
func (d *decoder) region(regionStart int, types []Type) ([]Value, error) {
	headSize := HeadSize(types)
	if regionStart < 0 || regionStart+headSize > len(d.data) {
		return nil, fmt.Errorf("%w: region head needs %d bytes at offset %d, buffer is %d",
			errs.ErrTruncatedBuffer, headSize, regionStart, len(d.data))
	}

	vals := make([]Value, 0, len(types))
	pos := regionStart
	// The tail of a well-formed region begins where its head ends; under
	// the strict policy every offset must be non-decreasing from there.
	prevOffset := headSize
	for i, t := range types {
		if t.IsStatic() {
			v, err := d.static(pos, t)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			vals = append(vals, v)
			pos += t.HeadWords() * WordSize

			continue
		}

		offset, err := readLengthWord(d.data[pos : pos+WordSize])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if d.order == TailOrderStrict {
			if offset < prevOffset {
				return nil, fmt.Errorf("%w: entry %d offset %d precedes tail frontier %d",
					errs.ErrNonMonotonicTail, i, offset, prevOffset)
			}
			prevOffset = offset
		}
		// Compare before adding: regionStart+offset could wrap negative
		// for offsets near the int maximum and slip past a bounds check
		// on the sum.
		if offset >= len(d.data)-regionStart {
			return nil, fmt.Errorf("%w: entry %d offset %d exceeds buffer length %d",
				errs.ErrOffsetOutOfBounds, i, offset, len(d.data))
		}
		abs := regionStart + offset
		v, err := d.dynamic(abs, t)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		vals = append(vals, v)
		pos += WordSize
	}

	return vals, nil
}

// static reads the inline words of a static type starting at pos.
func (d *decoder) static(pos int, t Type) (Value, error) {
	size := t.HeadWords() * WordSize
	if pos+size > len(d.data) {
		return Value{}, fmt.Errorf("%w: %s needs %d bytes at offset %d, buffer is %d",
			errs.ErrTruncatedBuffer, t, size, pos, len(d.data))
	}
	switch t.kind {
	case KindUint, KindInt, KindBool, KindAddress:
		return readScalarWord(d.data[pos:pos+WordSize], t)
	case KindArray:
		stride := t.elem.HeadWords() * WordSize
		elems := make([]Value, 0, t.length)
		for i := 0; i < t.length; i++ {
			e, err := d.static(pos+i*stride, *t.elem)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			elems = append(elems, e)
		}

		return Value{kind: valueComposite, elems: elems}, nil
	case KindStruct, KindTuple:
		elems := make([]Value, 0, len(t.fields))
		cur := pos
		for i, f := range t.fields {
			e, err := d.static(cur, f.Type)
			if err != nil {
				if f.Name != "" {
					return Value{}, fmt.Errorf("field %s: %w", f.Name, err)
				}

				return Value{}, fmt.Errorf("component %d: %w", i, err)
			}
			elems = append(elems, e)
			cur += f.Type.HeadWords() * WordSize
		}

		return Value{kind: valueComposite, elems: elems}, nil
	default:
		return Value{}, fmt.Errorf("%w: kind %d", errs.ErrInvalidType, t.kind)
	}
}

// dynamic decodes the tail content of a dynamic type whose region begins at
// the absolute offset abs.
func (d *decoder) dynamic(abs int, t Type) (Value, error) {
	switch t.kind {
	case KindString:
		if abs+WordSize > len(d.data) {
			return Value{}, fmt.Errorf("%w: string length word at offset %d, buffer is %d",
				errs.ErrTruncatedBuffer, abs, len(d.data))
		}
		length, err := readLengthWord(d.data[abs : abs+WordSize])
		if err != nil {
			return Value{}, err
		}
		if length > t.maxLen {
			return Value{}, fmt.Errorf("%w: decoded length %d exceeds capacity %d",
				errs.ErrCapacityExceeded, length, t.maxLen)
		}
		if abs+WordSize+length > len(d.data) {
			return Value{}, fmt.Errorf("%w: string data needs %d bytes at offset %d, buffer is %d",
				errs.ErrTruncatedBuffer, length, abs+WordSize, len(d.data))
		}
		payload := make([]byte, length)
		copy(payload, d.data[abs+WordSize:abs+WordSize+length])

		return Value{kind: valueBytes, bytes: payload}, nil

	case KindArray:
		elemTypes := make([]Type, t.length)
		for i := range elemTypes {
			elemTypes[i] = *t.elem
		}
		elems, err := d.region(abs, elemTypes)
		if err != nil {
			return Value{}, err
		}

		return Value{kind: valueComposite, elems: elems}, nil

	case KindStruct, KindTuple:
		fieldTypes := make([]Type, len(t.fields))
		for i, f := range t.fields {
			fieldTypes[i] = f.Type
		}
		elems, err := d.region(abs, fieldTypes)
		if err != nil {
			return Value{}, err
		}

		return Value{kind: valueComposite, elems: elems}, nil

	default:
		return Value{}, fmt.Errorf("%w: static %s in tail position", errs.ErrInvalidType, t)
	}
}
