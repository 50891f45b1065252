package packed

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/WilfredTA/fe/abi"
	"github.com/WilfredTA/fe/errs"
)

// Pack converts the word-aligned encoding of an ordered argument list into
// the dense storage form. The aligned input is fully decoded first, so
// every structural invariant the decoder enforces (scalar extension bytes,
// offset bounds, capacity) holds before any packed byte is produced.
func Pack(types []abi.Type, aligned []byte) ([]byte, error) {
	vals, err := abi.Decode(aligned, types, abi.Memory)
	if err != nil {
		return nil, fmt.Errorf("pack: %w", err)
	}

	return packValues(types, vals), nil
}

// PackValue packs the aligned encoding of a single value.
func PackValue(t abi.Type, aligned []byte) ([]byte, error) {
	return Pack([]abi.Type{t}, aligned)
}

// Unpack converts a dense storage buffer back into the word-aligned
// encoding, re-inserting the padding the aligned representation requires.
// The dense buffer must be consumed exactly; trailing bytes are rejected.
func Unpack(types []abi.Type, dense []byte) ([]byte, error) {
	r := &denseReader{data: dense}
	vals := make([]abi.Value, 0, len(types))
	for i, t := range types {
		v, err := r.read(t)
		if err != nil {
			return nil, fmt.Errorf("unpack entry %d: %w", i, err)
		}
		vals = append(vals, v)
	}
	if r.pos != len(dense) {
		return nil, fmt.Errorf("%w: %d bytes remain after packed layout", errs.ErrTrailingBytes, len(dense)-r.pos)
	}

	return abi.Encode(types, vals)
}

// UnpackValue unpacks the dense form of a single value.
func UnpackValue(t abi.Type, dense []byte) ([]byte, error) {
	return Unpack([]abi.Type{t}, dense)
}

// NaturalSize returns the packed byte size of a type when that size is
// value-independent. The second result is false for types containing a
// bounded string, whose packed size varies with the runtime length.
func NaturalSize(t abi.Type) (int, bool) {
	switch t.Kind() {
	case abi.KindUint, abi.KindInt:
		return t.Width(), true
	case abi.KindBool:
		return 1, true
	case abi.KindAddress:
		return 20, true
	case abi.KindString:
		return 0, false
	case abi.KindArray:
		size, ok := NaturalSize(t.Elem())
		if !ok {
			return 0, false
		}

		return size * t.Len(), true
	case abi.KindStruct, abi.KindTuple:
		total := 0
		for _, f := range t.Fields() {
			size, ok := NaturalSize(f.Type)
			if !ok {
				return 0, false
			}
			total += size
		}

		return total, true
	default:
		return 0, false
	}
}

// prefixSize returns the byte width of the length prefix a bounded string
// uses in packed form: the minimal width that can represent the declared
// capacity. Fixed per type, so packed buffers parse without ambiguity.
func prefixSize(maxLen int) int {
	n := (bits.Len(uint(maxLen)) + 7) / 8
	if n == 0 {
		n = 1
	}

	return n
}

// packValues writes the dense form of checked values. Deterministic and
// infallible once values have passed Type.Check.
func packValues(types []abi.Type, vals []abi.Value) []byte {
	var out []byte
	for i, t := range types {
		out = writeDense(out, t, vals[i])
	}

	return out
}

func writeDense(out []byte, t abi.Type, v abi.Value) []byte {
	switch t.Kind() {
	case abi.KindUint:
		buf := make([]byte, t.Width())
		v.Num().FillBytes(buf)

		return append(out, buf...)
	case abi.KindInt:
		// Reduce to the two's complement of the declared width.
		mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(t.Width()*8)), big.NewInt(1))
		word := new(big.Int).And(v.Num(), mask)
		buf := make([]byte, t.Width())
		word.FillBytes(buf)

		return append(out, buf...)
	case abi.KindBool:
		if v.Bool() {
			return append(out, 1)
		}

		return append(out, 0)
	case abi.KindAddress:
		addr := v.Address()

		return append(out, addr[:]...)
	case abi.KindString:
		payload := v.Bytes()
		prefix := make([]byte, prefixSize(t.MaxLen()))
		new(big.Int).SetUint64(uint64(len(payload))).FillBytes(prefix)
		out = append(out, prefix...)

		return append(out, payload...)
	case abi.KindArray:
		elem := t.Elem()
		for _, e := range v.Elems() {
			out = writeDense(out, elem, e)
		}

		return out
	case abi.KindStruct, abi.KindTuple:
		elems := v.Elems()
		for i, f := range t.Fields() {
			out = writeDense(out, f.Type, elems[i])
		}

		return out
	default:
		return out
	}
}

// denseReader is a cursor over a packed buffer.
type denseReader struct {
	data []byte
	pos  int
}

func (r *denseReader) take(n int, what string) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, fmt.Errorf("%w: %s needs %d bytes at offset %d, buffer is %d",
			errs.ErrTruncatedBuffer, what, n, r.pos, len(r.data))
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

func (r *denseReader) read(t abi.Type) (abi.Value, error) {
	switch t.Kind() {
	case abi.KindUint:
		b, err := r.take(t.Width(), t.Signature())
		if err != nil {
			return abi.Value{}, err
		}

		return abi.NewUint(new(big.Int).SetBytes(b)), nil
	case abi.KindInt:
		b, err := r.take(t.Width(), t.Signature())
		if err != nil {
			return abi.Value{}, err
		}
		num := new(big.Int).SetBytes(b)
		if b[0]&0x80 != 0 {
			num.Sub(num, new(big.Int).Lsh(big.NewInt(1), uint(t.Width()*8)))
		}

		return abi.NewInt(num), nil
	case abi.KindBool:
		b, err := r.take(1, "bool")
		if err != nil {
			return abi.Value{}, err
		}
		switch b[0] {
		case 0:
			return abi.NewBool(false), nil
		case 1:
			return abi.NewBool(true), nil
		default:
			return abi.Value{}, fmt.Errorf("%w: bool byte 0x%02x", errs.ErrMalformedScalar, b[0])
		}
	case abi.KindAddress:
		b, err := r.take(20, "address")
		if err != nil {
			return abi.Value{}, err
		}

		return abi.NewAddress(b)
	case abi.KindString:
		prefix, err := r.take(prefixSize(t.MaxLen()), "string length prefix")
		if err != nil {
			return abi.Value{}, err
		}
		length := int(new(big.Int).SetBytes(prefix).Uint64())
		if length > t.MaxLen() {
			return abi.Value{}, fmt.Errorf("%w: packed length %d exceeds capacity %d",
				errs.ErrCapacityExceeded, length, t.MaxLen())
		}
		payload, err := r.take(length, "string data")
		if err != nil {
			return abi.Value{}, err
		}

		return abi.NewString(payload), nil
	case abi.KindArray:
		elem := t.Elem()
		elems := make([]abi.Value, 0, t.Len())
		for i := 0; i < t.Len(); i++ {
			e, err := r.read(elem)
			if err != nil {
				return abi.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			elems = append(elems, e)
		}

		return abi.NewArray(elems...), nil
	case abi.KindStruct, abi.KindTuple:
		elems := make([]abi.Value, 0, t.NumFields())
		for i, f := range t.Fields() {
			e, err := r.read(f.Type)
			if err != nil {
				if f.Name != "" {
					return abi.Value{}, fmt.Errorf("field %s: %w", f.Name, err)
				}

				return abi.Value{}, fmt.Errorf("component %d: %w", i, err)
			}
			elems = append(elems, e)
		}

		return abi.NewTuple(elems...), nil
	default:
		return abi.Value{}, fmt.Errorf("%w: kind %d", errs.ErrInvalidType, t.Kind())
	}
}
