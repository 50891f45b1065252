package abi

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/WilfredTA/fe/errs"
)

type valueKind uint8

const (
	valueNum valueKind = iota + 1
	valueBool
	valueAddr
	valueBytes
	valueComposite
)

// Value is the runtime representation of one encodable value: a closed
// tagged union mirroring the Type taxonomy. Values are produced by the
// language front-end (or by Decode) and paired with a Type at the codec
// boundary; a Value by itself carries shape but not width or capacity.
//
// Values are immutable: constructors copy their inputs and accessors return
// copies of mutable internals.
type Value struct {
	kind  valueKind
	num   *big.Int
	flag  bool
	addr  [20]byte
	bytes []byte
	elems []Value
}

// NewUint constructs a numeric value from a non-negative big integer.
// Width and sign constraints are enforced when the value is paired with a
// concrete type (see Type.Check).
func NewUint(v *big.Int) Value {
	return Value{kind: valueNum, num: new(big.Int).Set(v)}
}

// NewUint64 constructs a numeric value from a uint64.
func NewUint64(v uint64) Value {
	return Value{kind: valueNum, num: new(big.Int).SetUint64(v)}
}

// NewInt constructs a numeric value from a big integer, which may be
// negative.
func NewInt(v *big.Int) Value {
	return Value{kind: valueNum, num: new(big.Int).Set(v)}
}

// NewInt64 constructs a numeric value from an int64.
func NewInt64(v int64) Value {
	return Value{kind: valueNum, num: big.NewInt(v)}
}

// NewBool constructs a boolean value.
func NewBool(v bool) Value {
	return Value{kind: valueBool, flag: v}
}

// NewAddress constructs an address value from exactly 20 bytes.
func NewAddress(b []byte) (Value, error) {
	if len(b) != 20 {
		return Value{}, fmt.Errorf("%w: address must be 20 bytes, got %d", errs.ErrTypeMismatch, len(b))
	}
	v := Value{kind: valueAddr}
	copy(v.addr[:], b)

	return v, nil
}

// AddressFromUint64 constructs an address value whose low-order bytes hold
// the big-endian representation of n. Convenient for fixtures and tests.
func AddressFromUint64(n uint64) Value {
	v := Value{kind: valueAddr}
	for i := 0; i < 8; i++ {
		v.addr[19-i] = byte(n >> (8 * i))
	}

	return v
}

// NewString constructs a bounded-string value from a byte payload. The
// capacity constraint is enforced against a concrete string type at the
// codec boundary.
func NewString(b []byte) Value {
	payload := make([]byte, len(b))
	copy(payload, b)

	return Value{kind: valueBytes, bytes: payload}
}

// NewArray constructs an array value over the given ordered elements.
func NewArray(elems ...Value) Value {
	return newComposite(elems)
}

// NewStruct constructs a struct value over the given ordered field values.
func NewStruct(elems ...Value) Value {
	return newComposite(elems)
}

// NewTuple constructs a tuple value over the given ordered components.
func NewTuple(elems ...Value) Value {
	return newComposite(elems)
}

func newComposite(elems []Value) Value {
	es := make([]Value, len(elems))
	copy(es, elems)

	return Value{kind: valueComposite, elems: es}
}

// Num returns the numeric payload of a scalar value, or nil for other
// shapes. The returned big.Int is a copy.
func (v Value) Num() *big.Int {
	if v.num == nil {
		return nil
	}

	return new(big.Int).Set(v.num)
}

// Bool returns the boolean payload. It is false for non-boolean values.
func (v Value) Bool() bool { return v.flag }

// Address returns the 20-byte address payload.
func (v Value) Address() [20]byte { return v.addr }

// Bytes returns a copy of the string payload.
func (v Value) Bytes() []byte {
	b := make([]byte, len(v.bytes))
	copy(b, v.bytes)

	return b
}

// Elems returns a copy of the ordered members of a composite value.
func (v Value) Elems() []Value {
	es := make([]Value, len(v.elems))
	copy(es, v.elems)

	return es
}

// Len returns the member count of a composite value, or the byte length of
// a string payload.
func (v Value) Len() int {
	if v.kind == valueBytes {
		return len(v.bytes)
	}

	return len(v.elems)
}

// Equal reports deep equality of two values.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case valueNum:
		return v.num.Cmp(other.num) == 0
	case valueBool:
		return v.flag == other.flag
	case valueAddr:
		return v.addr == other.addr
	case valueBytes:
		return bytes.Equal(v.bytes, other.bytes)
	case valueComposite:
		if len(v.elems) != len(other.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(other.elems[i]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// Check validates that v matches the shape of t and satisfies every
// capacity and width constraint, recursively. It is invoked by Encode on
// the entire argument list before any output byte is written, so a
// violation never produces a partial encoding.
func (t Type) Check(v Value) error {
	switch t.kind {
	case KindUint:
		if v.kind != valueNum {
			return fmt.Errorf("%w: %s value for %s", errs.ErrTypeMismatch, v.kindName(), t)
		}
		if v.num.Sign() < 0 {
			return fmt.Errorf("%w: negative value for %s", errs.ErrTypeMismatch, t)
		}
		if v.num.BitLen() > t.width*8 {
			return fmt.Errorf("%w: %s does not fit %s", errs.ErrCapacityExceeded, v.num, t)
		}
	case KindInt:
		if v.kind != valueNum {
			return fmt.Errorf("%w: %s value for %s", errs.ErrTypeMismatch, v.kindName(), t)
		}
		if !fitsSigned(v.num, t.width) {
			return fmt.Errorf("%w: %s does not fit %s", errs.ErrCapacityExceeded, v.num, t)
		}
	case KindBool:
		if v.kind != valueBool {
			return fmt.Errorf("%w: %s value for bool", errs.ErrTypeMismatch, v.kindName())
		}
	case KindAddress:
		if v.kind != valueAddr {
			return fmt.Errorf("%w: %s value for address", errs.ErrTypeMismatch, v.kindName())
		}
	case KindString:
		if v.kind != valueBytes {
			return fmt.Errorf("%w: %s value for %s", errs.ErrTypeMismatch, v.kindName(), t)
		}
		if len(v.bytes) > t.maxLen {
			return fmt.Errorf("%w: string length %d exceeds capacity %d", errs.ErrCapacityExceeded, len(v.bytes), t.maxLen)
		}
	case KindArray:
		if v.kind != valueComposite {
			return fmt.Errorf("%w: %s value for %s", errs.ErrTypeMismatch, v.kindName(), t)
		}
		if len(v.elems) > t.length {
			return fmt.Errorf("%w: %d elements exceed array capacity %d", errs.ErrCapacityExceeded, len(v.elems), t.length)
		}
		if len(v.elems) < t.length {
			return fmt.Errorf("%w: %d elements for fixed array of %d", errs.ErrTypeMismatch, len(v.elems), t.length)
		}
		for i, e := range v.elems {
			if err := t.elem.Check(e); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	case KindStruct, KindTuple:
		if v.kind != valueComposite {
			return fmt.Errorf("%w: %s value for %s", errs.ErrTypeMismatch, v.kindName(), t)
		}
		if len(v.elems) != len(t.fields) {
			return fmt.Errorf("%w: %d members for %s", errs.ErrTypeMismatch, len(v.elems), t)
		}
		for i, f := range t.fields {
			if err := f.Type.Check(v.elems[i]); err != nil {
				if f.Name != "" {
					return fmt.Errorf("field %s: %w", f.Name, err)
				}

				return fmt.Errorf("component %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("%w: kind %d", errs.ErrInvalidType, t.kind)
	}

	return nil
}

// fitsSigned reports whether n lies in the two's-complement range of the
// given byte width: [-2^(8w-1), 2^(8w-1)-1].
func fitsSigned(n *big.Int, width int) bool {
	bits := width*8 - 1
	if n.Sign() >= 0 {
		return n.BitLen() <= bits
	}
	// The most negative value -2^bits has BitLen bits+1.
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	return n.CmpAbs(limit) <= 0
}

func (v Value) kindName() string {
	switch v.kind {
	case valueNum:
		return "numeric"
	case valueBool:
		return "bool"
	case valueAddr:
		return "address"
	case valueBytes:
		return "string"
	case valueComposite:
		return "composite"
	default:
		return "zero"
	}
}
