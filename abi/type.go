package abi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/WilfredTA/fe/errs"
)

// Kind tags the closed set of type variants the codec understands.
type Kind uint8

const (
	KindUint    Kind = iota + 1 // unsigned fixed-width integer
	KindInt                     // signed fixed-width integer
	KindBool                    // boolean, one word when aligned
	KindAddress                 // 20-byte account address
	KindString                  // length-bounded byte string
	KindArray                   // fixed-capacity array
	KindStruct                  // ordered named fields
	KindTuple                   // ordered unnamed components
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// Field is one named member of a struct type.
type Field struct {
	Name string
	Type Type
}

// Type describes one encodable type. Types are produced once by the
// language front-end and are immutable afterwards; all layout logic
// dispatches over the Kind tag.
//
// The zero Type is invalid. Use the constructors or the prebuilt scalar
// variables (U8..U256, I8..I256, Bool, Address).
type Type struct {
	kind   Kind
	width  int     // scalar byte width, 1..32 (KindUint, KindInt)
	maxLen int     // capacity in bytes (KindString)
	length int     // element count (KindArray)
	elem   *Type   // element type (KindArray)
	name   string  // declared name (KindStruct)
	fields []Field // members (KindStruct, KindTuple; tuple fields unnamed)
}

// Prebuilt scalar types for the common fixed widths.
var (
	Bool    = Type{kind: KindBool}
	Address = Type{kind: KindAddress}

	U8   = Type{kind: KindUint, width: 1}
	U16  = Type{kind: KindUint, width: 2}
	U32  = Type{kind: KindUint, width: 4}
	U64  = Type{kind: KindUint, width: 8}
	U128 = Type{kind: KindUint, width: 16}
	U256 = Type{kind: KindUint, width: 32}

	I8   = Type{kind: KindInt, width: 1}
	I16  = Type{kind: KindInt, width: 2}
	I32  = Type{kind: KindInt, width: 4}
	I64  = Type{kind: KindInt, width: 8}
	I128 = Type{kind: KindInt, width: 16}
	I256 = Type{kind: KindInt, width: 32}
)

// Uint constructs an unsigned integer type of the given byte width (1..32).
func Uint(width int) (Type, error) {
	if width < 1 || width > WordSize {
		return Type{}, fmt.Errorf("%w: uint width %d bytes", errs.ErrInvalidWidth, width)
	}

	return Type{kind: KindUint, width: width}, nil
}

// Int constructs a signed integer type of the given byte width (1..32).
func Int(width int) (Type, error) {
	if width < 1 || width > WordSize {
		return Type{}, fmt.Errorf("%w: int width %d bytes", errs.ErrInvalidWidth, width)
	}

	return Type{kind: KindInt, width: width}, nil
}

// String constructs a bounded string type with the given byte capacity.
// The runtime length of a value may be anything from 0 to maxLen.
func String(maxLen int) (Type, error) {
	if maxLen < 1 {
		return Type{}, fmt.Errorf("%w: string capacity %d", errs.ErrInvalidType, maxLen)
	}

	return Type{kind: KindString, maxLen: maxLen}, nil
}

// Array constructs a fixed-capacity array type of length elements of elem.
func Array(elem Type, length int) (Type, error) {
	if elem.kind == 0 {
		return Type{}, fmt.Errorf("%w: array of zero type", errs.ErrInvalidType)
	}
	if length < 1 {
		return Type{}, fmt.Errorf("%w: array length %d", errs.ErrInvalidType, length)
	}
	e := elem

	return Type{kind: KindArray, elem: &e, length: length}, nil
}

// Struct constructs a struct type with the given declared name and ordered
// named fields. The name is carried for diagnostics and generated-code
// naming; it does not participate in the canonical layout signature.
func Struct(name string, fields []Field) (Type, error) {
	if name == "" {
		return Type{}, fmt.Errorf("%w: unnamed struct", errs.ErrInvalidType)
	}
	if len(fields) == 0 {
		return Type{}, fmt.Errorf("%w: struct %s has no fields", errs.ErrInvalidType, name)
	}
	for _, f := range fields {
		if f.Name == "" {
			return Type{}, fmt.Errorf("%w: struct %s has an unnamed field", errs.ErrInvalidType, name)
		}
		if f.Type.kind == 0 {
			return Type{}, fmt.Errorf("%w: struct %s field %s has zero type", errs.ErrInvalidType, name, f.Name)
		}
	}
	fs := make([]Field, len(fields))
	copy(fs, fields)

	return Type{kind: KindStruct, name: name, fields: fs}, nil
}

// Tuple constructs an anonymous tuple type over the given ordered
// component types. Tuples describe whole parameter, return and event lists.
func Tuple(types ...Type) Type {
	fields := make([]Field, len(types))
	for i, t := range types {
		fields[i] = Field{Type: t}
	}

	return Type{kind: KindTuple, fields: fields}
}

// Kind returns the variant tag of the type.
func (t Type) Kind() Kind { return t.kind }

// Width returns the scalar byte width for integer types, 0 otherwise.
func (t Type) Width() int { return t.width }

// MaxLen returns the declared capacity for bounded strings, 0 otherwise.
func (t Type) MaxLen() int { return t.maxLen }

// Len returns the element count for array types, 0 otherwise.
func (t Type) Len() int { return t.length }

// Elem returns the element type of an array. It panics if the type is not
// an array.
func (t Type) Elem() Type {
	if t.kind != KindArray {
		panic("abi: Elem on non-array type")
	}

	return *t.elem
}

// Name returns the declared struct name, empty for every other kind.
func (t Type) Name() string { return t.name }

// Fields returns a copy of the ordered members of a struct or tuple.
func (t Type) Fields() []Field {
	fs := make([]Field, len(t.fields))
	copy(fs, t.fields)

	return fs
}

// NumFields returns the member count of a struct or tuple, 0 otherwise.
func (t Type) NumFields() int { return len(t.fields) }

// Signature returns the canonical layout signature of the type. Two types
// with equal signatures are layout-compatible and share generated codec
// routines; struct and field names do not participate.
//
// Examples: "u256", "i128", "bool", "address", "string<10>", "[u8;100]",
// "(address,u256)".
func (t Type) Signature() string {
	switch t.kind {
	case KindUint:
		return "u" + strconv.Itoa(t.width*8)
	case KindInt:
		return "i" + strconv.Itoa(t.width*8)
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindString:
		return "string<" + strconv.Itoa(t.maxLen) + ">"
	case KindArray:
		return "[" + t.elem.Signature() + ";" + strconv.Itoa(t.length) + "]"
	case KindStruct, KindTuple:
		sigs := make([]string, len(t.fields))
		for i, f := range t.fields {
			sigs[i] = f.Type.Signature()
		}

		return "(" + strings.Join(sigs, ",") + ")"
	default:
		return "invalid"
	}
}

// String returns a human-readable form of the type. Unlike Signature it
// includes struct and field names.
func (t Type) String() string {
	switch t.kind {
	case KindStruct:
		parts := make([]string, len(t.fields))
		for i, f := range t.fields {
			parts[i] = f.Name + ":" + f.Type.String()
		}

		return t.name + "(" + strings.Join(parts, ",") + ")"
	default:
		return t.Signature()
	}
}

// Equal reports whether t and other have the same canonical layout.
func (t Type) Equal(other Type) bool {
	return t.Signature() == other.Signature()
}
