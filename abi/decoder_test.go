package abi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WilfredTA/fe/errs"
)

func TestDecode_RoundTrip(t *testing.T) {
	str10, err := String(10)
	require.NoError(t, err)
	str5, err := String(5)
	require.NoError(t, err)
	u8x3, err := Array(U8, 3)
	require.NoError(t, err)
	strArr, err := Array(str5, 2)
	require.NoError(t, err)
	point, err := Struct("Point", []Field{
		{Name: "x", Type: I64},
		{Name: "y", Type: I64},
	})
	require.NoError(t, err)
	person, err := Struct("Person", []Field{
		{Name: "name", Type: str10},
		{Name: "age", Type: U8},
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		types  []Type
		values []Value
	}{
		{"single uint", []Type{U256}, []Value{NewUint64(42)}},
		{"zero uint", []Type{U256}, []Value{NewUint64(0)}},
		{"negative int", []Type{I128}, []Value{NewInt64(-123456789)}},
		{"bool pair", []Type{Bool, Bool}, []Value{NewBool(true), NewBool(false)}},
		{"address", []Type{Address}, []Value{AddressFromUint64(0xDEADBEEF)}},
		{"empty string", []Type{str10}, []Value{NewString(nil)}},
		{"full string", []Type{str10}, []Value{NewString([]byte("abcdefghij"))}},
		{"static array", []Type{u8x3}, []Value{NewArray(NewUint64(1), NewUint64(2), NewUint64(3))}},
		{"dynamic array", []Type{strArr}, []Value{NewArray(NewString([]byte("aa")), NewString(nil))}},
		{"static struct", []Type{point}, []Value{NewStruct(NewInt64(-1), NewInt64(1))}},
		{"dynamic struct", []Type{person}, []Value{NewStruct(NewString([]byte("ada")), NewUint64(36))}},
		{
			"mixed argument list",
			[]Type{Address, U256, str10, u8x3},
			[]Value{
				AddressFromUint64(7),
				NewUint64(1 << 40),
				NewString([]byte("hello")),
				NewArray(NewUint64(9), NewUint64(8), NewUint64(7)),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.types, tt.values)
			require.NoError(t, err)
			require.Zero(t, len(data)%WordSize)

			for _, loc := range []Location{Calldata, Memory} {
				got, err := Decode(data, tt.types, loc)
				require.NoError(t, err, "location %s", loc)
				require.Len(t, got, len(tt.values))
				for i := range tt.values {
					require.True(t, tt.values[i].Equal(got[i]), "value %d via %s", i, loc)
				}
			}
		})
	}
}

func TestDecode_MalformedScalar(t *testing.T) {
	dirtyU8 := word(5)
	dirtyU8[0] = 0xFF

	badBool := word(2)

	dirtyAddr := word()
	dirtyAddr[11] = 0x01

	// Positive value with a stray 0xFF extension byte.
	badSign := word(5)
	badSign[0] = 0xFF

	tests := []struct {
		name string
		typ  Type
		data []byte
	}{
		{"uint with nonzero extension", U8, dirtyU8},
		{"bool byte above one", Bool, badBool},
		{"address with nonzero extension", Address, dirtyAddr},
		{"int with inconsistent sign extension", I8, badSign},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data, []Type{tt.typ}, Calldata)
			require.ErrorIs(t, err, errs.ErrMalformedScalar)
		})
	}
}

func TestDecode_SignExtensionAccepted(t *testing.T) {
	neg := make([]byte, WordSize)
	for i := range neg {
		neg[i] = 0xFF
	}
	vals, err := Decode(neg, []Type{I8}, Calldata)
	require.NoError(t, err)
	require.Equal(t, int64(-1), vals[0].Num().Int64())

	// The same all-ones word is a malformed u8: extension must be zero.
	_, err = Decode(neg, []Type{U8}, Calldata)
	require.ErrorIs(t, err, errs.ErrMalformedScalar)
}

func TestDecode_TruncatedBuffer(t *testing.T) {
	str10, err := String(10)
	require.NoError(t, err)

	_, err = Decode(make([]byte, 16), []Type{U256}, Calldata)
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)

	// Offset word present, length word missing.
	data := word(32)
	_, err = Decode(data, []Type{str10}, Calldata)
	require.ErrorIs(t, err, errs.ErrOffsetOutOfBounds)

	// Length word claims more data than the buffer holds.
	data = append(word(32), word(8)...)
	_, err = Decode(data, []Type{str10}, Calldata)
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
}

func TestDecode_OffsetOutOfBounds(t *testing.T) {
	str10, err := String(10)
	require.NoError(t, err)

	data := append(word(0x02, 0x00), word()...) // offset 512 in a 64-byte buffer
	_, err = Decode(data, []Type{str10}, Memory)
	require.ErrorIs(t, err, errs.ErrOffsetOutOfBounds)

	// An offset word that does not fit the host int range.
	huge := make([]byte, WordSize)
	for i := range huge {
		huge[i] = 0xFF
	}
	_, err = Decode(append(huge, word()...), []Type{str10}, Memory)
	require.ErrorIs(t, err, errs.ErrOffsetOutOfBounds)
}

func TestDecode_NestedOffsetNearIntMax(t *testing.T) {
	// A nested region sees a nonzero region start, so an offset word near
	// the int maximum would wrap negative if added before being bounds
	// checked. It must be rejected, not followed.
	str10, err := String(10)
	require.NoError(t, err)
	tup := Tuple(str10)

	data := word(0x20) // outer offset: nested region begins at 32
	data = append(data, word(0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)...)

	for _, loc := range []Location{Calldata, Memory} {
		_, err := Decode(data, []Type{tup}, loc)
		require.ErrorIs(t, err, errs.ErrOffsetOutOfBounds)
	}
}

func TestDecode_RejectsLengthBeyondCapacity(t *testing.T) {
	str10, err := String(10)
	require.NoError(t, err)

	// A buffer claiming runtime length 11 for a capacity-10 string.
	data := append(word(32), word(11)...)
	data = append(data, word()...)
	_, err = Decode(data, []Type{str10}, Calldata)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

// outOfOrderTails builds an encoding of two string<5> entries whose tails
// are stored in reverse of head order: entry 0 points at offset 128,
// entry 1 at offset 64.
func outOfOrderTails(t *testing.T) ([]Type, []byte) {
	t.Helper()
	str5, err := String(5)
	require.NoError(t, err)

	data := append(word(0x80), word(0x40)...) // offsets 128, 64
	data = append(data, word(2)...)           // entry 1 content at 64
	data = append(data, []byte("bb")...)
	data = append(data, make([]byte, 30)...)
	data = append(data, word(2)...) // entry 0 content at 128
	data = append(data, []byte("aa")...)
	data = append(data, make([]byte, 30)...)

	return []Type{str5, str5}, data
}

func TestDecode_TailOrderPolicy(t *testing.T) {
	types, data := outOfOrderTails(t)

	// Memory tolerates out-of-order tails.
	vals, err := Decode(data, types, Memory)
	require.NoError(t, err)
	require.Equal(t, []byte("aa"), vals[0].Bytes())
	require.Equal(t, []byte("bb"), vals[1].Bytes())

	// Calldata requires non-decreasing offsets.
	_, err = Decode(data, types, Calldata)
	require.ErrorIs(t, err, errs.ErrNonMonotonicTail)

	// The policy is explicit configuration, not welded to the location.
	vals, err = Decode(data, types, Calldata, WithTailOrder(TailOrderAny))
	require.NoError(t, err)
	require.Equal(t, []byte("aa"), vals[0].Bytes())

	_, err = Decode(data, types, Memory, WithTailOrder(TailOrderStrict))
	require.ErrorIs(t, err, errs.ErrNonMonotonicTail)
}

func TestDecode_OverlappingTailsInMemory(t *testing.T) {
	str5, err := String(5)
	require.NoError(t, err)
	types := []Type{str5, str5}

	// Both entries share one tail section at offset 64.
	data := append(word(0x40), word(0x40)...)
	data = append(data, word(3)...)
	data = append(data, []byte("abc")...)
	data = append(data, make([]byte, 29)...)

	vals, err := Decode(data, types, Memory)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), vals[0].Bytes())
	require.Equal(t, []byte("abc"), vals[1].Bytes())
}

func TestDecode_IgnoresTrailingTailPadding(t *testing.T) {
	// Decoding reads only the bytes the layout names; extra trailing
	// words in the source buffer are not an error.
	str10, err := String(10)
	require.NoError(t, err)
	data, err := EncodeValue(str10, NewString([]byte("hi")))
	require.NoError(t, err)
	data = append(data, make([]byte, 64)...)

	v, err := DecodeValue(data, str10, Calldata)
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), v.Bytes())
}

func TestDecode_InvalidLocation(t *testing.T) {
	_, err := Decode(nil, nil, Location(9))
	require.ErrorIs(t, err, errs.ErrInvalidType)
}

func TestDecode_DoesNotMutateSource(t *testing.T) {
	str10, err := String(10)
	require.NoError(t, err)
	data, err := EncodeValue(str10, NewString([]byte("hello")))
	require.NoError(t, err)

	snapshot := strings.Clone(string(data))
	_, err = DecodeValue(data, str10, Memory)
	require.NoError(t, err)
	require.Equal(t, snapshot, string(data))
}
