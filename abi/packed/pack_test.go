package packed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WilfredTA/fe/abi"
	"github.com/WilfredTA/fe/errs"
)

func TestPack_ByteArrayScenario(t *testing.T) {
	// 100 u8 elements occupy 3200 word-aligned bytes but pack to exactly
	// 100 bytes, one per element.
	arr, err := abi.Array(abi.U8, 100)
	require.NoError(t, err)

	elems := make([]abi.Value, 100)
	for i := range elems {
		elems[i] = abi.NewUint64(uint64(i % 256))
	}
	aligned, err := abi.EncodeValue(arr, abi.NewArray(elems...))
	require.NoError(t, err)
	require.Len(t, aligned, 3200)

	dense, err := PackValue(arr, aligned)
	require.NoError(t, err)
	require.Len(t, dense, 100)
	for i := 0; i < 100; i++ {
		require.Equal(t, byte(i%256), dense[i])
	}

	back, err := UnpackValue(arr, dense)
	require.NoError(t, err)
	require.Equal(t, aligned, back)
}

func TestPack_ScalarWidths(t *testing.T) {
	tests := []struct {
		name  string
		typ   abi.Type
		value abi.Value
		want  []byte
	}{
		{"u8", abi.U8, abi.NewUint64(0xAB), []byte{0xAB}},
		{"u16", abi.U16, abi.NewUint64(0x1234), []byte{0x12, 0x34}},
		{"u64", abi.U64, abi.NewUint64(1), []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{"bool true", abi.Bool, abi.NewBool(true), []byte{1}},
		{"bool false", abi.Bool, abi.NewBool(false), []byte{0}},
		{"i8 negative", abi.I8, abi.NewInt64(-2), []byte{0xFE}},
		{"i16 negative", abi.I16, abi.NewInt64(-1), []byte{0xFF, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aligned, err := abi.EncodeValue(tt.typ, tt.value)
			require.NoError(t, err)

			dense, err := PackValue(tt.typ, aligned)
			require.NoError(t, err)
			require.Equal(t, tt.want, dense)

			back, err := UnpackValue(tt.typ, dense)
			require.NoError(t, err)
			require.Equal(t, aligned, back)
		})
	}
}

func TestPack_Address(t *testing.T) {
	aligned, err := abi.EncodeValue(abi.Address, abi.AddressFromUint64(0xC0FFEE))
	require.NoError(t, err)

	dense, err := PackValue(abi.Address, aligned)
	require.NoError(t, err)
	require.Len(t, dense, 20)
	require.Equal(t, byte(0xC0), dense[17])
	require.Equal(t, byte(0xFF), dense[18])
	require.Equal(t, byte(0xEE), dense[19])
}

func TestPack_BoundedString(t *testing.T) {
	str10, err := abi.String(10)
	require.NoError(t, err)

	aligned, err := abi.EncodeValue(str10, abi.NewString([]byte("hello")))
	require.NoError(t, err)
	require.Len(t, aligned, 96)

	dense, err := PackValue(str10, aligned)
	require.NoError(t, err)
	// Capacity 10 fits one prefix byte; five data bytes follow.
	require.Equal(t, []byte{5, 'h', 'e', 'l', 'l', 'o'}, dense)

	back, err := UnpackValue(str10, dense)
	require.NoError(t, err)
	require.Equal(t, aligned, back)
}

func TestPack_StringPrefixWidthTracksCapacity(t *testing.T) {
	str300, err := abi.String(300)
	require.NoError(t, err)

	aligned, err := abi.EncodeValue(str300, abi.NewString([]byte("ab")))
	require.NoError(t, err)

	dense, err := PackValue(str300, aligned)
	require.NoError(t, err)
	// Capacity 300 needs a two-byte prefix.
	require.Equal(t, []byte{0, 2, 'a', 'b'}, dense)
}

func TestPack_MixedArgumentList(t *testing.T) {
	str10, err := abi.String(10)
	require.NoError(t, err)
	arr, err := abi.Array(abi.U16, 3)
	require.NoError(t, err)
	types := []abi.Type{abi.U64, str10, arr, abi.Bool}
	values := []abi.Value{
		abi.NewUint64(500),
		abi.NewString([]byte("fe")),
		abi.NewArray(abi.NewUint64(1), abi.NewUint64(2), abi.NewUint64(3)),
		abi.NewBool(true),
	}

	aligned, err := abi.Encode(types, values)
	require.NoError(t, err)

	dense, err := Pack(types, aligned)
	require.NoError(t, err)
	// 8 (u64) + 1+2 (string) + 3*2 (array) + 1 (bool)
	require.Len(t, dense, 18)

	back, err := Unpack(types, dense)
	require.NoError(t, err)
	require.Equal(t, aligned, back)
}

func TestPack_DynamicStruct(t *testing.T) {
	str10, err := abi.String(10)
	require.NoError(t, err)
	person, err := abi.Struct("Person", []abi.Field{
		{Name: "name", Type: str10},
		{Name: "age", Type: abi.U8},
	})
	require.NoError(t, err)

	aligned, err := abi.EncodeValue(person, abi.NewStruct(abi.NewString([]byte("ada")), abi.NewUint64(36)))
	require.NoError(t, err)

	dense, err := PackValue(person, aligned)
	require.NoError(t, err)
	require.Equal(t, []byte{3, 'a', 'd', 'a', 36}, dense)

	back, err := UnpackValue(person, dense)
	require.NoError(t, err)
	require.Equal(t, aligned, back)
}

func TestUnpack_ThenPackIsIdentity(t *testing.T) {
	str10, err := abi.String(10)
	require.NoError(t, err)
	types := []abi.Type{abi.U32, str10}

	dense := []byte{0, 0, 1, 0, 4, 'a', 'b', 'c', 'd'}
	aligned, err := Unpack(types, dense)
	require.NoError(t, err)

	again, err := Pack(types, aligned)
	require.NoError(t, err)
	require.Equal(t, dense, again)
}

func TestUnpack_RejectsTrailingBytes(t *testing.T) {
	dense := []byte{42, 0xFF}
	_, err := Unpack([]abi.Type{abi.U8}, dense)
	require.ErrorIs(t, err, errs.ErrTrailingBytes)
}

func TestUnpack_RejectsTruncatedBuffer(t *testing.T) {
	_, err := Unpack([]abi.Type{abi.U64}, []byte{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)

	str10, err := abi.String(10)
	require.NoError(t, err)
	// Prefix claims four data bytes, only two follow.
	_, err = Unpack([]abi.Type{str10}, []byte{4, 'a', 'b'})
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
}

func TestUnpack_RejectsLengthBeyondCapacity(t *testing.T) {
	str10, err := abi.String(10)
	require.NoError(t, err)
	dense := append([]byte{11}, make([]byte, 11)...)
	_, err = Unpack([]abi.Type{str10}, dense)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestUnpack_RejectsBadBoolByte(t *testing.T) {
	_, err := Unpack([]abi.Type{abi.Bool}, []byte{2})
	require.ErrorIs(t, err, errs.ErrMalformedScalar)
}

func TestPack_RejectsDirtyPadding(t *testing.T) {
	// The padding being stripped must be genuine zero filler.
	aligned := make([]byte, 32)
	aligned[31] = 5
	aligned[0] = 0xAA

	_, err := PackValue(abi.U8, aligned)
	require.ErrorIs(t, err, errs.ErrMalformedScalar)
}

func TestNaturalSize(t *testing.T) {
	str10, err := abi.String(10)
	require.NoError(t, err)
	arr, err := abi.Array(abi.U8, 100)
	require.NoError(t, err)
	point, err := abi.Struct("Point", []abi.Field{
		{Name: "x", Type: abi.U64},
		{Name: "y", Type: abi.U64},
	})
	require.NoError(t, err)

	size, ok := NaturalSize(abi.U256)
	require.True(t, ok)
	require.Equal(t, 32, size)

	size, ok = NaturalSize(arr)
	require.True(t, ok)
	require.Equal(t, 100, size)

	size, ok = NaturalSize(point)
	require.True(t, ok)
	require.Equal(t, 16, size)

	size, ok = NaturalSize(abi.Address)
	require.True(t, ok)
	require.Equal(t, 20, size)

	_, ok = NaturalSize(str10)
	require.False(t, ok)
	dynStruct, err := abi.Struct("D", []abi.Field{{Name: "s", Type: str10}})
	require.NoError(t, err)
	_, ok = NaturalSize(dynStruct)
	require.False(t, ok)
}
