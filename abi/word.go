package abi

import (
	"fmt"
	"math/big"

	"github.com/WilfredTA/fe/errs"
)

// WordSize is the fixed granularity of the word-aligned encoding: every
// head slot, offset, length and scalar occupies exactly 32 big-endian bytes.
const WordSize = 32

// wordMask is 2^256 - 1, used to reduce signed values to their
// two's-complement word representation.
var wordMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 8*WordSize), big.NewInt(1))

// writeScalarWord writes the one-word representation of a checked scalar
// value into dst[:32]: unsigned values zero-extend, signed values
// sign-extend across all 32 bytes, bool occupies the low-order byte as 0/1
// and address the low-order 20 bytes.
func writeScalarWord(dst []byte, t Type, v Value) {
	for i := range dst[:WordSize] {
		dst[i] = 0
	}
	switch t.kind {
	case KindUint:
		v.num.FillBytes(dst[:WordSize])
	case KindInt:
		// And with the word mask yields the 256-bit two's complement for
		// negative values and the value itself otherwise.
		word := new(big.Int).And(v.num, wordMask)
		word.FillBytes(dst[:WordSize])
	case KindBool:
		if v.flag {
			dst[WordSize-1] = 1
		}
	case KindAddress:
		copy(dst[WordSize-20:WordSize], v.addr[:])
	}
}

// putOffsetWord writes a region-relative tail offset or runtime length as
// one word.
func putOffsetWord(dst []byte, offset int) {
	for i := range dst[:WordSize] {
		dst[i] = 0
	}
	new(big.Int).SetUint64(uint64(offset)).FillBytes(dst[:WordSize])
}

// readScalarWord reinterprets one word as a value of the scalar type t,
// validating that the extension bytes beyond the declared width are
// consistent with the declared sign: zero filler for unsigned, bool and
// address, uniform sign filler for signed.
func readScalarWord(word []byte, t Type) (Value, error) {
	switch t.kind {
	case KindUint:
		ext := WordSize - t.width
		for i := 0; i < ext; i++ {
			if word[i] != 0 {
				return Value{}, fmt.Errorf("%w: nonzero extension byte %d for %s", errs.ErrMalformedScalar, i, t)
			}
		}

		return Value{kind: valueNum, num: new(big.Int).SetBytes(word[ext:WordSize])}, nil

	case KindInt:
		ext := WordSize - t.width
		filler := byte(0x00)
		negative := word[ext]&0x80 != 0
		if negative {
			filler = 0xFF
		}
		for i := 0; i < ext; i++ {
			if word[i] != filler {
				return Value{}, fmt.Errorf("%w: inconsistent sign extension for %s", errs.ErrMalformedScalar, t)
			}
		}
		num := new(big.Int).SetBytes(word[ext:WordSize])
		if negative {
			num.Sub(num, new(big.Int).Lsh(big.NewInt(1), uint(t.width*8)))
		}

		return Value{kind: valueNum, num: num}, nil

	case KindBool:
		for i := 0; i < WordSize-1; i++ {
			if word[i] != 0 {
				return Value{}, fmt.Errorf("%w: nonzero extension byte %d for bool", errs.ErrMalformedScalar, i)
			}
		}
		switch word[WordSize-1] {
		case 0:
			return Value{kind: valueBool, flag: false}, nil
		case 1:
			return Value{kind: valueBool, flag: true}, nil
		default:
			return Value{}, fmt.Errorf("%w: bool byte 0x%02x", errs.ErrMalformedScalar, word[WordSize-1])
		}

	case KindAddress:
		for i := 0; i < WordSize-20; i++ {
			if word[i] != 0 {
				return Value{}, fmt.Errorf("%w: nonzero extension byte %d for address", errs.ErrMalformedScalar, i)
			}
		}
		v := Value{kind: valueAddr}
		copy(v.addr[:], word[WordSize-20:WordSize])

		return v, nil

	default:
		return Value{}, fmt.Errorf("%w: %s is not a scalar", errs.ErrInvalidType, t)
	}
}

// readLengthWord reads a one-word runtime length or offset and validates
// that it fits the host int range.
func readLengthWord(word []byte) (int, error) {
	n := new(big.Int).SetBytes(word[:WordSize])
	if !n.IsUint64() || n.Uint64() > uint64(int(^uint(0)>>1)) {
		return 0, fmt.Errorf("%w: length word %s overflows", errs.ErrOffsetOutOfBounds, n)
	}

	return int(n.Uint64()), nil
}

// paddedLen rounds a byte length up to the next word boundary.
func paddedLen(n int) int {
	return (n + WordSize - 1) / WordSize * WordSize
}
