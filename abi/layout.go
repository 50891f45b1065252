package abi

// IsStatic reports whether the type's encoded size is fully determined at
// compile time. Bounded strings are always dynamic; arrays, structs and
// tuples are dynamic iff any member is dynamic.
func (t Type) IsStatic() bool {
	switch t.kind {
	case KindUint, KindInt, KindBool, KindAddress:
		return true
	case KindString:
		return false
	case KindArray:
		return t.elem.IsStatic()
	case KindStruct, KindTuple:
		for _, f := range t.fields {
			if !f.Type.IsStatic() {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// HeadWords returns the number of words the type occupies in its containing
// region's head section. A dynamic type always occupies exactly one word
// (the offset into the tail), regardless of its tail size; a static type
// occupies the word count required to encode the value inline, recursively
// summed for arrays and structs.
func (t Type) HeadWords() int {
	if !t.IsStatic() {
		return 1
	}
	switch t.kind {
	case KindUint, KindInt, KindBool, KindAddress:
		return 1
	case KindArray:
		return t.length * t.elem.HeadWords()
	case KindStruct, KindTuple:
		words := 0
		for _, f := range t.fields {
			words += f.Type.HeadWords()
		}

		return words
	default:
		return 0
	}
}

// HeadSize returns the byte size of the head section for an ordered list of
// top-level entries.
func HeadSize(types []Type) int {
	size := 0
	for _, t := range types {
		size += t.HeadWords() * WordSize
	}

	return size
}
