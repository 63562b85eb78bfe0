package externalapi

import "github.com/pkg/errors"

// FieldModulus is the order of the prime field every Felt belongs to: 2^64 - 2^32 + 1.
const FieldModulus uint64 = 0xFFFFFFFF00000001

// Felt is an element of the prime field, always kept in its canonical form.
type Felt uint64

// ZeroFelt is the additive identity of the field.
const ZeroFelt Felt = 0

// NewFelt returns value reduced modulo FieldModulus.
func NewFelt(value uint64) Felt {
	if value >= FieldModulus {
		value -= FieldModulus
	}
	return Felt(value)
}

// NewFeltChecked returns value as a Felt, failing if value is not canonical.
func NewFeltChecked(value uint64) (Felt, error) {
	if value >= FieldModulus {
		return 0, errors.Errorf("value %d is not a canonical field element", value)
	}
	return Felt(value), nil
}

// IsCanonical returns whether f is below FieldModulus.
func (f Felt) IsCanonical() bool {
	return uint64(f) < FieldModulus
}

// Uint64 returns the canonical integer representation of f.
func (f Felt) Uint64() uint64 {
	return uint64(f)
}

// WordSize is the number of field elements in a Word.
const WordSize = 4

// Word is the atomic unit of the serialized note layout.
type Word [WordSize]Felt

// ZeroWord is a Word whose elements are all ZeroFelt.
var ZeroWord = Word{}

// IsZero returns whether all elements of w are zero.
func (w Word) IsZero() bool {
	return w == ZeroWord
}

// CloneWords returns a copy of the given words slice.
func CloneWords(words []Word) []Word {
	clone := make([]Word, len(words))
	copy(clone, words)
	return clone
}
