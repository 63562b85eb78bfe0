package hashes

import (
	"encoding/binary"
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// HashSize is the size in bytes of every hash produced by a HashWriter.
const HashSize = blake2b.Size256

var byteOrder = binary.LittleEndian

// HashWriter is used to incrementally hash data without concatenating all of the data to a single buffer
// it exposes an io.Writer api and a Finalize function to get the resulting hash.
// The used hash function is blake2b.
// This can only be created via one of the domain separated constructors
type HashWriter struct {
	hash.Hash
}

// InfallibleWrite is just like write but doesn't return anything
func (h HashWriter) InfallibleWrite(p []byte) {
	// This write can never return an error, this is part of the hash.Hash interface contract.
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// WriteUint64 writes v in little-endian order
func (h HashWriter) WriteUint64(v uint64) {
	var buf [8]byte
	byteOrder.PutUint64(buf[:], v)
	h.InfallibleWrite(buf[:])
}

// Finalize returns the resulting hash
func (h HashWriter) Finalize() [HashSize]byte {
	var sum [HashSize]byte
	copy(sum[:], h.Sum(sum[:0]))
	return sum
}
