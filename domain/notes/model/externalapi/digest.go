package externalapi

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/kaspanet/notestub/domain/notes/utils/hashes"
)

// DigestSize is the size in bytes of a serialized Digest.
const DigestSize = WordSize * 8

// Digest is a cryptographic commitment that fits exactly in one Word.
type Digest [WordSize]Felt

// DigestFromWord reinterprets w as a Digest.
func DigestFromWord(w Word) Digest {
	return Digest(w)
}

// DigestFromHash maps a raw hash into the field, one little-endian uint64 per element.
func DigestFromHash(sum [hashes.HashSize]byte) Digest {
	var digest Digest
	for i := range digest {
		digest[i] = NewFelt(binary.LittleEndian.Uint64(sum[i*8:]))
	}
	return digest
}

// Word returns d as a Word.
func (d Digest) Word() Word {
	return Word(d)
}

// Bytes returns the little-endian serialization of d.
func (d Digest) Bytes() []byte {
	buf := make([]byte, DigestSize)
	for i, element := range d {
		binary.LittleEndian.PutUint64(buf[i*8:], element.Uint64())
	}
	return buf
}

// String returns the Digest as the hexadecimal string of its bytes.
func (d Digest) String() string {
	return hex.EncodeToString(d.Bytes())
}

// Equal returns whether d equals to other
func (d Digest) Equal(other Digest) bool {
	return d == other
}

// MergeDigests commits to the ordered pair (left, right).
func MergeDigests(left, right Digest) Digest {
	writer := hashes.NewDigestMergeHashWriter()
	writeElements(writer, left[:])
	writeElements(writer, right[:])
	return DigestFromHash(writer.Finalize())
}

func writeElements(writer hashes.HashWriter, elements []Felt) {
	for _, element := range elements {
		writer.WriteUint64(element.Uint64())
	}
}
