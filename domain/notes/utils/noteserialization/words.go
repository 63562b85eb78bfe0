package noteserialization

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/pkg/errors"
)

var byteOrder = binary.LittleEndian

const (
	feltLength = 8

	// WordLength is the number of bytes a serialized Word occupies.
	WordLength = externalapi.WordSize * feltLength
)

// WordsToBytes serializes words, one little-endian uint64 per element
func WordsToBytes(words []externalapi.Word) []byte {
	buf := make([]byte, len(words)*WordLength)
	for i, word := range words {
		for j, element := range word {
			byteOrder.PutUint64(buf[i*WordLength+j*feltLength:], element.Uint64())
		}
	}
	return buf
}

// BytesToWords is the inverse of WordsToBytes. It fails on a length that
// isn't a whole number of words and on non-canonical field elements.
func BytesToWords(buf []byte) ([]externalapi.Word, error) {
	if len(buf)%WordLength != 0 {
		return nil, errors.Errorf("serialized words length %d is not a multiple of %d", len(buf), WordLength)
	}
	words := make([]externalapi.Word, len(buf)/WordLength)
	for i := range words {
		for j := range words[i] {
			offset := i*WordLength + j*feltLength
			element, err := externalapi.NewFeltChecked(byteOrder.Uint64(buf[offset:]))
			if err != nil {
				return nil, errors.Wrapf(err, "word %d element %d", i, j)
			}
			words[i][j] = element
		}
	}
	return words, nil
}

// WordsToHex serializes words as a hexadecimal string
func WordsToHex(words []externalapi.Word) string {
	return hex.EncodeToString(WordsToBytes(words))
}

// HexToWords parses the output of WordsToHex. Surrounding whitespace is ignored.
func HexToWords(s string) ([]externalapi.Word, error) {
	buf, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrap(err, "couldn't decode words hex")
	}
	return BytesToWords(buf)
}
