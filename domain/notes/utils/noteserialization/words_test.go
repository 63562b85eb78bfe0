package noteserialization

import (
	"testing"

	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
)

func TestBytesToWordsRejectsMalformedInput(t *testing.T) {
	if _, err := BytesToWords(make([]byte, WordLength+1)); err == nil {
		t.Fatalf("TestBytesToWordsRejectsMalformedInput: Expected an error for a partial word")
	}

	buf := WordsToBytes([]externalapi.Word{{1, 2, 3, 4}})
	// Overwrite the second element with the field modulus itself.
	byteOrder.PutUint64(buf[feltLength:], externalapi.FieldModulus)
	if _, err := BytesToWords(buf); err == nil {
		t.Fatalf("TestBytesToWordsRejectsMalformedInput: Expected an error for a non-canonical element")
	}
}

func TestHexToWords(t *testing.T) {
	words := []externalapi.Word{{1, 2, 3, 4}, {externalapi.Felt(externalapi.FieldModulus - 1), 0, 0, 7}}
	encoded := WordsToHex(words)
	if len(encoded) != 2*len(words)*WordLength {
		t.Fatalf("TestHexToWords: Expected %d hex characters, found: %d", 2*len(words)*WordLength, len(encoded))
	}

	decoded, err := HexToWords("  " + encoded + "\n")
	if err != nil {
		t.Fatalf("TestHexToWords: HexToWords: %+v", err)
	}
	if len(decoded) != len(words) || decoded[0] != words[0] || decoded[1] != words[1] {
		t.Fatalf("TestHexToWords: Expected %v, found: %v", words, decoded)
	}

	if _, err := HexToWords("zz"); err == nil {
		t.Fatalf("TestHexToWords: Expected an error for invalid hex")
	}
}

func TestStubDataLength(t *testing.T) {
	if StubDataLength(0) != StubCoreDataSize {
		t.Fatalf("TestStubDataLength: Expected %d, found: %d", StubCoreDataSize, StubDataLength(0))
	}
	if StubDataLength(3) != StubAssetsOffset+3*WordsPerAsset {
		t.Fatalf("TestStubDataLength: Expected %d, found: %d", StubAssetsOffset+3*WordsPerAsset, StubDataLength(3))
	}
}
