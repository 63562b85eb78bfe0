package hashes

import (
	"testing"
)

func TestDomainSeparation(t *testing.T) {
	writers := map[string]HashWriter{
		"vault":     NewNoteVaultHashWriter(),
		"inputs":    NewNoteInputsHashWriter(),
		"stub":      NewNoteStubHashWriter(),
		"merge":     NewDigestMergeHashWriter(),
		"script":    NewNoteScriptHashWriter(),
		"procedure": NewProcedureBodyHashWriter(),
	}

	seen := make(map[[HashSize]byte]string)
	for name, writer := range writers {
		writer.WriteUint64(42)
		sum := writer.Finalize()
		if other, ok := seen[sum]; ok {
			t.Fatalf("TestDomainSeparation: %s and %s produced the same hash %x", name, other, sum)
		}
		seen[sum] = name
	}
}

func TestWriteUint64IsLittleEndian(t *testing.T) {
	a := NewNoteVaultHashWriter()
	a.WriteUint64(0x0102030405060708)

	b := NewNoteVaultHashWriter()
	b.InfallibleWrite([]byte{8, 7, 6, 5, 4, 3, 2, 1})

	if a.Finalize() != b.Finalize() {
		t.Fatalf("TestWriteUint64IsLittleEndian: Expected WriteUint64 to match a manual little-endian write")
	}
}
