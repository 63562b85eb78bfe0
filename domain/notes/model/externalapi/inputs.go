package externalapi

import "github.com/kaspanet/notestub/domain/notes/utils/hashes"

// MaxInputsPerNote is the largest number of static inputs a note script accepts.
const MaxInputsPerNote = 16

// NoteInputs are the static values a note script is executed with, in the
// order the script declares them.
type NoteInputs struct {
	Values []Felt
}

// Hash commits to the ordered inputs
func (in *NoteInputs) Hash() Digest {
	writer := hashes.NewNoteInputsHashWriter()
	writer.WriteUint64(uint64(len(in.Values)))
	writeElements(writer, in.Values)
	return DigestFromHash(writer.Finalize())
}

// Equal returns whether in equals to other
func (in *NoteInputs) Equal(other *NoteInputs) bool {
	if in == nil || other == nil {
		return in == other
	}
	if len(in.Values) != len(other.Values) {
		return false
	}
	for i, value := range in.Values {
		if value != other.Values[i] {
			return false
		}
	}
	return true
}
