package externalapi

import "github.com/kaspanet/notestub/domain/notes/utils/hashes"

// ComputeNoteRecipient binds a serial number, a script and its inputs into a
// single commitment.
func ComputeNoteRecipient(serialNumber Word, scriptHash Digest, inputsHash Digest) Digest {
	serialHash := MergeDigests(Digest(serialNumber), Digest(ZeroWord))
	return MergeDigests(MergeDigests(serialHash, scriptHash), inputsHash)
}

// ComputeNoteHash commits to a recipient, a vault commitment and a metadata word.
func ComputeNoteHash(recipient Digest, vaultHash Digest, metadata Word) Digest {
	writer := hashes.NewNoteStubHashWriter()
	writeElements(writer, recipient[:])
	writeElements(writer, vaultHash[:])
	writeElements(writer, metadata[:])
	return DigestFromHash(writer.Finalize())
}

// Note is a complete asset-transfer descriptor. Notes are immutable once built.
type Note struct {
	Script       *NoteScript
	Inputs       *NoteInputs
	Vault        *NoteVault
	SerialNumber Word
	Metadata     *NoteMetadata
	AuxData      []Felt
}

// Recipient returns the commitment to the note's script, inputs and serial number
func (n *Note) Recipient() Digest {
	return ComputeNoteRecipient(n.SerialNumber, n.Script.Hash, n.Inputs.Hash())
}

// Stub returns the minimal summary of the note
func (n *Note) Stub() *NoteStub {
	return &NoteStub{
		Recipient: n.Recipient(),
		Vault:     n.Vault.Clone(),
		Metadata:  &NoteMetadata{Sender: n.Metadata.Sender, Tag: n.Metadata.Tag, NumAssets: n.Metadata.NumAssets},
	}
}

// Hash returns the note's stub hash
func (n *Note) Hash() Digest {
	return ComputeNoteHash(n.Recipient(), n.Vault.Hash(), n.Metadata.Word())
}

// NoteStub is a verified, minimal summary of a note recovered from serialized data.
type NoteStub struct {
	Recipient Digest
	Vault     *NoteVault
	Metadata  *NoteMetadata
}

// Hash commits to the recipient, the vault and the metadata of the stub
func (s *NoteStub) Hash() Digest {
	return ComputeNoteHash(s.Recipient, s.Vault.Hash(), s.Metadata.Word())
}

// Equal returns whether s equals to other
func (s *NoteStub) Equal(other *NoteStub) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Recipient == other.Recipient &&
		s.Vault.Equal(other.Vault) &&
		s.Metadata.Equal(other.Metadata)
}
