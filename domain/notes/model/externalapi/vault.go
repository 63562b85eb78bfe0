package externalapi

import "github.com/kaspanet/notestub/domain/notes/utils/hashes"

// MaxAssetsPerNote is the largest number of assets a single note vault can hold.
const MaxAssetsPerNote = 255

// NoteVault is the ordered collection of assets carried by a note.
// NoteVaults are only validated when built through the object library.
type NoteVault struct {
	Assets []Asset
}

// Len returns the number of assets in the vault
func (v *NoteVault) Len() int {
	return len(v.Assets)
}

// Hash commits to the ordered contents of the vault
func (v *NoteVault) Hash() Digest {
	return ComputeVaultHash(v.Words())
}

// ComputeVaultHash returns the commitment of a vault whose serialized assets are words
func ComputeVaultHash(words []Word) Digest {
	writer := hashes.NewNoteVaultHashWriter()
	for _, word := range words {
		writeElements(writer, word[:])
	}
	return DigestFromHash(writer.Finalize())
}

// Words returns the serialized assets, one Word per asset
func (v *NoteVault) Words() []Word {
	words := make([]Word, len(v.Assets))
	for i, asset := range v.Assets {
		words[i] = asset.Word()
	}
	return words
}

// Clone returns a clone of NoteVault
func (v *NoteVault) Clone() *NoteVault {
	assets := make([]Asset, len(v.Assets))
	copy(assets, v.Assets)
	return &NoteVault{Assets: assets}
}

// Equal returns whether v equals to other
func (v *NoteVault) Equal(other *NoteVault) bool {
	if v == nil || other == nil {
		return v == other
	}
	if len(v.Assets) != len(other.Assets) {
		return false
	}
	for i, asset := range v.Assets {
		if asset != other.Assets[i] {
			return false
		}
	}
	return true
}
