package noteserialization

import "github.com/kaspanet/notestub/domain/notes/model/externalapi"

// StubLayoutVersion identifies the word layout described by the offsets below.
// Any change to them is a breaking format change and must bump this version.
const StubLayoutVersion = 1

// Word offsets of a serialized note stub:
//
//	[0]        top-level stub hash
//	[1]        metadata
//	[2]        recipient
//	[3]        vault commitment
//	[4 .. 4+n) vault assets, n = metadata.NumAssets
const (
	StubHashOffset      = 0
	StubMetadataOffset  = 1
	StubRecipientOffset = 2
	StubVaultHashOffset = 3
	StubAssetsOffset    = 4

	// StubCoreDataSize is the number of words in the fixed head.
	StubCoreDataSize = 4

	// WordsPerAsset is the number of words each vault asset occupies.
	WordsPerAsset = 1
)

// StubDataLength returns the number of words a stub holding numAssets assets occupies
func StubDataLength(numAssets int) int {
	return StubAssetsOffset + numAssets*WordsPerAsset
}

// EncodeStub serializes stub into its word layout
func EncodeStub(stub *externalapi.NoteStub) []externalapi.Word {
	words := make([]externalapi.Word, StubDataLength(stub.Vault.Len()))
	words[StubHashOffset] = stub.Hash().Word()
	words[StubMetadataOffset] = stub.Metadata.Word()
	words[StubRecipientOffset] = stub.Recipient.Word()
	words[StubVaultHashOffset] = stub.Vault.Hash().Word()
	for i, asset := range stub.Vault.Assets {
		words[StubAssetsOffset+i*WordsPerAsset] = asset.Word()
	}
	return words
}
