package model

import "github.com/kaspanet/notestub/domain/notes/model/externalapi"

// NoteObjects is the object library notes are assembled and decoded with
type NoteObjects interface {
	BuildNote(script *externalapi.NoteScript, inputs []externalapi.Felt, assets []externalapi.Asset,
		serialNumber externalapi.Word, sender externalapi.AccountID, tag externalapi.Felt,
		auxData []externalapi.Felt) (*externalapi.Note, error)
	DecodeMetadata(word externalapi.Word) (*externalapi.NoteMetadata, error)
	DecodeVault(words []externalapi.Word) (*externalapi.NoteVault, error)
	NewNoteStub(recipient externalapi.Digest, vault *externalapi.NoteVault,
		metadata *externalapi.NoteMetadata) (*externalapi.NoteStub, error)
}
