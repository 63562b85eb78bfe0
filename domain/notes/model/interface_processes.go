package model

import "github.com/kaspanet/notestub/domain/notes/model/externalapi"

// ScriptKind is one of the standard ownership templates a note can be created with
type ScriptKind interface {
	// RoutineName is the name of the library routine the template executes
	RoutineName() string
	// Inputs are the static inputs in the order the routine declares them
	Inputs() []externalapi.Felt
	// Validate checks the template's parameters before a note is built from it
	Validate() error
}

// NoteFactory builds notes from the standard ownership templates
type NoteFactory interface {
	CreateNote(kind ScriptKind, assets []externalapi.Asset, sender externalapi.AccountID,
		tag *externalapi.Felt, serialNumber externalapi.Word) (*externalapi.Note, error)
}

// StubDecoder recovers a verified NoteStub from its serialized word layout
type StubDecoder interface {
	DecodeStub(elements []externalapi.Word) (*externalapi.NoteStub, error)
}
