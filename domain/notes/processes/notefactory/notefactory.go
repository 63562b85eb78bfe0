package notefactory

import (
	"fmt"

	"github.com/kaspanet/notestub/domain/notes/model"
	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/kaspanet/notestub/domain/notes/noteassembler"
	"github.com/kaspanet/notestub/domain/notes/noteerrors"
)

const noteScriptTemplate = `
use.%s

begin
    exec.basic::%s
end
`

type noteFactory struct {
	assembler model.Assembler
	objects   model.NoteObjects
}

// New instantiates a new NoteFactory
func New(assembler model.Assembler, objects model.NoteObjects) model.NoteFactory {
	return &noteFactory{
		assembler: assembler,
		objects:   objects,
	}
}

// ScriptSource returns the source text of the note script for kind
func ScriptSource(kind model.ScriptKind) string {
	return fmt.Sprintf(noteScriptTemplate, noteassembler.BasicNoteScriptsPath, kind.RoutineName())
}

// CreateNote builds a note locked by the standard script of the given kind.
// A nil tag defaults to the zero element.
func (f *noteFactory) CreateNote(kind model.ScriptKind, assets []externalapi.Asset, sender externalapi.AccountID,
	tag *externalapi.Felt, serialNumber externalapi.Word) (*externalapi.Note, error) {

	err := kind.Validate()
	if err != nil {
		return nil, err
	}
	inputs := kind.Inputs()
	script, err := f.assembler.Compile(ScriptSource(kind))
	if err != nil {
		return nil, noteerrors.NewErrScriptCompilation(err)
	}

	noteTag := externalapi.ZeroFelt
	if tag != nil {
		noteTag = *tag
	}

	note, err := f.objects.BuildNote(script, inputs, assets, serialNumber, sender, noteTag, nil)
	if err != nil {
		return nil, err
	}
	log.Debugf("Created %s note %s for sender %s", kind.RoutineName(), note.Hash(), sender)
	return note, nil
}
