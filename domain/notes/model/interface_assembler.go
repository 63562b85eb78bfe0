package model

import "github.com/kaspanet/notestub/domain/notes/model/externalapi"

// Assembler compiles note script source text into a compiled script handle.
// A failed compilation returns the assembler's diagnostic as the error.
type Assembler interface {
	Compile(source string) (*externalapi.NoteScript, error)
}
