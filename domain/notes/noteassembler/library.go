package noteassembler

import (
	"strings"

	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/kaspanet/notestub/domain/notes/utils/hashes"
	"github.com/pkg/errors"
)

// BasicNoteScriptsPath is the import path of the library holding the standard note scripts
const BasicNoteScriptsPath = "miden::note_scripts::basic"

// Procedure is a named routine exported by a Library
type Procedure struct {
	Name   string
	Body   string
	Digest externalapi.Digest
}

// Library is a named collection of procedures scripts can import
type Library struct {
	Path       string
	procedures map[string]*Procedure
}

// NewLibrary returns a library at path exporting the given procedure bodies, keyed by name
func NewLibrary(path string, bodies map[string]string) (*Library, error) {
	if !isValidPath(path) {
		return nil, errors.Errorf("invalid library path %q", path)
	}
	library := &Library{
		Path:       path,
		procedures: make(map[string]*Procedure, len(bodies)),
	}
	for name, body := range bodies {
		if !isValidIdentifier(name) {
			return nil, errors.Errorf("invalid procedure name %q in library %s", name, path)
		}
		library.procedures[name] = &Procedure{
			Name:   name,
			Body:   body,
			Digest: procedureDigest(path, name, body),
		}
	}
	return library, nil
}

// Procedure returns the procedure exported under name
func (l *Library) Procedure(name string) (*Procedure, bool) {
	procedure, ok := l.procedures[name]
	return procedure, ok
}

func procedureDigest(path, name, body string) externalapi.Digest {
	writer := hashes.NewProcedureBodyHashWriter()
	writer.InfallibleWrite([]byte(path))
	writer.InfallibleWrite([]byte{0})
	writer.InfallibleWrite([]byte(name))
	writer.InfallibleWrite([]byte{0})
	for _, line := range normalizedLines(body) {
		writer.InfallibleWrite([]byte(line))
		writer.InfallibleWrite([]byte{'\n'})
	}
	return externalapi.DigestFromHash(writer.Finalize())
}

func normalizedLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = stripComment(line)
		if line == "" {
			continue
		}
		lines = append(lines, strings.Join(strings.Fields(line), " "))
	}
	return lines
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func isValidPath(path string) bool {
	segments := strings.Split(path, "::")
	for _, segment := range segments {
		if !isValidIdentifier(segment) {
			return false
		}
	}
	return true
}

func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

const p2idBody = `
# Adds every asset of the note to the consuming account, provided that account
# is the one named by the first note input.
push.0 exec.note::get_inputs
mem_load
exec.account::get_id
assert_eq
exec.add_note_assets_to_account
`

const p2idrBody = `
# Like p2id, but once the block height reaches the second note input the
# sender may consume the note as well.
push.0 exec.note::get_inputs
mem_load
exec.account::get_id
dup movup.2 eq
if.true
    drop
    exec.add_note_assets_to_account
else
    exec.note::get_sender eq assert
    push.1 mem_load
    exec.tx::get_block_number lte assert
    exec.add_note_assets_to_account
end
`

// NewBasicNoteScriptsLibrary returns the library exporting the standard pay-to-id routines
func NewBasicNoteScriptsLibrary() *Library {
	library, err := NewLibrary(BasicNoteScriptsPath, map[string]string{
		"p2id":  p2idBody,
		"p2idr": p2idrBody,
	})
	if err != nil {
		panic(errors.Wrap(err, "the built-in note scripts library is malformed"))
	}
	return library
}
