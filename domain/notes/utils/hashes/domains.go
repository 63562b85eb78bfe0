package hashes

import "golang.org/x/crypto/blake2b"

const (
	noteVaultDomain     = "NoteVault"
	noteInputsDomain    = "NoteInputs"
	noteStubDomain      = "NoteStub"
	digestMergeDomain   = "DigestMerge"
	noteScriptDomain    = "NoteScript"
	procedureBodyDomain = "ProcedureBody"
)

func newHashWriter(domain string) HashWriter {
	// blake2b.New256 only fails on keys longer than 64 bytes.
	blake, err := blake2b.New256([]byte(domain))
	if err != nil {
		panic(err)
	}
	return HashWriter{blake}
}

// NewNoteVaultHashWriter returns a new HashWriter used for note vault commitments
func NewNoteVaultHashWriter() HashWriter {
	return newHashWriter(noteVaultDomain)
}

// NewNoteInputsHashWriter returns a new HashWriter used for note input commitments
func NewNoteInputsHashWriter() HashWriter {
	return newHashWriter(noteInputsDomain)
}

// NewNoteStubHashWriter returns a new HashWriter used for the top-level note stub hash
func NewNoteStubHashWriter() HashWriter {
	return newHashWriter(noteStubDomain)
}

// NewDigestMergeHashWriter returns a new HashWriter used to merge two digests into one
func NewDigestMergeHashWriter() HashWriter {
	return newHashWriter(digestMergeDomain)
}

// NewNoteScriptHashWriter returns a new HashWriter used for compiled note script roots
func NewNoteScriptHashWriter() HashWriter {
	return newHashWriter(noteScriptDomain)
}

// NewProcedureBodyHashWriter returns a new HashWriter used for library procedure digests
func NewProcedureBodyHashWriter() HashWriter {
	return newHashWriter(procedureBodyDomain)
}
