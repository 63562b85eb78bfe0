package stubdecoder

import (
	"github.com/kaspanet/notestub/domain/notes/model"
	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/kaspanet/notestub/domain/notes/noteerrors"
	"github.com/kaspanet/notestub/domain/notes/utils/noteserialization"
)

type stubDecoder struct {
	objects model.NoteObjects
}

// New instantiates a new StubDecoder
func New(objects model.NoteObjects) model.StubDecoder {
	return &stubDecoder{objects: objects}
}

// DecodeStub parses elements laid out as described in noteserialization and
// returns the stub only if both the vault commitment and the top-level hash
// match the recomputed values.
func (d *stubDecoder) DecodeStub(elements []externalapi.Word) (*externalapi.NoteStub, error) {
	if len(elements) < noteserialization.StubCoreDataSize {
		return nil, noteerrors.NewErrInvalidStubLength(len(elements))
	}

	hash := externalapi.DigestFromWord(elements[noteserialization.StubHashOffset])
	metadata, err := d.objects.DecodeMetadata(elements[noteserialization.StubMetadataOffset])
	if err != nil {
		return nil, err
	}
	recipient := externalapi.DigestFromWord(elements[noteserialization.StubRecipientOffset])
	vaultHash := externalapi.DigestFromWord(elements[noteserialization.StubVaultHashOffset])

	numAssets := int(metadata.NumAssets.Uint64())
	requiredLength := noteserialization.StubDataLength(numAssets)
	if len(elements) < requiredLength {
		return nil, noteerrors.NewErrInvalidStubLength(len(elements))
	}

	// The commitment is checked over the raw words first so that tampered
	// contents are reported as such even when they no longer decode.
	assetWords := elements[noteserialization.StubAssetsOffset:requiredLength]
	err = verifyCommitment(vaultHash, externalapi.ComputeVaultHash(assetWords), noteerrors.NewErrInconsistentVaultCommitment)
	if err != nil {
		return nil, err
	}
	vault, err := d.objects.DecodeVault(assetWords)
	if err != nil {
		return nil, err
	}
	err = verifyCommitment(vaultHash, vault.Hash(), noteerrors.NewErrInconsistentVaultCommitment)
	if err != nil {
		return nil, err
	}

	stub, err := d.objects.NewNoteStub(recipient, vault, metadata)
	if err != nil {
		return nil, err
	}
	err = verifyCommitment(hash, stub.Hash(), noteerrors.NewErrInconsistentStubCommitment)
	if err != nil {
		return nil, err
	}

	if len(elements) > requiredLength {
		log.Debugf("Ignoring %d trailing words after stub %s", len(elements)-requiredLength, hash)
	}
	log.Tracef("Decoded stub %s with %d assets", hash, numAssets)
	return stub, nil
}

// verifyCommitment fails with newErr(stored, recomputed) when the two differ
func verifyCommitment(stored, recomputed externalapi.Digest,
	newErr func(expected, found externalapi.Digest) error) error {

	if stored != recomputed {
		return newErr(stored, recomputed)
	}
	return nil
}
