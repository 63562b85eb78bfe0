package objects

import (
	"github.com/kaspanet/notestub/domain/notes/model"
	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/kaspanet/notestub/domain/notes/noteerrors"
	"github.com/pkg/errors"
)

type noteObjects struct{}

// New instantiates the default NoteObjects library
func New() model.NoteObjects {
	return noteObjects{}
}

// AccountIDFromFelt converts a field element into an AccountID
func AccountIDFromFelt(felt externalapi.Felt) (externalapi.AccountID, error) {
	id := externalapi.AccountID(felt)
	if !id.IsValid() {
		return 0, errors.Wrapf(noteerrors.ErrInvalidAccountID, "%s is not a valid account ID", id)
	}
	return id, nil
}

func (noteObjects) BuildNote(script *externalapi.NoteScript, inputs []externalapi.Felt, assets []externalapi.Asset,
	serialNumber externalapi.Word, sender externalapi.AccountID, tag externalapi.Felt,
	auxData []externalapi.Felt) (*externalapi.Note, error) {

	if script == nil {
		return nil, errors.WithStack(noteerrors.ErrMissingScript)
	}
	if len(inputs) > externalapi.MaxInputsPerNote {
		return nil, errors.Wrapf(noteerrors.ErrTooManyInputs, "note has %d inputs while the maximum is %d",
			len(inputs), externalapi.MaxInputsPerNote)
	}
	for i, input := range inputs {
		if !input.IsCanonical() {
			return nil, errors.Wrapf(noteerrors.ErrInvalidInput, "input %d (%d) is not canonical", i, input)
		}
	}
	for i, element := range serialNumber {
		if !element.IsCanonical() {
			return nil, errors.Wrapf(noteerrors.ErrInvalidSerialNumber, "serial number element %d is not canonical", i)
		}
	}
	if !sender.IsValid() {
		return nil, errors.Wrapf(noteerrors.ErrInvalidAccountID, "invalid sender %s", sender)
	}
	if !tag.IsCanonical() {
		return nil, errors.Wrapf(noteerrors.ErrInvalidMetadata, "tag %d is not canonical", tag)
	}

	vault, err := NewNoteVault(assets)
	if err != nil {
		return nil, err
	}

	inputValues := make([]externalapi.Felt, len(inputs))
	copy(inputValues, inputs)
	var aux []externalapi.Felt
	if auxData != nil {
		aux = make([]externalapi.Felt, len(auxData))
		copy(aux, auxData)
	}

	note := &externalapi.Note{
		Script:       script,
		Inputs:       &externalapi.NoteInputs{Values: inputValues},
		Vault:        vault,
		SerialNumber: serialNumber,
		Metadata: &externalapi.NoteMetadata{
			Sender:    sender,
			Tag:       tag,
			NumAssets: externalapi.Felt(vault.Len()),
		},
		AuxData: aux,
	}
	log.Tracef("Built note %s with %d assets", note.Hash(), vault.Len())
	return note, nil
}

func (noteObjects) DecodeMetadata(word externalapi.Word) (*externalapi.NoteMetadata, error) {
	sender, err := AccountIDFromFelt(word[0])
	if err != nil {
		return nil, errors.Wrapf(noteerrors.ErrInvalidMetadata, "metadata sender: %s", err)
	}
	if word[3] != externalapi.ZeroFelt {
		return nil, errors.Wrapf(noteerrors.ErrInvalidMetadata, "metadata padding element is %d", word[3])
	}
	if !word[1].IsCanonical() {
		return nil, errors.Wrapf(noteerrors.ErrInvalidMetadata, "metadata tag %d is not canonical", word[1])
	}
	numAssets := word[2].Uint64()
	if numAssets == 0 || numAssets > externalapi.MaxAssetsPerNote {
		return nil, errors.Wrapf(noteerrors.ErrInvalidMetadata, "metadata declares %d assets, expected 1..%d",
			numAssets, externalapi.MaxAssetsPerNote)
	}
	return &externalapi.NoteMetadata{
		Sender:    sender,
		Tag:       word[1],
		NumAssets: word[2],
	}, nil
}

func (noteObjects) DecodeVault(words []externalapi.Word) (*externalapi.NoteVault, error) {
	assets := make([]externalapi.Asset, len(words))
	for i, word := range words {
		asset, err := AssetFromWord(word)
		if err != nil {
			return nil, errors.Wrapf(err, "asset %d", i)
		}
		assets[i] = asset
	}
	return NewNoteVault(assets)
}

func (noteObjects) NewNoteStub(recipient externalapi.Digest, vault *externalapi.NoteVault,
	metadata *externalapi.NoteMetadata) (*externalapi.NoteStub, error) {

	if metadata.NumAssets.Uint64() != uint64(vault.Len()) {
		return nil, errors.Wrapf(noteerrors.ErrInconsistentAssetCount, "metadata declares %d assets while the vault holds %d",
			metadata.NumAssets, vault.Len())
	}
	return &externalapi.NoteStub{
		Recipient: recipient,
		Vault:     vault,
		Metadata:  metadata,
	}, nil
}
