package objects

import (
	"errors"
	"testing"

	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/kaspanet/notestub/domain/notes/noteerrors"
)

const (
	testSender      externalapi.AccountID = 0x1234
	testFaucet      externalapi.AccountID = 0x8000_0000_0000_00aa
	testOtherFaucet externalapi.AccountID = 0x8000_0000_0000_00bb
	testNFTFaucet   externalapi.AccountID = 0xC000_0000_0000_00cc
)

func mustFungible(t *testing.T, faucetID externalapi.AccountID, amount uint64) externalapi.Asset {
	asset, err := NewFungibleAsset(faucetID, amount)
	if err != nil {
		t.Fatalf("mustFungible: %+v", err)
	}
	return asset
}

func TestNewFungibleAsset(t *testing.T) {
	asset := mustFungible(t, testFaucet, 1000)
	if !asset.IsFungible() || asset.FaucetID() != testFaucet || asset.Amount() != 1000 {
		t.Fatalf("TestNewFungibleAsset: Unexpected asset %v", asset)
	}

	tests := []struct {
		name     string
		faucetID externalapi.AccountID
		amount   uint64
	}{
		{"zero amount", testFaucet, 0},
		{"amount too large", testFaucet, externalapi.MaxFungibleAmount + 1},
		{"regular account as faucet", testSender, 1},
		{"non-fungible faucet", testNFTFaucet, 1},
	}
	for _, test := range tests {
		_, err := NewFungibleAsset(test.faucetID, test.amount)
		if !errors.Is(err, noteerrors.ErrInvalidAsset) {
			t.Fatalf("TestNewFungibleAsset: %s: Expected ErrInvalidAsset, found: %+v", test.name, err)
		}
	}
}

func TestNewNonFungibleAsset(t *testing.T) {
	asset, err := NewNonFungibleAsset(testNFTFaucet, externalapi.Word{1, 999, 3, 4})
	if err != nil {
		t.Fatalf("TestNewNonFungibleAsset: %+v", err)
	}
	if asset.IsFungible() || asset.FaucetID() != testNFTFaucet || asset[1] != testNFTFaucet.Felt() {
		t.Fatalf("TestNewNonFungibleAsset: Unexpected asset %v", asset)
	}
	if asset.Amount() != 1 {
		t.Fatalf("TestNewNonFungibleAsset: Expected amount 1, found: %d", asset.Amount())
	}

	_, err = NewNonFungibleAsset(testFaucet, externalapi.Word{1, 0, 3, 4})
	if !errors.Is(err, noteerrors.ErrInvalidAsset) {
		t.Fatalf("TestNewNonFungibleAsset: Expected ErrInvalidAsset, found: %+v", err)
	}
}

func TestNewNonFungibleAssetHighLastElement(t *testing.T) {
	tests := []externalapi.Felt{0x8000_0000_0000_0001, 0xC000_0000_0000_0002, 0xFFFF_FFFF_0000_0000}
	for _, last := range tests {
		asset, err := NewNonFungibleAsset(testNFTFaucet, externalapi.Word{9, 0, 8, last})
		if err != nil {
			t.Fatalf("TestNewNonFungibleAssetHighLastElement: %x: %+v", last, err)
		}
		if asset.IsFungible() || asset.FaucetID() != testNFTFaucet {
			t.Fatalf("TestNewNonFungibleAssetHighLastElement: %x: Expected a non-fungible asset of %s, found: %v",
				last, testNFTFaucet, asset)
		}
		expectedLast := externalapi.Felt(last.Uint64() & externalapi.NonFungibleDataMask)
		if asset[3] != expectedLast {
			t.Fatalf("TestNewNonFungibleAssetHighLastElement: Expected last element %x, found: %x", expectedLast, asset[3])
		}
		if _, err := AssetFromWord(asset.Word()); err != nil {
			t.Fatalf("TestNewNonFungibleAssetHighLastElement: %x: AssetFromWord: %+v", last, err)
		}
	}

	_, err := AssetFromWord(externalapi.Word{9, testNFTFaucet.Felt(), 8, 0xC000_0000_0000_0002})
	if !errors.Is(err, noteerrors.ErrInvalidAsset) {
		t.Fatalf("TestNewNonFungibleAssetHighLastElement: Expected ErrInvalidAsset, found: %+v", err)
	}
}

func TestNewNoteVault(t *testing.T) {
	nft, err := NewNonFungibleAsset(testNFTFaucet, externalapi.Word{1, 0, 3, 4})
	if err != nil {
		t.Fatalf("TestNewNoteVault: %+v", err)
	}

	tooMany := make([]externalapi.Asset, externalapi.MaxAssetsPerNote+1)
	for i := range tooMany {
		tooMany[i], err = NewNonFungibleAsset(testNFTFaucet, externalapi.Word{externalapi.Felt(i), 0, 0, 0})
		if err != nil {
			t.Fatalf("TestNewNoteVault: %+v", err)
		}
	}

	tests := []struct {
		name     string
		assets   []externalapi.Asset
		expected error
	}{
		{"valid", []externalapi.Asset{mustFungible(t, testFaucet, 1), mustFungible(t, testOtherFaucet, 1), nft}, nil},
		{"empty", nil, noteerrors.ErrEmptyAssetList},
		{"too many", tooMany, noteerrors.ErrTooManyAssets},
		{"duplicate fungible", []externalapi.Asset{mustFungible(t, testFaucet, 1), mustFungible(t, testFaucet, 2)},
			noteerrors.ErrDuplicateFungibleAsset},
		{"duplicate non-fungible", []externalapi.Asset{nft, nft}, noteerrors.ErrDuplicateNonFungibleAsset},
		{"malformed", []externalapi.Asset{{1, 1, 1, testFaucet.Felt()}}, noteerrors.ErrInvalidAsset},
	}
	for _, test := range tests {
		vault, err := NewNoteVault(test.assets)
		if test.expected == nil {
			if err != nil {
				t.Fatalf("TestNewNoteVault: %s: %+v", test.name, err)
			}
			if vault.Len() != len(test.assets) {
				t.Fatalf("TestNewNoteVault: %s: Expected %d assets, found: %d", test.name, len(test.assets), vault.Len())
			}
			continue
		}
		if !errors.Is(err, test.expected) {
			t.Fatalf("TestNewNoteVault: %s: Expected %s, found: %+v", test.name, test.expected, err)
		}
	}
}

func TestNewNoteVaultCopiesAssets(t *testing.T) {
	assets := []externalapi.Asset{mustFungible(t, testFaucet, 1)}
	vault, err := NewNoteVault(assets)
	if err != nil {
		t.Fatalf("TestNewNoteVaultCopiesAssets: %+v", err)
	}
	hash := vault.Hash()
	assets[0] = mustFungible(t, testFaucet, 2)
	if vault.Hash() != hash {
		t.Fatalf("TestNewNoteVaultCopiesAssets: vault changed after the input slice was modified")
	}
}

func TestDecodeMetadata(t *testing.T) {
	library := New()
	metadata, err := library.DecodeMetadata(externalapi.Word{testSender.Felt(), 17, 3, 0})
	if err != nil {
		t.Fatalf("TestDecodeMetadata: %+v", err)
	}
	expected := &externalapi.NoteMetadata{Sender: testSender, Tag: 17, NumAssets: 3}
	if !metadata.Equal(expected) {
		t.Fatalf("TestDecodeMetadata: Expected %+v, found: %+v", expected, metadata)
	}
	if metadata.Word() != (externalapi.Word{testSender.Felt(), 17, 3, 0}) {
		t.Fatalf("TestDecodeMetadata: Word() is not the inverse of DecodeMetadata")
	}

	invalid := []externalapi.Word{
		{0, 17, 3, 0},
		{externalapi.Felt(externalapi.FieldModulus), 17, 3, 0},
		{testSender.Felt(), externalapi.Felt(externalapi.FieldModulus), 3, 0},
		{testSender.Felt(), 17, 0, 0},
		{testSender.Felt(), 17, 3, 1},
	}
	for _, word := range invalid {
		_, err := library.DecodeMetadata(word)
		if !errors.Is(err, noteerrors.ErrInvalidMetadata) {
			t.Fatalf("TestDecodeMetadata: %v: Expected ErrInvalidMetadata, found: %+v", word, err)
		}
	}
}

func TestBuildNote(t *testing.T) {
	library := New()
	script := &externalapi.NoteScript{Hash: externalapi.Digest{1, 2, 3, 4}, Procedures: []string{"lib::proc"}}
	assets := []externalapi.Asset{mustFungible(t, testFaucet, 10)}
	inputs := []externalapi.Felt{testSender.Felt()}

	note, err := library.BuildNote(script, inputs, assets, externalapi.Word{1, 1, 1, 1}, testSender, 9, nil)
	if err != nil {
		t.Fatalf("TestBuildNote: %+v", err)
	}
	if note.Metadata.NumAssets != 1 || note.Metadata.Tag != 9 || note.Metadata.Sender != testSender {
		t.Fatalf("TestBuildNote: Unexpected metadata %+v", note.Metadata)
	}
	inputs[0] = 0
	if note.Inputs.Values[0] != testSender.Felt() {
		t.Fatalf("TestBuildNote: note inputs changed after the input slice was modified")
	}

	if _, err := library.BuildNote(nil, nil, assets, externalapi.Word{}, testSender, 0, nil); !errors.Is(err, noteerrors.ErrMissingScript) {
		t.Fatalf("TestBuildNote: Expected ErrMissingScript, found: %+v", err)
	}
	tooManyInputs := make([]externalapi.Felt, externalapi.MaxInputsPerNote+1)
	if _, err := library.BuildNote(script, tooManyInputs, assets, externalapi.Word{}, testSender, 0, nil); !errors.Is(err, noteerrors.ErrTooManyInputs) {
		t.Fatalf("TestBuildNote: Expected ErrTooManyInputs, found: %+v", err)
	}
}

func TestBuildNoteRejectsNonCanonicalElements(t *testing.T) {
	library := New()
	script := &externalapi.NoteScript{Hash: externalapi.Digest{1, 2, 3, 4}, Procedures: []string{"lib::proc"}}
	assets := []externalapi.Asset{mustFungible(t, testFaucet, 10)}
	nonCanonical := externalapi.Felt(externalapi.FieldModulus)

	tests := []struct {
		name     string
		inputs   []externalapi.Felt
		serial   externalapi.Word
		tag      externalapi.Felt
		expected error
	}{
		{"tag", nil, externalapi.Word{1, 1, 1, 1}, nonCanonical, noteerrors.ErrInvalidMetadata},
		{"input", []externalapi.Felt{testSender.Felt(), nonCanonical}, externalapi.Word{1, 1, 1, 1}, 0, noteerrors.ErrInvalidInput},
		{"serial number", nil, externalapi.Word{1, 1, nonCanonical, 1}, 0, noteerrors.ErrInvalidSerialNumber},
	}
	for _, test := range tests {
		_, err := library.BuildNote(script, test.inputs, assets, test.serial, testSender, test.tag, nil)
		if !errors.Is(err, test.expected) {
			t.Fatalf("TestBuildNoteRejectsNonCanonicalElements: %s: Expected %s, found: %+v", test.name, test.expected, err)
		}
	}

	largestTag := externalapi.Felt(externalapi.FieldModulus - 1)
	note, err := library.BuildNote(script, nil, assets, externalapi.Word{1, 1, 1, 1}, testSender, largestTag, nil)
	if err != nil {
		t.Fatalf("TestBuildNoteRejectsNonCanonicalElements: %+v", err)
	}
	if _, err := library.DecodeMetadata(note.Metadata.Word()); err != nil {
		t.Fatalf("TestBuildNoteRejectsNonCanonicalElements: DecodeMetadata: %+v", err)
	}
}

func TestNewNoteStubChecksAssetCount(t *testing.T) {
	vault, err := NewNoteVault([]externalapi.Asset{mustFungible(t, testFaucet, 1)})
	if err != nil {
		t.Fatalf("TestNewNoteStubChecksAssetCount: %+v", err)
	}
	metadata := &externalapi.NoteMetadata{Sender: testSender, NumAssets: 2}
	_, err = New().NewNoteStub(externalapi.Digest{}, vault, metadata)
	if !errors.Is(err, noteerrors.ErrInconsistentAssetCount) {
		t.Fatalf("TestNewNoteStubChecksAssetCount: Expected ErrInconsistentAssetCount, found: %+v", err)
	}
}
