package noteerrors

import (
	"fmt"

	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/pkg/errors"
)

// These constants are used to identify a specific NoteError.
var (
	// ErrInvalidAccountID indicates an account identifier is zero or not a
	// canonical field element.
	ErrInvalidAccountID = newNoteError("ErrInvalidAccountID")

	// ErrInvalidAsset indicates a word that can't be interpreted as either a
	// fungible or a non-fungible asset.
	ErrInvalidAsset = newNoteError("ErrInvalidAsset")

	// ErrEmptyAssetList indicates an attempt to build a vault with no assets.
	ErrEmptyAssetList = newNoteError("ErrEmptyAssetList")

	// ErrTooManyAssets indicates a vault holding more than MaxAssetsPerNote assets.
	ErrTooManyAssets = newNoteError("ErrTooManyAssets")

	// ErrDuplicateFungibleAsset indicates a vault holding two fungible assets
	// issued by the same faucet.
	ErrDuplicateFungibleAsset = newNoteError("ErrDuplicateFungibleAsset")

	// ErrDuplicateNonFungibleAsset indicates a vault holding the same
	// non-fungible asset twice.
	ErrDuplicateNonFungibleAsset = newNoteError("ErrDuplicateNonFungibleAsset")

	// ErrTooManyInputs indicates a note with more than MaxInputsPerNote static inputs.
	ErrTooManyInputs = newNoteError("ErrTooManyInputs")

	// ErrInvalidInput indicates a static note input that is not a canonical field element.
	ErrInvalidInput = newNoteError("ErrInvalidInput")

	// ErrInvalidSerialNumber indicates a serial number with a non-canonical element.
	ErrInvalidSerialNumber = newNoteError("ErrInvalidSerialNumber")

	// ErrInvalidMetadata indicates a metadata word that can't be decoded.
	ErrInvalidMetadata = newNoteError("ErrInvalidMetadata")

	// ErrInconsistentAssetCount indicates stub metadata declaring a number of
	// assets other than what the vault holds.
	ErrInconsistentAssetCount = newNoteError("ErrInconsistentAssetCount")

	// ErrMissingScript indicates an attempt to build a note without a compiled script.
	ErrMissingScript = newNoteError("ErrMissingScript")
)

// NoteError identifies a failure to construct or verify a note. The caller
// can use errors.As to determine which kind of failure occurred.
type NoteError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e NoteError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e NoteError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e NoteError) Cause() error {
	return e.inner
}

func newNoteError(message string) NoteError {
	return NoteError{message: message, inner: nil}
}

// ErrInvalidStubLength indicates a serialized stub too short to hold either
// the fixed head or the vault declared by its metadata.
type ErrInvalidStubLength struct {
	Length int
}

func (e ErrInvalidStubLength) Error() string {
	return fmt.Sprintf("invalid stub data length: %d", e.Length)
}

// NewErrInvalidStubLength creates a new ErrInvalidStubLength error wrapped in a NoteError
func NewErrInvalidStubLength(length int) error {
	return errors.WithStack(NoteError{
		message: "ErrInvalidStubLength",
		inner:   ErrInvalidStubLength{length},
	})
}

// ErrInconsistentVaultCommitment indicates vault contents that don't hash to
// the stored vault commitment.
type ErrInconsistentVaultCommitment struct {
	Expected externalapi.Digest
	Found    externalapi.Digest
}

func (e ErrInconsistentVaultCommitment) Error() string {
	return fmt.Sprintf("expected vault hash %s, found %s", e.Expected, e.Found)
}

// NewErrInconsistentVaultCommitment creates a new ErrInconsistentVaultCommitment error wrapped in a NoteError
func NewErrInconsistentVaultCommitment(expected, found externalapi.Digest) error {
	return errors.WithStack(NoteError{
		message: "ErrInconsistentVaultCommitment",
		inner:   ErrInconsistentVaultCommitment{Expected: expected, Found: found},
	})
}

// ErrInconsistentStubCommitment indicates an assembled stub that doesn't hash
// to the stored top-level hash.
type ErrInconsistentStubCommitment struct {
	Expected externalapi.Digest
	Found    externalapi.Digest
}

func (e ErrInconsistentStubCommitment) Error() string {
	return fmt.Sprintf("expected stub hash %s, found %s", e.Expected, e.Found)
}

// NewErrInconsistentStubCommitment creates a new ErrInconsistentStubCommitment error wrapped in a NoteError
func NewErrInconsistentStubCommitment(expected, found externalapi.Digest) error {
	return errors.WithStack(NoteError{
		message: "ErrInconsistentStubCommitment",
		inner:   ErrInconsistentStubCommitment{Expected: expected, Found: found},
	})
}

// ErrScriptCompilation wraps a diagnostic reported by the script assembler.
type ErrScriptCompilation struct {
	Diagnostic error
}

func (e ErrScriptCompilation) Error() string {
	return e.Diagnostic.Error()
}

// Unwrap returns the assembler diagnostic
func (e ErrScriptCompilation) Unwrap() error {
	return e.Diagnostic
}

// NewErrScriptCompilation creates a new ErrScriptCompilation error wrapped in a NoteError
func NewErrScriptCompilation(diagnostic error) error {
	return errors.WithStack(NoteError{
		message: "ErrScriptCompilation",
		inner:   ErrScriptCompilation{diagnostic},
	})
}
