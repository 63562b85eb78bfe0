package notefactory

import (
	"github.com/kaspanet/notestub/domain/notes/model"
	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/kaspanet/notestub/domain/notes/noteerrors"
	"github.com/pkg/errors"
)

// Routine names of the standard note scripts in the basic note scripts library
const (
	PayToIDRoutine           = "p2id"
	PayToIDWithRecallRoutine = "p2idr"
)

// PayToID transfers the note's assets unconditionally to Target
type PayToID struct {
	Target externalapi.AccountID
}

// RoutineName returns the name of the pay-to-id routine
func (PayToID) RoutineName() string {
	return PayToIDRoutine
}

// Inputs returns [target]
func (p PayToID) Inputs() []externalapi.Felt {
	return []externalapi.Felt{p.Target.Felt()}
}

// Validate checks that Target is a valid account ID
func (p PayToID) Validate() error {
	return validateTarget(p.Target)
}

// PayToIDWithRecall transfers the note's assets to Target, and lets the sender
// reclaim them once the chain reaches RecallHeight.
type PayToIDWithRecall struct {
	Target       externalapi.AccountID
	RecallHeight uint32
}

// RoutineName returns the name of the pay-to-id-with-recall routine
func (PayToIDWithRecall) RoutineName() string {
	return PayToIDWithRecallRoutine
}

// Inputs returns [target, recallHeight]
func (p PayToIDWithRecall) Inputs() []externalapi.Felt {
	return []externalapi.Felt{p.Target.Felt(), externalapi.Felt(p.RecallHeight)}
}

// Validate checks that Target is a valid account ID
func (p PayToIDWithRecall) Validate() error {
	return validateTarget(p.Target)
}

func validateTarget(target externalapi.AccountID) error {
	if !target.IsValid() {
		return errors.Wrapf(noteerrors.ErrInvalidAccountID, "invalid target %s", target)
	}
	return nil
}

var (
	_ model.ScriptKind = PayToID{}
	_ model.ScriptKind = PayToIDWithRecall{}
)
