package testutils

import (
	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/kaspanet/notestub/domain/notes/objects"
	"github.com/pkg/errors"
)

// Account IDs of every type, for use in tests
const (
	SenderAccountID       externalapi.AccountID = 0x0000_0000_0000_1234
	TargetAccountID       externalapi.AccountID = 0x4000_0000_0000_5678
	FungibleFaucetID      externalapi.AccountID = 0x8000_0000_0000_0001
	OtherFungibleFaucetID externalapi.AccountID = 0x8000_0000_0000_0002
	NonFungibleFaucetID   externalapi.AccountID = 0xC000_0000_0000_0003
)

// SerialNumber is a fixed serial number for use in tests
var SerialNumber = externalapi.Word{11, 22, 33, 44}

// TestAssets returns a valid vault's worth of assets: two fungible assets from
// different faucets followed by one non-fungible asset.
func TestAssets() []externalapi.Asset {
	first, err := objects.NewFungibleAsset(FungibleFaucetID, 100)
	if err != nil {
		panic(errors.Wrap(err, "invalid fungible asset in test source"))
	}
	second, err := objects.NewFungibleAsset(OtherFungibleFaucetID, 7)
	if err != nil {
		panic(errors.Wrap(err, "invalid fungible asset in test source"))
	}
	third, err := objects.NewNonFungibleAsset(NonFungibleFaucetID, externalapi.Word{9, 0, 8, 7})
	if err != nil {
		panic(errors.Wrap(err, "invalid non-fungible asset in test source"))
	}
	return []externalapi.Asset{first, second, third}
}
