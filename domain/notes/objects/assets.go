package objects

import (
	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/kaspanet/notestub/domain/notes/noteerrors"
	"github.com/pkg/errors"
)

// NewFungibleAsset returns an asset of the given amount issued by faucetID
func NewFungibleAsset(faucetID externalapi.AccountID, amount uint64) (externalapi.Asset, error) {
	asset := externalapi.Asset{externalapi.Felt(amount), externalapi.ZeroFelt, externalapi.ZeroFelt, faucetID.Felt()}
	err := ValidateAsset(asset)
	if err != nil {
		return externalapi.Asset{}, err
	}
	return asset, nil
}

// NewNonFungibleAsset returns the non-fungible asset identified by data and issued by faucetID.
// The second element of data is replaced by the faucet ID and the top bit of the
// last element is cleared.
func NewNonFungibleAsset(faucetID externalapi.AccountID, data externalapi.Word) (externalapi.Asset, error) {
	last := externalapi.Felt(data[3].Uint64() & externalapi.NonFungibleDataMask)
	asset := externalapi.Asset{data[0], faucetID.Felt(), data[2], last}
	err := ValidateAsset(asset)
	if err != nil {
		return externalapi.Asset{}, err
	}
	return asset, nil
}

// AssetFromWord interprets word as an asset
func AssetFromWord(word externalapi.Word) (externalapi.Asset, error) {
	asset := externalapi.Asset(word)
	err := ValidateAsset(asset)
	if err != nil {
		return externalapi.Asset{}, err
	}
	return asset, nil
}

// ValidateAsset checks that asset is a well-formed fungible or non-fungible asset
func ValidateAsset(asset externalapi.Asset) error {
	for i, element := range asset {
		if element.Uint64() >= externalapi.FieldModulus {
			return errors.Wrapf(noteerrors.ErrInvalidAsset, "element %d of asset is not canonical", i)
		}
	}

	if asset.IsFungible() {
		faucetID := externalapi.AccountID(asset[3])
		if !faucetID.IsValid() {
			return errors.Wrapf(noteerrors.ErrInvalidAsset, "invalid faucet ID %s", faucetID)
		}
		if asset[1] != externalapi.ZeroFelt || asset[2] != externalapi.ZeroFelt {
			return errors.Wrapf(noteerrors.ErrInvalidAsset, "fungible asset of faucet %s has non-zero padding", faucetID)
		}
		amount := asset[0].Uint64()
		if amount == 0 || amount > externalapi.MaxFungibleAmount {
			return errors.Wrapf(noteerrors.ErrInvalidAsset, "fungible amount %d is out of range (1..%d)",
				amount, externalapi.MaxFungibleAmount)
		}
		return nil
	}

	faucetID := externalapi.AccountID(asset[1])
	if faucetID.Type() != externalapi.AccountTypeNonFungibleFaucet || !faucetID.IsValid() {
		return errors.Wrapf(noteerrors.ErrInvalidAsset, "word is neither a fungible nor a non-fungible asset")
	}
	if asset[3].Uint64()&^externalapi.NonFungibleDataMask != 0 {
		return errors.Wrapf(noteerrors.ErrInvalidAsset, "non-fungible asset of faucet %s has its last element's top bit set", faucetID)
	}
	return nil
}

// NewNoteVault validates assets and returns a vault holding them in order
func NewNoteVault(assets []externalapi.Asset) (*externalapi.NoteVault, error) {
	if len(assets) == 0 {
		return nil, errors.WithStack(noteerrors.ErrEmptyAssetList)
	}
	if len(assets) > externalapi.MaxAssetsPerNote {
		return nil, errors.Wrapf(noteerrors.ErrTooManyAssets, "vault holds %d assets while the maximum is %d",
			len(assets), externalapi.MaxAssetsPerNote)
	}

	fungibleFaucets := make(map[externalapi.AccountID]struct{}, len(assets))
	nonFungibleAssets := make(map[externalapi.Asset]struct{}, len(assets))
	for i, asset := range assets {
		err := ValidateAsset(asset)
		if err != nil {
			return nil, errors.Wrapf(err, "asset %d", i)
		}
		if asset.IsFungible() {
			faucetID := asset.FaucetID()
			if _, exists := fungibleFaucets[faucetID]; exists {
				return nil, errors.Wrapf(noteerrors.ErrDuplicateFungibleAsset, "faucet %s appears twice", faucetID)
			}
			fungibleFaucets[faucetID] = struct{}{}
			continue
		}
		if _, exists := nonFungibleAssets[asset]; exists {
			return nil, errors.Wrapf(noteerrors.ErrDuplicateNonFungibleAsset, "asset %d appears twice", i)
		}
		nonFungibleAssets[asset] = struct{}{}
	}

	clone := make([]externalapi.Asset, len(assets))
	copy(clone, assets)
	return &externalapi.NoteVault{Assets: clone}, nil
}
