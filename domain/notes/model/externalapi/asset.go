package externalapi

// NonFungibleDataMask clears the most significant bit of the last element of a
// non-fungible asset, so that element can never read as a fungible faucet ID.
const NonFungibleDataMask uint64 = 1<<63 - 1

// MaxFungibleAmount is the largest amount a single fungible asset can carry.
const MaxFungibleAmount uint64 = 1<<63 - 1

// Asset is a quantity of a fungible or non-fungible resource, packed in one Word.
//
// Fungible:     [amount, 0, 0, faucetID]
// Non-fungible: [h0, faucetID, h2, h3], with the top bit of h3 cleared
type Asset Word

// Word returns the serialized form of a.
func (a Asset) Word() Word {
	return Word(a)
}

// IsFungible returns whether a is laid out as a fungible asset.
func (a Asset) IsFungible() bool {
	return AccountID(a[3]).Type() == AccountTypeFungibleFaucet
}

// FaucetID returns the faucet that issued a.
func (a Asset) FaucetID() AccountID {
	if a.IsFungible() {
		return AccountID(a[3])
	}
	return AccountID(a[1])
}

// Amount returns the amount of a fungible asset, and 1 for a non-fungible one.
func (a Asset) Amount() uint64 {
	if a.IsFungible() {
		return a[0].Uint64()
	}
	return 1
}
