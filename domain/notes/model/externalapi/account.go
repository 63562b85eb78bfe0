package externalapi

import "fmt"

// AccountID identifies the owner, sender or recipient of assets. A valid
// AccountID is a non-zero canonical field element.
type AccountID uint64

// AccountType is encoded in the two most significant bits of an AccountID.
type AccountType uint8

// The account types that can be encoded in an AccountID
const (
	AccountTypeRegularImmutableCode AccountType = iota
	AccountTypeRegularUpdatableCode
	AccountTypeFungibleFaucet
	AccountTypeNonFungibleFaucet
)

const accountTypeShift = 62

var accountTypeStrings = map[AccountType]string{
	AccountTypeRegularImmutableCode: "RegularImmutableCode",
	AccountTypeRegularUpdatableCode: "RegularUpdatableCode",
	AccountTypeFungibleFaucet:       "FungibleFaucet",
	AccountTypeNonFungibleFaucet:    "NonFungibleFaucet",
}

func (t AccountType) String() string {
	if s, ok := accountTypeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("AccountType(%d)", uint8(t))
}

// Type returns the account type encoded in id.
func (id AccountID) Type() AccountType {
	return AccountType(uint64(id) >> accountTypeShift)
}

// IsFaucet returns whether id belongs to a fungible or a non-fungible faucet.
func (id AccountID) IsFaucet() bool {
	t := id.Type()
	return t == AccountTypeFungibleFaucet || t == AccountTypeNonFungibleFaucet
}

// IsValid returns whether id is a non-zero canonical field element.
func (id AccountID) IsValid() bool {
	return id != 0 && uint64(id) < FieldModulus
}

// Felt converts id into its field element representation.
func (id AccountID) Felt() Felt {
	return Felt(id)
}

func (id AccountID) String() string {
	return fmt.Sprintf("0x%016x", uint64(id))
}
