package main

import (
	"strconv"
	"strings"

	"github.com/kaspanet/notestub/domain/notes/model"
	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/kaspanet/notestub/domain/notes/objects"
	"github.com/kaspanet/notestub/domain/notes/processes/notefactory"
	"github.com/kaspanet/notestub/domain/notes/utils/noteserialization"
	"github.com/pkg/errors"
)

// parseFelt accepts decimal or 0x-prefixed hexadecimal canonical field elements
func parseFelt(s string) (externalapi.Felt, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid field element %q", s)
	}
	return externalapi.NewFeltChecked(value)
}

func parseAccountID(s string) (externalapi.AccountID, error) {
	felt, err := parseFelt(s)
	if err != nil {
		return 0, err
	}
	return objects.AccountIDFromFelt(felt)
}

func parseFelts(s string, count int) ([]externalapi.Felt, error) {
	parts := strings.Split(s, ",")
	if len(parts) != count {
		return nil, errors.Errorf("expected %d comma separated elements, found %d in %q", count, len(parts), s)
	}
	felts := make([]externalapi.Felt, count)
	for i, part := range parts {
		felt, err := parseFelt(part)
		if err != nil {
			return nil, err
		}
		felts[i] = felt
	}
	return felts, nil
}

func parseWord(s string) (externalapi.Word, error) {
	felts, err := parseFelts(s, externalapi.WordSize)
	if err != nil {
		return externalapi.Word{}, err
	}
	var word externalapi.Word
	copy(word[:], felts)
	return word, nil
}

func splitAsset(s string) (externalapi.AccountID, string, error) {
	separator := strings.IndexByte(s, ':')
	if separator < 0 {
		return 0, "", errors.Errorf("asset %q is not of the form faucet:value", s)
	}
	faucetID, err := parseAccountID(s[:separator])
	if err != nil {
		return 0, "", err
	}
	return faucetID, s[separator+1:], nil
}

func parseFungibleAsset(s string) (externalapi.Asset, error) {
	faucetID, amountString, err := splitAsset(s)
	if err != nil {
		return externalapi.Asset{}, err
	}
	amount, err := strconv.ParseUint(amountString, 10, 64)
	if err != nil {
		return externalapi.Asset{}, errors.Wrapf(err, "invalid amount in asset %q", s)
	}
	return objects.NewFungibleAsset(faucetID, amount)
}

func parseNonFungibleAsset(s string) (externalapi.Asset, error) {
	faucetID, dataString, err := splitAsset(s)
	if err != nil {
		return externalapi.Asset{}, err
	}
	data, err := parseFelts(dataString, 3)
	if err != nil {
		return externalapi.Asset{}, err
	}
	return objects.NewNonFungibleAsset(faucetID, externalapi.Word{data[0], 0, data[1], data[2]})
}

func parseScriptKind(kind string, target externalapi.AccountID, recallHeight uint32) (model.ScriptKind, error) {
	switch kind {
	case notefactory.PayToIDRoutine:
		if recallHeight != 0 {
			return nil, errors.New("--recall-height is only valid with --kind p2idr")
		}
		return notefactory.PayToID{Target: target}, nil
	case notefactory.PayToIDWithRecallRoutine:
		return notefactory.PayToIDWithRecall{Target: target, RecallHeight: recallHeight}, nil
	default:
		return nil, errors.Errorf("unknown note kind %q", kind)
	}
}

func parseDigest(s string) (externalapi.Digest, error) {
	words, err := noteserialization.HexToWords(s)
	if err != nil {
		return externalapi.Digest{}, err
	}
	if len(words) != 1 {
		return externalapi.Digest{}, errors.Errorf("a hash is exactly %d bytes", externalapi.DigestSize)
	}
	return externalapi.DigestFromWord(words[0]), nil
}
