package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/notestub/domain/notes/model"
	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/kaspanet/notestub/domain/notes/utils/noteserialization"
	"github.com/kaspanet/notestub/infrastructure/config"
	"github.com/kaspanet/notestub/infrastructure/logger"
)

type appContext struct {
	flags   *config.Flags
	factory model.NoteFactory
	decoder model.StubDecoder
	out     io.Writer
}

func (app *appContext) create(cfg *createConfig) error {
	target, err := parseAccountID(cfg.Target)
	if err != nil {
		return err
	}
	sender, err := parseAccountID(cfg.Sender)
	if err != nil {
		return err
	}
	kind, err := parseScriptKind(cfg.Kind, target, cfg.RecallHeight)
	if err != nil {
		return err
	}
	serialNumber, err := parseWord(cfg.Serial)
	if err != nil {
		return err
	}
	var tag *externalapi.Felt
	if cfg.Tag != "" {
		parsed, err := parseFelt(cfg.Tag)
		if err != nil {
			return err
		}
		tag = &parsed
	}

	assets := make([]externalapi.Asset, 0, len(cfg.Fungible)+len(cfg.NonFungible))
	for _, s := range cfg.Fungible {
		asset, err := parseFungibleAsset(s)
		if err != nil {
			return err
		}
		assets = append(assets, asset)
	}
	for _, s := range cfg.NonFungible {
		asset, err := parseNonFungibleAsset(s)
		if err != nil {
			return err
		}
		assets = append(assets, asset)
	}

	note, err := app.factory.CreateNote(kind, assets, sender, tag, serialNumber)
	if err != nil {
		return err
	}
	stub := note.Stub()
	if cfg.Store {
		err = app.store(stub)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(app.out, "Note hash: %s\n", note.Hash())
	fmt.Fprintf(app.out, "Script:    %s\n", note.Script.Hash)
	fmt.Fprintf(app.out, "Stub:      %s\n", noteserialization.WordsToHex(noteserialization.EncodeStub(stub)))
	return nil
}

func (app *appContext) decode(cfg *decodeConfig) error {
	words, err := noteserialization.HexToWords(cfg.Stub)
	if err != nil {
		return err
	}
	onEnd := logger.LogAndMeasureExecutionTime(log, "decode")
	stub, err := app.decoder.DecodeStub(words)
	onEnd()
	if err != nil {
		return err
	}
	if cfg.Store {
		err = app.store(stub)
		if err != nil {
			return err
		}
	}
	printStub(app.out, stub)
	return nil
}

func (app *appContext) show(cfg *showConfig) error {
	hash, err := parseDigest(cfg.Hash)
	if err != nil {
		return err
	}
	store, err := openStore(app)
	if err != nil {
		return err
	}
	defer store.Close()

	stub, err := store.Get(hash)
	if err != nil {
		return err
	}
	printStub(app.out, stub)
	fmt.Fprint(app.out, spew.Sdump(stub))
	return nil
}

func (app *appContext) list() error {
	store, err := openStore(app)
	if err != nil {
		return err
	}
	defer store.Close()

	hashes, err := store.Hashes()
	if err != nil {
		return err
	}
	for _, hash := range hashes {
		fmt.Fprintln(app.out, hash)
	}
	return nil
}

func (app *appContext) store(stub *externalapi.NoteStub) error {
	store, err := openStore(app)
	if err != nil {
		return err
	}
	defer store.Close()

	hash, err := store.Put(stub)
	if err != nil {
		return err
	}
	log.Infof("Stored stub %s in %s", hash, app.flags.DBDir)
	return nil
}

func printStub(out io.Writer, stub *externalapi.NoteStub) {
	fmt.Fprintf(out, "Stub hash:  %s\n", stub.Hash())
	fmt.Fprintf(out, "Recipient:  %s\n", stub.Recipient)
	fmt.Fprintf(out, "Sender:     %s\n", stub.Metadata.Sender)
	fmt.Fprintf(out, "Tag:        %d\n", stub.Metadata.Tag)
	fmt.Fprintf(out, "Vault hash: %s\n", stub.Vault.Hash())
	for i, asset := range stub.Vault.Assets {
		if asset.IsFungible() {
			fmt.Fprintf(out, "  asset %d: %d of fungible faucet %s\n", i, asset.Amount(), asset.FaucetID())
			continue
		}
		fmt.Fprintf(out, "  asset %d: non-fungible %v of faucet %s\n", i, asset.Word(), asset.FaucetID())
	}
}
