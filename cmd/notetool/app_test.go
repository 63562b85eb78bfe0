package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/kaspanet/notestub/domain/notes/noteassembler"
	"github.com/kaspanet/notestub/domain/notes/objects"
	"github.com/kaspanet/notestub/domain/notes/processes/notefactory"
	"github.com/kaspanet/notestub/domain/notes/processes/stubdecoder"
	"github.com/kaspanet/notestub/infrastructure/config"
)

func newTestApp(t *testing.T) (*appContext, *bytes.Buffer) {
	flagsCfg := &config.Flags{AppDir: t.TempDir(), LogLevel: "info"}
	err := flagsCfg.Resolve()
	if err != nil {
		t.Fatalf("newTestApp: Resolve: %+v", err)
	}
	library := objects.New()
	out := &bytes.Buffer{}
	return &appContext{
		flags:   flagsCfg,
		factory: notefactory.New(noteassembler.Default(), library),
		decoder: stubdecoder.New(library),
		out:     out,
	}, out
}

var stubLine = regexp.MustCompile(`Stub:\s+([0-9a-f]+)`)
var hashLine = regexp.MustCompile(`Note hash:\s+([0-9a-f]+)`)

func TestCreateDecodeShow(t *testing.T) {
	app, out := newTestApp(t)

	err := app.create(&createConfig{
		Kind:         "p2idr",
		Target:       "0x4000000000005678",
		RecallHeight: 500,
		Sender:       "4660",
		Tag:          "3",
		Serial:       "1,2,3,4",
		Fungible:     []string{"0x8000000000000001:250"},
		NonFungible:  []string{"0xC000000000000003:7,8,9"},
		Store:        true,
	})
	if err != nil {
		t.Fatalf("TestCreateDecodeShow: create: %+v", err)
	}
	created := out.String()
	stubMatch := stubLine.FindStringSubmatch(created)
	hashMatch := hashLine.FindStringSubmatch(created)
	if stubMatch == nil || hashMatch == nil {
		t.Fatalf("TestCreateDecodeShow: Unexpected create output:\n%s", created)
	}

	out.Reset()
	err = app.decode(&decodeConfig{Stub: stubMatch[1]})
	if err != nil {
		t.Fatalf("TestCreateDecodeShow: decode: %+v", err)
	}
	if !strings.Contains(out.String(), "Stub hash:  "+hashMatch[1]) {
		t.Fatalf("TestCreateDecodeShow: Expected the decoded stub hash to match, found:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "250 of fungible faucet 0x8000000000000001") {
		t.Fatalf("TestCreateDecodeShow: Expected the fungible asset in the summary, found:\n%s", out.String())
	}

	out.Reset()
	err = app.list()
	if err != nil {
		t.Fatalf("TestCreateDecodeShow: list: %+v", err)
	}
	if strings.TrimSpace(out.String()) != hashMatch[1] {
		t.Fatalf("TestCreateDecodeShow: Expected %s, found: %s", hashMatch[1], out.String())
	}

	out.Reset()
	err = app.show(&showConfig{Hash: hashMatch[1]})
	if err != nil {
		t.Fatalf("TestCreateDecodeShow: show: %+v", err)
	}
	if !strings.Contains(out.String(), "Recipient:") {
		t.Fatalf("TestCreateDecodeShow: Unexpected show output:\n%s", out.String())
	}
}

func TestDecodeRejectsTamperedStub(t *testing.T) {
	app, out := newTestApp(t)
	err := app.create(&createConfig{
		Kind:     "p2id",
		Target:   "0x4000000000005678",
		Sender:   "0x1234",
		Serial:   "1,2,3,4",
		Fungible: []string{"0x8000000000000001:1"},
	})
	if err != nil {
		t.Fatalf("TestDecodeRejectsTamperedStub: create: %+v", err)
	}
	stub := []byte(stubLine.FindStringSubmatch(out.String())[1])
	// Bump the low byte of the top-level hash.
	if stub[1] == '0' {
		stub[1] = '1'
	} else {
		stub[1] = '0'
	}

	err = app.decode(&decodeConfig{Stub: string(stub)})
	if err == nil || !strings.Contains(err.Error(), "ErrInconsistentStubCommitment") {
		t.Fatalf("TestDecodeRejectsTamperedStub: Expected ErrInconsistentStubCommitment, found: %v", err)
	}
}

func TestParseHelpers(t *testing.T) {
	if _, err := parseScriptKind("p2id", 0x1234, 10); err == nil {
		t.Fatalf("TestParseHelpers: Expected --recall-height to be rejected for p2id")
	}
	if _, err := parseScriptKind("p2pkh", 0x1234, 0); err == nil {
		t.Fatalf("TestParseHelpers: Expected an unknown kind to be rejected")
	}
	if _, err := parseWord("1,2,3"); err == nil {
		t.Fatalf("TestParseHelpers: Expected a three element word to be rejected")
	}
	if _, err := parseAccountID("0"); err == nil {
		t.Fatalf("TestParseHelpers: Expected the zero account ID to be rejected")
	}
	if _, err := parseFungibleAsset("0x8000000000000001"); err == nil {
		t.Fatalf("TestParseHelpers: Expected an asset without an amount to be rejected")
	}
	if _, err := parseDigest("00"); err == nil {
		t.Fatalf("TestParseHelpers: Expected a short hash to be rejected")
	}
}
