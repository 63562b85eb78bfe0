package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/notestub/infrastructure/config"
	"github.com/pkg/errors"
)

const (
	createSubCmd = "create"
	decodeSubCmd = "decode"
	showSubCmd   = "show"
	listSubCmd   = "list"
)

type createConfig struct {
	Kind         string   `long:"kind" short:"k" description:"Ownership template {p2id, p2idr}" default:"p2id"`
	Target       string   `long:"target" short:"t" description:"Account ID the note pays to (hex or decimal)" required:"true"`
	RecallHeight uint32   `long:"recall-height" description:"Block height after which the sender may reclaim a p2idr note"`
	Sender       string   `long:"sender" short:"s" description:"Account ID of the sender (hex or decimal)" required:"true"`
	Tag          string   `long:"tag" description:"Note tag (defaults to zero)"`
	Serial       string   `long:"serial" description:"Serial number as four comma separated field elements" required:"true"`
	Fungible     []string `long:"fungible" short:"f" description:"Fungible asset as faucet:amount (may be repeated)"`
	NonFungible  []string `long:"non-fungible" short:"n" description:"Non-fungible asset as faucet:a,b,c (may be repeated)"`
	Store        bool     `long:"store" description:"Store the verified stub"`
	config.Flags
}

type decodeConfig struct {
	Stub  string `long:"stub" description:"Serialized stub words (encoded in hex)" required:"true"`
	Store bool   `long:"store" description:"Store the verified stub"`
	config.Flags
}

type showConfig struct {
	Hash string `long:"hash" description:"Hash of a stored stub (encoded in hex)" required:"true"`
	config.Flags
}

type listConfig struct {
	config.Flags
}

func parseCommandLine() (subCommand string, cfg interface{}, flagsCfg *config.Flags) {
	parser := config.NewParser(&struct{}{}, "notetool <command> [OPTIONS]")

	createConf := &createConfig{Flags: *config.DefaultFlags()}
	parser.AddCommand(createSubCmd, "Creates a standard note",
		"Creates a p2id or p2idr note and prints its serialized stub", createConf)

	decodeConf := &decodeConfig{Flags: *config.DefaultFlags()}
	parser.AddCommand(decodeSubCmd, "Verifies a serialized stub",
		"Decodes a serialized stub, verifies its commitments and prints a summary", decodeConf)

	showConf := &showConfig{Flags: *config.DefaultFlags()}
	parser.AddCommand(showSubCmd, "Shows a stored stub",
		"Loads a stub from the store, verifies it again and dumps it", showConf)

	listConf := &listConfig{Flags: *config.DefaultFlags()}
	parser.AddCommand(listSubCmd, "Lists stored stubs",
		"Prints the hashes of all stored stubs", listConf)

	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			printAndExit(err.Error(), 0)
		}
		printAndExit(err.Error(), 1)
	}
	if parser.Command.Active == nil {
		printAndExit("a command must be specified", 1)
	}

	switch parser.Command.Active.Name {
	case createSubCmd:
		cfg, flagsCfg = createConf, &createConf.Flags
	case decodeSubCmd:
		cfg, flagsCfg = decodeConf, &decodeConf.Flags
	case showSubCmd:
		cfg, flagsCfg = showConf, &showConf.Flags
	case listSubCmd:
		cfg, flagsCfg = listConf, &listConf.Flags
	}

	err = flagsCfg.Resolve()
	if err != nil {
		printAndExit(err.Error(), 1)
	}
	return parser.Command.Active.Name, cfg, flagsCfg
}

func printAndExit(message string, code int) {
	if code == 0 {
		os.Stdout.WriteString(message + "\n")
	} else {
		os.Stderr.WriteString(message + "\n")
	}
	os.Exit(code)
}
