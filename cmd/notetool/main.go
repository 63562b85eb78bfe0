package main

import (
	"fmt"
	"os"

	"github.com/kaspanet/notestub/domain/notes/noteassembler"
	"github.com/kaspanet/notestub/domain/notes/notestore"
	"github.com/kaspanet/notestub/domain/notes/objects"
	"github.com/kaspanet/notestub/domain/notes/processes/notefactory"
	"github.com/kaspanet/notestub/domain/notes/processes/stubdecoder"
	"github.com/kaspanet/notestub/infrastructure/config"
	"github.com/kaspanet/notestub/infrastructure/logger"
	"github.com/pkg/errors"
)

var log = logger.RegisterSubSystem("NTOL")

func main() {
	subCmd, cfg, flagsCfg := parseCommandLine()

	err := initLog(flagsCfg)
	if err != nil {
		printErrorAndExit(err)
	}
	defer logger.BackendLog.Close()

	library := objects.New()
	app := &appContext{
		flags:   flagsCfg,
		factory: notefactory.New(noteassembler.Default(), library),
		decoder: stubdecoder.New(library),
		out:     os.Stdout,
	}

	switch subCmd {
	case createSubCmd:
		err = app.create(cfg.(*createConfig))
	case decodeSubCmd:
		err = app.decode(cfg.(*decodeConfig))
	case showSubCmd:
		err = app.show(cfg.(*showConfig))
	case listSubCmd:
		err = app.list()
	default:
		err = errors.Errorf("Unknown sub-command '%s'", subCmd)
	}

	if err != nil {
		log.Errorf("%s failed: %+v", subCmd, err)
		logger.BackendLog.Close()
		printErrorAndExit(err)
	}
}

func initLog(flagsCfg *config.Flags) error {
	err := logger.InitLog(flagsCfg.LogFile(), flagsCfg.ErrLogFile())
	if err != nil {
		return err
	}
	return logger.ParseAndSetLogLevels(flagsCfg.LogLevel)
}

func openStore(app *appContext) (*notestore.NoteStore, error) {
	store, err := notestore.Open(app.flags.DBDir, app.decoder)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening the stub store at %s", app.flags.DBDir)
	}
	return store, nil
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
