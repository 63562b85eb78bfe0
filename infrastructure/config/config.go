package config

import (
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/notestub/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	defaultAppDirname     = ".notestub"
	defaultLogDirname     = "logs"
	defaultDBDirname      = "notes"
	defaultLogFilename    = "notestub.log"
	defaultErrLogFilename = "notestub_err.log"
	defaultLogLevel       = "info"
)

// Flags holds the configuration shared by every notestub command.
type Flags struct {
	AppDir   string `short:"b" long:"appdir" description:"Directory to store data"`
	LogDir   string `long:"logdir" description:"Directory to log output"`
	DBDir    string `long:"dbdir" description:"Directory of the verified stub store"`
	LogLevel string `short:"d" long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off}"`
}

// DefaultFlags returns Flags with every directory under the user's home directory
func DefaultFlags() *Flags {
	appDir := defaultAppDirname
	if home, err := os.UserHomeDir(); err == nil {
		appDir = filepath.Join(home, defaultAppDirname)
	}
	return &Flags{
		AppDir:   appDir,
		LogLevel: defaultLogLevel,
	}
}

// Resolve fills derived directories and validates the log level
func (f *Flags) Resolve() error {
	if f.AppDir == "" {
		return errors.New("--appdir must not be empty")
	}
	if f.LogDir == "" {
		f.LogDir = filepath.Join(f.AppDir, defaultLogDirname)
	}
	if f.DBDir == "" {
		f.DBDir = filepath.Join(f.AppDir, defaultDBDirname)
	}
	if _, ok := logger.LevelFromString(f.LogLevel); !ok {
		return errors.Errorf("the specified log level [%s] is invalid", f.LogLevel)
	}
	return nil
}

// LogFile returns the path of the main log file
func (f *Flags) LogFile() string {
	return filepath.Join(f.LogDir, defaultLogFilename)
}

// ErrLogFile returns the path of the warnings-and-errors log file
func (f *Flags) ErrLogFile() string {
	return filepath.Join(f.LogDir, defaultErrLogFilename)
}

// NewParser returns a go-flags parser for data with the given usage line
func NewParser(data interface{}, usage string) *flags.Parser {
	parser := flags.NewParser(data, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = usage
	return parser
}
