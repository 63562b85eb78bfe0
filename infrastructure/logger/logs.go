package logger

import (
	"os"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// BackendLog is the logging backend used to create all subsystem loggers.
var BackendLog = NewBackend()

var (
	subsystemLoggersMtx sync.Mutex
	subsystemLoggers    = make(map[string]*Logger)
)

// RegisterSubSystem returns the logger of the given subsystem, creating it if needed
func RegisterSubSystem(subsystem string) *Logger {
	subsystemLoggersMtx.Lock()
	defer subsystemLoggersMtx.Unlock()

	logger, exists := subsystemLoggers[subsystem]
	if !exists {
		logger = BackendLog.Logger(subsystem)
		subsystemLoggers[subsystem] = logger
	}
	return logger
}

// SupportedSubsystems returns a sorted slice of the registered subsystems.
func SupportedSubsystems() []string {
	subsystemLoggersMtx.Lock()
	defer subsystemLoggersMtx.Unlock()

	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsystem := range subsystemLoggers {
		subsystems = append(subsystems, subsystem)
	}
	sort.Strings(subsystems)
	return subsystems
}

// SetLogLevels sets the log level for all subsystem loggers to the passed
// level.
func SetLogLevels(level Level) {
	subsystemLoggersMtx.Lock()
	defer subsystemLoggersMtx.Unlock()

	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}

// ParseAndSetLogLevels attempts to parse the specified level string and
// applies it to every subsystem logger.
func ParseAndSetLogLevels(levelString string) error {
	level, ok := LevelFromString(levelString)
	if !ok {
		return errors.Errorf("the specified log level [%s] is invalid", levelString)
	}
	SetLogLevels(level)
	return nil
}

type stdoutWriter struct {
	*os.File
}

// Close satisfies io.Closer without closing the process's standard output
func (stdoutWriter) Close() error {
	return nil
}

// InitLog attaches log file and error log file to the backend log, and
// mirrors everything at or above the info level to stdout.
func InitLog(logFile, errLogFile string) error {
	err := BackendLog.AddLogFile(logFile, LevelTrace)
	if err != nil {
		return errors.Wrapf(err, "error adding log file %s as log rotator for level %s", logFile, LevelTrace)
	}
	err = BackendLog.AddLogFile(errLogFile, LevelWarn)
	if err != nil {
		return errors.Wrapf(err, "error adding log file %s as log rotator for level %s", errLogFile, LevelWarn)
	}
	BackendLog.AddLogWriter(stdoutWriter{os.Stdout}, LevelInfo)
	return nil
}
