package logger

import (
	"bytes"
	"strings"
	"testing"
)

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func TestLoggerLevelFiltering(t *testing.T) {
	backend := NewBackendWithFlags(0)
	all := &bufferCloser{}
	warnings := &bufferCloser{}
	backend.AddLogWriter(all, LevelTrace)
	backend.AddLogWriter(warnings, LevelWarn)

	log := backend.Logger("TEST")
	log.SetLevel(LevelDebug)
	log.Tracef("dropped by the logger")
	log.Debugf("debug %d", 1)
	log.Warnf("warn %d", 2)

	if strings.Contains(all.String(), "dropped") {
		t.Fatalf("TestLoggerLevelFiltering: trace message should have been filtered: %q", all.String())
	}
	if !strings.Contains(all.String(), "[DBG] TEST: debug 1") {
		t.Fatalf("TestLoggerLevelFiltering: Expected debug message, found: %q", all.String())
	}
	if strings.Contains(warnings.String(), "debug 1") {
		t.Fatalf("TestLoggerLevelFiltering: warn writer should not receive debug messages: %q", warnings.String())
	}
	if !strings.Contains(warnings.String(), "[WRN] TEST: warn 2") {
		t.Fatalf("TestLoggerLevelFiltering: Expected warn message, found: %q", warnings.String())
	}

	backend.Close()
	if !all.closed || !warnings.closed {
		t.Fatalf("TestLoggerLevelFiltering: Expected all writers to be closed")
	}
	log.Errorf("after close")
	if strings.Contains(all.String(), "after close") {
		t.Fatalf("TestLoggerLevelFiltering: closed backend should not write")
	}
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		ok       bool
	}{
		{"trace", LevelTrace, true},
		{"DBG", LevelDebug, true},
		{"info", LevelInfo, true},
		{"wrn", LevelWarn, true},
		{"error", LevelError, true},
		{"critical", LevelCritical, true},
		{"off", LevelOff, true},
		{"verbose", LevelInfo, false},
	}
	for _, test := range tests {
		level, ok := LevelFromString(test.input)
		if level != test.expected || ok != test.ok {
			t.Fatalf("TestLevelFromString: for %q expected (%s, %t), found: (%s, %t)",
				test.input, test.expected, test.ok, level, ok)
		}
	}
}

func TestRegisterSubSystemIsIdempotent(t *testing.T) {
	first := RegisterSubSystem("TST1")
	second := RegisterSubSystem("TST1")
	if first != second {
		t.Fatalf("TestRegisterSubSystemIsIdempotent: Expected the same logger for the same subsystem")
	}
	if err := ParseAndSetLogLevels("nonsense"); err == nil {
		t.Fatalf("TestRegisterSubSystemIsIdempotent: Expected an error for an invalid level")
	}
}
