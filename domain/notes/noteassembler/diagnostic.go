package noteassembler

import "fmt"

// Diagnostic describes why a script failed to compile
type Diagnostic struct {
	// Line is the 1-based source line the problem was found on, or 0 if the
	// problem concerns the script as a whole.
	Line    int
	Message string
}

func (d *Diagnostic) Error() string {
	if d.Line == 0 {
		return d.Message
	}
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

func diagnosticf(line int, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)}
}
