package calculation

import (
	"fmt"
	"io"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// PrintfLogger writes level-prefixed lines to a writer. Used for verbose
// runs, pointed at stderr so result output stays clean.
type PrintfLogger struct {
	W io.Writer
}

// NewPrintfLogger creates a PrintfLogger writing to w.
func NewPrintfLogger(w io.Writer) PrintfLogger {
	return PrintfLogger{W: w}
}

func (l PrintfLogger) logf(level, format string, args ...any) {
	fmt.Fprintf(l.W, level+": "+format+"\n", args...)
}

func (l PrintfLogger) Debugf(format string, args ...any) { l.logf("DEBUG", format, args...) }
func (l PrintfLogger) Infof(format string, args ...any)  { l.logf("INFO", format, args...) }
func (l PrintfLogger) Warnf(format string, args ...any)  { l.logf("WARN", format, args...) }
func (l PrintfLogger) Errorf(format string, args ...any) { l.logf("ERROR", format, args...) }
