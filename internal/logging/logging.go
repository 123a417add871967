// Package logging provides the named, colour-tagged loggers used by the
// gridpath command.
package logging

import (
	"fmt"
	"io"
	"log"
)

// Tag colours.
const (
	ErrorColor = "\033[31m"
	InfoColor  = "\033[32m"
	ColorReset = "\033[0m"
)

// Name colours.
const (
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorGreen   = "\033[32m"
)

// Logger prefixes every line with a coloured component name and tags each
// message as INFO or ERROR.
type Logger struct {
	*log.Logger
}

// New returns a Logger writing "[NAME] " prefixed lines to w. An empty color
// leaves the name uncoloured.
func New(name, color string, w io.Writer) *Logger {
	prefix := fmt.Sprintf("[%s] ", name)
	if color != "" {
		prefix = fmt.Sprintf("%s[%s]%s ", color, name, ColorReset)
	}
	return &Logger{Logger: log.New(w, prefix, log.LstdFlags)}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard, "", 0)}
}

// Infof logs an INFO line.
func (l *Logger) Infof(format string, args ...any) {
	l.Printf("%s[INFO]%s "+format, append([]any{InfoColor, ColorReset}, args...)...)
}

// Errorf logs an ERROR line.
func (l *Logger) Errorf(format string, args ...any) {
	l.Printf("%s[ERROR]%s "+format, append([]any{ErrorColor, ColorReset}, args...)...)
}
