// =============================================================================
// EventAlytics - Logging
// =============================================================================
//
// Small leveled logger shared by the pipeline. Commands construct one logger
// at startup; --verbose lowers the threshold to debug. Output goes to
// stderr so report text on stdout stays pipeable.
//
// =============================================================================

package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger is the logging interface used across the pipeline.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

type stdLogger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// New creates a logger writing to stderr. Debug messages are only emitted
// when verbose is set.
func New(verbose bool) Logger {
	return &stdLogger{out: os.Stderr, verbose: verbose}
}

// NewWithWriter creates a logger writing to an arbitrary writer.
func NewWithWriter(w io.Writer, verbose bool) Logger {
	return &stdLogger{out: w, verbose: verbose}
}

func (l *stdLogger) log(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s %-5s %s\n",
		time.Now().Format("2006-01-02 15:04:05"), level, fmt.Sprintf(format, args...))
}

func (l *stdLogger) Debug(format string, args ...interface{}) {
	if l.verbose {
		l.log("DEBUG", format, args...)
	}
}

func (l *stdLogger) Info(format string, args ...interface{}) {
	l.log("INFO", format, args...)
}

func (l *stdLogger) Warn(format string, args ...interface{}) {
	l.log("WARN", format, args...)
}

func (l *stdLogger) Error(format string, args ...interface{}) {
	l.log("ERROR", format, args...)
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() Logger {
	return &stdLogger{out: io.Discard, verbose: false}
}
