package logger

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Logger is the application logging contract. Implementations must support
// the standard levels and be safe for concurrent use.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

// StdLogger implements Logger on top of Go's standard logger.
type StdLogger struct {
	logger *log.Logger
	debug  atomic.Bool
}

// NewStdLogger creates a StdLogger writing to stdout. Debug output is off
// unless enabled with SetDebug.
func NewStdLogger() *StdLogger {
	return &StdLogger{
		logger: log.New(os.Stdout, "", log.LstdFlags),
	}
}

// NewStdLoggerTo creates a StdLogger writing to w with no timestamp prefix.
// Mostly useful in tests.
func NewStdLoggerTo(w io.Writer) *StdLogger {
	return &StdLogger{
		logger: log.New(w, "", 0),
	}
}

// SetDebug toggles Debug output. Safe to call while other goroutines log.
func (l *StdLogger) SetDebug(on bool) {
	l.debug.Store(on)
}

func (l *StdLogger) Info(msg string, args ...any) {
	l.logger.Printf("[INFO] "+msg, args...)
}

func (l *StdLogger) Warn(msg string, args ...any) {
	l.logger.Printf("[WARN] "+msg, args...)
}

func (l *StdLogger) Error(msg string, args ...any) {
	l.logger.Printf("[ERROR] "+msg, args...)
}

func (l *StdLogger) Debug(msg string, args ...any) {
	if !l.debug.Load() {
		return
	}
	l.logger.Printf("[DEBUG] "+msg, args...)
}

// Default provides a global default logger instance.
var Default Logger = NewStdLogger()
