// Package clilog is a small leveled-logging façade over the standard
// library's log.Logger, grounded on the plain log.Printf/log.Println
// calls jwmdev-brt08/backend/main.go uses throughout its server loop —
// this module has no service loop, but the same "stderr, timestamped,
// no structured fields" logging shape fits a CLI tool just as well.
package clilog

import (
	"io"
	"log"
	"os"
)

// Level selects which messages reach the underlying writer.
type Level int

const (
	LevelError Level = iota
	LevelInfo
	LevelDebug
)

// Logger wraps a standard log.Logger with a minimum level filter.
type Logger struct {
	min Level
	l   *log.Logger
}

// New builds a Logger writing to w (os.Stderr in production) at the
// given minimum level.
func New(w io.Writer, min Level) *Logger {
	return &Logger{min: min, l: log.New(w, "", log.LstdFlags)}
}

// Default builds a Logger writing to os.Stderr at LevelInfo, the level
// cmd/alp uses unless --verbose is passed.
func Default() *Logger { return New(os.Stderr, LevelInfo) }

// Errorf logs an error-level message. Always emitted.
func (lg *Logger) Errorf(format string, args ...interface{}) {
	lg.l.Printf("ERROR "+format, args...)
}

// Infof logs an info-level message, emitted when min >= LevelInfo.
func (lg *Logger) Infof(format string, args ...interface{}) {
	if lg.min < LevelInfo {
		return
	}
	lg.l.Printf("INFO  "+format, args...)
}

// Debugf logs a debug-level message, emitted only when min == LevelDebug
// (cmd/alp's --verbose flag).
func (lg *Logger) Debugf(format string, args ...interface{}) {
	if lg.min < LevelDebug {
		return
	}
	lg.l.Printf("DEBUG "+format, args...)
}
