package core

import (
	"fmt"
	"os"
)

// Logger is satisfied by anything that can report render progress.
// Keeping it this small lets callers pass *log.Logger, a test spy, or
// the StderrLogger below interchangeably.
type Logger interface {
	Printf(format string, args ...interface{})
}

// StderrLogger writes progress messages to stderr, leaving stdout free
// for the PPM image stream.
type StderrLogger struct{}

// Printf implements Logger.
func (StderrLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// NopLogger discards every message. Useful in tests that construct a
// renderer but don't want progress noise.
type NopLogger struct{}

// Printf implements Logger.
func (NopLogger) Printf(string, ...interface{}) {}
