// Package logging provides the logger handed to the terrain, map and build managers.
package logging

import (
	"io"
	"log"
	"os"
)

// Logger is the subset of *log.Logger the managers use.
type Logger interface {
	Printf(format string, args ...any)
}

// Discard drops everything written to it.
var Discard Logger = log.New(io.Discard, "", 0)

// New returns a stderr logger with the given prefix.
func New(prefix string) Logger {
	return log.New(os.Stderr, prefix, log.LstdFlags)
}

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l Logger) Logger {
	if l == nil {
		return Discard
	}
	return l
}
