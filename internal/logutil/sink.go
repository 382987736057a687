// Package logutil provides the leveled *log.Logger values passed into the
// CLI and RPC server at construction, so neither reads a package-global.
package logutil

import "log"

type sinkWriter struct{}

func (sinkWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

// Sink discards everything written to it. It is the default logger for
// callers that haven't opted into verbose output.
var Sink = log.New(sinkWriter{}, "", 0)
