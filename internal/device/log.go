package device

import (
	"strings"

	"github.com/rs/zerolog"
)

// NewLog returns a transport that logs each frame instead of writing to a
// device. Used when no serial port is configured, so the server can run
// against a browser without hardware attached.
func NewLog(logger *zerolog.Logger) Transport {
	return NewWriter("log", &logWriter{log: logger}, logger)
}

type logWriter struct {
	log *zerolog.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.log.Info().Str("frame", strings.TrimSuffix(string(p), "\n")).Msg("device frame")
	return len(p), nil
}

func (w *logWriter) Close() error { return nil }
