// Package logging builds the slog handler used for diagnostics.
// All log output goes to stderr so tables on stdout stay clean.
package logging

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
)

// CreateHandler creates a [slog.Handler] writing to w at the given
// level. Unknown level strings fall back to warn, which keeps normal
// invocations silent.
func CreateHandler(w io.Writer, logLevel string) slog.Handler {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level: GetLevel(logLevel),
	})
}

// GetLevel parses a level string, defaulting to warn.
func GetLevel(level string) charmlog.Level {
	parsed, err := charmlog.ParseLevel(level)
	if err != nil {
		return charmlog.WarnLevel
	}

	return parsed
}
