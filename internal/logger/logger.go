// =============================================================================
// Pohoda Analytics - Logger Module
// =============================================================================
//
// Structured logging for the analysis run. Output goes to stderr through a
// console writer so the generated reports on stdout stay clean. Every run
// gets a run id field so interleaved cron output can be told apart.
//
// =============================================================================

package logger

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New creates the run logger at the given level with a fresh run id.
// Unknown level strings fall back to info.
func New(level string) zerolog.Logger {
	return NewWithWriter(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}, level)
}

// NewWithWriter creates a logger writing to w. Used by tests to capture
// output.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}
