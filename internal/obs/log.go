// Package obs centralizes structured logging for the dilithium module. It
// wraps a single zerolog.Logger so every package logs through the same
// sink and field conventions instead of reaching for fmt or the stdlib
// log package directly.
package obs

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level logger. Callers that need a component tag
// should derive a child via Log.With().Str("component", ...).Logger()
// rather than mutating this one.
var Log zerolog.Logger

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		With().
		Timestamp().
		Str("module", "dilithium").
		Logger()

	if os.Getenv("MLDSA_LOG_JSON") != "" {
		Log = zerolog.New(os.Stderr).With().Timestamp().Str("module", "dilithium").Logger()
	}
}

// SetLevel adjusts the global zerolog level, used by the CLI's --verbose flag.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
