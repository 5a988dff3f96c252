// Package cli implements the aoc command-line interface.
//
// This package provides commands for running the puzzle solvers, driving the
// crate simulator directly, listing the solved days, and managing the answer
// cache. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - run: Solve one or both parts of a day
//   - crates: Run the crate simulator with a chosen policy and layout
//   - list: Show the solved days
//   - cache: Manage the answer cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Configuration
//
// Defaults are read from $XDG_CONFIG_HOME/aoc/config.toml, or the file named
// by --config. Command-line flags override the file.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger. Everything goes to w (stderr in main) so
// answers on stdout stay machine-readable.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command step. done reports it as a single structured
// line, e.g.
//
//	INFO rearranged crates moves=503 policy=block stacks=9 elapsed=412µs
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with keyvals and the elapsed time. Solvers finish in
// microseconds, so the duration keeps microsecond precision.
func (p *progress) done(msg string, keyvals ...any) {
	elapsed := time.Since(p.start).Round(time.Microsecond)
	p.logger.Info(msg, append(keyvals, "elapsed", elapsed)...)
}

type loggerKey struct{}

// withLogger attaches the logger for the running command, tagged with the
// command's name.
func withLogger(ctx context.Context, l *log.Logger, command string) context.Context {
	return context.WithValue(ctx, loggerKey{}, l.With("cmd", command))
}

// loggerFromContext returns the command logger, or log.Default() outside a
// command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
