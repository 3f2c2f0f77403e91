package ldapcore

/*
logging.go implements the one piece of the core permitted to touch
anything outside its inputs and outputs: an opt-in diagnostic logger
attached to a [SchemaManager]. It never affects decode/encode behavior
-- with a nil logger every call below is a no-op -- so § 5's "pure,
single-threaded, no internal I/O" guarantee still holds by default.
*/

import (
	"context"
	"log/slog"
)

// discardLogger is used whenever no logger has been configured, so call
// sites never need a nil check.
var discardLogger = slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{
	Level: slog.LevelError + 1, // above any level actually used, i.e. silent
}))

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func (r *SchemaManager) logf(level slog.Level, msg string, args ...any) {
	l := r.logger
	if l == nil {
		l = discardLogger
	}
	l.Log(context.Background(), level, msg, args...)
}
