package ratingchain

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with ratingchain-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(id int, rating float64, err error) {
	if err != nil {
		l.Warn("insert rejected",
			"movie", id,
			"rating", rating,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"movie", id,
			"rating", rating,
		)
	}
}

// LogUpdate logs a rating update.
// inserted reports whether the movie was new to the chain.
func (l *Logger) LogUpdate(id int, rating float64, inserted bool, err error) {
	if err != nil {
		l.Warn("update rejected",
			"movie", id,
			"rating", rating,
			"error", err,
		)
	} else {
		l.Debug("update completed",
			"movie", id,
			"rating", rating,
			"inserted", inserted,
		)
	}
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(id int, found bool) {
	l.Debug("remove completed",
		"movie", id,
		"found", found,
	)
}

// LogQuery logs a query that produced a new chain.
func (l *Logger) LogQuery(op string, results int, err error) {
	if err != nil {
		l.Warn("query rejected",
			"op", op,
			"error", err,
		)
	} else {
		l.Debug("query completed",
			"op", op,
			"results", results,
		)
	}
}

// LogSimilarity logs a correlation computation.
// Undefined similarities are expected for sparse raters and log at Debug.
func (l *Logger) LogSimilarity(shared int, r float64, err error) {
	if err != nil {
		l.Debug("similarity undefined",
			"shared", shared,
			"error", err,
		)
	} else {
		l.Debug("similarity computed",
			"shared", shared,
			"r", r,
		)
	}
}

// LogReverse logs a reversal.
func (l *Logger) LogReverse(records int, order Order, err error) {
	if err != nil {
		l.Error("reverse failed",
			"error", err,
		)
	} else {
		l.Debug("reverse completed",
			"records", records,
			"order", order.String(),
		)
	}
}
