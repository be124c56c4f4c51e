package main

import (
	"log/slog"
	"os"
)

// logger wraps slog.Logger with the isam-triples CLI's own logging
// vocabulary, so command handlers log a consistent set of fields rather
// than ad hoc slog.Info calls scattered across RunE functions.
type logger struct {
	*slog.Logger
}

// newLogger returns a text logger to stderr at level, or a JSON logger
// when json is true.
func newLogger(level slog.Level, json bool) *logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return &logger{Logger: slog.New(handler)}
}

func (l *logger) logTriangulate(path string, rotations int, err error) {
	if err != nil {
		l.Error("triangulate failed", "path", path, "error", err)
		return
	}
	l.Info("triangulate completed", "path", path, "rotations", rotations)
}

func (l *logger) logLoad(path string, rows, cols, nnz int, err error) {
	if err != nil {
		l.Error("load failed", "path", path, "error", err)
		return
	}
	l.Debug("load completed", "path", path, "rows", rows, "cols", cols, "nnz", nnz)
}
