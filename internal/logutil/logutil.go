// Package logutil sets up the rotating JSON log file
package logutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/tally/internal/osutil"
)

// Options controls where logs go and how they rotate.
type Options struct {
	Path       string
	Level      slog.Level
	MaxSize    int
	MaxBackups int
}

// New returns a JSON logger writing to a rotating file at opts.Path. The
// returned closer releases the file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	err := os.MkdirAll(filepath.Dir(opts.Path), osutil.DirPermission)
	if err != nil {
		return nil, nil, errLogDir.Fmt(filepath.Dir(opts.Path)).Wrap(err)
	}

	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
	}

	return newLogger(w, opts.Level), w, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
