// Package logger configures the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Config selects the handler format and level of a logger.
type Config struct {
	Debug bool
	// Format is "text" (default) or "json".
	Format string
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// New returns a logger writing to w. Timestamps are UTC RFC3339Nano;
// debug enables the Debug level and source locations.
func New(w io.Writer, cfg Config) *slog.Logger {
	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// Setup installs a logger built by New as the one returned by L.
func Setup(w io.Writer, cfg Config) *slog.Logger {
	l := New(w, cfg)

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized", "format", cfg.Format, "debug", cfg.Debug)
	return l
}

// L returns the logger installed by Setup, or a discarding one before that.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
