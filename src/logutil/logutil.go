package logutil

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultFileName = "ai_assistant.log"
	maxSizeMB       = 10
	maxArchives     = 3
)

// Options controls where process logs go.
type Options struct {
	EnableFileLogging bool
	Path              string // defaults to $TMP/ai_assistant.log
	Debug             bool
}

// DefaultPath is the log file used when Options.Path is empty.
func DefaultPath() string { return filepath.Join(os.TempDir(), DefaultFileName) }

// Setup installs the process logger: a size-rotated file (10MB, 3 archives) when
// file logging is enabled, stderr otherwise. The std log package is redirected too.
// The returned closer releases the log file.
func Setup(opts Options) (*slog.Logger, io.Closer) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if opts.EnableFileLogging {
		path := opts.Path
		if path == "" {
			path = DefaultPath()
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create log directory, logging to console: %v\n", err)
		} else {
			rotator := &lumberjack.Logger{
				Filename:   path,
				MaxSize:    maxSizeMB,
				MaxBackups: maxArchives,
			}
			w, closer = rotator, rotator
		}
	}

	logger := New(w, opts.Debug)
	slog.SetDefault(logger)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return logger, closer
}

// New builds a text logger writing to w.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Component returns l (or the default logger when nil) tagged with a component name.
func Component(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With("component", name)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// RedactKey masks a secret, leaving first/last 4 chars: xxxx...yyyy
func RedactKey(k string) string {
	if len(k) <= 8 {
		return "********"
	}
	return fmt.Sprintf("%s...%s", k[:4], k[len(k)-4:])
}

var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"x-api-key":           true,
	"api-key":             true,
}

// RedactHeaders returns a copy of h safe for logging.
func RedactHeaders(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		if sensitiveHeaders[strings.ToLower(k)] {
			v = RedactKey(v)
		}
		out[k] = v
	}
	return out
}
