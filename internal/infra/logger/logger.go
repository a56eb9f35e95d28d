package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Config struct {
	Root  string
	Debug bool
}

type state struct {
	log      *slog.Logger
	file     *os.File
	path     string
	initedAt time.Time
}

var (
	mu  sync.RWMutex
	cur = discardState()
)

// Dir is where log files live for a workspace root.
func Dir(root string) string {
	if root == "" {
		root = "."
	}
	return filepath.Join(filepath.Clean(root), ".phonebook", "logs")
}

// Setup points the global logger at <root>/.phonebook/logs/phonebook.log.
// On failure the global logger discards everything.
func Setup(cfg Config) (func() error, error) {
	dir := Dir(cfg.Root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		swap(discardState())
		return nil, err
	}

	path := filepath.Join(dir, "phonebook.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		swap(discardState())
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: utcTime,
	}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	l := slog.New(slog.NewJSONHandler(f, opts))
	swap(state{log: l, file: f, path: path, initedAt: time.Now().UTC()})

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		prev := swap(discardState())
		if prev.file != nil {
			return prev.file.Close()
		}
		return nil
	}, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return cur.initedAt
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if cur.file == nil || cur.path == "" {
		return errors.New("logger not initialized")
	}
	return nil
}

func swap(next state) state {
	mu.Lock()
	defer mu.Unlock()
	prev := cur
	cur = next
	return prev
}

func discardState() state {
	return state{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}
