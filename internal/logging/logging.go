// Package logging provides categorized zap-backed logging for Tanya Jaksa.
// The TUI owns the terminal, so logs go to a file under the data directory;
// until Initialize is called (and in tests) all loggers are no-ops.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem for log filtering.
type Category string

const (
	CategoryApp     Category = "app"     // TUI lifecycle
	CategoryRouter  Category = "router"  // top-level screen transitions
	CategoryShell   Category = "shell"   // tab selection, cross-tab signals
	CategorySession Category = "session" // session flag reads/writes
	CategoryStore   Category = "store"   // SQLite operations
	CategorySubmit  Category = "submit"  // simulated submissions
)

var (
	mu      sync.RWMutex
	root    *zap.Logger
	loggers = make(map[Category]*zap.SugaredLogger)
)

// Initialize opens the log file under dir and installs the root logger.
// Safe to call once at startup; calling Get before Initialize yields no-ops.
func Initialize(dir string, debug bool) error {
	if dir == "" {
		return fmt.Errorf("log directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(dir, "tanyajaksa.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	mu.Lock()
	root = logger
	loggers = make(map[Category]*zap.SugaredLogger)
	mu.Unlock()
	return nil
}

// Get returns the sugared logger for a category, creating it on first use.
func Get(cat Category) *zap.SugaredLogger {
	mu.RLock()
	if l, ok := loggers[cat]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[cat]; ok {
		return l
	}
	base := root
	if base == nil {
		base = zap.NewNop()
	}
	l := base.Named(string(cat)).Sugar()
	loggers[cat] = l
	return l
}

// Sync flushes buffered entries. Called on shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if root != nil {
		_ = root.Sync()
	}
}
