package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	corelogger "github.com/kilianp07/genrel/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger = corelogger.NopLogger

// Config selects the minimum level and the output format.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`
	// Format is "json" or "console".
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
}

// Validate checks the level and format names.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("unknown log format %s", c.Format)
	}
	return nil
}

var (
	mu     sync.RWMutex
	output io.Writer = os.Stderr
	format           = "json"
	level            = zerolog.InfoLevel
)

// Setup configures every logger created afterwards. Logs go to stderr so
// that stdout stays free for the result table.
func Setup(cfg Config) error {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	format = cfg.Format
	return nil
}

// SetOutput redirects every logger created afterwards to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// New returns a Logger for the given component. APP_ENV=dev forces the
// human readable console format.
func New(component string) Logger {
	mu.RLock()
	defer mu.RUnlock()
	f := format
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		f = "console"
	}
	return NewZerologLogger(component, output, f, level)
}
