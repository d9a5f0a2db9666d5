// Package cli implements the resizegrid command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/felixfbecker/resizegrid/internal/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "resizegrid"

	// headerHeight is the number of terminal rows above the grid.
	headerHeight = 2
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	logFile    string
	logCloser  io.Closer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Close releases the log file, if one was opened.
func (c *CLI) Close() error {
	if c.logCloser == nil {
		return nil
	}
	err := c.logCloser.Close()
	c.logCloser = nil
	return err
}

// openLogFile redirects the logger to --log-file, if set.
func (c *CLI) openLogFile() error {
	if c.logFile == "" {
		return nil
	}
	f, err := os.OpenFile(c.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	c.Logger.SetOutput(f)
	c.logCloser = f
	return nil
}

// loadConfig resolves --config, falling back to the default location and
// then to built-in defaults.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, path, err := config.Resolve(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if path == "" {
		c.Logger.Debug("using built-in configuration")
	} else {
		c.Logger.Debug("loaded configuration", "path", path, "items", len(cfg.Items))
	}
	return cfg, nil
}
