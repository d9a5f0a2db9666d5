// Package config loads the grid template and initial items from TOML.
//
// A configuration file looks like:
//
//	columns      = 12
//	column_width = 6
//	row_height   = 2
//	column_gap   = 1
//
//	[[items]]
//	key         = "inbox"
//	label       = "Inbox"
//	column_span = 3
//	row_span    = 3
//
// Unknown keys are rejected. Items without a key get a random UUID; items
// without spans get one span on that axis.
package config

import (
	"cmp"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/felixfbecker/resizegrid/pkg/errors"
	"github.com/felixfbecker/resizegrid/pkg/grid"
	"github.com/felixfbecker/resizegrid/pkg/grid/placement"
)

const (
	appName  = "resizegrid"
	fileName = "grid.toml"
)

// Item is one configured grid item.
type Item struct {
	Key        string `toml:"key"`
	Label      string `toml:"label,omitempty"`
	ColumnSpan int    `toml:"column_span"`
	RowSpan    int    `toml:"row_span"`
}

// Config is the grid template plus the initial items in order.
type Config struct {
	placement.Template
	Items []Item `toml:"items"`
}

// Default returns seven 3x3 items on a twelve-column grid.
func Default() Config {
	items := make([]Item, 7)
	for i := range items {
		n := strconv.Itoa(i + 1)
		items[i] = Item{Key: n, Label: "Item " + n, ColumnSpan: 3, RowSpan: 3}
	}
	return Config{Template: placement.DefaultTemplate(), Items: items}
}

// DefaultPath returns $XDG_CONFIG_HOME/resizegrid/grid.toml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Resolve loads the configuration at path. An empty path means the default
// location, and a missing file there yields Default.
func Resolve(path string) (Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	path, err := DefaultPath()
	if err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), "", nil
	}
	return cfg, path, err
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	if err := errors.ValidateConfigPath(path); err != nil {
		return Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.GetCode(err), err, "load %s", path)
	}
	return cfg, nil
}

// Decode reads a configuration from r. Template fields left out of the
// document keep their defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Config{Template: placement.DefaultTemplate()}
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}

	for i := range cfg.Items {
		item := &cfg.Items[i]
		if item.Key == "" {
			item.Key = uuid.NewString()
		}
		if item.ColumnSpan == 0 {
			item.ColumnSpan = grid.MinSpan
		}
		if item.RowSpan == 0 {
			item.RowSpan = grid.MinSpan
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the template and items.
func (c Config) Validate() error {
	if err := c.Template.Validate(); err != nil {
		return err
	}
	for _, item := range c.Items {
		if err := errors.ValidateKey(item.Key); err != nil {
			return err
		}
	}
	if err := c.Layout().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "items")
	}
	for _, item := range c.Items {
		if err := c.ValidateColumnSpan(item.ColumnSpan); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "item %q", item.Key)
		}
	}
	return nil
}

// Layout returns the configured items as a layout.
func (c Config) Layout() grid.Layout {
	layout := make(grid.Layout, len(c.Items))
	for i, item := range c.Items {
		layout[i] = grid.ItemConfig{Key: item.Key, ColumnSpan: item.ColumnSpan, RowSpan: item.RowSpan}
	}
	return layout
}

// Labels maps item keys to display labels. Items without a label map to
// their key.
func (c Config) Labels() map[string]string {
	labels := make(map[string]string, len(c.Items))
	for _, item := range c.Items {
		labels[item.Key] = cmp.Or(item.Label, item.Key)
	}
	return labels
}

// Encode writes c as TOML.
func Encode(w io.Writer, c Config) error {
	return toml.NewEncoder(w).Encode(c)
}
