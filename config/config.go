// Package config loads the settings of termwin from a TOML file in the XDG
// config directory.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hnimtadd/termwin/logger"
	"github.com/hnimtadd/termwin/terminal"
	"github.com/rkoesters/xdg/basedir"
)

const (
	appName  = "termwin"
	fileName = "config.toml"
)

type Config struct {
	// MaxColorPairs caps the color pair table, 0 derives it from the
	// terminal.
	MaxColorPairs int `toml:"max_color_pairs"`
	// InputTimeoutMS is the default key read timeout: -1 blocks, 0 polls.
	InputTimeoutMS int  `toml:"input_timeout_ms"`
	TabWidth       int  `toml:"tab_width"`
	Mouse          bool `toml:"mouse"`

	Log Log `toml:"log"`
}

type Log struct {
	// File receives the log records. Empty discards them, a terminal
	// program cannot log to stderr.
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxColorPairs:  0,
		InputTimeoutMS: -1,
		TabWidth:       8,
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Dir is the directory the config file lives in.
func Dir() string {
	return filepath.Join(basedir.ConfigHome, appName)
}

// Path is the default config file.
func Path() string {
	return filepath.Join(Dir(), fileName)
}

// Load reads the config file at path on top of the defaults. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory when needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = toml.NewEncoder(f).Encode(c)
	return errors.Join(err, f.Close())
}

func (c *Config) Validate() error {
	var errs []error
	if c.MaxColorPairs < 0 {
		errs = append(errs, errors.New("max_color_pairs must not be negative"))
	}
	if c.TabWidth < 1 || c.TabWidth > 255 {
		errs = append(errs, errors.New("tab_width must be in [1, 255]"))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseType(c.Log.Format); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// InputTimeout converts InputTimeoutMS, keeping -1 as "block".
func (c *Config) InputTimeout() time.Duration {
	if c.InputTimeoutMS < 0 {
		return -1
	}
	return time.Duration(c.InputTimeoutMS) * time.Millisecond
}

// Logger opens the configured log file. The returned close function must be
// called when done; it is a no-op when logging is off.
func (c *Config) Logger() (logger.Logger, func() error, error) {
	noop := func() error { return nil }
	if c.Log.File == "" {
		return logger.Discard, noop, nil
	}
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, noop, err
	}
	typ, err := logger.ParseType(c.Log.Format)
	if err != nil {
		return nil, noop, err
	}
	f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, err
	}
	return logger.New(logger.Options{Buffer: f, Level: level, Type: typ}), f.Close, nil
}

// TerminalOptions derives the options of terminal.Open.
func (c *Config) TerminalOptions(log logger.Logger) terminal.Options {
	return terminal.Options{
		MaxColorPairs: c.MaxColorPairs,
		TabWidth:      uint8(c.TabWidth),
		Mouse:         c.Mouse,
		Logger:        log,
	}
}
