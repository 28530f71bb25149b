// Package config persists user preferences to a small JSON file under the
// platform config directory (~/.config/ktop/config.json on Linux).
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/rileyhilliard/ktop/internal/errors"
	"github.com/rileyhilliard/ktop/internal/logger"
)

const (
	dirName  = "ktop"
	fileName = "config.json"

	themeKey = "theme"
)

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfig,
			"Cannot determine the user config directory",
			"Set HOME (or XDG_CONFIG_HOME) so preferences can be saved.")
	}
	return filepath.Join(base, dirName, fileName), nil
}

// Store reads and writes preferences at a fixed path. Reads are forgiving:
// a missing or malformed file reads as empty so startup never fails on
// preferences.
type Store struct {
	path string
	log  logger.Logger
}

// NewStore creates a store for the given file path.
func NewStore(path string, log logger.Logger) *Store {
	if log == nil {
		log = logger.Noop()
	}
	return &Store{path: path, log: log}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Theme returns the saved theme name, or "" when none is saved or the file
// cannot be read.
func (s *Store) Theme() string {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		s.log.Debug("reading config %s: %v", s.path, err)
		return ""
	}
	return v.GetString(themeKey)
}

// SaveTheme writes the theme name, creating the config directory as needed.
// Keys other than the theme survive the rewrite.
func (s *Store) SaveTheme(name string) error {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	// Best effort: a missing or broken file just means starting fresh.
	_ = v.ReadInConfig()
	v.Set(themeKey, name)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, errors.ErrConfig,
			"Failed to create the config directory",
			"Check permissions on "+filepath.Dir(s.path))
	}
	if err := v.WriteConfigAs(s.path); err != nil {
		return errors.Wrap(err, errors.ErrConfig,
			"Failed to save preferences",
			"Check permissions on "+s.path)
	}
	return nil
}
