package types

import (
	"errors"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DefaultDatabaseFile is the database file name used when Config.DatabaseFile
// is empty.
const DefaultDatabaseFile = "minerals.db"

// Config holds the parameters for Store.Open.
type Config struct {
	DataDir      string      `json:"data_dir" yaml:"data_dir"`           // directory holding the database file
	DatabaseFile string      `json:"database_file" yaml:"database_file"` // bare file name, DefaultDatabaseFile when empty
	ReadOnly     bool        `json:"read_only" yaml:"read_only"`         // open the file read-only; never seeds or writes
	SkipSeed     bool        `json:"-" yaml:"-"`                         // leave a fresh database empty
	Logger       *zap.Logger `json:"-" yaml:"-"`                         // diagnostic logger, nop when nil
}

// Config validation errors.
var (
	ErrDataDirEmpty        = errors.New("data dir must not be empty")
	ErrDatabaseFileInvalid = errors.New("database file must be a bare file name")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if strings.ContainsAny(c.databaseFile(), `/\`) {
		return ErrDatabaseFileInvalid
	}
	return nil
}

// databaseFile returns the configured database file name, falling back to
// DefaultDatabaseFile.
func (c Config) databaseFile() string {
	if c.DatabaseFile == "" {
		return DefaultDatabaseFile
	}
	return c.DatabaseFile
}

// DatabasePath returns the path of the database file under DataDir.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.databaseFile())
}

// Log returns the configured logger, or a no-op logger when none is set.
func (c Config) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
