package types

import "errors"

// Config holds the parameters for opening a Store.
type Config struct {
	// DataDir is the directory holding the persisted database image and the
	// version marker. Ignored when InMemory is set.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// DatabaseName keys the image file inside DataDir.
	DatabaseName string `json:"database_name" yaml:"database_name"`

	// DatabaseVersion is compared against the marker stored next to the
	// image. A mismatch forces a full wipe-and-rebuild on open, so the next
	// sync repopulates every table.
	DatabaseVersion int `json:"database_version" yaml:"database_version"`

	// InMemory skips the byte store entirely. All data is lost on Close.
	InMemory bool `json:"in_memory" yaml:"in_memory"`
}

// Config validation errors.
var (
	ErrDataDirEmpty      = errors.New("data dir must not be empty")
	ErrDatabaseNameEmpty = errors.New("database name must not be empty")
	ErrVersionInvalid    = errors.New("database version must be positive")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.DatabaseName == "" {
		return ErrDatabaseNameEmpty
	}
	if c.DatabaseVersion <= 0 {
		return ErrVersionInvalid
	}
	if !c.InMemory && c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
