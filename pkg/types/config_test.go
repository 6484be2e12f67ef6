package types

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		DataDir:         "/tmp/data",
		DatabaseName:    "fieldsync",
		DatabaseVersion: 1,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config failed: %v", err)
	}

	cfg := valid
	cfg.DatabaseName = ""
	if err := cfg.Validate(); !errors.Is(err, ErrDatabaseNameEmpty) {
		t.Errorf("expected ErrDatabaseNameEmpty, got %v", err)
	}

	cfg = valid
	cfg.DatabaseVersion = 0
	if err := cfg.Validate(); !errors.Is(err, ErrVersionInvalid) {
		t.Errorf("expected ErrVersionInvalid, got %v", err)
	}

	cfg = valid
	cfg.DatabaseVersion = -3
	if err := cfg.Validate(); !errors.Is(err, ErrVersionInvalid) {
		t.Errorf("expected ErrVersionInvalid for negative, got %v", err)
	}

	cfg = valid
	cfg.DataDir = ""
	if err := cfg.Validate(); !errors.Is(err, ErrDataDirEmpty) {
		t.Errorf("expected ErrDataDirEmpty, got %v", err)
	}

	// In-memory stores need no data directory.
	cfg = valid
	cfg.DataDir = ""
	cfg.InMemory = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("in-memory config should not need DataDir, got %v", err)
	}
}
