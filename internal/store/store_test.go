package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zylem/fieldsync/pkg/types"
)

func TestStore_PersistenceRoundtrip(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{
		DataDir:         dir,
		DatabaseName:    "fieldsync",
		DatabaseVersion: 1,
	}

	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := s.Run(
		"INSERT INTO Setting (Name, Value) VALUES (?, ?)", "LastSync", "2026-09-01"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// A new store hydrated from the image sees the committed write.
	s2, err := Open(cfg)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	rows, err := s2.Select("SELECT Value FROM Setting WHERE Name = ?", "LastSync")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || types.AsString(rows[0]["Value"]) != "2026-09-01" {
		t.Errorf("write did not survive restart: %v", rows)
	}
}

func TestStore_VersionMismatchWipes(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{DataDir: dir, DatabaseName: "fieldsync", DatabaseVersion: 1}

	s, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Run("INSERT INTO Setting (Name, Value) VALUES (?, ?)", "k", "v"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen with a bumped version: the image must be discarded.
	cfg.DatabaseVersion = 2
	s2, err := Open(cfg)
	if err != nil {
		t.Fatalf("reopen with new version failed: %v", err)
	}
	defer s2.Close()

	n, err := s2.RowCount("Setting")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected empty Setting after version bump, got %d rows", n)
	}
}

func TestStore_TransactionRollback(t *testing.T) {
	s := openMemory(t)

	err := s.Transaction([]Statement{
		{SQL: "INSERT INTO Setting (Name, Value) VALUES (?, ?)", Params: []any{"a", "1"}},
		{SQL: "INSERT INTO NoSuchTable (x) VALUES (?)", Params: []any{"boom"}},
	})
	if err == nil {
		t.Fatal("expected transaction to fail")
	}
	var te *types.TransactionError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransactionError, got %T", err)
	}
	if te.Index != 1 {
		t.Errorf("expected failure at statement 1, got %d", te.Index)
	}

	// The first statement must have been rolled back.
	n, err := s.RowCount("Setting")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("rollback left %d rows behind", n)
	}

	// A clean batch commits as a unit.
	err = s.Transaction([]Statement{
		{SQL: "INSERT INTO Setting (Name, Value) VALUES (?, ?)", Params: []any{"a", "1"}},
		{SQL: "INSERT INTO Setting (Name, Value) VALUES (?, ?)", Params: []any{"b", "2"}},
	})
	if err != nil {
		t.Fatalf("clean transaction failed: %v", err)
	}
	n, _ = s.RowCount("Setting")
	if n != 2 {
		t.Errorf("expected 2 rows after commit, got %d", n)
	}
}

func TestStore_QueryErrors(t *testing.T) {
	s := openMemory(t)

	_, err := s.Run("INSERT INTO NoSuchTable (x) VALUES (1)")
	var qe *types.QueryError
	if !errors.As(err, &qe) {
		t.Fatalf("expected *QueryError, got %T", err)
	}

	_, err = s.Select("SELECT * FROM NoSuchTable")
	if !errors.As(err, &qe) {
		t.Fatalf("expected *QueryError from Select, got %T", err)
	}
}

func TestStore_MaintenanceHelpers(t *testing.T) {
	s := openMemory(t)

	if err := s.ClearTable("NotATable"); !errors.Is(err, types.ErrUnknownTable) {
		t.Errorf("ClearTable on unknown table: expected ErrUnknownTable, got %v", err)
	}
	if err := s.DropTable("NotATable"); !errors.Is(err, types.ErrUnknownTable) {
		t.Errorf("DropTable on unknown table: expected ErrUnknownTable, got %v", err)
	}
	if _, err := s.RowCount("NotATable"); !errors.Is(err, types.ErrUnknownTable) {
		t.Errorf("RowCount on unknown table: expected ErrUnknownTable, got %v", err)
	}

	if _, err := s.Run("INSERT INTO Setting (Name, Value) VALUES (?, ?)", "k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearTable("Setting"); err != nil {
		t.Fatalf("ClearTable failed: %v", err)
	}
	n, _ := s.RowCount("Setting")
	if n != 0 {
		t.Errorf("expected 0 rows after clear, got %d", n)
	}

	if _, err := s.Run("INSERT INTO Setting (Name, Value) VALUES (?, ?)", "k2", "v"); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearForBulkLoad("Setting"); err != nil {
		t.Fatalf("ClearForBulkLoad failed: %v", err)
	}
	n, _ = s.RowCount("Setting")
	if n != 0 {
		t.Errorf("expected 0 rows after bulk clear, got %d", n)
	}
	if err := s.ClearForBulkLoad("NotATable"); !errors.Is(err, types.ErrUnknownTable) {
		t.Errorf("ClearForBulkLoad on unknown table: expected ErrUnknownTable, got %v", err)
	}

	if err := s.DropTable("UsesLog"); err != nil {
		t.Fatalf("DropTable failed: %v", err)
	}
	exists, _ := s.TableExists("UsesLog")
	if exists {
		t.Error("UsesLog should be gone after DropTable")
	}

	size, err := s.SizeBytes()
	if err != nil {
		t.Fatalf("SizeBytes failed: %v", err)
	}
	if size == 0 {
		t.Error("expected a non-empty image size")
	}
}

func TestStore_Reset(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{DataDir: dir, DatabaseName: "fieldsync", DatabaseVersion: 1}

	s, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := s.Run("INSERT INTO Setting (Name, Value) VALUES (?, ?)", "k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	// All data gone, schema intact, store still usable.
	n, err := s.RowCount("Setting")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected empty Setting after reset, got %d rows", n)
	}
	if _, err := s.Run("INSERT INTO Setting (Name, Value) VALUES (?, ?)", "fresh", "1"); err != nil {
		t.Errorf("store unusable after reset: %v", err)
	}
}

func TestStore_DegradedMode(t *testing.T) {
	// Point DataDir at a regular file so the directory cannot be created.
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(types.Config{
		DataDir:         blocker,
		DatabaseName:    "fieldsync",
		DatabaseVersion: 1,
	})
	if err != nil {
		t.Fatalf("Open should degrade, not fail: %v", err)
	}
	defer s.Close()

	// Writes work; explicit saves report the storage sentinel.
	if _, err := s.Run("INSERT INTO Setting (Name, Value) VALUES (?, ?)", "k", "v"); err != nil {
		t.Errorf("write in degraded mode failed: %v", err)
	}
	if err := s.Save(); !errors.Is(err, types.ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable from Save, got %v", err)
	}
}

func TestStore_ClosedFailsFast(t *testing.T) {
	s, err := Open(types.Config{DatabaseName: "t", DatabaseVersion: 1, InMemory: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}

	if _, err := s.Run("SELECT 1"); !errors.Is(err, types.ErrNotOpen) {
		t.Errorf("Run after Close: expected ErrNotOpen, got %v", err)
	}
	if _, err := s.Select("SELECT 1"); !errors.Is(err, types.ErrNotOpen) {
		t.Errorf("Select after Close: expected ErrNotOpen, got %v", err)
	}
	if err := s.Save(); !errors.Is(err, types.ErrNotOpen) {
		t.Errorf("Save after Close: expected ErrNotOpen, got %v", err)
	}
}
