package store

import (
	"errors"
	"testing"

	"github.com/zylem/fieldsync/pkg/types"
)

func TestEngine_ExecuteAndQuery(t *testing.T) {
	e, err := newEngine(t.TempDir(), "test", nil)
	if err != nil {
		t.Fatalf("newEngine failed: %v", err)
	}
	defer e.Close()

	if _, err := e.Execute("CREATE TABLE t (a TEXT, b INTEGER)"); err != nil {
		t.Fatalf("create table failed: %v", err)
	}
	n, err := e.Execute("INSERT INTO t (a, b) VALUES (?, ?)", "hello", 42)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 row affected, got %d", n)
	}

	rows, err := e.Query("SELECT a, b FROM t")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if got := types.AsString(rows[0]["a"]); got != "hello" {
		t.Errorf("a = %q, want hello", got)
	}
	if got := types.AsInt(rows[0]["b"]); got != 42 {
		t.Errorf("b = %d, want 42", got)
	}
}

func TestEngine_ExportHydrateRoundtrip(t *testing.T) {
	dir := t.TempDir()

	e, err := newEngine(dir, "test", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Execute("CREATE TABLE t (a TEXT)"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Execute("INSERT INTO t (a) VALUES (?)", "persisted"); err != nil {
		t.Fatal(err)
	}

	image, err := e.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(image) == 0 {
		t.Fatal("export produced an empty image")
	}
	e.Close()

	// A second engine hydrated from the image sees the same data.
	e2, err := newEngine(dir, "test", image)
	if err != nil {
		t.Fatalf("hydrating from image failed: %v", err)
	}
	defer e2.Close()

	rows, err := e2.Query("SELECT a FROM t")
	if err != nil {
		t.Fatalf("query on hydrated engine failed: %v", err)
	}
	if len(rows) != 1 || types.AsString(rows[0]["a"]) != "persisted" {
		t.Errorf("hydrated engine lost data: %v", rows)
	}
}

func TestEngine_HydrateCorruptImage(t *testing.T) {
	_, err := newEngine(t.TempDir(), "test", []byte("definitely not sqlite"))
	if err == nil {
		t.Fatal("expected hydration of garbage to fail")
	}
}

func TestEngine_ClosedFailsFast(t *testing.T) {
	e, err := newEngine(t.TempDir(), "test", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Idempotent.
	if err := e.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	if _, err := e.Execute("SELECT 1"); !errors.Is(err, types.ErrNotOpen) {
		t.Errorf("Execute after Close: expected ErrNotOpen, got %v", err)
	}
	if _, err := e.Query("SELECT 1"); !errors.Is(err, types.ErrNotOpen) {
		t.Errorf("Query after Close: expected ErrNotOpen, got %v", err)
	}
	if _, err := e.Export(); !errors.Is(err, types.ErrNotOpen) {
		t.Errorf("Export after Close: expected ErrNotOpen, got %v", err)
	}
}
