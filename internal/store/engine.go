package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zylem/fieldsync/pkg/types"
)

// engine adapts the embedded SQLite library to the byte-image lifecycle the
// store needs: constructed either empty or hydrated from a prior image, and
// able to serialize its entire state back to bytes on demand.
//
// A hydrated engine works on a scratch file that is removed and rebuilt from
// the image on every open; the image in the blob store stays the only durable
// copy. An empty engine runs fully in memory.
type engine struct {
	db         *sql.DB
	workPath   string // scratch database file; empty when running in memory
	scratchDir string // directory for export scratch files
	open       bool
}

// newEngine opens a SQLite engine. When image is non-nil the engine is
// hydrated from it; otherwise it starts empty and in-memory.
func newEngine(scratchDir, name string, image []byte) (*engine, error) {
	e := &engine{scratchDir: scratchDir}

	dsn := ":memory:"
	if image != nil {
		if err := os.MkdirAll(scratchDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating scratch dir: %w", err)
		}
		e.workPath = filepath.Join(scratchDir, name+".work.db")
		// Any leftover scratch file belongs to a previous session; the image
		// is authoritative.
		_ = os.Remove(e.workPath)
		if err := os.WriteFile(e.workPath, image, 0o644); err != nil {
			return nil, fmt.Errorf("writing scratch database: %w", err)
		}
		dsn = e.workPath
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	// One connection only: an in-memory DSN opens a fresh empty database per
	// connection, and the single-writer model assumes one session anyway.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		if e.workPath != "" {
			os.Remove(e.workPath)
		}
		return nil, fmt.Errorf("opening database: %w", err)
	}

	e.db = db
	e.open = true
	return e, nil
}

// Execute runs one mutating statement and returns the affected row count.
func (e *engine) Execute(sqlText string, params ...any) (int64, error) {
	if !e.open {
		return 0, types.ErrNotOpen
	}
	res, err := e.db.Exec(sqlText, params...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Query runs one SELECT and returns every row as a column-name map.
func (e *engine) Query(sqlText string, params ...any) ([]types.Row, error) {
	if !e.open {
		return nil, types.ErrNotOpen
	}
	rows, err := e.db.Query(sqlText, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := []types.Row{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(types.Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// Export serializes the full engine state to bytes via VACUUM INTO a scratch
// file. Works for both in-memory and file-backed engines.
func (e *engine) Export() ([]byte, error) {
	if !e.open {
		return nil, types.ErrNotOpen
	}
	dir := e.scratchDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating scratch dir: %w", err)
	}
	target := filepath.Join(dir, fmt.Sprintf(".export-%d.db", time.Now().UnixNano()))
	_ = os.Remove(target)
	defer os.Remove(target)

	// VACUUM INTO refuses an existing target, hence the remove above. The
	// path is embedded as a quoted literal; it never comes from user input.
	quoted := strings.ReplaceAll(target, "'", "''")
	if _, err := e.db.Exec(fmt.Sprintf("VACUUM INTO '%s'", quoted)); err != nil {
		return nil, fmt.Errorf("exporting database: %w", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	return data, nil
}

// Close releases the engine. Subsequent operations fail with ErrNotOpen.
func (e *engine) Close() error {
	if !e.open {
		return nil
	}
	e.open = false
	err := e.db.Close()
	if e.workPath != "" {
		os.Remove(e.workPath)
	}
	return err
}
