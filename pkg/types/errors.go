package types

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the store.
var (
	// ErrNotOpen is returned by engine and store operations after Close.
	ErrNotOpen = errors.New("store is not open")

	// ErrStorageUnavailable wraps byte-store failures (directory not
	// creatable, image not readable/writable). The store falls back to an
	// in-memory-only engine when Open hits this.
	ErrStorageUnavailable = errors.New("persistent storage unavailable")

	// ErrUnknownTable is returned by maintenance helpers for a table name
	// that is not part of the schema catalog.
	ErrUnknownTable = errors.New("unknown table")
)

// QueryError reports a single failed SQL statement together with the
// statement and its bound parameters.
type QueryError struct {
	SQL    string
	Params []any
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q: %v", e.SQL, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// TransactionError reports a failed statement inside a transaction batch.
// The batch has been fully rolled back when this error is returned.
type TransactionError struct {
	Index int
	SQL   string
	Err   error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction statement %d (%q): %v", e.Index, e.SQL, e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }

// SchemaError reports a DDL statement that failed for a reason other than
// the table already existing. Schema setup logs these and continues.
type SchemaError struct {
	Table string
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("creating table %s: %v", e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
