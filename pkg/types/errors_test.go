package types

import (
	"errors"
	"testing"
)

func TestErrorUnwrapping(t *testing.T) {
	cause := errors.New("disk full")

	var err error = &QueryError{SQL: "INSERT INTO x VALUES (?)", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("QueryError should unwrap to its cause")
	}
	var qe *QueryError
	if !errors.As(err, &qe) {
		t.Error("errors.As should find *QueryError")
	}

	err = &TransactionError{Index: 2, SQL: "COMMIT", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("TransactionError should unwrap to its cause")
	}

	err = &SchemaError{Table: "Settings", Err: ErrNotOpen}
	if !errors.Is(err, ErrNotOpen) {
		t.Error("SchemaError should unwrap to its cause")
	}
}
