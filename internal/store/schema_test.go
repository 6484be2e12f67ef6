package store

import (
	"testing"

	"github.com/zylem/fieldsync/pkg/types"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.Config{
		DatabaseName:    "test",
		DatabaseVersion: 1,
		InMemory:        true,
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSchema_AllTablesCreated(t *testing.T) {
	s := openMemory(t)

	for _, name := range TableNames() {
		exists, err := s.TableExists(name)
		if err != nil {
			t.Fatalf("TableExists(%s) failed: %v", name, err)
		}
		if !exists {
			t.Errorf("table %s not created", name)
		}
	}
}

func TestSchema_CreateTablesIdempotent(t *testing.T) {
	s := openMemory(t)

	if _, err := s.Run("INSERT INTO Setting (Name, Value) VALUES (?, ?)", "k", "v"); err != nil {
		t.Fatal(err)
	}

	// Re-applying the schema must not drop or damage existing data.
	s.mu.Lock()
	s.createTables()
	s.mu.Unlock()

	rows, err := s.Select("SELECT Value FROM Setting WHERE Name = ?", "k")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || types.AsString(rows[0]["Value"]) != "v" {
		t.Error("existing data lost after re-applying schema")
	}
}

func TestSchema_CatalogCoversKeyTables(t *testing.T) {
	for _, name := range []string{
		"Settings", "Setting", "OrderMaster", "OrderDetails", "Pcustomer",
		"PItem", "PDistributor", "Attendance", "UsesLog", "RO_BankCustomer",
		"TX_PaymentReceipt_log", "TX_Collections_log", "TX_CollectionsDetails_log",
		"MultiEntityUser", "uommaster",
	} {
		if !knownTables[name] {
			t.Errorf("catalog is missing %s", name)
		}
	}
}
