package types

// Snapshot is the full payload received from the backend after a sync: a
// mapping from domain name (e.g. "Sales", "PCustomer", "OrderMaster") to the
// records fetched for that domain. Callers must resolve any pending fetch
// before handing the snapshot to the loader; it is always a plain value here.
type Snapshot map[string][]map[string]any

// Domain returns the records for a domain name, or nil if absent.
func (s Snapshot) Domain(name string) []map[string]any {
	return s[name]
}

// Has reports whether the snapshot carries at least one record for the
// domain. Empty slices count as absent, matching the loader's skip rule.
func (s Snapshot) Has(name string) bool {
	return len(s[name]) > 0
}
