package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/zylem/fieldsync/internal/store"
	"github.com/zylem/fieldsync/pkg/types"
)

// Summary reports per-table load outcomes, keyed by table name.
type Summary map[string]store.BatchResult

// Total folds every table result into one.
func (s Summary) Total() store.BatchResult {
	var total store.BatchResult
	for _, r := range s {
		total.Merge(r)
	}
	return total
}

// Loader applies a sync snapshot to the domain tables according to the
// per-table policy in tableSpecs.
type Loader struct {
	store *store.Store
	log   *logrus.Entry
}

func New(s *store.Store) *Loader {
	return &Loader{
		store: s,
		log:   logrus.WithField("component", "loader"),
	}
}

// LoadAll walks every table spec in order and applies the snapshot. Row
// failures within a table are tolerated and counted; only infrastructure
// failures (store closed, clear failing) abort the load. The engine state is
// persisted exactly once, after all tables have been processed — a snapshot
// load is one durability event, not one per table.
func (l *Loader) LoadAll(snap types.Snapshot) (Summary, error) {
	summary := make(Summary, len(tableSpecs))

	for _, spec := range tableSpecs {
		if !snap.Has(spec.domain) {
			if spec.clearWhenAbsent {
				// Absence of this domain means the upstream rows were deleted;
				// stale local copies must not survive the sync.
				if err := l.store.ClearForBulkLoad(spec.table); err != nil {
					return summary, fmt.Errorf("clearing %s: %w", spec.table, err)
				}
				l.log.WithField("table", spec.table).
					Info("domain absent from snapshot, table cleared")
			}
			continue
		}

		res, err := l.loadTable(spec, snap.Domain(spec.domain))
		if err != nil {
			return summary, err
		}
		if prev, ok := summary[spec.table]; ok {
			prev.Merge(res)
			res = prev
		}
		summary[spec.table] = res
	}

	if err := l.store.Save(); err != nil {
		// A degraded store cannot persist but the rows are all loaded; a
		// failed sync here would only stop the app from using them.
		if !errors.Is(err, types.ErrStorageUnavailable) {
			return summary, fmt.Errorf("persisting after load: %w", err)
		}
		l.log.WithError(err).Warn("load complete but not persisted")
	}
	total := summary.Total()
	l.log.WithFields(logrus.Fields{
		"tables": len(summary), "rows": total.Success, "failed": total.Failed,
	}).Info("snapshot load complete")
	return summary, nil
}

// loadTable applies one spec: clear if the strategy demands it, then insert
// every record with per-row tolerance.
func (l *Loader) loadTable(spec tableSpec, records []map[string]any) (store.BatchResult, error) {
	if spec.strategy == replaceAll {
		if err := l.store.ClearForBulkLoad(spec.table); err != nil {
			return store.BatchResult{}, fmt.Errorf("clearing %s: %w", spec.table, err)
		}
	}

	rows := make([][]any, len(records))
	for i, rec := range records {
		params := make([]any, len(spec.columns))
		for j, col := range spec.columns {
			params[j] = col.coerce(rec[col.field()])
		}
		rows[i] = params
	}

	res := l.store.InsertTolerant(spec.table, insertSQL(spec), rows)
	return res, nil
}

// insertSQL builds the parameterized insert for a spec. Upsert specs use
// INSERT OR REPLACE so re-synced rows overwrite in place on the primary key.
func insertSQL(spec tableSpec) string {
	names := make([]string, len(spec.columns))
	for i, col := range spec.columns {
		names[i] = col.name
	}
	verb := "INSERT"
	if spec.strategy == upsert {
		verb = "INSERT OR REPLACE"
	}
	return fmt.Sprintf("%s INTO %s (%s) VALUES (%s)",
		verb, spec.table,
		strings.Join(names, ", "),
		strings.Join(placeholders(len(names)), ", "))
}

func placeholders(n int) []string {
	p := make([]string, n)
	for i := range p {
		p[i] = "?"
	}
	return p
}
