package store

import (
	"fmt"

	"github.com/zylem/fieldsync/pkg/types"
)

// BatchResult summarizes a tolerant bulk insert. It is a value, not a side
// effect: callers decide what to do with the counts.
type BatchResult struct {
	Success int
	Failed  int
	Errors  []string
}

// Merge folds another result into this one.
func (r *BatchResult) Merge(other BatchResult) {
	r.Success += other.Success
	r.Failed += other.Failed
	r.Errors = append(r.Errors, other.Errors...)
}

// InsertTolerant executes insertSQL once per parameter row. Each row is
// attempted independently; a failing row is counted and recorded but never
// aborts the remaining rows. The engine state is not persisted here — bulk
// loads save once at the end of the whole batch, not per row.
func (s *Store) InsertTolerant(table, insertSQL string, rows [][]any) BatchResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res BatchResult
	if !s.open {
		res.Failed = len(rows)
		res.Errors = append(res.Errors, types.ErrNotOpen.Error())
		return res
	}
	for i, params := range rows {
		if _, err := s.eng.Execute(insertSQL, params...); err != nil {
			res.Failed++
			res.Errors = append(res.Errors,
				fmt.Sprintf("%s row %d: %v", table, i+1, err))
			continue
		}
		res.Success++
	}
	if res.Failed > 0 {
		s.log.WithField("table", table).
			WithField("failed", res.Failed).
			Warn("bulk insert had row failures")
	}
	return res
}
