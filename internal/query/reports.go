package query

import "github.com/zylem/fieldsync/pkg/types"

// ReportClassifications returns the classification rows configured for a
// report menu key (Report1, Report2, ...).
func (q *Queries) ReportClassifications(menuKey string) []types.Row {
	return q.rows("SELECT * FROM Report WHERE MenuKey = ?", menuKey)
}

// ControlID resolves a report reference column to its control id, or ""
// when unconfigured.
func (q *Queries) ControlID(referenceColumn string) string {
	rows := q.rows(
		"SELECT ControlId FROM ReportControlMaster WHERE ReferenceColumn = ?",
		referenceColumn)
	if len(rows) == 0 {
		return ""
	}
	return types.AsString(rows[0]["ControlId"])
}
