// Package query provides the typed domain read/write surface over the store.
// Reads never fail the caller: a failing SELECT is logged and an empty result
// returned, matching the app's tolerance for a half-loaded database. Writes
// return their errors.
package query

import (
	"github.com/sirupsen/logrus"

	"github.com/zylem/fieldsync/internal/store"
	"github.com/zylem/fieldsync/pkg/types"
)

// Well-known Setting keys.
const (
	keyLastSync           = "LastSync"
	keyAutoSync           = "AutoSync"
	keySyncOnActivity     = "SyncOnActivity"
	keyAttendanceSettings = "AttendanceSettings"
	keyAppLogWriting      = "AppLogWriting"
	keyOrderConfirm       = "OrderConfirmSignature"
	keyExternalShare      = "ExternalShare"
)

// Queries wraps a store with the domain vocabulary.
type Queries struct {
	store *store.Store
	log   *logrus.Entry
}

func New(s *store.Store) *Queries {
	return &Queries{
		store: s,
		log:   logrus.WithField("component", "query"),
	}
}

// rows runs a tolerant SELECT: on failure it logs and returns an empty slice.
func (q *Queries) rows(sqlText string, params ...any) []types.Row {
	rows, err := q.store.Select(sqlText, params...)
	if err != nil {
		q.log.WithError(err).Warn("select failed")
		return []types.Row{}
	}
	return rows
}

// SettingValue returns the Setting value for a key, or "" when absent.
func (q *Queries) SettingValue(key string) string {
	rows := q.rows("SELECT Value FROM Setting WHERE Name = ?", key)
	if len(rows) == 0 {
		return ""
	}
	return types.AsString(rows[0]["Value"])
}

// SetSettingValue upserts one Setting key.
func (q *Queries) SetSettingValue(key, value string) error {
	_, err := q.store.Run(
		"INSERT OR REPLACE INTO Setting (Name, Value) VALUES (?, ?)", key, value)
	return err
}

// LastSync returns the recorded last sync timestamp, or "" before any sync.
func (q *Queries) LastSync() string {
	return q.SettingValue(keyLastSync)
}

// SetLastSync records a sync timestamp.
func (q *Queries) SetLastSync(ts string) error {
	return q.SetSettingValue(keyLastSync, ts)
}

// AutoSync reports whether background sync is enabled. Defaults to false.
func (q *Queries) AutoSync() bool {
	return q.SettingValue(keyAutoSync) == "1"
}

// SyncOnActivity reports whether each activity triggers a sync.
func (q *Queries) SyncOnActivity() bool {
	return q.SettingValue(keySyncOnActivity) == "1"
}

// AttendanceSettings returns the raw attendance configuration value.
func (q *Queries) AttendanceSettings() string {
	return q.SettingValue(keyAttendanceSettings)
}

// AppLogWriting reports whether app-side log writing is enabled.
func (q *Queries) AppLogWriting() bool {
	return q.SettingValue(keyAppLogWriting) == "1"
}

// OrderConfirmSignature reports whether orders require a confirming signature.
func (q *Queries) OrderConfirmSignature() bool {
	return q.SettingValue(keyOrderConfirm) == "1"
}

// ExternalShare reports whether sharing to external apps is enabled.
func (q *Queries) ExternalShare() bool {
	return q.SettingValue(keyExternalShare) == "1"
}
