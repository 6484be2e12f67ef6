package query

import "github.com/zylem/fieldsync/pkg/types"

// AttendanceRecord is one punch-in or punch-out entry. Latitude/Longitude are
// nil when the device had no fix.
type AttendanceRecord struct {
	UserID         string
	AttendanceType string
	Date           string
	Time           string
	Latitude       *float64
	Longitude      *float64
	Remark         string
	DayEnd         bool
}

// InsertAttendance records a punch. New records always start unsynced.
func (q *Queries) InsertAttendance(rec AttendanceRecord) error {
	dayEnd := 0
	if rec.DayEnd {
		dayEnd = 1
	}
	_, err := q.store.Run(
		`INSERT INTO Attendance (
			UserId, AttendanceType, AttendanceDate, AttendanceTime,
			Latitude, Longitude, Remark, IsDayEnd, SyncFlag
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0)`,
		rec.UserID, rec.AttendanceType, rec.Date, rec.Time,
		nullableFloat(rec.Latitude), nullableFloat(rec.Longitude),
		rec.Remark, dayEnd)
	return err
}

// AttendanceForDate returns every punch recorded on a date.
func (q *Queries) AttendanceForDate(date string) []types.Row {
	return q.rows("SELECT * FROM Attendance WHERE AttendanceDate = ?", date)
}

// DayEndAttendanceForDate returns only day-end punches for a date; an empty
// result means the day is still open.
func (q *Queries) DayEndAttendanceForDate(date string) []types.Row {
	return q.rows(
		"SELECT * FROM Attendance WHERE AttendanceDate = ? AND IsDayEnd = 1", date)
}

// InsertUsageLog appends one activity entry to the usage log.
func (q *Queries) InsertUsageLog(userID, activity, dateTime string) error {
	_, err := q.store.Run(
		"INSERT INTO UsesLog (UserId, Activity, DateTime, SyncFlag) VALUES (?, ?, ?, 0)",
		userID, activity, dateTime)
	return err
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
