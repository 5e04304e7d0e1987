package progress

import (
	"database/sql"
	"time"
)

// RecordSessionDuration writes (or overwrites) the period's session log
// for the day, stamping completion time as now.
func (s *Store) RecordSessionDuration(day string, period Period, durationSeconds int) {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO session_logs (day, period, completed_at, duration_seconds)
		 VALUES (?, ?, ?, ?)`,
		day, string(period), time.Now().Unix(), durationSeconds,
	)
	if err != nil {
		s.warn("record session duration", err)
	}
}

// MarkSessionDone sets the period's done-today flag. Idempotent. This is
// the lightweight gate for "already trained this period today" and is
// independent of the timed session log.
func (s *Store) MarkSessionDone(day string, period Period) {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO session_flags (day, period) VALUES (?, ?)`,
		day, string(period),
	)
	if err != nil {
		s.warn("mark session done", err)
	}
}

// IsSessionDone reports whether the period's done-today flag is set. Note
// this is not "all tasks that period completed": the flag is set only when
// a full slide deck for the period was exhausted.
func (s *Store) IsSessionDone(day string, period Period) bool {
	var one int
	err := s.db.QueryRow(
		`SELECT 1 FROM session_flags WHERE day = ? AND period = ?`,
		day, string(period),
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		s.warn("query session flag", err)
		return false
	}
	return true
}
