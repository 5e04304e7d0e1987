package progress

import (
	"database/sql"
	"time"
)

// SessionLog records when a period's slide deck was finished and how long
// the session took.
type SessionLog struct {
	CompletedAt     time.Time
	DurationSeconds int
}

// DailyRecord is one calendar day's aggregate. Stars is always derived
// from the completed set, never stored, so the stars == |completed|
// invariant cannot drift.
type DailyRecord struct {
	Day       string
	Completed map[string]bool
	Sessions  map[Period]SessionLog
}

// Stars returns the day's star count: one per completed task.
func (r *DailyRecord) Stars() int {
	return len(r.Completed)
}

// RecordTaskCompletion idempotently adds taskID to the day's completed
// set. Re-completing the same task on the same day is a no-op.
func (s *Store) RecordTaskCompletion(day, taskID string) {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO task_completions (day, task_id, completed_at) VALUES (?, ?, ?)`,
		day, taskID, time.Now().Unix(),
	)
	if err != nil {
		s.warn("record task completion", err)
	}
}

// IsTaskCompleted reports whether taskID was completed on the given day.
func (s *Store) IsTaskCompleted(day, taskID string) bool {
	var one int
	err := s.db.QueryRow(
		`SELECT 1 FROM task_completions WHERE day = ? AND task_id = ?`,
		day, taskID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		s.warn("query task completion", err)
		return false
	}
	return true
}

// CompletedCountForDate returns how many tasks were completed on the day.
func (s *Store) CompletedCountForDate(day string) int {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM task_completions WHERE day = ?`, day,
	).Scan(&n)
	if err != nil {
		s.warn("count completions", err)
		return 0
	}
	return n
}

// StarsForDate returns the day's star count. Stars are one-per-completed-
// task, so this always equals CompletedCountForDate.
func (s *Store) StarsForDate(day string) int {
	return s.CompletedCountForDate(day)
}

// Record loads the full DailyRecord for a day. Days with no activity
// return an empty record, as do days whose reads fail.
func (s *Store) Record(day string) *DailyRecord {
	rec := &DailyRecord{
		Day:       day,
		Completed: make(map[string]bool),
		Sessions:  make(map[Period]SessionLog),
	}

	rows, err := s.db.Query(`SELECT task_id FROM task_completions WHERE day = ?`, day)
	if err != nil {
		s.warn("load completions", err)
		return rec
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			s.warn("scan completion", err)
			continue
		}
		rec.Completed[id] = true
	}
	if err := rows.Err(); err != nil {
		s.warn("iterate completions", err)
	}

	logRows, err := s.db.Query(
		`SELECT period, completed_at, duration_seconds FROM session_logs WHERE day = ?`, day,
	)
	if err != nil {
		s.warn("load session logs", err)
		return rec
	}
	defer logRows.Close()
	for logRows.Next() {
		var (
			period  string
			at      int64
			seconds int
		)
		if err := logRows.Scan(&period, &at, &seconds); err != nil {
			s.warn("scan session log", err)
			continue
		}
		rec.Sessions[Period(period)] = SessionLog{
			CompletedAt:     time.Unix(at, 0),
			DurationSeconds: seconds,
		}
	}
	if err := logRows.Err(); err != nil {
		s.warn("iterate session logs", err)
	}

	return rec
}
