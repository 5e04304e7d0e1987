package progress

import "time"

// HistoryDay is one day of the history window. Record is nil for days
// with no stored activity.
type HistoryDay struct {
	Day    string
	Record *DailyRecord
}

// History returns the last `days` calendar days ending at ref, oldest
// first. Days without any record are present with a nil Record so callers
// can render gaps.
func (s *Store) History(ref time.Time, days int) []HistoryDay {
	out := make([]HistoryDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := DayKey(ref.AddDate(0, 0, -i))
		rec := s.Record(day)
		hd := HistoryDay{Day: day}
		if rec.Stars() > 0 || len(rec.Sessions) > 0 {
			hd.Record = rec
		}
		out = append(out, hd)
	}
	return out
}
