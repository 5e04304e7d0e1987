package progress

import "time"

// DefaultStreakLookback bounds how far back the streak scan walks.
const DefaultStreakLookback = 30

// ComputeStreak counts consecutive calendar days with at least one star,
// walking backward from ref. A starless ref day itself never terminates
// the scan (an unbroken streak survives until today's training happens);
// a starless day strictly before ref does.
func (s *Store) ComputeStreak(ref time.Time, lookbackDays int) int {
	if lookbackDays <= 0 {
		lookbackDays = DefaultStreakLookback
	}
	streak := 0
	for i := 0; i < lookbackDays; i++ {
		day := DayKey(ref.AddDate(0, 0, -i))
		if s.StarsForDate(day) > 0 {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}
