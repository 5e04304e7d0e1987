package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// Single-connection pool keeps one in-memory database alive per store.
	s, err := Open(":memory:")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordTaskCompletion_Idempotent(t *testing.T) {
	s := openTestStore(t)
	day := "2026-03-01"

	s.RecordTaskCompletion(day, "math-morning")
	s.RecordTaskCompletion(day, "math-morning")
	s.RecordTaskCompletion(day, "outdoor-morning")

	assert.Equal(t, 2, s.StarsForDate(day))
	assert.True(t, s.IsTaskCompleted(day, "math-morning"))
	assert.False(t, s.IsTaskCompleted(day, "english-evening"))
}

func TestStarsEqualCompletedCount(t *testing.T) {
	s := openTestStore(t)
	days := []string{"2026-03-01", "2026-03-02"}

	s.RecordTaskCompletion(days[0], "a")
	s.RecordTaskCompletion(days[0], "b")
	s.RecordTaskCompletion(days[1], "a")
	s.RecordTaskCompletion(days[1], "a")

	for _, d := range days {
		assert.Equal(t, s.CompletedCountForDate(d), s.StarsForDate(d), "day %s", d)
	}
	assert.Equal(t, 0, s.StarsForDate("2026-03-03"))
}

func TestComputeStreak_ConsecutiveDays(t *testing.T) {
	s := openTestStore(t)
	ref := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)

	for i := 0; i < 3; i++ {
		s.RecordTaskCompletion(DayKey(ref.AddDate(0, 0, -i)), "t")
	}

	assert.GreaterOrEqual(t, s.ComputeStreak(ref, DefaultStreakLookback), 3)
}

func TestComputeStreak_TodayGapDoesNotBreak(t *testing.T) {
	s := openTestStore(t)
	ref := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	// Nothing today yet, but yesterday and the day before trained.
	s.RecordTaskCompletion(DayKey(ref.AddDate(0, 0, -1)), "t")
	s.RecordTaskCompletion(DayKey(ref.AddDate(0, 0, -2)), "t")

	assert.Equal(t, 2, s.ComputeStreak(ref, DefaultStreakLookback))
}

func TestComputeStreak_GapBeforeTodayBreaks(t *testing.T) {
	s := openTestStore(t)
	ref := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	// Today and two days ago trained, yesterday skipped.
	s.RecordTaskCompletion(DayKey(ref), "t")
	s.RecordTaskCompletion(DayKey(ref.AddDate(0, 0, -2)), "t")

	assert.Equal(t, 1, s.ComputeStreak(ref, DefaultStreakLookback))
}

func TestComputeStreak_EmptyStore(t *testing.T) {
	s := openTestStore(t)
	assert.Equal(t, 0, s.ComputeStreak(time.Now(), DefaultStreakLookback))
}

func TestHistory_WindowAndOrder(t *testing.T) {
	s := openTestStore(t)
	ref := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	s.RecordTaskCompletion(DayKey(ref), "a")
	s.RecordTaskCompletion(DayKey(ref.AddDate(0, 0, -3)), "b")

	h := s.History(ref, 7)
	require.Len(t, h, 7)
	assert.Equal(t, DayKey(ref.AddDate(0, 0, -6)), h[0].Day, "oldest first")
	assert.Equal(t, DayKey(ref), h[6].Day)

	assert.Nil(t, h[5].Record, "yesterday has no record")
	require.NotNil(t, h[3].Record)
	assert.Equal(t, 1, h[3].Record.Stars())
	require.NotNil(t, h[6].Record)
	assert.True(t, h[6].Record.Completed["a"])
}

func TestRecord_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	day := "2026-03-05"

	s.RecordTaskCompletion(day, "math-morning")
	s.RecordTaskCompletion(day, "english-evening")
	s.RecordSessionDuration(day, PeriodMorning, 540)

	rec := s.Record(day)
	assert.Equal(t, 2, rec.Stars())
	assert.True(t, rec.Completed["math-morning"])
	assert.True(t, rec.Completed["english-evening"])

	log, ok := rec.Sessions[PeriodMorning]
	require.True(t, ok, "morning session log present")
	assert.Equal(t, 540, log.DurationSeconds)
	assert.False(t, log.CompletedAt.IsZero())

	_, evening := rec.Sessions[PeriodEvening]
	assert.False(t, evening)
}

func TestRecordSessionDuration_Overwrites(t *testing.T) {
	s := openTestStore(t)
	day := "2026-03-05"

	s.RecordSessionDuration(day, PeriodEvening, 100)
	s.RecordSessionDuration(day, PeriodEvening, 250)

	rec := s.Record(day)
	assert.Equal(t, 250, rec.Sessions[PeriodEvening].DurationSeconds)
}

func TestSessionFlags(t *testing.T) {
	s := openTestStore(t)
	day := "2026-03-05"

	assert.False(t, s.IsSessionDone(day, PeriodMorning))
	s.MarkSessionDone(day, PeriodMorning)
	s.MarkSessionDone(day, PeriodMorning)
	assert.True(t, s.IsSessionDone(day, PeriodMorning))
	assert.False(t, s.IsSessionDone(day, PeriodEvening))
	assert.False(t, s.IsSessionDone("2026-03-06", PeriodMorning))
}

func TestPIN(t *testing.T) {
	s := openTestStore(t)

	assert.Equal(t, DefaultPIN, s.PIN())

	require.NoError(t, s.SetPIN("8080"))
	assert.Equal(t, "8080", s.PIN())

	assert.ErrorIs(t, s.SetPIN("123"), ErrInvalidPIN)
	assert.ErrorIs(t, s.SetPIN("12345"), ErrInvalidPIN)
	assert.ErrorIs(t, s.SetPIN("12a4"), ErrInvalidPIN)
	assert.Equal(t, "8080", s.PIN(), "invalid attempts leave PIN unchanged")
}
