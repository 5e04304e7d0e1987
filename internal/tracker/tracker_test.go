package tracker

import (
	"testing"
	"time"

	"github.com/yuchen/eyebright/internal/progress"
)

func testTracker(t *testing.T) (*Tracker, *progress.Store, *time.Time) {
	t.Helper()
	store, err := progress.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	now := time.Date(2026, 3, 10, 7, 30, 0, 0, time.Local)
	tr := New(store)
	tr.SetClock(func() time.Time { return now })
	return tr, store, &now
}

func TestFinish_RecordsDurationAndFlag(t *testing.T) {
	tr, store, now := testTracker(t)
	day := progress.DayKey(*now)

	if err := tr.Start(progress.PeriodMorning); err != nil {
		t.Fatalf("start: %v", err)
	}
	*now = now.Add(9 * time.Minute)
	tr.Finish(progress.PeriodMorning)

	if !store.IsSessionDone(day, progress.PeriodMorning) {
		t.Error("expected morning session flagged done")
	}
	rec := store.Record(day)
	log, ok := rec.Sessions[progress.PeriodMorning]
	if !ok {
		t.Fatal("expected morning session log")
	}
	if log.DurationSeconds != 9*60 {
		t.Errorf("duration = %d, want %d", log.DurationSeconds, 9*60)
	}
	if _, active := tr.Active(); active {
		t.Error("expected transient state cleared after finish")
	}
}

func TestFinish_WithoutStart_MarksDoneWithoutTiming(t *testing.T) {
	tr, store, now := testTracker(t)
	day := progress.DayKey(*now)

	tr.Finish(progress.PeriodEvening)

	if !store.IsSessionDone(day, progress.PeriodEvening) {
		t.Error("expected evening session flagged done")
	}
	if _, ok := store.Record(day).Sessions[progress.PeriodEvening]; ok {
		t.Error("expected no session log without a start timestamp")
	}
}

func TestStart_NoOpWhenAlreadyDone(t *testing.T) {
	tr, store, now := testTracker(t)
	store.MarkSessionDone(progress.DayKey(*now), progress.PeriodMorning)

	if err := tr.Start(progress.PeriodMorning); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, active := tr.Active(); active {
		t.Error("start on a done period should not begin timing")
	}
}

func TestStart_RejectsOverlappingPeriod(t *testing.T) {
	tr, _, _ := testTracker(t)

	if err := tr.Start(progress.PeriodMorning); err != nil {
		t.Fatalf("start morning: %v", err)
	}
	if err := tr.Start(progress.PeriodEvening); err != ErrSessionActive {
		t.Fatalf("start evening = %v, want ErrSessionActive", err)
	}

	tr.Abandon()
	if err := tr.Start(progress.PeriodEvening); err != nil {
		t.Fatalf("start evening after abandon: %v", err)
	}
}

func TestStart_RestartSamePeriodResetsTimer(t *testing.T) {
	tr, store, now := testTracker(t)
	day := progress.DayKey(*now)

	if err := tr.Start(progress.PeriodMorning); err != nil {
		t.Fatalf("start: %v", err)
	}
	*now = now.Add(5 * time.Minute)
	if err := tr.Start(progress.PeriodMorning); err != nil {
		t.Fatalf("restart: %v", err)
	}
	*now = now.Add(2 * time.Minute)
	tr.Finish(progress.PeriodMorning)

	log := store.Record(day).Sessions[progress.PeriodMorning]
	if log.DurationSeconds != 2*60 {
		t.Errorf("duration = %d, want %d (timer restarts with the session)", log.DurationSeconds, 2*60)
	}
}

func TestFinish_MismatchedPeriod_NoDuration(t *testing.T) {
	tr, store, now := testTracker(t)
	day := progress.DayKey(*now)

	if err := tr.Start(progress.PeriodMorning); err != nil {
		t.Fatalf("start: %v", err)
	}
	tr.Finish(progress.PeriodEvening)

	if _, ok := store.Record(day).Sessions[progress.PeriodEvening]; ok {
		t.Error("finishing a period that was never timed should not log a duration")
	}
	if !store.IsSessionDone(day, progress.PeriodEvening) {
		t.Error("done flag should still be set")
	}
	if _, active := tr.Active(); active {
		t.Error("transient state cleared regardless of period match")
	}
}
