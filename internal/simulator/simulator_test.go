package simulator

import (
	"testing"

	"github.com/oss-maidata/maicore-go/internal/judge"
)

func TestAddNotePanicsOnOutOfOrderStart(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("AddNote with a decreasing start time should panic")
		}
	}()
	s := NewSimulator()
	s.AddNote(judge.NewTapState(judge.KeySensor(0), 2.0, judge.JudgeTap, judge.DefaultTables()))
	s.AddNote(judge.NewTapState(judge.KeySensor(1), 1.0, judge.JudgeTap, judge.DefaultTables()))
}

func TestChangeSensorJudgesMatchingNote(t *testing.T) {
	tables := judge.DefaultTables()
	s := NewSimulator()
	s.AddNote(judge.NewTapState(judge.KeySensor(0), 1.0, judge.JudgeTap, tables))
	s.ChangeSensor(judge.KeySensor(0), true, 1.0)
	results := s.Results()
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Result() != judge.Critical {
		t.Fatalf("Result() = %v, want Critical", results[0].Result())
	}
}

func TestUpdateTooLateForceFinishesExpiredNotes(t *testing.T) {
	tables := judge.DefaultTables()
	s := NewSimulator()
	s.AddNote(judge.NewTapState(judge.KeySensor(0), 1.0, judge.JudgeTap, tables))
	s.UpdateTooLate(1000.0)
	results := s.Results()
	if len(results) != 1 || results[0].Result() != judge.TooLate {
		t.Fatalf("expired note should force-finish TooLate, got %+v", results)
	}
}

func TestFinishJudgesAllRemainingNotes(t *testing.T) {
	tables := judge.DefaultTables()
	s := NewSimulator()
	s.AddNote(judge.NewTapState(judge.KeySensor(0), 1.0, judge.JudgeTap, tables))
	s.AddNote(judge.NewTapState(judge.KeySensor(1), 2.0, judge.JudgeTap, tables))
	results := s.Finish()
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if !r.Judged() {
			t.Fatalf("Finish should leave every note judged")
		}
	}
}

func TestChangeSensorDrainsFIFOInOrderForSharedSensor(t *testing.T) {
	tables := judge.DefaultTables()
	s := NewSimulator()
	sensor := judge.KeySensor(0)
	first := judge.NewTapState(sensor, 1.0, judge.JudgeTap, tables)
	second := judge.NewTapState(sensor, 1.2, judge.JudgeTap, tables)
	s.AddNote(first)
	s.AddNote(second)

	// One physical touch, exactly on time for the first note. Only the
	// first note (front of the sensor's FIFO) may consume it.
	s.ChangeSensor(sensor, true, 1.0)
	if !first.Judged() {
		t.Fatalf("first queued note should be judged by the first touch")
	}
	if second.Judged() {
		t.Fatalf("second queued note should still be waiting, not judged by the first touch")
	}
	if first.Result() != judge.Critical {
		t.Fatalf("first note Result() = %v, want Critical", first.Result())
	}

	// A second physical touch lands on the second note's schedule.
	s.ChangeSensor(sensor, true, 1.2)
	if !second.Judged() {
		t.Fatalf("second queued note should be judged by the second touch")
	}
	if second.Result() != judge.Critical {
		t.Fatalf("second note Result() = %v, want Critical", second.Result())
	}

	results := s.Results()
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (one verdict per touch, not two from one touch)", len(results))
	}
}

func TestChangeSensorTooFastKeepsNoteAtFrontOfFIFO(t *testing.T) {
	tables := judge.DefaultTables()
	s := NewSimulator()
	sensor := judge.KeySensor(0)
	n := judge.NewTapState(sensor, 10.0, judge.JudgeTap, tables)
	s.AddNote(n)

	// Touch far too early: must not consume the note.
	s.ChangeSensor(sensor, true, 0.0)
	if n.Judged() {
		t.Fatalf("a too-fast touch should stop the drain, not judge the note")
	}

	// The real, on-time touch should still reach it.
	s.ChangeSensor(sensor, true, 10.0)
	if !n.Judged() || n.Result() != judge.Critical {
		t.Fatalf("on-time touch after a too-fast touch should judge Critical, got judged=%v result=%v", n.Judged(), n.Result())
	}
}

func TestWorstTimingTracksDistanceFromCritical(t *testing.T) {
	tables := judge.DefaultTables()
	s := NewSimulator()
	s.AddNote(judge.NewTapState(judge.KeySensor(0), 1.0, judge.JudgeTap, tables))
	s.AddNote(judge.NewTapState(judge.KeySensor(1), 2.0, judge.JudgeTap, tables))
	s.ChangeSensor(judge.KeySensor(0), true, 1.0) // Critical
	s.Finish()                                    // second note never hit -> TooLate
	worst, ok := s.WorstTiming()
	if !ok || worst != judge.TooLate {
		t.Fatalf("WorstTiming() = %v,%v want TooLate,true", worst, ok)
	}
}
