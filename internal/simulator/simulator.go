package simulator

import "github.com/oss-maidata/maicore-go/internal/judge"

// Simulator orchestrates a set of judge.NoteState machines over time
// (spec.md §4.5 "Orchestration"): notes are added in non-decreasing
// start-time order, sensor transitions are fanned out to every unjudged
// note, and notes past their judging window are force-finished as time
// advances.
type Simulator struct {
	active []judge.NoteState
	done   []judge.NoteState

	// fifo holds, per sensor, the notes awaiting their first touch on that
	// sensor in start-time order (spec.md §3.6, §8's FIFO invariant). Only
	// notes implementing judge.FIFOSensor are enqueued; the rest (Slide,
	// FanSlide) are driven purely through the broadcast below.
	fifo map[judge.SensorID][]judge.FIFOSensor

	lastAddTs  float64
	hasLastAdd bool
	worst      judge.Timing
	hasWorst   bool
}

// NewSimulator returns an empty Simulator.
func NewSimulator() *Simulator {
	return &Simulator{fifo: make(map[judge.SensorID][]judge.FIFOSensor)}
}

// AddNote registers a note. Notes must be added in non-decreasing start-time
// order (spec.md §4.5 "add_note panics on out-of-order start_time").
func (s *Simulator) AddNote(n judge.NoteState) {
	if s.hasLastAdd && n.StartTime() < s.lastAddTs {
		panic("simulator: AddNote called with a start time earlier than a previously added note")
	}
	s.lastAddTs = n.StartTime()
	s.hasLastAdd = true
	s.active = append(s.active, n)
	if fs, ok := n.(judge.FIFOSensor); ok {
		sensor := fs.Sensor()
		s.fifo[sensor] = append(s.fifo[sensor], fs)
	}
}

// ChangeSensor records a sensor transition observed at time t (spec.md §4.5
// "change_sensor"). An ON transition first drains that sensor's FIFO (step
// 2 of the orchestration: each queued note gets one HeadOnSensor call; a
// TooFast result stops the drain, Consumed pops the note). Every other
// still-awaiting note is then offered the event directly for
// continuous-state tracking, except FIFOSensor notes whose head hasn't been
// judged yet: those are skipped and wait their turn in the FIFO.
func (s *Simulator) ChangeSensor(sensor judge.SensorID, on bool, t float64) {
	s.UpdateTooLate(t)
	if on {
		s.drainFIFO(sensor, t)
	}
	for _, n := range s.active {
		if n.Judged() {
			continue
		}
		if fs, ok := n.(judge.FIFOSensor); ok && !fs.HeadJudged() {
			continue
		}
		n.OnSensor(sensor, on, t)
	}
	s.collectJudged()
}

// drainFIFO offers one ON touch at time t to the head of sensor's FIFO,
// first popping heads that are stale (already judged or past their window).
// The first live head gets the touch: on SensorTooFast it stays at the front
// for the next touch; otherwise it consumes the touch, leaves the FIFO, and
// the drain stops, so one touch activates at most one queued note.
func (s *Simulator) drainFIFO(sensor judge.SensorID, t float64) {
	queue := s.fifo[sensor]
	for len(queue) > 0 {
		head := queue[0]
		if head.HeadJudged() {
			queue = queue[1:]
			continue
		}
		if hs, ok := head.(judge.NoteState); ok && t >= hs.EndTime() {
			hs.ForceFinish()
			queue = queue[1:]
			continue
		}
		outcome := head.HeadOnSensor(t)
		if outcome == judge.SensorTooFast {
			break
		}
		// SensorConsumed: the touch activated the note (Tap/Touch judge
		// immediately; Hold/TouchHold heads judge on activation too), so
		// it leaves the FIFO.
		queue = queue[1:]
		break
	}
	s.fifo[sensor] = queue
}

// UpdateTooLate force-finishes any note whose judging window has closed as
// of t, without requiring a matching sensor event (spec.md §4.5
// "update_too_late").
func (s *Simulator) UpdateTooLate(t float64) {
	for _, n := range s.active {
		if !n.Judged() && t >= n.EndTime() {
			n.ForceFinish()
		}
	}
	s.collectJudged()
}

func (s *Simulator) collectJudged() {
	remaining := s.active[:0]
	for _, n := range s.active {
		if n.Judged() {
			s.recordDone(n)
		} else {
			remaining = append(remaining, n)
		}
	}
	s.active = remaining
}

func (s *Simulator) recordDone(n judge.NoteState) {
	s.done = append(s.done, n)
	if !s.hasWorst {
		s.worst = n.Result()
		s.hasWorst = true
		return
	}
	s.worst = judge.Worse(s.worst, n.Result())
}

// Finish force-finishes every remaining note as if time had advanced to +∞
// (spec.md §4.5 "finish"), and asserts every note ends up judged.
func (s *Simulator) Finish() []judge.NoteState {
	for _, n := range s.active {
		n.ForceFinish()
	}
	s.collectJudged()
	if len(s.active) != 0 {
		panic("simulator: notes remain unjudged after Finish")
	}
	return s.done
}

// WorstTiming returns the worst verdict seen so far, by distance from
// Critical (spec.md §9).
func (s *Simulator) WorstTiming() (judge.Timing, bool) {
	return s.worst, s.hasWorst
}

// Results returns every judged note in completion order.
func (s *Simulator) Results() []judge.NoteState {
	return s.done
}
