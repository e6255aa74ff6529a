package judge

// TapState judges a single instantaneous note against a single sensor: Tap,
// Touch, or an ExTap-modified Tap (spec.md §4.5 Tap/Touch state machine).
// Grounded on the teacher's single-shot event handling in
// internal/sequencer/sequencer.go, generalized from "apply once" to
// "judge once, keeping first qualifying hit".
type TapState struct {
	sensor    SensorID
	scheduled float64
	jt        JudgeType
	tables    Tables

	judged bool
	result Timing
}

func NewTapState(sensor SensorID, scheduled float64, jt JudgeType, tables Tables) *TapState {
	return &TapState{sensor: sensor, scheduled: scheduled, jt: jt, tables: tables}
}

func (s *TapState) StartTime() float64 { return s.scheduled }

// EndTime is the instant beyond which an unjudged note can only resolve to
// TooLate; the simulator uses it to know when it may safely force-finish.
func (s *TapState) EndTime() float64 {
	return s.scheduled + s.tables.Boundaries[s.jt][boundaryCount-1]
}

func (s *TapState) OnSensor(sensor SensorID, on bool, t float64) {
	if s.judged || !on || sensor != s.sensor {
		return
	}
	s.judgeAt(t)
}

// judgeAt is the FIFOSensor head-judge: a touch before the TooFast boundary
// leaves the note unjudged so a caller-side FIFO can keep waiting on it.
func (s *TapState) judgeAt(t float64) SensorOutcome {
	tooFastEdge := s.scheduled + s.tables.Boundaries[s.jt][0]
	if t < tooFastEdge {
		return SensorTooFast
	}
	s.result = s.tables.Judge(s.jt, t-s.scheduled)
	s.judged = true
	return SensorConsumed
}

func (s *TapState) Judged() bool   { return s.judged }
func (s *TapState) Result() Timing { return s.result }

func (s *TapState) ForceFinish() {
	if s.judged {
		return
	}
	s.result = TooLate
	s.judged = true
}

func (s *TapState) Sensor() SensorID { return s.sensor }
func (s *TapState) HeadJudged() bool { return s.judged }

func (s *TapState) HeadOnSensor(t float64) SensorOutcome {
	return s.judgeAt(t)
}
