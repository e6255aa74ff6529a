package judge

// HoldState judges a sustained note (Hold on a key, or TouchHold on a
// sensor): a head verdict from the initial activation, downgraded at the
// tail by how much of the hold window the sensor was actually held (spec.md
// §4.5 Hold/TouchHold state machine, "5-bucket release-percentage table").
type HoldState struct {
	sensor      SensorID
	scheduled   float64
	dur         float64
	jt          JudgeType
	tables      Tables
	tailSeconds float64

	headJudged bool
	headResult Timing

	sensorOn   bool
	onSince    float64
	totalHeld  float64

	finished bool
	result   Timing
}

func NewHoldState(sensor SensorID, scheduled, dur float64, jt JudgeType, tables Tables, tailSeconds float64) *HoldState {
	return &HoldState{sensor: sensor, scheduled: scheduled, dur: dur, jt: jt, tables: tables, tailSeconds: tailSeconds}
}

func (s *HoldState) StartTime() float64 { return s.scheduled }
func (s *HoldState) EndTime() float64   { return s.scheduled + s.dur + s.tailSeconds }

func (s *HoldState) clamp(t float64) float64 {
	end := s.scheduled + s.dur
	if t < s.scheduled {
		return s.scheduled
	}
	if t > end {
		return end
	}
	return t
}

func (s *HoldState) headTooFastEdge() float64 {
	return s.scheduled + s.tables.Boundaries[s.jt][0]
}

func (s *HoldState) OnSensor(sensor SensorID, on bool, t float64) {
	if s.finished || sensor != s.sensor {
		return
	}
	if !s.headJudged {
		if !on {
			return
		}
		s.headResult = s.tables.Judge(s.jt, t-s.scheduled)
		s.headJudged = true
		s.sensorOn = true
		s.onSince = s.clamp(t)
		return
	}
	if on {
		if !s.sensorOn {
			s.sensorOn = true
			s.onSince = s.clamp(t)
		}
		return
	}
	if s.sensorOn {
		s.totalHeld += s.clamp(t) - s.onSince
		s.sensorOn = false
	}
}

func (s *HoldState) Judged() bool   { return s.finished }
func (s *HoldState) Result() Timing { return s.result }

func (s *HoldState) ForceFinish() {
	if s.finished {
		return
	}
	if !s.headJudged {
		s.headResult = TooLate
		s.headJudged = true
	}
	if s.sensorOn {
		s.totalHeld += s.clamp(s.scheduled + s.dur) - s.onSince
		s.sensorOn = false
	}
	pct := 100.0
	if s.dur > 0 {
		pct = s.totalHeld / s.dur * 100
	}
	s.result = s.tables.DowngradeForRelease(s.headResult, pct)
	s.finished = true
}

func (s *HoldState) Sensor() SensorID { return s.sensor }
func (s *HoldState) HeadJudged() bool { return s.headJudged }

// HeadOnSensor is the FIFOSensor entry point for the initial activation:
// a touch before the TooFast boundary leaves the head unjudged so the
// simulator's per-sensor FIFO keeps waiting on it instead of consuming it.
func (s *HoldState) HeadOnSensor(t float64) SensorOutcome {
	if s.finished {
		return SensorConsumed
	}
	if !s.headJudged && t < s.headTooFastEdge() {
		return SensorTooFast
	}
	s.OnSensor(s.sensor, true, t)
	return SensorConsumed
}
