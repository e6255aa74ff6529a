package judge

// SlideState judges a slide track by walking its static hit-area path in
// order (spec.md §4.4, §4.5). A path position advances in two phases: first
// when the current area's sensor becomes ON, then when that same sensor
// becomes OFF — except the last area, which advances on ON alone. The
// waitingOff field below tracks which phase is pending. ThunderL/R paths
// exempt their first and third positions from the "next sensor also
// satisfies this step" lookahead (checkSensor1/checkSensor3), grounded on
// original_source/src/judge/note/slide.rs's judge_check_sensor_1/_3. The
// path is expressed as SensorID groups rather than position.TouchSensor to
// keep this package independent of the geometry packages; callers (the
// materializer/simulator) translate slidepath.HitArea into [][]SensorID.
type SlideState struct {
	path      [][]SensorID
	scheduled float64 // start_ts
	dur       float64 // travel duration; ends at scheduled+dur
	tables    Tables

	checkSensor1 bool
	checkSensor3 bool

	sensorOn map[SensorID]bool

	idx        int
	waitingOff bool
	subSensor  SensorID
	hasSub     bool

	judged bool
	result Timing
}

func NewSlideState(path [][]SensorID, scheduled, dur float64, tables Tables) *SlideState {
	return NewSlideStateWithThunder(path, scheduled, dur, tables, false, false)
}

// NewSlideStateWithThunder is NewSlideState plus the ThunderL/R
// first/third-position skip exceptions, set by the caller from the head
// segment's shape (original_source/src/judge/note/slide.rs:
// judge_check_sensor_1 = head is ThunderL/R; judge_check_sensor_3 = that,
// and the head's clockwise destination distance is 4).
func NewSlideStateWithThunder(path [][]SensorID, scheduled, dur float64, tables Tables, checkSensor1, checkSensor3 bool) *SlideState {
	return &SlideState{
		path:         path,
		scheduled:    scheduled,
		dur:          dur,
		tables:       tables,
		checkSensor1: checkSensor1,
		checkSensor3: checkSensor3,
		sensorOn:     make(map[SensorID]bool),
	}
}

func (s *SlideState) StartTime() float64 { return s.scheduled }
func (s *SlideState) EndTime() float64 {
	return s.scheduled + s.dur + s.tables.Boundaries[JudgeSlide][boundaryCount-1]
}

func (s *SlideState) relevant(sensor SensorID) bool {
	for _, step := range s.path {
		for _, id := range step {
			if id == sensor {
				return true
			}
		}
	}
	return false
}

// checkStep tries to advance past path[index] given whether it's currently
// waiting for ON (waitingOff=false) or OFF (waitingOff=true). It reports
// whether it advanced anything.
func (s *SlideState) checkStep(index int, waitingOff bool) bool {
	if index >= len(s.path) {
		return false
	}
	if !waitingOff {
		for _, sensor := range s.path[index] {
			if s.sensorOn[sensor] {
				s.idx = index
				s.waitingOff = true
				s.subSensor = sensor
				s.hasSub = true
				if s.idx == len(s.path)-1 {
					// last area advances on ON only
					s.idx = len(s.path)
				}
				return true
			}
		}
		return false
	}
	if s.hasSub && !s.sensorOn[s.subSensor] {
		s.idx++
		s.waitingOff = false
		s.hasSub = false
		return true
	}
	return false
}

// isNextSensorCheck reports whether, after failing to advance at the
// current index, the walk should also try index+1 this same event (the
// Thunder first/third-position exceptions suppress this lookahead).
func (s *SlideState) isNextSensorCheck() bool {
	if s.waitingOff {
		return true
	}
	if s.checkSensor1 && s.idx == 1 {
		return false
	}
	if s.checkSensor3 && s.idx == 3 {
		return false
	}
	return len(s.path) > 3 || s.idx+1 != len(s.path)-1
}

func (s *SlideState) OnSensor(sensor SensorID, on bool, t float64) {
	if s.judged || !s.relevant(sensor) {
		return
	}
	s.sensorOn[sensor] = on
	for {
		changed := s.checkStep(s.idx, s.waitingOff)
		if !changed && s.isNextSensorCheck() {
			changed = s.checkStep(s.idx+1, false)
		}
		if !changed || s.idx == len(s.path) {
			break
		}
	}
	if s.idx == len(s.path) {
		result := s.tables.Judge(JudgeSlide, t-(s.scheduled+s.dur))
		if result == TooFast {
			result = FastGood
		}
		s.result = result
		s.judged = true
	}
}

func (s *SlideState) Judged() bool   { return s.judged }
func (s *SlideState) Result() Timing { return s.result }

func (s *SlideState) ForceFinish() {
	if s.judged {
		return
	}
	if s.idx+1 == len(s.path) {
		s.result = LateGood
	} else {
		s.result = TooLate
	}
	s.judged = true
}
