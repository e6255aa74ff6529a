package judge

// FanSlideState judges a Fan segment as three parallel sub-slides (the
// center path plus the dest+1 and dest-1 offset paths, spec.md §4.4 "a Fan
// segment expands into three parallel sub-slides"). The combined verdict is
// the worst of the three, by distance from Critical (spec.md §9).
type FanSlideState struct {
	subs [3]*SlideState
}

func NewFanSlideState(paths [3][][]SensorID, scheduled, dur float64, tables Tables) *FanSlideState {
	f := &FanSlideState{}
	for i, p := range paths {
		f.subs[i] = NewSlideState(p, scheduled, dur, tables)
	}
	return f
}

func (f *FanSlideState) StartTime() float64 { return f.subs[0].StartTime() }
func (f *FanSlideState) EndTime() float64   { return f.subs[0].EndTime() }

func (f *FanSlideState) OnSensor(sensor SensorID, on bool, t float64) {
	for _, s := range f.subs {
		s.OnSensor(sensor, on, t)
	}
}

func (f *FanSlideState) Judged() bool {
	for _, s := range f.subs {
		if !s.Judged() {
			return false
		}
	}
	return true
}

func (f *FanSlideState) Result() Timing {
	result := f.subs[0].Result()
	for _, s := range f.subs[1:] {
		result = Worse(result, s.Result())
	}
	return result
}

func (f *FanSlideState) ForceFinish() {
	for _, s := range f.subs {
		s.ForceFinish()
	}
}
