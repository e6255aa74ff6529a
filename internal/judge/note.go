package judge

// NoteState is the common interface every note-kind state machine
// implements (spec.md §4.5 "per-note-type state machines"). The simulator
// drives instances purely through sensor transitions and time advances; no
// NoteState ever reads a clock itself.
type NoteState interface {
	// StartTime is the note's scheduled start (materialized ts/start_ts).
	StartTime() float64
	// EndTime is the last instant the note can still be judged: the
	// scheduled time plus its table's LateGood bound for Tap/Touch, or the
	// tail for Hold/TouchHold/Slide.
	EndTime() float64
	// OnSensor records a sensor transition (on=true for activation, false
	// for release) observed at time t. Implementations ignore sensors that
	// play no role in their own path.
	OnSensor(sensor SensorID, on bool, t float64)
	// Judged reports whether this note has produced its final verdict.
	Judged() bool
	// Result returns the final verdict. Valid only once Judged() is true.
	Result() Timing
	// ForceFinish judges the note against whatever partial progress it has
	// recorded, as if time had advanced to +∞ (spec.md §4.5 "finish").
	ForceFinish()
}

// SensorID names a single physical sensor (8 keys ∪ 33 touch sensors) in a
// form state machines can compare without importing the position package's
// richer types, keeping this package's public surface small.
type SensorID struct {
	IsKey bool
	Key   int    // valid when IsKey
	Group string // valid when !IsKey
	Index int    // valid when !IsKey
}

func KeySensor(k int) SensorID { return SensorID{IsKey: true, Key: k} }

func TouchSensorID(group string, index int) SensorID {
	return SensorID{IsKey: false, Group: group, Index: index}
}

// SensorOutcome is the result of offering one ON touch to a FIFOSensor
// note's head judgment (spec.md §4.5 orchestration step 2: "a TooFast
// result stops the drain ... Consumed pops the note").
type SensorOutcome int

const (
	SensorTooFast SensorOutcome = iota
	SensorConsumed
)

// FIFOSensor is implemented by note states that own a single sensor and
// must be judged in strict per-sensor FIFO order on first touch (Tap,
// Touch, Hold, TouchHold — spec.md §3.6 "a per-sensor FIFO of indices ...
// for notes awaiting their first sensor touch"). Slide and FanSlide don't
// implement it: they have no single owning sensor and are driven entirely
// through OnSensor/ForceFinish.
type FIFOSensor interface {
	// Sensor is the one sensor this note's head judgment waits on.
	Sensor() SensorID
	// HeadJudged reports whether the head verdict has already been taken,
	// so the simulator knows it may stop routing this note through the
	// FIFO and instead broadcast sensor events to it directly (continuous
	// body tracking for Hold/TouchHold).
	HeadJudged() bool
	// HeadOnSensor offers one ON touch at time t to the FIFO head. It
	// never mutates state on SensorTooFast.
	HeadOnSensor(t float64) SensorOutcome
}
