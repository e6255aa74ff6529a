// Package materialize turns a parsed instruction stream into absolute-time
// note events (spec.md §4.2), walking a time cursor across Bpm, BeatDivisor,
// Rest, Notes, and EndMark instructions. Grounded on the teacher's
// internal/sequencer/sequencer.go time-accumulation loop, generalized from a
// single running offset to the richer per-kind cursor state spec.md §4.2
// describes.
package materialize

import (
	"github.com/oss-maidata/maicore-go/internal/insn"
	"github.com/oss-maidata/maicore-go/internal/position"
)

// Kind discriminates the materialized Note sum type.
type Kind int

const (
	KindBpm Kind = iota
	KindTap
	KindTouch
	KindHold
	KindTouchHold
	KindSlideTrack
)

func (k Kind) String() string {
	switch k {
	case KindBpm:
		return "Bpm"
	case KindTap:
		return "Tap"
	case KindTouch:
		return "Touch"
	case KindHold:
		return "Hold"
	case KindTouchHold:
		return "TouchHold"
	case KindSlideTrack:
		return "SlideTrack"
	default:
		return "Unknown"
	}
}

// Bpm records a tempo change at an absolute time, carried through to the
// materialized stream so downstream consumers (e.g. a renderer) don't need
// to re-walk the instruction list to know the tempo at any given ts.
type Bpm struct {
	Ts    float64
	Value float64
}

// Tap is a materialized button press, either a standalone note or the star
// that precedes a slide's tracks.
type Tap struct {
	Ts      float64
	Key     position.Key
	IsBreak bool
	IsEx    bool
	Shape   insn.TapShape
	IsEach  bool
}

// Touch is a materialized sensor press.
type Touch struct {
	Ts         float64
	Sensor     position.TouchSensor
	IsFirework bool
	IsEach     bool
}

// Hold is a materialized sustained button press.
type Hold struct {
	Ts      float64
	Key     position.Key
	IsBreak bool
	IsEx    bool
	Dur     float64
	IsEach  bool
}

// TouchHold is a materialized sustained sensor press.
type TouchHold struct {
	Ts         float64
	Sensor     position.TouchSensor
	IsFirework bool
	Dur        float64
	IsEach     bool
}

// SlideTrack is one materialized track of a slide: Ts is when the star
// appears, StartTs is when the track begins animating (Ts + stop time), Dur
// is the travel time from StartTs to completion (spec.md §4.2 "Slide stop
// time"; §8 invariant "ts <= start_ts <= start_ts + dur").
type SlideTrack struct {
	Ts       float64
	StartTs  float64
	Dur      float64
	StartKey position.Key
	Segments []insn.NormalizedSegment
	IsBreak  bool
	IsSudden bool
	// IsEach is set either by the enclosing bundle having more than one
	// note, or by this slide alone fanning out into more than one track
	// (spec.md §4.2, two independent rules).
	IsEach bool
}

// Note is one member of the materialized event stream. Exactly one typed
// field is populated, selected by Kind (mirrors insn.Note's tagged-union
// idiom, spec.md §3.4).
type Note struct {
	Kind       Kind
	Bpm        *Bpm
	Tap        *Tap
	Touch      *Touch
	Hold       *Hold
	TouchHold  *TouchHold
	SlideTrack *SlideTrack
}
