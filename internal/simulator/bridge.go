// Package simulator drives judge.NoteState machines over a stream of
// materialized notes and sensor events (spec.md §4.5 "Orchestration").
// Grounded on the teacher's internal/sequencer/sequencer.go event-loop
// shape: an ordered add phase followed by incremental event application,
// generalized from "apply one event" to "fan an event out to every note
// still awaiting judgment".
package simulator

import (
	"github.com/oss-maidata/maicore-go/internal/insn"
	"github.com/oss-maidata/maicore-go/internal/judge"
	"github.com/oss-maidata/maicore-go/internal/materialize"
	"github.com/oss-maidata/maicore-go/internal/position"
	"github.com/oss-maidata/maicore-go/internal/slidepath"
)

// KeySensorID converts a button key into the judge package's sensor
// identity.
func KeySensorID(k position.Key) judge.SensorID { return judge.KeySensor(int(k)) }

// TouchSensorIDOf converts a touch sensor into the judge package's sensor
// identity.
func TouchSensorIDOf(s position.TouchSensor) judge.SensorID {
	return judge.TouchSensorID(string(s.Group), s.Index)
}

func hitAreaToStep(ha slidepath.HitArea) []judge.SensorID {
	out := make([]judge.SensorID, len(ha.Sensors))
	for i, s := range ha.Sensors {
		out[i] = TouchSensorIDOf(s)
	}
	return out
}

func pathToSteps(path []slidepath.HitArea) [][]judge.SensorID {
	out := make([][]judge.SensorID, len(path))
	for i, ha := range path {
		out[i] = hitAreaToStep(ha)
	}
	return out
}

func wrapKey(n int) position.Key {
	return position.Key(((n % 8) + 8) % 8)
}

// BuildNoteState constructs the judge state machine for one materialized
// note (spec.md §4.5: each note kind maps to its own state machine).
func BuildNoteState(n materialize.Note, tables judge.Tables) judge.NoteState {
	switch n.Kind {
	case materialize.KindTap:
		t := n.Tap
		jt := judge.JudgeTap
		if t.IsEx {
			jt = judge.JudgeExTap
		}
		return judge.NewTapState(KeySensorID(t.Key), t.Ts, jt, tables)

	case materialize.KindTouch:
		t := n.Touch
		return judge.NewTapState(TouchSensorIDOf(t.Sensor), t.Ts, judge.JudgeTouch, tables)

	case materialize.KindHold:
		h := n.Hold
		jt := judge.JudgeTap
		if h.IsEx {
			jt = judge.JudgeExTap
		}
		return judge.NewHoldState(KeySensorID(h.Key), h.Ts, h.Dur, jt, tables, tables.HoldTailSeconds)

	case materialize.KindTouchHold:
		h := n.TouchHold
		return judge.NewHoldState(TouchSensorIDOf(h.Sensor), h.Ts, h.Dur, judge.JudgeTouch, tables, tables.TouchHoldTailSeconds)

	case materialize.KindSlideTrack:
		return buildSlideState(n.SlideTrack, tables)

	default:
		return nil
	}
}

// buildSlideState concatenates each segment's static hit-area path into one
// walk (spec.md §4.4). A single Fan segment expands into three parallel
// sub-slides rather than one path (spec.md §4.4); a Fan appearing mid-chain
// with other segments is out of scope (see DESIGN.md).
func buildSlideState(st *materialize.SlideTrack, tables judge.Tables) judge.NoteState {
	if len(st.Segments) == 1 && st.Segments[0].Shape == insn.ShapeFan {
		seg := st.Segments[0]
		center, _ := slidepath.Lookup(insn.ShapeFan, seg.StartKey, seg.Destination)
		plus := slidepath.DirectPath(seg.StartKey, wrapKey(int(seg.Destination)+1))
		minus := slidepath.DirectPath(seg.StartKey, wrapKey(int(seg.Destination)-1))
		paths := [3][][]judge.SensorID{pathToSteps(center), pathToSteps(plus), pathToSteps(minus)}
		return judge.NewFanSlideState(paths, st.StartTs, st.Dur, tables)
	}

	var hitPaths [][]slidepath.HitArea
	for _, seg := range st.Segments {
		p, ok := slidepath.Lookup(seg.Shape, seg.StartKey, seg.Destination)
		if !ok {
			p = slidepath.DirectPath(seg.StartKey, seg.Destination)
		}
		hitPaths = append(hitPaths, p)
	}
	full := slidepath.Concatenate(hitPaths)

	head := st.Segments[0]
	headIsThunder := head.Shape == insn.ShapeThunderL || head.Shape == insn.ShapeThunderR
	headDistance := ((int(head.Destination)+8-int(head.StartKey))%8 + 8) % 8
	checkSensor1 := headIsThunder
	checkSensor3 := headIsThunder && headDistance == 4

	return judge.NewSlideStateWithThunder(pathToSteps(full), st.StartTs, st.Dur, tables, checkSensor1, checkSensor3)
}
