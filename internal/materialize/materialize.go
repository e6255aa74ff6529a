package materialize

import (
	"github.com/oss-maidata/maicore-go/internal/diag"
	"github.com/oss-maidata/maicore-go/internal/insn"
	"github.com/oss-maidata/maicore-go/internal/slide"
	"github.com/oss-maidata/maicore-go/internal/span"
)

// cursor holds the running time-walk state (spec.md §4.2): the current BPM,
// the current beat duration derived from it, and the duration one note cell
// occupies under the current BeatDivisor.
type cursor struct {
	ts        float64
	bpm       float64
	beatDur   float64 // 60 / bpm; zero until the first Bpm instruction
	noteDur   float64 // duration of one cell under the current BeatDivisor
	hasBpm    bool
	hasDiv    bool
	divKind   insn.BeatDivisorKind
	divCount  uint32
	divSecond float64
}

func (c *cursor) recomputeNoteDur() {
	if !c.hasDiv {
		c.noteDur = 0
		return
	}
	switch c.divKind {
	case insn.BeatDivisorAbsoluteSeconds:
		c.noteDur = c.divSecond
	default:
		if !c.hasBpm {
			c.noteDur = 0
			return
		}
		// one whole note = 4 beats; a cell is 1/count of a whole note.
		c.noteDur = c.beatDur * 4 / float64(c.divCount)
	}
}

// Materialize walks a parsed instruction stream into absolute-time note
// events. Geometric slide-segment failures that only become checkable once
// absolute keys are known are recorded on state (spec.md §4.3's shape
// validation, deferred from parse time to materialization).
func Materialize(insns []span.Spanned[insn.RawInsn], state *diag.ParseState) []span.Spanned[Note] {
	var out []span.Spanned[Note]
	c := &cursor{}

	for _, si := range insns {
		in := si.Unwrap()
		sp := si.Span()

		switch in.Kind {
		case insn.KindBpm:
			c.bpm = in.Bpm
			c.hasBpm = true
			c.beatDur = 60.0 / c.bpm
			c.recomputeNoteDur()
			out = append(out, span.New(Note{Kind: KindBpm, Bpm: &Bpm{Ts: c.ts, Value: c.bpm}}, sp))

		case insn.KindBeatDivisor:
			c.hasDiv = true
			c.divKind = in.BeatDivisor.Kind
			c.divCount = in.BeatDivisor.Count
			c.divSecond = in.BeatDivisor.Seconds
			c.recomputeNoteDur()

		case insn.KindRest:
			c.ts += c.noteDur

		case insn.KindNotes:
			isEach := len(in.Notes) > 1
			for _, n := range in.Notes {
				out = append(out, materializeNote(c, n, isEach, sp, state)...)
			}
			c.ts += c.noteDur

		case insn.KindEndMark:
			return out
		}
	}
	return out
}

func materializeNote(c *cursor, n insn.Note, isEach bool, sp span.Span, state *diag.ParseState) []span.Spanned[Note] {
	switch n.Kind {
	case insn.NoteKindTap:
		t := n.Tap
		return []span.Spanned[Note]{span.New(Note{Kind: KindTap, Tap: &Tap{
			Ts: c.ts, Key: t.Key, IsBreak: t.Modifiers.IsBreak, IsEx: t.Modifiers.IsEx,
			Shape: t.Modifiers.Shape, IsEach: isEach,
		}}, sp)}

	case insn.NoteKindTouch:
		t := n.Touch
		return []span.Spanned[Note]{span.New(Note{Kind: KindTouch, Touch: &Touch{
			Ts: c.ts, Sensor: t.Sensor, IsFirework: t.Modifiers.IsFirework, IsEach: isEach,
		}}, sp)}

	case insn.NoteKindHold:
		h := n.Hold
		return []span.Spanned[Note]{span.New(Note{Kind: KindHold, Hold: &Hold{
			Ts: c.ts, Key: h.Key, IsBreak: h.Modifiers.IsBreak, IsEx: h.Modifiers.IsEx,
			Dur: h.Duration.ToSeconds(c.beatDur), IsEach: isEach,
		}}, sp)}

	case insn.NoteKindTouchHold:
		h := n.TouchHold
		return []span.Spanned[Note]{span.New(Note{Kind: KindTouchHold, TouchHold: &TouchHold{
			Ts: c.ts, Sensor: h.Sensor, IsFirework: h.Modifiers.IsFirework,
			Dur: h.Duration.ToSeconds(c.beatDur), IsEach: isEach,
		}}, sp)}

	case insn.NoteKindSlide:
		return materializeSlide(c, n.Slide, isEach, sp, state)
	}
	return nil
}

func materializeSlide(c *cursor, sl *insn.Slide, isEach bool, sp span.Span, state *diag.ParseState) []span.Spanned[Note] {
	var out []span.Spanned[Note]

	if !sl.HeadModifiers.NoStar {
		shape := sl.StarMods.Shape
		if shape == insn.ShapeRing {
			// No explicit '$'/'$$' on the head: a slide's star is a Star.
			shape = insn.ShapeStar
		}
		if sl.HeadModifiers.RingShape {
			shape = insn.ShapeRing
		}
		out = append(out, span.New(Note{Kind: KindTap, Tap: &Tap{
			Ts: c.ts, Key: sl.Start, IsBreak: sl.StarMods.IsBreak, IsEx: sl.StarMods.IsEx,
			Shape: shape, IsEach: isEach,
		}}, sp))
	}

	// A slide-each flag is set independently of the bundle-wide isEach: it
	// also fires when this single slide note fans out into more than one
	// track (spec.md §4.2), e.g. "1-5[4:1]*1-6[4:1]," in a bundle of one.
	trackIsEach := isEach || len(sl.Tracks) > 1

	for _, track := range sl.Tracks {
		segments := make([]insn.NormalizedSegment, 0, len(track.Segments))
		startKey := sl.Start
		ok := true
		for _, raw := range track.Segments {
			seg, segOk := slide.Normalize(startKey, raw)
			if !segOk {
				state.AddError(diag.KindInvalidSlideTrack, sp, "slide segment %q is not a valid shape from key %v", raw.Token, startKey)
				ok = false
				break
			}
			segments = append(segments, seg)
			startKey = seg.Destination
		}
		if !ok {
			continue
		}

		stopSeconds := resolveStopTime(track.Duration.StopTime, c.beatDur)
		travelSeconds := track.Duration.Travel.ToSeconds(c.beatDur)

		out = append(out, span.New(Note{Kind: KindSlideTrack, SlideTrack: &SlideTrack{
			Ts:       c.ts,
			StartTs:  c.ts + stopSeconds,
			Dur:      travelSeconds,
			StartKey: sl.Start,
			Segments: segments,
			IsBreak:  track.Modifier.IsBreak,
			IsSudden: track.Modifier.IsSudden,
			IsEach:   trackIsEach,
		}}, sp))
	}

	return out
}

// resolveStopTime implements spec.md §4.2 "Slide stop time" preference
// order: explicit bpm-derived stop time, explicit seconds-derived stop time,
// else the current beat duration.
func resolveStopTime(st insn.StopTime, beatDur float64) float64 {
	switch st.Kind {
	case insn.StopTimeBpm:
		return 60.0 / st.Bpm
	case insn.StopTimeSeconds:
		return st.Seconds
	default:
		return beatDur
	}
}
