package materialize

import (
	"testing"

	"github.com/oss-maidata/maicore-go/internal/diag"
	"github.com/oss-maidata/maicore-go/internal/insn"
	"github.com/oss-maidata/maicore-go/internal/position"
	"github.com/oss-maidata/maicore-go/internal/span"
)

func spanned(in insn.RawInsn) span.Spanned[insn.RawInsn] {
	return span.New(in, span.Span{})
}

func tapNote(key int) insn.Note {
	return insn.Note{Kind: insn.NoteKindTap, Tap: &insn.Tap{Key: position.Key(key)}}
}

// (60){4}1, should produce a Bpm event and a single Tap at t=0.
func TestMaterializeBpmThenTapAtZero(t *testing.T) {
	state := &diag.ParseState{}
	insns := []span.Spanned[insn.RawInsn]{
		spanned(insn.NewBpm(60)),
		spanned(insn.NewBeatDivisor(insn.BeatDivisor{Kind: insn.BeatDivisorCount, Count: 4})),
		spanned(insn.NewNotes([]insn.Note{tapNote(1)})),
	}
	notes := Materialize(insns, state)
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2 (Bpm, Tap)", len(notes))
	}
	if notes[0].Unwrap().Kind != KindBpm {
		t.Fatalf("notes[0].Kind = %v, want Bpm", notes[0].Unwrap().Kind)
	}
	tap := notes[1].Unwrap()
	if tap.Kind != KindTap || tap.Tap.Ts != 0 {
		t.Fatalf("notes[1] = %+v, want Tap at ts=0", tap)
	}
}

// (120){4}1,,,, should emit the Bpm marker and the one Tap; trailing rests
// just advance the cursor with nothing to materialize.
func TestMaterializeRestsProduceNoNotes(t *testing.T) {
	state := &diag.ParseState{}
	insns := []span.Spanned[insn.RawInsn]{
		spanned(insn.NewBpm(120)),
		spanned(insn.NewBeatDivisor(insn.BeatDivisor{Kind: insn.BeatDivisorCount, Count: 4})),
		spanned(insn.NewNotes([]insn.Note{tapNote(1)})),
		spanned(insn.NewRest()),
		spanned(insn.NewRest()),
		spanned(insn.NewRest()),
	}
	notes := Materialize(insns, state)
	tapCount := 0
	for _, n := range notes {
		if n.Unwrap().Kind == KindTap {
			tapCount++
		}
	}
	if tapCount != 1 {
		t.Fatalf("got %d taps, want exactly 1", tapCount)
	}
}

func TestMaterializeEndMarkTruncatesSilently(t *testing.T) {
	state := &diag.ParseState{}
	insns := []span.Spanned[insn.RawInsn]{
		spanned(insn.NewBpm(60)),
		spanned(insn.NewBeatDivisor(insn.BeatDivisor{Kind: insn.BeatDivisorCount, Count: 4})),
		spanned(insn.NewEndMark()),
		spanned(insn.NewNotes([]insn.Note{tapNote(1)})),
	}
	notes := Materialize(insns, state)
	for _, n := range notes {
		if n.Unwrap().Kind == KindTap {
			t.Fatalf("notes after EndMark should be dropped silently, found a Tap")
		}
	}
	if state.HasErrors() || state.HasWarnings() {
		t.Fatalf("EndMark truncation should not produce diagnostics")
	}
}

// 1/2/3, should materialize three simultaneous taps, each flagged is_each.
func TestMaterializeBundleSetsIsEach(t *testing.T) {
	state := &diag.ParseState{}
	insns := []span.Spanned[insn.RawInsn]{
		spanned(insn.NewBpm(60)),
		spanned(insn.NewBeatDivisor(insn.BeatDivisor{Kind: insn.BeatDivisorCount, Count: 4})),
		spanned(insn.NewNotes([]insn.Note{tapNote(1), tapNote(2), tapNote(3)})),
	}
	notes := Materialize(insns, state)
	if len(notes) != 4 { // Bpm + 3 taps
		t.Fatalf("got %d notes, want 4", len(notes))
	}
	for _, n := range notes[1:] {
		tap := n.Unwrap()
		if !tap.Tap.IsEach {
			t.Fatalf("bundled tap %+v should have IsEach set", tap.Tap)
		}
		if tap.Tap.Ts != 0 {
			t.Fatalf("bundled taps should be simultaneous, got ts=%v", tap.Tap.Ts)
		}
	}
}

func TestMaterializeSingleNoteIsNotEach(t *testing.T) {
	state := &diag.ParseState{}
	insns := []span.Spanned[insn.RawInsn]{
		spanned(insn.NewBpm(60)),
		spanned(insn.NewBeatDivisor(insn.BeatDivisor{Kind: insn.BeatDivisorCount, Count: 4})),
		spanned(insn.NewNotes([]insn.Note{tapNote(1)})),
	}
	notes := Materialize(insns, state)
	tap := notes[1].Unwrap()
	if tap.Tap.IsEach {
		t.Fatalf("a lone note in a bundle should not be flagged IsEach")
	}
}

// (60){8}1h[4:1] should produce a Hold with a specific positive duration.
func TestMaterializeHoldDuration(t *testing.T) {
	state := &diag.ParseState{}
	dur, err := position.NewNumBeats(nil, 4, 1)
	if err != nil {
		t.Fatalf("NewNumBeats: %v", err)
	}
	insns := []span.Spanned[insn.RawInsn]{
		spanned(insn.NewBpm(60)),
		spanned(insn.NewBeatDivisor(insn.BeatDivisor{Kind: insn.BeatDivisorCount, Count: 8})),
		spanned(insn.NewNotes([]insn.Note{{
			Kind: insn.NoteKindHold,
			Hold: &insn.Hold{Key: position.Key(1), Duration: dur},
		}})),
	}
	notes := Materialize(insns, state)
	hold := notes[1].Unwrap()
	if hold.Kind != KindHold {
		t.Fatalf("expected a Hold note, got %v", hold.Kind)
	}
	if hold.Hold.Dur <= 0 {
		t.Fatalf("Hold.Dur = %v, want > 0", hold.Hold.Dur)
	}
	// one beat at 60bpm is 1s; divisor 4 num 1 = a whole-note quarter = 1s.
	if hold.Hold.Dur != 1.0 {
		t.Fatalf("Hold.Dur = %v, want 1.0", hold.Hold.Dur)
	}
}

func TestMaterializeZeroCellDurationBeforeFirstBpmIsNoOp(t *testing.T) {
	state := &diag.ParseState{}
	insns := []span.Spanned[insn.RawInsn]{
		spanned(insn.NewNotes([]insn.Note{tapNote(1)})),
		spanned(insn.NewNotes([]insn.Note{tapNote(2)})),
	}
	notes := Materialize(insns, state)
	for _, n := range notes {
		if n.Unwrap().Tap.Ts != 0 {
			t.Fatalf("notes before any Bpm/BeatDivisor should stay at ts=0, got %v", n.Unwrap().Tap.Ts)
		}
	}
}

func TestMaterializeSlideProducesStarAndTrack(t *testing.T) {
	state := &diag.ParseState{}
	travel, _ := position.NewNumBeats(nil, 4, 1)
	sl := &insn.Slide{
		Start: position.Key(0),
		Tracks: []insn.SlideTrack{{
			Segments: []insn.RawSegment{{Token: "-", Destination: position.Key(4)}},
			Duration: insn.SlideDuration{Travel: travel},
		}},
	}
	insns := []span.Spanned[insn.RawInsn]{
		spanned(insn.NewBpm(60)),
		spanned(insn.NewBeatDivisor(insn.BeatDivisor{Kind: insn.BeatDivisorCount, Count: 4})),
		spanned(insn.NewNotes([]insn.Note{{Kind: insn.NoteKindSlide, Slide: sl}})),
	}
	notes := Materialize(insns, state)
	if len(notes) != 3 { // Bpm, star Tap, SlideTrack
		t.Fatalf("got %d notes, want 3", len(notes))
	}
	star := notes[1].Unwrap()
	if star.Kind != KindTap {
		t.Fatalf("expected a star Tap, got %v", star.Kind)
	}
	track := notes[2].Unwrap()
	if track.Kind != KindSlideTrack {
		t.Fatalf("expected a SlideTrack, got %v", track.Kind)
	}
	st := track.SlideTrack
	if !(st.Ts <= st.StartTs && st.StartTs <= st.StartTs+st.Dur) {
		t.Fatalf("slide track invariant violated: ts=%v start_ts=%v dur=%v", st.Ts, st.StartTs, st.Dur)
	}
	if state.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", state.Errors)
	}
}

// 1-5[4:1]*1-6[4:1], is a single slide note (bundle of one) fanning out into
// two tracks; both tracks must be flagged IsEach despite the bundle itself
// having only one member (spec.md §4.2: the slide-each rule is independent
// of the bundle-size rule).
func TestMaterializeMultiTrackSlideSetsIsEachEvenInSingletonBundle(t *testing.T) {
	state := &diag.ParseState{}
	travel, _ := position.NewNumBeats(nil, 4, 1)
	sl := &insn.Slide{
		Start: position.Key(0),
		Tracks: []insn.SlideTrack{
			{
				Segments: []insn.RawSegment{{Token: "-", Destination: position.Key(4)}},
				Duration: insn.SlideDuration{Travel: travel},
			},
			{
				Segments: []insn.RawSegment{{Token: "-", Destination: position.Key(5)}},
				Duration: insn.SlideDuration{Travel: travel},
			},
		},
	}
	insns := []span.Spanned[insn.RawInsn]{
		spanned(insn.NewBpm(60)),
		spanned(insn.NewBeatDivisor(insn.BeatDivisor{Kind: insn.BeatDivisorCount, Count: 4})),
		spanned(insn.NewNotes([]insn.Note{{Kind: insn.NoteKindSlide, Slide: sl}})),
	}
	notes := Materialize(insns, state)
	trackCount := 0
	for _, n := range notes {
		note := n.Unwrap()
		if note.Kind != KindSlideTrack {
			continue
		}
		trackCount++
		if !note.SlideTrack.IsEach {
			t.Fatalf("a track from a multi-track slide should be IsEach even in a bundle of one, got %+v", note.SlideTrack)
		}
	}
	if trackCount != 2 {
		t.Fatalf("got %d slide tracks, want 2", trackCount)
	}
}

func TestMaterializeInvalidSlideSegmentRecordsDiagnostic(t *testing.T) {
	state := &diag.ParseState{}
	travel, _ := position.NewNumBeats(nil, 4, 1)
	sl := &insn.Slide{
		Start: position.Key(0),
		Tracks: []insn.SlideTrack{{
			// '-' (Straight) requires clockwise distance in [2,6]; dist(0,1)=1 is invalid.
			Segments: []insn.RawSegment{{Token: "-", Destination: position.Key(1)}},
			Duration: insn.SlideDuration{Travel: travel},
		}},
	}
	insns := []span.Spanned[insn.RawInsn]{
		spanned(insn.NewBpm(60)),
		spanned(insn.NewBeatDivisor(insn.BeatDivisor{Kind: insn.BeatDivisorCount, Count: 4})),
		spanned(insn.NewNotes([]insn.Note{{Kind: insn.NoteKindSlide, Slide: sl}})),
	}
	notes := Materialize(insns, state)
	for _, n := range notes {
		if n.Unwrap().Kind == KindSlideTrack {
			t.Fatalf("invalid segment should not produce a SlideTrack")
		}
	}
	if !state.HasErrors() {
		t.Fatalf("expected a diagnostic for the invalid slide segment")
	}
}
