package insn

import "github.com/oss-maidata/maicore-go/internal/position"

// SlideShape is one of the thirteen canonical normalized slide shapes
// (spec.md §4.3). Raw syntax is normalized into one of these before a
// SlideSegment is constructed.
type SlideShape int

const (
	ShapeStraight SlideShape = iota
	ShapeCircleL
	ShapeCircleR
	ShapeCurveL
	ShapeCurveR
	ShapeThunderL
	ShapeThunderR
	ShapeCorner
	ShapeBendL
	ShapeBendR
	ShapeSkipL
	ShapeSkipR
	ShapeFan
)

func (s SlideShape) String() string {
	switch s {
	case ShapeStraight:
		return "Straight"
	case ShapeCircleL:
		return "CircleL"
	case ShapeCircleR:
		return "CircleR"
	case ShapeCurveL:
		return "CurveL"
	case ShapeCurveR:
		return "CurveR"
	case ShapeThunderL:
		return "ThunderL"
	case ShapeThunderR:
		return "ThunderR"
	case ShapeCorner:
		return "Corner"
	case ShapeBendL:
		return "BendL"
	case ShapeBendR:
		return "BendR"
	case ShapeSkipL:
		return "SkipL"
	case ShapeSkipR:
		return "SkipR"
	case ShapeFan:
		return "Fan"
	default:
		return "Unknown"
	}
}

// chirality swap table used by Transformer-driven flips (spec.md §4.3
// "Transform"): Straight, Corner, Fan are flip-invariant.
var shapeFlip = map[SlideShape]SlideShape{
	ShapeStraight: ShapeStraight,
	ShapeCircleL:  ShapeCircleR,
	ShapeCircleR:  ShapeCircleL,
	ShapeCurveL:   ShapeCurveR,
	ShapeCurveR:   ShapeCurveL,
	ShapeThunderL: ShapeThunderR,
	ShapeThunderR: ShapeThunderL,
	ShapeCorner:   ShapeCorner,
	ShapeBendL:    ShapeBendR,
	ShapeBendR:    ShapeBendL,
	ShapeSkipL:    ShapeSkipR,
	ShapeSkipR:    ShapeSkipL,
	ShapeFan:      ShapeFan,
}

// Flipped returns the mirrored shape.
func (s SlideShape) Flipped() SlideShape { return shapeFlip[s] }

// NormalizedSegment is a validated slide segment: a canonical shape plus the
// (start, destination) keys it was normalized against (spec.md §3.3).
type NormalizedSegment struct {
	Shape       SlideShape
	StartKey    position.Key
	Destination position.Key
}

// Transform applies t to the segment's endpoints, swapping chirality when t
// flips (spec.md §4.3 "Transform").
func (s NormalizedSegment) Transform(t position.Transformer) NormalizedSegment {
	shape := s.Shape
	if t.Flip {
		shape = shape.Flipped()
	}
	return NormalizedSegment{
		Shape:       shape,
		StartKey:    t.ApplyKey(s.StartKey),
		Destination: t.ApplyKey(s.Destination),
	}
}

// RawSegment is a not-yet-normalized segment as it appeared in source:
// token identifies which grammar production matched ('-', '^', '<', '>',
// 'v', 'p', 'q', 's', 'z', "pp", "qq", 'V', 'w'); Interim is only set for 'V'.
type RawSegment struct {
	Token       string
	Interim     *position.Key
	Destination position.Key
}

// StopTimeKind distinguishes the two explicit slide stop-time forms from
// "fall back to current beat duration" (spec.md §4.2 "Slide stop time").
type StopTimeKind int

const (
	StopTimeDefault StopTimeKind = iota
	StopTimeBpm                  // "[bpm#seconds]": stop time = 60/bpm
	StopTimeSeconds               // "[seconds##...]": stop time given directly
)

// StopTime captures how long after the star appears the slide track begins
// its animation (original_source slide.rs SlideStopTimeSpec).
type StopTime struct {
	Kind    StopTimeKind
	Bpm     float64 // valid when Kind == StopTimeBpm
	Seconds float64 // valid when Kind == StopTimeSeconds
}

// SlideDuration is a track's total travel time, plus an optional explicit
// stop-time override (original_source slide.rs SlideDuration/
// SlideStopTimeSpec, grounding the two-part grammar production
// `slide_dur := dur | '[' bpm '#' seconds ']' | '[' seconds '##' beats ']'
// | '[' seconds '##' bpm '#' beats ']'`).
type SlideDuration struct {
	StopTime StopTime
	Travel   position.Duration
}

// SlideTrackModifier carries the track-level flags (spec.md §6): a 'b'
// trailing a track sets IsBreak. The parser never sets IsSudden; a '!' at
// the slide head is consumed without being recorded anywhere.
type SlideTrackModifier struct {
	IsBreak  bool
	IsSudden bool
}

// SlideTrack is one `*`-separated track of a slide instruction: a sequence
// of raw (pre-normalization) segments, its duration, and its modifiers.
type SlideTrack struct {
	Segments []RawSegment
	Duration SlideDuration
	Modifier SlideTrackModifier
}

// SlideHeadModifier carries modifiers attached directly to the slide's start
// key, before any track: RingShape records '@'. The ordinary tap
// shape/break/ex modifiers on the head are kept in Slide.StarMods. '?' and
// '!' at the head are consumed and discarded, so neither an invalid star
// shape nor a sudden slide is recorded, and the parser never sets NoStar.
type SlideHeadModifier struct {
	NoStar    bool // star tap suppressed
	RingShape bool
}
