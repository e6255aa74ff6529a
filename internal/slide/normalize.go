// Package slide normalizes raw slide-segment syntax into the thirteen
// canonical shapes and exposes the dihedral transform over them (spec.md
// §4.3). Grounded on original_source's slide.rs SlideSegment variants for
// the shape vocabulary and on spec.md's own normalization table for the
// geometric constraints.
package slide

import (
	"github.com/oss-maidata/maicore-go/internal/insn"
	"github.com/oss-maidata/maicore-go/internal/position"
)

// Normalize maps a raw segment's token onto one of the thirteen canonical
// shapes, validating the geometric constraint in spec.md §4.3's table.
// ok is false on any constraint violation; the caller records an
// InvalidSlideTrack diagnostic and drops the track.
func Normalize(start position.Key, raw insn.RawSegment) (insn.NormalizedSegment, bool) {
	dist := start.CWDistance(raw.Destination)
	switch raw.Token {
	case "-":
		if dist < 2 || dist > 6 {
			return insn.NormalizedSegment{}, false
		}
		return seg(insn.ShapeStraight, start, raw.Destination), true
	case "^":
		switch {
		case dist >= 1 && dist <= 3:
			return seg(insn.ShapeCircleR, start, raw.Destination), true
		case dist >= 5 && dist <= 7:
			return seg(insn.ShapeCircleL, start, raw.Destination), true
		default:
			return insn.NormalizedSegment{}, false
		}
	case "<":
		// Playfield-half direction disambiguation is an Open Question
		// (spec.md §4.3); this implementation fixes '<' to CircleL and '>'
		// to CircleR regardless of half, per DESIGN.md's decision.
		return seg(insn.ShapeCircleL, start, raw.Destination), true
	case ">":
		return seg(insn.ShapeCircleR, start, raw.Destination), true
	case "p":
		return seg(insn.ShapeCurveL, start, raw.Destination), true
	case "q":
		return seg(insn.ShapeCurveR, start, raw.Destination), true
	case "s":
		if dist != 4 {
			return insn.NormalizedSegment{}, false
		}
		return seg(insn.ShapeThunderL, start, raw.Destination), true
	case "z":
		if dist != 4 {
			return insn.NormalizedSegment{}, false
		}
		return seg(insn.ShapeThunderR, start, raw.Destination), true
	case "v":
		if dist == 0 || dist == 4 {
			return insn.NormalizedSegment{}, false
		}
		return seg(insn.ShapeCorner, start, raw.Destination), true
	case "pp":
		return seg(insn.ShapeBendR, start, raw.Destination), true
	case "qq":
		return seg(insn.ShapeBendL, start, raw.Destination), true
	case "w":
		if dist != 4 {
			return insn.NormalizedSegment{}, false
		}
		return seg(insn.ShapeFan, start, raw.Destination), true
	case "V":
		return normalizeSkip(start, raw)
	default:
		return insn.NormalizedSegment{}, false
	}
}

func normalizeSkip(start position.Key, raw insn.RawSegment) (insn.NormalizedSegment, bool) {
	if raw.Interim == nil || start == raw.Destination {
		return insn.NormalizedSegment{}, false
	}
	interim := *raw.Interim
	toDest := interim.CWDistance(raw.Destination)
	if toDest < 2 || toDest > 6 {
		return insn.NormalizedSegment{}, false
	}
	switch start.CWDistance(interim) {
	case 6:
		return seg(insn.ShapeSkipL, start, raw.Destination), true
	case 2:
		return seg(insn.ShapeSkipR, start, raw.Destination), true
	default:
		return insn.NormalizedSegment{}, false
	}
}

func seg(shape insn.SlideShape, start, dest position.Key) insn.NormalizedSegment {
	return insn.NormalizedSegment{Shape: shape, StartKey: start, Destination: dest}
}

// Display renders seg back into a raw segment whose normalization reproduces
// the same shape and endpoints (spec.md §8 round-trip property).
func Display(seg insn.NormalizedSegment) insn.RawSegment {
	dest := seg.Destination
	switch seg.Shape {
	case insn.ShapeStraight:
		return insn.RawSegment{Token: "-", Destination: dest}
	case insn.ShapeCircleL:
		return insn.RawSegment{Token: "<", Destination: dest}
	case insn.ShapeCircleR:
		return insn.RawSegment{Token: ">", Destination: dest}
	case insn.ShapeCurveL:
		return insn.RawSegment{Token: "p", Destination: dest}
	case insn.ShapeCurveR:
		return insn.RawSegment{Token: "q", Destination: dest}
	case insn.ShapeThunderL:
		return insn.RawSegment{Token: "s", Destination: dest}
	case insn.ShapeThunderR:
		return insn.RawSegment{Token: "z", Destination: dest}
	case insn.ShapeCorner:
		return insn.RawSegment{Token: "v", Destination: dest}
	case insn.ShapeBendR:
		return insn.RawSegment{Token: "pp", Destination: dest}
	case insn.ShapeBendL:
		return insn.RawSegment{Token: "qq", Destination: dest}
	case insn.ShapeFan:
		return insn.RawSegment{Token: "w", Destination: dest}
	case insn.ShapeSkipL:
		interim := position.Key((int(seg.StartKey) + 6) % 8)
		return insn.RawSegment{Token: "V", Interim: &interim, Destination: dest}
	case insn.ShapeSkipR:
		interim := position.Key((int(seg.StartKey) + 2) % 8)
		return insn.RawSegment{Token: "V", Interim: &interim, Destination: dest}
	default:
		return insn.RawSegment{}
	}
}
