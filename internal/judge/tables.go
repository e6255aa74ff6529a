// Package judge implements the timing-verdict ladder, the per-judge-type
// boundary tables, and the per-note-type state machines that turn sensor
// activation events into verdicts (spec.md §4.5). Grounded on the teacher's
// per-event-kind switch idiom (internal/sequencer/sequencer.go applyEvent)
// for the note state machines, and on original_source's judge module for the
// boundary-table/frame-count derivation (spec.md §9 "Floating-point
// determinism"): boundaries are integer Tap-scale frame counts, multiplied by
// a per-judge-type scale and divided by 60.
package judge

import "math"

// Timing is the 15-level timing verdict ladder (spec.md §4.5), strictly
// ordered and centered on Critical.
type Timing int

const (
	TooFast Timing = iota
	FastGood
	FastGreat3rd
	FastGreat2nd
	FastGreat
	FastPerfect2nd
	FastPerfect
	Critical
	LatePerfect
	LatePerfect2nd
	LateGreat
	LateGreat2nd
	LateGreat3rd
	LateGood
	TooLate
)

func (t Timing) String() string {
	names := [...]string{
		"TooFast", "FastGood", "FastGreat3rd", "FastGreat2nd", "FastGreat",
		"FastPerfect2nd", "FastPerfect", "Critical", "LatePerfect",
		"LatePerfect2nd", "LateGreat", "LateGreat2nd", "LateGreat3rd",
		"LateGood", "TooLate",
	}
	if int(t) < 0 || int(t) >= len(names) {
		return "Unknown"
	}
	return names[t]
}

// DistanceFromCritical ranks a Timing by how far it sits from Critical,
// independent of fast/late direction. Used for fan-slide and worst-timing
// aggregation (spec.md §9 "distance from Critical" resolution of the
// asymmetric-ladder open question).
func (t Timing) DistanceFromCritical() int {
	d := int(t) - int(Critical)
	if d < 0 {
		return -d
	}
	return d
}

// Worse returns whichever of t and other ranks worse by distance from
// Critical.
func Worse(t, other Timing) Timing {
	if other.DistanceFromCritical() > t.DistanceFromCritical() {
		return other
	}
	return t
}

// JudgeType selects which boundary table a note is scored against.
type JudgeType int

const (
	JudgeTap JudgeType = iota
	JudgeTouch
	JudgeSlide
	JudgeExTap
)

func (j JudgeType) String() string {
	switch j {
	case JudgeTap:
		return "Tap"
	case JudgeTouch:
		return "Touch"
	case JudgeSlide:
		return "Slide"
	case JudgeExTap:
		return "ExTap"
	default:
		return "Unknown"
	}
}

// boundaryCount is the number of finite boundary entries among the 15
// Timing levels (TooLate's bound is +Inf and is appended separately).
const boundaryCount = len(
	[...]Timing{TooFast, FastGood, FastGreat3rd, FastGreat2nd, FastGreat,
		FastPerfect2nd, FastPerfect, Critical, LatePerfect, LatePerfect2nd,
		LateGreat, LateGreat2nd, LateGreat3rd, LateGood},
)

// Tables holds every constant used by the judgment simulator: per-JudgeType
// boundary tables plus hold/touch-hold thresholds (spec.md §4.5 "Judge data
// tables"). Constructed once and shared immutably (spec.md §5 "Shared
// resources").
type Tables struct {
	Boundaries           map[JudgeType][boundaryCount + 1]float64
	HoldHeadSeconds      float64
	HoldTailSeconds      float64
	TouchHoldHeadSeconds float64
	TouchHoldTailSeconds float64
}

// DefaultTables returns the standard tolerance tables. Tap and Slide
// boundaries are whole 60Hz frame counts divided by 60; Touch and ExTap scale
// the Tap frame counts by 1.15 and 0.85, so their boundaries are not whole
// frames.
func DefaultTables() Tables {
	return Tables{
		Boundaries: map[JudgeType][boundaryCount + 1]float64{
			JudgeTap:   framesToBoundaries(1.0),
			JudgeTouch: framesToBoundaries(1.15),
			JudgeSlide: framesToBoundaries(2.0),
			JudgeExTap: framesToBoundaries(0.85),
		},
		HoldHeadSeconds:      6.0 / 60,
		HoldTailSeconds:      6.0 / 60,
		TouchHoldHeadSeconds: 7.0 / 60,
		TouchHoldTailSeconds: 7.0 / 60,
	}
}

// baseFrames are the canonical Tap-scale frame offsets for each finite
// boundary. The magnitudes mirror each other around Critical: each fast
// bound is the negation of the matching late bound.
var baseFrames = [boundaryCount]float64{-8, -7, -6, -5, -4, -3, -1, 1, 3, 4, 5, 6, 7, 8}

func framesToBoundaries(scale float64) [boundaryCount + 1]float64 {
	var out [boundaryCount + 1]float64
	for i, f := range baseFrames {
		out[i] = f * scale / 60.0
	}
	out[boundaryCount] = math.Inf(1)
	return out
}

// Judge returns the verdict for a scheduled event observed with
// deltaT = actual - scheduled: the first Timing whose upper bound exceeds
// deltaT (spec.md §4.5).
func (tb Tables) Judge(jt JudgeType, deltaT float64) Timing {
	bounds := tb.Boundaries[jt]
	for i, bound := range bounds {
		if bound > deltaT {
			return Timing(i)
		}
	}
	return TooLate
}

// releaseBucket maps a held percentage (0-100: the share of the hold's
// duration during which its sensor was on) onto one of the five quality
// buckets spec.md §4.5 describes, [0,33,67,95,100].
func releaseBucket(percent float64) int {
	switch {
	case percent <= 33:
		return 0
	case percent <= 67:
		return 1
	case percent <= 95:
		return 2
	case percent < 100:
		return 3
	default:
		return 4
	}
}

// DowngradeForRelease downgrades a hold/touch-hold head verdict toward
// TooLate by one ladder step per bucket that releasePercent, the held
// percentage computed by the hold state machines, falls short of the top
// one (spec.md §4.5).
func (tb Tables) DowngradeForRelease(head Timing, releasePercent float64) Timing {
	steps := 4 - releaseBucket(releasePercent)
	v := int(head) + steps
	if v > int(TooLate) {
		v = int(TooLate)
	}
	return Timing(v)
}
