package insn

import "github.com/oss-maidata/maicore-go/internal/position"

// TapShape is the visual shape modifier on a tap or slide star (spec.md §6:
// '$' star, "$$" spinning star; plain digits default to Ring).
type TapShape int

const (
	ShapeRing TapShape = iota
	ShapeStar
	ShapeStarSpin
)

// TapModifiers are the flags shared by Tap, the star of a Slide, and (via
// embedding) Hold: 'b' break, 'x' ex, plus the tap shape.
type TapModifiers struct {
	IsBreak bool
	IsEx    bool
	Shape   TapShape
}

// Tap is a single-frame button press (spec.md §3.3, grammar `tap`).
type Tap struct {
	Key       position.Key
	Modifiers TapModifiers
}

// TouchModifiers are the flags on a touch or touch-hold: 'f' firework.
type TouchModifiers struct {
	IsFirework bool
}

// Touch is a single-frame sensor press.
type Touch struct {
	Sensor    position.TouchSensor
	Modifiers TouchModifiers
}

// Hold is a held button press with a duration.
type Hold struct {
	Key       position.Key
	Modifiers TapModifiers
	Duration  position.Duration
}

// TouchHold is a held sensor press with a duration.
type TouchHold struct {
	Sensor    position.TouchSensor
	Modifiers TouchModifiers
	Duration  position.Duration
}

// Slide is a star tap followed by one or more tracks (spec.md §3.3: "A
// `Slide` carries a start tap plus one or more slide tracks").
type Slide struct {
	Start         position.Key
	HeadModifiers SlideHeadModifier
	StarMods      TapModifiers
	Tracks        []SlideTrack
}

// NoteKind discriminates the Note sum type without a type switch; it is
// stored in the Note.Kind field.
type NoteKind int

const (
	NoteKindTap NoteKind = iota
	NoteKindTouch
	NoteKindHold
	NoteKindTouchHold
	NoteKindSlide
)

func (k NoteKind) String() string {
	switch k {
	case NoteKindTap:
		return "Tap"
	case NoteKindTouch:
		return "Touch"
	case NoteKindHold:
		return "Hold"
	case NoteKindTouchHold:
		return "TouchHold"
	case NoteKindSlide:
		return "Slide"
	default:
		return "Unknown"
	}
}

// Note is one member of a note bundle (spec.md grammar `note`). Exactly one
// of the typed fields is populated, selected by Kind; this mirrors the
// teacher's tagged-Event-struct idiom (internal/mml/types.go Event) rather
// than an interface, since the set of note kinds is closed and dispatch is
// by switch throughout the materializer and judge packages.
type Note struct {
	Kind      NoteKind
	Tap       *Tap
	Touch     *Touch
	Hold      *Hold
	TouchHold *TouchHold
	Slide     *Slide
}
