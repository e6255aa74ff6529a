// Package insn is the instruction AST (spec.md §3.3): a closed, tagged-
// variant tree produced by the parser and consumed by the materializer.
// Grounded on the teacher's tagged-Event model (internal/mml/types.go).
package insn

// BeatDivisorKind distinguishes the two BeatDivisor payload forms.
type BeatDivisorKind int

const (
	BeatDivisorCount BeatDivisorKind = iota
	BeatDivisorAbsoluteSeconds
)

// BeatDivisor updates the cell duration, either as an integer divisor of a
// whole note or as an absolute number of seconds (spec.md grammar `divisor`).
type BeatDivisor struct {
	Kind     BeatDivisorKind
	Count    uint32  // valid when Kind == BeatDivisorCount, > 0
	Seconds  float64 // valid when Kind == BeatDivisorAbsoluteSeconds, > 0
}

// Kind discriminates the RawInsn sum type (spec.md §3.3 table).
type Kind int

const (
	KindBpm Kind = iota
	KindBeatDivisor
	KindRest
	KindNotes
	KindEndMark
)

func (k Kind) String() string {
	switch k {
	case KindBpm:
		return "Bpm"
	case KindBeatDivisor:
		return "BeatDivisor"
	case KindRest:
		return "Rest"
	case KindNotes:
		return "Notes"
	case KindEndMark:
		return "EndMark"
	default:
		return "Unknown"
	}
}

// RawInsn is one instruction in the parsed instruction stream. Exactly one
// payload field is populated per Kind (spec.md §3.3's "ordered sequence of
// RawInsn").
type RawInsn struct {
	Kind        Kind
	Bpm         float64
	BeatDivisor BeatDivisor
	Notes       []Note
}

// NewBpm builds a Bpm instruction.
func NewBpm(bpm float64) RawInsn { return RawInsn{Kind: KindBpm, Bpm: bpm} }

// NewBeatDivisor builds a BeatDivisor instruction.
func NewBeatDivisor(bd BeatDivisor) RawInsn { return RawInsn{Kind: KindBeatDivisor, BeatDivisor: bd} }

// NewRest builds a Rest instruction.
func NewRest() RawInsn { return RawInsn{Kind: KindRest} }

// NewNotes builds a Notes (bundle) instruction.
func NewNotes(notes []Note) RawInsn { return RawInsn{Kind: KindNotes, Notes: notes} }

// NewEndMark builds an EndMark instruction.
func NewEndMark() RawInsn { return RawInsn{Kind: KindEndMark} }
