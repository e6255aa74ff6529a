// Package diag holds the parser's diagnostic taxonomy (spec.md §4.1
// "Error taxonomy") and the accumulator (ParseState) the parser threads
// through every combinator.
package diag

import (
	"fmt"

	"github.com/oss-maidata/maicore-go/internal/span"
)

// Kind enumerates every diagnostic the parser can record. Errors and
// warnings share one enum; IsError reports which bucket a Kind belongs to.
type Kind int

const (
	KindUnknownChar Kind = iota
	KindExpectedBefore
	KindExpectedAfter
	KindExpectedBetween
	KindMissingBeatsNum
	KindMissingDuration
	KindMissingNote
	KindMissingSlideStartKey
	KindMissingSlideTrack
	KindMissingSlideDestinationKey
	KindInvalidBpm
	KindInvalidBeatDivisor
	KindInvalidDuration
	KindInvalidSlideStopTime
	KindInvalidSlideTrack
	KindDuplicateShapeModifier
	KindDurationMismatch

	KindDuplicateModifier
	KindMultipleSlideTrackGroups
	KindWarningMissingSlideStartKey
)

var errorKinds = map[Kind]bool{
	KindUnknownChar:                true,
	KindExpectedBefore:             true,
	KindExpectedAfter:              true,
	KindExpectedBetween:            true,
	KindMissingBeatsNum:            true,
	KindMissingDuration:            true,
	KindMissingNote:                true,
	KindMissingSlideStartKey:       true,
	KindMissingSlideTrack:          true,
	KindMissingSlideDestinationKey: true,
	KindInvalidBpm:                 true,
	KindInvalidBeatDivisor:         true,
	KindInvalidDuration:            true,
	KindInvalidSlideStopTime:       true,
	KindInvalidSlideTrack:          true,
	KindDuplicateShapeModifier:     true,
	KindDurationMismatch:           true,
}

// IsError reports whether k belongs in ParseState.Errors rather than Warnings.
func (k Kind) IsError() bool { return errorKinds[k] }

func (k Kind) String() string {
	switch k {
	case KindUnknownChar:
		return "UnknownChar"
	case KindExpectedBefore:
		return "ExpectedBefore"
	case KindExpectedAfter:
		return "ExpectedAfter"
	case KindExpectedBetween:
		return "ExpectedBetween"
	case KindMissingBeatsNum:
		return "MissingBeatsNum"
	case KindMissingDuration:
		return "MissingDuration"
	case KindMissingNote:
		return "MissingNote"
	case KindMissingSlideStartKey:
		return "MissingSlideStartKey"
	case KindMissingSlideTrack:
		return "MissingSlideTrack"
	case KindMissingSlideDestinationKey:
		return "MissingSlideDestinationKey"
	case KindInvalidBpm:
		return "InvalidBpm"
	case KindInvalidBeatDivisor:
		return "InvalidBeatDivisor"
	case KindInvalidDuration:
		return "InvalidDuration"
	case KindInvalidSlideStopTime:
		return "InvalidSlideStopTime"
	case KindInvalidSlideTrack:
		return "InvalidSlideTrack"
	case KindDuplicateShapeModifier:
		return "DuplicateShapeModifier"
	case KindDurationMismatch:
		return "DurationMismatch"
	case KindDuplicateModifier:
		return "DuplicateModifier"
	case KindMultipleSlideTrackGroups:
		return "MultipleSlideTrackGroups"
	case KindWarningMissingSlideStartKey:
		return "MissingSlideStartKey"
	default:
		return "Unknown"
	}
}

// Diagnostic is one parse error or warning, span-tagged per spec.md §3.5:
// "Diagnostics ... reference spans only -- no textual quoting is required."
type Diagnostic struct {
	Kind    Kind
	Span    span.Span
	Message string
}

func (d Diagnostic) Error() string { return d.Message }

// New builds a Diagnostic with a formatted message.
func New(kind Kind, sp span.Span, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Span: sp, Message: fmt.Sprintf(format, args...)}
}

// ParseState accumulates the two ordered diagnostic vectors spec.md §4.1
// requires ("ParseState holds two ordered vectors of spanned diagnostics").
// Parsing never halts on a recorded diagnostic; the caller decides whether
// any of them are fatal.
type ParseState struct {
	Warnings []Diagnostic
	Errors   []Diagnostic
}

// AddError appends an error diagnostic.
func (ps *ParseState) AddError(kind Kind, sp span.Span, format string, args ...any) {
	ps.Errors = append(ps.Errors, New(kind, sp, format, args...))
}

// AddWarning appends a warning diagnostic.
func (ps *ParseState) AddWarning(kind Kind, sp span.Span, format string, args ...any) {
	ps.Warnings = append(ps.Warnings, New(kind, sp, format, args...))
}

// HasErrors reports whether any error diagnostic has been recorded.
func (ps *ParseState) HasErrors() bool { return len(ps.Errors) > 0 }

// HasWarnings reports whether any warning diagnostic has been recorded.
func (ps *ParseState) HasWarnings() bool { return len(ps.Warnings) > 0 }
