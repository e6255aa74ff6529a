// Package span carries source-location metadata through the parser so
// diagnostics can reference text positions without the core needing to
// re-quote or otherwise own the original source string (spec.md §3.5).
package span

import "fmt"

// Span locates a parsed construct in the original chart text.
type Span struct {
	ByteOffset int
	Line       int
	Col        int
	EndLine    int
	EndCol     int
	Len        int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.Line, s.Col, s.EndLine, s.EndCol)
}

// Join returns the smallest span covering both s and other. Both spans must
// come from the same source text.
func (s Span) Join(other Span) Span {
	start, end := s, other
	if other.ByteOffset < s.ByteOffset {
		start, end = other, s
	}
	return Span{
		ByteOffset: start.ByteOffset,
		Line:       start.Line,
		Col:        start.Col,
		EndLine:    end.EndLine,
		EndCol:     end.EndCol,
		Len:        (end.ByteOffset + end.Len) - start.ByteOffset,
	}
}

// Spanned pairs a value with the span of text it was parsed from.
type Spanned[T any] struct {
	value T
	span  Span
}

// New wraps v with sp.
func New[T any](v T, sp Span) Spanned[T] {
	return Spanned[T]{value: v, span: sp}
}

// Unwrap returns the wrapped value.
func (s Spanned[T]) Unwrap() T { return s.value }

// Span returns the source span the value was parsed from.
func (s Spanned[T]) Span() Span { return s.span }

// Map transforms the wrapped value, keeping the span.
func Map[T, U any](s Spanned[T], f func(T) U) Spanned[U] {
	return Spanned[U]{value: f(s.value), span: s.span}
}
