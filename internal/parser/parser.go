// Package parser is a hand-rolled recursive-descent parser for the maidata
// chart grammar (spec.md §4.1), grounded on the teacher's character-at-a-time
// dispatch style (_examples/cbegin-mmlfm-go/internal/mml/parser.go
// parseTrack). Unlike the teacher, which returns a single terminal error,
// this parser never halts on a recoverable failure: a sub-parser that fails
// records a diagnostic in the ParseState and returns, and the caller
// continues at the next instruction boundary (spec.md §9 "Error-recovery
// combinator").
package parser

import (
	"strconv"
	"unicode/utf8"

	"github.com/oss-maidata/maicore-go/internal/diag"
	"github.com/oss-maidata/maicore-go/internal/insn"
	"github.com/oss-maidata/maicore-go/internal/span"
)

// Options configures a Parser (SPEC_FULL.md §3.8 functional-option style,
// mirroring player.go's PlayerOption).
type Options struct {
	// MaxErrors stops the parser after this many recorded errors (0 = no
	// limit). Guards against pathological input producing unbounded
	// diagnostic output.
	MaxErrors int
}

// DefaultOptions returns the zero-configuration default: no error cap.
func DefaultOptions() Options { return Options{MaxErrors: 0} }

// Option mutates an Options value.
type Option func(*Options)

// WithMaxErrors caps the number of recorded errors before parsing stops early.
func WithMaxErrors(n int) Option {
	return func(o *Options) { o.MaxErrors = n }
}

// Parser holds lexer state and the accumulating ParseState for one parse.
// It is not safe for concurrent use and is never reused across parses
// (spec.md §5 "Parsing state").
type Parser struct {
	runes       []rune
	byteOffsets []int
	pos         int
	line        int
	col         int
	state       *diag.ParseState
	opts        Options
}

// New constructs a Parser over text with default options. The byte-order
// mark, if present, is stripped (spec.md §4.1 "BOM U+FEFF is stripped").
func New(text string) *Parser {
	return NewWithOptions(text)
}

// NewWithOptions constructs a Parser over text with the given options.
func NewWithOptions(text string, opts ...Option) *Parser {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if r, sz := utf8.DecodeRuneInString(text); r == 0xFEFF {
		text = text[sz:]
	}
	runes := []rune(text)
	byteOffsets := make([]int, len(runes)+1)
	off := 0
	for i, rn := range runes {
		byteOffsets[i] = off
		off += utf8.RuneLen(rn)
	}
	byteOffsets[len(runes)] = off
	return &Parser{
		runes:       runes,
		byteOffsets: byteOffsets,
		pos:         0,
		line:        1,
		col:         1,
		state:       &diag.ParseState{},
		opts:        o,
	}
}

// Parse runs the parser to completion and returns the (possibly partial)
// instruction stream alongside the accumulated diagnostics (spec.md §4.1
// "Contract").
func Parse(text string, opts ...Option) ([]span.Spanned[insn.RawInsn], *diag.ParseState) {
	p := NewWithOptions(text, opts...)
	return p.Parse()
}

// Parse drives the top-level insn loop until input is exhausted or the
// configured MaxErrors is reached.
func (p *Parser) Parse() ([]span.Spanned[insn.RawInsn], *diag.ParseState) {
	var out []span.Spanned[insn.RawInsn]
	for {
		p.skipTrivia()
		if p.atEnd() {
			break
		}
		if p.opts.MaxErrors > 0 && len(p.state.Errors) >= p.opts.MaxErrors {
			break
		}
		startPos := p.pos
		start := p.here()
		ri, ok := p.parseInsn()
		if ok {
			out = append(out, span.New(ri, p.spanFrom(start)))
		} else if p.pos == startPos {
			// parseInsn must always make progress; this is a defensive
			// backstop against a combinator that failed to consume input.
			p.advance()
		}
	}
	return out, p.state
}

func (p *Parser) parseInsn() (insn.RawInsn, bool) {
	r, ok := p.peek()
	if !ok {
		return insn.RawInsn{}, false
	}
	switch {
	case r == '(':
		return p.parseBpm()
	case r == '{':
		return p.parseDivisor()
	case r == ',':
		p.advance()
		return insn.NewRest(), true
	case r == 'E' && p.isEndMarkAhead():
		p.advance()
		return insn.NewEndMark(), true
	case isDigitKey(r) || isSensorLetter(r):
		return p.parseNoteBundleInsn()
	default:
		start := p.here()
		p.advance()
		p.state.AddError(diag.KindUnknownChar, p.spanFrom(start), "unexpected character %q", r)
		return insn.RawInsn{}, false
	}
}

func (p *Parser) parseBpm() (insn.RawInsn, bool) {
	p.advance() // '('
	p.skipTrivia()
	numStart := p.here()
	numStr := p.readNumberToken()
	val, err := strconv.ParseFloat(numStr, 64)
	if numStr == "" || err != nil || !validBpm(val) {
		p.state.AddError(diag.KindInvalidBpm, p.spanFrom(numStart), "invalid bpm %q", numStr)
		p.skipToCharOrComma(')')
		p.consumeIfMatch(')')
		return insn.RawInsn{}, false
	}
	p.skipTrivia()
	if !p.consumeIfMatch(')') {
		p.state.AddError(diag.KindExpectedAfter, p.here(), "expected ')' after bpm")
	}
	return insn.NewBpm(val), true
}

func (p *Parser) parseDivisor() (insn.RawInsn, bool) {
	p.advance() // '{'
	p.skipTrivia()
	if r, ok := p.peek(); ok && r == '#' {
		p.advance()
		p.skipTrivia()
		numStart := p.here()
		numStr := p.readNumberToken()
		val, err := strconv.ParseFloat(numStr, 64)
		if numStr == "" || err != nil || !(val > 0) || !finite(val) {
			p.state.AddError(diag.KindInvalidBeatDivisor, p.spanFrom(numStart), "invalid absolute cell duration %q", numStr)
			p.skipToCharOrComma('}')
			p.consumeIfMatch('}')
			return insn.RawInsn{}, false
		}
		p.skipTrivia()
		if !p.consumeIfMatch('}') {
			p.state.AddError(diag.KindExpectedAfter, p.here(), "expected '}' after divisor")
		}
		return insn.NewBeatDivisor(insn.BeatDivisor{Kind: insn.BeatDivisorAbsoluteSeconds, Seconds: val}), true
	}
	numStart := p.here()
	numStr := p.readUintToken()
	v, err := strconv.ParseUint(numStr, 10, 32)
	if numStr == "" || err != nil || v == 0 {
		p.state.AddError(diag.KindInvalidBeatDivisor, p.spanFrom(numStart), "divisor must be > 0, got %q", numStr)
		p.skipToCharOrComma('}')
		p.consumeIfMatch('}')
		return insn.RawInsn{}, false
	}
	p.skipTrivia()
	if !p.consumeIfMatch('}') {
		p.state.AddError(diag.KindExpectedAfter, p.here(), "expected '}' after divisor")
	}
	return insn.NewBeatDivisor(insn.BeatDivisor{Kind: insn.BeatDivisorCount, Count: uint32(v)}), true
}

func isDigitKey(r rune) bool    { return r >= '1' && r <= '8' }
func isSensorLetter(r rune) bool {
	return r == 'A' || r == 'B' || r == 'C' || r == 'D' || r == 'E'
}
