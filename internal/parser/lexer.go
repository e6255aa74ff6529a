package parser

import (
	"math"
	"strings"
	"unicode"

	"github.com/oss-maidata/maicore-go/internal/span"
)

func (p *Parser) atEnd() bool { return p.pos >= len(p.runes) }

func (p *Parser) peek() (rune, bool) { return p.peekAt(0) }

func (p *Parser) peekAt(offset int) (rune, bool) {
	i := p.pos + offset
	if i < 0 || i >= len(p.runes) {
		return 0, false
	}
	return p.runes[i], true
}

func (p *Parser) advance() rune {
	r := p.runes[p.pos]
	p.pos++
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return r
}

func (p *Parser) consumeIfMatch(r rune) bool {
	if cur, ok := p.peek(); ok && cur == r {
		p.advance()
		return true
	}
	return false
}

// here returns a zero-length span at the parser's current position.
func (p *Parser) here() span.Span {
	off := p.byteOffsets[p.pos]
	return span.Span{ByteOffset: off, Line: p.line, Col: p.col, EndLine: p.line, EndCol: p.col, Len: 0}
}

// spanFrom returns the span covering [start, current position).
func (p *Parser) spanFrom(start span.Span) span.Span {
	end := p.here()
	return span.Span{
		ByteOffset: start.ByteOffset,
		Line:       start.Line,
		Col:        start.Col,
		EndLine:    end.Line,
		EndCol:     end.Col,
		Len:        end.ByteOffset - start.ByteOffset,
	}
}

// skipTrivia skips whitespace (including newlines) and "||"-to-end-of-line
// comments. Whitespace is insignificant everywhere in the grammar (spec.md
// §4.1 "Lexical rules").
func (p *Parser) skipTrivia() {
	for {
		r, ok := p.peek()
		if !ok {
			return
		}
		if r == '|' {
			if r2, ok2 := p.peekAt(1); ok2 && r2 == '|' {
				for {
					r3, ok3 := p.peek()
					if !ok3 || r3 == '\n' {
						break
					}
					p.advance()
				}
				continue
			}
		}
		if unicode.IsSpace(r) {
			p.advance()
			continue
		}
		return
	}
}

// isEndMarkAhead reports whether the upcoming 'E' is a bare end-of-chart
// marker rather than the start of a touch sensor note: it is an end mark
// when the next significant character is ',' or input ends.
func (p *Parser) isEndMarkAhead() bool {
	i := p.pos + 1
	for i < len(p.runes) {
		r := p.runes[i]
		if r == '|' && i+1 < len(p.runes) && p.runes[i+1] == '|' {
			for i < len(p.runes) && p.runes[i] != '\n' {
				i++
			}
			continue
		}
		if unicode.IsSpace(r) {
			i++
			continue
		}
		return r == ','
	}
	return true
}

// hasColonBeforeBracket reports whether a ':' appears before the next ']'
// starting offset runes from the current position, without consuming input.
// Used to disambiguate `number#d:n` (plain dur with bpm override) from
// `bpm#seconds` (slide custom stop time), which share a leading `number#`.
func (p *Parser) hasColonBeforeBracket(offset int) bool {
	i := p.pos + offset
	for i < len(p.runes) {
		switch p.runes[i] {
		case ']':
			return false
		case ':':
			return true
		}
		i++
	}
	return false
}

func (p *Parser) readNumberToken() string {
	start := p.pos
	for {
		r, ok := p.peek()
		if !ok || !strings.ContainsRune("0123456789.+-eE", r) {
			break
		}
		p.advance()
	}
	return string(p.runes[start:p.pos])
}

func (p *Parser) readUintToken() string {
	start := p.pos
	for {
		r, ok := p.peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		p.advance()
	}
	return string(p.runes[start:p.pos])
}

// skipToCharOrComma advances past input until target or ',' is the next
// character, or input ends. Used for error recovery after a malformed
// bracketed form (spec.md §9 error-recovery combinator).
func (p *Parser) skipToCharOrComma(target rune) {
	for {
		r, ok := p.peek()
		if !ok || r == target || r == ',' {
			return
		}
		p.advance()
	}
}

func validBpm(v float64) bool { return finite(v) && v > 0 }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
