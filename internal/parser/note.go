package parser

import (
	"github.com/oss-maidata/maicore-go/internal/diag"
	"github.com/oss-maidata/maicore-go/internal/insn"
	"github.com/oss-maidata/maicore-go/internal/position"
)

// parseNoteBundleInsn parses `note_bundle := note ('/' note)* ','`, plus the
// simplified `tap_bundle := digit+ ','` shorthand: a run of note-starting
// characters with no '/' between them bundles just as a slash-separated one
// would (spec.md §4.1 grammar).
func (p *Parser) parseNoteBundleInsn() (insn.RawInsn, bool) {
	var notes []insn.Note
	for {
		p.skipTrivia()
		n, ok := p.parseNote()
		if ok {
			notes = append(notes, n)
		}
		p.skipTrivia()
		r, hasR := p.peek()
		if hasR && r == '/' {
			p.advance()
			continue
		}
		if hasR && (isDigitKey(r) || isSensorLetter(r)) {
			continue
		}
		break
	}
	p.skipTrivia()
	if !p.consumeIfMatch(',') {
		p.state.AddError(diag.KindExpectedAfter, p.here(), "expected ',' to terminate instruction")
	}
	if len(notes) == 0 {
		return insn.RawInsn{}, false
	}
	return insn.NewNotes(notes), true
}

func (p *Parser) parseNote() (insn.Note, bool) {
	r, ok := p.peek()
	if !ok {
		p.state.AddError(diag.KindMissingNote, p.here(), "expected a note")
		return insn.Note{}, false
	}
	switch {
	case isDigitKey(r):
		return p.parseKeyNote()
	case isSensorLetter(r):
		return p.parseSensorNote()
	default:
		start := p.here()
		p.advance()
		p.state.AddError(diag.KindMissingNote, p.spanFrom(start), "unexpected %q where a note was expected", r)
		return insn.Note{}, false
	}
}

func (p *Parser) parseKeyNote() (insn.Note, bool) {
	keyStart := p.here()
	d := p.advance()
	key, err := position.KeyFromDigit(int(d - '0'))
	if err != nil {
		p.state.AddError(diag.KindMissingNote, p.spanFrom(keyStart), "invalid key digit %q", d)
	}
	mods := insn.TapModifiers{}
	p.parseTapModifiers(&mods)
	if p.atSlideStart() {
		return p.parseSlide(key, mods)
	}
	p.skipTrivia()
	if r, ok := p.peek(); ok && r == 'h' {
		p.advance()
		p.parseTapModifiers(&mods)
		dur, okDur := p.parseDuration()
		if !okDur {
			p.state.AddError(diag.KindMissingDuration, p.here(), "hold missing duration")
			return insn.Note{}, false
		}
		return insn.Note{Kind: insn.NoteKindHold, Hold: &insn.Hold{Key: key, Modifiers: mods, Duration: dur}}, true
	}
	return insn.Note{Kind: insn.NoteKindTap, Tap: &insn.Tap{Key: key, Modifiers: mods}}, true
}

// parseTapModifiers consumes a run of 'b' (break), 'x' (ex), and '$'/"$$"
// (star / spinning star) modifiers, recording a warning on a repeated flag
// and an error on conflicting shape modifiers (spec.md §4.1 "Duplicate
// modifiers ... are warnings ... except for conflicting shape modifiers").
func (p *Parser) parseTapModifiers(mods *insn.TapModifiers) {
	for {
		r, ok := p.peek()
		if !ok {
			return
		}
		switch r {
		case 'b':
			if mods.IsBreak {
				p.state.AddWarning(diag.KindDuplicateModifier, p.here(), "duplicate 'b' modifier")
			}
			mods.IsBreak = true
			p.advance()
		case 'x':
			if mods.IsEx {
				p.state.AddWarning(diag.KindDuplicateModifier, p.here(), "duplicate 'x' modifier")
			}
			mods.IsEx = true
			p.advance()
		case '$':
			start := p.here()
			p.advance()
			shape := insn.ShapeStar
			if r2, ok2 := p.peek(); ok2 && r2 == '$' {
				p.advance()
				shape = insn.ShapeStarSpin
			}
			if mods.Shape != insn.ShapeRing && mods.Shape != shape {
				p.state.AddError(diag.KindDuplicateShapeModifier, p.spanFrom(start), "conflicting shape modifiers")
			}
			mods.Shape = shape
		default:
			return
		}
	}
}

// atSlideStart reports whether, after skipping trivia and any slide head
// modifiers ('@','?','!'), the next character begins a slide segment.
func (p *Parser) atSlideStart() bool {
	p.skipTrivia()
	i := 0
	for {
		r, ok := p.peekAt(i)
		if !ok {
			return false
		}
		if r == '@' || r == '?' || r == '!' {
			i++
			continue
		}
		switch r {
		case '-', '^', '<', '>', 'v', 'p', 'q', 's', 'z', 'V', 'w':
			return true
		default:
			return false
		}
	}
}

func (p *Parser) parseSensorNote() (insn.Note, bool) {
	start := p.here()
	g := p.advance()
	group := position.SensorGroup(g)
	idx := 0
	if r, ok := p.peek(); ok && r >= '1' && r <= '8' {
		idx = int(r-'0') - 1
		p.advance()
	}
	sensor, err := position.NewTouchSensor(group, idx)
	if err != nil {
		p.state.AddError(diag.KindMissingNote, p.spanFrom(start), "%v", err)
	}
	mods := insn.TouchModifiers{}
	for {
		r, ok := p.peek()
		if !ok || r != 'f' {
			break
		}
		if mods.IsFirework {
			p.state.AddWarning(diag.KindDuplicateModifier, p.here(), "duplicate 'f' modifier")
		}
		mods.IsFirework = true
		p.advance()
	}
	p.skipTrivia()
	if r, ok := p.peek(); ok && r == 'h' {
		p.advance()
		for {
			r2, ok2 := p.peek()
			if !ok2 || r2 != 'f' {
				break
			}
			if mods.IsFirework {
				p.state.AddWarning(diag.KindDuplicateModifier, p.here(), "duplicate 'f' modifier")
			}
			mods.IsFirework = true
			p.advance()
		}
		dur, okDur := p.parseDuration()
		if !okDur {
			p.state.AddError(diag.KindMissingDuration, p.here(), "touch-hold missing duration")
			return insn.Note{}, false
		}
		return insn.Note{Kind: insn.NoteKindTouchHold, TouchHold: &insn.TouchHold{Sensor: sensor, Modifiers: mods, Duration: dur}}, true
	}
	return insn.Note{Kind: insn.NoteKindTouch, Touch: &insn.Touch{Sensor: sensor, Modifiers: mods}}, true
}
