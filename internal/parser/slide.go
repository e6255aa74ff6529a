package parser

import (
	"github.com/oss-maidata/maicore-go/internal/diag"
	"github.com/oss-maidata/maicore-go/internal/insn"
	"github.com/oss-maidata/maicore-go/internal/position"
)

// parseSlide parses `slide := key? (slide_head_mod)* slide_track
// ('*' slide_track)*` with key and the star's modifiers already consumed by
// parseKeyNote.
func (p *Parser) parseSlide(key position.Key, starMods insn.TapModifiers) (insn.Note, bool) {
	head := insn.SlideHeadModifier{}
modLoop:
	for {
		r, ok := p.peek()
		if !ok {
			break modLoop
		}
		switch r {
		case '@':
			head.RingShape = true
			p.advance()
		case '?':
			p.advance()
		case '!':
			p.advance()
		default:
			break modLoop
		}
	}

	var tracks []insn.SlideTrack
	for {
		p.skipTrivia()
		tr, ok := p.parseSlideTrack()
		if ok {
			tracks = append(tracks, tr)
		}
		p.skipTrivia()
		if r, ok := p.peek(); ok && r == '*' {
			p.advance()
			continue
		}
		break
	}
	if len(tracks) == 0 {
		p.state.AddError(diag.KindMissingSlideTrack, p.here(), "slide has no tracks")
		return insn.Note{}, false
	}
	return insn.Note{Kind: insn.NoteKindSlide, Slide: &insn.Slide{
		Start:         key,
		HeadModifiers: head,
		StarMods:      starMods,
		Tracks:        tracks,
	}}, true
}

// parseSlideTrack parses `slide_track := segment+ ('b')* slide_dur ('b')*`.
func (p *Parser) parseSlideTrack() (insn.SlideTrack, bool) {
	var segs []insn.RawSegment
	for {
		p.skipTrivia()
		seg, ok := p.parseSlideSegment()
		if !ok {
			break
		}
		segs = append(segs, seg)
		p.skipTrivia()
		if !p.atSlideSegmentStart() {
			break
		}
	}
	if len(segs) == 0 {
		p.state.AddError(diag.KindInvalidSlideTrack, p.here(), "slide track has no segments")
	}

	mod := insn.SlideTrackModifier{}
	p.skipTrivia()
	for {
		r, ok := p.peek()
		if !ok || r != 'b' {
			break
		}
		mod.IsBreak = true
		p.advance()
		p.skipTrivia()
	}

	dur, okDur := p.parseSlideDuration()
	if !okDur {
		p.state.AddError(diag.KindMissingDuration, p.here(), "slide track missing duration")
	}

	p.skipTrivia()
	for {
		r, ok := p.peek()
		if !ok || r != 'b' {
			break
		}
		mod.IsBreak = true
		p.advance()
		p.skipTrivia()
	}

	if len(segs) == 0 {
		return insn.SlideTrack{}, false
	}
	return insn.SlideTrack{Segments: segs, Duration: dur, Modifier: mod}, true
}

func (p *Parser) atSlideSegmentStart() bool {
	r, ok := p.peek()
	if !ok {
		return false
	}
	switch r {
	case '-', '^', '<', '>', 'v', 'p', 'q', 's', 'z', 'V', 'w':
		return true
	default:
		return false
	}
}

func (p *Parser) parseSlideSegment() (insn.RawSegment, bool) {
	r, ok := p.peek()
	if !ok {
		return insn.RawSegment{}, false
	}
	switch r {
	case '-', '^', '<', '>', 'v', 's', 'z', 'w':
		tok := string(r)
		p.advance()
		dest, okD := p.parseKeyDigit()
		if !okD {
			p.state.AddError(diag.KindMissingSlideDestinationKey, p.here(), "slide segment %q missing destination key", tok)
			return insn.RawSegment{}, false
		}
		return insn.RawSegment{Token: tok, Destination: dest}, true
	case 'p', 'q':
		tok := string(r)
		p.advance()
		if r2, ok2 := p.peek(); ok2 && r2 == r {
			p.advance()
			tok += tok
		}
		dest, okD := p.parseKeyDigit()
		if !okD {
			p.state.AddError(diag.KindMissingSlideDestinationKey, p.here(), "slide segment %q missing destination key", tok)
			return insn.RawSegment{}, false
		}
		return insn.RawSegment{Token: tok, Destination: dest}, true
	case 'V':
		p.advance()
		interim, okI := p.parseKeyDigit()
		if !okI {
			p.state.AddError(diag.KindMissingSlideDestinationKey, p.here(), "'V' segment missing interim key")
			return insn.RawSegment{}, false
		}
		dest, okD := p.parseKeyDigit()
		if !okD {
			p.state.AddError(diag.KindMissingSlideDestinationKey, p.here(), "'V' segment missing destination key")
			return insn.RawSegment{}, false
		}
		ii := interim
		return insn.RawSegment{Token: "V", Interim: &ii, Destination: dest}, true
	default:
		return insn.RawSegment{}, false
	}
}

func (p *Parser) parseKeyDigit() (position.Key, bool) {
	p.skipTrivia()
	r, ok := p.peek()
	if !ok || r < '1' || r > '8' {
		return 0, false
	}
	p.advance()
	k, err := position.KeyFromDigit(int(r - '0'))
	if err != nil {
		return 0, false
	}
	return k, true
}
