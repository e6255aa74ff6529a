package parser

import (
	"strconv"

	"github.com/oss-maidata/maicore-go/internal/diag"
	"github.com/oss-maidata/maicore-go/internal/insn"
	"github.com/oss-maidata/maicore-go/internal/position"
	"github.com/oss-maidata/maicore-go/internal/span"
)

// parseDuration parses `dur := '[' ( d ':' n | number '#' d ':' n
// | '#' seconds ) ']'` (spec.md §4.1 grammar).
func (p *Parser) parseDuration() (position.Duration, bool) {
	p.skipTrivia()
	if !p.consumeIfMatch('[') {
		return position.Duration{}, false
	}
	p.skipTrivia()
	if r, ok := p.peek(); ok && r == '#' {
		p.advance()
		p.skipTrivia()
		numStart := p.here()
		numStr := p.readNumberToken()
		secs, err := strconv.ParseFloat(numStr, 64)
		p.skipTrivia()
		p.consumeIfMatch(']')
		if numStr == "" || err != nil {
			p.state.AddError(diag.KindInvalidDuration, p.spanFrom(numStart), "invalid seconds %q", numStr)
			return position.Duration{}, false
		}
		d, derr := position.NewSeconds(secs)
		if derr != nil {
			p.state.AddError(diag.KindInvalidDuration, p.spanFrom(numStart), "%v", derr)
			return position.Duration{}, false
		}
		return d, true
	}

	firstStart := p.here()
	firstStr := p.readNumberToken()
	p.skipTrivia()
	var bpmOverride *float64
	if r, ok := p.peek(); ok && r == '#' {
		p.advance()
		v, err := strconv.ParseFloat(firstStr, 64)
		if firstStr == "" || err != nil || !validBpm(v) {
			p.state.AddError(diag.KindInvalidBpm, p.spanFrom(firstStart), "invalid bpm override %q", firstStr)
		} else {
			bpmOverride = &v
		}
		p.skipTrivia()
		firstStart = p.here()
		firstStr = p.readUintToken()
	}

	divisor, err := strconv.ParseUint(firstStr, 10, 32)
	if firstStr == "" || err != nil {
		p.state.AddError(diag.KindInvalidDuration, p.spanFrom(firstStart), "invalid divisor %q", firstStr)
		p.skipToCharOrComma(']')
		p.consumeIfMatch(']')
		return position.Duration{}, false
	}
	p.skipTrivia()
	if !p.consumeIfMatch(':') {
		p.state.AddError(diag.KindExpectedBetween, p.here(), "expected ':' in duration")
	}
	p.skipTrivia()
	numStart := p.here()
	numStr := p.readUintToken()
	num, nerr := strconv.ParseUint(numStr, 10, 32)
	p.skipTrivia()
	p.consumeIfMatch(']')
	if numStr == "" || nerr != nil {
		p.state.AddError(diag.KindMissingBeatsNum, p.spanFrom(numStart), "missing beats numerator")
		return position.Duration{}, false
	}
	d, derr := position.NewNumBeats(bpmOverride, uint32(divisor), uint32(num))
	if derr != nil {
		p.state.AddError(diag.KindInvalidBeatDivisor, p.spanFrom(firstStart), "%v", derr)
		return position.Duration{}, false
	}
	return d, true
}

// parseSlideDuration parses `slide_dur := dur | '[' bpm '#' seconds ']'
// | '[' seconds '##' beats ']' | '[' seconds '##' bpm '#' beats ']'`
// (spec.md §4.1 grammar; form disambiguation grounded on original_source's
// SlideStopTimeSpec/SlideDuration split between a stop-time spec and a
// travel Duration).
func (p *Parser) parseSlideDuration() (insn.SlideDuration, bool) {
	p.skipTrivia()
	if !p.consumeIfMatch('[') {
		return insn.SlideDuration{}, false
	}
	p.skipTrivia()

	if r, ok := p.peek(); ok && r == '#' {
		p.advance()
		p.skipTrivia()
		numStart := p.here()
		numStr := p.readNumberToken()
		secs, err := strconv.ParseFloat(numStr, 64)
		p.skipTrivia()
		p.consumeIfMatch(']')
		if numStr == "" || err != nil {
			p.state.AddError(diag.KindInvalidDuration, p.spanFrom(numStart), "invalid seconds %q", numStr)
			return insn.SlideDuration{}, false
		}
		d, derr := position.NewSeconds(secs)
		if derr != nil {
			p.state.AddError(diag.KindInvalidDuration, p.spanFrom(numStart), "%v", derr)
			return insn.SlideDuration{}, false
		}
		return insn.SlideDuration{StopTime: insn.StopTime{Kind: insn.StopTimeDefault}, Travel: d}, true
	}

	firstStart := p.here()
	firstStr := p.readNumberToken()
	first, ferr := strconv.ParseFloat(firstStr, 64)
	if firstStr == "" || ferr != nil {
		p.state.AddError(diag.KindInvalidSlideStopTime, p.spanFrom(firstStart), "invalid number %q in slide duration", firstStr)
		p.skipToCharOrComma(']')
		p.consumeIfMatch(']')
		return insn.SlideDuration{}, false
	}
	p.skipTrivia()

	r, hasHash := p.peek()
	if hasHash && r == '#' {
		if r2, ok2 := p.peekAt(1); ok2 && r2 == '#' {
			return p.parseSlideSecondsStopForm(first, firstStart)
		}
		if p.hasColonBeforeBracket(0) {
			return p.parsePlainDurWithBpmOverride(first)
		}
		return p.parseSlideBpmStopForm(first, firstStart)
	}

	// plain 'd:n' form; first is the divisor.
	p.skipTrivia()
	if !p.consumeIfMatch(':') {
		p.state.AddError(diag.KindExpectedBetween, p.here(), "expected ':' in duration")
	}
	p.skipTrivia()
	numStart := p.here()
	numStr := p.readUintToken()
	num, nerr := strconv.ParseUint(numStr, 10, 32)
	p.skipTrivia()
	p.consumeIfMatch(']')
	if numStr == "" || nerr != nil {
		p.state.AddError(diag.KindMissingBeatsNum, p.spanFrom(numStart), "missing beats numerator")
		return insn.SlideDuration{}, false
	}
	travel, derr := position.NewNumBeats(nil, uint32(first), uint32(num))
	if derr != nil {
		p.state.AddError(diag.KindInvalidBeatDivisor, p.spanFrom(firstStart), "%v", derr)
		return insn.SlideDuration{}, false
	}
	return insn.SlideDuration{StopTime: insn.StopTime{Kind: insn.StopTimeDefault}, Travel: travel}, true
}

// parseSlideBpmStopForm parses the remainder of `[bpm#seconds]` given bpm
// already consumed.
func (p *Parser) parseSlideBpmStopForm(bpm float64, bpmStart span.Span) (insn.SlideDuration, bool) {
	p.advance() // '#'
	p.skipTrivia()
	secStart := p.here()
	secStr := p.readNumberToken()
	secs, serr := strconv.ParseFloat(secStr, 64)
	p.skipTrivia()
	p.consumeIfMatch(']')
	if secStr == "" || serr != nil || !validBpm(bpm) {
		p.state.AddError(diag.KindInvalidSlideStopTime, p.spanFrom(secStart), "invalid bpm#seconds slide duration")
		return insn.SlideDuration{}, false
	}
	travel, terr := position.NewSeconds(secs)
	if terr != nil {
		p.state.AddError(diag.KindInvalidSlideStopTime, p.spanFrom(secStart), "%v", terr)
		return insn.SlideDuration{}, false
	}
	return insn.SlideDuration{StopTime: insn.StopTime{Kind: insn.StopTimeBpm, Bpm: bpm}, Travel: travel}, true
}

// parsePlainDurWithBpmOverride parses the remainder of `number#d:n`, the
// plain dur form with a bpm override on the beats count.
func (p *Parser) parsePlainDurWithBpmOverride(bpm float64) (insn.SlideDuration, bool) {
	p.advance() // '#'
	p.skipTrivia()
	bpmVal := bpm
	bpmOverride := &bpmVal
	divStart := p.here()
	divStr := p.readUintToken()
	divisor, derr := strconv.ParseUint(divStr, 10, 32)
	p.skipTrivia()
	if !p.consumeIfMatch(':') {
		p.state.AddError(diag.KindExpectedBetween, p.here(), "expected ':' in duration")
	}
	p.skipTrivia()
	numStart := p.here()
	numStr := p.readUintToken()
	num, nerr := strconv.ParseUint(numStr, 10, 32)
	p.skipTrivia()
	p.consumeIfMatch(']')
	if divStr == "" || derr != nil || numStr == "" || nerr != nil {
		p.state.AddError(diag.KindInvalidDuration, p.spanFrom(divStart), "invalid duration")
		return insn.SlideDuration{}, false
	}
	travel, nberr := position.NewNumBeats(bpmOverride, uint32(divisor), uint32(num))
	if nberr != nil {
		p.state.AddError(diag.KindInvalidBeatDivisor, p.spanFrom(numStart), "%v", nberr)
		return insn.SlideDuration{}, false
	}
	return insn.SlideDuration{StopTime: insn.StopTime{Kind: insn.StopTimeDefault}, Travel: travel}, true
}

// parseSlideSecondsStopForm parses the remainder of `seconds##beats` or
// `seconds##bpm#beats`, given the leading seconds value already consumed.
func (p *Parser) parseSlideSecondsStopForm(seconds float64, secStart span.Span) (insn.SlideDuration, bool) {
	p.advance()
	p.advance() // '##'
	p.skipTrivia()
	beatsStart := p.here()
	beatsStr := p.readNumberToken()
	bv, berr := strconv.ParseFloat(beatsStr, 64)
	p.skipTrivia()
	var bpmOverride *float64
	if r, ok := p.peek(); ok && r == '#' {
		p.advance()
		p.skipTrivia()
		if berr == nil && beatsStr != "" {
			bpmVal := bv
			bpmOverride = &bpmVal
		}
		beatsStart = p.here()
		beatsStr = p.readUintToken()
		bv, berr = strconv.ParseFloat(beatsStr, 64)
	}
	p.skipTrivia()
	if !p.consumeIfMatch(':') {
		p.state.AddError(diag.KindExpectedBetween, p.here(), "expected ':' in slide beats duration")
	}
	p.skipTrivia()
	numStart := p.here()
	numStr := p.readUintToken()
	num, nerr := strconv.ParseUint(numStr, 10, 32)
	p.skipTrivia()
	p.consumeIfMatch(']')
	if beatsStr == "" || berr != nil || numStr == "" || nerr != nil {
		p.state.AddError(diag.KindInvalidSlideStopTime, p.spanFrom(beatsStart), "invalid beats in slide duration")
		return insn.SlideDuration{}, false
	}
	travel, derr := position.NewNumBeats(bpmOverride, uint32(bv), uint32(num))
	if derr != nil {
		p.state.AddError(diag.KindInvalidSlideStopTime, p.spanFrom(numStart), "%v", derr)
		return insn.SlideDuration{}, false
	}
	stop, serr := position.NewSeconds(seconds)
	if serr != nil {
		p.state.AddError(diag.KindInvalidSlideStopTime, p.spanFrom(secStart), "%v", serr)
		return insn.SlideDuration{}, false
	}
	return insn.SlideDuration{StopTime: insn.StopTime{Kind: insn.StopTimeSeconds, Seconds: stop.Seconds}, Travel: travel}, true
}
