package html5

import (
	"unicode/utf8"

	"github.com/dewolff-html5/html5tok/entity"
	"github.com/dewolff-html5/html5tok/zbuf"
)

// Character reference handling. The CharacterReference main state dispatches,
// via charrefPhase, to the embedded sub-tokenizer: named-reference matching
// through entity.State, or digit accumulation for &#.../&#x.... There is
// deliberately no separate State enum entry per phase; it is step-local
// scratch, not part of the tokenizer's visible state shape.
const (
	crDispatch = iota
	crNamed
	crNumericStart
	crNumericDigits
	crNumericEnd
)

func (t *Tokenizer) startCharacterReference(returnTo State, inAttr bool) {
	t.charrefReturnTo = returnTo
	t.charrefInAttr = inAttr
	t.charrefConsumed.Reset()
	t.charrefNumericHex = false
	t.charrefNumValue = 0
	t.charrefNumDigits = 0
	t.charrefPhase = crDispatch
	t.switchTo(CharacterReference)
}

func (t *Tokenizer) stepCharacterReference() bool {
	switch t.charrefPhase {
	case crDispatch:
		return t.crStepDispatch()
	case crNamed:
		return t.crStepNamed()
	case crNumericStart:
		return t.crStepNumericStart()
	case crNumericDigits:
		return t.crStepNumericDigits()
	case crNumericEnd:
		return t.crStepNumericEnd()
	}
	return false
}

func isAsciiAlnum(c rune) bool {
	return isAsciiAlpha(c) || '0' <= c && c <= '9'
}

// appendCharRefOutput routes decoded text either into the attribute value
// under construction or into the ordinary character stream, depending on
// which context the reference was encountered in.
func (t *Tokenizer) appendCharRefOutput(s string) {
	if t.charrefInAttr {
		t.curAttrValue.PushString(s)
		return
	}
	t.beginCharsRun()
	t.pendingChars.PushString(s)
}

func (t *Tokenizer) crStepDispatch() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == '#':
		t.charrefConsumed.PushRune('#')
		t.charrefPhase = crNumericStart
	case isAsciiAlnum(c):
		t.charref = entity.NewState()
		t.charrefPhase = crNamed
		t.reconsume = true
		t.currentChar = c
	default:
		t.reconsume = true
		t.currentChar = c
		t.appendCharRefOutput("&")
		t.switchTo(t.charrefReturnTo)
	}
	return true
}

func (t *Tokenizer) crStepNamed() bool {
	for {
		var c rune
		if t.reconsume {
			c = t.currentChar
			t.reconsume = false
		} else {
			var ok bool
			c, ok = t.readChar()
			if !ok {
				return false
			}
		}
		if (!isAsciiAlnum(c) && c != ';') || !t.charref.FeedCharacter(byte(c)) {
			t.reconsume = true
			t.currentChar = c
			return t.crFinishNamed()
		}
		t.charrefConsumed.PushRune(c)
	}
}

// crFinishNamed is entered with t.reconsume set to the character that broke
// the automaton traversal (the dead end): that character was read strictly
// after everything in charrefConsumed, so any text pushed back ahead of it
// must be reinserted in front of it, not after.
func (t *Tokenizer) crFinishNamed() bool {
	deadEnd := t.currentChar
	t.reconsume = false
	consumed := t.charrefConsumed.String()

	match, ok := t.charref.FinishMatch()
	if !ok {
		t.reconsume = true
		t.currentChar = deadEnd
		t.appendCharRefOutput("&" + consumed)
		t.switchTo(t.charrefReturnTo)
		return true
	}

	trailing := consumed[match.Length:]
	nextAfterMatch := deadEnd
	if trailing != "" {
		nextAfterMatch, _ = utf8.DecodeRuneInString(trailing)
	}

	if t.charrefInAttr && !match.EndsWithSemicolon &&
		(nextAfterMatch == '=' || isAsciiAlnum(nextAfterMatch)) {
		// Attribute-context quirk: don't expand at all.
		t.reconsume = true
		t.currentChar = deadEnd
		t.appendCharRefOutput("&" + consumed)
		t.switchTo(t.charrefReturnTo)
		return true
	}

	if !match.EndsWithSemicolon {
		t.parseError("missing semicolon after character reference")
	}

	t.q.PushFront(zbuf.StrBufFromString(trailing + string(deadEnd)))

	var b zbuf.StrBuf
	b.PushRune(match.Scalars[0])
	if match.ScalarCount == 2 {
		b.PushRune(match.Scalars[1])
	}
	t.appendCharRefOutput(b.String())
	t.switchTo(t.charrefReturnTo)
	return true
}

func (t *Tokenizer) crStepNumericStart() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	if c == 'x' || c == 'X' {
		t.charrefConsumed.PushRune(c)
		t.charrefNumericHex = true
		t.charrefPhase = crNumericDigits
		return true
	}
	if _, isDigit := entity.DigitValue(byte(c), 10); isDigit {
		t.reconsume = true
		t.currentChar = c
		t.charrefNumericHex = false
		t.charrefPhase = crNumericDigits
		return true
	}
	t.parseError("absence of digits in numeric character reference")
	t.appendCharRefOutput("&" + t.charrefConsumed.String())
	t.reconsume = true
	t.currentChar = c
	t.switchTo(t.charrefReturnTo)
	return true
}

func (t *Tokenizer) crStepNumericDigits() bool {
	base := 10
	if t.charrefNumericHex {
		base = 16
	}
	for {
		var c rune
		if t.reconsume {
			c = t.currentChar
			t.reconsume = false
		} else {
			var ok bool
			c, ok = t.readChar()
			if !ok {
				return false
			}
		}
		if v, isDigit := entity.DigitValue(byte(c), base); isDigit {
			// Stop accumulating once past 0x10FFFF so long digit runs
			// cannot wrap around into a valid scalar.
			if t.charrefNumValue <= 0x10FFFF {
				t.charrefNumValue = t.charrefNumValue*uint32(base) + uint32(v)
			}
			t.charrefNumDigits++
			continue
		}
		if t.charrefNumDigits == 0 {
			t.parseError("absence of digits in numeric character reference")
			t.appendCharRefOutput("&" + t.charrefConsumed.String())
			t.reconsume = true
			t.currentChar = c
			t.switchTo(t.charrefReturnTo)
			return true
		}
		if c == ';' {
			t.charrefPhase = crNumericEnd
			return t.crFinishNumeric(true)
		}
		t.reconsume = true
		t.currentChar = c
		t.charrefPhase = crNumericEnd
		return t.crFinishNumeric(false)
	}
}

func (t *Tokenizer) crStepNumericEnd() bool {
	return t.crFinishNumeric(false)
}

func (t *Tokenizer) crFinishNumeric(hadSemicolon bool) bool {
	if !hadSemicolon {
		t.parseError("missing semicolon after character reference")
	}
	r, isErr := entity.ResolveNumeric(t.charrefNumValue)
	if isErr {
		t.parseError("character reference outside the permissible Unicode range")
	}
	t.appendCharRefOutput(string(r))
	t.switchTo(t.charrefReturnTo)
	return true
}
