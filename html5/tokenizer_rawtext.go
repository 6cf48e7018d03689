package html5

import "strings"

// The RawLessThanSign/RawEndTagOpen/RawEndTagName trio is shared by RCDATA,
// RAWTEXT and (plain) ScriptData; t.rawKind selects which "go back to" state
// a non-matching end tag falls back to.

func (t *Tokenizer) rawReturnState() State {
	switch t.rawKind {
	case RawRcdata:
		return RCDATA
	case RawRawtext:
		return RAWTEXT
	case RawScriptData:
		return ScriptData
	default:
		return RAWTEXT
	}
}

func (t *Tokenizer) stepRawLessThanSign() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	if c == '/' {
		t.tempBuf.Reset()
		t.switchTo(RawEndTagOpen)
		return true
	}
	if t.rawKind == RawScriptData && c == '!' {
		t.emitChar('<')
		t.emitChar('!')
		t.switchTo(ScriptDataEscapeStart)
		return true
	}
	t.emitChar('<')
	t.reconsumeIn(t.rawReturnState())
	return true
}

func (t *Tokenizer) stepRawEndTagOpen() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	if isAsciiAlpha(c) {
		t.discardTag(EndTag)
		t.reconsumeIn(RawEndTagName)
		return true
	}
	t.emitChar('<')
	t.emitChar('/')
	t.reconsumeIn(t.rawReturnState())
	return true
}

func (t *Tokenizer) stepRawEndTagName() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case (c == ' ' || c == '\t' || c == '\n' || c == '\f') && t.isAppropriateEndTagName():
		t.switchTo(BeforeAttributeName)
		return true
	case c == '/' && t.isAppropriateEndTagName():
		t.switchTo(SelfClosingStartTag)
		return true
	case c == '>' && t.isAppropriateEndTagName():
		t.emitTag()
		t.switchTo(Data)
		return true
	case isAsciiAlpha(c):
		t.tag.Name += strings.ToLower(string(c))
		t.tempBuf.PushRune(c)
		return true
	default:
		t.emitChar('<')
		t.emitChar('/')
		t.pendingChars.PushString(t.tempBuf.String())
		t.reconsumeIn(t.rawReturnState())
		return true
	}
}

func (t *Tokenizer) isAppropriateEndTagName() bool {
	return t.tag.Name == t.lastStartTagName && t.lastStartTagName != ""
}

func isAsciiAlpha(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// ---- script data escape states ------------------------------------------

func (t *Tokenizer) stepScriptDataEscapeStart() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	if c == '-' {
		t.emitChar('-')
		t.switchTo(ScriptDataEscapeStartDash)
		return true
	}
	t.reconsumeIn(ScriptData)
	return true
}

func (t *Tokenizer) stepScriptDataEscapeStartDash() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	if c == '-' {
		t.emitChar('-')
		t.switchTo(ScriptDataEscapedDashDash)
		return true
	}
	t.reconsumeIn(ScriptData)
	return true
}

func (t *Tokenizer) stepScriptDataEscaped() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch c {
	case '-':
		t.emitChar('-')
		t.switchTo(ScriptDataEscapedDash)
	case '<':
		t.tokenStartLine = t.currentLine
		t.switchTo(ScriptDataEscapedLessThanSign)
	case 0:
		t.parseError("unexpected null character")
		t.emitChar(0xFFFD)
	default:
		t.emitChar(c)
	}
	return true
}

func (t *Tokenizer) stepScriptDataEscapedDash() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch c {
	case '-':
		t.emitChar('-')
		t.switchTo(ScriptDataEscapedDashDash)
	case '<':
		t.tokenStartLine = t.currentLine
		t.switchTo(ScriptDataEscapedLessThanSign)
	case 0:
		t.parseError("unexpected null character")
		t.emitChar(0xFFFD)
		t.switchTo(ScriptDataEscaped)
	default:
		t.emitChar(c)
		t.switchTo(ScriptDataEscaped)
	}
	return true
}

func (t *Tokenizer) stepScriptDataEscapedDashDash() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch c {
	case '-':
		t.emitChar('-')
	case '<':
		t.tokenStartLine = t.currentLine
		t.switchTo(ScriptDataEscapedLessThanSign)
	case '>':
		t.emitChar('>')
		t.switchTo(ScriptData)
	case 0:
		t.parseError("unexpected null character")
		t.emitChar(0xFFFD)
		t.switchTo(ScriptDataEscaped)
	default:
		t.emitChar(c)
		t.switchTo(ScriptDataEscaped)
	}
	return true
}

func (t *Tokenizer) stepScriptDataEscapedLessThanSign() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	if c == '/' {
		t.tempBuf.Reset()
		t.switchTo(ScriptDataEscapedEndTagOpen)
		return true
	}
	if isAsciiAlpha(c) {
		t.tempBuf.Reset()
		t.emitChar('<')
		t.reconsumeIn(ScriptDataDoubleEscapeStart)
		return true
	}
	t.emitChar('<')
	t.reconsumeIn(ScriptDataEscaped)
	return true
}

func (t *Tokenizer) stepScriptDataEscapedEndTagOpen() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	if isAsciiAlpha(c) {
		t.discardTag(EndTag)
		t.reconsumeIn(ScriptDataEscapedEndTagName)
		return true
	}
	t.emitChar('<')
	t.emitChar('/')
	t.reconsumeIn(ScriptDataEscaped)
	return true
}

func (t *Tokenizer) stepScriptDataEscapedEndTagName() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case (c == ' ' || c == '\t' || c == '\n' || c == '\f') && t.isAppropriateEndTagName():
		t.switchTo(BeforeAttributeName)
		return true
	case c == '/' && t.isAppropriateEndTagName():
		t.switchTo(SelfClosingStartTag)
		return true
	case c == '>' && t.isAppropriateEndTagName():
		t.emitTag()
		t.switchTo(Data)
		return true
	case isAsciiAlpha(c):
		t.tag.Name += strings.ToLower(string(c))
		t.tempBuf.PushRune(c)
		return true
	default:
		t.emitChar('<')
		t.emitChar('/')
		t.pendingChars.PushString(t.tempBuf.String())
		t.reconsumeIn(ScriptDataEscaped)
		return true
	}
}

func (t *Tokenizer) stepScriptDataDoubleEscapeStart() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	if c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '/' || c == '>' {
		t.emitChar(c)
		if strings.EqualFold(t.tempBuf.String(), "script") {
			t.switchTo(ScriptDataDoubleEscaped)
		} else {
			t.switchTo(ScriptDataEscaped)
		}
		return true
	}
	if isAsciiAlpha(c) {
		t.tempBuf.PushRune(c)
		t.emitChar(c)
		return true
	}
	t.reconsumeIn(ScriptDataEscaped)
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscaped() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch c {
	case '-':
		t.emitChar('-')
		t.switchTo(ScriptDataDoubleEscapedDash)
	case '<':
		t.emitChar('<')
		t.switchTo(ScriptDataDoubleEscapedLessThanSign)
	case 0:
		t.parseError("unexpected null character")
		t.emitChar(0xFFFD)
	default:
		t.emitChar(c)
	}
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscapedDash() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch c {
	case '-':
		t.emitChar('-')
		t.switchTo(ScriptDataDoubleEscapedDashDash)
	case '<':
		t.emitChar('<')
		t.switchTo(ScriptDataDoubleEscapedLessThanSign)
	case 0:
		t.parseError("unexpected null character")
		t.emitChar(0xFFFD)
		t.switchTo(ScriptDataDoubleEscaped)
	default:
		t.emitChar(c)
		t.switchTo(ScriptDataDoubleEscaped)
	}
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscapedDashDash() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch c {
	case '-':
		t.emitChar('-')
	case '<':
		t.emitChar('<')
		t.switchTo(ScriptDataDoubleEscapedLessThanSign)
	case '>':
		t.emitChar('>')
		t.switchTo(ScriptData)
	case 0:
		t.parseError("unexpected null character")
		t.emitChar(0xFFFD)
		t.switchTo(ScriptDataDoubleEscaped)
	default:
		t.emitChar(c)
		t.switchTo(ScriptDataDoubleEscaped)
	}
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscapedLessThanSign() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	if c == '/' {
		t.tempBuf.Reset()
		t.emitChar('/')
		t.switchTo(ScriptDataDoubleEscapeEnd)
		return true
	}
	t.reconsumeIn(ScriptDataDoubleEscaped)
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscapeEnd() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	if c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '/' || c == '>' {
		t.emitChar(c)
		if strings.EqualFold(t.tempBuf.String(), "script") {
			t.switchTo(ScriptDataEscaped)
		} else {
			t.switchTo(ScriptDataDoubleEscaped)
		}
		return true
	}
	if isAsciiAlpha(c) {
		t.tempBuf.PushRune(c)
		t.emitChar(c)
		return true
	}
	t.reconsumeIn(ScriptDataDoubleEscaped)
	return true
}
