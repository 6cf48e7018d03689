package html5

import "github.com/dewolff-html5/html5tok/bufqueue"

func (t *Tokenizer) resetDoctype() {
	t.doctypeName.Reset()
	t.doctypeNamePresent = false
	t.doctypePublicID.Reset()
	t.doctypePublicIDPresent = false
	t.doctypeSystemID.Reset()
	t.doctypeSystemIDPresent = false
	t.doctypeForceQuirks = false
}

func (t *Tokenizer) emitDoctype() {
	d := DoctypeToken{ForceQuirks: t.doctypeForceQuirks}
	if t.doctypeNamePresent {
		name := t.doctypeName.String()
		d.Name = &name
	}
	if t.doctypePublicIDPresent {
		id := t.doctypePublicID.String()
		d.PublicID = &id
	}
	if t.doctypeSystemIDPresent {
		id := t.doctypeSystemID.String()
		d.SystemID = &id
	}
	t.flushChars()
	t.emit(doctypeToken(d))
}

func (t *Tokenizer) stepDoctype() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		t.resetDoctype()
		t.switchTo(BeforeDoctypeName)
	case c == '>':
		t.resetDoctype()
		t.reconsumeIn(BeforeDoctypeName)
	default:
		t.parseError("missing whitespace before doctype name")
		t.resetDoctype()
		t.reconsumeIn(BeforeDoctypeName)
	}
	return true
}

func (t *Tokenizer) stepBeforeDoctypeName() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		return true
	case isAsciiAlpha(c):
		t.doctypeNamePresent = true
		t.doctypeName.PushString(asciiLowerRune(c))
		t.switchTo(DoctypeName)
	case c == 0:
		t.parseError("unexpected null character")
		t.doctypeNamePresent = true
		t.doctypeName.PushRune('�')
		t.switchTo(DoctypeName)
	case c == '>':
		t.parseError("missing doctype name")
		t.doctypeForceQuirks = true
		t.emitDoctype()
		t.switchTo(Data)
	default:
		t.doctypeNamePresent = true
		t.doctypeName.PushRune(c)
		t.switchTo(DoctypeName)
	}
	return true
}

func asciiLowerRune(c rune) string {
	if 'A' <= c && c <= 'Z' {
		return string(c + ('a' - 'A'))
	}
	return string(c)
}

func (t *Tokenizer) stepDoctypeName() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		t.switchTo(AfterDoctypeName)
	case c == '>':
		t.emitDoctype()
		t.switchTo(Data)
	case c == 0:
		t.parseError("unexpected null character")
		t.doctypeName.PushRune('�')
	case isAsciiAlpha(c):
		t.doctypeName.PushString(asciiLowerRune(c))
	default:
		t.doctypeName.PushRune(c)
	}
	return true
}

// stepAfterDoctypeName tries the two full keyword matches first, since
// neither commits any input until it is fully decided one way or the
// other; only once both are ruled out does it fall back to consuming a
// single character for the whitespace/'>'/default cases.
func (t *Tokenizer) stepAfterDoctypeName() bool {
	if !t.reconsume {
		if matched, decided := t.q.Eat("public", bufqueue.AsciiCaseInsensitiveEq); !decided {
			return false
		} else if matched {
			t.switchTo(AfterDoctypePublicKeyword)
			return true
		}
		if matched, decided := t.q.Eat("system", bufqueue.AsciiCaseInsensitiveEq); !decided {
			return false
		} else if matched {
			t.switchTo(AfterDoctypeSystemKeyword)
			return true
		}
	}
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
	case c == '>':
		t.emitDoctype()
		t.switchTo(Data)
	default:
		t.parseError("invalid character sequence after doctype name")
		t.doctypeForceQuirks = true
		t.reconsumeIn(BogusDoctype)
	}
	return true
}

func (t *Tokenizer) stepAfterDoctypePublicKeyword() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		t.switchTo(BeforeDoctypePublicIdentifier)
	case c == '"':
		t.parseError("missing whitespace after doctype public keyword")
		t.doctypePublicIDPresent = true
		t.switchTo(DoctypePublicIdentifierDoubleQuoted)
	case c == '\'':
		t.parseError("missing whitespace after doctype public keyword")
		t.doctypePublicIDPresent = true
		t.switchTo(DoctypePublicIdentifierSingleQuoted)
	case c == '>':
		t.parseError("missing doctype public identifier")
		t.doctypeForceQuirks = true
		t.emitDoctype()
		t.switchTo(Data)
	default:
		t.parseError("missing quote before doctype public identifier")
		t.doctypeForceQuirks = true
		t.reconsumeIn(BogusDoctype)
	}
	return true
}

func (t *Tokenizer) stepBeforeDoctypePublicIdentifier() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		return true
	case c == '"':
		t.doctypePublicIDPresent = true
		t.switchTo(DoctypePublicIdentifierDoubleQuoted)
	case c == '\'':
		t.doctypePublicIDPresent = true
		t.switchTo(DoctypePublicIdentifierSingleQuoted)
	case c == '>':
		t.parseError("missing doctype public identifier")
		t.doctypeForceQuirks = true
		t.emitDoctype()
		t.switchTo(Data)
	default:
		t.parseError("missing quote before doctype public identifier")
		t.doctypeForceQuirks = true
		t.reconsumeIn(BogusDoctype)
	}
	return true
}

func (t *Tokenizer) stepDoctypePublicIdentifierQuoted(quote rune) bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == quote:
		t.switchTo(AfterDoctypePublicIdentifier)
	case c == 0:
		t.parseError("unexpected null character")
		t.doctypePublicID.PushRune('�')
	case c == '>':
		t.parseError("abrupt doctype public identifier")
		t.doctypeForceQuirks = true
		t.emitDoctype()
		t.switchTo(Data)
	default:
		t.doctypePublicID.PushRune(c)
	}
	return true
}

func (t *Tokenizer) stepAfterDoctypePublicIdentifier() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		t.switchTo(BetweenDoctypePublicAndSystemIdentifiers)
	case c == '>':
		t.emitDoctype()
		t.switchTo(Data)
	case c == '"':
		t.parseError("missing whitespace between doctype public and system identifiers")
		t.doctypeSystemIDPresent = true
		t.switchTo(DoctypeSystemIdentifierDoubleQuoted)
	case c == '\'':
		t.parseError("missing whitespace between doctype public and system identifiers")
		t.doctypeSystemIDPresent = true
		t.switchTo(DoctypeSystemIdentifierSingleQuoted)
	default:
		t.parseError("missing quote before doctype system identifier")
		t.doctypeForceQuirks = true
		t.reconsumeIn(BogusDoctype)
	}
	return true
}

func (t *Tokenizer) stepBetweenDoctypePublicAndSystemIdentifiers() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		return true
	case c == '>':
		t.emitDoctype()
		t.switchTo(Data)
	case c == '"':
		t.doctypeSystemIDPresent = true
		t.switchTo(DoctypeSystemIdentifierDoubleQuoted)
	case c == '\'':
		t.doctypeSystemIDPresent = true
		t.switchTo(DoctypeSystemIdentifierSingleQuoted)
	default:
		t.parseError("missing quote before doctype system identifier")
		t.doctypeForceQuirks = true
		t.reconsumeIn(BogusDoctype)
	}
	return true
}

func (t *Tokenizer) stepAfterDoctypeSystemKeyword() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		t.switchTo(BeforeDoctypeSystemIdentifier)
	case c == '"':
		t.parseError("missing whitespace after doctype system keyword")
		t.doctypeSystemIDPresent = true
		t.switchTo(DoctypeSystemIdentifierDoubleQuoted)
	case c == '\'':
		t.parseError("missing whitespace after doctype system keyword")
		t.doctypeSystemIDPresent = true
		t.switchTo(DoctypeSystemIdentifierSingleQuoted)
	case c == '>':
		t.parseError("missing doctype system identifier")
		t.doctypeForceQuirks = true
		t.emitDoctype()
		t.switchTo(Data)
	default:
		t.parseError("missing quote before doctype system identifier")
		t.doctypeForceQuirks = true
		t.reconsumeIn(BogusDoctype)
	}
	return true
}

func (t *Tokenizer) stepBeforeDoctypeSystemIdentifier() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		return true
	case c == '"':
		t.doctypeSystemIDPresent = true
		t.switchTo(DoctypeSystemIdentifierDoubleQuoted)
	case c == '\'':
		t.doctypeSystemIDPresent = true
		t.switchTo(DoctypeSystemIdentifierSingleQuoted)
	case c == '>':
		t.parseError("missing doctype system identifier")
		t.doctypeForceQuirks = true
		t.emitDoctype()
		t.switchTo(Data)
	default:
		t.parseError("missing quote before doctype system identifier")
		t.doctypeForceQuirks = true
		t.reconsumeIn(BogusDoctype)
	}
	return true
}

func (t *Tokenizer) stepDoctypeSystemIdentifierQuoted(quote rune) bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == quote:
		t.switchTo(AfterDoctypeSystemIdentifier)
	case c == 0:
		t.parseError("unexpected null character")
		t.doctypeSystemID.PushRune('�')
	case c == '>':
		t.parseError("abrupt doctype system identifier")
		t.doctypeForceQuirks = true
		t.emitDoctype()
		t.switchTo(Data)
	default:
		t.doctypeSystemID.PushRune(c)
	}
	return true
}

func (t *Tokenizer) stepAfterDoctypeSystemIdentifier() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		return true
	case c == '>':
		t.emitDoctype()
		t.switchTo(Data)
	default:
		t.parseError("unexpected character after doctype system identifier")
		t.reconsumeIn(BogusDoctype)
	}
	return true
}

func (t *Tokenizer) stepBogusDoctype() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch c {
	case '>':
		t.emitDoctype()
		t.switchTo(Data)
	case 0:
		t.parseError("unexpected null character")
	default:
	}
	return true
}
