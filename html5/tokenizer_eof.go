package html5

import "github.com/dewolff-html5/html5tok/entity"

// runEOFTable handles the per-state end-of-file behavior: whatever each
// state's in-flight construct is gets flushed or force-quirked before the
// final EOF token, mirroring what each state's normal EOF branch would have
// done had the input continued with one more (nonexistent) character.
func (t *Tokenizer) runEOFTable() {
	switch t.state {
	case TagOpen:
		t.parseError("eof before tag name")
		t.emitChar('<')
	case EndTagOpen:
		t.parseError("eof before tag name")
		t.emitChar('<')
		t.emitChar('/')
	case TagName, BeforeAttributeName, AttributeName, AfterAttributeName,
		BeforeAttributeValue, AttributeValueDoubleQuoted, AttributeValueSingleQuoted,
		AttributeValueUnquoted, AfterAttributeValueQuoted, SelfClosingStartTag:
		t.parseError("eof in tag")

	case RawLessThanSign:
		t.emitChar('<')
	case RawEndTagOpen:
		t.emitChar('<')
		t.emitChar('/')
	case RawEndTagName:
		t.emitChar('<')
		t.emitChar('/')
		t.pendingChars.PushString(t.tempBuf.String())

	case ScriptDataEscapeStart, ScriptDataEscapeStartDash:
		t.emitChar('<')
	case ScriptDataEscapedLessThanSign:
		t.emitChar('<')
	case ScriptDataEscapedEndTagOpen:
		t.emitChar('<')
		t.emitChar('/')
	case ScriptDataEscapedEndTagName:
		t.emitChar('<')
		t.emitChar('/')
		t.pendingChars.PushString(t.tempBuf.String())
	case ScriptDataDoubleEscapedLessThanSign:
		t.emitChar('<')
	case ScriptDataEscaped, ScriptDataEscapedDash, ScriptDataEscapedDashDash,
		ScriptDataDoubleEscaped, ScriptDataDoubleEscapedDash, ScriptDataDoubleEscapedDashDash,
		ScriptDataDoubleEscapeStart, ScriptDataDoubleEscapeEnd:
		t.parseError("eof in script")

	case BogusComment:
		t.emit(commentToken(t.commentBuf.String()))
	case MarkupDeclarationOpen:
		t.parseError("incorrectly opened comment")
	case CommentStart, CommentStartDash, Comment, CommentLessThanSign,
		CommentLessThanSignBang, CommentLessThanSignBangDash, CommentLessThanSignBangDashDash,
		CommentEndDash, CommentEnd, CommentEndBang:
		t.parseError("eof in comment")
		t.emit(commentToken(t.commentBuf.String()))

	case Doctype:
		t.parseError("eof in doctype")
		t.resetDoctype()
		t.doctypeForceQuirks = true
		t.emitDoctype()
	case BeforeDoctypeName, DoctypeName, AfterDoctypeName, AfterDoctypePublicKeyword,
		BeforeDoctypePublicIdentifier, DoctypePublicIdentifierDoubleQuoted,
		DoctypePublicIdentifierSingleQuoted, AfterDoctypePublicIdentifier,
		BetweenDoctypePublicAndSystemIdentifiers, AfterDoctypeSystemKeyword,
		BeforeDoctypeSystemIdentifier, DoctypeSystemIdentifierDoubleQuoted,
		DoctypeSystemIdentifierSingleQuoted, AfterDoctypeSystemIdentifier:
		t.parseError("eof in doctype")
		t.doctypeForceQuirks = true
		t.emitDoctype()
	case BogusDoctype:
		t.emitDoctype()

	case CDATASection:
		t.parseError("eof in cdata")
		t.flushCDATA()
	case CDATASectionBracket:
		t.tempBuf.PushRune(']')
		t.parseError("eof in cdata")
		t.flushCDATA()
	case CDATASectionEnd:
		t.tempBuf.PushString("]]")
		t.parseError("eof in cdata")
		t.flushCDATA()

	case CharacterReference:
		t.runEOFCharacterReference()
	}
}

// runEOFCharacterReference finishes an in-flight character reference at end
// of stream. A named match already found is expanded and followed by the
// characters consumed past it; a numeric reference with at least one digit
// is resolved; both report a missing-semicolon parse error when they lack
// ';'. Anything else is flushed as literal text starting with '&'.
func (t *Tokenizer) runEOFCharacterReference() {
	switch t.charrefPhase {
	case crDispatch:
		t.appendCharRefOutput("&")
	case crNamed:
		consumed := t.charrefConsumed.String()
		if match, ok := t.charref.NotifyEndOfFile(); ok {
			if !match.EndsWithSemicolon {
				t.parseError("missing semicolon after character reference")
			}
			var b []rune
			b = append(b, match.Scalars[0])
			if match.ScalarCount == 2 {
				b = append(b, match.Scalars[1])
			}
			t.appendCharRefOutput(string(b))
			trailing := consumed[match.Length:]
			t.appendCharRefOutput(trailing)
		} else {
			t.appendCharRefOutput("&" + consumed)
		}
	case crNumericStart:
		t.parseError("absence of digits in numeric character reference")
		t.appendCharRefOutput("&" + t.charrefConsumed.String())
	case crNumericDigits, crNumericEnd:
		if t.charrefNumDigits == 0 {
			t.parseError("absence of digits in numeric character reference")
			t.appendCharRefOutput("&" + t.charrefConsumed.String())
			return
		}
		t.parseError("missing semicolon after character reference")
		r, _ := entity.ResolveNumeric(t.charrefNumValue)
		t.appendCharRefOutput(string(r))
	}
}
