package html5

import (
	"strings"

	"github.com/dewolff-html5/html5tok/bufqueue"
)

func (t *Tokenizer) stepTagOpen() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == '!':
		t.switchTo(MarkupDeclarationOpen)
	case c == '/':
		t.switchTo(EndTagOpen)
	case isAsciiAlpha(c):
		t.discardTag(StartTag)
		t.reconsumeIn(TagName)
	case c == '?':
		t.parseError("unexpected question mark instead of tag name")
		t.commentBuf.Reset()
		t.reconsumeIn(BogusComment)
	default:
		t.parseError("invalid first character of tag name")
		t.emitChar('<')
		t.reconsumeIn(Data)
	}
	return true
}

func (t *Tokenizer) stepEndTagOpen() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case isAsciiAlpha(c):
		t.discardTag(EndTag)
		t.reconsumeIn(TagName)
	case c == '>':
		t.parseError("missing end tag name")
		t.switchTo(Data)
	default:
		t.parseError("invalid first character of tag name")
		t.commentBuf.Reset()
		t.reconsumeIn(BogusComment)
	}
	return true
}

func rawKindForTag(name string) (RawKind, bool) {
	switch name {
	case "textarea", "title":
		return RawRcdata, true
	case "style", "xmp", "iframe", "noembed", "noframes", "noscript":
		return RawRawtext, true
	case "script":
		return RawScriptData, true
	case "plaintext":
		return RawPlaintext, true
	}
	return 0, false
}

func (t *Tokenizer) stepTagName() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		t.switchTo(BeforeAttributeName)
	case c == '/':
		t.switchTo(SelfClosingStartTag)
	case c == '>':
		t.emitTag()
		if t.tag.Kind == StartTag {
			if kind, ok := rawKindForTag(t.tag.Name); ok {
				t.rawKind = kind
				t.switchTo(rawKindEntryState(kind))
				return true
			}
		}
		t.switchTo(Data)
	case c == 0:
		t.parseError("unexpected null character")
		t.tag.Name += "�"
	case isAsciiAlpha(c):
		t.tag.Name += strings.ToLower(string(c))
	default:
		t.tag.Name += string(c)
	}
	return true
}

func (t *Tokenizer) stepBeforeAttributeName() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		return true
	case c == '/' || c == '>':
		t.reconsumeIn(AfterAttributeName)
	case c == '=':
		t.parseError("unexpected equals sign before attribute name")
		t.startNewAttr()
		t.curAttrName.PushRune(c)
		t.switchTo(AttributeName)
	default:
		t.startNewAttr()
		t.reconsumeIn(AttributeName)
	}
	return true
}

func (t *Tokenizer) stepAttributeName() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '/' || c == '>':
		t.reconsumeIn(AfterAttributeName)
	case c == '=':
		t.switchTo(BeforeAttributeValue)
	case c == 0:
		t.parseError("unexpected null character")
		t.curAttrName.PushRune('�')
	case isAsciiAlpha(c):
		t.curAttrName.PushString(strings.ToLower(string(c)))
	case c == '"' || c == '\'' || c == '<':
		t.parseError("unexpected character in attribute name")
		t.curAttrName.PushRune(c)
	default:
		t.curAttrName.PushRune(c)
	}
	return true
}

func (t *Tokenizer) stepAfterAttributeName() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		return true
	case c == '/':
		t.switchTo(SelfClosingStartTag)
	case c == '=':
		t.switchTo(BeforeAttributeValue)
	case c == '>':
		t.emitTagAndMaybeRaw()
	default:
		t.startNewAttr()
		t.reconsumeIn(AttributeName)
	}
	return true
}

func (t *Tokenizer) stepBeforeAttributeValue() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		return true
	case c == '"':
		t.switchTo(AttributeValueDoubleQuoted)
	case c == '\'':
		t.switchTo(AttributeValueSingleQuoted)
	case c == '>':
		t.parseError("missing attribute value")
		t.emitTagAndMaybeRaw()
	default:
		t.reconsumeIn(AttributeValueUnquoted)
	}
	return true
}

func (t *Tokenizer) stepAttributeValueQuoted(quote rune) bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == quote:
		t.switchTo(AfterAttributeValueQuoted)
	case c == '&':
		t.startCharacterReference(t.state, true)
	case c == 0:
		t.parseError("unexpected null character")
		t.curAttrValue.PushRune('�')
	default:
		t.curAttrValue.PushRune(c)
	}
	return true
}

func (t *Tokenizer) stepAttributeValueUnquoted() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		t.switchTo(BeforeAttributeName)
	case c == '&':
		t.startCharacterReference(AttributeValueUnquoted, true)
	case c == '>':
		t.emitTagAndMaybeRaw()
	case c == 0:
		t.parseError("unexpected null character")
		t.curAttrValue.PushRune('�')
	case c == '"' || c == '\'' || c == '<' || c == '=' || c == '`':
		t.parseError("unexpected character in unquoted attribute value")
		t.curAttrValue.PushRune(c)
	default:
		t.curAttrValue.PushRune(c)
	}
	return true
}

func (t *Tokenizer) stepAfterAttributeValueQuoted() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f':
		t.switchTo(BeforeAttributeName)
	case c == '/':
		t.switchTo(SelfClosingStartTag)
	case c == '>':
		t.emitTagAndMaybeRaw()
	default:
		t.parseError("missing whitespace between attributes")
		t.reconsumeIn(BeforeAttributeName)
	}
	return true
}

func (t *Tokenizer) stepSelfClosingStartTag() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch c {
	case '>':
		t.tag.SelfClosing = true
		t.emitTagAndMaybeRaw()
	default:
		t.parseError("unexpected solidus in tag")
		t.reconsumeIn(BeforeAttributeName)
	}
	return true
}

func (t *Tokenizer) emitTagAndMaybeRaw() {
	t.emitTag()
	if t.tag.Kind == StartTag {
		if kind, ok := rawKindForTag(t.tag.Name); ok {
			t.rawKind = kind
			t.switchTo(rawKindEntryState(kind))
			return
		}
	}
	t.switchTo(Data)
}

func (t *Tokenizer) stepBogusComment() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch c {
	case '>':
		t.emit(commentToken(t.commentBuf.String()))
		t.switchTo(Data)
	case 0:
		t.parseError("unexpected null character")
		t.commentBuf.PushRune('�')
	default:
		t.commentBuf.PushRune(c)
	}
	return true
}

func (t *Tokenizer) stepMarkupDeclarationOpen() bool {
	if matched, decided := t.q.Eat("--", bufqueue.ByteExactEq); decided {
		if matched {
			t.commentBuf.Reset()
			t.switchTo(CommentStart)
			return true
		}
	} else {
		return false
	}
	if matched, decided := t.q.Eat("doctype", bufqueue.AsciiCaseInsensitiveEq); decided {
		if matched {
			t.switchTo(Doctype)
			return true
		}
	} else {
		return false
	}
	if t.sink.AdjustedCurrentNodePresentButNotInHTMLNamespace() {
		if matched, decided := t.q.Eat("[CDATA[", bufqueue.ByteExactEq); decided {
			if matched {
				t.tempBuf.Reset()
				t.switchTo(CDATASection)
				return true
			}
		} else {
			return false
		}
	}
	t.parseError("incorrectly opened comment")
	t.commentBuf.Reset()
	t.switchTo(BogusComment)
	return true
}
