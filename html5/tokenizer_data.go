package html5

// stepData implements the Data state, including the bulk scan: it pulls
// either one "interesting" character or a whole run of plain text at once
// from the buffer queue.
func (t *Tokenizer) stepData() bool {
	t.beginCharsRun()
	res, ok := t.q.PopExceptFrom(dataStopSet)
	if !ok {
		return false
	}
	if !res.FromSet {
		// res.Block shares its backing allocation with the queue buffer it
		// was carved from; coalescing it directly into pendingChars keeps
		// the run zero-copy instead of forcing it through a string copy.
		t.pendingChars.PushBuf(&res.Block)
		res.Block.Release()
		return true
	}
	switch res.Char {
	case '<':
		t.flushChars()
		t.tokenStartLine = t.currentLine
		t.switchTo(TagOpen)
	case '&':
		t.startCharacterReference(Data, false)
	case '\r':
		if nc, ok2 := t.q.Peek(); ok2 && nc == '\n' {
			t.q.Next()
		}
		t.emitChar('\n')
		t.currentLine++
	case 0:
		t.parseError("unexpected null character")
		t.emitChar(0xFFFD)
	case '\n':
		t.emitChar('\n')
		t.currentLine++
	default:
		t.emitChar(res.Char)
	}
	return true
}

// stepRawData implements RCDATA, RAWTEXT, ScriptData and Plaintext: a
// character-at-a-time scan (no bulk path — only Data gets the SIMD
// scanner) that watches for '<' (possible end tag) and, for RCDATA only,
// '&' (character reference).
func (t *Tokenizer) stepRawData() bool {
	c, ok := t.readChar()
	if !ok {
		return false
	}
	switch {
	case c == '<' && t.state != Plaintext:
		t.tokenStartLine = t.currentLine
		switch t.state {
		case RCDATA:
			t.rawKind = RawRcdata
			t.switchTo(RawLessThanSign)
		case RAWTEXT:
			t.rawKind = RawRawtext
			t.switchTo(RawLessThanSign)
		case ScriptData:
			t.rawKind = RawScriptData
			t.switchTo(RawLessThanSign)
		}
	case c == '&' && t.state == RCDATA:
		t.startCharacterReference(RCDATA, false)
	case c == 0:
		t.parseError("unexpected null character")
		t.emitChar(0xFFFD)
	default:
		t.emitChar(c)
	}
	return true
}
