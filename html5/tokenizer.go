package html5

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/dewolff-html5/html5tok/bufqueue"
	"github.com/dewolff-html5/html5tok/entity"
	"github.com/dewolff-html5/html5tok/zbuf"
)

// dataStopSet is the set of characters the Data-state bulk scan cannot
// swallow in one pass: '<', '&', '\r', '\0', '\n'.
var dataStopSet = bufqueue.NewSmallCharSet('<', '&', 0, '\r', '\n')

const bom = rune(0xFEFF)

// Options configures a Tokenizer. InitialState and LastStartTagName exist
// only for test harnesses that need to drop the tokenizer directly into a
// raw-data mode without first feeding the opening tag.
type Options struct {
	ExactErrors      bool
	DiscardBOM       bool
	Profile          bool
	InitialState     *State
	LastStartTagName string
}

// ResultTag discriminates TokenizerResult.
type ResultTag uint8

const (
	Done ResultTag = iota
	ResultScriptTag
)

// TokenizerResult is returned by Feed and End.
type TokenizerResult struct {
	Tag    ResultTag
	Handle string // meaningful when Tag == ResultScriptTag
}

// Tokenizer is the HTML5 tokenizer state machine. It is single-threaded and
// cooperative: Feed drives it until the supplied queue is exhausted or a
// <script> end tag is handed back to the sink for execution.
type Tokenizer struct {
	sink Sink
	opts Options

	q *bufqueue.Queue

	state   State
	rawKind RawKind

	reconsume   bool
	currentChar rune

	discardBOMPending bool
	currentLine       int
	atEOF             bool

	pendingChars   zbuf.StrBuf
	charsStartLine int
	tokenStartLine int

	tag          TagToken
	curAttrName  zbuf.StrBuf
	curAttrValue zbuf.StrBuf
	haveCurAttr  bool

	commentBuf zbuf.StrBuf

	doctypeName            zbuf.StrBuf
	doctypeNamePresent     bool
	doctypePublicID        zbuf.StrBuf
	doctypePublicIDPresent bool
	doctypeSystemID        zbuf.StrBuf
	doctypeSystemIDPresent bool
	doctypeForceQuirks     bool

	tempBuf zbuf.StrBuf

	lastStartTagName string

	charref           *entity.State
	charrefPhase      int
	charrefReturnTo   State
	charrefInAttr     bool
	charrefConsumed   zbuf.StrBuf
	charrefNumericHex bool
	charrefNumValue   uint32
	charrefNumDigits  int

	pendingScriptHandle string

	profile     map[State]time.Duration
	profileSink time.Duration
}

// New returns a Tokenizer ready to process input through sink.
func New(sink Sink, opts Options) *Tokenizer {
	t := &Tokenizer{
		sink:              sink,
		opts:              opts,
		state:             Data,
		currentLine:       1,
		charsStartLine:    1,
		discardBOMPending: opts.DiscardBOM,
		lastStartTagName:  opts.LastStartTagName,
	}
	if opts.InitialState != nil {
		t.state = *opts.InitialState
	}
	if opts.Profile {
		t.profile = make(map[State]time.Duration)
	}
	return t
}

// SetPlaintextState is the external override the tree builder uses after
// parsing <plaintext>.
func (t *Tokenizer) SetPlaintextState() {
	t.state = Plaintext
	t.rawKind = RawPlaintext
}

// Feed runs the state machine against q until it suspends for lack of
// input or a <script> end tag must be handed back to the caller.
func (t *Tokenizer) Feed(q *bufqueue.Queue) TokenizerResult {
	t.q = q
	defer func() { t.q = nil }()
	for {
		if !t.timedStep() {
			return TokenizerResult{Tag: Done}
		}
		if t.pendingScriptHandle != "" {
			h := t.pendingScriptHandle
			t.pendingScriptHandle = ""
			return TokenizerResult{Tag: ResultScriptTag, Handle: h}
		}
	}
}

// timedStep wraps step with per-state profiling when Options.Profile is
// set; otherwise it is a direct call with no timer overhead.
func (t *Tokenizer) timedStep() bool {
	if t.profile == nil {
		return t.step()
	}
	s := t.state
	start := time.Now()
	ok := t.step()
	t.profile[s] += time.Since(start)
	return ok
}

// End signals end of input: it drains any in-flight character reference,
// lets the main loop run to completion against the (now permanently
// exhausted) queue, emits whatever the current state's EOF handling
// requires, and finally emits the EOF token.
func (t *Tokenizer) End(q *bufqueue.Queue) TokenizerResult {
	t.q = q
	defer func() { t.q = nil }()
	t.atEOF = true
	for t.timedStep() {
		if t.pendingScriptHandle != "" {
			h := t.pendingScriptHandle
			t.pendingScriptHandle = ""
			return TokenizerResult{Tag: ResultScriptTag, Handle: h}
		}
	}
	t.runEOFTable()
	t.flushChars()
	t.emitAtLine(eofToken(), t.currentLine)
	if t.profile != nil {
		t.printProfile()
	}
	return TokenizerResult{Tag: Done}
}

// printProfile reports cumulative per-state and per-sink-call time to
// stderr, most expensive state first. Only called when Options.Profile is
// set.
func (t *Tokenizer) printProfile() {
	states := make([]State, 0, len(t.profile))
	for s := range t.profile {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return t.profile[states[i]] > t.profile[states[j]] })
	fmt.Fprintln(os.Stderr, "html5 tokenizer profile:")
	for _, s := range states {
		fmt.Fprintf(os.Stderr, "  %-32s %v\n", s, t.profile[s])
	}
	fmt.Fprintf(os.Stderr, "  %-32s %v\n", "(sink calls)", t.profileSink)
}

// ---- character I/O ----------------------------------------------------

func (t *Tokenizer) readChar() (rune, bool) {
	if t.reconsume {
		t.reconsume = false
		return t.currentChar, true
	}
	c, ok := t.q.Next()
	if !ok {
		if t.atEOF {
			return 0, false
		}
		return 0, false
	}
	if t.discardBOMPending {
		t.discardBOMPending = false
		if c == bom {
			c, ok = t.q.Next()
			if !ok {
				return 0, false
			}
		}
	}
	if c == '\r' {
		if nc, ok2 := t.q.Peek(); ok2 && nc == '\n' {
			t.q.Next()
		}
		c = '\n'
	}
	t.currentChar = c
	if c == '\n' {
		t.currentLine++
	}
	return c, true
}

func (t *Tokenizer) reconsumeIn(s State) {
	t.reconsume = true
	t.state = s
}

func (t *Tokenizer) switchTo(s State) {
	t.state = s
}

// ---- token emission -----------------------------------------------------

func (t *Tokenizer) beginCharsRun() {
	if t.pendingChars.IsEmpty() {
		t.charsStartLine = t.currentLine
	}
}

func (t *Tokenizer) flushChars() {
	if t.pendingChars.IsEmpty() {
		return
	}
	text := t.pendingChars.String()
	t.pendingChars.Reset()
	t.emitAtLine(charactersToken(text), t.charsStartLine)
}

func (t *Tokenizer) emit(tok Token) {
	t.emitAtLine(tok, t.tokenStartLine)
}

func (t *Tokenizer) emitAtLine(tok Token, line int) {
	var start time.Time
	if t.profile != nil {
		start = time.Now()
	}
	result := t.sink.ProcessToken(tok, line)
	if t.profile != nil {
		t.profileSink += time.Since(start)
	}
	switch result.Kind {
	case Continue:
	case ResultPlaintext:
		t.state = Plaintext
		t.rawKind = RawPlaintext
	case ResultScript:
		t.pendingScriptHandle = result.Handle
		if t.pendingScriptHandle == "" {
			t.pendingScriptHandle = "script"
		}
		t.state = Data
	case ResultRawData:
		t.rawKind = result.Raw
		t.state = rawKindEntryState(result.Raw)
	}
}

func rawKindEntryState(k RawKind) State {
	switch k {
	case RawRcdata:
		return RCDATA
	case RawRawtext:
		return RAWTEXT
	case RawScriptData:
		return ScriptData
	case RawPlaintext:
		return Plaintext
	default:
		return RAWTEXT
	}
}

func (t *Tokenizer) parseError(message string) {
	t.flushChars()
	if t.opts.ExactErrors {
		message = message + " at " + strconv.Itoa(t.currentLine)
	}
	t.emitAtLine(parseErrorToken(message), t.currentLine)
}

func (t *Tokenizer) emitChar(c rune) {
	t.beginCharsRun()
	t.pendingChars.PushRune(c)
}

func (t *Tokenizer) emitNullChar() {
	t.flushChars()
	t.emitAtLine(nullCharacterToken(), t.currentLine)
}

// ---- tag construction ---------------------------------------------------

func (t *Tokenizer) discardTag(kind TagKind) {
	t.tag = TagToken{Kind: kind}
	t.haveCurAttr = false
}

func (t *Tokenizer) startNewAttr() {
	t.finishAttr()
	t.curAttrName.Reset()
	t.curAttrValue.Reset()
	t.haveCurAttr = true
}

func (t *Tokenizer) finishAttr() {
	if !t.haveCurAttr {
		return
	}
	t.haveCurAttr = false
	name := t.curAttrName.String()
	for _, a := range t.tag.Attrs {
		if a.Name == name {
			t.parseError("duplicate attribute")
			return
		}
	}
	t.tag.Attrs = append(t.tag.Attrs, Attribute{Name: name, Value: t.curAttrValue.String()})
}

func (t *Tokenizer) emitTag() {
	t.finishAttr()
	if t.tag.Kind == EndTag {
		if len(t.tag.Attrs) > 0 {
			t.parseError("end tag with attributes")
		}
		if t.tag.SelfClosing {
			t.parseError("end tag with trailing solidus")
		}
	}
	if t.tag.Kind == StartTag {
		t.lastStartTagName = t.tag.Name
	}
	t.flushChars()
	t.emit(tagToken(t.tag))
}

func (t *Tokenizer) isAppropriateEndTag() bool {
	return t.tag.Kind == EndTag && t.tag.Name == t.lastStartTagName && t.lastStartTagName != ""
}

// ---- main dispatch --------------------------------------------------------

// step advances the state machine by one unit of work (one character, or
// one bulk scan). It returns false exactly when the queue cannot currently
// supply what the state needs, suspending until more input arrives.
func (t *Tokenizer) step() bool {
	switch t.state {
	case Data:
		return t.stepData()
	case RCDATA, RAWTEXT, ScriptData, Plaintext:
		return t.stepRawData()
	case TagOpen:
		return t.stepTagOpen()
	case EndTagOpen:
		return t.stepEndTagOpen()
	case TagName:
		return t.stepTagName()
	case RawLessThanSign:
		return t.stepRawLessThanSign()
	case RawEndTagOpen:
		return t.stepRawEndTagOpen()
	case RawEndTagName:
		return t.stepRawEndTagName()
	case ScriptDataEscapeStart:
		return t.stepScriptDataEscapeStart()
	case ScriptDataEscapeStartDash:
		return t.stepScriptDataEscapeStartDash()
	case ScriptDataEscaped:
		return t.stepScriptDataEscaped()
	case ScriptDataEscapedDash:
		return t.stepScriptDataEscapedDash()
	case ScriptDataEscapedDashDash:
		return t.stepScriptDataEscapedDashDash()
	case ScriptDataEscapedLessThanSign:
		return t.stepScriptDataEscapedLessThanSign()
	case ScriptDataEscapedEndTagOpen:
		return t.stepScriptDataEscapedEndTagOpen()
	case ScriptDataEscapedEndTagName:
		return t.stepScriptDataEscapedEndTagName()
	case ScriptDataDoubleEscapeStart:
		return t.stepScriptDataDoubleEscapeStart()
	case ScriptDataDoubleEscaped:
		return t.stepScriptDataDoubleEscaped()
	case ScriptDataDoubleEscapedDash:
		return t.stepScriptDataDoubleEscapedDash()
	case ScriptDataDoubleEscapedDashDash:
		return t.stepScriptDataDoubleEscapedDashDash()
	case ScriptDataDoubleEscapedLessThanSign:
		return t.stepScriptDataDoubleEscapedLessThanSign()
	case ScriptDataDoubleEscapeEnd:
		return t.stepScriptDataDoubleEscapeEnd()
	case BeforeAttributeName:
		return t.stepBeforeAttributeName()
	case AttributeName:
		return t.stepAttributeName()
	case AfterAttributeName:
		return t.stepAfterAttributeName()
	case BeforeAttributeValue:
		return t.stepBeforeAttributeValue()
	case AttributeValueDoubleQuoted:
		return t.stepAttributeValueQuoted('"')
	case AttributeValueSingleQuoted:
		return t.stepAttributeValueQuoted('\'')
	case AttributeValueUnquoted:
		return t.stepAttributeValueUnquoted()
	case AfterAttributeValueQuoted:
		return t.stepAfterAttributeValueQuoted()
	case SelfClosingStartTag:
		return t.stepSelfClosingStartTag()
	case BogusComment:
		return t.stepBogusComment()
	case MarkupDeclarationOpen:
		return t.stepMarkupDeclarationOpen()
	case CommentStart:
		return t.stepCommentStart()
	case CommentStartDash:
		return t.stepCommentStartDash()
	case Comment:
		return t.stepComment()
	case CommentLessThanSign:
		return t.stepCommentLessThanSign()
	case CommentLessThanSignBang:
		return t.stepCommentLessThanSignBang()
	case CommentLessThanSignBangDash:
		return t.stepCommentLessThanSignBangDash()
	case CommentLessThanSignBangDashDash:
		return t.stepCommentLessThanSignBangDashDash()
	case CommentEndDash:
		return t.stepCommentEndDash()
	case CommentEnd:
		return t.stepCommentEnd()
	case CommentEndBang:
		return t.stepCommentEndBang()
	case Doctype:
		return t.stepDoctype()
	case BeforeDoctypeName:
		return t.stepBeforeDoctypeName()
	case DoctypeName:
		return t.stepDoctypeName()
	case AfterDoctypeName:
		return t.stepAfterDoctypeName()
	case AfterDoctypePublicKeyword:
		return t.stepAfterDoctypePublicKeyword()
	case BeforeDoctypePublicIdentifier:
		return t.stepBeforeDoctypePublicIdentifier()
	case DoctypePublicIdentifierDoubleQuoted:
		return t.stepDoctypePublicIdentifierQuoted('"')
	case DoctypePublicIdentifierSingleQuoted:
		return t.stepDoctypePublicIdentifierQuoted('\'')
	case AfterDoctypePublicIdentifier:
		return t.stepAfterDoctypePublicIdentifier()
	case BetweenDoctypePublicAndSystemIdentifiers:
		return t.stepBetweenDoctypePublicAndSystemIdentifiers()
	case AfterDoctypeSystemKeyword:
		return t.stepAfterDoctypeSystemKeyword()
	case BeforeDoctypeSystemIdentifier:
		return t.stepBeforeDoctypeSystemIdentifier()
	case DoctypeSystemIdentifierDoubleQuoted:
		return t.stepDoctypeSystemIdentifierQuoted('"')
	case DoctypeSystemIdentifierSingleQuoted:
		return t.stepDoctypeSystemIdentifierQuoted('\'')
	case AfterDoctypeSystemIdentifier:
		return t.stepAfterDoctypeSystemIdentifier()
	case BogusDoctype:
		return t.stepBogusDoctype()
	case CDATASection:
		return t.stepCDATASection()
	case CDATASectionBracket:
		return t.stepCDATASectionBracket()
	case CDATASectionEnd:
		return t.stepCDATASectionEnd()
	case CharacterReference:
		return t.stepCharacterReference()
	}
	return false
}
