package html5

import (
	"testing"

	"github.com/dewolff-html5/html5tok/bufqueue"
	"github.com/dewolff-html5/html5tok/zbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedToken is a flattened, comparable projection of Token, used so
// test expectations can be written as plain struct literals instead of
// reaching into Token's union fields by hand.
type recordedToken struct {
	Kind        TokenKind
	Line        int
	Name        string
	Attrs       []Attribute
	Text        string
	Message     string
	PublicID    *string
	SystemID    *string
	ForceQuirks bool
}

// recordingSink implements Sink by appending every token it sees, in
// order, with the line it was reported at. It never requests a state
// override, so raw-data modes must be driven via Options.InitialState.
type recordingSink struct {
	tokens []recordedToken
}

func (s *recordingSink) ProcessToken(tok Token, line int) TokenSinkResult {
	r := recordedToken{Kind: tok.Kind, Line: line}
	switch tok.Kind {
	case TagTokenKind:
		r.Name = tok.Tag.Name
		r.Attrs = tok.Tag.Attrs
		if tok.Tag.Kind == EndTag {
			r.Text = "end"
		} else {
			r.Text = "start"
		}
	case CommentTokenKind:
		r.Text = tok.Comment
	case CharactersTokenKind:
		r.Text = tok.Chars
	case ParseErrorTokenKind:
		r.Message = tok.Message
	case DoctypeTokenKind:
		if tok.Doctype.Name != nil {
			r.Name = *tok.Doctype.Name
		}
		r.PublicID = tok.Doctype.PublicID
		r.SystemID = tok.Doctype.SystemID
		r.ForceQuirks = tok.Doctype.ForceQuirks
	}
	s.tokens = append(s.tokens, r)
	return ContinueResult()
}

func (s *recordingSink) AdjustedCurrentNodePresentButNotInHTMLNamespace() bool {
	return false
}

// runWhole feeds input to a fresh tokenizer in a single chunk and runs it
// to EOF.
func runWhole(t *testing.T, input string, opts Options) []recordedToken {
	t.Helper()
	sink := &recordingSink{}
	tok := New(sink, opts)
	q := bufqueue.New()
	q.PushBack(zbuf.StrBufFromString(input))
	require.Equal(t, TokenizerResult{Tag: Done}, tok.Feed(q))
	require.Equal(t, TokenizerResult{Tag: Done}, tok.End(q))
	return sink.tokens
}

// runSplit feeds input across len(parts) chunks, one Feed call per chunk,
// then End.
func runSplit(t *testing.T, parts []string, opts Options) []recordedToken {
	t.Helper()
	sink := &recordingSink{}
	tok := New(sink, opts)
	q := bufqueue.New()
	for _, p := range parts {
		q.PushBack(zbuf.StrBufFromString(p))
		require.Equal(t, TokenizerResult{Tag: Done}, tok.Feed(q))
	}
	require.Equal(t, TokenizerResult{Tag: Done}, tok.End(q))
	return sink.tokens
}

// allSplits returns every way of cutting s into at most n non-empty
// pieces in order, plus the whole string as a single piece, used to check
// that feeding input in arbitrary chunks never changes the token stream.
func allSplits(s string, n int) [][]string {
	if n <= 1 || len(s) < 2 {
		return [][]string{{s}}
	}
	var out [][]string
	runes := []rune(s)
	for cut := 1; cut < len(runes); cut++ {
		head := string(runes[:cut])
		for _, rest := range allSplits(string(runes[cut:]), n-1) {
			out = append(out, append([]string{head}, rest...))
		}
	}
	out = append(out, []string{s})
	return out
}

func TestLineTrackingLF(t *testing.T) {
	got := runWhole(t, "<a>\n<b>\n</b>\n</a>\n", Options{})
	want := []recordedToken{
		{Kind: TagTokenKind, Line: 1, Name: "a", Text: "start"},
		{Kind: CharactersTokenKind, Line: 1, Text: "\n"},
		{Kind: TagTokenKind, Line: 2, Name: "b", Text: "start"},
		{Kind: CharactersTokenKind, Line: 2, Text: "\n"},
		{Kind: TagTokenKind, Line: 3, Name: "b", Text: "end"},
		{Kind: CharactersTokenKind, Line: 3, Text: "\n"},
		{Kind: TagTokenKind, Line: 4, Name: "a", Text: "end"},
		{Kind: CharactersTokenKind, Line: 4, Text: "\n"},
		{Kind: EOFTokenKind, Line: 5},
	}
	assert.Equal(t, want, got)
}

func TestLineTrackingCRLF(t *testing.T) {
	lf := runWhole(t, "<a>\n<b>\n</b>\n</a>\n", Options{})
	crlf := runWhole(t, "<a>\r\n<b>\r\n</b>\r\n</a>\r\n", Options{})
	assert.Equal(t, lf, crlf)
}

func TestCRLFNormalization(t *testing.T) {
	for _, tc := range []string{"\r\n", "\r", "\n"} {
		got := runWhole(t, "a"+tc+"b", Options{})
		require.Len(t, got, 2)
		assert.Equal(t, "a\nb", got[0].Text)
		assert.Equal(t, EOFTokenKind, got[1].Kind)
	}
}

func TestAmpAmpSemicolon(t *testing.T) {
	got := runWhole(t, "&amp;", Options{})
	require.Len(t, got, 2)
	assert.Equal(t, CharactersTokenKind, got[0].Kind)
	assert.Equal(t, "&", got[0].Text)
}

func TestAmpAmpMissingSemicolon(t *testing.T) {
	got := runWhole(t, "&amp", Options{})
	var chars, errs []recordedToken
	for _, tok := range got {
		switch tok.Kind {
		case CharactersTokenKind:
			chars = append(chars, tok)
		case ParseErrorTokenKind:
			errs = append(errs, tok)
		}
	}
	require.Len(t, chars, 1)
	assert.Equal(t, "&", chars[0].Text)
	require.Len(t, errs, 1)
}

func TestNamedReferenceNotin(t *testing.T) {
	got := runWhole(t, "&notin;", Options{})
	require.Len(t, got, 2)
	assert.Equal(t, "∉", got[0].Text)
}

func TestNamedReferenceDeadEndOrdering(t *testing.T) {
	got := runWhole(t, "&notit;", Options{})
	var chars []string
	var sawErr bool
	for _, tok := range got {
		switch tok.Kind {
		case CharactersTokenKind:
			chars = append(chars, tok.Text)
		case ParseErrorTokenKind:
			sawErr = true
		}
	}
	assert.Equal(t, []string{"¬it;"}, chars)
	assert.True(t, sawErr, "expected a missing-semicolon parse error")
}

func TestCommentAbruptClosingDashBang(t *testing.T) {
	got := runWhole(t, "<!--x--!>y", Options{})
	var comment recordedToken
	var foundComment, foundErr bool
	var chars string
	for _, tok := range got {
		switch tok.Kind {
		case CommentTokenKind:
			comment, foundComment = tok, true
		case ParseErrorTokenKind:
			foundErr = true
		case CharactersTokenKind:
			chars += tok.Text
		}
	}
	require.True(t, foundComment)
	assert.Equal(t, "x", comment.Text)
	assert.True(t, foundErr)
	assert.Equal(t, "y", chars)
}

func TestScriptDataAppropriateEndTag(t *testing.T) {
	got := runWhole(t, "<script>a<b</script>c", Options{})
	var chars string
	for _, tok := range got {
		if tok.Kind == CharactersTokenKind {
			chars += tok.Text
		}
	}
	// start(script), characters("a<b"), end(script), character('c'), EOF
	require.GreaterOrEqual(t, len(got), 4)
	assert.Equal(t, TagTokenKind, got[0].Kind)
	assert.Equal(t, "script", got[0].Name)
	assert.Equal(t, "start", got[0].Text)
	assert.Equal(t, "a<bc", chars)

	last := got[len(got)-3]
	assert.Equal(t, TagTokenKind, last.Kind)
	assert.Equal(t, "script", last.Name)
	assert.Equal(t, "end", last.Text)
}

func TestAppropriateEndTagIgnoresMismatch(t *testing.T) {
	// </bar> inside a raw-data mode opened by <foo> does not close it: the
	// text is treated as literal RAWTEXT characters, not markup.
	initial := RAWTEXT
	got := runWhole(t, "<foo></bar></foo>", Options{
		InitialState:     &initial,
		LastStartTagName: "foo",
	})
	var endTags []string
	for _, tok := range got {
		if tok.Kind == TagTokenKind && tok.Text == "end" {
			endTags = append(endTags, tok.Name)
		}
	}
	assert.Equal(t, []string{"foo"}, endTags)
}

func TestSplitInvariance(t *testing.T) {
	inputs := []string{
		"<a href=\"x\">hi</a>",
		"&notin;&amp;text",
		"<!--c--><p>hello<b>world</b></p>",
		`<!DOCTYPE html PUBLIC "x">`,
	}
	for _, in := range inputs {
		whole := runWhole(t, in, Options{})
		for _, parts := range allSplits(in, 3) {
			got := runSplit(t, parts, Options{})
			assert.Equal(t, whole, got, "split %v of %q diverged", parts, in)
		}
	}
}

// TestDoctypePublicKeywordSplitAcrossChunks pins down the exact regression
// scenario of a chunk boundary landing inside the "PUBLIC" keyword: the
// tokenizer must recognize it exactly as it would unsplit, not lose the
// already-read lookahead character and fall into BogusDoctype.
func TestDoctypePublicKeywordSplitAcrossChunks(t *testing.T) {
	whole := runWhole(t, `<!DOCTYPE html PUBLIC "x">`, Options{})
	split := runSplit(t, []string{`<!DOCTYPE html P`, `UBLIC "x">`}, Options{})
	assert.Equal(t, whole, split)

	require.Len(t, whole, 2)
	assert.Equal(t, DoctypeTokenKind, whole[0].Kind)
	assert.Equal(t, "html", whole[0].Name)
	require.NotNil(t, whole[0].PublicID)
	assert.Equal(t, "x", *whole[0].PublicID)
	assert.False(t, whole[0].ForceQuirks)
}

// TestDuplicateAttributeErrorTiming pins down that a duplicate attribute is
// reported once its *value* (not its name) is finalized.
func TestDuplicateAttributeErrorTiming(t *testing.T) {
	got := runWhole(t, `<a x="1" x="2">`, Options{})
	var sawErr, sawTag bool
	for _, tok := range got {
		if tok.Kind == ParseErrorTokenKind {
			sawErr = true
		}
		if tok.Kind == TagTokenKind {
			sawTag = true
			require.Len(t, tok.Attrs, 1)
			assert.Equal(t, "1", tok.Attrs[0].Value)
		}
	}
	assert.True(t, sawErr)
	assert.True(t, sawTag)
}

// TestCDATASectionFlush checks that the CDATA accumulation buffer is
// cleared once its text token is emitted, so two sections back to back
// never bleed into each other.
func TestCDATASectionFlush(t *testing.T) {
	adjusted := &recordingSinkCDATA{}
	tok := New(adjusted, Options{})
	q := bufqueue.New()
	q.PushBack(zbuf.StrBufFromString("<![CDATA[one]]><![CDATA[two]]>"))
	tok.Feed(q)
	tok.End(q)
	var texts []string
	for _, tk := range adjusted.tokens {
		if tk.Kind == CharactersTokenKind {
			texts = append(texts, tk.Text)
		}
	}
	assert.Equal(t, []string{"one", "two"}, texts)
}

type recordingSinkCDATA struct {
	recordingSink
}

func (s *recordingSinkCDATA) AdjustedCurrentNodePresentButNotInHTMLNamespace() bool {
	return true
}
