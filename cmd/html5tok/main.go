// Command html5tok drives the tokenizer from the command line: either
// tokenizing stdin and printing the resulting token stream, or running an
// html5lib-tests-style JSON fixture and diffing actual against expected
// output, trying every chunk split of the input to catch split-sensitivity
// bugs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dewolff-html5/html5tok/bufqueue"
	"github.com/dewolff-html5/html5tok/html5"
	"github.com/dewolff-html5/html5tok/zbuf"
	"github.com/google/go-cmp/cmp"
)

func main() {
	fixture := flag.String("fixture", "", "path to an html5lib-tests tokenizer JSON fixture")
	exactErrors := flag.Bool("exact-errors", false, "match ParseError tokens exactly rather than ignoring them")
	flag.Parse()

	if *fixture == "" {
		if err := tokenizeStdin(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	if err := runFixture(*fixture, *exactErrors); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func tokenizeStdin() error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}
	log := newTokenLogger(false)
	tokenize([]string{string(data)}, html5.Options{}, log)
	for _, tok := range log.tokens {
		fmt.Println(describeToken(tok))
	}
	return nil
}

// ---- chunked-feeding harness ------------------------------------------

// tokenLogger is a Sink that records the token stream, merging adjacent
// character/null-character runs into a single Characters token and
// dropping ParseError tokens unless exactErrors is set, so expected and
// actual streams compare equal regardless of exactly how many ParseError
// tokens a given run emits.
type tokenLogger struct {
	tokens      []html5.Token
	current     []rune
	exactErrors bool
}

func newTokenLogger(exactErrors bool) *tokenLogger {
	return &tokenLogger{exactErrors: exactErrors}
}

func (l *tokenLogger) finishChars() {
	if len(l.current) > 0 {
		l.tokens = append(l.tokens, html5.Token{Kind: html5.CharactersTokenKind, Chars: string(l.current)})
		l.current = nil
	}
}

func (l *tokenLogger) push(tok html5.Token) {
	l.finishChars()
	l.tokens = append(l.tokens, tok)
}

func (l *tokenLogger) ProcessToken(tok html5.Token, line int) html5.TokenSinkResult {
	switch tok.Kind {
	case html5.CharactersTokenKind:
		l.current = append(l.current, []rune(tok.Chars)...)
	case html5.NullCharacterTokenKind:
		l.current = append(l.current, 0)
	case html5.ParseErrorTokenKind:
		if l.exactErrors {
			l.push(html5.Token{Kind: html5.ParseErrorTokenKind})
		}
	case html5.EOFTokenKind:
	case html5.TagTokenKind:
		t := tok.Tag
		if t.Kind == html5.EndTag {
			t.SelfClosing = false
			t.Attrs = nil
		} else {
			sort.Slice(t.Attrs, func(i, j int) bool { return t.Attrs[i].Name < t.Attrs[j].Name })
		}
		tok.Tag = t
		l.push(tok)
	default:
		l.push(tok)
	}
	return html5.ContinueResult()
}

func (l *tokenLogger) AdjustedCurrentNodePresentButNotInHTMLNamespace() bool { return false }

func tokenize(chunks []string, opts html5.Options, sink html5.Sink) {
	tok := html5.New(sink, opts)
	q := bufqueue.New()
	for _, c := range chunks {
		q.PushBack(zbuf.StrBufFromString(c))
		tok.Feed(q)
	}
	tok.Feed(q)
	tok.End(q)
}

func describeToken(tok html5.Token) string {
	switch tok.Kind {
	case html5.CharactersTokenKind:
		return fmt.Sprintf("Character %q", tok.Chars)
	case html5.CommentTokenKind:
		return fmt.Sprintf("Comment %q", tok.Comment)
	case html5.DoctypeTokenKind:
		return fmt.Sprintf("Doctype %+v", tok.Doctype)
	case html5.TagTokenKind:
		return fmt.Sprintf("%s %s %+v", tok.Tag.Kind, tok.Tag.Name, tok.Tag.Attrs)
	case html5.ParseErrorTokenKind:
		return fmt.Sprintf("ParseError %s", tok.Message)
	case html5.EOFTokenKind:
		return "EOF"
	default:
		return fmt.Sprintf("%+v", tok)
	}
}

// ---- fixture runner -----------------------------------------------------

type fixtureFile struct {
	Tests []fixtureTest `json:"tests"`
}

type fixtureTest struct {
	Description    string          `json:"description"`
	Input          string          `json:"input"`
	Output         [][]interface{} `json:"output"`
	InitialStates  []string        `json:"initialStates"`
	LastStartTag   string          `json:"lastStartTag"`
	DoubleEscaped  bool            `json:"doubleEscaped"`
}

func runFixture(path string, exactErrors bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var f fixtureFile
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	failures := 0
	for _, test := range f.Tests {
		input := test.Input
		output := test.Output
		if test.DoubleEscaped {
			unescaped, ok := unescapeString(input)
			if !ok {
				continue // lone surrogate, unrepresentable in our UTF-8 input
			}
			input = unescaped
			output = unescapeOutput(output)
		}
		states := initialStatesFor(test.InitialStates)
		expect := expectedTokens(output, exactErrors)
		for _, state := range states {
			for _, chunks := range splits(input, 3) {
				opts := html5.Options{
					ExactErrors:      exactErrors,
					DiscardBOM:       false,
					LastStartTagName: test.LastStartTag,
					InitialState:     state,
				}
				log := newTokenLogger(exactErrors)
				tokenize(chunks, opts, log)
				if diff := cmp.Diff(expect, log.tokens); diff != "" {
					failures++
					fmt.Printf("FAIL %s: input=%q\n%s\n", test.Description, test.Input, diff)
				}
			}
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d case(s) failed", failures)
	}
	fmt.Println("all fixture cases passed")
	return nil
}

func initialStatesFor(names []string) []*html5.State {
	if len(names) == 0 {
		return []*html5.State{nil}
	}
	out := make([]*html5.State, 0, len(names))
	for _, n := range names {
		s := html5.Data
		switch n {
		case "PLAINTEXT state":
			s = html5.Plaintext
		case "RAWTEXT state":
			s = html5.RAWTEXT
		case "RCDATA state":
			s = html5.RCDATA
		}
		sc := s
		out = append(out, &sc)
	}
	return out
}

// splits returns every way of dividing s into at most n possibly-empty
// pieces at character (not byte) boundaries, dropping empty pieces.
func splits(s string, n int) [][]string {
	bounds := []int{0}
	for i := range s {
		bounds = append(bounds, i)
	}
	bounds = append(bounds, len(s))
	bounds = dedupInts(bounds)

	var out [][]string
	for _, i := range bounds {
		for _, j := range bounds {
			if i > j {
				continue
			}
			chunks := []string{s[:i], s[i:j], s[j:]}
			var nonEmpty []string
			for _, c := range chunks {
				if c != "" {
					nonEmpty = append(nonEmpty, c)
				}
			}
			if len(nonEmpty) == 0 {
				nonEmpty = []string{""}
			}
			if len(nonEmpty) <= n {
				out = append(out, nonEmpty)
			}
		}
	}
	return out
}

func dedupInts(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	var out []int
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	sort.Ints(out)
	return out
}

// expectedTokens replays a fixture's "output" array through a tokenLogger
// so its character-run merging matches what a live run would produce.
func expectedTokens(output [][]interface{}, exactErrors bool) []html5.Token {
	log := newTokenLogger(exactErrors)
	for _, entry := range output {
		if len(entry) == 1 {
			if s, ok := entry[0].(string); ok && s == "ParseError" {
				log.ProcessToken(html5.Token{Kind: html5.ParseErrorTokenKind}, 0)
				continue
			}
		}
		log.ProcessToken(jsonToToken(entry), 0)
	}
	log.finishChars()
	return log.tokens
}

func jsonToToken(parts []interface{}) html5.Token {
	kind, _ := parts[0].(string)
	switch kind {
	case "DOCTYPE":
		return html5.Token{
			Kind: html5.DoctypeTokenKind,
			Doctype: html5.DoctypeToken{
				Name:        nullableString(parts[1]),
				PublicID:    nullableString(parts[2]),
				SystemID:    nullableString(parts[3]),
				ForceQuirks: !asBool(parts[4]),
			},
		}
	case "StartTag":
		var attrs []html5.Attribute
		if m, ok := parts[2].(map[string]interface{}); ok {
			for k, v := range m {
				attrs = append(attrs, html5.Attribute{Name: k, Value: fmt.Sprintf("%v", v)})
			}
			sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
		}
		selfClosing := false
		if len(parts) > 3 {
			selfClosing = asBool(parts[3])
		}
		return html5.Token{Kind: html5.TagTokenKind, Tag: html5.TagToken{
			Kind: html5.StartTag, Name: parts[1].(string), Attrs: attrs, SelfClosing: selfClosing,
		}}
	case "EndTag":
		return html5.Token{Kind: html5.TagTokenKind, Tag: html5.TagToken{
			Kind: html5.EndTag, Name: parts[1].(string),
		}}
	case "Comment":
		return html5.Token{Kind: html5.CommentTokenKind, Comment: parts[1].(string)}
	case "Character":
		return html5.Token{Kind: html5.CharactersTokenKind, Chars: parts[1].(string)}
	default:
		panic(fmt.Sprintf("don't understand token %v", parts))
	}
}

// unescapeString undoes the "\uXXXX" escaping html5lib-tests uses for
// doubleEscaped fixtures. Lone surrogates have no UTF-8 representation and
// signal the caller to skip the case.
func unescapeString(s string) (string, bool) {
	var out []rune
	r := []rune(s)
	for i := 0; i < len(r); i++ {
		if r[i] != '\\' {
			out = append(out, r[i])
			continue
		}
		i++
		if i >= len(r) || r[i] != 'u' {
			panic("can't understand escape in " + s)
		}
		i++
		if i+4 > len(r) {
			return "", false
		}
		var v int64
		if _, err := fmt.Sscanf(string(r[i:i+4]), "%04x", &v); err != nil {
			return "", false
		}
		i += 3
		if v >= 0xD800 && v <= 0xDFFF {
			return "", false
		}
		out = append(out, rune(v))
	}
	return string(out), true
}

func unescapeOutput(output [][]interface{}) [][]interface{} {
	out := make([][]interface{}, len(output))
	for i, entry := range output {
		out[i] = unescapeJSONSlice(entry)
	}
	return out
}

func unescapeJSON(v interface{}) interface{} {
	switch x := v.(type) {
	case string:
		u, ok := unescapeString(x)
		if !ok {
			return x
		}
		return u
	case []interface{}:
		return unescapeJSONSlice(x)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, v := range x {
			out[k] = unescapeJSON(v)
		}
		return out
	default:
		return v
	}
}

func unescapeJSONSlice(xs []interface{}) []interface{} {
	out := make([]interface{}, len(xs))
	for i, x := range xs {
		out[i] = unescapeJSON(x)
	}
	return out
}

func nullableString(v interface{}) *string {
	if v == nil {
		return nil
	}
	s, _ := v.(string)
	return &s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}
