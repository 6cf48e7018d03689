package entity

import "sort"

// sharedAutomaton is built once, at package initialization, by feeding
// entityTable's keys (in sorted order, as Builder.Insert requires) through
// the same Builder the offline DAFSA generator uses, so the online
// traversal below and the offline perfect hash agree by construction.
var (
	sharedAutomaton  *Automaton
	entityExpansions [][2]rune
)

func init() {
	names := make([]string, 0, len(entityTable))
	for name := range entityTable {
		names = append(names, name)
	}
	sort.Strings(names)

	b := NewBuilder()
	for _, name := range names {
		b.Insert(name)
	}
	b.Finish()

	entityExpansions = make([][2]rune, len(names))
	for _, name := range names {
		idx, ok := b.GetUniqueIndex(name)
		if !ok {
			panic("entity: built automaton rejects one of its own names: " + name)
		}
		entityExpansions[idx] = entityTable[name]
	}
	sharedAutomaton = b.Frozen()
}

// MatchResult describes a named character reference recognized by State.
type MatchResult struct {
	// Scalars holds the expansion; Scalars[1] is 0 when the reference
	// expands to a single code point.
	Scalars [2]rune
	// ScalarCount is 1 or 2.
	ScalarCount int
	// Length is the number of bytes of the name (not counting the leading
	// '&') that were part of the match.
	Length int
	// EndsWithSemicolon is false for a legacy reference matched without its
	// optional trailing ';'. The tokenizer's character-reference state uses
	// this, together with the next input character and whether it is
	// currently consuming inside an attribute value, to decide two things
	// this package intentionally leaves to the caller: the "missing
	// semicolon" parse error, and the attribute-context flush-without-expand
	// rule (ambiguous ampersand followed by '=' or an alphanumeric is left
	// untouched inside an attribute value).
	EndsWithSemicolon bool
	// Reconsume is the number of characters fed to State after the match
	// point that the caller must push back (unconsume) onto its input,
	// since they were speculatively consumed looking for a longer match.
	Reconsume int
}

// State is the online named-character-reference matcher: feed it the
// characters following '&' one at a time and it tracks the automaton
// traversal, remembering the longest terminal (complete, valid reference)
// seen so far, exactly as NamedReferenceTokenizerState does in
// html_named_entities/src/tokenizer.rs.
type State struct {
	node          int
	hash          int
	name          []byte
	matchLen      int
	matchHash     int
	matchTerminal bool
}

// NewState returns a State positioned at the automaton root, ready to
// consume the first character after '&'.
func NewState() *State {
	return &State{node: sharedAutomaton.Root()}
}

// FeedCharacter advances the automaton by one byte. It returns false once c
// cannot extend any named reference (a dead end); the caller must then call
// FinishMatch (c itself was not consumed into the match and should be
// reconsidered by the caller) and stop feeding this State. Reference names
// consist only of ASCII letters, digits and ';', so c is a plain byte.
func (s *State) FeedCharacter(c byte) bool {
	next, terminal, delta, ok := sharedAutomaton.Step(s.node, c)
	if !ok {
		return false
	}
	s.node = next
	s.hash += delta
	s.name = append(s.name, c)
	if terminal {
		s.matchLen = len(s.name)
		// The running sum counts the match's own terminal node, so its
		// slot in entityExpansions is one less.
		s.matchHash = s.hash - 1
		s.matchTerminal = true
	}
	return true
}

// FinishMatch is called once FeedCharacter returns false, or once the
// caller otherwise decides to stop feeding (e.g. end of file). It reports
// the longest reference matched, if any.
func (s *State) FinishMatch() (MatchResult, bool) {
	if !s.matchTerminal {
		return MatchResult{}, false
	}
	exp := entityExpansions[s.matchHash]
	count := 1
	if exp[1] != 0 {
		count = 2
	}
	return MatchResult{
		Scalars:           exp,
		ScalarCount:       count,
		Length:            s.matchLen,
		EndsWithSemicolon: s.name[s.matchLen-1] == ';',
		Reconsume:         len(s.name) - s.matchLen,
	}, true
}

// NotifyEndOfFile behaves like FinishMatch, for the case where input ended
// before a dead end was reached.
func (s *State) NotifyEndOfFile() (MatchResult, bool) {
	return s.FinishMatch()
}
