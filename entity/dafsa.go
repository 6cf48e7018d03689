// Package entity implements the named-character-reference resolver: an
// offline DAFSA builder that accumulates a minimal perfect hash over the
// WHATWG named-entity table, and an online traversal that consumes
// characters one at a time and reports the matched expansion.
package entity

import "sort"

// node is one state of the built automaton: which ASCII code points it has
// transitions for, whether it is an accepting (terminal) state, and its
// perfect-hash contribution (the number of terminal descendants of its
// subtree, including itself if terminal).
type node struct {
	children   map[byte]int // code point -> child node index
	isTerminal bool
	numNodes   int
}

// Builder incrementally constructs a DAFSA from names inserted in sorted
// order, minimizing (deduplicating identical sub-automata) as it goes. This
// is a direct port of the incremental-minimization algorithm described at
// https://stevehanov.ca/blog/?id=115.
type Builder struct {
	previousWord         string
	nodes                []node
	uncheckedTransitions []transition
	minimizedNodes       []int
}

type transition struct {
	from      int
	codePoint byte
	to        int
}

// NewBuilder returns a Builder with just a root node allocated.
func NewBuilder() *Builder {
	return &Builder{nodes: []node{{children: map[byte]int{}}}}
}

func (b *Builder) allocateNode() int {
	b.nodes = append(b.nodes, node{children: map[byte]int{}})
	return len(b.nodes) - 1
}

// Insert adds newWord to the automaton. Words must be inserted in strictly
// increasing lexicographic order.
func (b *Builder) Insert(newWord string) {
	if newWord <= b.previousWord && b.previousWord != "" {
		panic("entity: words must be inserted in sorted order")
	}

	commonPrefixLen := 0
	minLen := len(newWord)
	if len(b.previousWord) < minLen {
		minLen = len(b.previousWord)
	}
	for commonPrefixLen < minLen && newWord[commonPrefixLen] == b.previousWord[commonPrefixLen] {
		commonPrefixLen++
	}

	b.minimize(commonPrefixLen)

	nodeHandle := 0
	if len(b.uncheckedTransitions) > 0 {
		nodeHandle = b.uncheckedTransitions[len(b.uncheckedTransitions)-1].to
	}

	for i := commonPrefixLen; i < len(newWord); i++ {
		codePoint := newWord[i]
		if _, exists := b.nodes[nodeHandle].children[codePoint]; exists {
			panic("entity: should have found a longer common prefix")
		}
		child := b.allocateNode()
		b.nodes[nodeHandle].children[codePoint] = child
		b.uncheckedTransitions = append(b.uncheckedTransitions, transition{from: nodeHandle, codePoint: codePoint, to: child})
		nodeHandle = child
	}

	b.nodes[nodeHandle].isTerminal = true
	b.previousWord = newWord
}

// minimize checks the unchecked transitions from the end down to downTo,
// folding any subtree that is equal to an already-minimized one onto that
// existing node instead of keeping a duplicate.
func (b *Builder) minimize(downTo int) {
	for len(b.uncheckedTransitions) > downTo {
		last := len(b.uncheckedTransitions) - 1
		tr := b.uncheckedTransitions[last]
		b.uncheckedTransitions = b.uncheckedTransitions[:last]

		found := -1
		for _, existing := range b.minimizedNodes {
			if b.subtreesEqual(existing, tr.to) {
				found = existing
				break
			}
		}
		if found >= 0 {
			b.nodes[tr.from].children[tr.codePoint] = found
		} else {
			b.minimizedNodes = append(b.minimizedNodes, tr.to)
		}
	}
}

func (b *Builder) subtreesEqual(first, second int) bool {
	if first == second {
		return true
	}
	a, c := &b.nodes[first], &b.nodes[second]
	if a.isTerminal != c.isTerminal || len(a.children) != len(c.children) {
		return false
	}
	for cp, ai := range a.children {
		ci, ok := c.children[cp]
		if !ok {
			return false
		}
		if !b.subtreesEqual(ai, ci) {
			return false
		}
	}
	return true
}

// Finish flushes any remaining unchecked transitions (equivalent to a final
// minimize down to the root) and computes the perfect-hash numbers. Call it
// once after the last Insert.
func (b *Builder) Finish() {
	b.minimize(0)
	var compute func(int)
	computed := make([]bool, len(b.nodes))
	compute = func(i int) {
		if computed[i] {
			return
		}
		computed[i] = true
		n := &b.nodes[i]
		if n.isTerminal {
			n.numNodes++
		}
		// Deterministic order matters: GetUniqueIndex sums contributions
		// from siblings with a smaller code point than the matched one, so
		// computing children in ascending code-point order keeps num_nodes
		// independent of Go's unordered map iteration.
		for _, cp := range sortedKeys(n.children) {
			child := n.children[cp]
			compute(child)
			n.numNodes += b.nodes[child].numNodes
		}
	}
	compute(0)
}

func sortedKeys(m map[byte]int) []byte {
	keys := make([]byte, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// GetUniqueIndex returns the perfect-hash value of input, and true if input
// is accepted by the automaton. Hashing sums, at each step, the num_nodes of
// every sibling transition with a smaller code point than the one taken,
// then adds one whenever the traversal passes through a terminal node. The
// returned value is that sum minus one, so the N accepted words map onto
// 0..N-1.
func (b *Builder) GetUniqueIndex(input string) (int, bool) {
	index := 0
	current := 0
	for i := 0; i < len(input); i++ {
		cp := input[i]
		next, ok := b.nodes[current].children[cp]
		if !ok {
			return 0, false
		}
		for _, siblingCP := range sortedKeys(b.nodes[current].children) {
			if siblingCP >= cp {
				break
			}
			index += b.nodes[b.nodes[current].children[siblingCP]].numNodes
		}
		current = next
		if b.nodes[current].isTerminal {
			index++
		}
	}
	if !b.nodes[current].isTerminal {
		return 0, false
	}
	return index - 1, true
}

// NodeCount returns the number of nodes in the built automaton, mostly
// useful for tests and diagnostics.
func (b *Builder) NodeCount() int { return len(b.nodes) }

// Frozen returns an immutable traversal table suitable for the online
// resolver: for each (node, code point) pair it can answer "is there a
// child, is that child terminal, and what is the running hash delta of
// taking that edge".
func (b *Builder) Frozen() *Automaton {
	return &Automaton{nodes: b.nodes}
}

// Automaton is the frozen node table produced by Builder.Frozen, consumed
// by the online resolver (resolver.go). Step sorts a node's child code
// points on every call, so each step allocates a small slice.
type Automaton struct {
	nodes []node
}

// Root is the automaton's start state.
func (a *Automaton) Root() int { return 0 }

// Step attempts to follow the edge labeled cp from node idx. It reports the
// destination node, whether that destination is terminal, the hash delta
// contributed by taking this edge (the sum of every smaller sibling's
// num_nodes, plus one if the destination is terminal), and whether the edge
// exists at all.
func (a *Automaton) Step(idx int, cp byte) (next int, terminal bool, hashDelta int, ok bool) {
	n := &a.nodes[idx]
	child, exists := n.children[cp]
	if !exists {
		return 0, false, 0, false
	}
	delta := 0
	for _, siblingCP := range sortedKeys(n.children) {
		if siblingCP >= cp {
			break
		}
		delta += a.nodes[n.children[siblingCP]].numNodes
	}
	term := a.nodes[child].isTerminal
	if term {
		delta++
	}
	return child, term, delta, true
}
