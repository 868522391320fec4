// Package automaton implements the deterministic prefix automaton used to
// recognise stopwords and contractions.
//
// A Trie is built once from a word list and is read-only afterwards, so a
// single instance may be shared by any number of goroutines.
package automaton

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"
)

// State identifies a trie state. The initial state is always 0.
type State int32

// NoState is returned by Step when no transition exists.
const NoState State = -1

// ErrInvalidInput is returned by Build when the word source cannot be
// turned into an automaton.
var ErrInvalidInput = errors.New("invalid automaton input")

type node struct {
	next   map[rune]State
	accept bool
}

// Trie is a deterministic automaton over runes. Every state except 0 is
// reached by exactly one prefix of an inserted word.
type Trie struct {
	nodes       []node
	words       int
	transitions int
}

// Build constructs a Trie from words. Words must be non-empty, valid UTF-8
// and lowercase; duplicates are ignored. Input order does not matter: words
// are inserted in sorted order so state numbering is stable.
func Build(words []string) (*Trie, error) {
	for i, w := range words {
		if err := validateWord(w); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %v", ErrInvalidInput, i, w, err)
		}
	}

	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)

	t := &Trie{nodes: make([]node, 1, len(sorted)+1)}
	for _, w := range sorted {
		t.insert(w)
	}
	return t, nil
}

func validateWord(w string) error {
	if w == "" {
		return errors.New("empty word")
	}
	if !utf8.ValidString(w) {
		return errors.New("not valid UTF-8")
	}
	for _, r := range w {
		if unicode.IsUpper(r) {
			return errors.New("word is not lowercase")
		}
	}
	return nil
}

func (t *Trie) insert(word string) {
	s := State(0)
	for _, r := range word {
		next, ok := t.nodes[s].next[r]
		if !ok {
			next = State(len(t.nodes))
			t.nodes = append(t.nodes, node{})
			if t.nodes[s].next == nil {
				t.nodes[s].next = make(map[rune]State)
			}
			t.nodes[s].next[r] = next
			t.transitions++
		}
		s = next
	}
	if !t.nodes[s].accept {
		t.nodes[s].accept = true
		t.words++
	}
}

// Start returns the initial state.
func (t *Trie) Start() State {
	return 0
}

// Step follows the transition for r from s. It returns NoState if there is
// none.
func (t *Trie) Step(s State, r rune) State {
	if s < 0 || int(s) >= len(t.nodes) {
		return NoState
	}
	next, ok := t.nodes[s].next[r]
	if !ok {
		return NoState
	}
	return next
}

// IsAccept reports whether s marks the end of a complete word.
func (t *Trie) IsAccept(s State) bool {
	if s < 0 || int(s) >= len(t.nodes) {
		return false
	}
	return t.nodes[s].accept
}

// IsStopword reports whether word is exactly one of the words the trie was
// built from. No case folding is applied.
func (t *Trie) IsStopword(word string) bool {
	s := t.Start()
	for _, r := range word {
		s = t.Step(s, r)
		if s == NoState {
			return false
		}
	}
	return t.IsAccept(s)
}

// MatchPrefix returns the byte length in s of the longest prefix of s that
// is a word in the trie, or 0 if there is none. fold, if non-nil, is applied
// to each rune before stepping.
func (t *Trie) MatchPrefix(s string, fold func(rune) rune) int {
	state := t.Start()
	longest := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if fold != nil {
			r = fold(r)
		}
		state = t.Step(state, r)
		if state == NoState {
			break
		}
		if t.IsAccept(state) {
			longest = i
		}
	}
	return longest
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.words
}

// StateCount returns the number of states, including the initial state.
func (t *Trie) StateCount() int {
	return len(t.nodes)
}

// TransitionCount returns the number of transitions.
func (t *Trie) TransitionCount() int {
	return t.transitions
}

// Transitions calls fn for every transition, ordered by source state and
// then by rune.
func (t *Trie) Transitions(fn func(from State, r rune, to State)) {
	for i := range t.nodes {
		for _, r := range sortedRunes(t.nodes[i].next) {
			fn(State(i), r, t.nodes[i].next[r])
		}
	}
}

// Words returns every word in the trie in lexicographic order.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.words)
	var walk func(s State, prefix []rune)
	walk = func(s State, prefix []rune) {
		if t.nodes[s].accept {
			words = append(words, string(prefix))
		}
		for _, r := range sortedRunes(t.nodes[s].next) {
			walk(t.nodes[s].next[r], append(prefix, r))
		}
	}
	walk(t.Start(), nil)
	return words
}

func sortedRunes(m map[rune]State) []rune {
	runes := make([]rune, 0, len(m))
	for r := range m {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}
