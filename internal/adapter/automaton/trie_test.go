package automaton

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"unicode"
)

func TestBuild_IsStopword(t *testing.T) {
	trie, err := Build([]string{"the", "then", "a", "and", "can't"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"then", true},
		{"a", true},
		{"and", true},
		{"can't", true},
		{"th", false},
		{"thens", false},
		{"an", false},
		{"can", false},
		{"The", false},
		{"quick", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := trie.IsStopword(tt.word); got != tt.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestBuild_SharesPrefixes(t *testing.T) {
	trie, err := Build([]string{"the", "then", "they", "them"})
	if err != nil {
		t.Fatal(err)
	}

	// t, th, the, then, they, them + initial state
	if trie.StateCount() != 7 {
		t.Errorf("expected 7 states, got %d", trie.StateCount())
	}
	if trie.TransitionCount() != 6 {
		t.Errorf("expected 6 transitions, got %d", trie.TransitionCount())
	}
	if trie.Len() != 4 {
		t.Errorf("expected 4 words, got %d", trie.Len())
	}
}

func TestBuild_Duplicates(t *testing.T) {
	trie, err := Build([]string{"and", "and", "an"})
	if err != nil {
		t.Fatal(err)
	}
	if trie.Len() != 2 {
		t.Errorf("expected 2 words, got %d", trie.Len())
	}
	if trie.StateCount() != 4 {
		t.Errorf("expected 4 states, got %d", trie.StateCount())
	}
}

func TestBuild_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{"empty word", []string{"the", ""}},
		{"uppercase", []string{"The"}},
		{"invalid utf8", []string{"a", string([]byte{0xff, 0xfe})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trie, err := Build(tt.words)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if trie != nil {
				t.Error("expected no trie on failure")
			}
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	trie, err := Build(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trie.IsStopword("") || trie.IsStopword("a") {
		t.Error("empty trie should reject everything")
	}
	if trie.StateCount() != 1 {
		t.Errorf("expected only the initial state, got %d", trie.StateCount())
	}
}

func TestBuild_OrderIndependent(t *testing.T) {
	a, err := Build([]string{"over", "on", "of", "off"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build([]string{"off", "of", "on", "over"})
	if err != nil {
		t.Fatal(err)
	}

	dump := func(tr *Trie) []string {
		var out []string
		tr.Transitions(func(from State, r rune, to State) {
			out = append(out, string(rune('0'+from))+string(r)+string(rune('0'+to)))
		})
		return out
	}
	if !reflect.DeepEqual(dump(a), dump(b)) {
		t.Errorf("transition tables differ:\n%v\n%v", dump(a), dump(b))
	}
}

func TestWords(t *testing.T) {
	trie, err := Build([]string{"won't", "a", "about", "ab"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "ab", "about", "won't"}
	if got := trie.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMatchPrefix(t *testing.T) {
	trie, err := Build([]string{"don't", "do", "can't"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		input string
		fold  func(rune) rune
		want  int
	}{
		{"don't stop", nil, 5},
		{"dog", nil, 2},
		{"DON'T", unicode.ToLower, 5},
		{"DON'T", nil, 0},
		{"can", nil, 0},
		{"", nil, 0},
		{"DO\u212A", unicode.ToLower, 2},
	}

	for _, tt := range tests {
		if got := trie.MatchPrefix(tt.input, tt.fold); got != tt.want {
			t.Errorf("MatchPrefix(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestMatchPrefix_FoldChangesWidth(t *testing.T) {
	trie, err := Build([]string{"ok", "\u00e5s"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		input string
		want  int
	}{
		// KELVIN SIGN is 3 bytes and folds to the 1-byte 'k'.
		{"o\u212A there", len("o\u212A")},
		// ANGSTROM SIGN is 3 bytes and folds to the 2-byte 'å'.
		{"\u212Bs", len("\u212Bs")},
	}
	for _, tt := range tests {
		if got := trie.MatchPrefix(tt.input, unicode.ToLower); got != tt.want {
			t.Errorf("MatchPrefix(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestStep_OutOfRange(t *testing.T) {
	trie, err := Build([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	if trie.Step(NoState, 'a') != NoState {
		t.Error("expected NoState from NoState")
	}
	if trie.IsAccept(State(42)) {
		t.Error("unknown state must not accept")
	}
	s := trie.Step(trie.Start(), 'a')
	if !trie.IsAccept(s) {
		t.Error("expected accepting state after 'a'")
	}
}

func TestIsStopword_Concurrent(t *testing.T) {
	words := strings.Fields("i me my we our you he she it they the a an and or of")
	trie, err := Build(words)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				for _, w := range words {
					if !trie.IsStopword(w) {
						t.Errorf("expected %q to be a stopword", w)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
