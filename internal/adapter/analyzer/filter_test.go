package analyzer

import (
	"reflect"
	"testing"

	"stopdfa/internal/domain"
)

func TestFilter(t *testing.T) {
	var tokens []domain.Token
	for _, s := range []string{"a", ",", "the", "(", "...", "7", "--", "'s", "é", "$"} {
		tokens = append(tokens, domain.Token{Text: s})
	}

	var got []string
	for _, tok := range Filter(tokens) {
		got = append(got, tok.Text)
	}

	want := []string{"a", "the", "...", "7", "--", "'s", "é"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFilter_Empty(t *testing.T) {
	if got := Filter(nil); len(got) != 0 {
		t.Errorf("expected no tokens, got %d", len(got))
	}
}

func TestKeep(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{",", false},
		{"a", true},
		{"I", true},
		{"1", true},
		{"!!", true},
		{"", true},
	}
	for _, tt := range tests {
		if got := Keep(tt.text); got != tt.want {
			t.Errorf("Keep(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
