package stopwords

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestEnglish(t *testing.T) {
	words := English()
	if len(words) != 179 {
		t.Errorf("expected 179 English stopwords, got %d", len(words))
	}

	words[0] = "mutated"
	if English()[0] == "mutated" {
		t.Error("English must return a copy")
	}
}

func TestLoad_Defaults(t *testing.T) {
	words, err := Load(Options{Language: "english", Extra: []string{"can't"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 180 {
		t.Errorf("expected 180 words, got %d", len(words))
	}
	if !sort.StringsAreSorted(words) {
		t.Error("expected sorted output")
	}
	if !contains(words, "can't") {
		t.Error("expected extra word can't to be present")
	}
}

func TestLoad_Dedup(t *testing.T) {
	words, err := Load(Options{Extra: []string{"The", "the", "  and "}})
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 179 {
		t.Errorf("expected duplicates to collapse to 179, got %d", len(words))
	}
}

func TestLoad_Fold(t *testing.T) {
	words, err := Load(Options{Extra: []string{"ΟΔΟΣ"}})
	if err != nil {
		t.Fatal(err)
	}
	if !contains(words, "οδος") {
		t.Error("expected final sigma after English lowercasing")
	}

	words, err = Load(Options{Extra: []string{"Lorem"}, Fold: strings.ToUpper})
	if err != nil {
		t.Fatal(err)
	}
	if !contains(words, "LOREM") || !contains(words, "THE") {
		t.Error("expected custom fold to apply to every entry")
	}
}

func TestLoad_UnsupportedLanguage(t *testing.T) {
	_, err := Load(Options{Language: "german"})
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestLoad_InvalidEntry(t *testing.T) {
	tests := [][]string{
		{""},
		{"two words"},
		{string([]byte{0xc3, 0x28})},
	}
	for _, extra := range tests {
		if _, err := Load(Options{Extra: extra}); !errors.Is(err, ErrInvalidEntry) {
			t.Errorf("Load(%q): expected ErrInvalidEntry, got %v", extra, err)
		}
	}
}

func TestLoad_File(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "extra.txt")
	content := "# custom words\nLorem\n\nipsum\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	words, err := Load(Options{File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(words, "lorem") || !contains(words, "ipsum") {
		t.Errorf("expected words from file, got %d words", len(words))
	}
	if contains(words, "# custom words") {
		t.Error("comment lines must be skipped")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(Options{File: "/nonexistent/stopwords.txt"}); err == nil {
		t.Error("expected error for missing file")
	}
}

func contains(words []string, w string) bool {
	i := sort.SearchStrings(words, w)
	return i < len(words) && words[i] == w
}
