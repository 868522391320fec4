package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalker_IncludeExclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "the cat")
	writeFile(t, filepath.Join(root, "notes", "b.md"), "and the dog")
	writeFile(t, filepath.Join(root, "notes", "c.go"), "package c")
	writeFile(t, filepath.Join(root, "vendor", "d.txt"), "skipped")

	w := NewWalker([]string{"**/*.txt", "**/*.md"}, []string{"**/vendor/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0].Path) != "a.txt" || filepath.Base(files[1].Path) != "b.md" {
		t.Errorf("unexpected files: %v", files)
	}
	if files[0].Size != int64(len("the cat")) {
		t.Errorf("expected size %d, got %d", len("the cat"), files[0].Size)
	}
}

func TestWalker_DefaultIncludesEverything(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x.go"), "x")
	writeFile(t, filepath.Join(root, "y", "z.txt"), "z")

	files, err := NewWalker(nil, nil).Walk(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Errorf("expected 2 files, got %d", len(files))
	}
}

func TestWalker_SingleFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "only.log")
	writeFile(t, path, "hello")

	files, err := NewWalker([]string{"**/*.txt"}, nil).Walk(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Path != path {
		t.Errorf("expected the file itself, got %v", files)
	}
}

func TestWalker_MissingRoot(t *testing.T) {
	if _, err := NewWalker(nil, nil).Walk("/nonexistent/root"); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	writeFile(t, path, "content")

	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "content" {
		t.Errorf("expected %q, got %q", "content", got)
	}
}
