package corpusingester

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveFiles(t *testing.T) {
	dir := t.TempDir()

	mustWrite := func(rel string) {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("# doc\n"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	mustWrite("constitution.md")
	mustWrite("amendments/bill-of-rights.md")
	mustWrite("notes.txt")

	files, err := ResolveFiles(dir, []string{"**/*.md"})
	if err != nil {
		t.Fatalf("ResolveFiles() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("ResolveFiles() = %d files, want 2: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Ext(f) != ".md" {
			t.Errorf("unexpected non-markdown file %q", f)
		}
	}
}

func TestResolveFilesDirectPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "constitution.md")
	if err := os.WriteFile(path, []byte("# doc\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	files, err := ResolveFiles(dir, []string{"constitution.md"})
	if err != nil {
		t.Fatalf("ResolveFiles() error = %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("ResolveFiles() = %v, want [%s]", files, path)
	}
}

func TestResolveFilesMissingPath(t *testing.T) {
	dir := t.TempDir()

	if _, err := ResolveFiles(dir, []string{"missing.md"}); err == nil {
		t.Error("expected error for missing direct path")
	}
}

func TestResolveFilesDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "constitution.md")
	if err := os.WriteFile(path, []byte("# doc\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	files, err := ResolveFiles(dir, []string{"*.md", "constitution.md"})
	if err != nil {
		t.Fatalf("ResolveFiles() error = %v", err)
	}
	if len(files) != 1 {
		t.Errorf("ResolveFiles() = %d files, want 1 after dedup", len(files))
	}
}
