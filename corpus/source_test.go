package corpus

import (
	"errors"
	"testing"

	vocab "github.com/c360studio/conlaw/vocabulary/corpus"
)

func TestNewFileSource(t *testing.T) {
	src := NewFileSource("corpus/US Constitution.md")

	if src.ID != "corpus.file.us-constitution-md" {
		t.Errorf("ID = %q, want corpus.file.us-constitution-md", src.ID)
	}
	if src.Name != "US Constitution.md" {
		t.Errorf("Name = %q, want US Constitution.md", src.Name)
	}
	if src.Type != vocab.SourceTypeFile {
		t.Errorf("Type = %q, want file", src.Type)
	}
	if src.Status != vocab.SourceStatusPending {
		t.Errorf("Status = %q, want pending", src.Status)
	}
	if src.AddedAt.IsZero() {
		t.Error("AddedAt not set")
	}
}

func TestNewWebSource(t *testing.T) {
	src := NewWebSource("corpus.web.example-com", "https://example.com/constitution")

	if src.ID != "corpus.web.example-com" {
		t.Errorf("ID = %q, want corpus.web.example-com", src.ID)
	}
	if src.Type != vocab.SourceTypeWeb {
		t.Errorf("Type = %q, want web", src.Type)
	}
	if src.Status != vocab.SourceStatusPending {
		t.Errorf("Status = %q, want pending", src.Status)
	}
}

func TestSourceTransitions(t *testing.T) {
	src := NewFileSource("constitution.md")

	src.MarkIngesting()
	if src.Status != vocab.SourceStatusIngesting {
		t.Errorf("Status = %q, want ingesting", src.Status)
	}

	src.MarkError(errors.New("parse failed"))
	if src.Status != vocab.SourceStatusError {
		t.Errorf("Status = %q, want error", src.Status)
	}
	if src.Error != "parse failed" {
		t.Errorf("Error = %q, want parse failed", src.Error)
	}

	// A successful re-ingest clears the error
	src.MarkIngesting()
	if src.Error != "" {
		t.Errorf("Error = %q after MarkIngesting, want empty", src.Error)
	}
	src.MarkReady()
	if src.Status != vocab.SourceStatusReady {
		t.Errorf("Status = %q, want ready", src.Status)
	}

	src.MarkStale()
	if src.Status != vocab.SourceStatusStale {
		t.Errorf("Status = %q, want stale", src.Status)
	}
}

func TestSourceSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"constitution.md", "constitution-md"},
		{"US Constitution (1787).md", "us-constitution--1787--md"},
		{"---weird---", "weird"},
	}
	for _, tt := range tests {
		if got := sourceSlug(tt.in); got != tt.want {
			t.Errorf("sourceSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
