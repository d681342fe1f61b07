package corpus

import (
	"path/filepath"
	"strings"
	"time"

	vocab "github.com/c360studio/conlaw/vocabulary/corpus"
)

// Source represents a corpus source (a document file or a web page).
type Source struct {
	// ID is the unique identifier for this source.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Type discriminates between file and web sources.
	Type vocab.SourceTypeValue `json:"type"`

	// Status tracks the ingestion state.
	Status vocab.SourceStatusType `json:"status"`

	// AddedBy identifies who added this source.
	AddedBy string `json:"added_by,omitempty"`

	// AddedAt is when the source was added.
	AddedAt time.Time `json:"added_at"`

	// Error holds any ingestion error message.
	Error string `json:"error,omitempty"`
}

// NewFileSource returns a pending source record for a local corpus file.
func NewFileSource(path string) *Source {
	name := filepath.Base(path)
	return &Source{
		ID:      "corpus.file." + sourceSlug(name),
		Name:    name,
		Type:    vocab.SourceTypeFile,
		Status:  vocab.SourceStatusPending,
		AddedAt: time.Now(),
	}
}

// NewWebSource returns a pending source record for a fetched URL. The
// caller supplies the entity ID derived from the URL.
func NewWebSource(id, rawURL string) *Source {
	return &Source{
		ID:      id,
		Name:    rawURL,
		Type:    vocab.SourceTypeWeb,
		Status:  vocab.SourceStatusPending,
		AddedAt: time.Now(),
	}
}

// MarkIngesting records that ingestion of this source has started.
func (s *Source) MarkIngesting() {
	s.Status = vocab.SourceStatusIngesting
	s.Error = ""
}

// MarkReady records that the source is fully ingested.
func (s *Source) MarkReady() {
	s.Status = vocab.SourceStatusReady
	s.Error = ""
}

// MarkStale records that the source changed since its last ingestion.
func (s *Source) MarkStale() {
	s.Status = vocab.SourceStatusStale
}

// MarkError records an ingestion failure.
func (s *Source) MarkError(err error) {
	s.Status = vocab.SourceStatusError
	if err != nil {
		s.Error = err.Error()
	}
}

// sourceSlug lowercases a name and replaces everything outside
// [a-z0-9] with dashes.
func sourceSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// Document represents a parsed corpus document with its content and metadata.
type Document struct {
	// ID is the document identifier (derived from file path and content hash).
	ID string `json:"id"`

	// Filename is the original filename.
	Filename string `json:"filename"`

	// Content is the raw document content.
	Content string `json:"content"`

	// Frontmatter contains parsed YAML front matter if present.
	Frontmatter map[string]any `json:"frontmatter,omitempty"`

	// Body is the content without front matter.
	Body string `json:"body"`
}

// HasFrontmatter returns true if the document has parsed front matter.
func (d *Document) HasFrontmatter() bool {
	return len(d.Frontmatter) > 0
}

// Meta is the typed view of a corpus document's front matter.
// Unknown keys stay in the Document's Frontmatter map untouched.
type Meta struct {
	// Title is the document title.
	Title string `json:"title"`

	// Adopted is when the convention adopted the text.
	Adopted string `json:"adopted,omitempty"`

	// Effective is when the text took effect.
	Effective string `json:"effective,omitempty"`

	// Authors lists the document authors.
	Authors []string `json:"authors,omitempty"`
}

// FrontmatterAsMeta converts front matter to Meta if the expected
// fields are present. Returns nil when no useful fields exist.
func (d *Document) FrontmatterAsMeta() *Meta {
	if !d.HasFrontmatter() {
		return nil
	}

	meta := &Meta{}

	if title, ok := d.Frontmatter["title"].(string); ok {
		meta.Title = title
	}
	if adopted, ok := d.Frontmatter["adopted"].(string); ok {
		meta.Adopted = adopted
	}
	if effective, ok := d.Frontmatter["effective"].(string); ok {
		meta.Effective = effective
	}

	if authors, ok := d.Frontmatter["authors"].([]any); ok {
		for _, v := range authors {
			if s, ok := v.(string); ok {
				meta.Authors = append(meta.Authors, s)
			}
		}
	} else if authors, ok := d.Frontmatter["authors"].([]string); ok {
		meta.Authors = authors
	}

	if meta.Title == "" && len(meta.Authors) == 0 {
		return nil
	}

	return meta
}
