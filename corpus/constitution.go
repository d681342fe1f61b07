package corpus

// Constitution is the fully structured form of a corpus document:
// front matter metadata plus the article and amendment tree.
type Constitution struct {
	// ID is the entity identifier of the source document.
	ID string `json:"id"`

	// FilePath is the original file path.
	FilePath string `json:"file_path"`

	// FileHash is the content hash for staleness detection.
	FileHash string `json:"file_hash"`

	// Meta is the typed front matter (title, adoption dates, authors).
	Meta Meta `json:"meta"`

	// Preamble is the introductory text before the first article.
	Preamble string `json:"preamble,omitempty"`

	// Articles are the numbered articles of the main text.
	Articles []Article `json:"articles"`

	// Amendments are the ratified amendments.
	Amendments []Amendment `json:"amendments,omitempty"`
}

// Article represents a numbered article of the main text.
type Article struct {
	// Number is the article number (1-based).
	Number int `json:"number"`

	// Numeral is the Roman numeral as written in the source.
	Numeral string `json:"numeral"`

	// Title is the article heading text, if any.
	Title string `json:"title,omitempty"`

	// Preamble is text between the article heading and its first section.
	Preamble string `json:"preamble,omitempty"`

	// Sections are the article's numbered sections.
	Sections []Section `json:"sections"`
}

// Amendment represents a ratified amendment.
type Amendment struct {
	// Number is the amendment number (1-based).
	Number int `json:"number"`

	// Numeral is the Roman numeral as written in the source.
	Numeral string `json:"numeral"`

	// Title is the amendment heading text, if any.
	Title string `json:"title,omitempty"`

	// Sections are the amendment's sections. Single-block amendments
	// carry one unnumbered section.
	Sections []Section `json:"sections"`
}

// Section represents a numbered section of an article or amendment.
type Section struct {
	// Number is the section number (0 for unnumbered).
	Number int `json:"number"`

	// Heading is the section heading text, if any.
	Heading string `json:"heading,omitempty"`

	// Text is the prose content with fenced blocks removed.
	Text string `json:"text,omitempty"`

	// Clauses are the bullet-point provisions of the section.
	Clauses []Clause `json:"clauses,omitempty"`

	// Examples are the illustrative fenced code blocks.
	Examples []CodeExample `json:"examples,omitempty"`

	// Diagrams are the fenced process-flow blocks.
	Diagrams []Diagram `json:"diagrams,omitempty"`
}

// Clause represents a single provision within a section.
type Clause struct {
	// Index is the 1-based clause position within its section.
	Index int `json:"index"`

	// Text is the clause text.
	Text string `json:"text"`
}

// CodeExample is an illustrative fenced code block. The source is a
// pedagogical stub, not a working implementation.
type CodeExample struct {
	// Language is the fence info string (may be empty).
	Language string `json:"language,omitempty"`

	// Source is the block content.
	Source string `json:"source"`
}

// Diagram is a fenced process-flow description block.
type Diagram struct {
	// Kind is the diagram flavor from the fence info string
	// (e.g. "mermaid").
	Kind string `json:"kind"`

	// Definition is the block content.
	Definition string `json:"definition"`
}

// ArticleByNumber returns the article with the given number, or nil.
func (c *Constitution) ArticleByNumber(n int) *Article {
	for i := range c.Articles {
		if c.Articles[i].Number == n {
			return &c.Articles[i]
		}
	}
	return nil
}

// AmendmentByNumber returns the amendment with the given number, or nil.
func (c *Constitution) AmendmentByNumber(n int) *Amendment {
	for i := range c.Amendments {
		if c.Amendments[i].Number == n {
			return &c.Amendments[i]
		}
	}
	return nil
}

// SectionCount returns the total number of sections across articles
// and amendments.
func (c *Constitution) SectionCount() int {
	count := 0
	for _, a := range c.Articles {
		count += len(a.Sections)
	}
	for _, a := range c.Amendments {
		count += len(a.Sections)
	}
	return count
}

// AllExamples returns all code examples across the document in order.
func (c *Constitution) AllExamples() []CodeExample {
	var examples []CodeExample
	for _, a := range c.Articles {
		for _, s := range a.Sections {
			examples = append(examples, s.Examples...)
		}
	}
	for _, a := range c.Amendments {
		for _, s := range a.Sections {
			examples = append(examples, s.Examples...)
		}
	}
	return examples
}

// AllDiagrams returns all diagrams across the document in order.
func (c *Constitution) AllDiagrams() []Diagram {
	var diagrams []Diagram
	for _, a := range c.Articles {
		for _, s := range a.Sections {
			diagrams = append(diagrams, s.Diagrams...)
		}
	}
	for _, a := range c.Amendments {
		for _, s := range a.Sections {
			diagrams = append(diagrams, s.Diagrams...)
		}
	}
	return diagrams
}
