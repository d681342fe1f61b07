package corpus

import "testing"

func buildConstitution() *Constitution {
	return &Constitution{
		ID: "corpus.constitution.abc123",
		Articles: []Article{
			{
				Number:  1,
				Numeral: "I",
				Sections: []Section{
					{Number: 1, Clauses: []Clause{{Index: 1, Text: "clause"}}},
					{Number: 2, Examples: []CodeExample{{Language: "go", Source: "type T struct{}"}}},
				},
			},
			{
				Number:  2,
				Numeral: "II",
				Sections: []Section{
					{Number: 1, Diagrams: []Diagram{{Kind: "mermaid", Definition: "flowchart TD"}}},
				},
			},
		},
		Amendments: []Amendment{
			{Number: 14, Numeral: "XIV", Sections: []Section{{Number: 1}}},
		},
	}
}

func TestConstitution_ArticleByNumber(t *testing.T) {
	c := buildConstitution()

	if a := c.ArticleByNumber(2); a == nil || a.Numeral != "II" {
		t.Errorf("ArticleByNumber(2) = %+v, want numeral II", a)
	}
	if a := c.ArticleByNumber(7); a != nil {
		t.Errorf("ArticleByNumber(7) = %+v, want nil", a)
	}
}

func TestConstitution_AmendmentByNumber(t *testing.T) {
	c := buildConstitution()

	if a := c.AmendmentByNumber(14); a == nil || a.Numeral != "XIV" {
		t.Errorf("AmendmentByNumber(14) = %+v, want numeral XIV", a)
	}
	if a := c.AmendmentByNumber(1); a != nil {
		t.Errorf("AmendmentByNumber(1) = %+v, want nil", a)
	}
}

func TestConstitution_Counts(t *testing.T) {
	c := buildConstitution()

	if got := c.SectionCount(); got != 4 {
		t.Errorf("SectionCount() = %d, want 4", got)
	}
	if got := len(c.AllExamples()); got != 1 {
		t.Errorf("AllExamples() = %d examples, want 1", got)
	}
	if got := len(c.AllDiagrams()); got != 1 {
		t.Errorf("AllDiagrams() = %d diagrams, want 1", got)
	}
}

func TestDocument_FrontmatterAsMeta(t *testing.T) {
	doc := &Document{
		Frontmatter: map[string]any{
			"title":   "The Constitution",
			"adopted": "1787-09-17",
			"authors": []any{"Convention", "States"},
		},
	}

	meta := doc.FrontmatterAsMeta()
	if meta == nil {
		t.Fatal("FrontmatterAsMeta() = nil")
	}
	if meta.Title != "The Constitution" {
		t.Errorf("Title = %q, want %q", meta.Title, "The Constitution")
	}
	if len(meta.Authors) != 2 {
		t.Errorf("Authors = %v, want 2 entries", meta.Authors)
	}

	empty := &Document{Frontmatter: map[string]any{"unrelated": true}}
	if m := empty.FrontmatterAsMeta(); m != nil {
		t.Errorf("FrontmatterAsMeta() = %+v, want nil for unrelated keys", m)
	}
}
