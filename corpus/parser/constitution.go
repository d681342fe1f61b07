package parser

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/c360studio/conlaw/corpus"
	vocab "github.com/c360studio/conlaw/vocabulary/corpus"
)

// Regex patterns for constitutional structure.
var (
	articlePattern   = regexp.MustCompile(`(?m)^##\s+Article\s+([IVXLCDM]+)\.?\s*[-:]?\s*(.*)$`)
	amendmentPattern = regexp.MustCompile(`(?m)^##\s+Amendment\s+([IVXLCDM]+)\.?\s*[-:]?\s*(.*)$`)
	headingPattern   = regexp.MustCompile(`(?m)^##\s+(Article|Amendment)\s+[IVXLCDM]+`)
	sectionPattern   = regexp.MustCompile(`(?m)^###\s+Section\s+(\d+)\.?\s*[-:]?\s*(.*)$`)
	fencePattern     = regexp.MustCompile("(?ms)^```([^\n`]*)\n(.*?)\n```[ \t]*$")
	clausePattern    = regexp.MustCompile(`(?m)^\s*[-*]\s+(.+)$`)
)

// ConstitutionParser parses a constitution document into its
// article/section/clause structure.
type ConstitutionParser struct {
	markdown *MarkdownParser
}

// NewConstitutionParser creates a new constitution parser.
func NewConstitutionParser() *ConstitutionParser {
	return &ConstitutionParser{markdown: NewMarkdownParser()}
}

// Parse parses the document, extracting frontmatter and body.
func (p *ConstitutionParser) Parse(filename string, content []byte) (*corpus.Document, error) {
	return p.markdown.Parse(filename, content)
}

// CanParse returns true if this parser can handle the given MIME type.
func (p *ConstitutionParser) CanParse(mimeType string) bool {
	return mimeType == "text/x-constitution"
}

// MimeType returns the primary MIME type for this parser.
func (p *ConstitutionParser) MimeType() string {
	return "text/x-constitution"
}

// ParseConstitution parses a document into the full structure.
func (p *ConstitutionParser) ParseConstitution(filename string, content []byte) (*corpus.Constitution, error) {
	doc, err := p.Parse(filename, content)
	if err != nil {
		return nil, err
	}

	c := &corpus.Constitution{
		ID:       doc.ID,
		FilePath: filename,
		FileHash: ContentHash(content),
	}
	if meta := doc.FrontmatterAsMeta(); meta != nil {
		c.Meta = *meta
	}

	body := doc.Body

	// Text before the first article or amendment heading is the preamble.
	if loc := headingPattern.FindStringIndex(body); loc != nil {
		c.Preamble = strings.TrimSpace(stripTitleHeading(body[:loc[0]]))
	} else {
		c.Preamble = strings.TrimSpace(stripTitleHeading(body))
		return c, nil
	}

	articles, err := parseDivisions(body, articlePattern)
	if err != nil {
		return nil, fmt.Errorf("parse articles: %w", err)
	}
	for _, d := range articles {
		c.Articles = append(c.Articles, corpus.Article{
			Number:   d.number,
			Numeral:  d.numeral,
			Title:    d.title,
			Preamble: d.preamble,
			Sections: d.sections,
		})
	}

	amendments, err := parseDivisions(body, amendmentPattern)
	if err != nil {
		return nil, fmt.Errorf("parse amendments: %w", err)
	}
	for _, d := range amendments {
		sections := d.sections
		// A single-block amendment becomes one unnumbered section.
		if len(sections) == 0 && d.preamble != "" {
			sections = []corpus.Section{parseSection(0, "", d.preamble)}
		}
		c.Amendments = append(c.Amendments, corpus.Amendment{
			Number:   d.number,
			Numeral:  d.numeral,
			Title:    d.title,
			Sections: sections,
		})
	}

	return c, nil
}

// division is an article or amendment before it is typed.
type division struct {
	number   int
	numeral  string
	title    string
	preamble string
	sections []corpus.Section
}

// parseDivisions extracts every division matching the heading pattern,
// with its body running to the next ## heading of any kind.
func parseDivisions(body string, pattern *regexp.Regexp) ([]division, error) {
	matches := pattern.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	// All ## headings bound division bodies, so an article's body stops
	// at the first amendment heading and vice versa.
	bounds := headingPattern.FindAllStringIndex(body, -1)

	var divisions []division
	for _, match := range matches {
		numeral := body[match[2]:match[3]]
		title := strings.TrimSpace(body[match[4]:match[5]])

		number, err := romanToInt(numeral)
		if err != nil {
			return nil, fmt.Errorf("heading %q: %w", numeral, err)
		}

		bodyStart := match[1]
		bodyEnd := len(body)
		for _, b := range bounds {
			if b[0] > bodyStart {
				bodyEnd = b[0]
				break
			}
		}

		d := division{number: number, numeral: numeral, title: title}
		d.preamble, d.sections = parseSections(body[bodyStart:bodyEnd])
		divisions = append(divisions, d)
	}

	return divisions, nil
}

// parseSections splits a division body into sections. Text before the
// first section heading becomes the division preamble.
func parseSections(body string) (string, []corpus.Section) {
	matches := sectionPattern.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return strings.TrimSpace(body), nil
	}

	preamble := strings.TrimSpace(body[:matches[0][0]])

	var sections []corpus.Section
	for i, match := range matches {
		numberText := body[match[2]:match[3]]
		heading := strings.TrimSpace(body[match[4]:match[5]])

		number, _ := strconv.Atoi(numberText)

		bodyStart := match[1]
		bodyEnd := len(body)
		if i < len(matches)-1 {
			bodyEnd = matches[i+1][0]
		}

		sections = append(sections, parseSection(number, heading, body[bodyStart:bodyEnd]))
	}

	return preamble, sections
}

// parseSection extracts fenced blocks and clauses from a section body.
func parseSection(number int, heading, body string) corpus.Section {
	s := corpus.Section{Number: number, Heading: heading}

	// Pull fenced blocks out first so their lines are not mistaken for
	// clause bullets.
	prose := fencePattern.ReplaceAllStringFunc(body, func(block string) string {
		m := fencePattern.FindStringSubmatch(block)
		info := strings.TrimSpace(m[1])
		source := m[2]

		switch kind := diagramKind(info); kind {
		case "":
			s.Examples = append(s.Examples, corpus.CodeExample{Language: info, Source: source})
		default:
			s.Diagrams = append(s.Diagrams, corpus.Diagram{Kind: string(kind), Definition: source})
		}
		return ""
	})

	for i, m := range clausePattern.FindAllStringSubmatch(prose, -1) {
		s.Clauses = append(s.Clauses, corpus.Clause{
			Index: i + 1,
			Text:  strings.TrimSpace(m[1]),
		})
	}

	// Remaining prose minus bullets is the section text.
	text := clausePattern.ReplaceAllString(prose, "")
	s.Text = strings.TrimSpace(collapseBlankLines(text))

	return s
}

// diagramKind maps a fence info string to a diagram kind, or "" for
// code fences.
func diagramKind(info string) vocab.DiagramKindType {
	switch strings.ToLower(info) {
	case "mermaid":
		return vocab.DiagramKindMermaid
	case "dot", "graphviz":
		return vocab.DiagramKindDot
	case "flow", "diagram":
		return vocab.DiagramKindText
	}
	return ""
}

// stripTitleHeading removes a leading H1 title line.
func stripTitleHeading(text string) string {
	lines := strings.SplitN(strings.TrimLeft(text, "\r\n"), "\n", 2)
	if len(lines) > 0 && strings.HasPrefix(lines[0], "# ") {
		if len(lines) == 2 {
			return lines[1]
		}
		return ""
	}
	return text
}

// collapseBlankLines reduces runs of blank lines left by block removal.
func collapseBlankLines(text string) string {
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return text
}

// romanToInt converts a Roman numeral to its integer value.
func romanToInt(numeral string) (int, error) {
	values := map[byte]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}

	total := 0
	prev := 0
	for i := len(numeral) - 1; i >= 0; i-- {
		v, ok := values[numeral[i]]
		if !ok {
			return 0, fmt.Errorf("invalid roman numeral %q", numeral)
		}
		if v < prev {
			total -= v
		} else {
			total += v
			prev = v
		}
	}
	if total == 0 {
		return 0, fmt.Errorf("invalid roman numeral %q", numeral)
	}
	return total, nil
}

// IsConstitutionFile checks if a file path looks like a constitution
// document: constitution*.md or files in a corpus/ directory.
func IsConstitutionFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	if strings.HasPrefix(base, "constitution") && strings.HasSuffix(base, ".md") {
		return true
	}

	parts := strings.Split(filepath.ToSlash(path), "/")
	for _, part := range parts {
		if part == "corpus" {
			return strings.HasSuffix(base, ".md")
		}
	}

	return false
}
