package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownParser_Parse_NoFrontmatter(t *testing.T) {
	p := NewMarkdownParser()

	content := `# The Constitution

We the People of the United States.

## Article I

The legislative branch.
`

	doc, err := p.Parse("constitution.md", []byte(content))
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "constitution.md", doc.Filename)
	assert.Equal(t, content, doc.Content)
	assert.Equal(t, content, doc.Body)
	assert.False(t, doc.HasFrontmatter())
}

func TestMarkdownParser_Parse_WithFrontmatter(t *testing.T) {
	p := NewMarkdownParser()

	content := `---
title: The United States Constitution
adopted: 1787-09-17
effective: 1789-03-04
authors:
  - Constitutional Convention
---

# The Constitution

Body text.
`

	doc, err := p.Parse("constitution.md", []byte(content))
	require.NoError(t, err)

	require.True(t, doc.HasFrontmatter())
	assert.Equal(t, "The United States Constitution", doc.Frontmatter["title"])
	assert.NotContains(t, doc.Body, "adopted:")
	assert.Contains(t, doc.Body, "Body text.")

	meta := doc.FrontmatterAsMeta()
	require.NotNil(t, meta)
	assert.Equal(t, "The United States Constitution", meta.Title)
	assert.Equal(t, []string{"Constitutional Convention"}, meta.Authors)
}

func TestMarkdownParser_Parse_UnclosedFrontmatter(t *testing.T) {
	p := NewMarkdownParser()

	content := "---\ntitle: broken\n\n# Heading\n"

	doc, err := p.Parse("broken.md", []byte(content))
	require.NoError(t, err)

	// Whole content falls through to the body
	assert.False(t, doc.HasFrontmatter())
	assert.Equal(t, content, doc.Body)
}

func TestMarkdownParser_Parse_StableIDs(t *testing.T) {
	p := NewMarkdownParser()

	doc1, err := p.Parse("constitution.md", []byte("same content"))
	require.NoError(t, err)
	doc2, err := p.Parse("constitution.md", []byte("same content"))
	require.NoError(t, err)
	doc3, err := p.Parse("constitution.md", []byte("other content"))
	require.NoError(t, err)

	assert.Equal(t, doc1.ID, doc2.ID)
	assert.NotEqual(t, doc1.ID, doc3.ID)
	assert.Contains(t, doc1.ID, "corpus.constitution.")
}

func TestRegistry_GetByExtension(t *testing.T) {
	r := NewRegistry()

	p := r.GetByExtension("corpus/constitution.md")
	require.NotNil(t, p)
	assert.Equal(t, "text/x-constitution", p.MimeType())

	p = r.GetByExtension("notes.md")
	require.NotNil(t, p)
	assert.Equal(t, "text/markdown", p.MimeType())

	assert.Nil(t, r.GetByExtension("image.png"))
}
