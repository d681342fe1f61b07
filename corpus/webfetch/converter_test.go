package webfetch

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	c := NewConverter()

	page := []byte(`<!DOCTYPE html>
<html>
<head><title>The Constitution of the United States</title></head>
<body>
<nav class="navbar">Home | About</nav>
<main>
<h1>The Constitution</h1>
<p>We the People of the United States, in Order to form a more perfect
Union, establish Justice, insure domestic Tranquility, provide for the
common defence, promote the general Welfare, and secure the Blessings
of Liberty to ourselves and our Posterity, do ordain and establish this
Constitution for the United States of America.</p>
<h2>Article I</h2>
<p>All legislative Powers herein granted shall be vested in a Congress
of the United States, which shall consist of a Senate and House of
Representatives.</p>
</main>
<footer>Archive footer</footer>
</body>
</html>`)

	pageURL, _ := url.Parse("https://www.archives.gov/founding-docs/constitution-transcript")
	result, err := c.Convert(page, pageURL)
	require.NoError(t, err)

	assert.Equal(t, "The Constitution of the United States", result.Title)
	assert.Contains(t, result.Markdown, "We the People")
	assert.Contains(t, result.Markdown, "Article I")
	assert.NotContains(t, result.Markdown, "<p>")
	assert.NotContains(t, result.Markdown, "Home | About")
}

func TestConverter_Convert_FallbackTitle(t *testing.T) {
	c := NewConverter()

	page := []byte(`<html><body><main><h1>Amendment XIV</h1><p>Section 1. All persons born or naturalized in the United States.</p></main></body></html>`)

	result, err := c.Convert(page, nil)
	require.NoError(t, err)

	assert.Equal(t, "Amendment XIV", result.Title)
}

func TestCleanMarkdown(t *testing.T) {
	in := "# Title   \n\n\n\n\n\nBody line\t\n"
	got := cleanMarkdown(in)
	assert.Equal(t, "# Title\n\n\nBody line", got)
}
