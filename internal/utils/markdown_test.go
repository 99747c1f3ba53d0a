package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	html := RenderMarkdown("# Title\n\nSome **bold** text")
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestRenderMarkdownSanitizesScripts(t *testing.T) {
	t.Parallel()

	html := RenderMarkdown(`hello <script>alert("x")</script>`)
	assert.NotContains(t, html, "<script>")
}

func TestRenderMarkdownEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", RenderMarkdown(""))
}
