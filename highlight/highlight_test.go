package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderEmptySnippet(t *testing.T) {
	assert.Equal(t, "", Render("", LanguagePython))
	assert.Equal(t, "", Render("", "nonsense"))
}

func TestRenderPython(t *testing.T) {
	out := Render("print(1)", LanguagePython)

	assert.NotEmpty(t, out)
	assert.Contains(t, out, "print")
	assert.Contains(t, out, "1")
	// Markup, not the raw snippet
	assert.Contains(t, out, "<span")
}

func TestRenderUnknownLanguageFallsBack(t *testing.T) {
	out := Render("print(1)", "klingon")

	assert.Contains(t, out, "<pre><code>")
	assert.Contains(t, out, "print(1)")
}

func TestRenderTextLanguageUsesPlainWrapper(t *testing.T) {
	out := Render("just words", LanguageText)

	assert.Equal(t, "<pre><code>just words</code></pre>", out)
}

func TestFallbackEscapesMarkup(t *testing.T) {
	out := Render("<script>alert(1)</script>", "klingon")

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestForLanguage(t *testing.T) {
	testCases := []struct {
		language string
		plain    bool
	}{
		{LanguagePython, false},
		{LanguageJavaScript, false},
		{LanguageBash, false},
		{LanguageText, true},
		{"klingon", true},
		{"", true},
	}

	for _, tc := range testCases {
		h := ForLanguage(tc.language)
		assert.Equal(t, tc.language, h.Language())

		_, isPlain := h.(plainHighlighter)
		assert.Equal(t, tc.plain, isPlain, "language %q", tc.language)
	}
}

func TestStylesheet(t *testing.T) {
	css := Stylesheet()

	assert.NotEmpty(t, css)
	assert.Contains(t, css, ".chroma")
	// Same output every call, one include per page is enough
	assert.Equal(t, css, Stylesheet())
}

func TestDetect(t *testing.T) {
	if got := Detect(""); got != "" {
		t.Fatalf("expected no guess for empty snippet, got %q", got)
	}

	// Whatever the guess is, it must stay inside the supported set.
	for _, snippet := range []string{
		"#!/bin/bash\necho hello",
		"def main():\n    print('x')\n",
		"SELECT * FROM blogs;",
		"lorem ipsum dolor",
	} {
		got := Detect(snippet)
		if got != "" && !IsSupported(got) {
			t.Fatalf("Detect(%q) = %q, outside supported set", snippet, got)
		}
	}
}

func TestSupportedListMatchesSet(t *testing.T) {
	for _, language := range Supported() {
		assert.True(t, IsSupported(language))
	}
	assert.False(t, IsSupported("ruby"))
	assert.True(t, strings.Contains(strings.Join(Supported(), ","), LanguageText))
}
