package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfalcomer/devblog-backend/highlight"
)

func TestSectionNormalizeDefaultLanguage(t *testing.T) {
	s := &Section{Title: "Setting up the project"}
	s.Normalize()

	assert.Equal(t, LanguagePython, s.Language)
	assert.NotEqual(t, uuid.Nil, s.ID)
}

func TestSectionNormalizeDetectsLanguageForSnippet(t *testing.T) {
	s := &Section{
		Title:       "Listing the home directory",
		CodeSnippet: "#!/bin/bash\nls -la ~\n",
	}
	s.Normalize()

	// Detection may or may not recognize the snippet, but the result is
	// always a member of the supported set, text being the floor.
	require.NotEmpty(t, s.Language)
	assert.True(t, s.Language.Valid(), "got language %q", s.Language)
}

func TestSectionNormalizeKeepsExplicitLanguage(t *testing.T) {
	s := &Section{
		Title:       "Creating the schema",
		CodeSnippet: "SELECT 1;",
		Language:    LanguageSQL,
	}
	s.Normalize()

	assert.Equal(t, LanguageSQL, s.Language)
}

func TestSectionHighlightedCode(t *testing.T) {
	s := &Section{Title: "Hello world in Python", CodeSnippet: "print(1)", Language: LanguagePython}

	out := s.HighlightedCode()
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "print")

	empty := &Section{Title: "A section with no code", Language: LanguagePython}
	assert.Equal(t, "", empty.HighlightedCode())
}

func TestSectionHighlightedCodeFallsBackOnCorruptLanguage(t *testing.T) {
	s := &Section{Title: "Broken language value", CodeSnippet: "print(1)"}
	s.Language = "not-a-language" // bypasses Validate on purpose

	out := s.HighlightedCode()
	assert.Contains(t, out, "print(1)")
	assert.Contains(t, out, "<pre><code>")
}

func TestSectionValidate(t *testing.T) {
	valid := func() *Section {
		return &Section{Title: "Setting up the project", Language: LanguagePython}
	}

	s := valid()
	s.Normalize()
	assert.NoError(t, s.Validate())

	testCases := []struct {
		name   string
		mutate func(*Section)
	}{
		{"short title", func(s *Section) { s.Title = "tiny" }},
		{"long title", func(s *Section) { s.Title = string(bigText(101)) }},
		{"long description", func(s *Section) { s.Description = string(bigText(501)) }},
		{"bad image extension", func(s *Section) { s.Image = "diagram.svg" }},
		{"bad language", func(s *Section) { s.Language = "ruby" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			s.Normalize()
			tc.mutate(s)
			assert.Error(t, s.Validate())
		})
	}

	// Optional image with an allowed extension passes.
	withImage := valid()
	withImage.Image = "sections/setup/diagram.png"
	withImage.Normalize()
	assert.NoError(t, withImage.Validate())
}

func TestLanguageValuesMatchHighlightPackage(t *testing.T) {
	for _, name := range highlight.Supported() {
		assert.True(t, Language(name).Valid())
	}
}
