package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jfalcomer/devblog-backend/errs"
	"github.com/jfalcomer/devblog-backend/highlight"
)

// Language identifies the syntax highlighting lexer for a code snippet.
type Language string

const (
	LanguagePython     Language = highlight.LanguagePython
	LanguageJavaScript Language = highlight.LanguageJavaScript
	LanguageHTML       Language = highlight.LanguageHTML
	LanguageCSS        Language = highlight.LanguageCSS
	LanguageSQL        Language = highlight.LanguageSQL
	LanguageBash       Language = highlight.LanguageBash
	LanguageText       Language = highlight.LanguageText
)

func (l Language) Valid() bool {
	return highlight.IsSupported(string(l))
}

// Section is a reusable content block. The same section may appear in any
// number of blogs through the BlogSection association.
type Section struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"size:500"`
	Image       string    `json:"image" gorm:"size:255"`
	CodeSnippet string    `json:"codeSnippet" gorm:"type:text"`
	Language    Language  `json:"language" gorm:"size:20;not null;default:python"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Normalize fills derived fields before persistence. When a snippet exists
// and the editor picked no language, the language is guessed from the
// snippet; a failed guess degrades to the generic text language.
func (s *Section) Normalize() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.Title = strings.TrimSpace(s.Title)

	if s.Language == "" {
		if s.CodeSnippet != "" {
			if detected := highlight.Detect(s.CodeSnippet); detected != "" {
				s.Language = Language(detected)
			} else {
				s.Language = LanguageText
			}
		} else {
			s.Language = LanguagePython
		}
	}
}

func (s *Section) Validate() error {
	v := errs.NewValidator()
	v.Check(s.Title != "", "title", "must be provided")
	v.Check(errs.LengthBetween(s.Title, 5, 100), "title", "must be between 5 and 100 characters long")
	v.Check(errs.MaxLength(s.Description, 500), "description", "must be at most 500 characters long")
	v.Check(s.Language.Valid(), "language", "unsupported language")
	if s.Image != "" {
		v.Check(ValidImageExtension(s.Image), "image", "must be a jpg, jpeg or png file")
	}
	return v.Err()
}

// HighlightedCode renders the snippet as HTML markup. Empty snippets render
// to the empty string; highlighting failures fall back to an escaped
// preformatted block, never an error.
func (s *Section) HighlightedCode() string {
	return highlight.Render(s.CodeSnippet, string(s.Language))
}
