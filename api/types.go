package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/jfalcomer/devblog-backend/models"
)

// blogRequest is the admin payload for creating or updating a blog.
// Pointer fields distinguish "absent" from "set to zero" on updates.
type blogRequest struct {
	Title       string            `json:"title"`
	Banner      string            `json:"banner"`
	Slug        string            `json:"slug"`
	Summary     string            `json:"summary"`
	Status      models.BlogStatus `json:"status"`
	PublishDate *time.Time        `json:"publishDate"`
	TagIDs      []uuid.UUID       `json:"tagIds"`
}

type attachSectionRequest struct {
	Order int `json:"order"`
}

type blogIDsRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// sectionView is a section as rendered inside a blog detail, with its
// highlighted code and position resolved.
type sectionView struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Image           string    `json:"image"`
	CodeSnippet     string    `json:"codeSnippet"`
	Language        string    `json:"language"`
	HighlightedCode string    `json:"highlightedCode"`
	Order           int       `json:"order"`
}

func newSectionView(section *models.Section, order int) sectionView {
	return sectionView{
		ID:              section.ID,
		Title:           section.Title,
		Description:     section.Description,
		Image:           section.Image,
		CodeSnippet:     section.CodeSnippet,
		Language:        string(section.Language),
		HighlightedCode: section.HighlightedCode(),
		Order:           order,
	}
}

// BlogDetail is the full public representation of a published blog
type BlogDetail struct {
	Blog     models.Blog   `json:"blog"`
	Sections []sectionView `json:"sections"`
}
