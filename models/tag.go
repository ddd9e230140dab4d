package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/jfalcomer/devblog-backend/errs"
)

// Tag is a labeled category attached to blog posts.
type Tag struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Slug      string    `json:"slug" gorm:"size:60;not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Blogs []Blog `json:"-" gorm:"many2many:blog_tags"`
}

// Normalize derives missing fields before the tag is persisted. Slug
// derivation is deterministic: the same name always yields the same slug.
func (t *Tag) Normalize() {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.Name = strings.TrimSpace(t.Name)
	if t.Slug == "" {
		t.Slug = slug.Make(t.Name)
	}
}

func (t *Tag) Validate() error {
	v := errs.NewValidator()
	v.Check(t.Name != "", "name", "must be provided")
	v.Check(errs.LengthBetween(t.Name, 5, 50), "name", "must be between 5 and 50 characters long")
	v.Check(t.Slug != "", "slug", "must not be empty")
	v.Check(errs.MaxLength(t.Slug, 60), "slug", "must be at most 60 characters long")
	return v.Err()
}
