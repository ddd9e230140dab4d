package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/jfalcomer/devblog-backend/errs"
)

// BlogStatus is the publication state of a blog post.
type BlogStatus string

const (
	StatusDraft     BlogStatus = "draft"
	StatusPublished BlogStatus = "published"
	StatusArchived  BlogStatus = "archived"
)

func (s BlogStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// DefaultBanner is used when a blog is created without an uploaded banner.
const DefaultBanner = "temp/blog_image_default.png"

// Blog is a post assembled from ordered sections. The slug is unique per
// publish day, enforced by the composite index over (slug, publish_day);
// publish_day stays NULL until the post is published, and NULLs never
// collide, so drafts may share slugs freely.
type Blog struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Banner      string     `json:"banner" gorm:"size:255;not null"`
	Slug        string     `json:"slug" gorm:"size:250;not null;uniqueIndex:idx_blogs_slug_publish_day"`
	PublishDay  *string    `json:"-" gorm:"size:10;uniqueIndex:idx_blogs_slug_publish_day"`
	Summary     string     `json:"summary" gorm:"size:500"`
	Status      BlogStatus `json:"status" gorm:"size:20;not null;default:draft;index"`
	PublishDate *time.Time `json:"publishDate" gorm:"index:idx_blogs_publish_date,sort:desc"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Tags []Tag `json:"tags,omitempty" gorm:"many2many:blog_tags"`
}

// Normalize is the single pre-persist step for a blog: derive the slug,
// stamp the publish date on the transition to published, and refresh the
// publish day used by the per-day uniqueness index. It mutates nothing else
// and must run exactly once per save, before constraints are checked.
func (b *Blog) Normalize(now time.Time) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.Title = strings.TrimSpace(b.Title)
	if b.Slug == "" {
		b.Slug = slug.Make(b.Title)
	}
	if b.Banner == "" {
		b.Banner = DefaultBanner
	}
	if b.Status == "" {
		b.Status = StatusDraft
	}
	if b.Status == StatusPublished && b.PublishDate == nil {
		b.PublishDate = &now
	}
	if b.PublishDate != nil {
		day := b.PublishDate.UTC().Format("2006-01-02")
		b.PublishDay = &day
	} else {
		b.PublishDay = nil
	}
}

func (b *Blog) Validate() error {
	v := errs.NewValidator()
	v.Check(b.Title != "", "title", "must be provided")
	v.Check(errs.LengthBetween(b.Title, 10, 200), "title", "must be between 10 and 200 characters long")
	v.Check(b.Slug != "", "slug", "must not be empty")
	v.Check(errs.MaxLength(b.Slug, 250), "slug", "must be at most 250 characters long")
	v.Check(errs.MaxLength(b.Summary, 500), "summary", "must be at most 500 characters long")
	v.Check(b.Banner != "", "banner", "must be provided")
	v.Check(ValidImageExtension(b.Banner), "banner", "must be a jpg, jpeg or png file")
	v.Check(b.Status.Valid(), "status", "must be draft, published or archived")
	return v.Err()
}

func (b *Blog) IsPublished() bool {
	return b.Status == StatusPublished
}
