package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jfalcomer/devblog-backend/models"
)

// PageSize is the fixed number of blogs per listing page.
const PageSize = 10

// BlogPage is one chunk of a published-blog listing.
type BlogPage struct {
	Blogs      []*models.Blog `json:"blogs"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PerPage    int            `json:"perPage"`
	TotalPages int            `json:"totalPages"`
}

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindAll returns every blog regardless of status, newest first. This is
// the editing surface; the public listing goes through FindPublished.
func (r *BlogRepo) FindAll() ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Preload("Tags").Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

// FindByID returns a blog by its ID regardless of status
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("Tags").First(&blog, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindPublished returns one page of published blogs ordered by publish date
// descending, optionally restricted to a tag. A tag slug that matches no
// tag yields gorm.ErrRecordNotFound rather than an empty page.
func (r *BlogRepo) FindPublished(tagSlug string, page int) (*BlogPage, error) {
	if page < 1 {
		page = 1
	}

	var tagID *uuid.UUID
	if tagSlug != "" {
		var tag models.Tag
		if err := r.db.First(&tag, "slug = ?", tagSlug).Error; err != nil {
			return nil, err
		}
		tagID = &tag.ID
	}

	filtered := func() *gorm.DB {
		q := r.db.Model(&models.Blog{}).Where("blogs.status = ?", models.StatusPublished)
		if tagID != nil {
			q = q.Joins("JOIN blog_tags ON blog_tags.blog_id = blogs.id").
				Where("blog_tags.tag_id = ?", *tagID)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, err
	}

	var blogs []*models.Blog
	err := filtered().
		Preload("Tags").
		Order("blogs.publish_date DESC").
		Limit(PageSize).
		Offset((page - 1) * PageSize).
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	return &BlogPage{
		Blogs:      blogs,
		Total:      total,
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages,
	}, nil
}

// FindPublishedBySlug returns the published blog with that slug. Drafts and
// archived posts are invisible here by policy; when the same slug was
// reused across publish days the most recent publication wins.
func (r *BlogRepo) FindPublishedBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.
		Preload("Tags").
		Where("slug = ? AND status = ?", slug, models.StatusPublished).
		Order("publish_date DESC").
		First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Create runs the pre-persist normalization and validation, then inserts
// the blog. Slug-per-day uniqueness is enforced by the schema at write time.
func (r *BlogRepo) Create(blog *models.Blog) error {
	blog.Normalize(time.Now())
	if err := blog.Validate(); err != nil {
		return err
	}
	return r.db.Create(blog).Error
}

// Update runs the pre-persist normalization and validation, then saves.
// Association columns are untouched; use SetTags for the tag set.
func (r *BlogRepo) Update(blog *models.Blog) error {
	blog.Normalize(time.Now())
	if err := blog.Validate(); err != nil {
		return err
	}
	return r.db.Omit("Tags").Save(blog).Error
}

// SetTags replaces the tag set of a blog
func (r *BlogRepo) SetTags(blog *models.Blog, tags []*models.Tag) error {
	return r.db.Model(blog).Association("Tags").Replace(tags)
}

// Delete removes a blog, its section association rows and its tag links.
// Sections themselves are shared and stay untouched.
func (r *BlogRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.BlogSection{}, "blog_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM blog_tags WHERE blog_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Blog{}, "id = ?", id).Error
	})
}

// Publish transitions the given blogs to published, stamping the publish
// date for any that never had one. Returns how many rows were updated.
func (r *BlogRepo) Publish(ids []uuid.UUID) (int, error) {
	return r.transition(ids, func(blog *models.Blog) {
		blog.Status = models.StatusPublished
	})
}

// Archive transitions the given blogs to archived. Publish dates are kept;
// leaving the published state never clears them.
func (r *BlogRepo) Archive(ids []uuid.UUID) (int, error) {
	return r.transition(ids, func(blog *models.Blog) {
		blog.Status = models.StatusArchived
	})
}

func (r *BlogRepo) transition(ids []uuid.UUID, mutate func(*models.Blog)) (int, error) {
	updated := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var blog models.Blog
			if err := tx.First(&blog, "id = ?", id).Error; err != nil {
				return err
			}
			mutate(&blog)
			blog.Normalize(time.Now())
			if err := blog.Validate(); err != nil {
				return err
			}
			if err := tx.Omit("Tags").Save(&blog).Error; err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
