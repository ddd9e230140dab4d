package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jfalcomer/devblog-backend/models"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns all tags ordered by name
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

// FindByID returns a tag by its ID
func (r *TagRepo) FindByID(id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindBySlug returns a tag by its slug
func (r *TagRepo) FindBySlug(slug string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Create normalizes and validates the tag, then inserts it. Name and slug
// uniqueness is left to the database constraints.
func (r *TagRepo) Create(tag *models.Tag) error {
	tag.Normalize()
	if err := tag.Validate(); err != nil {
		return err
	}
	return r.db.Create(tag).Error
}

// Update normalizes and validates the tag, then persists it
func (r *TagRepo) Update(tag *models.Tag) error {
	tag.Normalize()
	if err := tag.Validate(); err != nil {
		return err
	}
	return r.db.Save(tag).Error
}

// Delete removes a tag and its blog associations
func (r *TagRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM blog_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, "id = ?", id).Error
	})
}
