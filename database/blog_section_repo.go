package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jfalcomer/devblog-backend/models"
)

type BlogSectionRepo struct {
	db *gorm.DB
}

func NewBlogSectionRepo(db *gorm.DB) *BlogSectionRepo {
	return &BlogSectionRepo{db}
}

// Attach binds a section into a blog at the given position. The database
// rejects a second row for the same (blog, section) pair.
func (r *BlogSectionRepo) Attach(blogID, sectionID uuid.UUID, position int) (*models.BlogSection, error) {
	bs := &models.BlogSection{BlogID: blogID, SectionID: sectionID, Position: position}
	if err := bs.Validate(); err != nil {
		return nil, err
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Verify both ends exist so the error is a clean not-found rather
		// than a driver-specific foreign key failure.
		if err := tx.First(&models.Blog{}, "id = ?", blogID).Error; err != nil {
			return err
		}
		if err := tx.First(&models.Section{}, "id = ?", sectionID).Error; err != nil {
			return err
		}
		return tx.Create(bs).Error
	})
	if err != nil {
		return nil, err
	}
	return bs, nil
}

// Detach removes the association between a blog and a section
func (r *BlogSectionRepo) Detach(blogID, sectionID uuid.UUID) error {
	result := r.db.Delete(&models.BlogSection{}, "blog_id = ? AND section_id = ?", blogID, sectionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// OrderedSections returns the association rows for one blog sorted by
// position ascending. Ties between equal positions break on the
// auto-incremented row id, so insertion order decides.
func (r *BlogSectionRepo) OrderedSections(blogID uuid.UUID) ([]*models.BlogSection, error) {
	var rows []*models.BlogSection
	err := r.db.
		Preload("Section").
		Where("blog_id = ?", blogID).
		Order("position ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

// SetPosition moves an existing association to a new position
func (r *BlogSectionRepo) SetPosition(blogID, sectionID uuid.UUID, position int) error {
	if position < 0 {
		return (&models.BlogSection{BlogID: blogID, SectionID: sectionID, Position: position}).Validate()
	}
	result := r.db.Model(&models.BlogSection{}).
		Where("blog_id = ? AND section_id = ?", blogID, sectionID).
		Update("position", position)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
