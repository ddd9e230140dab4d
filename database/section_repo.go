package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jfalcomer/devblog-backend/models"
)

type SectionRepo struct {
	db *gorm.DB
}

func NewSectionRepo(db *gorm.DB) *SectionRepo {
	return &SectionRepo{db}
}

// FindAll returns all sections ordered by title
func (r *SectionRepo) FindAll() ([]*models.Section, error) {
	var sections []*models.Section
	err := r.db.Order("title ASC").Find(&sections).Error
	return sections, err
}

// FindByID returns a section by its ID
func (r *SectionRepo) FindByID(id uuid.UUID) (*models.Section, error) {
	var section models.Section
	err := r.db.First(&section, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// Create normalizes and validates the section, then inserts it
func (r *SectionRepo) Create(section *models.Section) error {
	section.Normalize()
	if err := section.Validate(); err != nil {
		return err
	}
	return r.db.Create(section).Error
}

// Update normalizes and validates the section, then persists it
func (r *SectionRepo) Update(section *models.Section) error {
	section.Normalize()
	if err := section.Validate(); err != nil {
		return err
	}
	return r.db.Save(section).Error
}

// Delete removes a section and every association row referencing it. Blogs
// that used the section keep their other sections.
func (r *SectionRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.BlogSection{}, "section_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Section{}, "id = ?", id).Error
	})
}
