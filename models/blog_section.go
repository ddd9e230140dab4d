package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/jfalcomer/devblog-backend/errs"
)

// BlogSection binds a section into a blog at an explicit position. A given
// (blog, section) pair exists at most once; the auto-incremented row id is
// the documented tie-break between equal positions, so assembly order is
// deterministic even when an editor reuses the same position value.
type BlogSection struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BlogID    uuid.UUID `json:"blogId" gorm:"type:uuid;not null;index;uniqueIndex:idx_blog_sections_pair"`
	SectionID uuid.UUID `json:"sectionId" gorm:"type:uuid;not null;index;uniqueIndex:idx_blog_sections_pair"`
	Position  int       `json:"order" gorm:"column:position;not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`

	Blog    Blog    `json:"-" gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`
	Section Section `json:"section,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}

func (bs *BlogSection) Validate() error {
	v := errs.NewValidator()
	v.Check(bs.BlogID != uuid.Nil, "blogId", "must be provided")
	v.Check(bs.SectionID != uuid.Nil, "sectionId", "must be provided")
	v.Check(bs.Position >= 0, "order", "must not be negative")
	return v.Err()
}
