package database

import (
	"gorm.io/gorm"

	"github.com/jfalcomer/devblog-backend/models"
)

type Database struct {
	tagRepo         *TagRepo
	sectionRepo     *SectionRepo
	blogRepo        *BlogRepo
	blogSectionRepo *BlogSectionRepo
	messageRepo     *MessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		tagRepo:         NewTagRepo(db),
		sectionRepo:     NewSectionRepo(db),
		blogRepo:        NewBlogRepo(db),
		blogSectionRepo: NewBlogSectionRepo(db),
		messageRepo:     NewMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) SectionRepo() *SectionRepo {
	return d.sectionRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) BlogSectionRepo() *BlogSectionRepo {
	return d.blogSectionRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}

// Migrate creates or updates the schema for every entity. Uniqueness
// constraints (tag name/slug, blog slug per publish day, the blog/section
// pair) live in the schema so concurrent saves cannot race past them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Tag{},
		&models.Section{},
		&models.Blog{},
		&models.BlogSection{},
		&models.Message{},
	)
}
