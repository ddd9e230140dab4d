package database

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jfalcomer/devblog-backend/models"
)

// testDB opens an isolated in-memory database for one test and migrates
// the full schema into it.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createTestBlog(t *testing.T, repo *BlogRepo, title string, status models.BlogStatus) *models.Blog {
	t.Helper()

	blog := &models.Blog{
		Title:   title,
		Summary: "summary for " + title,
		Status:  status,
	}
	require.NoError(t, repo.Create(blog))
	return blog
}

func createTestSection(t *testing.T, repo *SectionRepo, title string) *models.Section {
	t.Helper()

	section := &models.Section{
		Title:       title,
		CodeSnippet: "print(1)",
		Language:    models.LanguagePython,
	}
	require.NoError(t, repo.Create(section))
	return section
}

func createTestTag(t *testing.T, repo *TagRepo, name string) *models.Tag {
	t.Helper()

	tag := &models.Tag{Name: name}
	require.NoError(t, repo.Create(tag))
	return tag
}

func timePtr(t time.Time) *time.Time {
	return &t
}
