package database

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jfalcomer/devblog-backend/errs"
	"github.com/jfalcomer/devblog-backend/models"
)

func TestBlogCreateStampsPublishDate(t *testing.T) {
	db := testDB(t)
	repo := NewBlogRepo(db)

	before := time.Now()
	blog := createTestBlog(t, repo, "My first published post", models.StatusPublished)

	require.NotNil(t, blog.PublishDate)
	assert.False(t, blog.PublishDate.Before(before))
	require.NotNil(t, blog.PublishDay)

	// Saving again without a status change keeps the stamp.
	stamped := *blog.PublishDate
	require.NoError(t, repo.Update(blog))
	reloaded, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, stamped, *reloaded.PublishDate, time.Second)
}

func TestBlogCreateRejectsInvalid(t *testing.T) {
	db := testDB(t)
	repo := NewBlogRepo(db)

	err := repo.Create(&models.Blog{Title: "too short"})
	require.Error(t, err)

	var vErr *errs.ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "title")

	// Validation blocks the write entirely.
	var count int64
	require.NoError(t, db.Model(&models.Blog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBlogSlugUniquePerDay(t *testing.T) {
	db := testDB(t)
	repo := NewBlogRepo(db)

	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	first := &models.Blog{
		Title:       "Deploying Go services",
		Status:      models.StatusPublished,
		PublishDate: timePtr(day),
	}
	require.NoError(t, repo.Create(first))

	// Same title, same day: the derived slug collides.
	sameDay := &models.Blog{
		Title:       "Deploying Go services",
		Status:      models.StatusPublished,
		PublishDate: timePtr(day.Add(2 * time.Hour)),
	}
	err := repo.Create(sameDay)
	require.Error(t, err)
	assert.True(t, errs.IsUniquenessViolation(errs.NewDatabaseError("create", "blog", err)))

	// Same slug on a different day is allowed.
	nextDay := &models.Blog{
		Title:       "Deploying Go services",
		Status:      models.StatusPublished,
		PublishDate: timePtr(day.AddDate(0, 0, 1)),
	}
	require.NoError(t, repo.Create(nextDay))
	assert.Equal(t, first.Slug, nextDay.Slug)
}

func TestBlogDraftsMayShareSlug(t *testing.T) {
	db := testDB(t)
	repo := NewBlogRepo(db)

	createTestBlog(t, repo, "Working title of a draft", models.StatusDraft)
	createTestBlog(t, repo, "Working title of a draft", models.StatusDraft)

	var count int64
	require.NoError(t, db.Model(&models.Blog{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestFindPublishedExcludesDraftsAndArchived(t *testing.T) {
	db := testDB(t)
	repo := NewBlogRepo(db)

	published := createTestBlog(t, repo, "A post everyone can read", models.StatusPublished)
	createTestBlog(t, repo, "A draft nobody should see", models.StatusDraft)
	createTestBlog(t, repo, "An archived post gone away", models.StatusArchived)

	page, err := repo.FindPublished("", 1)
	require.NoError(t, err)
	require.Len(t, page.Blogs, 1)
	assert.Equal(t, published.ID, page.Blogs[0].ID)
	assert.EqualValues(t, 1, page.Total)
}

func TestFindPublishedOrdersByPublishDateDesc(t *testing.T) {
	db := testDB(t)
	repo := NewBlogRepo(db)

	older := &models.Blog{
		Title:       "The older published post",
		Status:      models.StatusPublished,
		PublishDate: timePtr(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, repo.Create(older))

	newer := &models.Blog{
		Title:       "The newer published post",
		Status:      models.StatusPublished,
		PublishDate: timePtr(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, repo.Create(newer))

	page, err := repo.FindPublished("", 1)
	require.NoError(t, err)
	require.Len(t, page.Blogs, 2)
	assert.Equal(t, newer.ID, page.Blogs[0].ID)
	assert.Equal(t, older.ID, page.Blogs[1].ID)
}

func TestFindPublishedPagination(t *testing.T) {
	db := testDB(t)
	repo := NewBlogRepo(db)

	for i := 0; i < PageSize+2; i++ {
		blog := &models.Blog{
			Title:       fmt.Sprintf("Published post number %02d", i),
			Status:      models.StatusPublished,
			PublishDate: timePtr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)),
		}
		require.NoError(t, repo.Create(blog))
	}

	first, err := repo.FindPublished("", 1)
	require.NoError(t, err)
	assert.Len(t, first.Blogs, PageSize)
	assert.EqualValues(t, PageSize+2, first.Total)
	assert.Equal(t, 2, first.TotalPages)

	second, err := repo.FindPublished("", 2)
	require.NoError(t, err)
	assert.Len(t, second.Blogs, 2)
}

func TestFindPublishedByTag(t *testing.T) {
	db := testDB(t)
	blogRepo := NewBlogRepo(db)
	tagRepo := NewTagRepo(db)

	golang := createTestTag(t, tagRepo, "golang backend")
	tagged := createTestBlog(t, blogRepo, "A post about Go backends", models.StatusPublished)
	require.NoError(t, blogRepo.SetTags(tagged, []*models.Tag{golang}))
	createTestBlog(t, blogRepo, "A post about nothing else", models.StatusPublished)

	page, err := blogRepo.FindPublished(golang.Slug, 1)
	require.NoError(t, err)
	require.Len(t, page.Blogs, 1)
	assert.Equal(t, tagged.ID, page.Blogs[0].ID)

	// Unknown tag slug is a not-found, not an empty page.
	_, err = blogRepo.FindPublished("no-such-tag", 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindPublishedBySlug(t *testing.T) {
	db := testDB(t)
	repo := NewBlogRepo(db)

	published := createTestBlog(t, repo, "Readable through the public surface", models.StatusPublished)
	draft := createTestBlog(t, repo, "A hidden draft blog entry", models.StatusDraft)

	found, err := repo.FindPublishedBySlug(published.Slug)
	require.NoError(t, err)
	assert.Equal(t, published.ID, found.ID)

	// Drafts are invisible by slug on the public surface.
	_, err = repo.FindPublishedBySlug(draft.Slug)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBlogDeleteKeepsSections(t *testing.T) {
	db := testDB(t)
	blogRepo := NewBlogRepo(db)
	sectionRepo := NewSectionRepo(db)
	bsRepo := NewBlogSectionRepo(db)

	blog := createTestBlog(t, blogRepo, "A blog built from sections", models.StatusPublished)
	section := createTestSection(t, sectionRepo, "Shared introduction")
	_, err := bsRepo.Attach(blog.ID, section.ID, 0)
	require.NoError(t, err)

	require.NoError(t, blogRepo.Delete(blog.ID))

	var associations int64
	require.NoError(t, db.Model(&models.BlogSection{}).Count(&associations).Error)
	assert.Zero(t, associations)

	// The shared section survives.
	_, err = sectionRepo.FindByID(section.ID)
	assert.NoError(t, err)
}

func TestPublishAndArchive(t *testing.T) {
	db := testDB(t)
	repo := NewBlogRepo(db)

	draft := createTestBlog(t, repo, "Draft awaiting publication", models.StatusDraft)
	require.Nil(t, draft.PublishDate)

	updated, err := repo.Publish([]uuid.UUID{draft.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	published, err := repo.FindByID(draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, published.Status)
	require.NotNil(t, published.PublishDate)

	stamp := *published.PublishDate
	updated, err = repo.Archive([]uuid.UUID{draft.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	archived, err := repo.FindByID(draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusArchived, archived.Status)
	// Leaving the published state never clears the stamp.
	require.NotNil(t, archived.PublishDate)
	assert.WithinDuration(t, stamp, *archived.PublishDate, time.Second)
}
