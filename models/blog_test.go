package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugShape = regexp.MustCompile(`^[a-z0-9-]+$`)

func TestBlogNormalizeDerivesSlug(t *testing.T) {
	testCases := []struct {
		name  string
		title string
	}{
		{"simple title", "My First Blog Post"},
		{"punctuation", "Go, Gorm & Chi: a field guide!"},
		{"mixed case", "WHY I Switched To Postgres"},
		{"unicode", "Déploiement continu en production"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := &Blog{Title: tc.title}
			b.Normalize(time.Now())

			require.NotEmpty(t, b.Slug)
			assert.Regexp(t, slugShape, b.Slug)
			assert.NotEqual(t, "-", b.Slug[:1])
			assert.NotEqual(t, "-", b.Slug[len(b.Slug)-1:])

			// Re-deriving from the same title is idempotent.
			again := &Blog{Title: tc.title}
			again.Normalize(time.Now())
			assert.Equal(t, b.Slug, again.Slug)
		})
	}
}

func TestBlogNormalizeKeepsExplicitSlug(t *testing.T) {
	b := &Blog{Title: "A perfectly fine title", Slug: "custom-slug"}
	b.Normalize(time.Now())

	assert.Equal(t, "custom-slug", b.Slug)
}

func TestBlogNormalizeDefaults(t *testing.T) {
	b := &Blog{Title: "A perfectly fine title"}
	b.Normalize(time.Now())

	assert.Equal(t, StatusDraft, b.Status)
	assert.Equal(t, DefaultBanner, b.Banner)
	assert.Nil(t, b.PublishDate)
	assert.Nil(t, b.PublishDay)
}

func TestBlogNormalizeStampsPublishDate(t *testing.T) {
	before := time.Now()
	b := &Blog{Title: "A perfectly fine title", Status: StatusPublished}
	b.Normalize(time.Now())

	require.NotNil(t, b.PublishDate)
	assert.False(t, b.PublishDate.Before(before))
	require.NotNil(t, b.PublishDay)
	assert.Equal(t, b.PublishDate.UTC().Format("2006-01-02"), *b.PublishDay)

	// A second save without a status change must not move the date.
	stamped := *b.PublishDate
	b.Normalize(time.Now().Add(time.Hour))
	assert.Equal(t, stamped, *b.PublishDate)
}

func TestBlogNormalizeNeverClearsPublishDate(t *testing.T) {
	b := &Blog{Title: "A perfectly fine title", Status: StatusPublished}
	b.Normalize(time.Now())
	require.NotNil(t, b.PublishDate)

	b.Status = StatusArchived
	b.Normalize(time.Now())

	assert.NotNil(t, b.PublishDate)
	assert.NotNil(t, b.PublishDay)
}

func TestBlogValidate(t *testing.T) {
	now := time.Now()

	valid := func() *Blog {
		return &Blog{Title: "A perfectly fine title", Summary: "short summary"}
	}

	b := valid()
	b.Normalize(now)
	assert.NoError(t, b.Validate())

	testCases := []struct {
		name   string
		mutate func(*Blog)
	}{
		{"short title", func(b *Blog) { b.Title = "too short" }},
		{"long title", func(b *Blog) { b.Title = string(bigText(201)) }},
		{"long summary", func(b *Blog) { b.Summary = string(bigText(501)) }},
		{"bad banner extension", func(b *Blog) { b.Banner = "banner.gif" }},
		{"bad status", func(b *Blog) { b.Status = "pending" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := valid()
			b.Normalize(now)
			tc.mutate(b)
			assert.Error(t, b.Validate())
		})
	}
}

func TestBlogIsPublished(t *testing.T) {
	assert.True(t, (&Blog{Status: StatusPublished}).IsPublished())
	assert.False(t, (&Blog{Status: StatusDraft}).IsPublished())
	assert.False(t, (&Blog{Status: StatusArchived}).IsPublished())
}

func bigText(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = 'a'
	}
	return out
}
