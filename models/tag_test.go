package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagNormalizeDerivesSlug(t *testing.T) {
	tag := &Tag{Name: "Backend Development"}
	tag.Normalize()

	assert.Equal(t, "backend-development", tag.Slug)

	// Idempotent: same name, same slug.
	again := &Tag{Name: "Backend Development"}
	again.Normalize()
	assert.Equal(t, tag.Slug, again.Slug)
}

func TestTagNormalizeKeepsExplicitSlug(t *testing.T) {
	tag := &Tag{Name: "Backend Development", Slug: "backend"}
	tag.Normalize()

	assert.Equal(t, "backend", tag.Slug)
}

func TestTagValidate(t *testing.T) {
	tag := &Tag{Name: "Databases"}
	tag.Normalize()
	assert.NoError(t, tag.Validate())

	short := &Tag{Name: "Got"}
	short.Normalize()
	assert.Error(t, short.Validate())

	long := &Tag{Name: string(bigText(51))}
	long.Normalize()
	assert.Error(t, long.Validate())
}

func TestMessageValidate(t *testing.T) {
	msg := &Message{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Consulting",
		Body:    "I would like to talk about a project.",
	}
	msg.Normalize()
	assert.NoError(t, msg.Validate())

	bad := &Message{Name: "Ada", Email: "not-an-email", Body: "hi"}
	bad.Normalize()
	assert.Error(t, bad.Validate())

	empty := &Message{}
	empty.Normalize()
	assert.Error(t, empty.Validate())
}
