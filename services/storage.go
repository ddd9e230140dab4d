package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"github.com/jfalcomer/devblog-backend/errs"
	"github.com/jfalcomer/devblog-backend/models"
)

// Storage is the file-storage collaborator. Store persists the content
// under the given key and returns the public path or URL for it.
type Storage interface {
	Store(ctx context.Context, key string, content io.Reader, contentType string) (string, error)
}

// SectionImagePath derives the storage key for a section image from the
// slugified section title and filename. The derivation is deterministic;
// re-uploading the same filename overwrites the previous object.
func SectionImagePath(sectionTitle, filename string) (string, error) {
	return imagePath("sections", sectionTitle, filename)
}

// BlogBannerPath derives the storage key for a blog banner
func BlogBannerPath(blogTitle, filename string) (string, error) {
	return imagePath("blogs", blogTitle, filename)
}

func imagePath(prefix, title, filename string) (string, error) {
	if !models.ValidImageExtension(filename) {
		return "", errs.NewInvalidFieldError("file", "must be a jpg, jpeg or png file")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return fmt.Sprintf("%s/%s/%s%s", prefix, slug.Make(title), slug.Make(base), ext), nil
}

// ContentTypeForImage maps an image filename to its MIME type
func ContentTypeForImage(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	}
	return "application/octet-stream"
}
