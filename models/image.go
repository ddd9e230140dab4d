package models

import (
	"path/filepath"
	"strings"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidImageExtension reports whether a filename carries one of the allowed
// image extensions. The same check guards entity fields and uploads.
func ValidImageExtension(name string) bool {
	return allowedImageExtensions[strings.ToLower(filepath.Ext(name))]
}
