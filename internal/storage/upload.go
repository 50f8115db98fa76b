package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ValidateImageExtension rejects anything that is not a site image.
func ValidateImageExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedImageExt[ext] {
		return errors.New("file type not allowed")
	}

	return nil
}

// ImageKey builds the object key for an uploaded site image,
// e.g. images/banners/8f14e45f.jpg
func ImageKey(section, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if section == "" {
		section = "misc"
	}
	return fmt.Sprintf("images/%s/%s%s", section, uuid.New().String(), ext)
}
