package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/inkwell/inkwell-backend/internal/common"
)

// MediaService business logic for administrator media uploads
type MediaService interface {
	// SaveUpload writes the file into the upload directory under a
	// sanitized name and returns that name. Same name overwrites.
	SaveUpload(file *multipart.FileHeader) (string, error)
}

type mediaService struct {
	uploadDir string
}

// NewMediaService creates a new MediaService
func NewMediaService(uploadDir string) MediaService {
	return &mediaService{uploadDir: uploadDir}
}

// SaveUpload stores an uploaded file on local disk
func (s *mediaService) SaveUpload(file *multipart.FileHeader) (string, error) {
	name := SanitizeFilename(file.Filename)
	if name == "" {
		return "", common.ErrInvalidInput
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return name, nil
}

// SanitizeFilename strips path components and unsafe characters from
// a client-supplied filename. Whitespace collapses to underscores;
// anything outside [A-Za-z0-9._-] is dropped. Returns "" when nothing
// safe remains.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	name = strings.Join(strings.Fields(name), "_")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	return strings.Trim(b.String(), "._-")
}
