package libs

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore saves uploaded images under the server's upload directory and
// serves them from /uploads. It stands in for Cloudinary in setups without
// asset-store credentials.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	itemDir := filepath.Join(dir, "items")
	if err := os.MkdirAll(itemDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) ValidateImageFile(file *multipart.FileHeader) error {
	return validateImageFile(file)
}

func (s *LocalStore) Upload(_ context.Context, file multipart.File, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, "items", name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return "/uploads/items/" + name, nil
}
