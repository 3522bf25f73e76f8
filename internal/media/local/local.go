package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/media"
)

// Categories with a dedicated directory under the media root. Uploads are
// only ever written into one of these.
var categories = []string{"portfolio", "catalogue"}

type Store struct {
	basePath string
}

var _ media.Store = (*Store)(nil)

// New creates the media root and one directory per category.
func New(basePath string) (*Store, error) {
	for _, c := range categories {
		if err := os.MkdirAll(filepath.Join(basePath, c), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create media directory: %w", err)
		}
	}
	return &Store{basePath: basePath}, nil
}

func (s *Store) Dir() string {
	return s.basePath
}

// Save writes r into the category directory under a random name that keeps
// the original extension. The 128-bit random token makes collisions
// negligible.
func (s *Store) Save(ctx context.Context, category, ext string, r io.Reader) (string, error) {
	dir, err := s.categoryDir(category)
	if err != nil {
		return "", err
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if strings.ContainsAny(ext, "/\\") {
		return "", fmt.Errorf("invalid file extension %q", ext)
	}

	filename := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	filePath := filepath.Join(dir, filename)

	f, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(filePath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	return filename, nil
}

func (s *Store) Remove(ctx context.Context, category, filename string) error {
	dir, err := s.categoryDir(category)
	if err != nil {
		return err
	}
	if filename != filepath.Base(filename) || filename == "." || filename == "" {
		return fmt.Errorf("invalid media filename %q", filename)
	}
	if err := os.Remove(filepath.Join(dir, filename)); err != nil {
		return fmt.Errorf("failed to remove media file: %w", err)
	}
	return nil
}

func (s *Store) categoryDir(category string) (string, error) {
	for _, c := range categories {
		if c == category {
			return filepath.Join(s.basePath, c), nil
		}
	}
	return "", fmt.Errorf("unknown media category %q", category)
}
