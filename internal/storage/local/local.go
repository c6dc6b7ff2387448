package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ondrasimku/image-catalog-go/internal/storage"
)

// LocalStore writes blobs into a flat directory. Names are a unix-millisecond
// prefix joined to the client's original filename, so concurrent uploads of
// the same file land under distinct names.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}

	return &LocalStore{baseDir: baseDir}, nil
}

// BaseDir is the directory the HTTP layer serves stored blobs from.
func (s *LocalStore) BaseDir() string {
	return s.baseDir
}

func (s *LocalStore) Save(ctx context.Context, r io.Reader, originalName string) (string, error) {
	base := filepath.Base(originalName)
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = uuid.New().String()
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
	file, err := s.create(name)
	if errors.Is(err, fs.ErrExist) {
		// Same filename in the same millisecond; disambiguate with a uuid.
		name = fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.New().String(), base)
		file, err = s.create(name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		os.Remove(filepath.Join(s.baseDir, name))
		return "", fmt.Errorf("failed to write blob file: %w", err)
	}

	return name, nil
}

func (s *LocalStore) create(name string) (*os.File, error) {
	return os.OpenFile(filepath.Join(s.baseDir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
}

var _ storage.BlobStore = (*LocalStore)(nil)
