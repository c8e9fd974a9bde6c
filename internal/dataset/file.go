package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lagosrent/rentoracle/internal/domain"
)

// FileSource implements domain.DatasetSource over a local JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads and decodes the dataset file. A missing file maps to
// domain.ErrDatasetNotFound so the caller can distinguish "collaborator
// absent" from "collaborator corrupt".
func (s *FileSource) Fetch(ctx context.Context) ([]domain.Area, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("dataset: open %s: %w", s.path, domain.ErrDatasetNotFound)
		}
		return nil, fmt.Errorf("dataset: open %s: %w", s.path, err)
	}
	defer f.Close()

	areas, err := DecodeAreas(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: file %s: %w", s.path, err)
	}
	return areas, nil
}

// Close implements domain.DatasetSource; a file source holds no resources
// between fetches.
func (s *FileSource) Close() {}

// Compile-time interface check.
var _ domain.DatasetSource = (*FileSource)(nil)
