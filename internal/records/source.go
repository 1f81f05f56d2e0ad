package records

import (
	"context"
	"strings"
)

// Source supplies the record collection shown by the UI.
type Source interface {
	// Load returns a fresh copy of the records.
	Load(ctx context.Context) ([]Record, error)
	// Path is the backing file, or "" when the source cannot change.
	Path() string
	// Name is a short label for status lines.
	Name() string
}

// FileSource reads records from a file on every Load.
type FileSource struct {
	path string
}

// NewFileSource returns a Source backed by the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: strings.TrimSpace(path)}
}

func (s *FileSource) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Load(s.path)
}

func (s *FileSource) Path() string { return s.path }

func (s *FileSource) Name() string { return s.path }

// SampleSource serves the embedded demo roster.
type SampleSource struct{}

func (SampleSource) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Sample(), nil
}

func (SampleSource) Path() string { return "" }

func (SampleSource) Name() string { return "sample roster" }

// NewSource picks a FileSource when path is set and the sample otherwise.
func NewSource(path string) Source {
	if strings.TrimSpace(path) == "" {
		return SampleSource{}
	}
	return NewFileSource(path)
}
