// Package report persists project reports as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/testforge/testforge/internal/domain"
)

// FileStore implements domain.ReportStore with plain JSON files. Writes are
// last-writer-wins and not atomic; callers running concurrent analyses over
// the same report path must serialize them.
type FileStore struct{}

func New() *FileStore {
	return &FileStore{}
}

func (s *FileStore) Save(rep *domain.ProjectReport, path string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func (s *FileStore) Load(path string) (*domain.ProjectReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	var rep domain.ProjectReport
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	return &rep, nil
}
