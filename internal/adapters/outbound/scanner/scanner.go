// Package scanner discovers Python test and source files on disk.
package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"github.com/testforge/testforge/internal/domain"
)

// FileScanner implements domain.ProjectScanner by walking the filesystem.
// Include patterns match base names; excluded directory names prune whole
// subtrees.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

func (s *FileScanner) Scan(projectPath string, cfg domain.QualityConfig) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	testGlobs, err := compilePatterns(cfg.TestFilePatterns)
	if err != nil {
		return nil, err
	}
	sourceGlobs, err := compilePatterns(cfg.SourceFilePatterns)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(cfg.ExcludeDirs))
	for _, dir := range cfg.ExcludeDirs {
		excluded[dir] = true
	}

	result := &domain.ScanResult{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != absPath && excluded[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, relErr := filepath.Rel(absPath, path)
		if relErr != nil {
			return relErr
		}

		switch {
		case matchAny(testGlobs, d.Name()):
			result.TestFiles = append(result.TestFiles, relPath)
		case matchAny(sourceGlobs, d.Name()):
			result.SourceFiles = append(result.SourceFiles, relPath)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// WalkDir order is lexical per directory but make the contract explicit.
	sort.Strings(result.TestFiles)
	sort.Strings(result.SourceFiles)

	return result, nil
}

func compilePatterns(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matchAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
