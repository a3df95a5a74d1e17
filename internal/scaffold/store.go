// Package scaffold owns the on-disk layout of generated React projects: the
// fixed scaffold files and a project store backed by a billy.Filesystem.
package scaffold

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"react_scaffold_server/internal/utils"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store reads and writes generated projects below a single root directory.
// Paths handed to the filesystem never leave that root.
type Store struct {
	fs billy.Filesystem
}

// NewStore wraps an existing filesystem.
func NewStore(fs billy.Filesystem) *Store {
	return &Store{fs: fs}
}

// NewOSStore creates root if needed and returns a Store on the OS filesystem.
func NewOSStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", root, err)
	}
	return NewStore(osfs.New(root)), nil
}

// ValidateProjectName rejects names that are not a single path element.
func ValidateProjectName(name string) error {
	if !utils.IsSafePathElement(name) {
		return fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	}
	return nil
}

// ProjectPath returns the location of a project as reported to clients.
func (s *Store) ProjectPath(name string) string {
	return filepath.Join(s.fs.Root(), name)
}

// Exists reports whether the project directory is present.
func (s *Store) Exists(name string) bool {
	if ValidateProjectName(name) != nil {
		return false
	}
	info, err := s.fs.Stat(name)
	return err == nil && info.IsDir()
}

// WriteScaffold creates the project and its source directory and writes
// every static scaffold file. Existing files are overwritten.
func (s *Store) WriteScaffold(name string) error {
	if err := ValidateProjectName(name); err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Join(name, SourceDir), dirPerm); err != nil {
		return fmt.Errorf("failed to create project %s: %w", name, err)
	}

	files, err := StaticFiles(name)
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := s.WriteFile(name, path, files[path]); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes content to a project-relative path, creating parent
// directories as needed.
func (s *Store) WriteFile(name, rel, content string) error {
	if err := ValidateProjectName(name); err != nil {
		return err
	}

	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if cleaned == "." || filepath.IsAbs(cleaned) || cleaned == ".." ||
		strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrPathOutsideProject, rel)
	}

	full := filepath.Join(name, cleaned)
	dir := filepath.Dir(full)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := util.WriteFile(s.fs, full, []byte(content), filePerm); err != nil {
		return fmt.Errorf("failed to write file %s: %w", full, err)
	}

	log.Printf("File saved: %s (%s)", full, utils.DetermineFileType(cleaned))
	return nil
}

// ListFiles returns every file of a project relative to its root,
// slash-separated and sorted.
func (s *Store) ListFiles(name string) ([]string, error) {
	if err := ValidateProjectName(name); err != nil {
		return nil, err
	}

	info, err := s.fs.Stat(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, name)
		}
		return nil, fmt.Errorf("failed to check project %s: %w", name, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, name)
	}

	files := []string{}
	err = util.Walk(s.fs, name, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(name, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk project %s: %w", name, err)
	}

	sort.Strings(files)
	return files, nil
}
