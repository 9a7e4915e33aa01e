// Package storage implements the categorized file store: placement of
// uploaded files into category/subfolder directories, collision-free naming,
// hierarchy listing, and the structural mutations (rename, move, delete,
// create-folder). The directory tree under the storage root is the single
// source of truth; there is no index or database.
//
// No in-process locking guards the tree. Collision checks and empty-folder
// checks are check-then-act and can race under concurrent writers; the
// deployment target is single-user, and the worst outcome of the race is a
// failed syscall, not corruption.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/izonak/localbox/internal/category"
	"github.com/izonak/localbox/internal/logging"
)

// tmpDirName holds in-flight uploads inside the storage root. It is never
// exposed through the query API.
const tmpDirName = "tmp"

// Store is a categorized file store rooted at a single base directory.
type Store struct {
	base string
	log  logging.Logger
}

// New resolves base to an absolute path, creates one directory per category
// plus the upload staging directory, and returns the store.
func New(base string, log logging.Logger) (*Store, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolving storage root %s: %w", base, err)
	}
	s := &Store{base: abs, log: log}
	if err := s.ensureLayout(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureLayout() error {
	dirs := []string{filepath.Join(s.base, tmpDirName)}
	for _, cat := range category.All() {
		dirs = append(dirs, filepath.Join(s.base, cat.String()))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating storage directory %s: %w", dir, err)
		}
	}
	return nil
}

// Base returns the absolute storage root.
func (s *Store) Base() string {
	return s.base
}

// StagingDir returns the directory the upload transport assembles chunks in.
func (s *Store) StagingDir() string {
	return filepath.Join(s.base, tmpDirName)
}

// resolve joins the category root with a relative path, rejecting anything
// that would escape the category directory.
func (s *Store) resolve(cat category.Category, rel string) (string, error) {
	root := filepath.Join(s.base, cat.String())
	if rel == "" {
		return root, nil
	}
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." {
		return root, nil
	}
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: path %q escapes category root", ErrInvalidInput, rel)
	}
	return filepath.Join(root, clean), nil
}

// parseCategory validates a caller-supplied category name.
func parseCategory(name string) (category.Category, error) {
	cat, ok := category.Parse(name)
	if !ok {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, name)
	}
	return cat, nil
}

func (s *Store) logger() logging.Logger {
	if s.log != nil {
		return s.log
	}
	return logging.Default(false)
}
