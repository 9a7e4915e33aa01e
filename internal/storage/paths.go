package storage

import (
	"fmt"
	"os"
)

// FilePath validates that category/rel names an existing regular file and
// returns its absolute path, for streaming handlers.
func (s *Store) FilePath(catName, rel string) (string, error) {
	cat, err := parseCategory(catName)
	if err != nil {
		return "", err
	}
	p, err := s.resolve(cat, rel)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s/%s", ErrNotFound, catName, rel)
		}
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s/%s is a folder", ErrInvalidInput, catName, rel)
	}
	return p, nil
}

// FolderPath validates that category/rel names an existing directory and
// returns its absolute path, for archive streaming.
func (s *Store) FolderPath(catName, rel string) (string, error) {
	cat, err := parseCategory(catName)
	if err != nil {
		return "", err
	}
	p, err := s.resolve(cat, rel)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s/%s", ErrNotFound, catName, rel)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s/%s is not a folder", ErrInvalidInput, catName, rel)
	}
	return p, nil
}
