package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Rename changes an entry's name within its directory. The category and
// folder path stay fixed.
func (s *Store) Rename(ctx context.Context, catName, rel, newName string) (string, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return "", fmt.Errorf("%w: new name is required", ErrInvalidInput)
	}
	if strings.ContainsAny(newName, `/\`) {
		return "", fmt.Errorf("%w: name %q may not contain path separators", ErrInvalidInput, newName)
	}
	cat, err := parseCategory(catName)
	if err != nil {
		return "", err
	}
	oldPath, err := s.resolve(cat, rel)
	if err != nil {
		return "", err
	}
	if !exists(oldPath) {
		return "", fmt.Errorf("%w: %s/%s", ErrNotFound, catName, rel)
	}
	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if exists(newPath) {
		return "", fmt.Errorf("%w: %q already exists", ErrConflict, newName)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return "", fmt.Errorf("renaming %s: %w", rel, err)
	}
	s.logger().Info(ctx, "renamed entry", "category", catName, "from", rel, "to", newName)
	return newName, nil
}

// Move relocates a file or folder to another category and/or subfolder,
// creating the destination directory tree as needed. A folder moves as a
// whole subtree in a single rename when source and destination share a
// filesystem.
func (s *Store) Move(ctx context.Context, catName, rel, newCatName, targetPath string) (Entry, error) {
	cat, err := parseCategory(catName)
	if err != nil {
		return Entry{}, err
	}
	newCat, err := parseCategory(newCatName)
	if err != nil {
		return Entry{}, err
	}

	srcPath, err := s.resolve(cat, rel)
	if err != nil {
		return Entry{}, err
	}
	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{}, fmt.Errorf("%w: %s/%s", ErrNotFound, catName, rel)
		}
		return Entry{}, err
	}

	destRel := normalizeRel(targetPath)
	destDir, err := s.resolve(newCat, destRel)
	if err != nil {
		return Entry{}, err
	}
	destPath := filepath.Join(destDir, filepath.Base(srcPath))
	if destPath == srcPath {
		return Entry{}, fmt.Errorf("%w: source and destination are the same", ErrConflict)
	}
	if srcInfo.IsDir() && strings.HasPrefix(destDir+string(filepath.Separator), srcPath+string(filepath.Separator)) {
		return Entry{}, fmt.Errorf("%w: cannot move a folder into itself", ErrInvalidInput)
	}
	if exists(destPath) {
		return Entry{}, fmt.Errorf("%w: %q already exists at destination", ErrConflict, filepath.Base(srcPath))
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return Entry{}, fmt.Errorf("creating destination %s: %w", destDir, err)
	}

	if srcInfo.IsDir() {
		err = os.Rename(srcPath, destPath)
	} else {
		err = moveFile(srcPath, destPath)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("moving %s: %w", rel, err)
	}

	info, err := os.Stat(destPath)
	if err != nil {
		return Entry{}, err
	}
	s.logger().Info(ctx, "moved entry",
		"from", catName+"/"+rel,
		"to", newCatName+"/"+path.Join(destRel, info.Name()),
	)
	return newEntry(newCat, destRel, info), nil
}

// DeleteFile removes a single file unconditionally.
func (s *Store) DeleteFile(ctx context.Context, catName, rel string) error {
	cat, err := parseCategory(catName)
	if err != nil {
		return err
	}
	p, err := s.resolve(cat, rel)
	if err != nil {
		return err
	}
	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s/%s", ErrNotFound, catName, rel)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s/%s is a folder", ErrInvalidInput, catName, rel)
	}
	if err := os.Remove(p); err != nil {
		return fmt.Errorf("deleting %s: %w", rel, err)
	}
	s.logger().Info(ctx, "deleted file", "category", catName, "path", rel)
	return nil
}

// DeleteFolder removes a folder only when it is empty. Non-empty folders
// are rejected; there is no recursive delete.
func (s *Store) DeleteFolder(ctx context.Context, catName, rel string) error {
	if normalizeRel(rel) == "" {
		return fmt.Errorf("%w: cannot delete a category root", ErrInvalidInput)
	}
	cat, err := parseCategory(catName)
	if err != nil {
		return err
	}
	p, err := s.resolve(cat, rel)
	if err != nil {
		return err
	}
	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s/%s", ErrNotFound, catName, rel)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s/%s is not a folder", ErrInvalidInput, catName, rel)
	}
	children, err := os.ReadDir(p)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return fmt.Errorf("%w: folder is not empty", ErrConflict)
	}
	if err := os.Remove(p); err != nil {
		return fmt.Errorf("deleting folder %s: %w", rel, err)
	}
	s.logger().Info(ctx, "deleted folder", "category", catName, "path", rel)
	return nil
}

// CreateFolder creates a named folder under category/path, sanitizing the
// name first. Missing intermediate path segments are created.
func (s *Store) CreateFolder(ctx context.Context, catName, parentRel, name string) (Folder, error) {
	cat, err := parseCategory(catName)
	if err != nil {
		return Folder{}, err
	}
	clean := SanitizeFolderName(name)
	if clean == "" {
		return Folder{}, fmt.Errorf("%w: folder name is empty after sanitization", ErrInvalidInput)
	}
	parentDir, err := s.resolve(cat, parentRel)
	if err != nil {
		return Folder{}, err
	}
	target := filepath.Join(parentDir, clean)
	if exists(target) {
		return Folder{}, fmt.Errorf("%w: %q already exists", ErrConflict, clean)
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return Folder{}, fmt.Errorf("creating folder %s: %w", clean, err)
	}
	folder := Folder{Name: clean, Path: path.Join(normalizeRel(parentRel), clean)}
	s.logger().Info(ctx, "created folder", "category", catName, "path", folder.Path)
	return folder, nil
}

// SanitizeFolderName strips filesystem-unsafe characters from a folder name.
// Slash is a stripped character here, not a path separator: "Taxes/2024"
// becomes "Taxes2024", never a nested path.
func SanitizeFolderName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(`/\:*?"<>|`, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
