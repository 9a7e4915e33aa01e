package storage

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/izonak/localbox/internal/category"
)

// Sort keys accepted by List. Direction is "asc" or "desc"; the default is
// newest first.
const (
	SortByDate = "date"
	SortBySize = "size"
	SortByName = "name"
)

// Listing is the result of a hierarchy query.
type Listing struct {
	Entries     []Entry `json:"entries"`
	Total       int     `json:"total"`
	CurrentPath string  `json:"currentPath"`
	ParentPath  *string `json:"parentPath"`
}

// List returns the immediate children of a category directory, folders
// sorted before files. An empty or "all" category flattens every category's
// root-level files into one list, folders excluded. A nonexistent directory
// yields an empty listing, not an error.
func (s *Store) List(catName, rel, sortKey, order string) (Listing, error) {
	if catName == "" || catName == "all" {
		entries, err := s.listAllRoots()
		if err != nil {
			return Listing{}, err
		}
		sortEntries(entries, sortKey, order)
		return Listing{Entries: entries, Total: len(entries)}, nil
	}

	cat, err := parseCategory(catName)
	if err != nil {
		return Listing{}, err
	}
	dir, err := s.resolve(cat, rel)
	if err != nil {
		return Listing{}, err
	}

	entries, err := s.readDir(cat, normalizeRel(rel), dir)
	if err != nil {
		return Listing{}, err
	}
	sortEntries(entries, sortKey, order)
	return Listing{
		Entries:     entries,
		Total:       len(entries),
		CurrentPath: normalizeRel(rel),
		ParentPath:  parentPath(normalizeRel(rel)),
	}, nil
}

// listAllRoots flattens root-level files across all categories.
func (s *Store) listAllRoots() ([]Entry, error) {
	var all []Entry
	for _, cat := range category.All() {
		entries, err := s.readDir(cat, "", filepath.Join(s.base, cat.String()))
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.Type == TypeFile {
				all = append(all, e)
			}
		}
	}
	return all, nil
}

func (s *Store) readDir(cat category.Category, rel, dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		info, err := d.Info()
		if err != nil {
			// Entry vanished mid-scan; describe the rest.
			continue
		}
		entries = append(entries, newEntry(cat, rel, info))
	}
	return entries, nil
}

// FoldersRecursive walks a category depth-first and returns every folder
// with its full relative path, for move and upload destination pickers.
// Symlinked directories are not followed.
func (s *Store) FoldersRecursive(catName string) ([]Folder, error) {
	cat, err := parseCategory(catName)
	if err != nil {
		return nil, err
	}
	root := filepath.Join(s.base, cat.String())
	folders := []Folder{}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !d.IsDir() || p == root {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		folders = append(folders, Folder{
			Name: d.Name(),
			Path: filepath.ToSlash(rel),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// parentPath drops the last slash-delimited segment; nil at the root.
func parentPath(rel string) *string {
	if rel == "" {
		return nil
	}
	parent := path.Dir(rel)
	if parent == "." || parent == "/" {
		parent = ""
	}
	return &parent
}

func normalizeRel(rel string) string {
	rel = path.Clean(strings.Trim(rel, "/"))
	if rel == "." {
		return ""
	}
	return rel
}

func sortEntries(entries []Entry, key, order string) {
	desc := true
	switch order {
	case "asc":
		desc = false
	case "desc", "":
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Type != b.Type {
			return a.Type == TypeFolder
		}
		var less bool
		switch key {
		case SortByName:
			less = strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortBySize:
			less = a.Size < b.Size
		default:
			less = a.CreatedAt.Before(b.CreatedAt)
		}
		if desc {
			return !less && !equalByKey(a, b, key)
		}
		return less
	})
}

func equalByKey(a, b Entry, key string) bool {
	switch key {
	case SortByName:
		return strings.EqualFold(a.Name, b.Name)
	case SortBySize:
		return a.Size == b.Size
	default:
		return a.CreatedAt.Equal(b.CreatedAt)
	}
}
