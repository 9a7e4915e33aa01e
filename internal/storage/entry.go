package storage

import (
	"io/fs"
	"path"
	"syscall"
	"time"

	"github.com/izonak/localbox/internal/category"
)

// EntryType distinguishes files from folders in listings.
type EntryType string

const (
	TypeFile   EntryType = "file"
	TypeFolder EntryType = "folder"
)

// Entry is a file or folder addressed by (category, path, name), where Path
// is the slash-separated folder path relative to the category root ("" for
// the root itself). Size is 0 for folders.
type Entry struct {
	Name       string            `json:"name"`
	Category   category.Category `json:"category"`
	Path       string            `json:"path"`
	Type       EntryType         `json:"type"`
	Size       int64             `json:"size"`
	CreatedAt  time.Time         `json:"createdAt"`
	ModifiedAt time.Time         `json:"modifiedAt"`
}

// Address returns the entry's path relative to the category root, including
// the name itself.
func (e Entry) Address() string {
	return path.Join(e.Path, e.Name)
}

// Folder is a node in the recursive folder listing used by destination
// pickers.
type Folder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func newEntry(cat category.Category, relDir string, info fs.FileInfo) Entry {
	e := Entry{
		Name:       info.Name(),
		Category:   cat,
		Path:       relDir,
		Type:       TypeFile,
		Size:       info.Size(),
		CreatedAt:  createdAt(info),
		ModifiedAt: info.ModTime(),
	}
	if info.IsDir() {
		e.Type = TypeFolder
		e.Size = 0
	}
	return e
}

// createdAt extracts the inode change time, the closest thing Linux offers
// to a creation timestamp through stat. Falls back to the modification time.
func createdAt(info fs.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return info.ModTime()
}
