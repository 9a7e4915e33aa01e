package storage

import (
	"os"
	"path/filepath"

	"github.com/izonak/localbox/internal/category"
)

// CategoryStats aggregates a single category's direct children.
type CategoryStats struct {
	Count int   `json:"count"`
	Size  int64 `json:"size"`
}

// Totals aggregates every category.
type Totals struct {
	Files int   `json:"files"`
	Size  int64 `json:"size"`
}

// Stats counts files and bytes per category by iterating each category
// root's direct children. Subfolder contents are deliberately NOT counted,
// matching long-standing behavior: totals can undercount once users nest
// folders. Entries that fail to stat mid-scan are skipped, not fatal.
func (s *Store) Stats() (map[category.Category]CategoryStats, Totals, error) {
	perCategory := make(map[category.Category]CategoryStats, len(category.All()))
	var totals Totals
	for _, cat := range category.All() {
		dirents, err := os.ReadDir(filepath.Join(s.base, cat.String()))
		if err != nil && !os.IsNotExist(err) {
			return nil, Totals{}, err
		}
		var cs CategoryStats
		for _, d := range dirents {
			if d.IsDir() {
				continue
			}
			info, err := d.Info()
			if err != nil {
				continue
			}
			cs.Count++
			cs.Size += info.Size()
		}
		perCategory[cat] = cs
		totals.Files += cs.Count
		totals.Size += cs.Size
	}
	return perCategory, totals, nil
}
