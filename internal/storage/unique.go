package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UniquePath returns a path inside dir that does not exist at call time.
// If dir/name is free it is returned unchanged; otherwise the stem gets an
// underscore counter: name_1.ext, name_2.ext, and so on.
//
// The existence probe and the eventual create are separate steps, so two
// concurrent writers into the same directory can race each other. That is a
// known limitation of the single-user deployment, not something this
// function defends against.
func UniquePath(dir, name string) string {
	candidate := filepath.Join(dir, name)
	if !exists(candidate) {
		return candidate
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
