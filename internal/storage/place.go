package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/izonak/localbox/internal/category"
)

// ExplicitTarget pins a placement to a caller-chosen category and subfolder
// instead of the extension-inferred category.
type ExplicitTarget struct {
	Category category.Category
	Subpath  string
}

// PlacementRequest describes a completed staging file to be moved into final
// storage. When Explicit is nil the category is inferred from OriginalName
// and the file lands flat in the category root. RelativePath carries the
// browser-supplied path of a folder upload (e.g. "trip/day1/photo.jpg");
// its directory component is appended under the explicit subpath so folder
// structure survives batch uploads.
type PlacementRequest struct {
	StagingPath  string
	OriginalName string
	Explicit     *ExplicitTarget
	RelativePath string
}

// Place classifies, names, and moves a staging file into its final location,
// creating intermediate directories as needed. The move is the last step, so
// a failure leaves no partial state behind. Returns the resulting entry.
func (s *Store) Place(ctx context.Context, req PlacementRequest) (Entry, error) {
	if req.OriginalName == "" || req.OriginalName != filepath.Base(req.OriginalName) {
		return Entry{}, fmt.Errorf("%w: bad original filename %q", ErrInvalidInput, req.OriginalName)
	}

	cat, sub := s.target(req)

	dir, err := s.resolve(cat, sub)
	if err != nil {
		return Entry{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Entry{}, fmt.Errorf("creating target directory %s: %w", dir, err)
	}

	dest := UniquePath(dir, req.OriginalName)
	if err := moveFile(req.StagingPath, dest); err != nil {
		return Entry{}, fmt.Errorf("moving %s into place: %w", req.OriginalName, err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		return Entry{}, fmt.Errorf("stat after placement: %w", err)
	}
	entry := newEntry(cat, sub, info)
	s.logger().Info(ctx, "categorized upload",
		"original", req.OriginalName,
		"category", cat,
		"path", entry.Address(),
	)
	return entry, nil
}

// target resolves the explicit-vs-inferred choice once, before any
// directory logic runs.
func (s *Store) target(req PlacementRequest) (category.Category, string) {
	if req.Explicit == nil {
		return category.Classify(req.OriginalName), ""
	}
	sub := path.Clean(req.Explicit.Subpath)
	if sub == "." || sub == "/" {
		sub = ""
	}
	if relDir := path.Dir(path.Clean(req.RelativePath)); relDir != "." && relDir != "/" {
		sub = path.Join(sub, relDir)
	}
	return req.Explicit.Category, sub
}

// moveFile renames src to dest, falling back to copy+delete when the two
// sit on different filesystems. The fallback has a crash window between
// copy and delete during which the file exists twice; the copy is not
// fsynced first.
func moveFile(src, dest string) error {
	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, unix.EXDEV) {
		if err := copyFile(src, dest); err != nil {
			return err
		}
		return os.Remove(src)
	}
	return err
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	return out.Close()
}
