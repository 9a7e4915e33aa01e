package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRename(t *testing.T) {
	s := newTestStore(t)
	touch(t, filepath.Join(s.Base(), "documents", "draft.txt"))

	newName, err := s.Rename(context.Background(), "documents", "draft.txt", "final.txt")
	require.NoError(t, err)
	assert.Equal(t, "final.txt", newName)
	assert.NoFileExists(t, filepath.Join(s.Base(), "documents", "draft.txt"))
	assert.FileExists(t, filepath.Join(s.Base(), "documents", "final.txt"))
}

func TestRenameInsideSubfolder(t *testing.T) {
	s := newTestStore(t)
	mkdirs(t, s, "documents", "reports")
	touch(t, filepath.Join(s.Base(), "documents", "reports", "a.pdf"))

	_, err := s.Rename(context.Background(), "documents", "reports/a.pdf", "b.pdf")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(s.Base(), "documents", "reports", "b.pdf"))
}

func TestRenameValidation(t *testing.T) {
	s := newTestStore(t)
	touch(t, filepath.Join(s.Base(), "documents", "a.txt"))
	touch(t, filepath.Join(s.Base(), "documents", "b.txt"))

	_, err := s.Rename(context.Background(), "documents", "a.txt", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Rename(context.Background(), "documents", "a.txt", "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Rename(context.Background(), "documents", "a.txt", "x/y.txt")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Rename(context.Background(), "documents", "a.txt", "b.txt")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.Rename(context.Background(), "documents", "missing.txt", "c.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoveFileAcrossCategories(t *testing.T) {
	s := newTestStore(t)
	touch(t, filepath.Join(s.Base(), "videos", "clip.mp4"))

	entry, err := s.Move(context.Background(), "videos", "clip.mp4", "archives", "old")
	require.NoError(t, err)

	assert.Equal(t, "clip.mp4", entry.Name)
	assert.Equal(t, "old", entry.Path)
	assert.FileExists(t, filepath.Join(s.Base(), "archives", "old", "clip.mp4"))
	assert.NoFileExists(t, filepath.Join(s.Base(), "videos", "clip.mp4"))

	// Source listing no longer contains the entry, destination does.
	src, err := s.List("videos", "", "", "")
	require.NoError(t, err)
	assert.Empty(t, src.Entries)
	dst, err := s.List("archives", "old", "", "")
	require.NoError(t, err)
	require.Len(t, dst.Entries, 1)
	assert.Equal(t, "clip.mp4", dst.Entries[0].Name)
}

func TestMoveFolderSubtree(t *testing.T) {
	s := newTestStore(t)
	mkdirs(t, s, "documents", "reports", "2024")
	touch(t, filepath.Join(s.Base(), "documents", "reports", "2024", "q1.pdf"))

	_, err := s.Move(context.Background(), "documents", "reports", "archives", "")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(s.Base(), "archives", "reports", "2024", "q1.pdf"))
	assert.NoDirExists(t, filepath.Join(s.Base(), "documents", "reports"))
}

func TestMoveRejections(t *testing.T) {
	s := newTestStore(t)
	touch(t, filepath.Join(s.Base(), "documents", "a.txt"))
	mkdirs(t, s, "archives", "hold")
	touch(t, filepath.Join(s.Base(), "archives", "hold", "a.txt"))

	_, err := s.Move(context.Background(), "documents", "a.txt", "cookies", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Move(context.Background(), "documents", "missing.txt", "archives", "")
	assert.ErrorIs(t, err, ErrNotFound)

	// No-op: identical source and destination.
	_, err = s.Move(context.Background(), "documents", "a.txt", "documents", "")
	assert.ErrorIs(t, err, ErrConflict)

	// Destination collision.
	_, err = s.Move(context.Background(), "documents", "a.txt", "archives", "hold")
	assert.ErrorIs(t, err, ErrConflict)
	assert.FileExists(t, filepath.Join(s.Base(), "documents", "a.txt"))
}

func TestMoveFolderIntoItself(t *testing.T) {
	s := newTestStore(t)
	mkdirs(t, s, "documents", "reports")

	_, err := s.Move(context.Background(), "documents", "reports", "documents", "reports/inner")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMoveCreatesDestinationTree(t *testing.T) {
	s := newTestStore(t)
	touch(t, filepath.Join(s.Base(), "videos", "clip.mp4"))

	_, err := s.Move(context.Background(), "videos", "clip.mp4", "archives", "deep/nested/dir")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(s.Base(), "archives", "deep", "nested", "dir", "clip.mp4"))
}

func TestDeleteFile(t *testing.T) {
	s := newTestStore(t)
	touch(t, filepath.Join(s.Base(), "others", "junk.bin"))

	require.NoError(t, s.DeleteFile(context.Background(), "others", "junk.bin"))
	assert.NoFileExists(t, filepath.Join(s.Base(), "others", "junk.bin"))

	err := s.DeleteFile(context.Background(), "others", "junk.bin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteFileRejectsFolder(t *testing.T) {
	s := newTestStore(t)
	mkdirs(t, s, "others", "folder")
	err := s.DeleteFile(context.Background(), "others", "folder")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteFolderGuard(t *testing.T) {
	s := newTestStore(t)
	mkdirs(t, s, "documents", "reports")
	touch(t, filepath.Join(s.Base(), "documents", "reports", "keep.pdf"))

	err := s.DeleteFolder(context.Background(), "documents", "reports")
	assert.ErrorIs(t, err, ErrConflict)
	assert.FileExists(t, filepath.Join(s.Base(), "documents", "reports", "keep.pdf"))

	require.NoError(t, s.DeleteFile(context.Background(), "documents", "reports/keep.pdf"))
	require.NoError(t, s.DeleteFolder(context.Background(), "documents", "reports"))
	assert.NoDirExists(t, filepath.Join(s.Base(), "documents", "reports"))
}

func TestDeleteFolderRefusesCategoryRoot(t *testing.T) {
	s := newTestStore(t)
	err := s.DeleteFolder(context.Background(), "documents", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	err = s.DeleteFolder(context.Background(), "documents", "/")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateFolder(t *testing.T) {
	s := newTestStore(t)

	folder, err := s.CreateFolder(context.Background(), "documents", "", "Taxes")
	require.NoError(t, err)
	assert.Equal(t, "Taxes", folder.Name)
	assert.Equal(t, "Taxes", folder.Path)
	assert.DirExists(t, filepath.Join(s.Base(), "documents", "Taxes"))

	nested, err := s.CreateFolder(context.Background(), "documents", "Taxes", "2024")
	require.NoError(t, err)
	assert.Equal(t, "Taxes/2024", nested.Path)
}

func TestCreateFolderSanitizesName(t *testing.T) {
	s := newTestStore(t)

	// Slash is a stripped character, not a separator.
	folder, err := s.CreateFolder(context.Background(), "documents", "", "Taxes/2024")
	require.NoError(t, err)
	assert.Equal(t, "Taxes2024", folder.Name)
	assert.DirExists(t, filepath.Join(s.Base(), "documents", "Taxes2024"))
	assert.NoDirExists(t, filepath.Join(s.Base(), "documents", "Taxes", "2024"))
}

func TestCreateFolderRejections(t *testing.T) {
	s := newTestStore(t)
	mkdirs(t, s, "documents", "existing")

	_, err := s.CreateFolder(context.Background(), "documents", "", `<>:"|?*`)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.CreateFolder(context.Background(), "documents", "", "existing")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.CreateFolder(context.Background(), "cookies", "", "x")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSanitizeFolderName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Taxes/2024", "Taxes2024"},
		{`a\b:c*d?e"f<g>h|i`, "abcdefghi"},
		{"  spaced  ", "spaced"},
		{"normal-name_1", "normal-name_1"},
		{"ctrl\x00\x1fchars", "ctrlchars"},
		{"///", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFolderName(tt.in), tt.in)
	}
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Base(), "images", "a.jpg"), []byte("12345"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Base(), "images", "b.jpg"), []byte("123"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Base(), "audio", "c.mp3"), []byte("12"), 0o644))
	// Subfolder contents are not counted.
	mkdirs(t, s, "images", "album")
	require.NoError(t, os.WriteFile(filepath.Join(s.Base(), "images", "album", "deep.jpg"), []byte("123456789"), 0o644))

	perCategory, totals, err := s.Stats()
	require.NoError(t, err)

	assert.Equal(t, 2, perCategory["images"].Count)
	assert.Equal(t, int64(8), perCategory["images"].Size)
	assert.Equal(t, 1, perCategory["audio"].Count)
	assert.Equal(t, 0, perCategory["documents"].Count)
	assert.Equal(t, 3, totals.Files)
	assert.Equal(t, int64(10), totals.Size)
}
