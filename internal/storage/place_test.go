package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izonak/localbox/internal/category"
	"github.com/izonak/localbox/internal/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), logging.Default(false))
	require.NoError(t, err)
	return s
}

func stage(t *testing.T, s *Store, content string) string {
	t.Helper()
	f, err := os.CreateTemp(s.StagingDir(), "upload-*")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestNewCreatesCategoryLayout(t *testing.T) {
	s := newTestStore(t)
	for _, cat := range category.All() {
		info, err := os.Stat(filepath.Join(s.Base(), cat.String()))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
	info, err := os.Stat(s.StagingDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPlaceInfersCategoryFromExtension(t *testing.T) {
	s := newTestStore(t)
	src := stage(t, s, "jpeg bytes")

	entry, err := s.Place(context.Background(), PlacementRequest{
		StagingPath:  src,
		OriginalName: "photo.JPG",
	})
	require.NoError(t, err)

	assert.Equal(t, category.Images, entry.Category)
	assert.Equal(t, "photo.JPG", entry.Name)
	assert.Equal(t, "", entry.Path)
	assert.FileExists(t, filepath.Join(s.Base(), "images", "photo.JPG"))
	assert.NoFileExists(t, src)
}

func TestPlaceUnknownExtensionLandsInOthers(t *testing.T) {
	s := newTestStore(t)
	src := stage(t, s, "???")

	entry, err := s.Place(context.Background(), PlacementRequest{
		StagingPath:  src,
		OriginalName: "blob.xyz",
	})
	require.NoError(t, err)
	assert.Equal(t, category.Others, entry.Category)
}

func TestPlaceExplicitCategoryWins(t *testing.T) {
	s := newTestStore(t)
	src := stage(t, s, "pdf bytes")

	entry, err := s.Place(context.Background(), PlacementRequest{
		StagingPath:  src,
		OriginalName: "scan.pdf",
		Explicit:     &ExplicitTarget{Category: category.Archives, Subpath: "old"},
	})
	require.NoError(t, err)

	assert.Equal(t, category.Archives, entry.Category)
	assert.Equal(t, "old", entry.Path)
	assert.FileExists(t, filepath.Join(s.Base(), "archives", "old", "scan.pdf"))
}

func TestPlacePreservesFolderUploadStructure(t *testing.T) {
	s := newTestStore(t)
	src := stage(t, s, "img")

	entry, err := s.Place(context.Background(), PlacementRequest{
		StagingPath:  src,
		OriginalName: "photo.jpg",
		Explicit:     &ExplicitTarget{Category: category.Images, Subpath: "trips"},
		RelativePath: "rome/day1/photo.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "trips/rome/day1", entry.Path)
	assert.FileExists(t, filepath.Join(s.Base(), "images", "trips", "rome", "day1", "photo.jpg"))
}

func TestPlaceCollisionGetsCounterSuffix(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Place(context.Background(), PlacementRequest{
		StagingPath:  stage(t, s, "one"),
		OriginalName: "photo.jpg",
	})
	require.NoError(t, err)
	second, err := s.Place(context.Background(), PlacementRequest{
		StagingPath:  stage(t, s, "two"),
		OriginalName: "photo.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "photo.jpg", first.Name)
	assert.Equal(t, "photo_1.jpg", second.Name)
	assert.FileExists(t, filepath.Join(s.Base(), "images", "photo.jpg"))
	assert.FileExists(t, filepath.Join(s.Base(), "images", "photo_1.jpg"))
}

func TestPlaceRejectsPathyOriginalName(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Place(context.Background(), PlacementRequest{
		StagingPath:  stage(t, s, "x"),
		OriginalName: "../escape.txt",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Place(context.Background(), PlacementRequest{
		StagingPath:  stage(t, s, "x"),
		OriginalName: "",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlaceThenListRoundTrip(t *testing.T) {
	s := newTestStore(t)
	entry, err := s.Place(context.Background(), PlacementRequest{
		StagingPath:  stage(t, s, "doc"),
		OriginalName: "report.pdf",
	})
	require.NoError(t, err)

	listing, err := s.List("documents", "", "", "")
	require.NoError(t, err)
	require.Len(t, listing.Entries, 1)
	assert.Equal(t, entry.Name, listing.Entries[0].Name)
	assert.Equal(t, int64(3), listing.Entries[0].Size)
}
