package archiver

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteZipRecursiveContents(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.txt"), []byte("top"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "mid.txt"), []byte("middle"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "deep", "leaf.txt"), []byte("leaf"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, WriteZip(&buf, dir))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	got := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		var content bytes.Buffer
		_, err = content.ReadFrom(rc)
		require.NoError(t, err)
		rc.Close()
		got[f.Name] = content.String()
	}
	assert.Equal(t, map[string]string{
		"top.txt":           "top",
		"sub/mid.txt":       "middle",
		"sub/deep/leaf.txt": "leaf",
	}, got)
}

func TestWriteZipEmptyDir(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteZip(&buf, t.TempDir()))
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}
