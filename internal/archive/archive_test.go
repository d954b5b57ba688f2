package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phravins/pagecraft/internal/export"
	"github.com/phravins/pagecraft/internal/layout"
)

func entries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	out := make(map[string]string)
	for _, f := range r.File {
		assert.True(t, f.Modified.Equal(ModTime), f.Name)
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		out[f.Name] = string(b)
	}
	return out
}

func TestFilesReact(t *testing.T) {
	files, err := Files(layout.Default(), export.FormatReact)
	require.NoError(t, err)

	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"GeneratedLayout.tsx",
		"components/Layout/Sections/Hero.tsx",
		"components/Layout/Sections/ProductGrid.tsx",
		"components/Layout/Sections/App.tsx",
	}, paths)
}

func TestFilesSingleFileFormats(t *testing.T) {
	for _, f := range []export.Format{export.FormatShopify, export.FormatHTML} {
		files, err := Files(layout.Default(), f)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, export.FileName(f), files[0].Path)
	}
}

func TestFilesUnknownFormat(t *testing.T) {
	_, err := Files(layout.Default(), "vue")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestBuildMatchesRender(t *testing.T) {
	cfg := layout.Default()
	data, err := Build(cfg, export.FormatHTML)
	require.NoError(t, err)

	got := entries(t, data)
	want, err := export.Render(cfg, export.FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"index.html": want}, got)
}

func TestBuildIsReproducible(t *testing.T) {
	a, err := Build(layout.Default(), export.FormatReact)
	require.NoError(t, err)
	b, err := Build(layout.Default(), export.FormatReact)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := Save(dir, layout.Default(), export.FormatShopify)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "export.zip"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got := entries(t, data)
	assert.Contains(t, got, "generated-layout.liquid")
}
